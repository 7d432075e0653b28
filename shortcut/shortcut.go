// Package shortcut holds the shortcut records shown by the hint popup,
// the registry they are collected in, and the search filter over them.
package shortcut

import (
	"slices"
	"strings"
)

// Key is the combination that triggers a shortcut. Sources supply it in one
// of two forms: an ordered token list (Sequence) or a "+"-joined string
// (Joined). Both forms are kept because they produce different search text.
type Key struct {
	tokens []string
	joined string
	seq    bool
}

// Sequence builds a key from ordered tokens, e.g. Sequence("ctrl", "s").
func Sequence(tokens ...string) Key {
	return Key{tokens: slices.Clone(tokens), seq: true}
}

// Joined builds a key from a combination string, e.g. Joined("ctrl+s").
func Joined(combo string) Key {
	return Key{joined: combo}
}

func (k Key) IsSequence() bool { return k.seq }

// Text is the raw key text matched by Search: tokens separated by a single
// space for sequences, the string itself for joined keys.
func (k Key) Text() string {
	if k.seq {
		return strings.Join(k.tokens, " ")
	}
	return k.joined
}

// Tokens returns the key's tokens. Joined keys are split on "+".
func (k Key) Tokens() []string {
	if k.seq {
		return slices.Clone(k.tokens)
	}
	return strings.Split(k.joined, "+")
}

func (k Key) String() string { return k.Text() }

// Shortcut is one entry in a mode. Title is the legacy single-title field;
// Normalize folds it into Titles.
type Shortcut struct {
	Key    Key
	Titles []string
	Title  string
}

// Mode is a named group of shortcuts, e.g. "Global" or "Editor".
type Mode struct {
	Title     string
	Shortcuts []Shortcut
}

// Normalize returns a copy of s with a non-nil Titles that contains Title
// exactly once (when Title is set). The input is left untouched and the
// operation is idempotent.
func Normalize(s Shortcut) Shortcut {
	titles := make([]string, 0, len(s.Titles)+1)
	titles = append(titles, s.Titles...)
	if s.Title != "" && !slices.Contains(titles, s.Title) {
		titles = append(titles, s.Title)
	}
	s.Titles = titles
	return s
}

// NormalizeModes normalizes every shortcut in every mode into fresh slices.
func NormalizeModes(modes []Mode) []Mode {
	out := make([]Mode, len(modes))
	for i, m := range modes {
		shortcuts := make([]Shortcut, len(m.Shortcuts))
		for j, s := range m.Shortcuts {
			shortcuts[j] = Normalize(s)
		}
		out[i] = Mode{Title: m.Title, Shortcuts: shortcuts}
	}
	return out
}

func cloneModes(modes []Mode) []Mode {
	out := make([]Mode, len(modes))
	for i, m := range modes {
		shortcuts := make([]Shortcut, len(m.Shortcuts))
		for j, s := range m.Shortcuts {
			s.Titles = slices.Clone(s.Titles)
			shortcuts[j] = s
		}
		out[i] = Mode{Title: m.Title, Shortcuts: shortcuts}
	}
	return out
}
