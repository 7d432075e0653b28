package shortcut

import (
	"strings"

	"github.com/markovic-nikola/keyhint/keysym"
)

// Search returns the shortcuts whose key text, titles or formatted key text
// contain query, ignoring case. The formatted text is keyText run through
// f.FormatString, so a sequence's space-joined text formats as one token.
// Order is preserved and the input slice is not modified. Shortcuts without
// titles never match, not even for an empty query.
func Search(shortcuts []Shortcut, query string, f keysym.Formatter) []Shortcut {
	q := strings.ToLower(query)

	var out []Shortcut
	for _, s := range shortcuts {
		if len(s.Titles) == 0 {
			continue
		}

		keyText := s.Key.Text()
		presentation := f.FormatString(keyText)

		if contains(keyText, q) ||
			contains(strings.Join(s.Titles, " "), q) ||
			contains(presentation, q) {
			out = append(out, s)
		}
	}
	return out
}

// SearchModes runs Search on each mode. Modes left without matches are
// still returned, with an empty Shortcuts slice.
func SearchModes(modes []Mode, query string, f keysym.Formatter) []Mode {
	out := make([]Mode, len(modes))
	for i, m := range modes {
		out[i] = Mode{Title: m.Title, Shortcuts: Search(m.Shortcuts, query, f)}
	}
	return out
}

func contains(s, lowerQuery string) bool {
	return strings.Contains(strings.ToLower(s), lowerQuery)
}
