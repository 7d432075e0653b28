// Package keysym turns internal key combinations like "ctrl+shift+enter"
// into the labels people expect to see on their platform: glyphs on a Mac
// ("⌃⇧⏎"), words everywhere else ("Ctrl+Shift+Enter").
package keysym

import (
	"fmt"
	"runtime"
	"strings"
)

// Platform selects which symbol table the Formatter uses.
type Platform int

const (
	Other Platform = iota
	MacOS
)

func (p Platform) String() string {
	if p == MacOS {
		return "macos"
	}
	return "other"
}

// Detect classifies the platform the binary runs on.
func Detect() Platform {
	return FromGOOS(runtime.GOOS)
}

// FromGOOS maps a GOOS value to a Platform. Only darwin gets the Mac glyphs.
func FromGOOS(goos string) Platform {
	if goos == "darwin" {
		return MacOS
	}
	return Other
}

// ParsePlatform reads a user-supplied platform name. The bool result is true
// for "auto" (or empty), in which case the caller should use Detect.
func ParsePlatform(s string) (Platform, bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return Other, true, nil
	case "macos", "mac", "darwin":
		return MacOS, false, nil
	case "other", "windows", "linux":
		return Other, false, nil
	}
	return Other, false, fmt.Errorf("unknown platform %q (expected auto, macos or other)", s)
}

// The two symbol tables. They are never modified after init; access goes
// through Formatter.Symbol so callers can't write to them.
var (
	macSymbols = map[string]string{
		"enter":     "⏎",
		"shift":     "⇧",
		"meta":      "⌘",
		"alt":       "⌥",
		"ctrl":      "⌃",
		"backspace": "⌫",
		"esc":       "Esc",
		"tab":       "Tab",
		"del":       "Del",
		"home":      "Home",
		"end":       "End",
		"space":     "Space",
		"ins":       "Insert",

		"left":  "←",
		"up":    "↑",
		"right": "→",
		"down":  "↓",
	}

	otherSymbols = map[string]string{
		"enter":     "Enter",
		"shift":     "Shift",
		"meta":      "Ctrl",
		"alt":       "Alt",
		"ctrl":      "Ctrl",
		"backspace": "Backspace",
		"esc":       "Esc",
		"tab":       "Tab",
		"del":       "Delete",
		"home":      "Home",
		"end":       "End",
		"space":     "Space",
		"ins":       "Insert",

		"left":  "←",
		"up":    "↑",
		"right": "→",
		"down":  "↓",
	}
)

// Vocabulary returns the key tokens that have a dedicated symbol.
func Vocabulary() []string {
	return []string{
		"enter", "shift", "meta", "alt", "ctrl", "backspace", "esc", "tab",
		"del", "home", "end", "space", "ins", "left", "up", "right", "down",
	}
}

// Formatter renders key combinations for one platform.
// The zero value formats for Other.
type Formatter struct {
	platform Platform
}

func NewFormatter(p Platform) Formatter {
	return Formatter{platform: p}
}

func (f Formatter) Platform() Platform { return f.platform }

func (f Formatter) symbols() map[string]string {
	if f.platform == MacOS {
		return macSymbols
	}
	return otherSymbols
}

// separator sits between symbols. Mac glyphs are visually distinct, so
// they are glued together.
func (f Formatter) separator() string {
	if f.platform == MacOS {
		return ""
	}
	return "+"
}

// Symbol formats a single token. Tokens outside the vocabulary are upper-cased.
func (f Formatter) Symbol(token string) string {
	if s, ok := f.symbols()[token]; ok {
		return s
	}
	return strings.ToUpper(token)
}

// Format renders an ordered list of key tokens.
func (f Formatter) Format(tokens []string) string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = f.Symbol(t)
	}
	return strings.Join(out, f.separator())
}

// FormatString renders a "+"-joined combination such as "ctrl+s".
func (f Formatter) FormatString(combo string) string {
	return f.Format(strings.Split(combo, "+"))
}
