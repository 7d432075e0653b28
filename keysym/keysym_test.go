package keysym

import (
	"strings"
	"testing"
)

func TestFormat_VocabularyUsesSymbols(t *testing.T) {
	t.Parallel()

	for _, p := range []Platform{MacOS, Other} {
		f := NewFormatter(p)
		for _, tok := range Vocabulary() {
			got := f.Format([]string{tok})
			if got == strings.ToUpper(tok) {
				t.Errorf("%s: Format([%q]) = %q, want a mapped symbol", p, tok, got)
			}
			if got != f.Symbol(tok) {
				t.Errorf("%s: Format([%q]) = %q, Symbol = %q", p, tok, got, f.Symbol(tok))
			}
		}
	}
}

func TestFormat_UnknownTokensAreUpperCased(t *testing.T) {
	t.Parallel()

	for _, p := range []Platform{MacOS, Other} {
		f := NewFormatter(p)
		for _, tok := range []string{"s", "f5", "pgup", "?", "Ctrl", "ß"} {
			if got, want := f.Format([]string{tok}), strings.ToUpper(tok); got != want {
				t.Errorf("%s: Format([%q]) = %q, want %q", p, tok, got, want)
			}
		}
	}
}

func TestFormat_Combination(t *testing.T) {
	t.Parallel()

	tests := []struct {
		platform Platform
		tokens   []string
		want     string
	}{
		{MacOS, []string{"ctrl", "shift", "enter"}, "⌃⇧⏎"},
		{Other, []string{"ctrl", "shift", "enter"}, "Ctrl+Shift+Enter"},
		{MacOS, []string{"meta", "s"}, "⌘S"},
		{Other, []string{"meta", "s"}, "Ctrl+S"},
		{Other, []string{"alt", "left"}, "Alt+←"},
		{Other, nil, ""},
	}

	for _, tt := range tests {
		if got := NewFormatter(tt.platform).Format(tt.tokens); got != tt.want {
			t.Errorf("%s: Format(%v) = %q, want %q", tt.platform, tt.tokens, got, tt.want)
		}
	}
}

func TestFormatString_SplitsOnPlus(t *testing.T) {
	t.Parallel()

	if got := NewFormatter(Other).FormatString("ctrl+del"); got != "Ctrl+Delete" {
		t.Fatalf("FormatString = %q", got)
	}
	if got := NewFormatter(MacOS).FormatString("alt+backspace"); got != "⌥⌫" {
		t.Fatalf("FormatString = %q", got)
	}
}

func TestZeroFormatterIsOther(t *testing.T) {
	t.Parallel()

	var f Formatter
	if f.Platform() != Other {
		t.Fatalf("zero Formatter platform = %s", f.Platform())
	}
	if got := f.FormatString("ctrl+enter"); got != "Ctrl+Enter" {
		t.Fatalf("FormatString = %q", got)
	}
}

func TestParsePlatform(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Platform
		auto    bool
		wantErr bool
	}{
		{"", Other, true, false},
		{"auto", Other, true, false},
		{"MacOS", MacOS, false, false},
		{"darwin", MacOS, false, false},
		{" linux ", Other, false, false},
		{"windows", Other, false, false},
		{"amiga", Other, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, auto, err := ParsePlatform(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want || auto != tt.auto {
				t.Fatalf("ParsePlatform(%q) = (%s, %v), want (%s, %v)", tt.in, got, auto, tt.want, tt.auto)
			}
		})
	}
}

func TestFromGOOS(t *testing.T) {
	t.Parallel()

	if FromGOOS("darwin") != MacOS {
		t.Fatal("darwin should be MacOS")
	}
	for _, goos := range []string{"linux", "windows", "freebsd"} {
		if FromGOOS(goos) != Other {
			t.Fatalf("%s should be Other", goos)
		}
	}
}
