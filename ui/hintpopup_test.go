package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/markovic-nikola/keyhint/keysym"
	"github.com/markovic-nikola/keyhint/shortcut"
)

func testRegistry() *shortcut.Registry {
	r := shortcut.NewRegistry()
	r.Register("Editor",
		shortcut.Shortcut{Key: shortcut.Joined("ctrl+s"), Title: "Save"},
		shortcut.Shortcut{Key: shortcut.Sequence("ctrl", "shift", "enter"), Titles: []string{"Run"}},
		shortcut.Shortcut{Key: shortcut.Joined("ctrl+k")}, // untitled: never shown
	)
	r.Register("Navigation",
		shortcut.Shortcut{Key: shortcut.Joined("alt+left"), Title: "Back"},
	)
	return r
}

func hintContext(t *testing.T, d DialogModel) HintContext {
	t.Helper()
	body, ok := d.Body().(hintBody)
	if !ok {
		t.Fatalf("dialog body is %T, want hintBody", d.Body())
	}
	return body.Context()
}

func TestShow_Defaults(t *testing.T) {
	t.Parallel()

	svc := NewHintPopupService(testRegistry(), keysym.NewFormatter(keysym.Other))
	d, _ := svc.Show(nil, 100, 40)

	opts := d.Options()
	if opts.Title != "Keyboard shortcuts" || !opts.CloseOnClick || !opts.AutoWidth {
		t.Fatalf("unexpected dialog options %+v", opts)
	}
	if len(opts.Buttons) != 1 || opts.Buttons[0].Label != "Got it" || !opts.Buttons[0].Default {
		t.Fatalf("buttons = %+v", opts.Buttons)
	}

	ctx := hintContext(t, d)
	if ctx.SearchText != "" {
		t.Fatalf("SearchText = %q, want empty", ctx.SearchText)
	}
	if ctx.TailTemplate != nil {
		t.Fatal("TailTemplate should be unset by default")
	}
	if len(ctx.Modes) != 2 {
		t.Fatalf("got %d modes from the registry, want 2", len(ctx.Modes))
	}
	// Title was folded into Titles.
	if got := ctx.Modes[0].Shortcuts[0].Titles; len(got) != 1 || got[0] != "Save" {
		t.Fatalf("normalized Titles = %v", got)
	}
	if !ctx.IsSequence(ctx.Modes[0].Shortcuts[1].Key) {
		t.Fatal("IsSequence should report the sequence key")
	}
}

func TestShow_DoesNotTouchRegistry(t *testing.T) {
	t.Parallel()

	reg := testRegistry()
	svc := NewHintPopupService(reg, keysym.Formatter{})
	svc.Show(nil, 100, 40)

	if got := reg.Registered()[0].Shortcuts[0].Titles; got != nil {
		t.Fatalf("registry record was normalized in place: %v", got)
	}
}

func TestShow_ExplicitModesAndOptions(t *testing.T) {
	t.Parallel()

	modes := []shortcut.Mode{{
		Title:     "Only",
		Shortcuts: []shortcut.Shortcut{{Key: shortcut.Joined("f1"), Title: "Help"}},
	}}
	svc := NewHintPopupService(testRegistry(), keysym.Formatter{})
	d, _ := svc.Show(modes, 100, 40,
		WithTailTemplate(func() string { return "More at example.com/keys" }),
		WithDialogOptions(func(o *DialogOptions) {
			o.CloseOnClick = false
			o.Title = "Help"
		}),
	)

	if d.Options().CloseOnClick || d.Options().Title != "Help" {
		t.Fatalf("options override not applied: %+v", d.Options())
	}
	ctx := hintContext(t, d)
	if len(ctx.Modes) != 1 || ctx.Modes[0].Title != "Only" {
		t.Fatalf("explicit modes ignored: %+v", ctx.Modes)
	}

	view := d.View()
	if !strings.Contains(view, "More at example.com/keys") {
		t.Fatal("tail template not rendered")
	}
	if strings.Contains(view, "Editor") {
		t.Fatal("registry modes rendered despite explicit modes")
	}
}

func TestShow_CustomTemplate(t *testing.T) {
	t.Parallel()

	tmpl := func(ctx HintContext, f keysym.Formatter) string {
		return "custom:" + ctx.SearchText
	}
	svc := NewHintPopupService(testRegistry(), keysym.Formatter{})
	d, _ := svc.Show(nil, 100, 40, WithTemplate(tmpl))
	d, _ = d.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("zz")})

	if !strings.Contains(d.View(), "custom:zz") {
		t.Fatalf("custom template not used:\n%s", d.View())
	}
}

func TestHintBody_SearchNarrowsList(t *testing.T) {
	t.Parallel()

	svc := NewHintPopupService(testRegistry(), keysym.NewFormatter(keysym.Other))
	d, _ := svc.Show(nil, 100, 40)

	view := d.View()
	for _, want := range []string{"Editor", "Save", "Ctrl+S", "Ctrl+Shift+Enter", "Run", "Navigation", "Alt+←", "Back"} {
		if !strings.Contains(view, want) {
			t.Fatalf("initial view missing %q:\n%s", want, view)
		}
	}
	if strings.Contains(view, "Ctrl+K") {
		t.Fatal("untitled shortcut should not be rendered")
	}

	d, _ = d.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("sav")})
	if got := hintContext(t, d).SearchText; got != "sav" {
		t.Fatalf("SearchText = %q, want %q", got, "sav")
	}

	view = d.View()
	if !strings.Contains(view, "Save") {
		t.Fatalf("filtered view missing Save:\n%s", view)
	}
	for _, gone := range []string{"Run", "Navigation", "Back"} {
		if strings.Contains(view, gone) {
			t.Fatalf("filtered view still shows %q:\n%s", gone, view)
		}
	}
}

func TestHintBody_NoMatches(t *testing.T) {
	t.Parallel()

	svc := NewHintPopupService(testRegistry(), keysym.Formatter{})
	d, _ := svc.Show(nil, 100, 40)
	d, _ = d.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("nothing like this")})

	if !strings.Contains(d.View(), "No shortcuts match") {
		t.Fatalf("expected empty-state message:\n%s", d.View())
	}
}

func TestHintBody_TypingQDoesNotClose(t *testing.T) {
	t.Parallel()

	svc := NewHintPopupService(testRegistry(), keysym.Formatter{})
	d, _ := svc.Show(nil, 100, 40)
	d, _ = d.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})

	if hintContext(t, d).SearchText != "q" {
		t.Fatal("q should go to the search box")
	}
}

func TestRenderShortcuts_MacGlyphs(t *testing.T) {
	t.Parallel()

	ctx := HintContext{Modes: shortcut.NormalizeModes(testRegistry().Registered())}
	out := RenderShortcuts(ctx, keysym.NewFormatter(keysym.MacOS))

	for _, want := range []string{"⌃S", "⌃⇧⏎", "⌥←"} {
		if !strings.Contains(out, want) {
			t.Fatalf("mac rendering missing %q:\n%s", want, out)
		}
	}
}
