package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/markovic-nikola/keyhint/shortcut"
)

// KeyMap defines the app's own key bindings. They are also registered as
// the "Global" shortcut mode so the hint popup lists them.
type KeyMap struct {
	Quit       key.Binding
	Help       key.Binding
	Confirm    key.Binding
	Close      key.Binding
	NextButton key.Binding
	PrevButton key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
}

var Keys = KeyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "Quit"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "Show keyboard shortcuts"),
	),
	Confirm: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "Press the default button"),
	),
	Close: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "Close the popup"),
	),
	NextButton: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "Next button"),
	),
	PrevButton: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "Previous button"),
	),
	ScrollUp: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("up", "Scroll up"),
	),
	ScrollDown: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("down", "Scroll down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("pgup", "Page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown"),
		key.WithHelp("pgdown", "Page down"),
	),
}

// Bindings lists the bindings in the order they appear in the popup.
func (k KeyMap) Bindings() []key.Binding {
	return []key.Binding{
		k.Help, k.Quit, k.Confirm, k.Close, k.NextButton, k.PrevButton,
		k.ScrollUp, k.ScrollDown, k.PageUp, k.PageDown,
	}
}

// Shortcuts converts the bindings to shortcut records. The first key of a
// binding is the one shown; bubbletea key names ("ctrl+c", "shift+tab")
// already use the "+"-joined form.
func (k KeyMap) Shortcuts() []shortcut.Shortcut {
	var out []shortcut.Shortcut
	for _, b := range k.Bindings() {
		keys := b.Keys()
		if len(keys) == 0 || !b.Enabled() {
			continue
		}
		out = append(out, shortcut.Shortcut{
			Key:   shortcut.Joined(keys[0]),
			Title: b.Help().Desc,
		})
	}
	return out
}
