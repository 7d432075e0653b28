package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/markovic-nikola/keyhint/keysym"
	"github.com/markovic-nikola/keyhint/shortcut"
)

// ModeItem implements list.Item for one shortcut mode. Hidden counts the
// shortcuts without titles, which the popup never lists.
type ModeItem struct {
	Mode   shortcut.Mode
	Hidden int
}

func newModeItem(m shortcut.Mode, f keysym.Formatter) ModeItem {
	normalized := shortcut.NormalizeModes([]shortcut.Mode{m})[0]
	titled := len(shortcut.Search(normalized.Shortcuts, "", f))
	return ModeItem{Mode: m, Hidden: len(m.Shortcuts) - titled}
}

func (i ModeItem) Title() string { return i.Mode.Title }

func (i ModeItem) Description() string {
	desc := fmt.Sprintf("%d shortcuts", len(i.Mode.Shortcuts))
	if i.Hidden > 0 {
		desc += fmt.Sprintf(" (%d untitled, hidden)", i.Hidden)
	}
	return desc
}

func (i ModeItem) FilterValue() string { return i.Mode.Title }

// ModeSelectedMsg is sent when the user presses enter on a mode.
type ModeSelectedMsg struct {
	Mode shortcut.Mode
}

// ModeListModel wraps bubbles/list.Model for the modes screen.
type ModeListModel struct {
	list      list.Model
	formatter keysym.Formatter
}

// NewModeListModel takes the pane's border-box size.
func NewModeListModel(f keysym.Formatter, width, height int) ModeListModel {
	delegate := list.NewDefaultDelegate()
	delegate.SetSpacing(0)

	l := list.New(nil, delegate, max(width-2, 0), max(height-2, 0))
	l.Title = "Modes"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false) // the status bar shows our bindings

	// q and ? are ours; esc must not quit from the list.
	l.KeyMap.Quit.SetEnabled(false)
	l.KeyMap.ShowFullHelp.SetEnabled(false)
	l.KeyMap.CloseFullHelp.SetEnabled(false)

	return ModeListModel{list: l, formatter: f}
}

// SetModes replaces the listed modes.
func (m *ModeListModel) SetModes(modes []shortcut.Mode) tea.Cmd {
	items := make([]list.Item, len(modes))
	for i, mode := range modes {
		items[i] = newModeItem(mode, m.formatter)
	}
	m.list.Title = fmt.Sprintf("Modes (%d)", len(modes))
	return m.list.SetItems(items)
}

func (m *ModeListModel) SetSize(width, height int) {
	m.list.SetSize(max(width-2, 0), max(height-2, 0))
}

// Filtering reports whether the user is typing a filter, in which case every
// key belongs to the list.
func (m ModeListModel) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m ModeListModel) Update(msg tea.Msg) (ModeListModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && !m.Filtering() && msg.String() == "enter" {
		if item, ok := m.list.SelectedItem().(ModeItem); ok {
			return m, func() tea.Msg { return ModeSelectedMsg{Mode: item.Mode} }
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View is the bare list; the parent draws the border.
func (m ModeListModel) View() string {
	return m.list.View()
}
