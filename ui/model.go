package ui

import (
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/markovic-nikola/keyhint/keysym"
	"github.com/markovic-nikola/keyhint/shortcut"
	"github.com/markovic-nikola/keyhint/source"
)

// screen is what the root model shows under any popup.
type screen int

const (
	screenPicker screen = iota
	screenModes
)

// GlobalMode is the mode the app's own bindings are registered under.
const GlobalMode = "Global"

// --- Custom message types ---

type sourceLoadedMsg struct {
	path  string
	modes []shortcut.Mode
}

type errMsg struct {
	err error
}

// Options configures the root model.
type Options struct {
	// Source is the keymap or database to load. Empty shows the file picker.
	Source    string
	Formatter keysym.Formatter
	// Loader reads a source; source.Load when nil.
	Loader func(path string) ([]shortcut.Mode, error)
	// Dir is where the file picker looks for sources; "." when empty.
	Dir string
}

// --- Root Model ---

type Model struct {
	screen screen
	picker FilePickerModel
	modes  ModeListModel

	registry   *shortcut.Registry
	hints      HintPopupService
	loader     func(string) ([]shortcut.Mode, error)
	sourcePath string

	width  int
	height int
	err    error

	// Modal hint popup.
	popup     DialogModel
	showPopup bool
}

func NewModel(opts Options) Model {
	registry := shortcut.NewRegistry()
	registry.Register(GlobalMode, Keys.Shortcuts()...)

	loader := opts.Loader
	if loader == nil {
		loader = source.Load
	}
	dir := opts.Dir
	if dir == "" {
		dir = "."
	}

	m := Model{
		screen:     screenModes,
		modes:      NewModeListModel(opts.Formatter, 0, 0),
		registry:   registry,
		hints:      NewHintPopupService(registry, opts.Formatter),
		loader:     loader,
		sourcePath: opts.Source,
	}
	if opts.Source == "" {
		m.screen = screenPicker
		m.picker = NewFilePickerModel(dir)
	}
	m.modes.SetModes(registry.Registered())
	return m
}

// Registry exposes the shortcut registry so callers can add modes before
// the program starts.
func (m Model) Registry() *shortcut.Registry { return m.registry }

func (m Model) Init() tea.Cmd {
	if m.screen == screenPicker {
		return m.picker.Init()
	}
	return loadSourceCmd(m.loader, m.sourcePath)
}

func loadSourceCmd(loader func(string) ([]shortcut.Mode, error), path string) tea.Cmd {
	return func() tea.Msg {
		modes, err := loader(path)
		if err != nil {
			return errMsg{err: err}
		}
		return sourceLoadedMsg{path: path, modes: modes}
	}
}

// openPopup shows the given modes, or every registered shortcut for nil.
func (m Model) openPopup(modes []shortcut.Mode, opts ...HintOption) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.popup, cmd = m.hints.Show(modes, m.width, m.height, opts...)
	m.showPopup = true
	return m, cmd
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// The popup captures all input while it's open.
	if m.showPopup {
		switch msg := msg.(type) {
		case DialogClosedMsg:
			m.showPopup = false
			slog.Debug("hint popup closed", "button", msg.Button)
			return m, nil
		case tea.WindowSizeMsg:
			m.width, m.height = msg.Width, msg.Height
			m.modes.SetSize(m.paneSize())
		}
		var cmd tea.Cmd
		m.popup, cmd = m.popup.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.modes.SetSize(m.paneSize())

	case tea.KeyMsg:
		if m.screen == screenModes && !m.modes.Filtering() {
			switch {
			case key.Matches(msg, Keys.Quit):
				return m, tea.Quit
			case key.Matches(msg, Keys.Help):
				return m.openPopup(nil)
			}
		}

	case ModeSelectedMsg:
		return m.openPopup([]shortcut.Mode{msg.Mode},
			WithDialogOptions(func(o *DialogOptions) {
				o.Title = msg.Mode.Title + " shortcuts"
			}))

	case sourceSelectedMsg:
		m.sourcePath = msg.path
		return m, loadSourceCmd(m.loader, msg.path)

	case sourceLoadedMsg:
		m.registry.RegisterModes(msg.modes...)
		m.screen = screenModes
		m.err = nil
		m.modes.SetSize(m.paneSize())
		slog.Debug("source loaded",
			"path", msg.path,
			"modes", len(msg.modes),
			"shortcuts", m.registry.Len())
		return m, m.modes.SetModes(m.registry.Registered())

	case errMsg:
		slog.Warn("source failed to load", "path", m.sourcePath, "err", msg.err)
		if m.screen == screenPicker {
			m.picker.SetError(msg.err)
			return m, nil
		}
		m.err = msg.err
		return m, nil
	}

	var cmd tea.Cmd
	if m.screen == screenPicker {
		m.picker, cmd = m.picker.Update(msg)
	} else {
		m.modes, cmd = m.modes.Update(msg)
	}
	return m, cmd
}

func (m Model) View() string {
	if m.screen == screenPicker {
		return m.picker.View()
	}

	if m.showPopup {
		// The popup replaces the screen; lipgloss.Place centers it in the
		// terminal, matching DialogModel.Bounds for click detection.
		return lipgloss.Place(
			m.width, m.height,
			lipgloss.Center, lipgloss.Center,
			m.popup.View(),
		)
	}

	return AppStyle.Render(m.header() + "\n\n" +
		FocusedPaneStyle.Render(m.modes.View()) + "\n\n" +
		m.statusBar())
}

func (m Model) header() string {
	h := Logo + "\n\n"
	if m.err != nil {
		return h + ErrorStyle.Render("Error: "+m.err.Error())
	}
	return h + StatusBarStyle.Render("Source: "+m.sourcePath)
}

// paneSize is the border box left for the mode list.
func (m Model) paneSize() (int, int) {
	hMargin, vMargin := AppStyle.GetHorizontalMargins(), AppStyle.GetVerticalMargins()
	used := lipgloss.Height(m.header()) + 2 + 2 + lipgloss.Height(m.statusBar())
	return max(m.width-hMargin, 0), max(m.height-vMargin-used, 0)
}

func (m Model) statusBar() string {
	var parts []string
	for _, h := range []key.Help{Keys.Help.Help(), {Key: "enter", Desc: "Show mode"}, Keys.Quit.Help()} {
		parts = append(parts,
			StatusBarKeyStyle.Render(" "+h.Key+" ")+StatusBarDescStyle.Render(" "+h.Desc+" "))
	}
	return strings.Join(parts, " ")
}
