package ui

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/markovic-nikola/keyhint/source"
)

type pickerFocus int

const (
	focusInput pickerFocus = iota
	focusList
)

// sourceSelectedMsg is sent once the user picked a readable shortcut file.
type sourceSelectedMsg struct {
	path string
}

// FilePickerModel is shown when keyhint starts without a source. It offers
// the keymaps and shortcut databases in the current directory and a text
// input for any other path.
type FilePickerModel struct {
	input   textinput.Model
	dir     string
	files   []string
	cursor  int
	focused pickerFocus
	pathErr string
	width   int
	height  int
}

func NewFilePickerModel(dir string) FilePickerModel {
	ti := textinput.New()
	ti.Placeholder = "/path/to/keymap.yaml"
	ti.Width = 50

	files := source.Find(dir)

	focused := focusInput
	if len(files) > 0 {
		focused = focusList
	} else {
		ti.Focus()
	}

	return FilePickerModel{
		input:   ti,
		dir:     dir,
		files:   files,
		focused: focused,
	}
}

func (m FilePickerModel) Init() tea.Cmd {
	if m.focused == focusInput {
		return textinput.Blink
	}
	return nil
}

// SetError shows err under the input, e.g. when the picked file failed to load.
func (m *FilePickerModel) SetError(err error) {
	m.pathErr = err.Error()
}

func (m FilePickerModel) Update(msg tea.Msg) (FilePickerModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, Keys.Confirm):
			return m.submit()

		case msg.Type == tea.KeyEsc || msg.Type == tea.KeyCtrlC:
			return m, tea.Quit

		case msg.Type == tea.KeyUp || (m.focused == focusList && msg.String() == "k"):
			return m.moveUp()

		case msg.Type == tea.KeyDown || (m.focused == focusList && msg.String() == "j"):
			return m.moveDown()
		}
	}

	if m.focused == focusInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// moveUp walks the list upward; past the first file it returns to the input.
func (m FilePickerModel) moveUp() (FilePickerModel, tea.Cmd) {
	switch {
	case len(m.files) == 0:
		return m, nil
	case m.focused == focusInput:
		return m.switchToList(len(m.files) - 1)
	case m.cursor > 0:
		m.cursor--
		return m, nil
	}
	return m.switchToInput()
}

func (m FilePickerModel) moveDown() (FilePickerModel, tea.Cmd) {
	switch {
	case len(m.files) == 0:
		return m, nil
	case m.focused == focusInput:
		return m.switchToList(0)
	case m.cursor < len(m.files)-1:
		m.cursor++
	}
	return m, nil
}

func (m FilePickerModel) View() string {
	boxWidth := 50

	inputStyle := UnfocusedPaneStyle
	if m.focused == focusInput {
		inputStyle = FocusedPaneStyle
	}
	inputBox := inputStyle.
		Width(boxWidth).
		Padding(0, 1).
		Render(m.input.View())

	sections := []string{
		Logo,
		"",
		StatusBarStyle.Render("  Keymap or shortcut database"),
		inputBox,
	}

	if len(m.files) > 0 {
		listStyle := UnfocusedPaneStyle
		if m.focused == focusList {
			listStyle = FocusedPaneStyle
		}

		lines := make([]string, len(m.files))
		for i, f := range m.files {
			if m.focused == focusList && i == m.cursor {
				lines[i] = TitleStyle.Render(" > " + f)
			} else {
				lines[i] = "   " + f
			}
		}
		sections = append(sections,
			"",
			StatusBarStyle.Render("  Files in current directory"),
			listStyle.Width(boxWidth).Padding(0, 1).Render(strings.Join(lines, "\n")),
		)
	}

	if m.pathErr != "" {
		sections = append(sections, "", ErrorStyle.Render("Error: "+m.pathErr))
	}

	sections = append(sections, "", StatusBarStyle.Render("enter: open | esc: quit"))

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

func (m FilePickerModel) switchToList(cursor int) (FilePickerModel, tea.Cmd) {
	m.focused = focusList
	m.cursor = cursor
	m.input.Blur()
	return m, nil
}

func (m FilePickerModel) switchToInput() (FilePickerModel, tea.Cmd) {
	m.focused = focusInput
	return m, m.input.Focus()
}

// submit validates the chosen path; loading happens in the parent.
func (m FilePickerModel) submit() (FilePickerModel, tea.Cmd) {
	path := m.input.Value()
	if m.focused == focusList && len(m.files) > 0 {
		path = filepath.Join(m.dir, m.files[m.cursor])
	}
	if path == "" {
		return m, nil
	}

	if err := source.Validate(path); err != nil {
		m.pathErr = err.Error()
		return m, nil
	}
	m.pathErr = ""
	return m, func() tea.Msg { return sourceSelectedMsg{path: path} }
}
