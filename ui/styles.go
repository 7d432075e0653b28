package ui

import "github.com/charmbracelet/lipgloss"

// All styles live here, one place to change the look of the whole app.
// lipgloss styles are immutable values: every method returns a new style.

var (
	AppStyle = lipgloss.NewStyle().Margin(1, 2)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	// StatusBarKeyStyle highlights the key in a "key desc" hint.
	StatusBarKeyStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("252")).
				Background(lipgloss.Color("235"))

	// StatusBarDescStyle is for the hint description.
	StatusBarDescStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("242")).
				Background(lipgloss.Color("235"))

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	FocusedPaneStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("62"))

	UnfocusedPaneStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240"))

	// PopupStyle wraps every dialog. Bright border so it "floats" above
	// the screen behind it.
	PopupStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("205")).
			Padding(1, 2)

	// ModeTitleStyle heads each shortcut group in the hint popup.
	ModeTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63"))

	// ShortcutKeyStyle renders the formatted key combination.
	ShortcutKeyStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("252")).
				Background(lipgloss.Color("236")).
				Padding(0, 1)

	ShortcutTitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("250"))

	ButtonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")).
			Background(lipgloss.Color("238")).
			Padding(0, 2)

	// DefaultButtonStyle marks the button enter presses.
	DefaultButtonStyle = ButtonStyle.
				Foreground(lipgloss.Color("230")).
				Background(lipgloss.Color("62")).
				Bold(true)

	SearchBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	Logo = TitleStyle.Render(
		"▄▄ ▄▄ ▄▄▄▄▄ ▄▄ ▄▄ ▄▄ ▄▄ ▄▄ ▄▄  ▄▄ ▄▄▄▄▄▄\n" +
			"██▄█▀ ██▄▄  ▀███▀ ██▄██ ██ ███▄██   ██  \n" +
			"██ ██ ██▄▄▄   █   ██ ██ ██ ██ ▀██   ██  ")
)
