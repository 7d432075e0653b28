package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Button is an action shown at the bottom of a dialog.
type Button struct {
	Label   string
	Default bool // pressed by enter when the dialog opens
}

// DialogOptions describes how a dialog is presented.
type DialogOptions struct {
	Title        string
	CloseOnClick bool // a left click outside the dialog dismisses it
	AutoWidth    bool // size to the body instead of a fixed share of the terminal
	Buttons      []Button
}

// DialogClosedMsg is sent to the parent when the dialog goes away.
// Button holds the pressed button's label, or "" when it was dismissed.
type DialogClosedMsg struct {
	Button string
}

// DialogBody is the content a dialog hosts. Like the dialog itself it is a
// value: Update and Resize return the changed body.
type DialogBody interface {
	Update(msg tea.Msg) (DialogBody, tea.Cmd)
	// Resize gives the body the space it may use inside the dialog.
	Resize(width, height int) DialogBody
	// NaturalWidth is the width the body would like when AutoWidth is set.
	NaturalWidth() int
	View() string
}

// DialogModel is the modal host: title, body, button row. The parent keeps
// it in its model and sends it every message while it is open.
type DialogModel struct {
	opts  DialogOptions
	body  DialogBody
	focus int // index into opts.Buttons

	width      int // outer width of the popup box
	termWidth  int
	termHeight int
}

// Chrome around the body. PopupStyle has border (2) + padding (4 horizontal,
// 2 vertical); the title takes 2 lines and the button row another 2.
const (
	dialogHChrome = 6
	dialogVChrome = 4 + 2 + 2
)

func NewDialog(opts DialogOptions, body DialogBody, termWidth, termHeight int) DialogModel {
	d := DialogModel{opts: opts, body: body}
	for i, b := range opts.Buttons {
		if b.Default {
			d.focus = i
			break
		}
	}
	d.resize(termWidth, termHeight)
	return d
}

func (d *DialogModel) resize(termWidth, termHeight int) {
	d.termWidth, d.termHeight = termWidth, termHeight

	if d.opts.AutoWidth {
		d.width = d.body.NaturalWidth() + dialogHChrome
		d.width = max(d.width, d.buttonRowWidth()+dialogHChrome)
	} else {
		d.width = max(termWidth*60/100, 40)
	}
	// Leave a little of the screen behind visible on both sides.
	if limit := termWidth - 4; limit > dialogHChrome && d.width > limit {
		d.width = limit
	}

	popupHeight := max(termHeight*80/100, 12)
	d.body = d.body.Resize(d.width-dialogHChrome, max(popupHeight-dialogVChrome, 1))
}

func (d DialogModel) Options() DialogOptions { return d.opts }

func (d DialogModel) Body() DialogBody { return d.body }

// FocusedButton returns the label enter would press, or "".
func (d DialogModel) FocusedButton() string {
	if len(d.opts.Buttons) == 0 {
		return ""
	}
	return d.opts.Buttons[d.focus].Label
}

func closeDialog(button string) tea.Cmd {
	return func() tea.Msg { return DialogClosedMsg{Button: button} }
}

func (d DialogModel) Update(msg tea.Msg) (DialogModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		d.resize(msg.Width, msg.Height)
		return d, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, Keys.Close):
			return d, closeDialog("")
		case key.Matches(msg, Keys.Confirm) && len(d.opts.Buttons) > 0:
			return d, closeDialog(d.FocusedButton())
		case key.Matches(msg, Keys.NextButton) && len(d.opts.Buttons) > 1:
			d.focus = (d.focus + 1) % len(d.opts.Buttons)
			return d, nil
		case key.Matches(msg, Keys.PrevButton) && len(d.opts.Buttons) > 1:
			d.focus = (d.focus + len(d.opts.Buttons) - 1) % len(d.opts.Buttons)
			return d, nil
		}

	case tea.MouseMsg:
		if d.opts.CloseOnClick &&
			msg.Action == tea.MouseActionPress &&
			msg.Button == tea.MouseButtonLeft &&
			!d.contains(msg.X, msg.Y) {
			return d, closeDialog("")
		}
	}

	var cmd tea.Cmd
	d.body, cmd = d.body.Update(msg)
	return d, cmd
}

// Bounds is where the dialog lands when centered with lipgloss.Place in
// the terminal it was last sized for.
func (d DialogModel) Bounds() (x, y, width, height int) {
	view := d.View()
	width, height = lipgloss.Width(view), lipgloss.Height(view)
	x = max((d.termWidth-width)/2, 0)
	y = max((d.termHeight-height)/2, 0)
	return x, y, width, height
}

func (d DialogModel) contains(px, py int) bool {
	x, y, w, h := d.Bounds()
	return px >= x && px < x+w && py >= y && py < y+h
}

func (d DialogModel) buttonRowWidth() int {
	return lipgloss.Width(d.renderButtons())
}

func (d DialogModel) renderButtons() string {
	labels := make([]string, len(d.opts.Buttons))
	for i, b := range d.opts.Buttons {
		style := ButtonStyle
		if i == d.focus {
			style = DefaultButtonStyle
		}
		labels[i] = style.Render(b.Label)
	}
	return strings.Join(labels, "  ")
}

func (d DialogModel) View() string {
	inner := d.width - dialogHChrome

	var b strings.Builder
	if d.opts.Title != "" {
		b.WriteString(TitleStyle.Render(" " + d.opts.Title + " "))
		b.WriteString("\n\n")
	}
	b.WriteString(d.body.View())
	if len(d.opts.Buttons) > 0 {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(inner, lipgloss.Right, d.renderButtons()))
	}

	return PopupStyle.
		Width(d.width - 2). // -2 for border chars
		Render(b.String())
}
