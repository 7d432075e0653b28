package ui

import (
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/markovic-nikola/keyhint/keysym"
	"github.com/markovic-nikola/keyhint/shortcut"
)

// HintContext is what a hint template renders from. SearchText follows the
// search box as the user types.
type HintContext struct {
	Modes        []shortcut.Mode
	TailTemplate func() string // optional, rendered under the list
	SearchText   string
}

// IsSequence tells templates which form a key came in, so they can format
// token lists and "+"-joined strings the right way.
func (HintContext) IsSequence(k shortcut.Key) bool { return k.IsSequence() }

// Template renders the shortcut list of the hint popup.
type Template func(ctx HintContext, f keysym.Formatter) string

type hintConfig struct {
	dialog   DialogOptions
	tail     func() string
	template Template
}

// HintOption overrides part of the popup's default configuration.
type HintOption func(*hintConfig)

func WithTailTemplate(tail func() string) HintOption {
	return func(c *hintConfig) { c.tail = tail }
}

// WithTemplate replaces the default list renderer.
func WithTemplate(t Template) HintOption {
	return func(c *hintConfig) { c.template = t }
}

// WithDialogOptions edits the dialog defaults (title, buttons, click and
// width behavior) in place.
func WithDialogOptions(fn func(*DialogOptions)) HintOption {
	return func(c *hintConfig) { fn(&c.dialog) }
}

// HintPopupService builds the "Keyboard shortcuts" dialog.
type HintPopupService struct {
	registry  *shortcut.Registry
	formatter keysym.Formatter
}

func NewHintPopupService(registry *shortcut.Registry, f keysym.Formatter) HintPopupService {
	return HintPopupService{registry: registry, formatter: f}
}

// Show returns a dialog listing modes, or the registry's shortcuts when
// modes is nil. The modes are normalized into copies; the caller's records
// and the registry are left as they are.
func (s HintPopupService) Show(modes []shortcut.Mode, termWidth, termHeight int, opts ...HintOption) (DialogModel, tea.Cmd) {
	if modes == nil && s.registry != nil {
		modes = s.registry.Registered()
	}

	cfg := hintConfig{
		dialog: DialogOptions{
			Title:        "Keyboard shortcuts",
			CloseOnClick: true,
			AutoWidth:    true,
			Buttons:      []Button{{Label: "Got it", Default: true}},
		},
		template: RenderShortcuts,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	ctx := HintContext{
		Modes:        shortcut.NormalizeModes(modes),
		TailTemplate: cfg.tail,
	}
	body, cmd := newHintBody(ctx, cfg.template, s.formatter)

	slog.Debug("hint popup opened",
		"modes", len(ctx.Modes),
		"platform", s.formatter.Platform().String())

	return NewDialog(cfg.dialog, body, termWidth, termHeight), cmd
}

// RenderShortcuts is the default template: one heading per mode, then each
// matching shortcut's formatted key and titles. Modes without matches are
// left out.
func RenderShortcuts(ctx HintContext, f keysym.Formatter) string {
	modes := shortcut.SearchModes(ctx.Modes, ctx.SearchText, f)

	keyWidth := 0
	for _, m := range modes {
		for _, s := range m.Shortcuts {
			keyWidth = max(keyWidth, lipgloss.Width(formatKey(ctx, f, s.Key)))
		}
	}
	keyStyle := ShortcutKeyStyle.Width(keyWidth + 2) // +2 for the padding

	var sections []string
	for _, m := range modes {
		if len(m.Shortcuts) == 0 {
			continue
		}
		lines := []string{ModeTitleStyle.Render(m.Title)}
		for _, s := range m.Shortcuts {
			lines = append(lines, keyStyle.Render(formatKey(ctx, f, s.Key))+"  "+
				ShortcutTitleStyle.Render(strings.Join(s.Titles, " / ")))
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}

	if len(sections) == 0 {
		return StatusBarStyle.Render("No shortcuts match")
	}
	return strings.Join(sections, "\n\n")
}

func formatKey(ctx HintContext, f keysym.Formatter, k shortcut.Key) string {
	if ctx.IsSequence(k) {
		return f.Format(k.Tokens())
	}
	return f.FormatString(k.Text())
}

// hintBody is the search box plus the scrollable list.
type hintBody struct {
	ctx       HintContext
	template  Template
	formatter keysym.Formatter

	search   textinput.Model
	viewport viewport.Model

	natural   int // widest line of the unfiltered list
	width     int
	maxHeight int // for the list, below the search box
}

// The search box has a border (2) and horizontal padding (2).
const (
	searchBoxHChrome = 4
	searchBoxHeight  = 3
)

func newHintBody(ctx HintContext, template Template, f keysym.Formatter) (hintBody, tea.Cmd) {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "Search shortcuts"
	cmd := ti.Focus()

	b := hintBody{
		ctx:       ctx,
		template:  template,
		formatter: f,
		search:    ti,
		viewport:  viewport.New(0, 0),
	}
	b.natural = lipgloss.Width(b.tail())
	b.natural = max(b.natural, lipgloss.Width(template(ctx, f)), 30)
	return b, cmd
}

func (b hintBody) tail() string {
	if b.ctx.TailTemplate == nil {
		return ""
	}
	return b.ctx.TailTemplate()
}

func (b hintBody) Context() HintContext { return b.ctx }

func (b hintBody) NaturalWidth() int { return b.natural }

func (b hintBody) Resize(width, height int) DialogBody {
	b.width = width
	b.search.Width = max(width-searchBoxHChrome-lipgloss.Width(b.search.Prompt)-1, 1)

	b.maxHeight = height - searchBoxHeight
	if t := b.tail(); t != "" {
		b.maxHeight -= lipgloss.Height(t) + 1
	}
	b.maxHeight = max(b.maxHeight, 1)

	b.viewport.Width = width
	b.refresh()
	return b
}

// refresh re-renders the list for the current search text.
func (b *hintBody) refresh() {
	content := b.template(b.ctx, b.formatter)
	b.viewport.Height = min(lipgloss.Height(content), b.maxHeight)
	b.viewport.SetContent(content)
}

func (b hintBody) Update(msg tea.Msg) (DialogBody, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, Keys.ScrollUp, Keys.ScrollDown, Keys.PageUp, Keys.PageDown) {
			b.viewport, cmd = b.viewport.Update(msg)
			return b, cmd
		}

	case tea.MouseMsg:
		// Wheel scrolling.
		b.viewport, cmd = b.viewport.Update(msg)
		return b, cmd
	}

	b.search, cmd = b.search.Update(msg)
	if v := b.search.Value(); v != b.ctx.SearchText {
		b.ctx.SearchText = v
		b.refresh()
		b.viewport.GotoTop()
	}
	return b, cmd
}

func (b hintBody) View() string {
	box := SearchBoxStyle.
		Width(max(b.width-2, 0)). // -2 for border chars
		Render(b.search.View())

	out := box + "\n" + b.viewport.View()
	if t := b.tail(); t != "" {
		out += "\n\n" + t
	}
	return out
}
