package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/f3rmion/reword/internal/layout"
	"github.com/f3rmion/reword/internal/markup"
	"github.com/f3rmion/reword/internal/preview"
	"github.com/f3rmion/reword/internal/reword"
)

// SaveFunc persists the edited settings.
type SaveFunc func(reword.AllSettings) error

// savedMsg reports the outcome of a save.
type savedMsg struct {
	err error
}

// EditorModel edits the per-category styles with a live preview.
type EditorModel struct {
	settings reword.AllSettings
	save     SaveFunc
	preview  *preview.Previewer

	tab    int // Index into reword.Categories
	cursor int // Index into fields

	editing bool
	input   textinput.Model

	status  string
	failed  bool
	dirty   bool
	quitAsk bool

	width    int
	height   int
	ready    bool
	showHelp bool
}

// NewEditor creates an editor over a copy of settings.
func NewEditor(settings reword.AllSettings, save SaveFunc) EditorModel {
	ti := textinput.New()
	ti.CharLimit = 64
	ti.Width = 30

	settings = cloneSettings(settings)
	for _, cat := range reword.Categories {
		if _, ok := settings.Styles[cat]; !ok {
			settings.Styles[cat] = reword.DefaultStyles()[cat]
		}
	}
	for cat, s := range settings.Styles {
		settings.Styles[cat] = layout.Normalize(s)
	}

	return EditorModel{
		settings: settings,
		save:     save,
		preview:  preview.New(nil),
		input:    ti,
	}
}

// Settings returns a copy of the edited settings.
func (m EditorModel) Settings() reword.AllSettings {
	return cloneSettings(m.settings)
}

// Dirty reports whether there are unsaved changes.
func (m EditorModel) Dirty() bool {
	return m.dirty
}

// Init initializes the model
func (m EditorModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case savedMsg:
		if msg.err != nil {
			m.setStatus("Save failed: "+msg.err.Error(), true)
			return m, nil
		}
		m.dirty = false
		m.setStatus("Saved", false)
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.updateInput(msg)
		}
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m EditorModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key != "q" && key != "esc" {
		m.quitAsk = false
	}

	switch key {
	case "ctrl+c":
		return m, tea.Quit
	case "q", "esc":
		if m.dirty && !m.quitAsk {
			m.quitAsk = true
			m.setStatus("Unsaved changes: press q again to quit, s to save", true)
			return m, nil
		}
		return m, tea.Quit
	case "?":
		m.showHelp = true
	case "tab", "right", "l":
		m.tab = (m.tab + 1) % len(reword.Categories)
	case "shift+tab", "left", "h":
		m.tab = (m.tab + len(reword.Categories) - 1) % len(reword.Categories)
	case "j", "down":
		if m.cursor < len(fields)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "enter", " ":
		f := fields[m.cursor]
		if f.next != nil {
			m.apply(func(s *reword.StyleConfig) error {
				f.next(&m.settings, s)
				return nil
			})
			return m, nil
		}
		s := m.style()
		m.editing = true
		m.input.SetValue(f.get(&m.settings, &s))
		m.input.CursorEnd()
		return m, m.input.Focus()
	case "s":
		if m.save == nil {
			return m, nil
		}
		snapshot, save := m.Settings(), m.save
		return m, func() tea.Msg {
			return savedMsg{err: save(snapshot)}
		}
	}

	return m, nil
}

func (m EditorModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editing = false
		m.input.Blur()
		return m, nil
	case "enter":
		m.editing = false
		m.input.Blur()

		f := fields[m.cursor]
		value := strings.TrimSpace(m.input.Value())
		if err := m.apply(func(s *reword.StyleConfig) error { return f.set(s, value) }); err != nil {
			m.setStatus(err.Error(), true)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// apply runs fn on a copy of the current category's style and stores the
// result. A failing fn leaves the settings as they were.
func (m *EditorModel) apply(fn func(s *reword.StyleConfig) error) error {
	cat := m.category()
	prev, prevOpts := m.settings.Styles[cat], m.settings.OriginalText

	s := cloneStyle(prev)
	if err := fn(&s); err != nil {
		return err
	}

	m.settings.Styles[cat] = s
	if prevOpts != m.settings.OriginalText || !styleEqual(prev, s) {
		m.dirty = true
		m.setStatus("", false)
	}
	return nil
}

func (m *EditorModel) setStatus(s string, failed bool) {
	m.status = s
	m.failed = failed
}

func (m EditorModel) category() reword.WordCategory {
	return reword.Categories[m.tab]
}

func (m EditorModel) style() reword.StyleConfig {
	return m.settings.Styles[m.category()]
}

// View renders the UI
func (m EditorModel) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}

	var b strings.Builder

	b.WriteString(TitleStyle.Render("Reword Styles"))
	b.WriteString("\n\n")

	var tabs []string
	for i, cat := range reword.Categories {
		style := TabStyle
		if i == m.tab {
			style = TabActiveStyle
		}
		tabs = append(tabs, style.Render(string(cat)))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n")
	b.WriteString(DividerStyle.Render(strings.Repeat("─", max(min(m.width-4, 60), 10))))
	b.WriteString("\n")

	s := m.style()
	for i, f := range fields {
		value := f.get(&m.settings, &s)
		if i == m.cursor && m.editing {
			value = m.input.View()
		}

		row := LabelStyle.Render(f.label) + ValueStyle.Render(value)
		if i == m.cursor {
			row = RowActiveStyle.Render("> ") + row
		} else {
			row = "  " + row
		}
		b.WriteString(row)
		b.WriteString("\n")
	}

	lines, _ := m.preview.Category(m.settings, m.category())
	b.WriteString(PreviewBoxStyle.Render(strings.Join(lines, "\n")))
	b.WriteString("\n")

	fragment, err := markup.NewBuilder(m.settings.Styles, m.settings.OriginalText).
		Build(preview.SampleOriginal, preview.SampleTranslation, m.category(), "preview")
	if err == nil {
		b.WriteString(MarkupStyle.Width(max(m.width-4, 20)).Render(fragment))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		if m.failed {
			b.WriteString(ErrorStyle.Render(m.status))
		} else {
			b.WriteString(SavedStyle.Render(m.status))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(HelpStyle.Render("tab: category • j/k: field • enter: change • s: save • ? help • q quit"))

	return ContentStyle.Render(b.String())
}

// renderHelp renders the help overlay
func (m EditorModel) renderHelp() string {
	keyStyle := lipgloss.NewStyle().
		Foreground(ColorAccent).
		Width(14)

	descStyle := lipgloss.NewStyle().
		Foreground(ColorText)

	keys := [][2]string{
		{"tab / ←→", "Switch category"},
		{"j/k ↑/↓", "Select field"},
		{"enter/space", "Toggle, cycle or edit"},
		{"esc", "Cancel editing"},
		{"s", "Save settings"},
		{"q", "Quit"},
	}

	helpText := SubtitleStyle.Bold(true).Render("Keys") + "\n"
	for _, k := range keys {
		helpText += keyStyle.Render(k[0]) + descStyle.Render(k[1]) + "\n"
	}
	helpText += "\n" + HelpStyle.Italic(true).Render("Press any key to close")

	box := PreviewBoxStyle.Width(50).Render(helpText)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func cloneSettings(s reword.AllSettings) reword.AllSettings {
	styles := make(map[reword.WordCategory]reword.StyleConfig, len(s.Styles))
	for cat, st := range s.Styles {
		styles[cat] = cloneStyle(st)
	}
	s.Styles = styles
	return s
}

func cloneStyle(s reword.StyleConfig) reword.StyleConfig {
	if s.Horizontal != nil {
		h := *s.Horizontal
		s.Horizontal = &h
	}
	if s.Vertical != nil {
		v := *s.Vertical
		s.Vertical = &v
	}
	return s
}

func styleEqual(a, b reword.StyleConfig) bool {
	deref := func(s reword.StyleConfig) (reword.StyleConfig, reword.LayoutSpecificConfig, reword.LayoutSpecificConfig) {
		var h, v reword.LayoutSpecificConfig
		if s.Horizontal != nil {
			h = *s.Horizontal
		}
		if s.Vertical != nil {
			v = *s.Vertical
		}
		s.Horizontal, s.Vertical = nil, nil
		return s, h, v
	}
	as, ah, av := deref(a)
	bs, bh, bv := deref(b)
	return as == bs && ah == bh && av == bv
}
