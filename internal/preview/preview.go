// Package preview renders a replaced word inside a sample sentence on the
// terminal, so a category's style can be judged without a browser.
package preview

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/f3rmion/reword/internal/layout"
	"github.com/f3rmion/reword/internal/reword"
	"github.com/f3rmion/reword/internal/style"
)

// The sample sentence shown by the style editor, split around the word.
const (
	SampleBefore      = "每次网上冲浪时，我都能"
	SampleAfter       = "更多的单词。"
	SampleOriginal    = "记住"
	SampleTranslation = "remember"
)

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Previewer renders replacements with a fixed lipgloss renderer.
type Previewer struct {
	r *lipgloss.Renderer
}

// New returns a previewer drawing through r. A nil r uses the default
// renderer.
func New(r *lipgloss.Renderer) *Previewer {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Previewer{r: r}
}

// Word renders the replacement of original by translation. Horizontal
// layouts yield one line, vertical layouts two: the base line and the
// annotation line, in top to bottom order.
func (p *Previewer) Word(original, translation string, s reword.StyleConfig, opts reword.OriginalTextConfig) []string {
	return p.Sentence("", original, translation, "", s, opts)
}

// Sentence renders before + replacement + after. In vertical layouts the
// annotation is centered over or under the base text.
func (p *Previewer) Sentence(before, original, translation, after string, s reword.StyleConfig, opts reword.OriginalTextConfig) []string {
	trans := p.textStyle(s)
	orig := p.textStyle(style.Original(s))

	res := layout.Resolve(s)
	if !opts.Show {
		return []string{before + trans.Render(res.Wrapper(layout.RoleTranslation).Wrap(translation)) + after}
	}

	texts := map[layout.Role]string{
		layout.RoleTranslation: res.Wrapper(layout.RoleTranslation).Wrap(translation),
		layout.RoleOriginal:    res.Wrapper(layout.RoleOriginal).Wrap(original),
	}
	styles := map[layout.Role]lipgloss.Style{
		layout.RoleTranslation: trans,
		layout.RoleOriginal:    orig,
	}

	if !res.Vertical() {
		var sb strings.Builder
		sb.WriteString(before)
		for _, role := range res.Order {
			sb.WriteString(styles[role].Render(texts[role]))
		}
		sb.WriteString(after)
		return []string{sb.String()}
	}

	base, ann := texts[res.Base], texts[res.Annotation]
	baseWidth := runewidth.StringWidth(base)
	annWidth := runewidth.StringWidth(ann)

	// The wider of the two sets the column; the other is centered in it.
	col := max(baseWidth, annWidth)
	lead := runewidth.StringWidth(before)

	baseLine := before +
		strings.Repeat(" ", (col-baseWidth)/2) +
		styles[res.Base].Render(base) +
		strings.Repeat(" ", col-baseWidth-(col-baseWidth)/2) +
		after
	annLine := strings.Repeat(" ", lead+(col-annWidth)/2) + styles[res.Annotation].Render(ann)

	if res.RubyPosition == layout.RubyOver {
		return []string{annLine, baseLine}
	}
	return []string{baseLine, annLine}
}

// Category renders the sample sentence for one category of settings.
func (p *Previewer) Category(settings reword.AllSettings, cat reword.WordCategory) ([]string, bool) {
	s, ok := settings.Styles[cat]
	if !ok {
		return nil, false
	}
	return p.Sentence(SampleBefore, SampleOriginal, SampleTranslation, SampleAfter, s, settings.OriginalText), true
}

// textStyle maps the terminal-expressible parts of a style onto lipgloss.
// Colors other than hex literals and all sizes are ignored.
func (p *Previewer) textStyle(s reword.StyleConfig) lipgloss.Style {
	st := p.r.NewStyle().
		Bold(s.IsBold).
		Italic(s.IsItalic).
		Underline(style.HasUnderline(s))

	if hexColor.MatchString(s.Color) {
		st = st.Foreground(lipgloss.Color(s.Color))
	}
	if hexColor.MatchString(s.BackgroundColor) {
		st = st.Background(lipgloss.Color(s.BackgroundColor))
	}
	return st
}
