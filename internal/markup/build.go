// Package markup builds the HTML fragment that replaces a word on a page.
package markup

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/f3rmion/reword/internal/layout"
	"github.com/f3rmion/reword/internal/reword"
	"github.com/f3rmion/reword/internal/style"
)

// Class names and data attributes read back by the page scripts.
const (
	WrapperClass      = "reword-wrapper"
	TargetClass       = "reword-target"
	AttrEntryID       = "data-entry-id"
	AttrOriginalText  = "data-original-text"
	hoverBorderColor  = "rgba(59, 130, 246, 0.5)"
	containerCSS      = "margin: 0; padding: 0; display: inline;"
	rubyContainerCSS  = "margin: 0; padding: 0; ruby-align: start; -webkit-ruby-align: start; text-align: left;"
	rtCSS             = "font-size: 100%; font-family: inherit;"
	compactCSS        = "line-height: 1;"
	baselineCSSFormat = "line-height: normal; vertical-align: baseline; font-size: %s;"
)

// ErrUnknownCategory is returned when the style table has no entry for the
// requested category.
var ErrUnknownCategory = errors.New("unknown word category")

// Builder renders replacements against one snapshot of the style settings.
// It only reads its inputs and is safe for concurrent use.
type Builder struct {
	styles   map[reword.WordCategory]reword.StyleConfig
	original reword.OriginalTextConfig
}

// NewBuilder creates a builder for the given styles and original-text toggle.
func NewBuilder(styles map[reword.WordCategory]reword.StyleConfig, original reword.OriginalTextConfig) *Builder {
	return &Builder{styles: styles, original: original}
}

// Build renders the fragment for one occurrence. originalText is the text on
// the page, replacementText the translation shown in its place and
// instanceID a stable identifier of this occurrence.
func Build(originalText, replacementText string, category reword.WordCategory,
	styles map[reword.WordCategory]reword.StyleConfig, original reword.OriginalTextConfig,
	instanceID string) (string, error) {
	return NewBuilder(styles, original).Build(originalText, replacementText, category, instanceID)
}

// Build renders the fragment for one occurrence.
func (b *Builder) Build(originalText, replacementText string, category reword.WordCategory, instanceID string) (string, error) {
	cfg, ok := b.styles[category]
	if !ok {
		return "", fmt.Errorf("building replacement for %q: %w", category, ErrUnknownCategory)
	}

	res := layout.Resolve(cfg)
	origStyle := style.Original(cfg)

	var transOverride, origOverride string
	if res.Vertical() {
		if res.Base == layout.RoleTranslation {
			transOverride = fmt.Sprintf(baselineCSSFormat, cfg.FontSize)
			origOverride = compactCSS
		} else {
			origOverride = fmt.Sprintf(baselineCSSFormat, origStyle.FontSize)
			transOverride = compactCSS
		}
	}

	trans := element(atom.Span,
		attr("style", css(style.Format(cfg), "border-bottom: 2px solid transparent;", transOverride)),
		attr("class", TargetClass),
		attr(AttrEntryID, instanceID),
		attr(AttrOriginalText, originalText),
		attr("onmouseover", "this.style.borderColor='"+hoverBorderColor+"'"),
		attr("onmouseout", "this.style.borderColor='transparent'"),
	)
	trans.AppendChild(text(res.Wrapper(layout.RoleTranslation).Wrap(replacementText)))

	var root *html.Node
	switch {
	case !b.original.Show:
		root = container(trans)

	case !res.Vertical():
		orig := originalElement(origStyle, origOverride, res.Wrapper(layout.RoleOriginal).Wrap(originalText))
		nodes := map[layout.Role]*html.Node{layout.RoleTranslation: trans, layout.RoleOriginal: orig}
		root = container(nodes[res.Order[0]], nodes[res.Order[1]])

	default:
		orig := originalElement(origStyle, origOverride, res.Wrapper(layout.RoleOriginal).Wrap(originalText))
		nodes := map[layout.Role]*html.Node{layout.RoleTranslation: trans, layout.RoleOriginal: orig}
		root = ruby(res.RubyPosition, nodes[res.Base], nodes[res.Annotation])
	}

	var sb strings.Builder
	if err := html.Render(&sb, root); err != nil {
		return "", fmt.Errorf("rendering replacement: %w", err)
	}
	return sb.String(), nil
}

func originalElement(s reword.StyleConfig, override, content string) *html.Node {
	n := element(atom.Span, attr("style", css(style.Format(s), "white-space: nowrap;", override)))
	n.AppendChild(text(content))
	return n
}

// container is the neutral inline wrapper of horizontal and translation-only
// layouts.
func container(children ...*html.Node) *html.Node {
	n := element(atom.Span, attr("class", WrapperClass), attr("style", containerCSS))
	for _, c := range children {
		n.AppendChild(c)
	}
	return n
}

// ruby attaches the annotation to the base as a reading.
func ruby(pos layout.RubyPosition, base, annotation *html.Node) *html.Node {
	n := element(atom.Ruby,
		attr("class", WrapperClass),
		attr("style", css("ruby-position: "+string(pos)+";", rubyContainerCSS)),
	)
	n.AppendChild(base)

	rt := element(atom.Rt, attr("style", rtCSS))
	rt.AppendChild(annotation)
	n.AppendChild(rt)

	return n
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

// css joins declaration lists, skipping empty ones.
func css(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}
