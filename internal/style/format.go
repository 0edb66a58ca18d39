// Package style turns a category's style configuration into inline CSS.
package style

import (
	"strings"

	"github.com/f3rmion/reword/internal/reword"
)

// Format returns the inline CSS declarations for a style. Values are passed
// through verbatim; no color or size syntax is checked.
//
// When the underline style is none, no decoration declarations are emitted
// at all.
func Format(s reword.StyleConfig) string {
	var sb strings.Builder

	decl(&sb, "color", s.Color)
	decl(&sb, "background-color", s.BackgroundColor)
	decl(&sb, "font-weight", pick(s.IsBold, "bold", "normal"))
	decl(&sb, "font-style", pick(s.IsItalic, "italic", "normal"))

	if HasUnderline(s) {
		decl(&sb, "text-decoration-line", "underline")
		decl(&sb, "text-decoration-style", string(s.UnderlineStyle))
		decl(&sb, "text-decoration-color", s.UnderlineColor)
		decl(&sb, "text-underline-offset", s.UnderlineOffset)
	}

	decl(&sb, "font-size", s.FontSize)

	return strings.TrimSuffix(sb.String(), " ")
}

// HasUnderline reports whether the style draws a decoration line.
// An empty style is treated like none.
func HasUnderline(s reword.StyleConfig) bool {
	return s.UnderlineStyle != "" && s.UnderlineStyle != reword.UnderlineNone
}

// Original synthesizes the style of the original-text role from a category's
// original-text fields. Original text is never bold, italic or underlined.
func Original(s reword.StyleConfig) reword.StyleConfig {
	color := s.OriginalTextColor
	if color == "" {
		color = reword.DefaultOriginalTextColor
	}
	size := s.OriginalTextFontSize
	if size == "" {
		size = reword.DefaultOriginalTextFontSize
	}

	return reword.StyleConfig{
		Color:           color,
		BackgroundColor: "transparent",
		FontSize:        size,
		UnderlineStyle:  reword.UnderlineNone,
	}
}

// decl appends "name: value; " unless value is empty.
func decl(sb *strings.Builder, name, value string) {
	if value == "" {
		return
	}
	sb.WriteString(name)
	sb.WriteString(": ")
	sb.WriteString(value)
	sb.WriteString("; ")
}

func pick(cond bool, yes, no string) string {
	if cond {
		return yes
	}
	return no
}
