package tui

import (
	"fmt"
	"math"
	"strconv"

	"github.com/f3rmion/reword/internal/reword"
)

// Density limits enforced by the editor.
const (
	maxDensityPercent = 100
	maxDensityCount   = 50
)

// field is one editable row. A field either cycles through values with
// next or takes free text with set.
type field struct {
	label string
	get   func(a *reword.AllSettings, s *reword.StyleConfig) string
	next  func(a *reword.AllSettings, s *reword.StyleConfig)
	set   func(s *reword.StyleConfig, text string) error
}

var underlineCycle = []reword.UnderlineStyle{
	reword.UnderlineNone,
	reword.UnderlineSolid,
	reword.UnderlineDashed,
	reword.UnderlineDotted,
	reword.UnderlineWavy,
}

// activeLayout returns the per-mode config in use. s must be normalized.
func activeLayout(s *reword.StyleConfig) *reword.LayoutSpecificConfig {
	if s.LayoutMode == reword.LayoutVertical {
		return s.Vertical
	}
	return s.Horizontal
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func text(get func(s *reword.StyleConfig) *string) field {
	return field{
		get: func(_ *reword.AllSettings, s *reword.StyleConfig) string { return *get(s) },
		set: func(s *reword.StyleConfig, v string) error {
			*get(s) = v
			return nil
		},
	}
}

func labeled(label string, f field) field {
	f.label = label
	return f
}

func densityMax(mode reword.DensityMode) float64 {
	if mode == reword.DensityCount {
		return maxDensityCount
	}
	return maxDensityPercent
}

var fields = []field{
	{
		label: "Layout",
		get:   func(_ *reword.AllSettings, s *reword.StyleConfig) string { return string(s.LayoutMode) },
		next: func(_ *reword.AllSettings, s *reword.StyleConfig) {
			if s.LayoutMode == reword.LayoutVertical {
				s.LayoutMode = reword.LayoutHorizontal
			} else {
				s.LayoutMode = reword.LayoutVertical
			}
		},
	},
	{
		label: "Translation first",
		get: func(_ *reword.AllSettings, s *reword.StyleConfig) string {
			return yesNo(activeLayout(s).TranslationFirst)
		},
		next: func(_ *reword.AllSettings, s *reword.StyleConfig) {
			l := activeLayout(s)
			l.TranslationFirst = !l.TranslationFirst
		},
	},
	{
		label: "Baseline",
		get: func(_ *reword.AllSettings, s *reword.StyleConfig) string {
			if s.LayoutMode != reword.LayoutVertical {
				return "-"
			}
			if s.Vertical.BaselineTarget == reword.BaselineTranslation {
				return string(reword.BaselineTranslation)
			}
			return string(reword.BaselineOriginal)
		},
		next: func(_ *reword.AllSettings, s *reword.StyleConfig) {
			if s.LayoutMode != reword.LayoutVertical {
				return
			}
			if s.Vertical.BaselineTarget == reword.BaselineTranslation {
				s.Vertical.BaselineTarget = reword.BaselineOriginal
			} else {
				s.Vertical.BaselineTarget = reword.BaselineTranslation
			}
		},
	},
	{
		label: "Show original",
		get:   func(a *reword.AllSettings, _ *reword.StyleConfig) string { return yesNo(a.OriginalText.Show) },
		next:  func(a *reword.AllSettings, _ *reword.StyleConfig) { a.OriginalText.Show = !a.OriginalText.Show },
	},
	{
		label: "Bold",
		get:   func(_ *reword.AllSettings, s *reword.StyleConfig) string { return yesNo(s.IsBold) },
		next:  func(_ *reword.AllSettings, s *reword.StyleConfig) { s.IsBold = !s.IsBold },
	},
	{
		label: "Italic",
		get:   func(_ *reword.AllSettings, s *reword.StyleConfig) string { return yesNo(s.IsItalic) },
		next:  func(_ *reword.AllSettings, s *reword.StyleConfig) { s.IsItalic = !s.IsItalic },
	},
	{
		label: "Underline",
		get: func(_ *reword.AllSettings, s *reword.StyleConfig) string {
			if s.UnderlineStyle == "" {
				return string(reword.UnderlineNone)
			}
			return string(s.UnderlineStyle)
		},
		next: func(_ *reword.AllSettings, s *reword.StyleConfig) {
			for i, u := range underlineCycle {
				if u == s.UnderlineStyle {
					s.UnderlineStyle = underlineCycle[(i+1)%len(underlineCycle)]
					return
				}
			}
			s.UnderlineStyle = reword.UnderlineSolid
		},
	},
	labeled("Color", text(func(s *reword.StyleConfig) *string { return &s.Color })),
	labeled("Background", text(func(s *reword.StyleConfig) *string { return &s.BackgroundColor })),
	labeled("Font size", text(func(s *reword.StyleConfig) *string { return &s.FontSize })),
	labeled("Underline color", text(func(s *reword.StyleConfig) *string { return &s.UnderlineColor })),
	labeled("Underline offset", text(func(s *reword.StyleConfig) *string { return &s.UnderlineOffset })),
	labeled("Original color", text(func(s *reword.StyleConfig) *string { return &s.OriginalTextColor })),
	labeled("Original size", text(func(s *reword.StyleConfig) *string { return &s.OriginalTextFontSize })),
	labeled("Translation prefix", text(func(s *reword.StyleConfig) *string { return &activeLayout(s).Wrappers.Translation.Prefix })),
	labeled("Translation suffix", text(func(s *reword.StyleConfig) *string { return &activeLayout(s).Wrappers.Translation.Suffix })),
	labeled("Original prefix", text(func(s *reword.StyleConfig) *string { return &activeLayout(s).Wrappers.Original.Prefix })),
	labeled("Original suffix", text(func(s *reword.StyleConfig) *string { return &activeLayout(s).Wrappers.Original.Suffix })),
	{
		label: "Density mode",
		get:   func(_ *reword.AllSettings, s *reword.StyleConfig) string { return string(s.DensityMode) },
		next: func(_ *reword.AllSettings, s *reword.StyleConfig) {
			if s.DensityMode == reword.DensityCount {
				s.DensityMode = reword.DensityPercent
			} else {
				s.DensityMode = reword.DensityCount
			}
			s.DensityValue = min(s.DensityValue, densityMax(s.DensityMode))
		},
	},
	{
		label: "Density",
		get: func(_ *reword.AllSettings, s *reword.StyleConfig) string {
			return strconv.FormatFloat(s.DensityValue, 'f', -1, 64)
		},
		set: func(s *reword.StyleConfig, v string) error {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return fmt.Errorf("density must be a number: %q", v)
			}
			if limit := densityMax(s.DensityMode); math.IsNaN(f) || f < 0 || f > limit {
				return fmt.Errorf("density must be between 0 and %g", limit)
			}
			s.DensityValue = f
			return nil
		},
	},
}
