// Package layout decides element order, wrappers and ruby placement for a
// replaced word.
package layout

import "github.com/f3rmion/reword/internal/reword"

// Role is one of the two texts of a replacement.
type Role string

const (
	RoleTranslation Role = "translation"
	RoleOriginal    Role = "original"
)

// RubyPosition is where the annotation sits relative to the base in
// vertical mode.
type RubyPosition string

const (
	RubyOver  RubyPosition = "over"
	RubyUnder RubyPosition = "under"
)

// Resolution is the resolved layout of one category.
type Resolution struct {
	Mode     reword.LayoutMode
	Order    [2]Role // Reading order
	Wrappers reword.Wrappers

	// Vertical mode only.
	Base         Role
	Annotation   Role
	RubyPosition RubyPosition
}

// Vertical reports whether the resolution is a ruby layout.
func (r Resolution) Vertical() bool {
	return r.Mode == reword.LayoutVertical
}

// Wrapper returns the wrapper of a role.
func (r Resolution) Wrapper(role Role) reword.Wrapper {
	if role == RoleOriginal {
		return r.Wrappers.Original
	}
	return r.Wrappers.Translation
}

// Normalize fills the gaps older settings may have: a missing layout mode
// becomes horizontal and missing per-mode configs get the defaults. The
// input is not modified.
func Normalize(s reword.StyleConfig) reword.StyleConfig {
	if s.LayoutMode != reword.LayoutVertical {
		s.LayoutMode = reword.LayoutHorizontal
	}
	if s.Horizontal == nil {
		h := reword.DefaultHorizontal()
		s.Horizontal = &h
	}
	if s.Vertical == nil {
		v := reword.DefaultVertical()
		s.Vertical = &v
	}
	return s
}

// Active returns the per-mode config selected by the style's layout mode,
// normalizing first.
func Active(s reword.StyleConfig) (reword.LayoutMode, reword.LayoutSpecificConfig) {
	s = Normalize(s)
	if s.LayoutMode == reword.LayoutVertical {
		return s.LayoutMode, *s.Vertical
	}
	return s.LayoutMode, *s.Horizontal
}

// Resolve computes the layout for a style in its active mode.
func Resolve(s reword.StyleConfig) Resolution {
	mode, cfg := Active(s)
	return resolve(mode, cfg)
}

func resolve(mode reword.LayoutMode, cfg reword.LayoutSpecificConfig) Resolution {
	r := Resolution{
		Mode:     mode,
		Wrappers: cfg.Wrappers,
		Order:    [2]Role{RoleOriginal, RoleTranslation},
	}
	if cfg.TranslationFirst {
		r.Order = [2]Role{RoleTranslation, RoleOriginal}
	}

	if mode != reword.LayoutVertical {
		return r
	}

	r.Base, r.Annotation = RoleOriginal, RoleTranslation
	if cfg.BaselineTarget == reword.BaselineTranslation {
		r.Base, r.Annotation = RoleTranslation, RoleOriginal
	}
	r.RubyPosition = rubyPosition(r.Base, cfg.TranslationFirst)

	return r
}

// rubyPosition places the annotation so the pair still reads in the
// configured order from top to bottom.
//
//	base=translation, translationFirst  -> under
//	base=translation, !translationFirst -> over
//	base=original,    translationFirst  -> over
//	base=original,    !translationFirst -> under
func rubyPosition(base Role, translationFirst bool) RubyPosition {
	baseIsTranslation := base == RoleTranslation
	if baseIsTranslation == translationFirst {
		return RubyUnder
	}
	return RubyOver
}
