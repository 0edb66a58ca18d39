// Package reword provides the settings data model shared by the renderer
// and the backup format.
package reword

// WordCategory identifies a word's learning state. It keys the per-category
// style table.
type WordCategory string

const (
	CategoryKnown    WordCategory = "known"    // Already mastered
	CategoryWant     WordCategory = "want"     // Marked as want-to-learn
	CategoryLearning WordCategory = "learning" // Currently being learned
)

// Categories lists every category in display order.
var Categories = []WordCategory{CategoryKnown, CategoryWant, CategoryLearning}

// Valid reports whether c is one of the fixed categories.
func (c WordCategory) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// UnderlineStyle is the decoration line style of the translation text.
type UnderlineStyle string

const (
	UnderlineNone   UnderlineStyle = "none"
	UnderlineSolid  UnderlineStyle = "solid"
	UnderlineDashed UnderlineStyle = "dashed"
	UnderlineDotted UnderlineStyle = "dotted"
	UnderlineWavy   UnderlineStyle = "wavy"
)

// LayoutMode selects how the translation and original text are arranged.
type LayoutMode string

const (
	LayoutHorizontal LayoutMode = "horizontal" // Inline pair
	LayoutVertical   LayoutMode = "vertical"   // Ruby-annotated pair
)

// DensityMode selects how densityValue is interpreted.
type DensityMode string

const (
	DensityCount   DensityMode = "count"   // Fixed number of words
	DensityPercent DensityMode = "percent" // Share of eligible words, 0-100
)

// BaselineTarget names the role that stays on the baseline in vertical mode.
type BaselineTarget string

const (
	BaselineOriginal    BaselineTarget = "original"
	BaselineTranslation BaselineTarget = "translation"
)

// Wrapper is a literal prefix/suffix decorating one role's text.
type Wrapper struct {
	Prefix string `yaml:"prefix" json:"prefix"`
	Suffix string `yaml:"suffix" json:"suffix"`
}

// Wrap returns text decorated with the prefix and suffix.
func (w Wrapper) Wrap(text string) string {
	return w.Prefix + text + w.Suffix
}

// Wrappers holds the wrapper of each role.
type Wrappers struct {
	Translation Wrapper `yaml:"translation" json:"translation"`
	Original    Wrapper `yaml:"original" json:"original"`
}

// LayoutSpecificConfig is the per-mode layout configuration of a category.
type LayoutSpecificConfig struct {
	TranslationFirst bool           `yaml:"translationFirst" json:"translationFirst"`
	Wrappers         Wrappers       `yaml:"wrappers" json:"wrappers"`
	BaselineTarget   BaselineTarget `yaml:"baselineTarget,omitempty" json:"baselineTarget,omitempty"` // Vertical mode only
}

// StyleConfig is the visual style of one word category.
//
// Horizontal and Vertical are both kept so switching modes does not lose the
// inactive configuration. They may be nil on data written by older versions.
type StyleConfig struct {
	Color                string                `yaml:"color" json:"color"`
	BackgroundColor      string                `yaml:"backgroundColor" json:"backgroundColor"`
	IsBold               bool                  `yaml:"isBold" json:"isBold"`
	IsItalic             bool                  `yaml:"isItalic" json:"isItalic"`
	FontSize             string                `yaml:"fontSize" json:"fontSize"`
	UnderlineStyle       UnderlineStyle        `yaml:"underlineStyle" json:"underlineStyle"`
	UnderlineColor       string                `yaml:"underlineColor" json:"underlineColor"`
	UnderlineOffset      string                `yaml:"underlineOffset" json:"underlineOffset"`
	OriginalTextColor    string                `yaml:"originalTextColor" json:"originalTextColor"`
	OriginalTextFontSize string                `yaml:"originalTextFontSize" json:"originalTextFontSize"`
	LayoutMode           LayoutMode            `yaml:"layoutMode" json:"layoutMode"`
	Horizontal           *LayoutSpecificConfig `yaml:"horizontal,omitempty" json:"horizontal,omitempty"`
	Vertical             *LayoutSpecificConfig `yaml:"vertical,omitempty" json:"vertical,omitempty"`
	DensityMode          DensityMode           `yaml:"densityMode" json:"densityMode"`
	DensityValue         float64               `yaml:"densityValue" json:"densityValue"`
}

// OriginalTextConfig is the global original-text toggle. When Show is false
// the original text is never rendered.
type OriginalTextConfig struct {
	Show bool `yaml:"show" json:"show"`
}
