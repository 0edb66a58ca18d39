package reword

// Fallbacks for the original-text role when a category leaves them empty.
const (
	DefaultOriginalTextColor    = "#94a3b8"
	DefaultOriginalTextFontSize = "0.85em"
)

// DefaultHorizontal returns the horizontal layout used when a category has
// none: original text after the translation, wrapped in parentheses.
func DefaultHorizontal() LayoutSpecificConfig {
	return LayoutSpecificConfig{
		TranslationFirst: false,
		Wrappers: Wrappers{
			Original: Wrapper{Prefix: "(", Suffix: ")"},
		},
	}
}

// DefaultVertical returns the vertical layout used when a category has none:
// translation on the baseline, original as the annotation.
func DefaultVertical() LayoutSpecificConfig {
	return LayoutSpecificConfig{
		TranslationFirst: true,
		BaselineTarget:   BaselineTranslation,
	}
}

// DefaultStyles returns the first-run style table.
func DefaultStyles() map[WordCategory]StyleConfig {
	base := func(color, bg string, bold bool, underline UnderlineStyle, density float64) StyleConfig {
		h, v := DefaultHorizontal(), DefaultVertical()
		return StyleConfig{
			Color:                color,
			BackgroundColor:      bg,
			IsBold:               bold,
			FontSize:             "1em",
			UnderlineStyle:       underline,
			UnderlineColor:       color,
			UnderlineOffset:      "2px",
			OriginalTextColor:    DefaultOriginalTextColor,
			OriginalTextFontSize: DefaultOriginalTextFontSize,
			LayoutMode:           LayoutHorizontal,
			Horizontal:           &h,
			Vertical:             &v,
			DensityMode:          DensityPercent,
			DensityValue:         density,
		}
	}

	return map[WordCategory]StyleConfig{
		CategoryKnown:    base("#16a34a", "transparent", false, UnderlineNone, 10),
		CategoryWant:     base("#2563eb", "#eff6ff", true, UnderlineDotted, 100),
		CategoryLearning: base("#d97706", "#fffbeb", true, UnderlineWavy, 100),
	}
}

// DefaultSettings returns the settings a fresh install starts with.
func DefaultSettings() AllSettings {
	return AllSettings{
		AutoTranslate: AutoTranslateConfig{
			Enabled:          true,
			MatchInflections: true,
			Blacklist:        []string{},
			Whitelist:        []string{},
			TTSSpeed:         1,
		},
		Interaction: WordInteractionConfig{
			MainTrigger:         Trigger{Modifier: "none", Action: "hover", Delay: 300},
			QuickAddTrigger:     Trigger{Modifier: "alt", Action: "click", Delay: 0},
			BubblePosition:      "top",
			ShowPhonetic:        true,
			ShowOriginalText:    true,
			ShowDictExample:     true,
			ShowDictTranslation: true,
			AutoPronounceAccent: "US",
			AutoPronounceCount:  1,
			DismissDelay:        300,
			OnlineDictURL:       "https://www.youdao.com/result?word={word}&lang=en",
		},
		PageWidget: PageWidgetConfig{
			Enabled:          true,
			X:                -1,
			Y:                -1,
			ShowPhonetic:     true,
			ShowMeaning:      true,
			ShowPartOfSpeech: true,
			ShowSections:     SectionToggles{Known: false, Want: true, Learning: true},
			CardDisplay: []CardDisplayItem{
				{ID: "context", Label: "Context", Enabled: true},
				{ID: "mixed", Label: "Mixed sentence", Enabled: true},
				{ID: "dictExample", Label: "Dictionary example", Enabled: true},
			},
		},
		Anki: AnkiConfig{
			URL:              "http://127.0.0.1:8765",
			DeckNameWant:     "Reword::Want",
			DeckNameLearning: "Reword::Learning",
			ModelName:        "Basic",
			SyncInterval:     90,
			Templates: AnkiTemplates{
				FrontTemplate: "{{word}}",
				BackTemplate:  "{{meaning}}<br>{{context}}",
			},
		},
		OriginalText: OriginalTextConfig{Show: true},
		Styles:       DefaultStyles(),
		Scenarios: []Scenario{
			{ID: "1", Name: "General", IsActive: true},
		},
		Engines: []TranslationEngine{
			{ID: "google", Name: "Google Translate", Type: "standard", IsEnabled: true},
		},
		Dictionaries: []DictionaryEngine{
			{ID: "youdao", Name: "Youdao", Endpoint: "https://dict.youdao.com/jsonapi", Link: "https://www.youdao.com/result?word={word}&lang=en", IsEnabled: true, Priority: 1},
		},
	}
}
