package backup

import "github.com/f3rmion/reword/internal/reword"

// Section is a top-level key of the settings document.
type Section string

const (
	SectionAutoTranslate Section = "auto_translate"
	SectionInteraction   Section = "interaction"
	SectionPageWidget    Section = "page_widget"
	SectionAnki          Section = "anki"
	SectionLayoutStyle   Section = "layout_style"
	SectionVisualStyles  Section = "visual_styles"
	SectionScenarios     Section = "scenarios"
	SectionEngines       Section = "engines"
	SectionDictionaries  Section = "dictionaries"
)

// Sections lists every known section in document order.
var Sections = []Section{
	SectionAutoTranslate,
	SectionInteraction,
	SectionPageWidget,
	SectionAnki,
	SectionLayoutStyle,
	SectionVisualStyles,
	SectionScenarios,
	SectionEngines,
	SectionDictionaries,
}

// fieldDoc is the comment written above one field.
type fieldDoc struct {
	Comment string
	Options string
}

// fieldDocs describes the fixed-field sections, keyed by section and then by
// YAML field name. Fields without an entry are written without comments.
var fieldDocs = map[Section]map[string]fieldDoc{
	SectionAutoTranslate: {
		"enabled":            {"Master switch: enable the extension", "true (on), false (off)"},
		"bilingualMode":      {"Bilingual mode: append the translation after each paragraph", "true, false"},
		"translateWholePage": {"Whole page scan: include sidebars, footers and other non-core areas", "true, false"},
		"matchInflections":   {"Inflection matching: recognize plurals, tenses and other forms", "true, false"},
		"aggressiveMode":     {"Aggressive mode: fetch every meaning from the API for a second fuzzy match (uses more traffic)", "true, false"},
		"blacklist":          {"Blacklisted domains (never translated)", `Array of strings (e.g. ["example.com"])`},
		"whitelist":          {"Whitelisted domains (always translated)", "Array of strings"},
		"ttsSpeed":           {"Text-to-speech speed multiplier", "0.25 - 3.0"},
	},
	SectionInteraction: {
		"mainTrigger":          {"How the lookup bubble is triggered", "Object { modifier, action, delay }"},
		"quickAddTrigger":      {"How quick-add (to learning) is triggered", "Object { modifier, action, delay }"},
		"bubblePosition":       {"Where the bubble appears", `"top", "bottom", "left", "right"`},
		"showPhonetic":         {"Show phonetics in the bubble", "true, false"},
		"showOriginalText":     {"Show the original text in the bubble", "true, false"},
		"showDictExample":      {"Show dictionary examples in the bubble", "true, false"},
		"showDictTranslation":  {"Show meanings in the bubble", "true, false"},
		"autoPronounce":        {"Pronounce the word when the bubble appears", "true, false"},
		"autoPronounceAccent":  {"Accent used for automatic pronunciation", `"US", "UK"`},
		"autoPronounceCount":   {"How many times to pronounce", "Integer (0-5)"},
		"dismissDelay":         {"Delay before the bubble hides (milliseconds)", "Integer"},
		"allowMultipleBubbles": {"Allow several bubbles at once", "true, false"},
		"onlineDictUrl":        {"Online dictionary link template", "String ({word} is replaced)"},
	},
	SectionPageWidget: {
		"enabled":                {"Enable the floating widget", "true, false"},
		"x":                      {"Widget X position (saved automatically)", "Number"},
		"y":                      {"Widget Y position (saved automatically)", "Number"},
		"showPhonetic":           {"Show phonetics in the word list", "true, false"},
		"showMeaning":            {"Show meanings in the word list", "true, false"},
		"showMultiExamples":      {"Show several examples in the word list", "true, false"},
		"showExampleTranslation": {"Show example translations", "true, false"},
		"showContextTranslation": {"Show the translation of the source sentence", "true, false"},
		"showInflections":        {"Show inflections", "true, false"},
		"showPartOfSpeech":       {"Show part of speech", "true, false"},
		"showTags":               {"Show level tags", "true, false"},
		"showImportance":         {"Show importance stars", "true, false"},
		"showCocaRank":           {"Show COCA rank", "true, false"},
		"showSections":           {"Word categories listed", "{ known: bool, want: bool, learning: bool }"},
		"cardDisplay":            {"Card blocks, in order, with on/off switches", "Array of objects"},
	},
	SectionAnki: {
		"enabled":          {"Enable the Anki integration", "true, false"},
		"url":              {"AnkiConnect address", "URL string"},
		"deckNameWant":     {"Deck receiving want-to-learn words", "String"},
		"deckNameLearning": {"Deck receiving learning words", "String"},
		"modelName":        {"Note type used for new cards", "String"},
		"syncInterval":     {"Days after which a card counts as mastered", "Integer"},
		"autoSync":         {"Synchronize automatically", "true, false"},
		"templates":        {"Card templates (HTML)", "{ frontTemplate, backTemplate }"},
	},
	SectionLayoutStyle: {
		"show": {"Show the original text next to replacements", "true, false"},
	},
}

// styleFieldDocs are the trailing comments of each category's style block.
var styleFieldDocs = map[string]string{
	"color":                "Text color",
	"backgroundColor":      "Background color",
	"isBold":               "Bold",
	"isItalic":             "Italic",
	"fontSize":             "Font size",
	"underlineStyle":       "Underline style (solid, dashed, dotted, wavy, none)",
	"underlineColor":       "Underline color",
	"underlineOffset":      "Underline offset",
	"originalTextColor":    "Original text color",
	"originalTextFontSize": "Original text font size",
	"layoutMode":           "Active layout (horizontal, vertical)",
	"horizontal":           "Horizontal layout: order and wrappers",
	"vertical":             "Vertical layout: order, wrappers and baseline target (original, translation)",
	"densityMode":          "Density mode (count, percent)",
	"densityValue":         "Density value",
}

// categoryLabels are the human labels written above each style block.
var categoryLabels = map[reword.WordCategory]string{
	reword.CategoryKnown:    "known words",
	reword.CategoryWant:     "want-to-learn words",
	reword.CategoryLearning: "words being learned",
}
