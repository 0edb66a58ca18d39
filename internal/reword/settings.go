package reword

// Trigger describes how a bubble action is started.
type Trigger struct {
	Modifier string `yaml:"modifier" json:"modifier"` // none, shift, ctrl, alt, meta
	Action   string `yaml:"action" json:"action"`     // hover, click, dblclick
	Delay    int    `yaml:"delay" json:"delay"`       // Milliseconds
}

// AutoTranslateConfig holds the general switches of the extension.
type AutoTranslateConfig struct {
	Enabled            bool     `yaml:"enabled" json:"enabled"`
	BilingualMode      bool     `yaml:"bilingualMode" json:"bilingualMode"`
	TranslateWholePage bool     `yaml:"translateWholePage" json:"translateWholePage"`
	MatchInflections   bool     `yaml:"matchInflections" json:"matchInflections"`
	AggressiveMode     bool     `yaml:"aggressiveMode" json:"aggressiveMode"`
	Blacklist          []string `yaml:"blacklist" json:"blacklist"`
	Whitelist          []string `yaml:"whitelist" json:"whitelist"`
	TTSSpeed           float64  `yaml:"ttsSpeed" json:"ttsSpeed"`
}

// WordInteractionConfig configures the lookup bubble.
type WordInteractionConfig struct {
	MainTrigger          Trigger `yaml:"mainTrigger" json:"mainTrigger"`
	QuickAddTrigger      Trigger `yaml:"quickAddTrigger" json:"quickAddTrigger"`
	BubblePosition       string  `yaml:"bubblePosition" json:"bubblePosition"`
	ShowPhonetic         bool    `yaml:"showPhonetic" json:"showPhonetic"`
	ShowOriginalText     bool    `yaml:"showOriginalText" json:"showOriginalText"`
	ShowDictExample      bool    `yaml:"showDictExample" json:"showDictExample"`
	ShowDictTranslation  bool    `yaml:"showDictTranslation" json:"showDictTranslation"`
	AutoPronounce        bool    `yaml:"autoPronounce" json:"autoPronounce"`
	AutoPronounceAccent  string  `yaml:"autoPronounceAccent" json:"autoPronounceAccent"` // US or UK
	AutoPronounceCount   int     `yaml:"autoPronounceCount" json:"autoPronounceCount"`
	DismissDelay         int     `yaml:"dismissDelay" json:"dismissDelay"`
	AllowMultipleBubbles bool    `yaml:"allowMultipleBubbles" json:"allowMultipleBubbles"`
	OnlineDictURL        string  `yaml:"onlineDictUrl" json:"onlineDictUrl"` // {word} is replaced
}

// SectionToggles selects which categories the page widget lists.
type SectionToggles struct {
	Known    bool `yaml:"known" json:"known"`
	Want     bool `yaml:"want" json:"want"`
	Learning bool `yaml:"learning" json:"learning"`
}

// CardDisplayItem is one ordered, switchable block of a word card.
type CardDisplayItem struct {
	ID      string `yaml:"id" json:"id"`
	Label   string `yaml:"label" json:"label"`
	Enabled bool   `yaml:"enabled" json:"enabled"`
}

// PageWidgetConfig configures the floating page widget.
type PageWidgetConfig struct {
	Enabled                bool              `yaml:"enabled" json:"enabled"`
	X                      float64           `yaml:"x" json:"x"`
	Y                      float64           `yaml:"y" json:"y"`
	ShowPhonetic           bool              `yaml:"showPhonetic" json:"showPhonetic"`
	ShowMeaning            bool              `yaml:"showMeaning" json:"showMeaning"`
	ShowMultiExamples      bool              `yaml:"showMultiExamples" json:"showMultiExamples"`
	ShowExampleTranslation bool              `yaml:"showExampleTranslation" json:"showExampleTranslation"`
	ShowContextTranslation bool              `yaml:"showContextTranslation" json:"showContextTranslation"`
	ShowInflections        bool              `yaml:"showInflections" json:"showInflections"`
	ShowPartOfSpeech       bool              `yaml:"showPartOfSpeech" json:"showPartOfSpeech"`
	ShowTags               bool              `yaml:"showTags" json:"showTags"`
	ShowImportance         bool              `yaml:"showImportance" json:"showImportance"`
	ShowCocaRank           bool              `yaml:"showCocaRank" json:"showCocaRank"`
	ShowSections           SectionToggles    `yaml:"showSections" json:"showSections"`
	CardDisplay            []CardDisplayItem `yaml:"cardDisplay" json:"cardDisplay"`
}

// AnkiTemplates holds the HTML card templates.
type AnkiTemplates struct {
	FrontTemplate string `yaml:"frontTemplate" json:"frontTemplate"`
	BackTemplate  string `yaml:"backTemplate" json:"backTemplate"`
}

// AnkiConfig configures the AnkiConnect integration.
type AnkiConfig struct {
	Enabled          bool          `yaml:"enabled" json:"enabled"`
	URL              string        `yaml:"url" json:"url"`
	DeckNameWant     string        `yaml:"deckNameWant" json:"deckNameWant"`
	DeckNameLearning string        `yaml:"deckNameLearning" json:"deckNameLearning"`
	ModelName        string        `yaml:"modelName" json:"modelName"`
	SyncInterval     int           `yaml:"syncInterval" json:"syncInterval"` // Days before a card counts as mastered
	AutoSync         bool          `yaml:"autoSync" json:"autoSync"`
	Templates        AnkiTemplates `yaml:"templates" json:"templates"`
}

// Scenario is a named reading context.
type Scenario struct {
	ID       string `yaml:"id" json:"id"`
	Name     string `yaml:"name" json:"name"`
	IsActive bool   `yaml:"isActive" json:"isActive"`
}

// TranslationEngine is a configured machine translation backend. APIKey is
// a credential and is exported verbatim.
type TranslationEngine struct {
	ID        string `yaml:"id" json:"id"`
	Name      string `yaml:"name" json:"name"`
	Type      string `yaml:"type" json:"type"`
	APIKey    string `yaml:"apiKey" json:"apiKey"`
	Endpoint  string `yaml:"endpoint" json:"endpoint"`
	Model     string `yaml:"model" json:"model"`
	IsEnabled bool   `yaml:"isEnabled" json:"isEnabled"`
}

// DictionaryEngine is a configured dictionary source.
type DictionaryEngine struct {
	ID        string `yaml:"id" json:"id"`
	Name      string `yaml:"name" json:"name"`
	Endpoint  string `yaml:"endpoint" json:"endpoint"`
	Link      string `yaml:"link" json:"link"`
	IsEnabled bool   `yaml:"isEnabled" json:"isEnabled"`
	Priority  int    `yaml:"priority" json:"priority"`
}

// AllSettings aggregates the nine independent settings sections.
type AllSettings struct {
	AutoTranslate AutoTranslateConfig
	Interaction   WordInteractionConfig
	PageWidget    PageWidgetConfig
	Anki          AnkiConfig
	OriginalText  OriginalTextConfig
	Styles        map[WordCategory]StyleConfig
	Scenarios     []Scenario
	Engines       []TranslationEngine
	Dictionaries  []DictionaryEngine
}
