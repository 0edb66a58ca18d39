package backup

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/f3rmion/reword/internal/reword"
)

// ParseError reports a document that cannot be imported at all.
type ParseError struct {
	Msg string
	Err error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return "parsing settings: " + e.Err.Error()
	}
	return "parsing settings: " + e.Msg
}

func (e *ParseError) Unwrap() error { return e.Err }

// SectionError reports a section whose content did not fit its shape.
type SectionError struct {
	Section Section
	Err     error
}

func (e *SectionError) Error() string {
	return fmt.Sprintf("section %s: %v", e.Section, e.Err)
}

func (e *SectionError) Unwrap() error { return e.Err }

// Patch holds the sections found in a document. A nil slot was absent.
// Applying a patch replaces each present section wholesale; fields are
// never merged.
type Patch struct {
	AutoTranslate *reword.AutoTranslateConfig
	Interaction   *reword.WordInteractionConfig
	PageWidget    *reword.PageWidgetConfig
	Anki          *reword.AnkiConfig
	OriginalText  *reword.OriginalTextConfig
	Styles        *map[reword.WordCategory]reword.StyleConfig
	Scenarios     *[]reword.Scenario
	Engines       *[]reword.TranslationEngine
	Dictionaries  *[]reword.DictionaryEngine

	// Errors lists sections that were decoded only partly (still present)
	// or skipped because their shape was wrong.
	Errors []error
}

// Sections returns the present sections in document order.
func (p *Patch) Sections() []Section {
	present := map[Section]bool{
		SectionAutoTranslate: p.AutoTranslate != nil,
		SectionInteraction:   p.Interaction != nil,
		SectionPageWidget:    p.PageWidget != nil,
		SectionAnki:          p.Anki != nil,
		SectionLayoutStyle:   p.OriginalText != nil,
		SectionVisualStyles:  p.Styles != nil,
		SectionScenarios:     p.Scenarios != nil,
		SectionEngines:       p.Engines != nil,
		SectionDictionaries:  p.Dictionaries != nil,
	}

	var out []Section
	for _, s := range Sections {
		if present[s] {
			out = append(out, s)
		}
	}
	return out
}

// Apply overwrites the present sections of s and returns them.
func (p *Patch) Apply(s *reword.AllSettings) []Section {
	if p.AutoTranslate != nil {
		s.AutoTranslate = *p.AutoTranslate
	}
	if p.Interaction != nil {
		s.Interaction = *p.Interaction
	}
	if p.PageWidget != nil {
		s.PageWidget = *p.PageWidget
	}
	if p.Anki != nil {
		s.Anki = *p.Anki
	}
	if p.OriginalText != nil {
		s.OriginalText = *p.OriginalText
	}
	if p.Styles != nil {
		s.Styles = *p.Styles
	}
	if p.Scenarios != nil {
		s.Scenarios = *p.Scenarios
	}
	if p.Engines != nil {
		s.Engines = *p.Engines
	}
	if p.Dictionaries != nil {
		s.Dictionaries = *p.Dictionaries
	}
	return p.Sections()
}

// Parse reads a settings document into a patch. Unknown top-level keys are
// ignored. An empty document yields an empty patch.
func Parse(text []byte) (*Patch, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(text, &doc); err != nil {
		return nil, &ParseError{Err: err}
	}

	p := &Patch{}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return p, nil
	}

	root := doc.Content[0]
	if isNull(root) {
		return p, nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, &ParseError{Msg: "top level is not a mapping"}
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		section, val := Section(root.Content[i].Value), root.Content[i+1]
		if isNull(val) {
			continue
		}

		switch section {
		case SectionAutoTranslate:
			p.AutoTranslate = decodeSection(p, section, val, yaml.MappingNode, p.AutoTranslate)
		case SectionInteraction:
			p.Interaction = decodeSection(p, section, val, yaml.MappingNode, p.Interaction)
		case SectionPageWidget:
			p.PageWidget = decodeSection(p, section, val, yaml.MappingNode, p.PageWidget)
		case SectionAnki:
			p.Anki = decodeSection(p, section, val, yaml.MappingNode, p.Anki)
		case SectionLayoutStyle:
			p.OriginalText = decodeSection(p, section, val, yaml.MappingNode, p.OriginalText)
		case SectionVisualStyles:
			p.Styles = decodeSection(p, section, val, yaml.MappingNode, p.Styles)
		case SectionScenarios:
			p.Scenarios = decodeSection(p, section, val, yaml.SequenceNode, p.Scenarios)
		case SectionEngines:
			p.Engines = decodeSection(p, section, val, yaml.SequenceNode, p.Engines)
		case SectionDictionaries:
			p.Dictionaries = decodeSection(p, section, val, yaml.SequenceNode, p.Dictionaries)
		}
	}

	return p, nil
}

// decodeSection decodes one section into a fresh value. A node of the wrong
// kind is skipped and prev is kept; field type errors are recorded and the
// partly decoded value is still used.
func decodeSection[T any](p *Patch, section Section, n *yaml.Node, kind yaml.Kind, prev *T) *T {
	if n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	if n.Kind != kind {
		p.Errors = append(p.Errors, &SectionError{
			Section: section,
			Err:     fmt.Errorf("expected %s, got %s", kindName(kind), kindName(n.Kind)),
		})
		return prev
	}

	v := new(T)
	if err := n.Decode(v); err != nil {
		p.Errors = append(p.Errors, &SectionError{Section: section, Err: err})
		var typeErr *yaml.TypeError
		if !errors.As(err, &typeErr) {
			return prev
		}
	}
	return v
}

// Result is the outcome of an import.
type Result struct {
	Applied []Section
	Errors  []error
}

// Count returns the number of applied sections.
func (r Result) Count() int {
	return len(r.Applied)
}

// Recognized reports whether at least one known section was found. A
// document without any is not an error, but callers should warn about it.
func (r Result) Recognized() bool {
	return len(r.Applied) > 0
}

// Import parses text and replaces the present sections of s. On a parse
// error s is left untouched.
func Import(text []byte, s *reword.AllSettings) (Result, error) {
	p, err := Parse(text)
	if err != nil {
		return Result{}, err
	}
	return Result{Applied: p.Apply(s), Errors: p.Errors}, nil
}

func isNull(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null"
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.MappingNode:
		return "a mapping"
	case yaml.SequenceNode:
		return "a sequence"
	case yaml.ScalarNode:
		return "a scalar"
	case yaml.AliasNode:
		return "an alias"
	}
	return "a document"
}
