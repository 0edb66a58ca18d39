package backup

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/f3rmion/reword/internal/reword"
)

const rule = "# ------------------------------------------------------------------\n"

// FormatError reports a failure to build the settings document.
type FormatError struct {
	Section Section
	Err     error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("formatting %s: %v", e.Section, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// ErrInvalidUTF8 is returned for a string value that is not valid UTF-8.
// Such values cannot be written as text and read back unchanged.
var ErrInvalidUTF8 = errors.New("string is not valid UTF-8")

// Serialize writes the settings as a commented YAML document. generated is
// printed in the header; the output is otherwise a pure function of s.
func Serialize(s reword.AllSettings, generated time.Time) (string, error) {
	var sb strings.Builder

	sb.WriteString("# Reword settings backup\n")
	sb.WriteString("# Exported: " + generated.Format("2006-01-02 15:04:05") + "\n")
	sb.WriteString("#\n")
	sb.WriteString("# This file contains all personal settings (word lists are not included).\n")
	sb.WriteString("# You may edit it and import it again; keep the YAML indentation intact.\n")
	sb.WriteString("#\n")
	sb.WriteString(rule)
	sb.WriteString("\n")

	fixed := []struct {
		section Section
		value   any
	}{
		{SectionAutoTranslate, s.AutoTranslate},
		{SectionInteraction, s.Interaction},
		{SectionPageWidget, s.PageWidget},
		{SectionAnki, s.Anki},
		{SectionLayoutStyle, s.OriginalText},
	}
	for _, f := range fixed {
		if err := writeSection(&sb, f.section, f.value); err != nil {
			return "", err
		}
	}

	if err := writeStyles(&sb, s.Styles); err != nil {
		return "", err
	}

	lists := []struct {
		section Section
		title   string
		value   any
	}{
		{SectionScenarios, "Scenarios", s.Scenarios},
		{SectionEngines, "Translation engines (contains API keys, keep this file private)", s.Engines},
		{SectionDictionaries, "Dictionary sources", s.Dictionaries},
	}
	for i, l := range lists {
		n, err := encode(l.section, l.value)
		if err != nil {
			return "", err
		}
		sb.WriteString(rule)
		sb.WriteString("# " + l.title + "\n")
		sb.WriteString(rule)
		writePair(&sb, string(l.section), n, 0)
		sb.WriteString("\n")
		if i < len(lists)-1 {
			sb.WriteString("\n")
		}
	}

	return sb.String(), nil
}

func encode(section Section, v any) (*yaml.Node, error) {
	var n yaml.Node
	if err := n.Encode(v); err != nil {
		return nil, &FormatError{Section: section, Err: err}
	}
	if binary(&n) {
		return nil, &FormatError{Section: section, Err: ErrInvalidUTF8}
	}
	return &n, nil
}

// binary reports whether the encoder fell back to !!binary anywhere in n,
// which it does for strings holding invalid UTF-8.
func binary(n *yaml.Node) bool {
	if n.Tag == "!!binary" {
		return true
	}
	return slices.ContainsFunc(n.Content, binary)
}

// writeSection writes a fixed-field section with the schema comments above
// each field.
func writeSection(sb *strings.Builder, section Section, v any) error {
	n, err := encode(section, v)
	if err != nil {
		return err
	}
	if n.Kind != yaml.MappingNode {
		return &FormatError{Section: section, Err: fmt.Errorf("expected a mapping, got kind %d", n.Kind)}
	}

	docs := fieldDocs[section]
	sb.WriteString(string(section) + ":\n")
	for i := 0; i+1 < len(n.Content); i += 2 {
		key := n.Content[i].Value
		if doc, ok := docs[key]; ok {
			if doc.Comment != "" {
				sb.WriteString(indent(1) + "# " + doc.Comment + "\n")
			}
			if doc.Options != "" {
				sb.WriteString(indent(1) + "# Options: " + doc.Options + "\n")
			}
		}
		sb.WriteString(indent(1))
		writePair(sb, key, n.Content[i+1], 1)
		sb.WriteString("\n\n")
	}
	return nil
}

// writeStyles writes the per-category style table, one commented block per
// category. Fixed categories come first, then any others by name.
func writeStyles(sb *strings.Builder, styles map[reword.WordCategory]reword.StyleConfig) error {
	sb.WriteString(rule)
	sb.WriteString("# Visual styles (one block per word category)\n")
	sb.WriteString(rule)

	if len(styles) == 0 {
		sb.WriteString(string(SectionVisualStyles) + ": {}\n\n")
		return nil
	}
	sb.WriteString(string(SectionVisualStyles) + ":\n")

	for _, cat := range styleOrder(styles) {
		n, err := encode(SectionVisualStyles, styles[cat])
		if err != nil {
			return err
		}

		label := categoryLabels[cat]
		if label == "" {
			label = string(cat)
		}
		sb.WriteString(indent(1) + "# Category: " + label + "\n")
		sb.WriteString(indent(1) + strconv.Quote(string(cat)) + ":\n")

		for i := 0; i+1 < len(n.Content); i += 2 {
			key, val := n.Content[i].Value, n.Content[i+1]
			doc := styleFieldDocs[key]
			if doc != "" && isBlock(val) {
				sb.WriteString(indent(2) + "# " + doc + "\n")
			}
			sb.WriteString(indent(2))
			writePair(sb, key, val, 2)
			if doc != "" && !isBlock(val) {
				sb.WriteString(" # " + doc)
			}
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}
	return nil
}

func styleOrder(styles map[reword.WordCategory]reword.StyleConfig) []reword.WordCategory {
	order := make([]reword.WordCategory, 0, len(styles))
	for _, cat := range reword.Categories {
		if _, ok := styles[cat]; ok {
			order = append(order, cat)
		}
	}

	var extra []reword.WordCategory
	for cat := range styles {
		if !slices.Contains(reword.Categories, cat) {
			extra = append(extra, cat)
		}
	}
	slices.Sort(extra)

	return append(order, extra...)
}

// FileName returns the export file name for a backup taken at t.
func FileName(t time.Time, ext string) string {
	ext = strings.TrimPrefix(ext, ".")
	if ext == "" {
		ext = "yaml"
	}
	return fmt.Sprintf("reword_settings_backup_%s.%s", t.UTC().Format("2006-01-02"), ext)
}

// AcceptedExtension reports whether path has one of the extensions offered
// for import. Content is parsed regardless of the extension.
func AcceptedExtension(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".txt":
		return true
	}
	return false
}
