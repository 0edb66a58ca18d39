package anki

import (
	"archive/zip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/f3rmion/reword/internal/reword"
)

// ApplyTemplates sets the first card template of the named note type to the
// configured front and back templates.
func (p *Package) ApplyTemplates(modelName string, t reword.AnkiTemplates) error {
	model := p.ModelByName(modelName)
	if model == nil {
		return fmt.Errorf("note type %q not found", modelName)
	}
	if len(model.Templates) == 0 {
		return fmt.Errorf("note type %q has no card templates", modelName)
	}

	model.Templates[0].QFmt = t.FrontTemplate
	model.Templates[0].AFmt = t.BackTemplate
	return nil
}

// SaveAs writes the package, with any template changes, to a new .apkg file.
func (p *Package) SaveAs(outputPath string) error {
	if err := p.updateModels(); err != nil {
		return err
	}

	outFile, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer outFile.Close()

	zipWriter := zip.NewWriter(outFile)

	err = filepath.Walk(p.tempDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		relPath, err := filepath.Rel(p.tempDir, path)
		if err != nil {
			return err
		}

		writer, err := zipWriter.Create(filepath.ToSlash(relPath))
		if err != nil {
			return err
		}

		file, err := os.Open(path)
		if err != nil {
			return err
		}
		defer file.Close()

		_, err = io.Copy(writer, file)
		return err
	})
	if err != nil {
		zipWriter.Close()
		return fmt.Errorf("creating zip: %w", err)
	}

	if err := zipWriter.Close(); err != nil {
		return fmt.Errorf("finishing zip: %w", err)
	}
	return nil
}

// updateModels writes the models JSON back to the col table. Only the
// templates are replaced; every other key is kept as read.
func (p *Package) updateModels() error {
	modelsMap := make(map[string]map[string]json.RawMessage, len(p.Models))
	for id, model := range p.Models {
		raw := p.rawModels[id]
		if raw == nil {
			raw = make(map[string]json.RawMessage)
		}

		tmpls, err := mergeTemplates(raw["tmpls"], model.Templates)
		if err != nil {
			return fmt.Errorf("marshaling templates of %q: %w", model.Name, err)
		}
		raw["tmpls"] = tmpls
		modelsMap[strconv.FormatInt(id, 10)] = raw
	}

	modelsJSON, err := json.Marshal(modelsMap)
	if err != nil {
		return fmt.Errorf("marshaling models: %w", err)
	}

	if _, err := p.db.Exec("UPDATE col SET models = ?", string(modelsJSON)); err != nil {
		return fmt.Errorf("updating models: %w", err)
	}

	return nil
}

// mergeTemplates overlays the modeled template keys on the raw template
// list, keeping keys such as browser formats untouched.
func mergeTemplates(raw json.RawMessage, templates []Template) (json.RawMessage, error) {
	var list []map[string]any
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &list); err != nil {
			return nil, err
		}
	}

	for i, t := range templates {
		if i >= len(list) {
			list = append(list, map[string]any{})
		}
		list[i]["name"] = t.Name
		list[i]["ord"] = t.Ord
		list[i]["qfmt"] = t.QFmt
		list[i]["afmt"] = t.AFmt
	}

	return json.Marshal(list)
}
