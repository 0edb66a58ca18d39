// Package anki checks the Anki settings against a collection, either an
// exported .apkg file or a running Anki reached through AnkiConnect, and
// writes the configured card templates into .apkg exports.
package anki

import (
	"archive/zip"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

// Package represents an Anki .apkg file.
type Package struct {
	path    string
	tempDir string
	db      *sql.DB
	Models  map[int64]*Model
	Decks   map[int64]*Deck
	Notes   []*Note
	Cards   []*Card

	// rawModels keeps every model's JSON so fields we don't model survive
	// a save.
	rawModels map[int64]map[string]json.RawMessage
}

// Model represents an Anki note type (model).
type Model struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Fields    []Field    `json:"flds"`
	Templates []Template `json:"tmpls"`
	Type      int        `json:"type"` // 0 = standard, 1 = cloze
}

// Field represents a field in a note type.
type Field struct {
	Name string `json:"name"`
	Ord  int    `json:"ord"`
}

// Template is one card template of a note type.
type Template struct {
	Name string `json:"name"`
	Ord  int    `json:"ord"`
	QFmt string `json:"qfmt"` // Front side
	AFmt string `json:"afmt"` // Back side
}

// Deck represents an Anki deck.
type Deck struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Note represents an Anki note.
type Note struct {
	ID      int64
	GUID    string
	ModelID int64
	Mod     int64
	Tags    string
	Fields  []string // Parsed from flds
	SFLD    string   // Sort field
}

// Card represents an Anki card.
type Card struct {
	ID     int64
	NoteID int64
	DeckID int64
	Ord    int
	Type   int
	Queue  int
	IVL    int // Interval in days
	Reps   int
	Lapses int
}

// OpenPackage opens an Anki .apkg file for reading.
func OpenPackage(path string) (*Package, error) {
	pkg := &Package{
		path:      path,
		Models:    make(map[int64]*Model),
		Decks:     make(map[int64]*Deck),
		rawModels: make(map[int64]map[string]json.RawMessage),
	}

	tempDir, err := os.MkdirTemp("", "reword-anki-*")
	if err != nil {
		return nil, fmt.Errorf("creating temp dir: %w", err)
	}
	pkg.tempDir = tempDir

	// An .apkg is a zip archive around the collection database
	if err := pkg.extract(); err != nil {
		pkg.Close()
		return nil, err
	}

	dbPath := filepath.Join(tempDir, "collection.anki21")
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		dbPath = filepath.Join(tempDir, "collection.anki2")
	}
	if _, err := os.Stat(dbPath); err != nil {
		pkg.Close()
		return nil, fmt.Errorf("no collection in %s", path)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		pkg.Close()
		return nil, fmt.Errorf("opening database: %w", err)
	}
	pkg.db = db

	for _, load := range []func() error{pkg.loadCollection, pkg.loadNotes, pkg.loadCards} {
		if err := load(); err != nil {
			pkg.Close()
			return nil, err
		}
	}

	return pkg, nil
}

// extract unzips the .apkg file.
func (p *Package) extract() error {
	r, err := zip.OpenReader(p.path)
	if err != nil {
		return fmt.Errorf("opening zip: %w", err)
	}
	defer r.Close()

	for _, f := range r.File {
		fpath := filepath.Join(p.tempDir, f.Name)

		// Prevent zip slip
		if !strings.HasPrefix(fpath, filepath.Clean(p.tempDir)+string(os.PathSeparator)) {
			return fmt.Errorf("illegal file path: %s", f.Name)
		}

		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(fpath, 0755); err != nil {
				return err
			}
			continue
		}

		if err := os.MkdirAll(filepath.Dir(fpath), 0755); err != nil {
			return err
		}
		if err := extractFile(f, fpath); err != nil {
			return fmt.Errorf("extracting %s: %w", f.Name, err)
		}
	}

	return nil
}

func extractFile(f *zip.File, dest string) error {
	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer out.Close()

	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	_, err = io.Copy(out, rc)
	return err
}

// loadCollection loads models and decks from the col table.
func (p *Package) loadCollection() error {
	var models, decks string

	row := p.db.QueryRow("SELECT models, decks FROM col")
	if err := row.Scan(&models, &decks); err != nil {
		return fmt.Errorf("reading collection: %w", err)
	}

	var modelsMap map[string]json.RawMessage
	if err := json.Unmarshal([]byte(models), &modelsMap); err != nil {
		return fmt.Errorf("parsing models: %w", err)
	}

	for _, modelJSON := range modelsMap {
		var model Model
		if err := json.Unmarshal(modelJSON, &model); err != nil {
			continue // Skip malformed models
		}
		var raw map[string]json.RawMessage
		if err := json.Unmarshal(modelJSON, &raw); err != nil {
			continue
		}
		p.Models[model.ID] = &model
		p.rawModels[model.ID] = raw
	}

	var decksMap map[string]json.RawMessage
	if err := json.Unmarshal([]byte(decks), &decksMap); err != nil {
		return fmt.Errorf("parsing decks: %w", err)
	}

	for _, deckJSON := range decksMap {
		var deck Deck
		if err := json.Unmarshal(deckJSON, &deck); err != nil {
			continue // Skip malformed decks
		}
		p.Decks[deck.ID] = &deck
	}

	return nil
}

// loadNotes loads all notes from the database.
func (p *Package) loadNotes() error {
	rows, err := p.db.Query(`SELECT id, guid, mid, mod, tags, flds, sfld FROM notes`)
	if err != nil {
		return fmt.Errorf("querying notes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var note Note
		var flds string
		if err := rows.Scan(&note.ID, &note.GUID, &note.ModelID, &note.Mod, &note.Tags, &flds, &note.SFLD); err != nil {
			return fmt.Errorf("scanning note: %w", err)
		}

		// Fields are separated by ASCII 31
		note.Fields = strings.Split(flds, "\x1f")
		p.Notes = append(p.Notes, &note)
	}

	return rows.Err()
}

// loadCards loads all cards from the database.
func (p *Package) loadCards() error {
	rows, err := p.db.Query(`SELECT id, nid, did, ord, type, queue, ivl, reps, lapses FROM cards`)
	if err != nil {
		return fmt.Errorf("querying cards: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var card Card
		if err := rows.Scan(
			&card.ID, &card.NoteID, &card.DeckID, &card.Ord, &card.Type,
			&card.Queue, &card.IVL, &card.Reps, &card.Lapses,
		); err != nil {
			return fmt.Errorf("scanning card: %w", err)
		}
		p.Cards = append(p.Cards, &card)
	}

	return rows.Err()
}

// ModelByName finds a note type by name, ignoring case.
func (p *Package) ModelByName(name string) *Model {
	for _, m := range p.Models {
		if strings.EqualFold(m.Name, name) {
			return m
		}
	}
	return nil
}

// DeckByName finds a deck by its full name, ignoring case.
func (p *Package) DeckByName(name string) *Deck {
	for _, d := range p.Decks {
		if strings.EqualFold(d.Name, name) {
			return d
		}
	}
	return nil
}

// noteByID finds a note by ID.
func (p *Package) noteByID(id int64) *Note {
	for _, note := range p.Notes {
		if note.ID == id {
			return note
		}
	}
	return nil
}

// Close cleans up resources.
func (p *Package) Close() error {
	var err error
	if p.db != nil {
		err = p.db.Close()
	}
	if p.tempDir != "" {
		if rmErr := os.RemoveAll(p.tempDir); err == nil {
			err = rmErr
		}
	}
	return err
}

// Summary returns a summary of the package contents.
func (p *Package) Summary() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Anki Package: %s\n", p.path)
	fmt.Fprintf(&sb, "  Decks: %d\n", len(p.Decks))
	for _, deck := range p.Decks {
		fmt.Fprintf(&sb, "    - %s\n", deck.Name)
	}
	fmt.Fprintf(&sb, "  Models (Note Types): %d\n", len(p.Models))
	for _, model := range p.Models {
		fmt.Fprintf(&sb, "    - %s (%d fields)\n", model.Name, len(model.Fields))
	}
	fmt.Fprintf(&sb, "  Notes: %d\n", len(p.Notes))
	fmt.Fprintf(&sb, "  Cards: %d\n", len(p.Cards))

	return sb.String()
}
