package anki

import (
	"sort"
	"strings"

	"github.com/f3rmion/reword/internal/reword"
)

// Report is the result of checking the Anki settings against a package.
type Report struct {
	MissingDecks []string
	ModelFound   bool

	// Mastered lists the sort field of every note in the want or learning
	// deck whose interval reached the sync interval.
	Mastered []string
}

// OK reports whether every configured deck and the note type exist.
func (r Report) OK() bool {
	return len(r.MissingDecks) == 0 && r.ModelFound
}

// Check compares cfg with the decks and note types of p.
func Check(p *Package, cfg reword.AnkiConfig) Report {
	var r Report

	decks := make(map[int64]bool)
	for _, name := range []string{cfg.DeckNameWant, cfg.DeckNameLearning} {
		if name == "" {
			continue
		}
		d := p.DeckByName(name)
		if d == nil {
			r.MissingDecks = append(r.MissingDecks, name)
			continue
		}
		for id, sub := range p.Decks {
			if sub.ID == d.ID || strings.HasPrefix(strings.ToLower(sub.Name), strings.ToLower(d.Name)+"::") {
				decks[id] = true
			}
		}
	}

	r.ModelFound = cfg.ModelName != "" && p.ModelByName(cfg.ModelName) != nil

	if cfg.SyncInterval <= 0 {
		return r
	}

	seen := make(map[string]bool)
	for _, card := range p.Cards {
		if !decks[card.DeckID] || card.IVL < cfg.SyncInterval {
			continue
		}
		note := p.noteByID(card.NoteID)
		if note == nil || seen[note.SFLD] {
			continue
		}
		seen[note.SFLD] = true
		r.Mastered = append(r.Mastered, note.SFLD)
	}
	sort.Strings(r.Mastered)

	return r
}
