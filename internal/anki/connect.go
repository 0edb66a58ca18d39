package anki

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/f3rmion/reword/internal/reword"
)

// connectVersion is the AnkiConnect API version requested.
const connectVersion = 6

// Client talks to a running Anki through the AnkiConnect add-on.
type Client struct {
	url        string
	httpClient *http.Client
}

// request is an AnkiConnect action call.
type request struct {
	Action  string `json:"action"`
	Version int    `json:"version"`
	Params  any    `json:"params,omitempty"`
}

// response is the AnkiConnect reply envelope.
type response struct {
	Result json.RawMessage `json:"result"`
	Error  *string         `json:"error"`
}

// NoteInfo is one entry of a notesInfo reply.
type NoteInfo struct {
	NoteID    int64  `json:"noteId"`
	ModelName string `json:"modelName"`
	Fields    map[string]struct {
		Value string `json:"value"`
		Order int    `json:"order"`
	} `json:"fields"`
}

// SortField returns the value of the note's first field.
func (n NoteInfo) SortField() string {
	for _, f := range n.Fields {
		if f.Order == 0 {
			return f.Value
		}
	}
	return ""
}

// NewClient creates a client for the AnkiConnect endpoint at url.
func NewClient(url string) *Client {
	return &Client{
		url: strings.TrimSpace(url),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// call performs one action and decodes its result into out.
func (c *Client) call(ctx context.Context, action string, params, out any) error {
	body, err := json.Marshal(request{Action: action, Version: connectVersion, Params: params})
	if err != nil {
		return fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("making request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: unexpected status %d", action, resp.StatusCode)
	}

	var apiResp response
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return fmt.Errorf("unmarshaling response: %w", err)
	}
	if apiResp.Error != nil {
		return fmt.Errorf("%s: %s", action, *apiResp.Error)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(apiResp.Result, out); err != nil {
		return fmt.Errorf("decoding %s result: %w", action, err)
	}
	return nil
}

// Version returns the AnkiConnect API version of the running add-on.
func (c *Client) Version(ctx context.Context) (int, error) {
	var v int
	err := c.call(ctx, "version", nil, &v)
	return v, err
}

// DeckNames lists every deck.
func (c *Client) DeckNames(ctx context.Context) ([]string, error) {
	var names []string
	err := c.call(ctx, "deckNames", nil, &names)
	return names, err
}

// ModelNames lists every note type.
func (c *Client) ModelNames(ctx context.Context) ([]string, error) {
	var names []string
	err := c.call(ctx, "modelNames", nil, &names)
	return names, err
}

// FindNotes returns the ids of notes matching an Anki search query.
func (c *Client) FindNotes(ctx context.Context, query string) ([]int64, error) {
	var ids []int64
	err := c.call(ctx, "findNotes", map[string]string{"query": query}, &ids)
	return ids, err
}

// NotesInfo returns the fields of the given notes.
func (c *Client) NotesInfo(ctx context.Context, ids []int64) ([]NoteInfo, error) {
	var notes []NoteInfo
	err := c.call(ctx, "notesInfo", map[string][]int64{"notes": ids}, &notes)
	return notes, err
}

// CheckRemote compares cfg with the decks and note types of a running Anki.
// Mastered notes are found with a prop:ivl search, which includes subdecks.
func CheckRemote(ctx context.Context, c *Client, cfg reword.AnkiConfig) (Report, error) {
	var r Report

	decks, err := c.DeckNames(ctx)
	if err != nil {
		return r, fmt.Errorf("listing decks: %w", err)
	}
	models, err := c.ModelNames(ctx)
	if err != nil {
		return r, fmt.Errorf("listing note types: %w", err)
	}

	var present []string
	for _, name := range []string{cfg.DeckNameWant, cfg.DeckNameLearning} {
		if name == "" {
			continue
		}
		if containsFold(decks, name) {
			present = append(present, name)
		} else {
			r.MissingDecks = append(r.MissingDecks, name)
		}
	}
	r.ModelFound = cfg.ModelName != "" && containsFold(models, cfg.ModelName)

	if cfg.SyncInterval <= 0 || len(present) == 0 {
		return r, nil
	}

	var ids []int64
	for _, name := range present {
		query := fmt.Sprintf(`"deck:%s" prop:ivl>=%d`, name, cfg.SyncInterval)
		found, err := c.FindNotes(ctx, query)
		if err != nil {
			return r, fmt.Errorf("searching %s: %w", name, err)
		}
		ids = append(ids, found...)
	}
	if len(ids) == 0 {
		return r, nil
	}

	notes, err := c.NotesInfo(ctx, ids)
	if err != nil {
		return r, fmt.Errorf("reading notes: %w", err)
	}

	seen := make(map[string]bool)
	for _, n := range notes {
		w := n.SortField()
		if w == "" || seen[w] {
			continue
		}
		seen[w] = true
		r.Mastered = append(r.Mastered, w)
	}
	sort.Strings(r.Mastered)

	return r, nil
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
