package coordinator

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/alexanderramin/weekboard/internal/domain"
	"github.com/alexanderramin/weekboard/internal/persist"
	"github.com/alexanderramin/weekboard/internal/store"
)

// exportDoc is the transportable, human-inspectable export format. It
// round-trips through ImportData.
type exportDoc struct {
	Version     int           `json:"version"`
	ExportedAt  string        `json:"exportedAt"`
	Tasks       []domain.Task `json:"tasks"`
	CurrentWeek *domain.Week  `json:"currentWeek,omitempty"`
}

// ExportData serializes the full current state as an indented JSON document.
func (c *Coordinator) ExportData() (string, error) {
	st := c.store.State()
	doc := exportDoc{
		Version:     persist.CurrentVersion,
		ExportedAt:  time.Now().UTC().Format(time.RFC3339),
		Tasks:       st.Tasks,
		CurrentWeek: st.CurrentWeek,
	}
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding export: %w", err)
	}
	return string(out), nil
}

// ImportData parses an export document, normalizes it through the same
// migration path as a load, replaces the store state wholesale and persists
// the result. It is a trusted bulk overwrite, nothing is merged.
func (c *Coordinator) ImportData(ctx context.Context, text string) error {
	// Tasks stay raw here: migration steps recognize legacy field names that
	// a typed unmarshal would silently drop.
	var doc struct {
		Version     int               `json:"version"`
		Tasks       []json.RawMessage `json:"tasks"`
		CurrentWeek *domain.Week      `json:"currentWeek"`
	}
	if err := json.Unmarshal([]byte(text), &doc); err != nil {
		return fmt.Errorf("parsing import: %w", err)
	}

	// Route the document through the envelope decoder so exports from older
	// schema versions heal exactly like old saves do.
	payload := struct {
		Tasks       []json.RawMessage `json:"tasks"`
		CurrentWeek *domain.Week      `json:"currentWeek,omitempty"`
	}{Tasks: doc.Tasks, CurrentWeek: doc.CurrentWeek}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding import payload: %w", err)
	}
	version := doc.Version
	if version == 0 {
		version = 1
	}
	raw, err := json.Marshal(persist.Envelope{Version: version, Data: data, Timestamp: time.Now().UnixMilli()})
	if err != nil {
		return fmt.Errorf("encoding import envelope: %w", err)
	}

	state, _, err := c.serializer.Decode(raw)
	if err != nil {
		return fmt.Errorf("normalizing import: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	week := state.CurrentWeek
	if week == nil {
		w := domain.CurrentWeek()
		week = &w
	}
	next := c.store.Dispatch(store.LoadState{Tasks: state.Tasks, CurrentWeek: week})
	c.saveLocal(next)
	return nil
}
