package tracker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/matt-steen/ball-in-court/pkg/model"
	"github.com/rs/zerolog/log"
)

// Payload is the export file format.
type Payload struct {
	Tasks    []model.Task    `json:"tasks"`
	Contacts []model.Contact `json:"contacts"`
}

// ExportFilename returns the default file name for an export made at now.
func ExportFilename(now time.Time) string {
	return fmt.Sprintf("ball-in-court-%s.json", now.Format(model.DateLayout))
}

// Export serializes both collections.
func (t *Tracker) Export() ([]byte, error) {
	data, err := json.MarshalIndent(Payload{Tasks: t.Tasks(), Contacts: t.Contacts()}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("error exporting: %w", err)
	}

	return data, nil
}

// Import replaces the task collection, and the contact collection when the payload has one.
// The payload is fully decoded before anything is replaced, so a rejected import leaves both
// collections untouched. Callers confirm with the user first; see Confirmed.
func (t *Tracker) Import(ctx context.Context, data []byte) error {
	var raw struct {
		Tasks    json.RawMessage `json:"tasks"`
		Contacts json.RawMessage `json:"contacts"`
	}

	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidImport, err)
	}

	if absent(raw.Tasks) {
		return fmt.Errorf("%w: missing tasks", ErrInvalidImport)
	}

	tasks, err := model.DecodeTasks(raw.Tasks)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidImport, err)
	}

	var contacts []model.Contact

	replaceContacts := !absent(raw.Contacts)
	if replaceContacts {
		contacts, err = model.DecodeContacts(raw.Contacts)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidImport, err)
		}
	}

	t.tasks = t.withIDs(tasks)
	keys := []string{TasksKey}

	if replaceContacts {
		t.contacts = t.withContactIDs(contacts)
		keys = append(keys, ContactsKey)
	}

	log.Info().Int("tasks", len(t.tasks)).Bool("contacts", replaceContacts).Msg("imported data")

	t.commit(ctx, Event{Kind: EventImported}, keys...)

	return nil
}

func absent(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
