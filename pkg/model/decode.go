package model

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// Records come from storage or from an import file and may have been written by older versions
// of the app: ids can be numbers, dates can be empty strings and any field can be missing or
// malformed. Decoding degrades a bad field to its absent value instead of failing the record.

type rawRecord map[string]json.RawMessage

// UnmarshalJSON decodes a task record leniently.
func (t *Task) UnmarshalJSON(data []byte) error {
	var raw rawRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("error decoding task record: %w", err)
	}

	*t = Task{
		ID:            decodeID(raw["id"]),
		Title:         decodeString(raw["title"]),
		DueDate:       decodeDate(raw["dueDate"]),
		Urgency:       decodeUrgency(raw["urgency"]),
		Owner:         decodeString(raw["owner"]),
		OwnerEmail:    decodeString(raw["ownerEmail"]),
		FollowUpDate:  decodeDate(raw["followUpDate"]),
		Status:        decodeStatus(raw["status"]),
		CreatedAt:     decodeTimestamp(raw["createdAt"]),
		HandoffDate:   decodeTimestamp(raw["handoffDate"]),
		CompletedDate: decodeTimestamp(raw["completedDate"]),
	}

	return nil
}

// UnmarshalJSON decodes a contact record leniently.
func (c *Contact) UnmarshalJSON(data []byte) error {
	var raw rawRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("error decoding contact record: %w", err)
	}

	*c = Contact{
		ID:    decodeID(raw["id"]),
		Name:  decodeString(raw["name"]),
		Email: decodeString(raw["email"]),
	}

	return nil
}

// DecodeTasks decodes a serialized task collection. Only a payload that is not an array is an
// error; records that are not objects are skipped.
func DecodeTasks(data []byte) ([]Task, error) {
	records, err := decodeArray(data)
	if err != nil {
		return nil, fmt.Errorf("error decoding tasks: %w", err)
	}

	tasks := make([]Task, 0, len(records))

	for i, record := range records {
		var task Task
		if err := json.Unmarshal(record, &task); err != nil {
			log.Warn().Err(err).Int("index", i).Msg("skipping malformed task record")

			continue
		}

		tasks = append(tasks, task)
	}

	return tasks, nil
}

// DecodeContacts decodes a serialized contact collection the same way DecodeTasks does.
func DecodeContacts(data []byte) ([]Contact, error) {
	records, err := decodeArray(data)
	if err != nil {
		return nil, fmt.Errorf("error decoding contacts: %w", err)
	}

	contacts := make([]Contact, 0, len(records))

	for i, record := range records {
		var contact Contact
		if err := json.Unmarshal(record, &contact); err != nil {
			log.Warn().Err(err).Int("index", i).Msg("skipping malformed contact record")

			continue
		}

		contacts = append(contacts, contact)
	}

	return contacts, nil
}

func decodeArray(data []byte) ([]json.RawMessage, error) {
	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}

	return records, nil
}

func decodeString(raw json.RawMessage) string {
	var s string
	if len(raw) == 0 || json.Unmarshal(raw, &s) != nil {
		return ""
	}

	return s
}

func decodeID(raw json.RawMessage) string {
	if s := decodeString(raw); s != "" {
		return s
	}

	var n json.Number
	if len(raw) == 0 || json.Unmarshal(raw, &n) != nil {
		return ""
	}

	return n.String()
}

func decodeDate(raw json.RawMessage) Date {
	d, _ := ParseDate(decodeString(raw))

	return d
}

func decodeTimestamp(raw json.RawMessage) *time.Time {
	s := strings.TrimSpace(decodeString(raw))
	if s == "" {
		return nil
	}

	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return nil
	}

	return &t
}

func decodeUrgency(raw json.RawMessage) Urgency {
	u, ok := ParseUrgency(decodeString(raw))
	if !ok {
		return ""
	}

	return u
}

func decodeStatus(raw json.RawMessage) Status {
	s := Status(decodeString(raw))
	if !s.Valid() {
		return ""
	}

	return s
}
