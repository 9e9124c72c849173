// Package tracker owns the task and contact collections. Every mutation commits in memory,
// writes the affected collection back to the Store and then notifies observers, in that order.
package tracker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/matt-steen/ball-in-court/pkg/classify"
	"github.com/matt-steen/ball-in-court/pkg/model"
	"github.com/rs/zerolog/log"
)

// Storage keys for the two collections.
const (
	TasksKey    = "ballInCourtTasks"
	ContactsKey = "ballInCourtContacts"
)

// Validation errors. Unknown ids are not errors: mutations on them are no-ops.
var (
	ErrEmptyTitle      = errors.New("task title is empty")
	ErrEmptyOwner      = errors.New("owner is empty")
	ErrEmptyName       = errors.New("contact name is empty")
	ErrInvalidUrgency  = errors.New("invalid urgency")
	ErrTaskCompleted   = errors.New("task is already completed")
	ErrFollowUpInPast  = errors.New("follow-up date is before the handoff date")
	ErrInvalidImport   = errors.New("invalid import payload")
	ErrNotConfirmed    = errors.New("not confirmed")
	errUnknownKey = errors.New("unknown storage key")
)

// Store loads and saves serialized collections by key.
type Store interface {
	Load(ctx context.Context, key string) ([]byte, bool, error)
	Save(ctx context.Context, key string, value []byte) error
}

// Tracker is the application state: both collections plus the pipeline around them.
type Tracker struct {
	store     Store
	now       func() time.Time
	newID     func() string
	tasks     []model.Task
	contacts  []model.Contact
	observers []Observer
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		t.now = now
	}
}

// WithIDs replaces the id generator.
func WithIDs(newID func() string) Option {
	return func(t *Tracker) {
		t.newID = newID
	}
}

// New creates an empty Tracker persisting to store. Call Load to read existing data.
func New(store Store, opts ...Option) *Tracker {
	t := &Tracker{
		store:    store,
		now:      time.Now,
		newID:    func() string { return uuid.New().String() },
		tasks:    []model.Task{},
		contacts: []model.Contact{},
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Load replaces both collections with what the store holds. A collection that was never saved
// or cannot be decoded starts out empty.
func (t *Tracker) Load(ctx context.Context) error {
	tasks := []model.Task{}
	contacts := []model.Contact{}

	data, ok, err := t.store.Load(ctx, TasksKey)
	if err != nil {
		return fmt.Errorf("error loading tasks: %w", err)
	}

	if ok {
		if decoded, err := model.DecodeTasks(data); err != nil {
			log.Error().Err(err).Msg("stored tasks are unreadable; starting with none")
		} else {
			tasks = decoded
		}
	}

	data, ok, err = t.store.Load(ctx, ContactsKey)
	if err != nil {
		return fmt.Errorf("error loading contacts: %w", err)
	}

	if ok {
		if decoded, err := model.DecodeContacts(data); err != nil {
			log.Error().Err(err).Msg("stored contacts are unreadable; starting with none")
		} else {
			contacts = decoded
		}
	}

	t.tasks = t.withIDs(tasks)
	t.contacts = t.withContactIDs(contacts)

	log.Info().Int("tasks", len(t.tasks)).Int("contacts", len(t.contacts)).Msg("loaded data")

	t.notify(Event{Kind: EventLoaded})

	return nil
}

// Now returns the current time according to the tracker's clock.
func (t *Tracker) Now() time.Time {
	return t.now()
}

// Tasks returns a copy of the task collection in insertion order.
func (t *Tracker) Tasks() []model.Task {
	return append([]model.Task{}, t.tasks...)
}

// Contacts returns a copy of the contact collection in insertion order.
func (t *Tracker) Contacts() []model.Contact {
	return append([]model.Contact{}, t.contacts...)
}

// Task returns the task with the given id.
func (t *Tracker) Task(id string) (model.Task, bool) {
	if i := t.taskIndex(id); i >= 0 {
		return t.tasks[i], true
	}

	return model.Task{}, false
}

// Contact returns the contact with the given id.
func (t *Tracker) Contact(id string) (model.Contact, bool) {
	if i := t.contactIndex(id); i >= 0 {
		return t.contacts[i], true
	}

	return model.Contact{}, false
}

// Snapshot evaluates every view against the tracker's current day.
func (t *Tracker) Snapshot(limits classify.Limits) classify.Snapshot {
	return classify.Evaluate(t.tasks, t.now(), limits)
}

func (t *Tracker) taskIndex(id string) int {
	for i := range t.tasks {
		if t.tasks[i].ID == id {
			return i
		}
	}

	return -1
}

func (t *Tracker) contactIndex(id string) int {
	for i := range t.contacts {
		if t.contacts[i].ID == id {
			return i
		}
	}

	return -1
}

// withIDs gives every record an id so that it can be targeted by mutations.
func (t *Tracker) withIDs(tasks []model.Task) []model.Task {
	for i := range tasks {
		if tasks[i].ID == "" {
			tasks[i].ID = t.newID()
		}
	}

	return tasks
}

func (t *Tracker) withContactIDs(contacts []model.Contact) []model.Contact {
	for i := range contacts {
		if contacts[i].ID == "" {
			contacts[i].ID = t.newID()
		}
	}

	return contacts
}

// persist writes the collections named by keys. Failures are logged and returned for the
// observers but never undo the in-memory change.
func (t *Tracker) persist(ctx context.Context, keys ...string) error {
	var errs []error

	for _, key := range keys {
		var (
			value []byte
			err   error
		)

		switch key {
		case TasksKey:
			value, err = json.Marshal(t.tasks)
		case ContactsKey:
			value, err = json.Marshal(t.contacts)
		default:
			err = fmt.Errorf("%w: %s", errUnknownKey, key)
		}

		if err == nil {
			err = t.store.Save(ctx, key, value)
		}

		if err != nil {
			log.Error().Err(err).Str("key", key).Msg("error persisting collection")
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// commit persists the given keys and notifies observers of the event.
func (t *Tracker) commit(ctx context.Context, event Event, keys ...string) {
	event.PersistErr = t.persist(ctx, keys...)

	t.notify(event)
}
