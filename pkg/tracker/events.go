package tracker

// EventKind says what changed.
type EventKind string

// These constants refer to the events published to observers.
const (
	EventLoaded         EventKind = "loaded"
	EventTaskAdded      EventKind = "task_added"
	EventTaskCompleted  EventKind = "task_completed"
	EventTaskDeleted    EventKind = "task_deleted"
	EventTaskHandedOff  EventKind = "task_handed_off"
	EventContactAdded   EventKind = "contact_added"
	EventContactDeleted EventKind = "contact_deleted"
	EventImported       EventKind = "imported"
)

// Event is published after a mutation has been committed and persisted.
type Event struct {
	Kind EventKind
	// ID is the task or contact affected, empty for whole-collection events.
	ID string
	// PersistErr is set when writing to the store failed. The in-memory state still holds the change.
	PersistErr error
}

// Observer is called synchronously after each mutation. Observers typically re-run the
// classifier to refresh whatever they display.
type Observer func(Event)

// Subscribe registers an observer.
func (t *Tracker) Subscribe(observer Observer) {
	t.observers = append(t.observers, observer)
}

func (t *Tracker) notify(event Event) {
	for _, observer := range t.observers {
		observer(event)
	}
}
