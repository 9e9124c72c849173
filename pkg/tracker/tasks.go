package tracker

import (
	"context"
	"fmt"
	"strings"

	"github.com/matt-steen/ball-in-court/pkg/model"
	"github.com/rs/zerolog/log"
)

// FollowUpDays is the default gap between a handoff and its follow-up date.
const FollowUpDays = 2

// NewTask holds the fields supplied when creating a task. Urgency defaults to medium and Owner
// to model.Me.
type NewTask struct {
	Title   string
	DueDate model.Date
	Urgency model.Urgency
	Owner   string
}

// Handoff holds the fields a handoff overwrites. A zero FollowUpDate means today plus
// FollowUpDays.
type Handoff struct {
	Owner        string
	OwnerEmail   string
	Urgency      model.Urgency
	DueDate      model.Date
	FollowUpDate model.Date
}

// HandoffTo seeds a handoff from a contact; the contact's name and email are copied.
func HandoffTo(contact model.Contact, task model.Task) Handoff {
	return Handoff{
		Owner:      contact.Name,
		OwnerEmail: contact.Email,
		Urgency:    task.Urgency,
		DueDate:    task.DueDate,
	}
}

// AddTask appends a new active task.
func (t *Tracker) AddTask(ctx context.Context, input NewTask) (model.Task, error) {
	if strings.TrimSpace(input.Title) == "" {
		return model.Task{}, ErrEmptyTitle
	}

	urgency := input.Urgency
	if urgency == "" {
		urgency = model.UrgencyMedium
	}

	if !urgency.Valid() {
		return model.Task{}, fmt.Errorf("%w: '%s'", ErrInvalidUrgency, urgency)
	}

	owner := strings.TrimSpace(input.Owner)
	if owner == "" {
		owner = model.Me
	}

	now := t.now()
	task := model.Task{
		ID:        t.newID(),
		Title:     input.Title,
		DueDate:   input.DueDate,
		Urgency:   urgency,
		Owner:     owner,
		Status:    model.StatusActive,
		CreatedAt: &now,
	}

	t.tasks = append(t.tasks, task)

	log.Debug().Str("id", task.ID).Msgf("added task '%s'", task.Title)

	t.commit(ctx, Event{Kind: EventTaskAdded, ID: task.ID}, TasksKey)

	return task, nil
}

// CompleteTask marks a task completed now. Completing a completed task is rejected so the
// original completion date is kept.
func (t *Tracker) CompleteTask(ctx context.Context, id string) error {
	i := t.taskIndex(id)
	if i < 0 {
		log.Debug().Str("id", id).Msg("complete: no such task")

		return nil
	}

	if t.tasks[i].Status == model.StatusCompleted {
		return fmt.Errorf("error completing '%s': %w", t.tasks[i].Title, ErrTaskCompleted)
	}

	now := t.now()
	t.tasks[i].Status = model.StatusCompleted
	t.tasks[i].CompletedDate = &now

	log.Debug().Str("id", id).Msgf("completed task '%s'", t.tasks[i].Title)

	t.commit(ctx, Event{Kind: EventTaskCompleted, ID: id}, TasksKey)

	return nil
}

// DeleteTask removes a task permanently. Callers confirm with the user first; see Confirmed.
func (t *Tracker) DeleteTask(ctx context.Context, id string) error {
	i := t.taskIndex(id)
	if i < 0 {
		log.Debug().Str("id", id).Msg("delete: no such task")

		return nil
	}

	title := t.tasks[i].Title
	t.tasks = append(t.tasks[:i:i], t.tasks[i+1:]...)

	log.Debug().Str("id", id).Msgf("deleted task '%s'", title)

	t.commit(ctx, Event{Kind: EventTaskDeleted, ID: id}, TasksKey)

	return nil
}

// HandoffTask passes a task to a new owner. Owner, email, urgency, due date and follow-up date
// are all replaced, the handoff date is reset to now and the task becomes handed off. Handing
// off again restarts the bubble-up window. Completed tasks cannot be handed off.
func (t *Tracker) HandoffTask(ctx context.Context, id string, handoff Handoff) error {
	owner := strings.TrimSpace(handoff.Owner)
	if owner == "" {
		return ErrEmptyOwner
	}

	if !handoff.Urgency.Valid() {
		return fmt.Errorf("%w: '%s'", ErrInvalidUrgency, handoff.Urgency)
	}

	i := t.taskIndex(id)
	if i < 0 {
		log.Debug().Str("id", id).Msg("handoff: no such task")

		return nil
	}

	task := &t.tasks[i]
	if task.Status == model.StatusCompleted {
		return fmt.Errorf("error handing off '%s': %w", task.Title, ErrTaskCompleted)
	}

	now := t.now()
	today := model.DateOf(now)

	followUp := handoff.FollowUpDate
	if !followUp.IsSet() {
		followUp = today.AddDays(FollowUpDays)
	}

	if followUp.Before(today) {
		return fmt.Errorf("%w: %s", ErrFollowUpInPast, followUp)
	}

	task.Owner = owner
	task.OwnerEmail = strings.TrimSpace(handoff.OwnerEmail)
	task.Urgency = handoff.Urgency
	task.DueDate = handoff.DueDate
	task.FollowUpDate = followUp
	task.HandoffDate = &now
	task.Status = model.StatusHandedOff

	log.Debug().Str("id", id).Str("owner", owner).Msgf("handed off task '%s'", task.Title)

	t.commit(ctx, Event{Kind: EventTaskHandedOff, ID: id}, TasksKey)

	return nil
}
