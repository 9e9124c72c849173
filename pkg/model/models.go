package model

import (
	"strings"
	"time"
)

// Me is the owner name used for the local user.
const Me = "Me"

// These constants refer to the statuses a task moves through.
const (
	StatusActive    Status = "active"
	StatusHandedOff Status = "handed-off"
	StatusCompleted Status = "completed"
)

// These constants refer to the supported urgency levels.
const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

// Status is the lifecycle state of a Task.
type Status string

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusHandedOff, StatusCompleted:
		return true
	}

	return false
}

// Urgency ranks how pressing a Task is.
type Urgency string

// Valid reports whether u is one of the known urgency levels.
func (u Urgency) Valid() bool {
	return u.Weight() > 0
}

// Weight is used for ranking; unknown urgencies weigh 0 and sort below low.
func (u Urgency) Weight() int {
	switch u {
	case UrgencyHigh:
		return 3
	case UrgencyMedium:
		return 2
	case UrgencyLow:
		return 1
	}

	return 0
}

// Title returns the urgency with its first letter capitalized, e.g. "High".
func (u Urgency) Title() string {
	if u == "" {
		return ""
	}

	return strings.ToUpper(string(u[:1])) + string(u[1:])
}

// ParseUrgency returns the urgency named by s, or false if s names none.
func ParseUrgency(s string) (Urgency, bool) {
	u := Urgency(strings.ToLower(strings.TrimSpace(s)))

	return u, u.Valid()
}

// Task is a unit of work with a single current owner.
type Task struct {
	ID      string  `json:"id"`
	Title   string  `json:"title"`
	DueDate Date    `json:"dueDate"`
	Urgency Urgency `json:"urgency"`
	// Owner is whoever the ball is with; Me for the local user.
	Owner string `json:"owner"`
	// OwnerEmail is copied from the handoff target, never linked to a Contact.
	OwnerEmail string `json:"ownerEmail,omitempty"`
	// FollowUpDate is only set by a handoff.
	FollowUpDate  Date       `json:"followUpDate"`
	Status        Status     `json:"status"`
	CreatedAt     *time.Time `json:"createdAt,omitempty"`
	HandoffDate   *time.Time `json:"handoffDate,omitempty"`
	CompletedDate *time.Time `json:"completedDate,omitempty"`
}

// Contact is a handoff target kept for convenience.
type Contact struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
