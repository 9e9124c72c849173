// Package classify derives the task views shown to the user. Every function is read-only: it
// never modifies the tasks it is given and returns a new slice, empty when nothing matches.
//
// All comparisons are made at day granularity against a single "today" supplied by the caller,
// so that one evaluation never straddles midnight.
package classify

import (
	"sort"
	"time"

	"github.com/matt-steen/ball-in-court/pkg/model"
)

const (
	// BubbleUpDays is how many days after a handoff a task stays in the bubble-up view.
	BubbleUpDays = 3
	// StaleDays is how many days past its due or follow-up date a task becomes stale.
	StaleDays = 7
)

// Bucket is the status partition a task falls into. Every task lands in exactly one bucket.
type Bucket int

// These constants name the buckets.
const (
	BucketNone Bucket = iota
	BucketActive
	BucketHandedOff
	BucketCompleted
)

// Today returns the calendar date of now.
func Today(now time.Time) model.Date {
	return model.DateOf(now)
}

// BucketOf places a task by status alone; records with an unknown status land in BucketNone.
func BucketOf(task model.Task) Bucket {
	switch task.Status {
	case model.StatusActive:
		return BucketActive
	case model.StatusHandedOff:
		return BucketHandedOff
	case model.StatusCompleted:
		return BucketCompleted
	}

	return BucketNone
}

// CompletedOn reports whether the task was completed on the given day.
func CompletedOn(task model.Task, today model.Date) bool {
	if task.CompletedDate == nil {
		return false
	}

	return model.DateOf(*task.CompletedDate).Equal(today)
}

// Active returns the active tasks in collection order.
func Active(tasks []model.Task) []model.Task {
	return filter(tasks, func(t model.Task) bool {
		return t.Status == model.StatusActive
	})
}

// Top returns up to limit of the local user's tasks ranked by urgency and then by due date,
// undated last. Tasks completed today stay in the ranking until the day ends.
func Top(tasks []model.Task, today model.Date, limit int) []model.Task {
	mine := filter(tasks, func(t model.Task) bool {
		if t.Owner != model.Me {
			return false
		}

		return t.Status == model.StatusActive || (t.Status == model.StatusCompleted && CompletedOn(t, today))
	})

	sort.SliceStable(mine, func(i, j int) bool {
		a, b := mine[i], mine[j]
		if wa, wb := a.Urgency.Weight(), b.Urgency.Weight(); wa != wb {
			return wa > wb
		}

		return earlierDate(a.DueDate, b.DueDate)
	})

	if limit < 0 {
		limit = 0
	}

	if len(mine) > limit {
		mine = mine[:limit]
	}

	return mine
}

// BubbleUp returns handed-off tasks within BubbleUpDays of their handoff. The result keeps
// collection order; callers should not rely on any ordering.
func BubbleUp(tasks []model.Task, today model.Date) []model.Task {
	return filter(tasks, func(t model.Task) bool {
		if t.Status != model.StatusHandedOff || t.HandoffDate == nil {
			return false
		}

		return today.DaysSince(model.DateOf(*t.HandoffDate)) <= BubbleUpDays
	})
}

// IsStale reports whether an open task's due or follow-up date is StaleDays or more in the past.
func IsStale(task model.Task, today model.Date) bool {
	if task.Status == model.StatusCompleted {
		return false
	}

	if task.DueDate.IsSet() && today.DaysSince(task.DueDate) >= StaleDays {
		return true
	}

	return task.FollowUpDate.IsSet() && today.DaysSince(task.FollowUpDate) >= StaleDays
}

// Stale returns the stale tasks, most recent follow-up (or due) date first; tasks with neither
// date sort last.
func Stale(tasks []model.Task, today model.Date) []model.Task {
	stale := filter(tasks, func(t model.Task) bool {
		return IsStale(t, today)
	})

	sort.SliceStable(stale, func(i, j int) bool {
		return laterDate(staleKey(stale[i]), staleKey(stale[j]))
	})

	return stale
}

// Completed returns the completion history, most recent first. Tasks completed today are left
// out until tomorrow.
func Completed(tasks []model.Task, today model.Date) []model.Task {
	done := filter(tasks, func(t model.Task) bool {
		return t.Status == model.StatusCompleted && !CompletedOn(t, today)
	})

	sort.SliceStable(done, func(i, j int) bool {
		a, b := done[i].CompletedDate, done[j].CompletedDate
		if a == nil || b == nil {
			return a != nil
		}

		return a.After(*b)
	})

	return done
}

func staleKey(task model.Task) model.Date {
	if task.FollowUpDate.IsSet() {
		return task.FollowUpDate
	}

	return task.DueDate
}

// earlierDate orders set dates ascending with unset dates last.
func earlierDate(a, b model.Date) bool {
	if !a.IsSet() || !b.IsSet() {
		return a.IsSet() && !b.IsSet()
	}

	return a.Before(b)
}

// laterDate orders set dates descending with unset dates last.
func laterDate(a, b model.Date) bool {
	if !a.IsSet() || !b.IsSet() {
		return a.IsSet() && !b.IsSet()
	}

	return b.Before(a)
}

func filter(tasks []model.Task, keep func(model.Task) bool) []model.Task {
	out := []model.Task{}

	for _, t := range tasks {
		if keep(t) {
			out = append(out, t)
		}
	}

	return out
}
