package classify

import (
	"fmt"
	"time"

	"github.com/matt-steen/ball-in-court/pkg/model"
)

// View names a list the user can switch to.
type View string

// These constants refer to the views supported by the app.
const (
	ViewAll       View = "all"
	ViewTopShort  View = "top1"
	ViewTopLong   View = "top5"
	ViewBubbleUp  View = "bubble"
	ViewStale     View = "stale"
	ViewCompleted View = "completed"
)

// Views lists every view in display order.
func Views() []View {
	return []View{ViewAll, ViewTopShort, ViewTopLong, ViewBubbleUp, ViewStale, ViewCompleted}
}

// ParseView returns the view with the given name.
func ParseView(name string) (View, error) {
	for _, v := range Views() {
		if string(v) == name {
			return v, nil
		}
	}

	return "", fmt.Errorf("unknown view '%s'", name)
}

// Limits holds the sizes of the two top-priority views.
type Limits struct {
	TopShort int
	TopLong  int
}

// DefaultLimits are the Top 1 and Top 5 views.
func DefaultLimits() Limits {
	return Limits{TopShort: 1, TopLong: 5}
}

// Snapshot is every view computed against the same day.
type Snapshot struct {
	Today     model.Date
	All       []model.Task
	TopShort  []model.Task
	TopLong   []model.Task
	BubbleUp  []model.Task
	Stale     []model.Task
	Completed []model.Task
}

// Evaluate computes all views once, fixing today from now.
func Evaluate(tasks []model.Task, now time.Time, limits Limits) Snapshot {
	today := Today(now)

	return Snapshot{
		Today:     today,
		All:       Active(tasks),
		TopShort:  Top(tasks, today, limits.TopShort),
		TopLong:   Top(tasks, today, limits.TopLong),
		BubbleUp:  BubbleUp(tasks, today),
		Stale:     Stale(tasks, today),
		Completed: Completed(tasks, today),
	}
}

// Get returns the tasks for the given view.
func (s Snapshot) Get(view View) []model.Task {
	switch view {
	case ViewAll:
		return s.All
	case ViewTopShort:
		return s.TopShort
	case ViewTopLong:
		return s.TopLong
	case ViewBubbleUp:
		return s.BubbleUp
	case ViewStale:
		return s.Stale
	case ViewCompleted:
		return s.Completed
	}

	return []model.Task{}
}

// Title returns the heading shown for a view.
func (v View) Title(limits Limits) string {
	switch v {
	case ViewAll:
		return "All Active Tasks"
	case ViewTopShort:
		return topTitle(limits.TopShort)
	case ViewTopLong:
		return topTitle(limits.TopLong)
	case ViewBubbleUp:
		return "Bubble Up (recently handed off)"
	case ViewStale:
		return "Stale Tasks"
	case ViewCompleted:
		return "Completed Tasks"
	}

	return string(v)
}

func topTitle(n int) string {
	if n == 1 {
		return "Top Priority Today"
	}

	return fmt.Sprintf("Top %d Priorities Today", n)
}
