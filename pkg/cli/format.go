package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/matt-steen/ball-in-court/pkg/classify"
	"github.com/matt-steen/ball-in-court/pkg/model"
	"github.com/matt-steen/ball-in-court/pkg/notify"
	"github.com/matt-steen/ball-in-court/pkg/tracker"
)

const shortIDLen = 8

func shortID(id string) string {
	if len(id) > shortIDLen {
		return id[:shortIDLen]
	}

	return id
}

// printTasks writes one line per task. Tasks completed today are marked with an x.
func printTasks(out io.Writer, tasks []model.Task, today model.Date) {
	if len(tasks) == 0 {
		fmt.Fprintln(out, "No tasks.")

		return
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	for _, t := range tasks {
		mark := " "
		if classify.CompletedOn(t, today) {
			mark = "x"
		}

		details := []string{}
		if t.DueDate.IsSet() {
			details = append(details, "due "+notify.FormatDate(t.DueDate))
		}

		if t.FollowUpDate.IsSet() {
			details = append(details, "follow up "+notify.FormatDate(t.FollowUpDate))
		}

		if t.CompletedDate != nil {
			details = append(details, "done "+notify.FormatDate(model.DateOf(*t.CompletedDate)))
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			shortID(t.ID), mark, t.Urgency.Title(), t.Title, t.Owner, strings.Join(details, ", "))
	}

	w.Flush()
}

func printContacts(out io.Writer, contacts []model.Contact) {
	if len(contacts) == 0 {
		fmt.Fprintln(out, "No contacts.")

		return
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	for _, c := range contacts {
		fmt.Fprintf(w, "%s\t%s\t%s\n", shortID(c.ID), c.Name, c.Email)
	}

	w.Flush()
}

// resolveTask finds a task by id or unique id prefix.
func resolveTask(tr *tracker.Tracker, ref string) (model.Task, error) {
	var matches []model.Task

	for _, t := range tr.Tasks() {
		if t.ID == ref {
			return t, nil
		}

		if strings.HasPrefix(t.ID, ref) {
			matches = append(matches, t)
		}
	}

	switch len(matches) {
	case 0:
		return model.Task{}, fmt.Errorf("no task matches '%s'", ref)
	case 1:
		return matches[0], nil
	}

	return model.Task{}, fmt.Errorf("'%s' matches %d tasks", ref, len(matches))
}

// resolveContact finds a contact by id, unique id prefix or name.
func resolveContact(tr *tracker.Tracker, ref string) (model.Contact, error) {
	if c, ok := tr.FindContact(ref); ok {
		return c, nil
	}

	var matches []model.Contact

	for _, c := range tr.Contacts() {
		if strings.HasPrefix(c.ID, ref) {
			matches = append(matches, c)
		}
	}

	switch len(matches) {
	case 0:
		return model.Contact{}, fmt.Errorf("no contact matches '%s'", ref)
	case 1:
		return matches[0], nil
	}

	return model.Contact{}, fmt.Errorf("'%s' matches %d contacts", ref, len(matches))
}

// parseDateArg accepts YYYY-MM-DD, "today", "tomorrow", "+N" days, or "none" for no date.
func parseDateArg(s string, now time.Time) (model.Date, error) {
	today := model.DateOf(now)

	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return model.Date{}, nil
	case "today":
		return today, nil
	case "tomorrow":
		return today.AddDays(1), nil
	}

	if strings.HasPrefix(s, "+") {
		n, err := strconv.Atoi(s[1:])
		if err != nil {
			return model.Date{}, fmt.Errorf("invalid date offset '%s'", s)
		}

		return today.AddDays(n), nil
	}

	d, ok := model.ParseDate(s)
	if !ok {
		return model.Date{}, fmt.Errorf("invalid date '%s' (want YYYY-MM-DD, today, tomorrow, +N or none)", s)
	}

	return d, nil
}

func parseUrgencyArg(s string) (model.Urgency, error) {
	u, ok := model.ParseUrgency(s)
	if !ok {
		return "", fmt.Errorf("invalid urgency '%s' (want low, medium or high)", s)
	}

	return u, nil
}
