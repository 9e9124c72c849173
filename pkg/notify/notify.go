// Package notify composes handoff reminders and passes them to the desktop mail composer.
// Delivery is not tracked: once the composer has been launched the reminder is out of our hands.
package notify

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
	"strings"

	"github.com/matt-steen/ball-in-court/pkg/model"
	"github.com/rs/zerolog/log"
)

// ErrNoAddress is returned when there is nobody to remind.
var ErrNoAddress = errors.New("no email address")

// displayDate matches the short US date format, e.g. 3/7/2026.
const displayDate = "1/2/2006"

// Reminder is a plain-text email.
type Reminder struct {
	Subject string
	Body    string
}

// Compose builds the reminder sent to a task's new owner.
func Compose(task model.Task) Reminder {
	var body strings.Builder

	body.WriteString("Hi,\n\nYou've been assigned a task in Ball-in-Court:\n\n")
	fmt.Fprintf(&body, "Task: %s\n", task.Title)
	fmt.Fprintf(&body, "Urgency: %s\n", task.Urgency.Title())
	fmt.Fprintf(&body, "Due Date: %s\n", FormatDate(task.DueDate))
	fmt.Fprintf(&body, "Follow Up: %s\n\n", FormatDate(task.FollowUpDate))
	body.WriteString("Please let me know if you have any questions!\n\nBest regards")

	return Reminder{
		Subject: fmt.Sprintf("Task Assigned: %s", task.Title),
		Body:    body.String(),
	}
}

// FormatDate renders a date for display, or "Not set".
func FormatDate(d model.Date) string {
	if !d.IsSet() {
		return "Not set"
	}

	return d.Time().Format(displayDate)
}

// CanRemind reports whether a reminder can be offered for the task.
func CanRemind(task model.Task) bool {
	return task.Owner != model.Me && task.OwnerEmail != "" && task.Status != model.StatusCompleted
}

// MailtoURL encodes the reminder for the given address.
func MailtoURL(address string, reminder Reminder) string {
	return fmt.Sprintf("mailto:%s?subject=%s&body=%s", address, encode(reminder.Subject), encode(reminder.Body))
}

// encode percent-encodes like a URI component: spaces become %20 rather than +.
func encode(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// Dispatcher hands a mailto URL to something that can send it.
type Dispatcher interface {
	Dispatch(ctx context.Context, mailto string) error
}

// Opener launches a command with the URL as its last argument and does not wait for it.
type Opener struct {
	Command []string
}

// NewOpener returns an Opener for the given command, or the platform's default URL opener when
// command is empty.
func NewOpener(command []string) *Opener {
	if len(command) > 0 {
		return &Opener{Command: command}
	}

	switch runtime.GOOS {
	case "darwin":
		return &Opener{Command: []string{"open"}}
	case "windows":
		return &Opener{Command: []string{"rundll32", "url.dll,FileProtocolHandler"}}
	default:
		return &Opener{Command: []string{"xdg-open"}}
	}
}

// Dispatch starts the opener.
func (o *Opener) Dispatch(ctx context.Context, mailto string) error {
	if len(o.Command) == 0 {
		return errors.New("no opener command")
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	args := append(append([]string{}, o.Command[1:]...), mailto)

	// not bound to ctx: the composer outlives the command that launched it
	cmd := exec.Command(o.Command[0], args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("error starting %s: %w", o.Command[0], err)
	}

	// reap the process in the background; its outcome is not tracked
	go func() {
		_ = cmd.Wait()
	}()

	return nil
}

// Send composes and dispatches a reminder for the task to address. Failures are logged and
// returned, but callers are free to ignore them.
func Send(ctx context.Context, dispatcher Dispatcher, task model.Task, address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return ErrNoAddress
	}

	mailto := MailtoURL(address, Compose(task))

	if err := dispatcher.Dispatch(ctx, mailto); err != nil {
		log.Warn().Err(err).Str("task", task.ID).Msg("error dispatching reminder")

		return err
	}

	log.Info().Str("task", task.ID).Str("to", address).Msg("reminder handed to mail composer")

	return nil
}
