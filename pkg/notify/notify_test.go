package notify_test

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/matt-steen/ball-in-court/pkg/model"
	"github.com/matt-steen/ball-in-court/pkg/notify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingDispatcher struct {
	urls []string
	err  error
}

func (r *recordingDispatcher) Dispatch(_ context.Context, mailto string) error {
	if r.err != nil {
		return r.err
	}

	r.urls = append(r.urls, mailto)

	return nil
}

func handedOff() model.Task {
	return model.Task{
		ID:           "t1",
		Title:        "Draft contract & terms",
		Urgency:      model.UrgencyMedium,
		Owner:        "Alex",
		OwnerEmail:   "a@x.com",
		DueDate:      model.NewDate(2026, 3, 15),
		Status:       model.StatusHandedOff,
		FollowUpDate: model.Date{},
	}
}

func TestCompose(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	reminder := notify.Compose(handedOff())

	assert.Equal("Task Assigned: Draft contract & terms", reminder.Subject)
	assert.Contains(reminder.Body, "Task: Draft contract & terms\n")
	assert.Contains(reminder.Body, "Urgency: Medium\n")
	assert.Contains(reminder.Body, "Due Date: 3/15/2026\n")
	assert.Contains(reminder.Body, "Follow Up: Not set\n")
	assert.True(strings.HasPrefix(reminder.Body, "Hi,\n\n"))
}

func TestMailtoURL(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	require := require.New(t)

	reminder := notify.Compose(handedOff())
	mailto := notify.MailtoURL("a@x.com", reminder)

	assert.True(strings.HasPrefix(mailto, "mailto:a@x.com?subject=Task%20Assigned%3A%20Draft%20contract%20%26%20terms&body="))
	assert.NotContains(mailto, "+")

	parsed, err := url.Parse(mailto)
	require.Nil(err)
	assert.Equal(reminder.Subject, parsed.Query().Get("subject"))
	assert.Equal(reminder.Body, parsed.Query().Get("body"))
}

func TestCanRemind(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	task := handedOff()
	assert.True(notify.CanRemind(task))

	task.OwnerEmail = ""
	assert.False(notify.CanRemind(task))

	task = handedOff()
	task.Owner = model.Me
	assert.False(notify.CanRemind(task))

	task = handedOff()
	task.Status = model.StatusCompleted
	assert.False(notify.CanRemind(task))
}

func TestSend(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	dispatcher := &recordingDispatcher{}
	ctx := context.Background()

	assert.ErrorIs(notify.Send(ctx, dispatcher, handedOff(), "  "), notify.ErrNoAddress)
	assert.Nil(notify.Send(ctx, dispatcher, handedOff(), "a@x.com"))
	assert.Len(dispatcher.urls, 1)

	dispatcher.err = errors.New("no composer")
	assert.NotNil(notify.Send(ctx, dispatcher, handedOff(), "a@x.com"))
}

func TestOpener(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	assert.Equal([]string{"my-mailer", "--compose"}, notify.NewOpener([]string{"my-mailer", "--compose"}).Command)
	assert.NotEmpty(notify.NewOpener(nil).Command)

	err := (&notify.Opener{}).Dispatch(context.Background(), "mailto:a@x.com")
	assert.NotNil(err)

	err = notify.NewOpener([]string{"/nonexistent/opener"}).Dispatch(context.Background(), "mailto:a@x.com")
	assert.NotNil(err)
}
