package controller

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/matt-steen/ball-in-court/pkg/classify"
	"github.com/matt-steen/ball-in-court/pkg/db"
	"github.com/matt-steen/ball-in-court/pkg/model"
	"github.com/matt-steen/ball-in-court/pkg/notify"
	"github.com/matt-steen/ball-in-court/pkg/tracker"
	"github.com/rivo/tview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingDispatcher struct {
	urls []string
}

func (r *recordingDispatcher) Dispatch(_ context.Context, mailto string) error {
	r.urls = append(r.urls, mailto)

	return nil
}

func getController(t *testing.T, titles ...string) (*Controller, *tracker.Tracker, *recordingDispatcher) {
	ctx := context.Background()

	database, err := db.NewDatabase(ctx, filepath.Join(t.TempDir(), "tui.sqlite"))
	require.Nil(t, err)
	t.Cleanup(func() { database.Close() })

	tr := tracker.New(database)
	for _, title := range titles {
		_, err := tr.AddTask(ctx, tracker.NewTask{Title: title})
		require.Nil(t, err)
	}

	dispatcher := &recordingDispatcher{}

	c, err := NewController(ctx, tr, dispatcher, classify.DefaultLimits())
	require.Nil(t, err)

	c.showView(classify.ViewAll)

	return c, tr, dispatcher
}

func press(c *Controller, r rune) {
	c.handleKeys(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
}

func TestCompleteSelectedTask(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	c, tr, _ := getController(t, "first", "second")

	press(c, 'c')

	tasks := tr.Tasks()
	assert.Equal(model.StatusCompleted, tasks[0].Status)
	assert.Equal(model.StatusActive, tasks[1].Status)

	// the list refreshed through the observer
	assert.Equal(2, c.viewTables[classify.ViewAll].GetRowCount())

	task, ok := c.selectedTask()
	assert.True(ok)
	assert.Equal("second", task.Title)
}

func TestSwitchViews(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	c, _, _ := getController(t, "only")

	press(c, '2')
	assert.Equal(classify.ViewTopShort, c.selectedView)

	name, _ := c.pages.GetFrontPage()
	assert.Equal(pageName(string(classify.ViewTopShort)), name)

	press(c, 'p')

	name, _ = c.pages.GetFrontPage()
	assert.Equal(contactsPage, name)
}

func TestDeleteShowsConfirmation(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	c, tr, _ := getController(t, "doomed")

	press(c, 'd')

	name, _ := c.pages.GetFrontPage()
	assert.Equal(confirmPage, name)
	assert.Len(tr.Tasks(), 1)
}

func TestTaskForm(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	c, tr, _ := getController(t)

	press(c, 'n')
	setInputText(c.taskForm, "Title", "from the form")
	setInputText(c.taskForm, "Due Date", "2030-01-02")
	setDropDown(c.taskForm, "Urgency", urgencyIndex(model.UrgencyHigh))
	c.saveTask()

	tasks := tr.Tasks()
	assert.Len(tasks, 1)
	assert.Equal("from the form", tasks[0].Title)
	assert.Equal("2030-01-02", tasks[0].DueDate.String())
	assert.Equal(model.UrgencyHigh, tasks[0].Urgency)
	assert.Equal(model.Me, tasks[0].Owner)

	press(c, 'n')
	setInputText(c.taskForm, "Title", "bad date")
	setInputText(c.taskForm, "Due Date", "someday")
	c.saveTask()

	assert.Len(tr.Tasks(), 1)
	assert.Contains(c.message.GetText(true), "invalid date")
}

func TestHandoffFormWithContact(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	require := require.New(t)

	c, tr, dispatcher := getController(t, "contract")

	_, err := tr.AddContact(context.Background(), "Alex", "a@x.com")
	require.Nil(err)

	press(c, 'h')

	name, _ := c.pages.GetFrontPage()
	assert.Equal(pageName(string(formHandoff)), name)

	// picking the contact fills in the owner and email
	setDropDown(c.handoffForm, "Contact", 1)
	assert.Equal("Alex", inputText(c.handoffForm, "Owner"))

	checkbox, ok := c.handoffForm.GetFormItemByLabel("Send Email").(*tview.Checkbox)
	require.True(ok)
	checkbox.SetChecked(true)

	c.saveHandoff()

	task := tr.Tasks()[0]
	assert.Equal(model.StatusHandedOff, task.Status)
	assert.Equal("Alex", task.Owner)
	assert.Equal("a@x.com", task.OwnerEmail)

	mailto := notify.MailtoURL("a@x.com", notify.Compose(task))
	assert.Equal([]string{mailto}, dispatcher.urls)

	press(c, '4')
	assert.Equal(classify.ViewBubbleUp, c.selectedView)

	press(c, 'm')
	assert.Equal([]string{mailto, mailto}, dispatcher.urls)
}
