package controller

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/matt-steen/ball-in-court/pkg/classify"
	"github.com/matt-steen/ball-in-court/pkg/model"
	"github.com/matt-steen/ball-in-court/pkg/notify"
	"github.com/matt-steen/ball-in-court/pkg/tracker"
	"github.com/rivo/tview"
	"github.com/rs/zerolog/log"
)

const (
	titleRatio   = 3
	contactsPage = "contacts"
	confirmPage  = "confirm"
)

// Controller mediates between the tracker and the view. It holds no task state of its own:
// every list is read from the latest classifier snapshot.
type Controller struct {
	ctx        context.Context
	tracker    *tracker.Tracker
	dispatcher notify.Dispatcher
	limits     classify.Limits

	app      *tview.Application
	pages    *tview.Pages
	message  *tview.TextView
	snapshot classify.Snapshot

	selectedView classify.View
	viewTables   map[classify.View]*tview.Table
	contactTable *tview.Table

	events        map[rune]KeyEvent
	contactEvents map[rune]KeyEvent
	formEvents    map[tcell.Key]KeyEvent

	taskForm    *tview.Form
	handoffForm *tview.Form
	contactForm *tview.Form
	// handoffID is the task the handoff form was opened for.
	handoffID string
}

// KeyEvent defines an event associated with a keypress.
type KeyEvent struct {
	Description string
	Action      func(*tcell.EventKey) *tcell.EventKey
}

// NewController creates a new Controller to run the app.
func NewController(
	ctx context.Context,
	tr *tracker.Tracker,
	dispatcher notify.Dispatcher,
	limits classify.Limits,
) (*Controller, error) {
	c := Controller{
		ctx:          ctx,
		tracker:      tr,
		dispatcher:   dispatcher,
		limits:       limits,
		app:          tview.NewApplication(),
		selectedView: classify.ViewAll,
		viewTables:   map[classify.View]*tview.Table{},
	}

	c.initEvents()
	c.build()

	tr.Subscribe(c.onChange)

	return &c, nil
}

// Go starts the app and blocks until it exits.
func (c *Controller) Go() error {
	c.showView(c.selectedView)

	if err := c.app.Run(); err != nil {
		return fmt.Errorf("error running ui: %w", err)
	}

	log.Info().Msg("terminating application")

	return nil
}

func (c *Controller) build() {
	c.snapshot = c.tracker.Snapshot(c.limits)
	c.pages = tview.NewPages()
	c.message = tview.NewTextView().SetDynamicColors(true)

	for _, view := range classify.Views() {
		c.pages.AddPage(pageName(string(view)), c.getViewGrid(view), true, false)
	}

	c.pages.AddPage(contactsPage, c.getContactGrid(), true, false)
	c.pages.AddPage(pageName(string(formTask)), c.getFormGrid(formTask), true, false)
	c.pages.AddPage(pageName(string(formHandoff)), c.getFormGrid(formHandoff), true, false)

	root := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(c.pages, 0, 1, true).
		AddItem(c.message, 1, 0, false)

	c.app.SetRoot(root, true)
}

// onChange is the tracker observer: re-run the classifier and report save failures.
func (c *Controller) onChange(event tracker.Event) {
	c.snapshot = c.tracker.Snapshot(c.limits)

	if event.PersistErr != nil {
		c.setMessage(fmt.Sprintf("[red]changes not saved: %s", event.PersistErr))

		return
	}

	log.Debug().Str("event", string(event.Kind)).Str("id", event.ID).Msg("refreshed views")
}

func (c *Controller) setMessage(msg string) {
	c.message.SetText(msg)
}

func (c *Controller) handleKeys(evt *tcell.EventKey) *tcell.EventKey {
	if evt.Key() != tcell.KeyRune {
		return evt
	}

	if k, ok := c.events[evt.Rune()]; ok {
		return k.Action(evt)
	}

	return evt
}

func (c *Controller) handleContactKeys(evt *tcell.EventKey) *tcell.EventKey {
	if evt.Key() == tcell.KeyEscape {
		c.showView(c.selectedView)

		return nil
	}

	if evt.Key() != tcell.KeyRune {
		return evt
	}

	if k, ok := c.contactEvents[evt.Rune()]; ok {
		return k.Action(evt)
	}

	return evt
}

func (c *Controller) handleFormKeys(evt *tcell.EventKey) *tcell.EventKey {
	if k, ok := c.formEvents[evt.Key()]; ok {
		return k.Action(evt)
	}

	return evt
}

// confirm shows a yes/no modal and runs onYes if the user agrees.
func (c *Controller) confirm(prompt string, onYes func()) {
	returnTo, _ := c.pages.GetFrontPage()

	modal := tview.NewModal().
		SetText(prompt).
		AddButtons([]string{"Yes", "No"}).
		SetDoneFunc(func(_ int, label string) {
			c.pages.RemovePage(confirmPage)

			if label == "Yes" {
				onYes()
			}

			if returnTo == contactsPage {
				c.showContacts()
			} else {
				c.showView(c.selectedView)
			}
		})

	c.app.SetInputCapture(nil)
	c.pages.AddPage(confirmPage, modal, false, true)
	c.app.SetFocus(modal)
}

func (c *Controller) selectedTask() (model.Task, bool) {
	table := c.viewTables[c.selectedView]
	if table == nil {
		return model.Task{}, false
	}

	row, _ := table.GetSelection()
	tasks := c.snapshot.Get(c.selectedView)

	// adjust for the header row
	if idx := row - 1; idx >= 0 && idx < len(tasks) {
		return tasks[idx], true
	}

	return model.Task{}, false
}

func (c *Controller) selectedContact() (model.Contact, bool) {
	row, _ := c.contactTable.GetSelection()
	contacts := c.tracker.Contacts()

	if idx := row - 1; idx >= 0 && idx < len(contacts) {
		return contacts[idx], true
	}

	return model.Contact{}, false
}
