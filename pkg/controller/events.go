package controller

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/matt-steen/ball-in-court/pkg/classify"
	"github.com/matt-steen/ball-in-court/pkg/model"
	"github.com/matt-steen/ball-in-court/pkg/notify"
	"github.com/matt-steen/ball-in-court/pkg/tracker"
	"github.com/rs/zerolog/log"
)

func (c *Controller) initEvents() {
	c.events = map[rune]KeyEvent{}
	c.contactEvents = map[rune]KeyEvent{}
	c.formEvents = map[tcell.Key]KeyEvent{}

	c.initShowEvents(c.events)
	c.initTaskEvents(c.events)
	c.initContactEvents(c.contactEvents)

	c.initExitEvent(c.events)
	c.initExitEvent(c.contactEvents)

	c.formEvents[tcell.KeyEscape] = KeyEvent{
		Description: "Cancel",
		Action: func(key *tcell.EventKey) *tcell.EventKey {
			c.showView(c.selectedView)

			return nil
		},
	}
}

func (c *Controller) getExitAction() func(key *tcell.EventKey) *tcell.EventKey {
	return func(key *tcell.EventKey) *tcell.EventKey {
		c.app.Stop()

		return nil
	}
}

func (c *Controller) initExitEvent(events map[rune]KeyEvent) {
	events['q'] = KeyEvent{
		Description: "Exit",
		Action:      c.getExitAction(),
	}
}

func (c *Controller) getShowAction(view classify.View) func(key *tcell.EventKey) *tcell.EventKey {
	return func(key *tcell.EventKey) *tcell.EventKey {
		c.showView(view)

		return nil
	}
}

func (c *Controller) initShowEvents(events map[rune]KeyEvent) {
	for i, view := range classify.Views() {
		events[rune('1'+i)] = KeyEvent{
			Description: "Show " + view.Title(c.limits),
			Action:      c.getShowAction(view),
		}
	}

	events['p'] = KeyEvent{
		Description: "Show Contacts",
		Action: func(key *tcell.EventKey) *tcell.EventKey {
			c.showContacts()

			return nil
		},
	}
}

// withSelectedTask wraps an action that needs the highlighted task.
func (c *Controller) withSelectedTask(action func(model.Task)) func(key *tcell.EventKey) *tcell.EventKey {
	return func(key *tcell.EventKey) *tcell.EventKey {
		task, ok := c.selectedTask()
		if !ok {
			c.setMessage("no task selected")

			return nil
		}

		action(task)

		return nil
	}
}

func (c *Controller) initTaskEvents(events map[rune]KeyEvent) {
	events['n'] = KeyEvent{
		Description: "New Task",
		Action: func(key *tcell.EventKey) *tcell.EventKey {
			c.switchToTaskForm()

			return nil
		},
	}

	events['c'] = KeyEvent{
		Description: "Complete",
		Action:      c.withSelectedTask(c.completeTask),
	}

	events['h'] = KeyEvent{
		Description: "Hand Off",
		Action:      c.withSelectedTask(c.switchToHandoffForm),
	}

	events['d'] = KeyEvent{
		Description: "Delete",
		Action: c.withSelectedTask(func(task model.Task) {
			c.confirm(tracker.DeleteTaskPrompt, func() {
				if err := c.tracker.DeleteTask(c.ctx, task.ID); err != nil {
					c.setMessage(fmt.Sprintf("[red]%s", err))
				}
			})
		}),
	}

	events['m'] = KeyEvent{
		Description: "Mail Reminder",
		Action:      c.withSelectedTask(c.sendReminder),
	}
}

func (c *Controller) initContactEvents(events map[rune]KeyEvent) {
	events['a'] = KeyEvent{
		Description: "Add Contact",
		Action: func(key *tcell.EventKey) *tcell.EventKey {
			c.focusContactForm()

			return nil
		},
	}

	events['d'] = KeyEvent{
		Description: "Delete Contact",
		Action: func(key *tcell.EventKey) *tcell.EventKey {
			contact, ok := c.selectedContact()
			if !ok {
				return nil
			}

			c.confirm(tracker.DeleteContactPrompt, func() {
				if err := c.tracker.DeleteContact(c.ctx, contact.ID); err != nil {
					c.setMessage(fmt.Sprintf("[red]%s", err))
				}
			})

			return nil
		},
	}
}

func (c *Controller) completeTask(task model.Task) {
	if err := c.tracker.CompleteTask(c.ctx, task.ID); err != nil {
		log.Warn().Err(err).Msgf("error completing task '%s'", task.Title)
		c.setMessage(fmt.Sprintf("[red]%s", err))

		return
	}

	c.setMessage(fmt.Sprintf("completed '%s'", task.Title))
	c.clampSelection(c.viewTables[c.selectedView], len(c.snapshot.Get(c.selectedView)))
}

func (c *Controller) sendReminder(task model.Task) {
	if !notify.CanRemind(task) {
		c.setMessage(fmt.Sprintf("'%s' is not with anyone who has an email address", task.Title))

		return
	}

	if err := notify.Send(c.ctx, c.dispatcher, task, task.OwnerEmail); err != nil {
		c.setMessage(fmt.Sprintf("[red]could not open mail composer: %s", err))

		return
	}

	c.setMessage(fmt.Sprintf("reminder for '%s' opened for %s", task.Title, task.OwnerEmail))
}
