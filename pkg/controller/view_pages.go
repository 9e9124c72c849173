package controller

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/matt-steen/ball-in-court/pkg/classify"
	"github.com/rivo/tview"
	"github.com/rs/zerolog/log"
)

func pageName(name string) string {
	return "page-" + name
}

func (c *Controller) getViewGrid(view classify.View) *tview.Grid {
	header := c.getViewHeader(view)
	c.viewTables[view] = c.getTable(view)

	grid := tview.NewGrid().SetRows(0, -3).SetBorders(true)

	grid.AddItem(header, 0, 0, 1, 1, 0, 0, false)
	grid.AddItem(c.viewTables[view], 1, 0, 1, 1, 0, 0, true)

	return grid
}

// getViewHeader returns the header used for each list of tasks.
// it shows the view title at the top, followed by 2 columns listing keyboard shortcuts.
// the first column contains actions, the second contains "Show <view>" shortcuts.
func (c *Controller) getViewHeader(view classify.View) *tview.Table {
	table := tview.NewTable().SetBorders(false).SetSelectable(false, false)

	row := 0
	table.SetCell(row, 0, tview.NewTableCell(fmt.Sprintf("[yellow]%s", view.Title(c.limits))))
	row++

	shortcuts := map[int][]string{
		0: {},
		1: {},
	}

	for key, event := range c.events {
		text := fmt.Sprintf("[orange]<%c>[white] %s", key, event.Description)

		if strings.HasPrefix(event.Description, "Show") {
			shortcuts[1] = append(shortcuts[1], text)
		} else {
			shortcuts[0] = append(shortcuts[0], text)
		}
	}

	for col := 0; col < 2; col++ {
		sort.Strings(shortcuts[col])
	}

	for row-1 < len(shortcuts[0]) || row-1 < len(shortcuts[1]) {
		for col := 0; col < 2; col++ {
			if row-1 < len(shortcuts[col]) {
				table.SetCell(row, col, tview.NewTableCell(shortcuts[col][row-1]).SetExpansion(1))
			}
		}

		row++
	}

	return table
}

func (c *Controller) getTable(view classify.View) *tview.Table {
	table := tview.NewTable().SetBorders(false)

	table.SetContent(&ViewContent{
		view:     view,
		snapshot: func() classify.Snapshot { return c.snapshot },
	})

	table.SetSelectable(true, false)
	table.SetFixed(1, 0)
	table.Select(1, 0)

	return table
}

// clampSelection keeps the selection on a task row after the list changed size.
func (c *Controller) clampSelection(table *tview.Table, rows int) {
	row, _ := table.GetSelection()

	switch {
	case rows == 0:
		table.Select(1, 0)
	case row > rows:
		table.Select(rows, 0)
	case row < 1:
		table.Select(1, 0)
	}
}

func (c *Controller) showView(view classify.View) {
	c.selectedView = view

	table := c.viewTables[view]
	c.clampSelection(table, len(c.snapshot.Get(view)))

	c.app.SetInputCapture(c.handleKeys)
	c.pages.SwitchToPage(pageName(string(view)))
	c.app.SetFocus(table)

	log.Debug().Str("view", string(view)).Int("tasks", len(c.snapshot.Get(view))).Msg("showing view")
}

func (c *Controller) getContactGrid() *tview.Grid {
	header := tview.NewTable().SetBorders(false).SetSelectable(false, false)
	header.SetCell(0, 0, tview.NewTableCell("[yellow]Contacts"))

	keys := make([]string, 0, len(c.contactEvents))
	for key, event := range c.contactEvents {
		keys = append(keys, fmt.Sprintf("[orange]<%c>[white] %s", key, event.Description))
	}

	keys = append(keys, "[orange]<Esc>[white] Back")
	sort.Strings(keys)

	for i, text := range keys {
		header.SetCell(i+1, 0, tview.NewTableCell(text))
	}

	c.contactTable = tview.NewTable().SetBorders(false)
	c.contactTable.SetContent(&ContactContent{contacts: c.tracker.Contacts})
	c.contactTable.SetSelectable(true, false)
	c.contactTable.SetFixed(1, 0)
	c.contactTable.Select(1, 0)

	c.contactForm = tview.NewForm().
		AddInputField("Name", "", 40, nil, nil).
		AddInputField("Email", "", 40, nil, nil)
	c.contactForm.AddButton("Add Contact", c.saveContact)

	grid := tview.NewGrid().SetRows(0, -3, 7).SetBorders(true)
	grid.AddItem(header, 0, 0, 1, 1, 0, 0, false)
	grid.AddItem(c.contactTable, 1, 0, 1, 1, 0, 0, true)
	grid.AddItem(c.contactForm, 2, 0, 1, 1, 0, 0, false)

	return grid
}

func (c *Controller) showContacts() {
	c.clampSelection(c.contactTable, len(c.tracker.Contacts()))

	c.app.SetInputCapture(c.handleContactKeys)
	c.pages.SwitchToPage(contactsPage)
	c.app.SetFocus(c.contactTable)
}

func (c *Controller) saveContact() {
	name := inputText(c.contactForm, "Name")
	email := inputText(c.contactForm, "Email")

	if _, err := c.tracker.AddContact(c.ctx, name, email); err != nil {
		c.setMessage(fmt.Sprintf("[red]%s", err))

		return
	}

	setInputText(c.contactForm, "Name", "")
	setInputText(c.contactForm, "Email", "")
	c.setMessage(fmt.Sprintf("added contact %s", name))

	// the form captured focus; hand it back to the list and its shortcuts
	c.showContacts()
}

// focusContactForm moves focus to the add-contact form; Esc leaves it.
func (c *Controller) focusContactForm() {
	c.app.SetInputCapture(func(evt *tcell.EventKey) *tcell.EventKey {
		if evt.Key() == tcell.KeyEscape {
			c.showContacts()

			return nil
		}

		return evt
	})
	c.contactForm.SetFocus(0)
	c.app.SetFocus(c.contactForm)
}
