package controller

import (
	"github.com/gdamore/tcell/v2"
	"github.com/matt-steen/ball-in-court/pkg/classify"
	"github.com/matt-steen/ball-in-court/pkg/model"
	"github.com/matt-steen/ball-in-court/pkg/notify"
	"github.com/rivo/tview"
)

// urgencyColor maps urgencies to the colors used in the urgency column.
func urgencyColor(u model.Urgency) tcell.Color {
	switch u {
	case model.UrgencyHigh:
		return tcell.ColorRed
	case model.UrgencyMedium:
		return tcell.ColorOrange
	case model.UrgencyLow:
		return tcell.ColorGreen
	}

	return tcell.ColorWhite
}

var taskColumns = []string{"title", "urgency", "due", "owner", "follow up"}

// ViewContent implements tview.TableContent, which tview.Table uses to read the tasks of one view.
type ViewContent struct {
	tview.TableContentReadOnly
	view     classify.View
	snapshot func() classify.Snapshot
}

// GetCell returns the cell at the given position or nil if no cell.
func (v *ViewContent) GetCell(row, col int) *tview.TableCell {
	if col < 0 || col >= len(taskColumns) {
		return nil
	}

	if row == 0 {
		cell := tview.NewTableCell(taskColumns[col]).SetTextColor(tcell.ColorYellow).SetSelectable(false)
		if col == 0 {
			return cell.SetExpansion(titleRatio)
		}

		return cell.SetExpansion(1)
	}

	snapshot := v.snapshot()
	tasks := snapshot.Get(v.view)

	if row-1 >= len(tasks) {
		return nil
	}

	task := tasks[row-1]

	var cell *tview.TableCell

	switch col {
	case 0:
		cell = tview.NewTableCell(task.Title).SetExpansion(titleRatio).SetReference(task.ID)
	case 1:
		cell = tview.NewTableCell(task.Urgency.Title()).SetTextColor(urgencyColor(task.Urgency)).SetExpansion(1)
	case 2:
		cell = tview.NewTableCell(optionalDate(task.DueDate)).SetExpansion(1)
	case 3:
		cell = tview.NewTableCell(task.Owner).SetExpansion(1)
	case 4:
		cell = tview.NewTableCell(optionalDate(task.FollowUpDate)).SetExpansion(1)
	}

	// completed today: still listed, but crossed out
	if classify.CompletedOn(task, snapshot.Today) {
		cell.SetAttributes(tcell.AttrStrikeThrough | tcell.AttrDim)
	}

	return cell
}

// GetRowCount returns the number of rows in the table.
func (v *ViewContent) GetRowCount() int {
	return len(v.snapshot().Get(v.view)) + 1
}

// GetColumnCount returns the number of columns in the table.
func (v *ViewContent) GetColumnCount() int {
	return len(taskColumns)
}

func optionalDate(d model.Date) string {
	if !d.IsSet() {
		return ""
	}

	return notify.FormatDate(d)
}

// ContactContent implements tview.TableContent for the contact list.
type ContactContent struct {
	tview.TableContentReadOnly
	contacts func() []model.Contact
}

// GetCell returns the cell at the given position or nil if no cell.
func (c *ContactContent) GetCell(row, col int) *tview.TableCell {
	if row == 0 {
		switch col {
		case 0:
			return tview.NewTableCell("name").SetExpansion(1).SetTextColor(tcell.ColorYellow).SetSelectable(false)
		case 1:
			return tview.NewTableCell("email").SetExpansion(1).SetTextColor(tcell.ColorYellow).SetSelectable(false)
		}

		return nil
	}

	contacts := c.contacts()
	if row-1 >= len(contacts) {
		return nil
	}

	switch col {
	case 0:
		return tview.NewTableCell(contacts[row-1].Name).SetExpansion(1).SetReference(contacts[row-1].ID)
	case 1:
		return tview.NewTableCell(contacts[row-1].Email).SetExpansion(1)
	}

	return nil
}

// GetRowCount returns the number of rows in the table.
func (c *ContactContent) GetRowCount() int {
	return len(c.contacts()) + 1
}

// GetColumnCount returns the number of columns in the table.
func (c *ContactContent) GetColumnCount() int {
	return 2
}
