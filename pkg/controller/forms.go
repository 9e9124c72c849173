package controller

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/matt-steen/ball-in-court/pkg/classify"
	"github.com/matt-steen/ball-in-court/pkg/model"
	"github.com/matt-steen/ball-in-court/pkg/notify"
	"github.com/matt-steen/ball-in-court/pkg/tracker"
	"github.com/rivo/tview"
	"github.com/rs/zerolog/log"
)

type formName string

const (
	formTask    formName = "taskForm"
	formHandoff formName = "handoffForm"

	customOwner = "(someone else)"
	fieldWidth  = 40
)

func urgencyOptions() []string {
	return []string{string(model.UrgencyLow), string(model.UrgencyMedium), string(model.UrgencyHigh)}
}

func urgencyIndex(u model.Urgency) int {
	for i, option := range urgencyOptions() {
		if option == string(u) {
			return i
		}
	}

	return 1
}

func (c *Controller) getFormGrid(name formName) *tview.Grid {
	grid := tview.NewGrid().SetRows(3, 0).SetBorders(true)

	header := tview.NewTable().SetBorders(false).SetSelectable(false, false)
	header.SetCell(0, 0, tview.NewTableCell(fmt.Sprintf("[yellow]%s", formTitle(name))))

	row := 1
	for key, event := range c.formEvents {
		header.SetCell(row, 0, tview.NewTableCell(fmt.Sprintf("[orange]<%s>[white] %s", tcell.KeyNames[key], event.Description)))
		row++
	}

	var form *tview.Form

	switch name {
	case formTask:
		c.initTaskForm()
		form = c.taskForm
	case formHandoff:
		c.initHandoffForm()
		form = c.handoffForm
	}

	grid.AddItem(header, 0, 0, 1, 1, 0, 0, false)
	grid.AddItem(form, 1, 0, 1, 1, 0, 0, true)

	return grid
}

func formTitle(name formName) string {
	if name == formHandoff {
		return "Hand Off Task"
	}

	return "New Task"
}

func (c *Controller) switchToForm(name formName, form *tview.Form) {
	form.SetFocus(0)
	c.pages.SwitchToPage(pageName(string(name)))
	c.app.SetInputCapture(c.handleFormKeys)
	c.app.SetFocus(form)
}

func (c *Controller) initTaskForm() {
	c.taskForm = tview.NewForm().
		AddInputField("Title", "", fieldWidth, nil, nil).
		AddInputField("Due Date", "", len(model.DateLayout), nil, nil).
		AddDropDown("Urgency", urgencyOptions(), urgencyIndex(model.UrgencyMedium), nil).
		AddInputField("Owner", model.Me, fieldWidth, nil, nil)

	c.taskForm.AddButton("Save", c.saveTask)
}

func (c *Controller) switchToTaskForm() {
	setInputText(c.taskForm, "Title", "")
	setInputText(c.taskForm, "Due Date", "")
	setDropDown(c.taskForm, "Urgency", urgencyIndex(model.UrgencyMedium))
	setInputText(c.taskForm, "Owner", model.Me)

	c.switchToForm(formTask, c.taskForm)
}

func (c *Controller) saveTask() {
	due, err := parseFormDate(inputText(c.taskForm, "Due Date"))
	if err != nil {
		c.setMessage(fmt.Sprintf("[red]%s", err))

		return
	}

	task, err := c.tracker.AddTask(c.ctx, tracker.NewTask{
		Title:   inputText(c.taskForm, "Title"),
		DueDate: due,
		Urgency: model.Urgency(dropDownText(c.taskForm, "Urgency")),
		Owner:   inputText(c.taskForm, "Owner"),
	})
	if err != nil {
		c.setMessage(fmt.Sprintf("[red]%s", err))

		return
	}

	log.Debug().Str("id", task.ID).Msg("task saved from form")
	c.setMessage(fmt.Sprintf("added '%s'", task.Title))

	// new tasks go to the end of the active list; select it there
	c.showView(c.selectedView)

	if c.selectedView == classify.ViewAll {
		c.viewTables[classify.ViewAll].Select(len(c.snapshot.All), 0)
	}
}

func (c *Controller) initHandoffForm() {
	c.handoffForm = tview.NewForm().
		AddDropDown("Contact", []string{customOwner}, 0, nil).
		AddInputField("Owner", "", fieldWidth, nil, nil).
		AddInputField("Email", "", fieldWidth, nil, nil).
		AddDropDown("Urgency", urgencyOptions(), urgencyIndex(model.UrgencyMedium), nil).
		AddInputField("Due Date", "", len(model.DateLayout), nil, nil).
		AddInputField("Follow Up", "", len(model.DateLayout), nil, nil).
		AddCheckbox("Send Email", false, nil)

	c.handoffForm.AddButton("Hand Off", c.saveHandoff)
}

func (c *Controller) switchToHandoffForm(task model.Task) {
	if task.Status == model.StatusCompleted {
		c.setMessage(fmt.Sprintf("'%s' is already completed", task.Title))

		return
	}

	c.handoffID = task.ID
	contacts := c.tracker.Contacts()

	options := []string{customOwner}
	for _, contact := range contacts {
		options = append(options, contact.Name)
	}

	if dropDown, ok := c.handoffForm.GetFormItemByLabel("Contact").(*tview.DropDown); ok {
		dropDown.SetOptions(options, func(_ string, index int) {
			// choosing a contact copies its name and email into the form
			if index > 0 && index <= len(contacts) {
				setInputText(c.handoffForm, "Owner", contacts[index-1].Name)
				setInputText(c.handoffForm, "Email", contacts[index-1].Email)
			}
		})
		dropDown.SetCurrentOption(0)
	}

	today := model.DateOf(c.tracker.Now())

	setInputText(c.handoffForm, "Owner", "")
	setInputText(c.handoffForm, "Email", "")
	setDropDown(c.handoffForm, "Urgency", urgencyIndex(task.Urgency))
	setInputText(c.handoffForm, "Due Date", task.DueDate.String())
	setInputText(c.handoffForm, "Follow Up", today.AddDays(tracker.FollowUpDays).String())

	if checkbox, ok := c.handoffForm.GetFormItemByLabel("Send Email").(*tview.Checkbox); ok {
		checkbox.SetChecked(false)
	}

	c.switchToForm(formHandoff, c.handoffForm)
}

func (c *Controller) saveHandoff() {
	due, err := parseFormDate(inputText(c.handoffForm, "Due Date"))
	if err != nil {
		c.setMessage(fmt.Sprintf("[red]%s", err))

		return
	}

	followUp, err := parseFormDate(inputText(c.handoffForm, "Follow Up"))
	if err != nil {
		c.setMessage(fmt.Sprintf("[red]%s", err))

		return
	}

	handoff := tracker.Handoff{
		Owner:        inputText(c.handoffForm, "Owner"),
		OwnerEmail:   inputText(c.handoffForm, "Email"),
		Urgency:      model.Urgency(dropDownText(c.handoffForm, "Urgency")),
		DueDate:      due,
		FollowUpDate: followUp,
	}

	if err := c.tracker.HandoffTask(c.ctx, c.handoffID, handoff); err != nil {
		c.setMessage(fmt.Sprintf("[red]%s", err))

		return
	}

	task, _ := c.tracker.Task(c.handoffID)
	c.setMessage(fmt.Sprintf("handed '%s' to %s", task.Title, task.Owner))

	checkbox, ok := c.handoffForm.GetFormItemByLabel("Send Email").(*tview.Checkbox)
	if ok && checkbox.IsChecked() && task.OwnerEmail != "" {
		if err := notify.Send(c.ctx, c.dispatcher, task, task.OwnerEmail); err != nil {
			c.setMessage(fmt.Sprintf("[red]could not open mail composer: %s", err))
		}
	}

	c.showView(c.selectedView)
}

func parseFormDate(text string) (model.Date, error) {
	if text == "" {
		return model.Date{}, nil
	}

	d, ok := model.ParseDate(text)
	if !ok {
		return model.Date{}, fmt.Errorf("invalid date '%s', want YYYY-MM-DD", text)
	}

	return d, nil
}

func inputText(form *tview.Form, label string) string {
	if field, ok := form.GetFormItemByLabel(label).(*tview.InputField); ok {
		return field.GetText()
	}

	return ""
}

func setInputText(form *tview.Form, label, text string) {
	if field, ok := form.GetFormItemByLabel(label).(*tview.InputField); ok {
		field.SetText(text)
	}
}

func dropDownText(form *tview.Form, label string) string {
	if dropDown, ok := form.GetFormItemByLabel(label).(*tview.DropDown); ok {
		_, text := dropDown.GetCurrentOption()

		return text
	}

	return ""
}

func setDropDown(form *tview.Form, label string, index int) {
	if dropDown, ok := form.GetFormItemByLabel(label).(*tview.DropDown); ok {
		dropDown.SetCurrentOption(index)
	}
}
