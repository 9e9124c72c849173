package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/matt-steen/ball-in-court/pkg/classify"
	"github.com/matt-steen/ball-in-court/pkg/model"
	"github.com/matt-steen/ball-in-court/pkg/notify"
	"github.com/matt-steen/ball-in-court/pkg/tracker"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newAddCmd(opts *options) *cobra.Command {
	var due, urgency, owner string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd, opts)
			if err != nil {
				return err
			}
			defer a.Close()

			dueDate, err := parseDateArg(due, a.tracker.Now())
			if err != nil {
				return err
			}

			u, err := parseUrgencyArg(urgency)
			if err != nil {
				return err
			}

			task, err := a.tracker.AddTask(cmd.Context(), tracker.NewTask{
				Title:   strings.Join(args, " "),
				DueDate: dueDate,
				Urgency: u,
				Owner:   owner,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added %s %s\n", shortID(task.ID), task.Title)

			return nil
		},
	}

	cmd.Flags().StringVar(&due, "due", "", "due date (YYYY-MM-DD, today, tomorrow, +N)")
	cmd.Flags().StringVarP(&urgency, "urgency", "u", string(model.UrgencyMedium), "low, medium or high")
	cmd.Flags().StringVar(&owner, "owner", model.Me, "who the ball is with")

	return cmd
}

func newCompleteCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "complete <task>",
		Short: "Mark a task complete",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd, opts)
			if err != nil {
				return err
			}
			defer a.Close()

			task, err := resolveTask(a.tracker, args[0])
			if err != nil {
				return err
			}

			if err := a.tracker.CompleteTask(cmd.Context(), task.ID); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Completed %s\n", task.Title)

			return nil
		},
	}
}

func newDeleteCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <task>",
		Short: "Delete a task permanently",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd, opts)
			if err != nil {
				return err
			}
			defer a.Close()

			task, err := resolveTask(a.tracker, args[0])
			if err != nil {
				return err
			}

			err = tracker.Confirmed(confirmer(cmd, opts), tracker.DeleteTaskPrompt, func() error {
				return a.tracker.DeleteTask(cmd.Context(), task.ID)
			})
			if errors.Is(err, tracker.ErrNotConfirmed) {
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")

				return nil
			}

			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", task.Title)

			return nil
		},
	}

	addYesFlag(cmd, opts)

	return cmd
}

func newHandoffCmd(opts *options) *cobra.Command {
	var email, urgency, due, followUp string

	var send bool

	cmd := &cobra.Command{
		Use:   "handoff <task> <owner>",
		Short: "Hand a task off to someone else",
		Long: `Hand a task off to someone else. The owner may be the name of a saved contact, in which
case the contact's email is used unless --email is given. Urgency and due date default to the
task's current values; the follow-up date defaults to two days from today.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd, opts)
			if err != nil {
				return err
			}
			defer a.Close()

			task, err := resolveTask(a.tracker, args[0])
			if err != nil {
				return err
			}

			handoff := tracker.Handoff{
				Owner:   args[1],
				Urgency: task.Urgency,
				DueDate: task.DueDate,
			}

			if contact, ok := a.tracker.FindContact(args[1]); ok {
				handoff = tracker.HandoffTo(contact, task)
			}

			if cmd.Flags().Changed("email") {
				handoff.OwnerEmail = email
			}

			if cmd.Flags().Changed("urgency") {
				if handoff.Urgency, err = parseUrgencyArg(urgency); err != nil {
					return err
				}
			}

			if cmd.Flags().Changed("due") {
				if handoff.DueDate, err = parseDateArg(due, a.tracker.Now()); err != nil {
					return err
				}
			}

			if handoff.FollowUpDate, err = parseDateArg(followUp, a.tracker.Now()); err != nil {
				return err
			}

			if err := a.tracker.HandoffTask(cmd.Context(), task.ID, handoff); err != nil {
				return err
			}

			updated, _ := a.tracker.Task(task.ID)

			fmt.Fprintf(cmd.OutOrStdout(), "Handed off %s to %s, follow up %s\n",
				updated.Title, updated.Owner, notify.FormatDate(updated.FollowUpDate))

			if send && updated.OwnerEmail != "" {
				if err := notify.Send(cmd.Context(), a.dispatcher, updated, updated.OwnerEmail); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "Could not open mail composer: %s\n", err)
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "owner's email address")
	cmd.Flags().StringVarP(&urgency, "urgency", "u", "", "low, medium or high")
	cmd.Flags().StringVar(&due, "due", "", "due date (YYYY-MM-DD, today, tomorrow, +N, none)")
	cmd.Flags().StringVar(&followUp, "follow-up", "", "follow-up date (default +2)")
	cmd.Flags().BoolVar(&send, "notify", false, "open a reminder email to the new owner")

	return cmd
}

func newListCmd(opts *options) *cobra.Command {
	names := []string{}
	for _, v := range classify.Views() {
		names = append(names, string(v))
	}

	return &cobra.Command{
		Use:       "list [view]",
		Short:     "List tasks in a view (" + strings.Join(names, ", ") + ")",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: names,
		RunE: func(cmd *cobra.Command, args []string) error {
			view := classify.ViewAll

			if len(args) == 1 {
				v, err := classify.ParseView(args[0])
				if err != nil {
					return err
				}

				view = v
			}

			a, err := openApp(cmd, opts)
			if err != nil {
				return err
			}
			defer a.Close()

			snapshot := a.tracker.Snapshot(a.limits())

			fmt.Fprintf(cmd.OutOrStdout(), "%s\n\n", view.Title(a.limits()))
			printTasks(cmd.OutOrStdout(), snapshot.Get(view), snapshot.Today)

			return nil
		},
	}
}

func newRemindCmd(opts *options) *cobra.Command {
	var printOnly bool

	cmd := &cobra.Command{
		Use:   "remind <task>",
		Short: "Open a reminder email to a task's owner",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd, opts)
			if err != nil {
				return err
			}
			defer a.Close()

			task, err := resolveTask(a.tracker, args[0])
			if err != nil {
				return err
			}

			if !notify.CanRemind(task) {
				return fmt.Errorf("'%s' is not with anyone who has an email address", task.Title)
			}

			if printOnly {
				fmt.Fprintln(cmd.OutOrStdout(), notify.MailtoURL(task.OwnerEmail, notify.Compose(task)))

				return nil
			}

			if err := notify.Send(cmd.Context(), a.dispatcher, task, task.OwnerEmail); err != nil {
				log.Warn().Err(err).Msg("reminder not sent")

				return err
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&printOnly, "print", false, "print the mailto URL instead of opening it")

	return cmd
}
