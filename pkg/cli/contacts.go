package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/matt-steen/ball-in-court/pkg/tracker"
	"github.com/spf13/cobra"
)

func newContactCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Manage saved contacts",
	}

	cmd.AddCommand(newContactAddCmd(opts), newContactListCmd(opts), newContactDeleteCmd(opts))

	return cmd
}

func newContactAddCmd(opts *options) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Save a contact",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd, opts)
			if err != nil {
				return err
			}
			defer a.Close()

			contact, err := a.tracker.AddContact(cmd.Context(), strings.Join(args, " "), email)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added contact %s %s\n", shortID(contact.ID), contact.Name)

			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email address")

	return cmd
}

func newContactListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved contacts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd, opts)
			if err != nil {
				return err
			}
			defer a.Close()

			printContacts(cmd.OutOrStdout(), a.tracker.Contacts())

			return nil
		},
	}
}

func newContactDeleteCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <contact>",
		Short: "Delete a saved contact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd, opts)
			if err != nil {
				return err
			}
			defer a.Close()

			contact, err := resolveContact(a.tracker, args[0])
			if err != nil {
				return err
			}

			err = tracker.Confirmed(confirmer(cmd, opts), tracker.DeleteContactPrompt, func() error {
				return a.tracker.DeleteContact(cmd.Context(), contact.ID)
			})
			if errors.Is(err, tracker.ErrNotConfirmed) {
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")

				return nil
			}

			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted contact %s\n", contact.Name)

			return nil
		},
	}

	addYesFlag(cmd, opts)

	return cmd
}
