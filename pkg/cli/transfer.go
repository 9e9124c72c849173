package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/matt-steen/ball-in-court/pkg/tracker"
	"github.com/spf13/cobra"
)

func newExportCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "export [file]",
		Short: "Export tasks and contacts to a JSON file (- for stdout)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd, opts)
			if err != nil {
				return err
			}
			defer a.Close()

			data, err := a.tracker.Export()
			if err != nil {
				return err
			}

			path := tracker.ExportFilename(a.tracker.Now())
			if len(args) == 1 {
				path = args[0]
			}

			if path == "-" {
				_, err = cmd.OutOrStdout().Write(append(data, '\n'))

				return err
			}

			if err := os.WriteFile(path, data, 0o644); err != nil {
				return fmt.Errorf("error writing export: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", path)

			return nil
		},
	}
}

func newImportCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace tasks (and contacts, if present) from an export file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("error reading import: %w", err)
			}

			a, err := openApp(cmd, opts)
			if err != nil {
				return err
			}
			defer a.Close()

			err = tracker.Confirmed(confirmer(cmd, opts), tracker.ImportPrompt, func() error {
				return a.tracker.Import(cmd.Context(), data)
			})
			if errors.Is(err, tracker.ErrNotConfirmed) {
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")

				return nil
			}

			if errors.Is(err, tracker.ErrInvalidImport) {
				return fmt.Errorf("%s is not a valid Ball-in-Court export: %w", args[0], err)
			}

			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d tasks\n", len(a.tracker.Tasks()))

			return nil
		},
	}

	addYesFlag(cmd, opts)

	return cmd
}
