package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStatusCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show where data is stored and how many tasks are in each view",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd, opts)
			if err != nil {
				return err
			}
			defer a.Close()

			keys, err := a.db.Keys(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			s := a.tracker.Snapshot(a.limits())

			fmt.Fprintf(out, "Data file:   %s\n", a.db.Filename())
			fmt.Fprintf(out, "Saved keys:  %v\n", keys)
			fmt.Fprintf(out, "Contacts:    %d\n", len(a.tracker.Contacts()))
			fmt.Fprintf(out, "Active:      %d\n", len(s.All))
			fmt.Fprintf(out, "Bubble up:   %d\n", len(s.BubbleUp))
			fmt.Fprintf(out, "Stale:       %d\n", len(s.Stale))
			fmt.Fprintf(out, "Completed:   %d\n", len(s.Completed))

			return nil
		},
	}
}
