// Package cli is the command-line front end. With no subcommand it starts the terminal UI.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

type options struct {
	configPath string
	verbose    bool
	yes        bool
}

// NewRootCommand builds the command tree.
func NewRootCommand(version string) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "bic",
		Short: "Ball-in-Court - keep track of whose court each task is in",
		Long: `Ball-in-Court tracks tasks that you own and tasks you have handed off to someone else.

Run without a subcommand to open the interactive view.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, opts)
		},
	}

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "config file (default "+defaultConfigPath()+")")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log at debug level")

	root.AddCommand(
		newAddCmd(opts),
		newCompleteCmd(opts),
		newDeleteCmd(opts),
		newHandoffCmd(opts),
		newListCmd(opts),
		newRemindCmd(opts),
		newContactCmd(opts),
		newExportCmd(opts),
		newImportCmd(opts),
		newConfigCmd(opts),
		newStatusCmd(opts),
		newTUICmd(opts),
	)

	return root
}

// Execute runs the command line.
func Execute(ctx context.Context, version string) error {
	if err := NewRootCommand(version).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)

		return err
	}

	return nil
}

// addYesFlag registers --yes on commands guarded by a confirmation.
func addYesFlag(cmd *cobra.Command, opts *options) {
	cmd.Flags().BoolVarP(&opts.yes, "yes", "y", false, "do not ask for confirmation")
}
