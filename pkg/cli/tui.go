package cli

import (
	"github.com/matt-steen/ball-in-court/pkg/controller"
	"github.com/spf13/cobra"
)

func newTUICmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive view",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, opts)
		},
	}
}

func runTUI(cmd *cobra.Command, opts *options) error {
	a, err := openApp(cmd, opts)
	if err != nil {
		return err
	}
	defer a.Close()

	c, err := controller.NewController(cmd.Context(), a.tracker, a.dispatcher, a.limits())
	if err != nil {
		return err
	}

	return c.Go()
}
