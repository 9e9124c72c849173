package cli

import (
	"fmt"
	"os"

	"github.com/matt-steen/ball-in-court/pkg/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newConfigCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or create the configuration file",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "init",
			Short: "Write the default configuration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				path := configPath(opts)

				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("config already exists at %s", path)
				}

				if err := config.WriteDefault(path); err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)

				return nil
			},
		},
		&cobra.Command{
			Use:   "show",
			Short: "Print the effective configuration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, err := config.Load(configPath(opts))
				if err != nil {
					return err
				}

				data, err := yaml.Marshal(cfg)
				if err != nil {
					return err
				}

				_, err = cmd.OutOrStdout().Write(data)

				return err
			},
		},
	)

	return cmd
}

func configPath(opts *options) string {
	if opts.configPath != "" {
		return opts.configPath
	}

	return defaultConfigPath()
}
