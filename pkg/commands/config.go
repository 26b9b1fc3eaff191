package commands

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ethpandaops/dashpatch/pkg/config"
	"github.com/ethpandaops/dashpatch/pkg/ui"
)

// NewConfigCommand creates the config command
func NewConfigCommand(log logrus.FieldLogger, opts *GlobalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long:  `View, validate and create the dashpatch configuration file.`,
	}

	// config show subcommand
	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			data, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("failed to marshal config: %w", err)
			}

			fmt.Print(string(data))

			return nil
		},
	})

	// config validate subcommand
	cmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Validate configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			ui.Success("Configuration is valid")
			fmt.Printf("\nDashboard: %s\n", cfg.Dashboard.Path)
			fmt.Printf("Datasource: %s (%s)\n", cfg.Datasource.UID, cfg.Datasource.Type)
			fmt.Printf("Metric prefix: %s\n", cfg.Metrics.Prefix)

			return nil
		},
	})

	// config init subcommand
	var force bool

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a configuration file with the default values",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(opts.ConfigPath); err == nil {
				if !force {
					return fmt.Errorf("%s already exists (use --force to overwrite)", opts.ConfigPath)
				}

				ui.Warning(fmt.Sprintf("Overwriting existing config %s", opts.ConfigPath))
			}

			if err := config.Default().Save(opts.ConfigPath); err != nil {
				return err
			}

			log.WithField("path", opts.ConfigPath).Debug("wrote default config")
			ui.Success(fmt.Sprintf("Wrote %s", opts.ConfigPath))

			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	cmd.AddCommand(initCmd)

	return cmd
}
