package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ethpandaops/dashpatch/pkg/catalog/skeleton"
	"github.com/ethpandaops/dashpatch/pkg/ui"
)

// NewScaffoldCommand creates the scaffold command.
func NewScaffoldCommand(log logrus.FieldLogger, opts *GlobalOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "scaffold",
		Short: "Write a starter dashboard containing the Database row",
		Long: `Write the built-in overview dashboard to the configured path. The starter
dashboard carries the "Database" row that db-panels anchors on.

An existing dashboard is never replaced unless --force is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			path := cfg.Dashboard.Path

			if _, statErr := os.Stat(path); statErr == nil {
				if !force {
					return fmt.Errorf("%s already exists (use --force to overwrite)", path)
				}

				ui.Warning(fmt.Sprintf("Overwriting existing dashboard %s", path))
			}

			if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
				return fmt.Errorf("failed to create dashboard directory: %w", err)
			}

			//nolint:gosec // Dashboard files are intentionally 0644 for provisioning
			if err := os.WriteFile(path, skeleton.Overview, 0644); err != nil {
				return fmt.Errorf("failed to write dashboard: %w", err)
			}

			log.WithField("path", path).Debug("wrote starter dashboard")
			ui.Success(fmt.Sprintf("Wrote starter dashboard to %s", path))

			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing dashboard")

	return cmd
}
