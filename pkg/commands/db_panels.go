package commands

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ethpandaops/dashpatch/pkg/patcher"
	"github.com/ethpandaops/dashpatch/pkg/ui"
)

// NewDBPanelsCommand creates the db-panels command.
func NewDBPanelsCommand(log logrus.FieldLogger, opts *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "db-panels",
		Short: "Add the database monitoring sections to the dashboard",
		Long: `Insert the Database Transactions, Database Operations and Database Performance
sections at the end of the section headed by the "Database" row.

Every panel below the insertion point is moved down by the exact height of
the inserted block, so the grid stays free of overlaps.

Exit codes:
  0 - Panels inserted
  1 - Anchor row missing, panel ids already in use, or the file could not be read or written

Example:
  dashpatch db-panels --dry-run`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			report, err := patcher.New(log, cfg).AddDatabasePanels(opts.patchOptions())
			if err != nil {
				return err
			}

			ui.DisplayPatchReport(os.Stdout, report)

			return nil
		},
	}
}
