package commands

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ethpandaops/dashpatch/pkg/patcher"
	"github.com/ethpandaops/dashpatch/pkg/ui"
)

// NewTxPanelCommand creates the tx-panel command.
func NewTxPanelCommand(log logrus.FieldLogger, opts *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tx-panel",
		Short: "Add or refresh the transaction creation panel",
		Long: `Place the Transaction Creation graph directly below the "Database Transactions" row.

If a panel with the reserved id (300 by default) already exists it is rebuilt
in place at its current position, so running the command again never adds a
second copy or moves anything.

Example:
  dashpatch tx-panel`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			report, err := patcher.New(log, cfg).AddTransactionCreationPanel(opts.patchOptions())
			if err != nil {
				return err
			}

			ui.DisplayPatchReport(os.Stdout, report)

			return nil
		},
	}
}
