package commands

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ethpandaops/dashpatch/pkg/patcher"
	"github.com/ethpandaops/dashpatch/pkg/ui"
)

// NewInspectCommand creates the inspect command.
func NewInspectCommand(log logrus.FieldLogger, opts *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "List dashboard panels with their grid positions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			doc, err := patcher.New(log, cfg).Inspect(opts.patchOptions())
			if err != nil {
				return err
			}

			title := doc.Title()
			if title == "" {
				title = cfg.Dashboard.Path
			}

			ui.Header(fmt.Sprintf("%s (%d panels)", title, len(doc.Panels)))
			ui.Info(fmt.Sprintf("Read from %s", cfg.Dashboard.Path))
			ui.PanelTable(doc.Panels)

			return nil
		},
	}
}
