package commands

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ethpandaops/dashpatch/pkg/patcher"
	"github.com/ethpandaops/dashpatch/pkg/ui"
)

// NewCheckCommand creates the check command.
func NewCheckCommand(log logrus.FieldLogger, opts *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify panel ids are unique and panels do not overlap",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			issues, err := patcher.New(log, cfg).Check(opts.patchOptions())
			if err != nil {
				return err
			}

			ui.DisplayIssues(os.Stdout, cfg.Dashboard.Path, issues)

			if len(issues) > 0 {
				return fmt.Errorf("dashboard has %d layout issues", len(issues))
			}

			return nil
		},
	}
}
