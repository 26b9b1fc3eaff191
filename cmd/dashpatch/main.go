package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ethpandaops/dashpatch/pkg/commands"
	"github.com/ethpandaops/dashpatch/pkg/constants"
	"github.com/ethpandaops/dashpatch/pkg/ui"
	"github.com/ethpandaops/dashpatch/pkg/version"
)

// Build-time variables set via ldflags.
var (
	buildVersion = "dev"
	buildCommit  = "none"
	buildDate    = "unknown"
)

func init() {
	// Set package-level version variables from build flags
	version.Version = buildVersion
	version.Commit = buildCommit
	version.Date = buildDate
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Logs are hidden by default and only shown when --verbose is enabled
	logWriter := ui.NewConditionalWriter(os.Stderr, false)
	log := logrus.New()
	log.SetOutput(logWriter)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	rootCmd := &cobra.Command{
		Use:           "dashpatch",
		Short:         "Insert generated panels into a saved Grafana dashboard",
		Long:          `dashpatch adds the Katana database panel groups to a Grafana dashboard JSON file.`,
		Version:       version.GetFullVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	var (
		opts     commands.GlobalOptions
		logLevel string
		verbose  bool
	)

	rootCmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", constants.DefaultConfigFile, "Path to config file")
	rootCmd.PersistentFlags().StringVarP(&opts.DashboardPath, "dashboard", "d", "", "Dashboard file to patch (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&opts.DryRun, "dry-run", false, "Show the change without writing the dashboard")
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output (show all logs)")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			return fmt.Errorf("invalid log level: %w", err)
		}

		log.SetLevel(level)
		logWriter.SetEnabled(verbose)

		return nil
	}

	rootCmd.AddCommand(commands.NewDBPanelsCommand(log, &opts))
	rootCmd.AddCommand(commands.NewTxPanelCommand(log, &opts))
	rootCmd.AddCommand(commands.NewCheckCommand(log, &opts))
	rootCmd.AddCommand(commands.NewInspectCommand(log, &opts))
	rootCmd.AddCommand(commands.NewScaffoldCommand(log, &opts))
	rootCmd.AddCommand(commands.NewConfigCommand(log, &opts))

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.WithError(err).Error("Command failed")
		ui.Error(err.Error())
		os.Exit(1)
	}
}
