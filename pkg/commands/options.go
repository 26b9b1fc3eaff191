// Package commands implements the dashpatch CLI commands.
package commands

import (
	"fmt"

	"github.com/ethpandaops/dashpatch/pkg/config"
	"github.com/ethpandaops/dashpatch/pkg/patcher"
)

// GlobalOptions holds the persistent flags shared by every command. Commands
// keep a pointer so they see the values cobra parsed.
type GlobalOptions struct {
	ConfigPath    string
	DashboardPath string
	DryRun        bool
}

// loadConfig loads and validates the configuration, applying the
// --dashboard override.
func (o *GlobalOptions) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if o.DashboardPath != "" {
		cfg.Dashboard.Path = o.DashboardPath
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func (o *GlobalOptions) patchOptions() patcher.Options {
	return patcher.Options{DryRun: o.DryRun}
}
