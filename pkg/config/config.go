// Package config loads and validates the dashpatch configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"

	"github.com/ethpandaops/dashpatch/pkg/catalog"
	"github.com/ethpandaops/dashpatch/pkg/constants"
	"github.com/ethpandaops/dashpatch/pkg/panels"
)

// Config represents the dashpatch configuration
type Config struct {
	Dashboard  DashboardConfig  `yaml:"dashboard"`
	Datasource DatasourceConfig `yaml:"datasource"`
	Metrics    MetricsConfig    `yaml:"metrics"`
	Panels     PanelsConfig     `yaml:"panels"`
}

// DashboardConfig locates the dashboard file to patch
type DashboardConfig struct {
	Path string `yaml:"path"`
}

// DatasourceConfig describes the query backend referenced by generated panels
type DatasourceConfig struct {
	Name          string `yaml:"name"`
	Type          string `yaml:"type"`
	UID           string `yaml:"uid"`
	PluginVersion string `yaml:"plugin_version"`
}

// MetricsConfig controls metric names and query windows
type MetricsConfig struct {
	Prefix     string `yaml:"prefix"`
	RateWindow string `yaml:"rate_window"`
}

// PanelsConfig holds anchors and reserved panel IDs
type PanelsConfig struct {
	DatabaseAnchor   string `yaml:"database_anchor"`
	DatabaseBaseID   int    `yaml:"database_base_id"`
	TxCreationAnchor string `yaml:"tx_creation_anchor"`
	TxCreationID     int    `yaml:"tx_creation_id"`
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Dashboard: DashboardConfig{
			Path: constants.DefaultDashboardPath,
		},
		Datasource: DatasourceConfig{
			Name:          constants.DefaultDatasourceName,
			Type:          constants.DefaultDatasourceType,
			UID:           constants.DefaultDatasourceUID,
			PluginVersion: constants.DefaultPluginVersion,
		},
		Metrics: MetricsConfig{
			Prefix:     constants.DefaultMetricPrefix,
			RateWindow: constants.DefaultRateWindow,
		},
		Panels: PanelsConfig{
			DatabaseAnchor:   constants.AnchorDatabase,
			DatabaseBaseID:   constants.DatabaseBaseID,
			TxCreationAnchor: catalog.SectionTransactions,
			TxCreationID:     constants.TxCreationPanelID,
		},
	}
}

// Load reads and parses a config file. A missing file yields the defaults;
// fields left out of the file are filled from the defaults.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := mergo.Merge(&cfg, *Default()); err != nil {
		return nil, fmt.Errorf("failed to apply config defaults: %w", err)
	}

	return &cfg, nil
}

// Save writes the configuration to a file
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	//nolint:gosec // Config file permissions are intentionally 0644 for readability
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Dashboard.Path == "" {
		return fmt.Errorf("dashboard.path must be set")
	}

	if c.Datasource.UID == "" {
		return fmt.Errorf("datasource.uid must be set")
	}

	if c.Metrics.Prefix == "" {
		return fmt.Errorf("metrics.prefix must be set")
	}

	if c.Metrics.RateWindow == "" {
		return fmt.Errorf("metrics.rate_window must be set")
	}

	if c.Panels.DatabaseAnchor == "" || c.Panels.TxCreationAnchor == "" {
		return fmt.Errorf("panel anchors must be set")
	}

	if c.Panels.DatabaseBaseID <= 0 || c.Panels.TxCreationID <= 0 {
		return fmt.Errorf("panel ids must be positive")
	}

	// The reserved singleton ID must not fall inside the database block.
	blockSize := len(catalog.DatabaseBlock(c.Settings()))
	first, last := c.Panels.DatabaseBaseID, c.Panels.DatabaseBaseID+blockSize-1

	if id := c.Panels.TxCreationID; id >= first && id <= last {
		return fmt.Errorf("panels.tx_creation_id %d collides with database block ids %d-%d", id, first, last)
	}

	return nil
}

// Settings converts the configuration into catalog generation settings
func (c *Config) Settings() catalog.Settings {
	return catalog.Settings{
		Datasource: panels.Datasource{
			Name:          c.Datasource.Name,
			Type:          c.Datasource.Type,
			UID:           c.Datasource.UID,
			PluginVersion: c.Datasource.PluginVersion,
		},
		MetricPrefix: c.Metrics.Prefix,
		RateWindow:   c.Metrics.RateWindow,
		BaseID:       c.Panels.DatabaseBaseID,
	}
}
