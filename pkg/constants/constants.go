// Package constants defines shared defaults for dashboard locations,
// anchors and reserved panel IDs across dashpatch.
package constants

// Files.
const (
	DefaultConfigFile    = ".dashpatch.yaml"
	DefaultDashboardPath = "grafana/dashboards/overview.json"
)

// Datasource defaults.
const (
	DefaultDatasourceName = "Prometheus"
	DefaultDatasourceType = "prometheus"
	DefaultDatasourceUID  = "Prometheus"
	DefaultPluginVersion  = "11.2.0"
)

// Metric defaults.
const (
	DefaultMetricPrefix = "katana_db"
	DefaultRateWindow   = "5m"
)

// Anchors and reserved panel IDs.
const (
	AnchorDatabase    = "Database"
	DatabaseBaseID    = 200
	TxCreationPanelID = 300
)
