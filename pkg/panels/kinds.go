package panels

import (
	"github.com/ethpandaops/dashpatch/pkg/dashboard"
)

// Default units.
const (
	UnitShort   = "short"
	UnitReqPS   = "reqps"
	UnitSeconds = "s"
	UnitPercent = "percent"
)

// Stat color modes.
const (
	ColorModeValue      = "value"
	ColorModeBackground = "background"
)

// SeriesColor pins a named series to a fixed color. Dashed series are drawn
// as an unfilled dashed line.
type SeriesColor struct {
	Name   string
	Color  string
	Dashed bool
}

// TimeSeriesOptions configures a time-series graph.
type TimeSeriesOptions struct {
	Title       string
	Description string
	Unit        string
	Queries     []Query

	// Optional styling. Zero values select the house defaults.
	AxisLabel   string
	LineWidth   int
	FillOpacity int
	Gradient    bool
	HidePoints  bool
	LegendCalcs []string
	LegendSort  string
	Series      []SeriesColor

	// Versioned stamps the datasource plugin version on the panel.
	Versioned bool
}

// TimeSeries creates a time-series graph with one range target per query.
func TimeSeries(ds Datasource, id int, rect dashboard.GridPos, opts TimeSeriesOptions) dashboard.Panel {
	unit := opts.Unit
	if unit == "" {
		unit = UnitShort
	}

	lineWidth := opts.LineWidth
	if lineWidth == 0 {
		lineWidth = 1
	}

	fill := opts.FillOpacity
	if fill == 0 {
		fill = 10
	}

	gradient := "none"
	if opts.Gradient {
		gradient = "opacity"
	}

	showPoints := "auto"
	if opts.HidePoints {
		showPoints = "never"
	}

	calcs := opts.LegendCalcs
	if len(calcs) == 0 {
		calcs = []string{"last"}
	}

	legend := map[string]any{
		"calcs":       calcs,
		"displayMode": "table",
		"placement":   "bottom",
		"showLegend":  true,
	}

	if opts.LegendSort != "" {
		legend["sortBy"] = opts.LegendSort
		legend["sortDesc"] = true
	}

	panel := dashboard.Panel{
		"datasource":  ds.Name,
		"description": opts.Description,
		"fieldConfig": map[string]any{
			"defaults": map[string]any{
				"color": map[string]any{
					"mode": "palette-classic",
				},
				"custom": map[string]any{
					"axisBorderShow":    false,
					"axisCenteredZero":  false,
					"axisColorMode":     "text",
					"axisLabel":         opts.AxisLabel,
					"axisPlacement":     "auto",
					"barAlignment":      0,
					"drawStyle":         "line",
					"fillOpacity":       fill,
					"gradientMode":      gradient,
					"hideFrom":          hideFrom(),
					"insertNulls":       false,
					"lineInterpolation": "smooth",
					"lineWidth":         lineWidth,
					"pointSize":         5,
					"scaleDistribution": map[string]any{
						"type": "linear",
					},
					"showPoints": showPoints,
					"spanNulls":  false,
					"stacking": map[string]any{
						"group": "A",
						"mode":  "none",
					},
					"thresholdsStyle": map[string]any{
						"mode": "off",
					},
				},
				"mappings":   []any{},
				"thresholds": steps("green", nil, "red", 80),
				"unit":       unit,
			},
			"overrides": seriesOverrides(opts.Series),
		},
		"gridPos": rect.Map(),
		"id":      id,
		"options": map[string]any{
			"legend": legend,
			"tooltip": map[string]any{
				"mode": "multi",
				"sort": "desc",
			},
		},
		"targets": []any{},
		"title":   opts.Title,
		"type":    "timeseries",
	}

	if opts.Versioned {
		panel["pluginVersion"] = ds.PluginVersion
	}

	for _, q := range opts.Queries {
		AddQuery(ds, panel, q)
	}

	return panel
}

func seriesOverrides(series []SeriesColor) []any {
	overrides := make([]any, 0, len(series))

	for _, s := range series {
		props := []any{
			map[string]any{
				"id": "color",
				"value": map[string]any{
					"fixedColor": s.Color,
					"mode":       "fixed",
				},
			},
		}

		if s.Dashed {
			props = append(props,
				map[string]any{
					"id": "custom.lineStyle",
					"value": map[string]any{
						"dash": []int{10, 10},
						"fill": "dash",
					},
				},
				map[string]any{
					"id":    "custom.fillOpacity",
					"value": 0,
				},
			)
		}

		overrides = append(overrides, map[string]any{
			"matcher": map[string]any{
				"id":      "byName",
				"options": s.Name,
			},
			"properties": props,
		})
	}

	return overrides
}

// StatOptions configures a single-value stat panel.
type StatOptions struct {
	Title       string
	Description string
	Unit        string
	Expr        string
	ColorMode   string
}

// Stat creates a single-value stat panel backed by an instant query.
func Stat(ds Datasource, id int, rect dashboard.GridPos, opts StatOptions) dashboard.Panel {
	unit := opts.Unit
	if unit == "" {
		unit = UnitShort
	}

	colorMode := opts.ColorMode
	if colorMode == "" {
		colorMode = ColorModeValue
	}

	return dashboard.Panel{
		"datasource":  ds.Name,
		"description": opts.Description,
		"fieldConfig": map[string]any{
			"defaults": map[string]any{
				"color": map[string]any{
					"mode": "thresholds",
				},
				"mappings":   []any{},
				"thresholds": steps("green", nil, "red", 80),
				"unit":       unit,
			},
			"overrides": []any{},
		},
		"gridPos": rect.Map(),
		"id":      id,
		"options": map[string]any{
			"colorMode":     colorMode,
			"graphMode":     "area",
			"justifyMode":   "auto",
			"orientation":   "auto",
			"reduceOptions": reduceLast(),
			"textMode":      "auto",
		},
		"pluginVersion": ds.PluginVersion,
		"targets":       []any{instantTarget(ds, opts.Expr)},
		"title":         opts.Title,
		"type":          "stat",
	}
}

// GaugeOptions configures a radial gauge. Gauges always render percentages.
type GaugeOptions struct {
	Title       string
	Description string
	Expr        string
	Max         int
}

// Gauge creates a radial gauge with green/yellow/red thresholds at 70 and 90.
func Gauge(ds Datasource, id int, rect dashboard.GridPos, opts GaugeOptions) dashboard.Panel {
	maxValue := opts.Max
	if maxValue == 0 {
		maxValue = 100
	}

	return dashboard.Panel{
		"datasource":  ds.Name,
		"description": opts.Description,
		"fieldConfig": map[string]any{
			"defaults": map[string]any{
				"color": map[string]any{
					"mode": "thresholds",
				},
				"mappings":   []any{},
				"max":        maxValue,
				"min":        0,
				"thresholds": steps("green", nil, "yellow", 70, "red", 90),
				"unit":       UnitPercent,
			},
			"overrides": []any{},
		},
		"gridPos": rect.Map(),
		"id":      id,
		"options": map[string]any{
			"minVizHeight":         75,
			"minVizWidth":          75,
			"orientation":          "auto",
			"reduceOptions":        reduceLast(),
			"showThresholdLabels":  false,
			"showThresholdMarkers": true,
		},
		"pluginVersion": ds.PluginVersion,
		"targets":       []any{instantTarget(ds, opts.Expr)},
		"title":         opts.Title,
		"type":          "gauge",
	}
}
