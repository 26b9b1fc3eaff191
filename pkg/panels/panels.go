// Package panels builds Grafana panel records. Each constructor is pure and
// returns a complete record ready to be placed in a dashboard, so every
// generated panel shares the same thresholds, coloring and legend behavior.
package panels

import (
	"github.com/ethpandaops/dashpatch/pkg/dashboard"
)

// Datasource identifies the query backend every generated panel reads from.
type Datasource struct {
	// Name is the legacy panel-level datasource string.
	Name string
	// Type is the datasource plugin type, e.g. "prometheus".
	Type string
	// UID is the datasource UID referenced by query targets.
	UID string
	// PluginVersion is stamped on stat, gauge and singleton panels.
	PluginVersion string
}

// Query is one series expression with its legend label.
type Query struct {
	Expr   string
	Legend string
}

// ref returns the target-level datasource reference.
func (ds Datasource) ref() map[string]any {
	return map[string]any{
		"type": ds.Type,
		"uid":  ds.UID,
	}
}

// Row creates a section divider at the given y.
func Row(id int, title string, y int) dashboard.Panel {
	return dashboard.Panel{
		"collapsed": false,
		"gridPos":   dashboard.GridPos{X: 0, Y: y, W: 24, H: 1}.Map(),
		"id":        id,
		"panels":    []any{},
		"title":     title,
		"type":      dashboard.TypeRow,
	}
}

// rangeTarget builds a range query target for time-series panels.
func rangeTarget(ds Datasource, q Query, refID string) map[string]any {
	return map[string]any{
		"datasource":   ds.ref(),
		"editorMode":   "code",
		"expr":         q.Expr,
		"instant":      false,
		"legendFormat": q.Legend,
		"range":        true,
		"refId":        refID,
	}
}

// instantTarget builds an instant query target for stat and gauge panels.
func instantTarget(ds Datasource, expr string) map[string]any {
	return map[string]any{
		"datasource":   ds.ref(),
		"editorMode":   "code",
		"expr":         expr,
		"instant":      true,
		"legendFormat": "__auto",
		"range":        false,
		"refId":        RefID(0),
	}
}

// AddQuery appends a range query to panel under the first request ID its
// targets do not already use.
func AddQuery(ds Datasource, panel dashboard.Panel, q Query) {
	targets, _ := panel["targets"].([]any)
	panel["targets"] = append(targets, rangeTarget(ds, q, nextRefID(targets)))
}

func nextRefID(targets []any) string {
	used := make(map[string]struct{}, len(targets))

	for _, t := range targets {
		if m, ok := t.(map[string]any); ok {
			if id, ok := m["refId"].(string); ok {
				used[id] = struct{}{}
			}
		}
	}

	for n := 0; ; n++ {
		if _, taken := used[RefID(n)]; !taken {
			return RefID(n)
		}
	}
}

// RefID converts a zero-based target index into Grafana's request ID letters:
// A..Z, then AA, AB, and so on.
func RefID(n int) string {
	if n < 0 {
		return ""
	}

	var buf []byte

	for n >= 0 {
		buf = append([]byte{byte('A' + n%26)}, buf...)
		n = n/26 - 1
	}

	return string(buf)
}

func hideFrom() map[string]any {
	return map[string]any{
		"legend":  false,
		"tooltip": false,
		"viz":     false,
	}
}

func steps(pairs ...any) map[string]any {
	list := make([]any, 0, len(pairs)/2)

	for i := 0; i+1 < len(pairs); i += 2 {
		list = append(list, map[string]any{"color": pairs[i], "value": pairs[i+1]})
	}

	return map[string]any{
		"mode":  "absolute",
		"steps": list,
	}
}

func reduceLast() map[string]any {
	return map[string]any{
		"calcs":  []string{"lastNotNull"},
		"fields": "",
		"values": false,
	}
}
