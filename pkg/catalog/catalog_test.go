package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ethpandaops/dashpatch/pkg/dashboard"
	"github.com/ethpandaops/dashpatch/pkg/panels"
)

var testSettings = Settings{
	Datasource:   panels.Datasource{Name: "Prometheus", Type: "prometheus", UID: "Prometheus", PluginVersion: "11.2.0"},
	MetricPrefix: "katana_db",
	RateWindow:   "5m",
	BaseID:       200,
}

func exprs(t *testing.T, p dashboard.Panel) []string {
	t.Helper()

	raw, ok := p["targets"].([]any)
	require.True(t, ok)

	out := make([]string, 0, len(raw))
	for _, item := range raw {
		out = append(out, item.(map[string]any)["expr"].(string))
	}

	return out
}

func TestDatabaseBlockShape(t *testing.T) {
	block := DatabaseBlock(testSettings)

	require.Len(t, block, 23)
	assert.Equal(t, 45, dashboard.BlockHeight(block))

	rows := make([]string, 0, 3)

	for i, p := range block {
		id, ok := p.ID()
		require.True(t, ok)
		assert.Equal(t, 200+i, id, "ids are sequential")

		if p.IsRow() {
			rows = append(rows, p.Title())
		}
	}

	assert.Equal(t, SectionTitles(), rows)

	first, ok := block[0].GridPos()
	require.True(t, ok)
	assert.Equal(t, 0, first.Y, "block is laid out from y=0")

	doc, err := dashboard.Parse([]byte(`{"panels": []}`))
	require.NoError(t, err)

	doc.Panels = block
	assert.Empty(t, doc.Validate(), "block has no overlapping panels")
}

func TestDatabaseBlockQueries(t *testing.T) {
	block := DatabaseBlock(testSettings)

	byTitle := make(map[string]dashboard.Panel, len(block))
	for _, p := range block {
		byTitle[p.Title()] = p
	}

	assert.Equal(t, []string{
		"rate(katana_db_transaction_ro_created[5m])",
		"rate(katana_db_transaction_rw_created[5m])",
	}, exprs(t, byTitle["Transaction Creation Rate"]))

	assert.Len(t, exprs(t, byTitle["Transaction Commit Status"]), 3)
	assert.Len(t, exprs(t, byTitle["Operation Rate by Type"]), 4)

	assert.Equal(t, []string{
		"histogram_quantile(0.99, rate(katana_db_operation_put_time_seconds_bucket[5m]))",
		"histogram_quantile(0.95, rate(katana_db_operation_put_time_seconds_bucket[5m]))",
		"histogram_quantile(0.50, rate(katana_db_operation_put_time_seconds_bucket[5m]))",
	}, exprs(t, byTitle["Put Operation Time (p99)"]))

	gauge := byTitle["Get Cache Hit Rate"]
	assert.Equal(t, "gauge", gauge.Type())
	assert.True(t, strings.HasPrefix(exprs(t, gauge)[0], "100 * rate(katana_db_operation_get_hits[5m])"))

	assert.Equal(t, []string{"katana_db_transaction_commits_failed + katana_db_transaction_aborts"},
		exprs(t, byTitle["Failed/Aborted"]))
}

func TestDatabaseBlockCustomSettings(t *testing.T) {
	s := testSettings
	s.MetricPrefix = "node_db"
	s.RateWindow = "1m"
	s.BaseID = 1000

	block := DatabaseBlock(s)

	id, _ := block[0].ID()
	assert.Equal(t, 1000, id)

	for _, p := range block {
		if p.IsRow() {
			continue
		}

		for _, expr := range exprs(t, p) {
			assert.NotContains(t, expr, "katana_db")
			assert.Contains(t, expr, "node_db_")
		}
	}

	assert.Contains(t, exprs(t, block[1])[0], "[1m]")
}

func TestTransactionCreationPanel(t *testing.T) {
	rect := dashboard.GridPos{X: 0, Y: 5, W: 24, H: 8}
	p := TransactionCreationPanel(testSettings, 300, rect)

	id, ok := p.ID()
	require.True(t, ok)
	assert.Equal(t, 300, id)
	assert.Equal(t, "Transaction Creation", p.Title())

	g, ok := p.GridPos()
	require.True(t, ok)
	assert.Equal(t, rect, g)

	assert.Equal(t, []string{
		"increase(katana_db_transaction_ro_created[$__rate_interval])",
		"increase(katana_db_transaction_rw_created[$__rate_interval])",
		"increase(katana_db_transaction_ro_created[$__rate_interval]) + increase(katana_db_transaction_rw_created[$__rate_interval])",
	}, exprs(t, p))

	legend := p["options"].(map[string]any)["legend"].(map[string]any)
	assert.Equal(t, []string{"last", "mean", "max"}, legend["calcs"])
	assert.Equal(t, "Last", legend["sortBy"])
}
