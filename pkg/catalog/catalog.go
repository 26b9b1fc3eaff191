// Package catalog defines the Katana database panel groups that dashpatch
// installs: the three database sections and the transaction creation panel.
package catalog

import (
	"fmt"

	"github.com/ethpandaops/dashpatch/pkg/dashboard"
	"github.com/ethpandaops/dashpatch/pkg/panels"
)

// Section titles created by DatabaseBlock.
const (
	SectionTransactions = "Database Transactions"
	SectionOperations   = "Database Operations"
	SectionPerformance  = "Database Performance"
)

// Settings controls how catalog queries and panels are generated.
type Settings struct {
	Datasource panels.Datasource
	// MetricPrefix is prepended to every metric name, e.g. "katana_db".
	MetricPrefix string
	// RateWindow is the range used by rate() and histogram_quantile().
	RateWindow string
	// BaseID is the first ID handed out to the database block.
	BaseID int
}

func (s Settings) metric(name string) string {
	return s.MetricPrefix + "_" + name
}

func (s Settings) rate(name string) string {
	return fmt.Sprintf("rate(%s[%s])", s.metric(name), s.RateWindow)
}

func (s Settings) quantile(q, name string) string {
	return fmt.Sprintf("histogram_quantile(%s, rate(%s_bucket[%s]))", q, s.metric(name), s.RateWindow)
}

// SectionTitles lists the rows DatabaseBlock creates, top to bottom.
func SectionTitles() []string {
	return []string{SectionTransactions, SectionOperations, SectionPerformance}
}

// DatabaseBlock builds the database monitoring sections. Panels are laid out
// from y=0 and numbered from s.BaseID upward.
func DatabaseBlock(s Settings) []dashboard.Panel {
	l := panels.NewLayout(s.Datasource, s.BaseID)

	addTransactions(l, s)
	addOperations(l, s)
	addPerformance(l, s)

	return l.Panels()
}

func addTransactions(l *panels.Layout, s Settings) {
	l.Row(SectionTransactions)

	l.TimeSeries(dashboard.GridPos{X: 0, W: 12, H: 8}, panels.TimeSeriesOptions{
		Title:       "Transaction Creation Rate",
		Description: "Rate of database transaction creation (read-only vs read-write)",
		Unit:        panels.UnitReqPS,
		Queries: []panels.Query{
			{Expr: s.rate("transaction_ro_created"), Legend: "Read-Only"},
			{Expr: s.rate("transaction_rw_created"), Legend: "Read-Write"},
		},
	})

	l.TimeSeries(dashboard.GridPos{X: 12, W: 12, H: 8}, panels.TimeSeriesOptions{
		Title:       "Transaction Commit Status",
		Description: "Rate of successful vs failed transaction commits",
		Unit:        panels.UnitReqPS,
		Queries: []panels.Query{
			{Expr: s.rate("transaction_commits_successful"), Legend: "Successful"},
			{Expr: s.rate("transaction_commits_failed"), Legend: "Failed"},
			{Expr: s.rate("transaction_aborts"), Legend: "Aborted"},
		},
	})
	l.Advance(8)

	stats := []struct {
		title, expr, desc string
	}{
		{"Total RO Transactions", s.metric("transaction_ro_created"),
			"Total number of read-only transactions created"},
		{"Total RW Transactions", s.metric("transaction_rw_created"),
			"Total number of read-write transactions created"},
		{"Successful Commits", s.metric("transaction_commits_successful"),
			"Total number of successful transaction commits"},
		{"Failed/Aborted", s.metric("transaction_commits_failed") + " + " + s.metric("transaction_aborts"),
			"Total number of failed commits and aborted transactions"},
	}

	for i, st := range stats {
		l.Stat(dashboard.GridPos{X: i * 6, W: 6, H: 4}, panels.StatOptions{
			Title:       st.title,
			Description: st.desc,
			Expr:        st.expr,
		})
	}
	l.Advance(4)
}

func addOperations(l *panels.Layout, s Settings) {
	l.Row(SectionOperations)

	l.TimeSeries(dashboard.GridPos{X: 0, W: 12, H: 8}, panels.TimeSeriesOptions{
		Title:       "Operation Rate by Type",
		Description: "Rate of database operations (get, put, delete, clear)",
		Unit:        panels.UnitReqPS,
		Queries: []panels.Query{
			{Expr: s.rate("operation_puts"), Legend: "Puts"},
			{Expr: s.rate("operation_get_hits") + " + " + s.rate("operation_get_misses"), Legend: "Gets (Total)"},
			{Expr: s.rate("operation_deletes_successful") + " + " + s.rate("operation_deletes_failed"), Legend: "Deletes (Total)"},
			{Expr: s.rate("operation_clears"), Legend: "Clears"},
		},
	})

	l.TimeSeries(dashboard.GridPos{X: 12, W: 12, H: 8}, panels.TimeSeriesOptions{
		Title:       "Delete Success Rate",
		Description: "Delete operation success vs failure rate",
		Unit:        panels.UnitReqPS,
		Queries: []panels.Query{
			{Expr: s.rate("operation_deletes_successful"), Legend: "Successful"},
			{Expr: s.rate("operation_deletes_failed"), Legend: "Failed"},
		},
	})
	l.Advance(8)

	hits, misses := s.rate("operation_get_hits"), s.rate("operation_get_misses")

	l.Gauge(dashboard.GridPos{X: 0, W: 6, H: 6}, panels.GaugeOptions{
		Title:       "Get Cache Hit Rate",
		Description: "Percentage of get operations that found a value (cache hit rate)",
		Expr:        fmt.Sprintf("100 * %s / (%s + %s)", hits, hits, misses),
	})

	stats := []struct {
		rect              dashboard.GridPos
		title, expr, desc string
		colorMode         string
	}{
		{dashboard.GridPos{X: 6, Y: 0, W: 6, H: 3}, "Total Gets",
			s.metric("operation_get_hits") + " + " + s.metric("operation_get_misses"),
			"Total number of get operations", ""},
		{dashboard.GridPos{X: 6, Y: 3, W: 3, H: 3}, "Get Hits", s.metric("operation_get_hits"),
			"Number of successful get operations", panels.ColorModeBackground},
		{dashboard.GridPos{X: 9, Y: 3, W: 3, H: 3}, "Get Misses", s.metric("operation_get_misses"),
			"Number of get operations that didn't find a value", panels.ColorModeBackground},
		{dashboard.GridPos{X: 12, Y: 0, W: 6, H: 3}, "Total Puts", s.metric("operation_puts"),
			"Total number of put operations", ""},
		{dashboard.GridPos{X: 18, Y: 0, W: 6, H: 3}, "Total Deletes",
			s.metric("operation_deletes_successful") + " + " + s.metric("operation_deletes_failed"),
			"Total number of delete operations", ""},
		{dashboard.GridPos{X: 18, Y: 3, W: 3, H: 3}, "Delete Success", s.metric("operation_deletes_successful"),
			"Number of successful delete operations", panels.ColorModeBackground},
		{dashboard.GridPos{X: 21, Y: 3, W: 3, H: 3}, "Delete Failures", s.metric("operation_deletes_failed"),
			"Number of failed delete operations", panels.ColorModeBackground},
	}

	for _, st := range stats {
		l.Stat(st.rect, panels.StatOptions{
			Title:       st.title,
			Description: st.desc,
			Expr:        st.expr,
			ColorMode:   st.colorMode,
		})
	}
	l.Advance(6)
}

func addPerformance(l *panels.Layout, s Settings) {
	l.Row(SectionPerformance)

	latency := []struct {
		title, metric, subject string
	}{
		{"Transaction Commit Time (p99)", "transaction_commit_time_seconds", "transaction commit"},
		{"Get Operation Time (p99)", "operation_get_time_seconds", "get operation"},
		{"Put Operation Time (p99)", "operation_put_time_seconds", "put operation"},
		{"Delete Operation Time (p99)", "operation_delete_time_seconds", "delete operation"},
	}

	for i, lat := range latency {
		l.TimeSeries(dashboard.GridPos{X: (i % 2) * 12, W: 12, H: 8}, panels.TimeSeriesOptions{
			Title:       lat.title,
			Description: "99th percentile " + lat.subject + " time",
			Unit:        panels.UnitSeconds,
			Queries: []panels.Query{
				{Expr: s.quantile("0.99", lat.metric), Legend: "p99"},
				{Expr: s.quantile("0.95", lat.metric), Legend: "p95"},
				{Expr: s.quantile("0.50", lat.metric), Legend: "p50"},
			},
		})

		if i%2 == 1 {
			l.Advance(8)
		}
	}
}
