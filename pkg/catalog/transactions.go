package catalog

import (
	"fmt"

	"github.com/ethpandaops/dashpatch/pkg/dashboard"
	"github.com/ethpandaops/dashpatch/pkg/panels"
)

// Series labels of the transaction creation panel.
const (
	LegendReadOnly  = "Read-Only (RO)"
	LegendReadWrite = "Read-Write (RW)"
	LegendTotal     = "Total"
)

// TransactionCreationRect is the rectangle a freshly inserted transaction
// creation panel occupies; y is decided at insertion time.
var TransactionCreationRect = dashboard.GridPos{X: 0, W: 24, H: 8}

// TransactionCreationPanel builds the transaction creation graph: the number
// of read-only and read-write transactions opened per interval plus their
// dashed total.
func TransactionCreationPanel(s Settings, id int, rect dashboard.GridPos) dashboard.Panel {
	ro := fmt.Sprintf("increase(%s[$__rate_interval])", s.metric("transaction_ro_created"))
	rw := fmt.Sprintf("increase(%s[$__rate_interval])", s.metric("transaction_rw_created"))

	return panels.TimeSeries(s.Datasource, id, rect, panels.TimeSeriesOptions{
		Title: "Transaction Creation",
		Description: "Transaction creation over time. Shows when read-only (RO) and read-write (RW) " +
			"transactions are being created (number of new transactions in each time bucket).",
		Unit:        panels.UnitShort,
		AxisLabel:   "Transactions created",
		LineWidth:   2,
		FillOpacity: 15,
		Gradient:    true,
		HidePoints:  true,
		LegendCalcs: []string{"last", "mean", "max"},
		LegendSort:  "Last",
		Versioned:   true,
		Series: []panels.SeriesColor{
			{Name: LegendReadOnly, Color: "blue"},
			{Name: LegendReadWrite, Color: "orange"},
			{Name: LegendTotal, Color: "purple", Dashed: true},
		},
		Queries: []panels.Query{
			{Expr: ro, Legend: LegendReadOnly},
			{Expr: rw, Legend: LegendReadWrite},
			{Expr: ro + " + " + rw, Legend: LegendTotal},
		},
	})
}
