package ui

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"

	"github.com/ethpandaops/dashpatch/pkg/dashboard"
)

// Table creates and prints a formatted table with headers and rows.
// The headers are displayed in bold at the top of the table.
func Table(headers []string, rows [][]string) {
	data := [][]string{headers}
	data = append(data, rows...)
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// PanelRows converts dashboard panels into table rows of
// ID, type, title and grid position. Row dividers are highlighted.
func PanelRows(panels []dashboard.Panel) [][]string {
	rows := make([][]string, 0, len(panels))

	for _, p := range panels {
		id := "-"
		if v, ok := p.ID(); ok {
			id = strconv.Itoa(v)
		}

		pos := "-"
		if g, ok := p.GridPos(); ok {
			pos = fmt.Sprintf("x=%d y=%d w=%d h=%d", g.X, g.Y, g.W, g.H)
		}

		title := p.Title()
		if p.IsRow() {
			title = pterm.Bold.Sprint(title)
		}

		rows = append(rows, []string{id, p.Type(), title, pos})
	}

	return rows
}

// PanelTable prints the panels of a dashboard in sequence order.
func PanelTable(panels []dashboard.Panel) {
	Table([]string{"ID", "Type", "Title", "Grid"}, PanelRows(panels))
}
