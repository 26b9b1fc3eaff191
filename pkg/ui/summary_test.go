package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/acarl005/stripansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ethpandaops/dashpatch/pkg/dashboard"
	"github.com/ethpandaops/dashpatch/pkg/patcher"
)

func plain(buf *bytes.Buffer) string {
	return stripansi.Strip(buf.String())
}

func TestDisplayPatchReport(t *testing.T) {
	tests := []struct {
		name     string
		report   *patcher.Report
		contains []string
		excludes []string
	}{
		{
			name: "inserted block",
			report: &patcher.Report{
				Path:        "overview.json",
				Outcome:     dashboard.Inserted,
				Groups:      []patcher.Group{{Title: "Database Transactions", Panels: 6}},
				PanelsAdded: 23,
				Y:           10,
				Shift:       45,
			},
			contains: []string{
				"Dashboard Patch",
				"Database Transactions",
				"6 panels",
				"Inserted 23 panels at y=10, moved panels below down by 45",
				"Wrote overview.json",
			},
			excludes: []string{"dry run", "was not modified"},
		},
		{
			name: "updated singleton",
			report: &patcher.Report{
				Path:          "overview.json",
				Outcome:       dashboard.Updated,
				Groups:        []patcher.Group{{Title: "Transaction Creation", Panels: 1}},
				PanelsUpdated: 1,
				Y:             5,
			},
			contains: []string{"1 panel ", "Updated 1 panel in place at y=5"},
			excludes: []string{"Inserted"},
		},
		{
			name: "dry run with diff",
			report: &patcher.Report{
				Path:        "overview.json",
				DryRun:      true,
				Outcome:     dashboard.Inserted,
				PanelsAdded: 1,
				Y:           11,
				Shift:       8,
				Diff:        " a\n-b\n+c\n",
			},
			contains: []string{"(dry run)", "overview.json was not modified", "-b", "+c"},
			excludes: []string{"Wrote"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			DisplayPatchReport(&buf, tt.report)
			out := plain(&buf)

			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}

			for _, s := range tt.excludes {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestDisplayPatchReportBoxAlignment(t *testing.T) {
	var buf bytes.Buffer

	DisplayPatchReport(&buf, &patcher.Report{
		Path:    "overview.json",
		DryRun:  true,
		Outcome: dashboard.Inserted,
		Groups: []patcher.Group{
			{Title: "Database Transactions", Panels: 6},
			{Title: "", Panels: 2},
		},
	})

	lines := strings.Split(plain(&buf), "\n")
	require.GreaterOrEqual(t, len(lines), 6)

	// Box borders and content lines share one width once colors are stripped.
	for _, line := range lines[:6] {
		assert.Equal(t, defaultBoxWidth, visibleLen(line), "line %q", line)
	}

	assert.Contains(t, lines[4], "(untitled)")
}

func TestDisplayPatchReportNil(t *testing.T) {
	var buf bytes.Buffer

	DisplayPatchReport(&buf, nil)
	assert.Empty(t, buf.String())
}

func TestDisplayIssues(t *testing.T) {
	t.Run("clean", func(t *testing.T) {
		var buf bytes.Buffer

		DisplayIssues(&buf, "overview.json", []dashboard.Issue{})
		assert.Contains(t, plain(&buf), "overview.json: panel ids unique, no overlapping panels")
	})

	t.Run("issues", func(t *testing.T) {
		var buf bytes.Buffer

		DisplayIssues(&buf, "overview.json", []dashboard.Issue{
			{Kind: dashboard.IssueDuplicateID, IDs: []int{4}, Message: "panel id 4 used 2 times"},
			{Kind: dashboard.IssueOverlap, IDs: []int{4, 5}, Message: "panels 4 and 5 overlap"},
		})

		out := plain(&buf)
		assert.Contains(t, out, "overview.json: 2 issues found")
		assert.Contains(t, out, "[duplicate-id] panel id 4 used 2 times")
		assert.Contains(t, out, "[overlap] panels 4 and 5 overlap")
	})
}

func TestPanelRows(t *testing.T) {
	rows := PanelRows([]dashboard.Panel{
		{"type": "row", "id": 1, "title": "Database", "gridPos": map[string]any{"x": 0, "y": 5, "w": 24, "h": 1}},
		{"type": "text", "title": "Notes"},
	})

	require.Len(t, rows, 2)
	assert.Equal(t, "1", rows[0][0])
	assert.Equal(t, "row", rows[0][1])
	assert.Equal(t, "Database", stripansi.Strip(rows[0][2]))
	assert.Equal(t, "x=0 y=5 w=24 h=1", rows[0][3])
	assert.Equal(t, []string{"-", "text", "Notes", "-"}, rows[1])
}

func TestConditionalWriter(t *testing.T) {
	var buf bytes.Buffer

	w := NewConditionalWriter(&buf, false)

	n, err := w.Write([]byte("hidden"))
	require.NoError(t, err)
	assert.Equal(t, 6, n)
	assert.Empty(t, buf.String())

	w.SetEnabled(true)

	_, err = w.Write([]byte("shown"))
	require.NoError(t, err)
	assert.Equal(t, "shown", buf.String())
}
