package ui

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/acarl005/stripansi"
	"github.com/pterm/pterm"

	"github.com/ethpandaops/dashpatch/pkg/dashboard"
	"github.com/ethpandaops/dashpatch/pkg/patcher"
)

const (
	// Box drawing characters.
	boxTopLeft     = "┌"
	boxTopRight    = "┐"
	boxBottomLeft  = "└"
	boxBottomRight = "┘"
	boxHorizontal  = "─"
	boxVertical    = "│"
	boxLeftT       = "├"
	boxRightT      = "┤"

	// Status symbols.
	symbolSuccess = "✓"
	symbolFailure = "✗"
	symbolUpdated = "↻"

	// Default box width.
	defaultBoxWidth = 60
)

// DisplayPatchReport shows the panel groups a patch run touched in a formatted box.
// Output format:
// ┌─────────────────────────────────────────────────────────┐
// │  Dashboard Patch                                        │
// ├─────────────────────────────────────────────────────────┤
// │  ✓ Database Transactions        6 panels                │
// │  ✓ Database Operations         10 panels                │
// └─────────────────────────────────────────────────────────┘.
func DisplayPatchReport(w io.Writer, report *patcher.Report) {
	if report == nil {
		return
	}

	header := "Dashboard Patch"
	if report.DryRun {
		header += " " + pterm.Yellow("(dry run)")
	}

	boxTop(w)
	boxLine(w, pterm.Bold.Sprint(header))
	boxSeparator(w)

	symbol := pterm.Green(symbolSuccess)
	if report.Outcome == dashboard.Updated {
		symbol = pterm.Cyan(symbolUpdated)
	}

	for _, g := range report.Groups {
		title := g.Title
		if title == "" {
			title = "(untitled)"
		}

		boxLine(w, fmt.Sprintf("%s %-30s %3d %s", symbol, title, g.Panels, plural(g.Panels, "panel")))
	}

	boxBottom(w)

	switch report.Outcome {
	case dashboard.Updated:
		fmt.Fprintf(w, "\n%s %s\n", pterm.Cyan(symbolUpdated),
			pterm.Cyan(fmt.Sprintf("Updated %d %s in place at y=%d",
				report.PanelsUpdated, plural(report.PanelsUpdated, "panel"), report.Y)))
	default:
		fmt.Fprintf(w, "\n%s %s\n", pterm.Green(symbolSuccess),
			pterm.Green(fmt.Sprintf("Inserted %d %s at y=%d, moved panels below down by %d",
				report.PanelsAdded, plural(report.PanelsAdded, "panel"), report.Y, report.Shift)))
	}

	if report.DryRun {
		fmt.Fprintf(w, "%s %s\n", WarningSymbol, WarningStyle.Sprintf("%s was not modified", report.Path))

		if report.Diff != "" {
			fmt.Fprintln(w)
			writeDiff(w, report.Diff)
		}

		return
	}

	fmt.Fprintf(w, "%s %s\n", InfoSymbol, InfoStyle.Sprintf("Wrote %s", report.Path))
}

// DisplayIssues lists dashboard validation problems, or confirms there are none.
func DisplayIssues(w io.Writer, path string, issues []dashboard.Issue) {
	if len(issues) == 0 {
		fmt.Fprintf(w, "%s %s\n", pterm.Green(symbolSuccess),
			SuccessStyle.Sprintf("%s: panel ids unique, no overlapping panels", path))

		return
	}

	fmt.Fprintf(w, "%s %s\n", pterm.Red(symbolFailure),
		ErrorStyle.Sprintf("%s: %d %s found", path, len(issues), plural(len(issues), "issue")))

	for _, issue := range issues {
		fmt.Fprintf(w, "  %s %s\n", pterm.Gray("["+issue.Kind+"]"), issue.Message)
	}
}

func writeDiff(w io.Writer, diff string) {
	for _, line := range strings.Split(strings.TrimSuffix(diff, "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "+"):
			fmt.Fprintln(w, DiffAddStyle.Sprint(line))
		case strings.HasPrefix(line, "-"):
			fmt.Fprintln(w, DiffRemoveStyle.Sprint(line))
		case strings.HasPrefix(line, "@@"):
			fmt.Fprintln(w, DiffHunkStyle.Sprint(line))
		default:
			fmt.Fprintln(w, MutedStyle.Sprint(line))
		}
	}
}

func boxTop(w io.Writer) {
	fmt.Fprintln(w, boxTopLeft+strings.Repeat(boxHorizontal, defaultBoxWidth-2)+boxTopRight)
}

func boxSeparator(w io.Writer) {
	fmt.Fprintln(w, boxLeftT+strings.Repeat(boxHorizontal, defaultBoxWidth-2)+boxRightT)
}

func boxBottom(w io.Writer) {
	fmt.Fprintln(w, boxBottomLeft+strings.Repeat(boxHorizontal, defaultBoxWidth-2)+boxBottomRight)
}

// boxLine pads content to the box width, measuring it without color codes.
func boxLine(w io.Writer, content string) {
	contentWidth := defaultBoxWidth - 4 // Account for "│  " and " │"

	padding := contentWidth - visibleLen(content)
	if padding < 0 {
		padding = 0
	}

	fmt.Fprintf(w, "%s  %s%s%s\n", boxVertical, content, strings.Repeat(" ", padding), boxVertical)
}

func visibleLen(s string) int {
	return utf8.RuneCountInString(stripansi.Strip(s))
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}

	return word + "s"
}
