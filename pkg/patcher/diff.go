package patcher

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// diffContext is the number of unchanged lines kept around each change.
const diffContext = 3

// LineDiff returns a line-oriented diff of before and after. Changed lines are
// prefixed with "-" or "+"; long unchanged stretches are collapsed.
func LineDiff(before, after string) string {
	if before == after {
		return ""
	}

	dmp := diffmatchpatch.New()

	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var sb strings.Builder

	for i, d := range diffs {
		chunk := splitLines(d.Text)

		switch d.Type {
		case diffmatchpatch.DiffDelete:
			writeLines(&sb, "-", chunk)
		case diffmatchpatch.DiffInsert:
			writeLines(&sb, "+", chunk)
		case diffmatchpatch.DiffEqual:
			writeEqual(&sb, chunk, i == 0, i == len(diffs)-1)
		}
	}

	return sb.String()
}

// writeEqual keeps context lines next to changes and collapses the rest.
func writeEqual(sb *strings.Builder, chunk []string, first, last bool) {
	head, tail := diffContext, diffContext
	if first {
		head = 0
	}

	if last {
		tail = 0
	}

	if len(chunk) <= head+tail {
		writeLines(sb, " ", chunk)

		return
	}

	writeLines(sb, " ", chunk[:head])
	fmt.Fprintf(sb, "@@ %d unchanged lines @@\n", len(chunk)-head-tail)
	writeLines(sb, " ", chunk[len(chunk)-tail:])
}

func writeLines(sb *strings.Builder, prefix string, lines []string) {
	for _, line := range lines {
		sb.WriteString(prefix)
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
}

func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}

	return strings.Split(text, "\n")
}
