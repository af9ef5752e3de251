package controller

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	m "github.com/mouse-blink/solint/internal/model"
)

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	return table
}

func renderSummary(results []m.FileResult) string {
	var buf bytes.Buffer

	table := newTable(&buf, []string{"File", "Errors", "Warnings", "Fixed", "Ignored"})
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
	})

	total := m.NewStatistics()

	for _, r := range results {
		stats := r.Statistics
		if stats == nil {
			stats = m.Count(r.Problems)
		}

		total.Merge(stats)

		table.Append([]string{
			string(r.Source.Path),
			fmt.Sprintf("%d", stats[m.KindError]),
			fmt.Sprintf("%d", stats[m.KindWarning]),
			fmt.Sprintf("%d", stats[m.KindFixed]),
			fmt.Sprintf("%d", stats[m.KindIgnored]),
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(results)),
		fmt.Sprintf("%d", total[m.KindError]),
		fmt.Sprintf("%d", total[m.KindWarning]),
		fmt.Sprintf("%d", total[m.KindFixed]),
		fmt.Sprintf("%d", total[m.KindIgnored]),
	})

	table.Render()

	return buf.String()
}

func renderChecks(checks []m.CheckInfo) string {
	var buf bytes.Buffer

	table := newTable(&buf, []string{"Check", "Enabled", "Fixable", "Description"})
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_LEFT,
	})

	for _, c := range checks {
		table.Append([]string{string(c.Name), yesNo(c.Enabled), yesNo(c.Fixable), c.Description})
	}

	table.Render()

	return buf.String()
}

func renderTree(source m.Source, entries []m.TreeEntry) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", source.Path)

	if len(entries) == 0 {
		b.WriteString("  (no keys)\n")

		return b.String()
	}

	for _, e := range entries {
		fmt.Fprintf(&b, "%s%s  (%s, parent %s, line %d column %d)\n",
			strings.Repeat("  ", e.Depth+1), e.Key, e.Kind, e.Parent, e.Line, e.Column)
	}

	return b.String()
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}

	return "no"
}
