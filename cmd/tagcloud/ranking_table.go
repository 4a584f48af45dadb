package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"tagcloud/internal/ranking"
)

// rankingTable lays out ranked words in display order with a footer summing
// the counts shown.
func rankingTable(entries []ranking.Sized) string {
	style := table.StyleRounded
	style.Format.Header = text.FormatDefault
	style.Format.Footer = text.FormatDefault

	tw := table.NewWriter()
	tw.SetStyle(style)
	tw.AppendHeader(table.Row{"#", "Word", "Count", "Font Size"})

	total := 0
	for i, entry := range entries {
		tw.AppendRow(table.Row{i + 1, entry.Word, entry.Count, fmt.Sprintf("%dpx", entry.FontSize)})
		total += entry.Count
	}
	tw.AppendFooter(table.Row{"", "Total", total, ""})

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight, AlignFooter: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})
	return tw.Render()
}
