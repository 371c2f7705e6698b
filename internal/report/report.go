// Package report renders a series for the console: a year/value table with
// growth figures, and a terminal line chart.
package report

import (
	"fmt"
	"io"

	"github.com/guptarohit/asciigraph"
	"github.com/jedib0t/go-pretty/v6/table"

	"econseries/internal/model"
	"econseries/internal/stats"
)

const (
	chartHeight = 10
	chartWidth  = 60
)

// WriteTable prints the year/value rows and, for series with at least two
// points, the growth summary.
func WriteTable(w io.Writer, query model.Query, series model.Series) {
	fmt.Fprintf(w, "%s: %s (%s), %d-%d\n",
		model.CountryName(query.CountryCode),
		query.Indicator.Label(),
		query.Indicator.Unit(),
		query.StartYear,
		query.EndYear,
	)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Year", query.Indicator.Unit()})
	for _, obs := range series {
		t.AppendRow(table.Row{obs.Year, fmt.Sprintf("%.2f", obs.Value)})
	}
	t.SetStyle(table.StyleRounded)
	t.Render()

	summary := stats.Summarize(series)
	if len(series) < 2 {
		return
	}
	fmt.Fprintf(w, "Total growth (%d-%d): %.1f%%\n", series.First().Year, series.Last().Year, summary.TotalGrowthPct)
	fmt.Fprintf(w, "Average annual growth: %.1f%%\n", summary.AvgAnnualGrowthPct)
	fmt.Fprintf(w, "Highest: %.2f (%d)\n", summary.Max.Value, summary.Max.Year)
	fmt.Fprintf(w, "Lowest: %.2f (%d)\n", summary.Min.Value, summary.Min.Year)
}

// WriteChart prints an ascii line chart of the series.
func WriteChart(w io.Writer, query model.Query, series model.Series) {
	if len(series) == 0 {
		return
	}
	caption := fmt.Sprintf("%s %s, %d-%d",
		model.CountryName(query.CountryCode),
		query.Indicator.Label(),
		series.First().Year,
		series.Last().Year,
	)
	chart := asciigraph.Plot(series.Values(),
		asciigraph.Height(chartHeight),
		asciigraph.Width(chartWidth),
		asciigraph.Caption(caption),
	)
	fmt.Fprintln(w, chart)
}
