// Package dashboard renders a static HTML chart of the requested load of
// recent planning requests, served alongside the API for a quick visual
// sanity check of recent planning activity. Dispatch cost is not charted.
package dashboard

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"powerplant-dispatch/internal/history"
)

// Render writes an HTML line chart of load vs. feasibility for records,
// oldest first, to w.
func Render(w io.Writer, records []history.Record) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Recent production plans"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithInitializationOpts(opts.Initialization{Theme: types.ThemeWesteros}),
		charts.WithXAxisOpts(opts.XAxis{Name: "request"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "load (MW)"}),
	)

	xAxis := make([]string, len(records))
	loadSeries := make([]opts.LineData, len(records))
	for i, r := range records {
		xAxis[i] = fmt.Sprintf("#%d", r.ID)
		symbol := "circle"
		if !r.Feasible {
			symbol = "triangle"
		}
		loadSeries[i] = opts.LineData{Value: r.LoadMW, Symbol: symbol}
	}

	line.SetXAxis(xAxis).
		AddSeries("requested load", loadSeries)

	return line.Render(w)
}
