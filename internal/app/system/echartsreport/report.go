// Package echartsreport renders a self-contained HTML QC report with
// go-echarts: one box plot per panel row, the species/strain sunburst, and
// a species summary table injected at the top of the page.
package echartsreport

import (
	"fmt"
	"html"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/dalemusser/strataqc/internal/app/qc"
	"github.com/dalemusser/strataqc/internal/app/qc/figure"
	"github.com/dalemusser/strataqc/internal/app/system/htmltable"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// BarColor paints the percentage bars of the summary table.
const BarColor = "#377eb8"

// Report is everything needed to render one report page.
type Report struct {
	Species     string
	Source      string
	Panels      []qc.Panel
	Hierarchy   qc.Hierarchy
	Summary     []qc.SpeciesCount
	Bounds      qc.Bounds
	GeneratedAt time.Time
}

// Render writes the report page to w.
func Render(w io.Writer, r Report) error {
	page := components.NewPage()
	page.PageTitle = "QC report - " + r.Species

	for _, row := range groupRows(r.Panels) {
		page.AddCharts(boxChart(row, r.Bounds))
	}
	if len(r.Hierarchy) > 0 {
		page.AddCharts(sunburstChart(r.Hierarchy))
	}

	var buf strings.Builder
	if err := page.Render(&buf); err != nil {
		return fmt.Errorf("render report charts: %w", err)
	}
	header, err := headerHTML(r)
	if err != nil {
		return err
	}
	out := strings.Replace(buf.String(), "<body>", "<body>\n"+header, 1)
	_, err = io.WriteString(w, out)
	return err
}

// groupRows keeps descriptor order and puts panels sharing a row together.
func groupRows(panels []qc.Panel) [][]qc.Panel {
	var rows [][]qc.Panel
	for _, p := range panels {
		if n := len(rows); n > 0 && rows[n-1][0].Row == p.Row {
			rows[n-1] = append(rows[n-1], p)
			continue
		}
		rows = append(rows, []qc.Panel{p})
	}
	return rows
}

func boxChart(row []qc.Panel, b qc.Bounds) *charts.BoxPlot {
	box := charts.NewBoxPlot()

	names := make([]string, 0, len(row))
	data := make([]opts.BoxPlotData, 0, len(row))
	var stats []string
	for _, p := range row {
		names = append(names, p.Descriptor.Name)
		s, ok := Summarize(p.Values)
		if !ok {
			data = append(data, opts.BoxPlotData{Name: p.Descriptor.Name})
			stats = append(stats, p.Descriptor.Name+": no data")
			continue
		}
		data = append(data, opts.BoxPlotData{Name: p.Descriptor.Name, Value: s.BoxValues()})
		stats = append(stats, fmt.Sprintf("%s: n=%d mean=%s sd=%s", p.Descriptor.Name, s.N, num(s.Mean), num(s.StdDev)))
	}

	subtitle := strings.Join(stats, " | ")
	if row[0].Row == 1 && (b.MinLength != 0 || b.MaxLength != 0) {
		subtitle += fmt.Sprintf(" | expected %s - %s", num(b.MinLength), num(b.MaxLength))
	}

	rng := row[0].Range
	box.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("Row %d", row[0].Row),
			Subtitle: subtitle,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show: opts.Bool(true),
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(false),
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Min: rng[0],
			Max: rng[1],
		}),
		charts.WithInitializationOpts(opts.Initialization{
			Width:  "100%",
			Height: "320px",
		}),
	)
	box.SetXAxis(names).AddSeries(row[0].Descriptor.Name, data)
	return box
}

func sunburstChart(h qc.Hierarchy) *charts.Sunburst {
	sb := charts.NewSunburst()
	sb.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "MLST",
			Subtitle: fmt.Sprintf("%d samples", h[0].Value),
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show: opts.Bool(true),
		}),
		charts.WithInitializationOpts(opts.Initialization{
			Width:  "100%",
			Height: "600px",
		}),
	)
	sb.AddSeries("samples", sunburstData(h))
	return sb
}

// sunburstData rebuilds the tree from the flattened hierarchy: species
// nodes hang off the root and each is followed by its strain leaves.
func sunburstData(h qc.Hierarchy) []opts.SunBurstData {
	var out []opts.SunBurstData
	for _, n := range h[1:] {
		if n.Parent.Valid && n.Parent.Text == qc.RootID {
			out = append(out, opts.SunBurstData{Name: labelText(n.Label), Value: float64(n.Value)})
			continue
		}
		if len(out) == 0 {
			continue
		}
		sp := &out[len(out)-1]
		sp.Children = append(sp.Children, &opts.SunBurstData{Name: labelText(n.Label), Value: float64(n.Value)})
	}
	return out
}

func headerHTML(r Report) (string, error) {
	rows := make([]htmltable.Row, 0, len(r.Summary))
	for _, s := range r.Summary {
		row := htmltable.Plain(s.Species, s.Count, htmltable.PercentageCell(s.Share, BarColor))
		if s.Species == r.Species {
			row.Class = "selected"
		}
		rows = append(rows, row)
	}
	tbl, err := htmltable.Render(htmltable.Table(rows, []string{"Species", "Samples", "Share"}))
	if err != nil {
		return "", fmt.Errorf("render summary table: %w", err)
	}

	var b strings.Builder
	b.WriteString(`<div class="qc-report-header">`)
	fmt.Fprintf(&b, "<h1>QC parameters: %s</h1>", html.EscapeString(r.Species))
	fmt.Fprintf(&b, "<p>Species source: %s. Panels rendered: %d.", html.EscapeString(r.Source), len(r.Panels))
	if !r.GeneratedAt.IsZero() {
		fmt.Fprintf(&b, " Generated %s.", r.GeneratedAt.UTC().Format(time.RFC3339))
	}
	b.WriteString("</p>")
	b.WriteString(tbl)
	b.WriteString("</div>")
	return b.String(), nil
}

func labelText(l figure.Label) string {
	if !l.Valid {
		return "unknown"
	}
	return l.Text
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'g', 6, 64)
}
