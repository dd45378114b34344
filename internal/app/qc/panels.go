package qc

import (
	"github.com/dalemusser/strataqc/internal/app/qc/figure"
	"github.com/dalemusser/strataqc/internal/app/system/qcconfig"
	"github.com/dalemusser/strataqc/internal/app/system/table"
)

// Panel geometry of the stacked box-plot figure.
var rowDomains = [qcconfig.PanelRows][2]float64{
	{0.78, 1},
	{0.655, 0.75},
	{0.53, 0.625},
	{0.415, 0.5},
	{0.28, 0.375},
	{0.155, 0.25},
	{0.03, 0.125},
}

const (
	figureHeight = 750
	boxJitter    = 0.3
	boxPointPos  = -1.6
	markerSize   = 4
)

// Bounds are the expected genome length limits of the selected species.
type Bounds struct {
	MinLength float64
	MaxLength float64
}

// Panel is one rendered metric.
type Panel struct {
	Descriptor qcconfig.PlotValue
	Row        int
	Values     []float64
	Names      []string
	IDs        []string
	Range      [2]float64
}

// SelectSpecies returns the rows of t belonging to selected. ok is false
// when col is absent or selected is neither AllSpecies nor an observed value.
func SelectSpecies(t *table.Table, col, selected string) (*table.Table, bool) {
	if !t.Has(col) {
		return nil, false
	}
	if selected == AllSpecies {
		return t, true
	}
	sub := t.Filter(func(i int) bool {
		s, ok := t.Cell(i, col).Text()
		return ok && s == selected
	})
	if sub.Len() == 0 {
		return nil, false
	}
	return sub, true
}

// BuildPanels coerces each descriptor's column of t to numbers and computes
// its display range. Descriptors whose column is absent are skipped.
func BuildPanels(t *table.Table, values []qcconfig.PlotValue) []Panel {
	var out []Panel
	names := t.Texts(NameColumn)
	ids := t.Texts(IDColumn)
	for i, pv := range values {
		if !t.Has(pv.ID) {
			continue
		}
		xs := t.Numeric(pv.ID)
		out = append(out, Panel{
			Descriptor: pv,
			Row:        qcconfig.RowOf(i),
			Values:     xs,
			Names:      names,
			IDs:        ids,
			Range:      PaddedRange(xs, pv.Low(), pv.High()),
		})
	}
	return out
}

// AssembleFigure lays panels out on the seven stacked rows and overlays
// the configured annotations. A row takes the range of the first panel
// placed on it; rows without panels keep an automatic range.
func AssembleFigure(title string, panels []Panel, annotations []qcconfig.Annotation, b Bounds) figure.Figure {
	layout := &figure.Layout{
		Title:     &figure.Title{Text: title},
		HoverMode: "closest",
		Height:    figureHeight,
		Margin:    &figure.Margin{L: 175, R: 50, B: 25, T: 50},
		XAxes:     make([]figure.Axis, qcconfig.PanelRows),
		YAxes:     make([]figure.Axis, qcconfig.PanelRows),
	}
	for r := 1; r <= qcconfig.PanelRows; r++ {
		d := rowDomains[r-1]
		layout.XAxes[r-1] = figure.Axis{Domain: &[2]float64{0, 1}, Anchor: figure.AxisRef("y", r)}
		layout.YAxes[r-1] = figure.Axis{Domain: &d, Anchor: figure.AxisRef("x", r)}
	}

	data := make([]figure.Trace, 0, len(panels))
	for _, p := range panels {
		data = append(data, boxTrace(p))
		ax := &layout.XAxes[p.Row-1]
		if ax.Range == nil {
			ax.Range = &[2]figure.Number{figure.Number(p.Range[0]), figure.Number(p.Range[1])}
		}
	}

	layout.Annotations = make([]figure.Annotation, 0, len(annotations))
	for _, a := range annotations {
		x := a.X
		switch a.Bound {
		case qcconfig.BoundMinLength:
			x = b.MinLength
		case qcconfig.BoundMaxLength:
			x = b.MaxLength
		}
		layout.Annotations = append(layout.Annotations, figure.Annotation{
			X:    x,
			Y:    a.Y,
			XRef: figure.AxisRef("x", a.Row),
			YRef: figure.AxisRef("y", a.Row),
			Text: a.Text,
			AY:   40,
		})
	}
	return figure.Figure{Data: data, Layout: layout}
}

func boxTrace(p Panel) figure.Box {
	xs := make([]figure.Number, len(p.Values))
	sel := make([]int, len(p.Values))
	for i, v := range p.Values {
		xs[i] = figure.Number(v)
		sel[i] = i
	}
	return figure.Box{
		Name:           p.Descriptor.Name,
		X:              xs,
		Text:           p.Names,
		CustomData:     p.IDs,
		Orientation:    "h",
		BoxPoints:      "all",
		Jitter:         boxJitter,
		PointPos:       boxPointPos,
		SelectedPoints: sel,
		Marker:         figure.Marker{Size: markerSize},
		XAxis:          figure.AxisRef("x", p.Row),
		YAxis:          figure.AxisRef("y", p.Row),
	}
}
