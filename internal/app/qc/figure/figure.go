// Package figure defines the chart specifications emitted by the QC
// builders. The JSON shape follows the Plotly figure schema so a browser
// client can pass it straight to Plotly.react.
package figure

import (
	"encoding/json"
	"math"
	"strconv"
)

// Trace is any figure trace (box, sunburst).
type Trace interface {
	TraceType() string
}

// Figure is a chart specification: traces plus layout.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout *Layout `json:"layout,omitempty"`
}

// Empty returns the placeholder figure {"data": []}.
func Empty() Figure {
	return Figure{Data: []Trace{}}
}

// IsEmpty reports whether the figure carries no traces.
func (f Figure) IsEmpty() bool { return len(f.Data) == 0 }

// Number is a float that encodes NaN and infinities as JSON null.
type Number float64

// MarshalJSON implements json.Marshaler.
func (n Number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(f, 'g', -1, 64)), nil
}

// Label is a nullable string. The zero value encodes as null.
type Label struct {
	Text  string
	Valid bool
}

// Text returns a valid label.
func Text(s string) Label { return Label{Text: s, Valid: true} }

// MarshalJSON implements json.Marshaler.
func (l Label) MarshalJSON() ([]byte, error) {
	if !l.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(l.Text)
}

// Marker styles box-trace points.
type Marker struct {
	Size int `json:"size"`
}

// Box is a horizontal box/strip trace.
type Box struct {
	Name           string   `json:"name"`
	X              []Number `json:"x"`
	Text           []string `json:"text"`
	CustomData     []string `json:"customdata"`
	Orientation    string   `json:"orientation"`
	BoxPoints      string   `json:"boxpoints"`
	Jitter         float64  `json:"jitter"`
	PointPos       float64  `json:"pointpos"`
	SelectedPoints []int    `json:"selectedpoints"`
	Marker         Marker   `json:"marker"`
	ShowLegend     bool     `json:"showlegend"`
	XAxis          string   `json:"xaxis,omitempty"`
	YAxis          string   `json:"yaxis,omitempty"`
}

// TraceType implements Trace.
func (Box) TraceType() string { return "box" }

// MarshalJSON adds the "type" discriminator.
func (b Box) MarshalJSON() ([]byte, error) {
	type plain Box
	return json.Marshal(struct {
		Type string `json:"type"`
		plain
	}{Type: b.TraceType(), plain: plain(b)})
}

// Font is a text font spec.
type Font struct {
	Size  int    `json:"size"`
	Color string `json:"color"`
}

// Line is a segment outline spec.
type Line struct {
	Width int `json:"width"`
}

// SunburstMarker styles sunburst segments.
type SunburstMarker struct {
	Line Line `json:"line"`
}

// Sunburst is a hierarchical ring chart given as parallel node slices.
type Sunburst struct {
	IDs             []Label        `json:"ids"`
	Labels          []Label        `json:"labels"`
	Parents         []Label        `json:"parents"`
	Values          []int          `json:"values"`
	BranchValues    string         `json:"branchvalues"`
	OutsideTextFont Font           `json:"outsidetextfont"`
	Marker          SunburstMarker `json:"marker"`
}

// TraceType implements Trace.
func (Sunburst) TraceType() string { return "sunburst" }

// MarshalJSON adds the "type" discriminator.
func (s Sunburst) MarshalJSON() ([]byte, error) {
	type plain Sunburst
	return json.Marshal(struct {
		Type string `json:"type"`
		plain
	}{Type: s.TraceType(), plain: plain(s)})
}
