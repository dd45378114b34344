package figure

import (
	"encoding/json"
	"strconv"
)

// Margin is the plot margin in pixels.
type Margin struct {
	L int `json:"l"`
	R int `json:"r"`
	B int `json:"b"`
	T int `json:"t"`
}

// Title is a layout title.
type Title struct {
	Text string `json:"text"`
}

// Axis describes one x or y axis of a subplot grid.
type Axis struct {
	Domain *[2]float64 `json:"domain,omitempty"`
	Range  *[2]Number  `json:"range,omitempty"`
	Anchor string      `json:"anchor,omitempty"`
}

// Annotation is a text mark with an arrow pointing at (X, Y).
type Annotation struct {
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	XRef      string  `json:"xref"`
	YRef      string  `json:"yref"`
	Text      string  `json:"text"`
	ArrowHead int     `json:"arrowhead"`
	AX        int     `json:"ax"`
	AY        int     `json:"ay"`
}

// Layout holds figure-wide settings. XAxes[i] and YAxes[i] belong to
// subplot row i+1 and encode as "xaxis", "xaxis2", ... in JSON.
type Layout struct {
	Title       *Title
	HoverMode   string
	Height      int
	Margin      *Margin
	Annotations []Annotation
	XAxes       []Axis
	YAxes       []Axis
}

// AxisRef returns the trace/annotation reference for row n (1-based):
// "x", "x2", "x3", ...
func AxisRef(letter string, row int) string {
	if row <= 1 {
		return letter
	}
	return letter + strconv.Itoa(row)
}

func axisKey(letter string, row int) string {
	return AxisRef(letter, row)[:1] + "axis" + AxisRef(letter, row)[1:]
}

// MarshalJSON flattens the axis slices into numbered layout keys.
func (l Layout) MarshalJSON() ([]byte, error) {
	m := make(map[string]any)
	if l.Title != nil {
		m["title"] = l.Title
	}
	if l.HoverMode != "" {
		m["hovermode"] = l.HoverMode
	}
	if l.Height > 0 {
		m["height"] = l.Height
	}
	if l.Margin != nil {
		m["margin"] = l.Margin
	}
	if l.Annotations != nil {
		m["annotations"] = l.Annotations
	}
	for i, a := range l.XAxes {
		m[axisKey("x", i+1)] = a
	}
	for i, a := range l.YAxes {
		m[axisKey("y", i+1)] = a
	}
	return json.Marshal(m)
}
