// Package htmltable renders small HTML tables as golang.org/x/net/html node
// trees: a generic row/column table and the percentage-bar cell used in the
// species summary.
package htmltable

import (
	"bytes"
	"fmt"
	"math"
	"strconv"

	"github.com/dalemusser/strataqc/internal/app/system/htmlsanitize"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Class names emitted by the renderers.
const (
	TableClass = "qc-table"
	RowClass   = "trow"
	CellClass  = "cell"
)

// Row is a table row with an optional style class.
type Row struct {
	Class string
	Cells []any
}

// Plain returns an unclassed row.
func Plain(cells ...any) Row { return Row{Cells: cells} }

// Table builds a table from rows. A cell may be an *html.Node (used as is
// when it is a td, wrapped otherwise), a string, or any value printed with
// fmt. header adds a thead row when non-empty. attrs are extra attributes
// for the table element.
func Table(rows []Row, header []string, attrs ...html.Attribute) *html.Node {
	tbl := element(atom.Table, append([]html.Attribute{{Key: "class", Val: TableClass}}, attrs...)...)
	if len(header) > 0 {
		thead := element(atom.Thead)
		tr := element(atom.Tr, html.Attribute{Key: "class", Val: RowClass})
		for _, h := range header {
			th := element(atom.Th)
			th.AppendChild(text(h))
			tr.AppendChild(th)
		}
		thead.AppendChild(tr)
		tbl.AppendChild(thead)
	}
	tbody := element(atom.Tbody)
	for _, r := range rows {
		cls := RowClass
		if r.Class != "" {
			cls = r.Class + " " + RowClass
		}
		tr := element(atom.Tr, html.Attribute{Key: "class", Val: cls})
		for _, c := range r.Cells {
			tr.AppendChild(cell(c))
		}
		tbody.AppendChild(tr)
	}
	tbl.AppendChild(tbody)
	return tbl
}

func cell(v any) *html.Node {
	if n, ok := v.(*html.Node); ok && n.DataAtom == atom.Td {
		return n
	}
	td := element(atom.Td, html.Attribute{Key: "class", Val: CellClass})
	switch x := v.(type) {
	case *html.Node:
		td.AppendChild(x)
	case nil:
	case string:
		td.AppendChild(text(x))
	default:
		td.AppendChild(text(fmt.Sprint(x)))
	}
	return td
}

// PercentageCell renders a fraction in [0, 1] as a percentage with a
// background bar of the same width. NaN keeps its text but draws no bar.
// Values outside [0, 1] are not clamped.
func PercentageCell(v float64, color string) *html.Node {
	pct := strconv.FormatFloat(math.Round(v*10000)/100, 'f', -1, 64) + "%"
	width := pct
	if math.IsNaN(v) {
		width = "0%"
	}

	td := element(atom.Td, html.Attribute{Key: "class", Val: "data-colored " + CellClass})
	wrap := element(atom.Div, html.Attribute{Key: "class", Val: "wrapper"})
	val := element(atom.Span, html.Attribute{Key: "class", Val: "val"})
	val.AppendChild(text(pct))
	bar := element(atom.Span,
		html.Attribute{Key: "class", Val: "bar"},
		html.Attribute{Key: "style", Val: "background-color: " + color + "; width: " + width},
	)
	wrap.AppendChild(val)
	wrap.AppendChild(bar)
	td.AppendChild(wrap)
	return td
}

// Render serialises n and runs it through the report sanitizer.
func Render(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return htmlsanitize.Sanitize(buf.String()), nil
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
