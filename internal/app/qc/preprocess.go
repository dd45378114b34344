package qc

import (
	"strings"

	"github.com/dalemusser/strataqc/internal/app/system/table"
)

// ValueSuffix is appended to a compound test column to name its value column.
const ValueSuffix = ".value"

// SplitTestValues derives "<field>.value" for every configured field that
// is a column of t. The derived cell is the third ":" segment of a string
// with at least two colons and Missing for anything else. The new column
// sits directly after its source.
func SplitTestValues(t *table.Table, fields []string) {
	for _, f := range fields {
		if !t.Has(f) {
			continue
		}
		src := t.Column(f)
		cells := make([]table.Cell, len(src))
		for i, c := range src {
			cells[i] = thirdSegment(c)
		}
		t.InsertAfter(f, f+ValueSuffix, cells)
	}
}

func thirdSegment(c table.Cell) table.Cell {
	s, ok := c.String()
	if !ok {
		return table.MissingCell()
	}
	parts := strings.Split(s, ":")
	if len(parts) < 3 {
		return table.MissingCell()
	}
	return table.ValueCell(parts[2])
}
