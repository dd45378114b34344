// Package table holds the flat, row-per-sample projection of nested sample
// records. Columns are dot-paths; every cell is explicitly Missing, Null or
// Present so callers never depend on implicit null propagation.
package table

import (
	"sort"
)

// Field is one key/value pair of an ordered document.
type Field struct {
	Key   string
	Value any
}

// Doc is an ordered nested document. Values may be Doc, map[string]any,
// []any or scalars.
type Doc []Field

// Lookup returns the value stored under a top-level key.
func (d Doc) Lookup(key string) (any, bool) {
	for _, f := range d {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// Table is an ordered set of columns over a slice of rows.
// A row without an entry for a column reads as Missing.
type Table struct {
	columns []string
	index   map[string]int
	rows    []map[string]Cell
}

// New returns an empty table with the given columns.
func New(columns ...string) *Table {
	t := &Table{index: make(map[string]int)}
	for _, c := range columns {
		t.addColumn(c)
	}
	return t
}

// FromDocs flattens each document into one row. Nested documents are
// joined with "." and arrays are kept whole as leaf values. Column order is
// the order in which paths are first seen.
func FromDocs(docs []Doc) *Table {
	t := New()
	for _, d := range docs {
		row := make(map[string]Cell)
		flatten("", d, func(path string, v any) {
			t.addColumn(path)
			row[path] = ValueCell(v)
		})
		t.rows = append(t.rows, row)
	}
	return t
}

func flatten(prefix string, v any, emit func(path string, v any)) {
	join := func(k string) string {
		if prefix == "" {
			return k
		}
		return prefix + "." + k
	}
	switch x := v.(type) {
	case Doc:
		if len(x) == 0 && prefix != "" {
			emit(prefix, nil)
			return
		}
		for _, f := range x {
			flatten(join(f.Key), f.Value, emit)
		}
	case map[string]any:
		if len(x) == 0 && prefix != "" {
			emit(prefix, nil)
			return
		}
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			flatten(join(k), x[k], emit)
		}
	default:
		emit(prefix, v)
	}
}

func (t *Table) addColumn(col string) bool {
	if _, ok := t.index[col]; ok {
		return false
	}
	t.index[col] = len(t.columns)
	t.columns = append(t.columns, col)
	return true
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// Columns returns a copy of the column names in order.
func (t *Table) Columns() []string {
	out := make([]string, len(t.columns))
	copy(out, t.columns)
	return out
}

// Has reports whether the column exists.
func (t *Table) Has(col string) bool {
	_, ok := t.index[col]
	return ok
}

// Cell returns the cell at row i. Unknown columns read as Missing.
func (t *Table) Cell(i int, col string) Cell {
	if c, ok := t.rows[i][col]; ok {
		return c
	}
	return MissingCell()
}

// Set stores c at row i, appending the column if it does not exist yet.
func (t *Table) Set(i int, col string, c Cell) {
	t.addColumn(col)
	t.rows[i][col] = c
}

// AppendRow adds a row from column/value pairs.
func (t *Table) AppendRow(values map[string]any) {
	row := make(map[string]Cell, len(values))
	cols := make([]string, 0, len(values))
	for k := range values {
		cols = append(cols, k)
	}
	sort.Strings(cols)
	for _, k := range cols {
		t.addColumn(k)
		row[k] = ValueCell(values[k])
	}
	t.rows = append(t.rows, row)
}

// Column returns the cells of col in row order.
func (t *Table) Column(col string) []Cell {
	out := make([]Cell, len(t.rows))
	for i := range t.rows {
		out[i] = t.Cell(i, col)
	}
	return out
}

// EnsureColumn creates col with Null cells when it does not exist.
// It returns true when the column was created.
func (t *Table) EnsureColumn(col string) bool {
	if !t.addColumn(col) {
		return false
	}
	for _, row := range t.rows {
		row[col] = NullCell()
	}
	return true
}

// InsertAfter places a new column directly after an existing one. When
// col already exists it is overwritten in place; when after does not exist
// the column is appended.
func (t *Table) InsertAfter(after, col string, cells []Cell) {
	if _, exists := t.index[col]; !exists {
		pos, ok := t.index[after]
		if !ok {
			t.addColumn(col)
		} else {
			t.columns = append(t.columns, "")
			copy(t.columns[pos+2:], t.columns[pos+1:])
			t.columns[pos+1] = col
			for i, c := range t.columns {
				t.index[c] = i
			}
		}
	}
	for i, row := range t.rows {
		if i < len(cells) && cells[i].state != Missing {
			row[col] = cells[i]
		} else {
			delete(row, col)
		}
	}
}

// FillEmpty replaces every Missing or Null cell of col with v.
func (t *Table) FillEmpty(col string, v any) {
	t.addColumn(col)
	for _, row := range t.rows {
		if c, ok := row[col]; !ok || c.IsEmpty() {
			row[col] = ValueCell(v)
		}
	}
}

// Distinct returns one cell per distinct value of col, in first-occurrence
// order. Missing and Null collapse into a single Null entry.
func (t *Table) Distinct(col string) []Cell {
	var out []Cell
	seen := make(map[string]struct{})
	for i := range t.rows {
		c := t.Cell(i, col)
		k := c.key()
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		if c.state == Missing {
			c = NullCell()
		}
		out = append(out, c)
	}
	return out
}

// Filter returns a new table with the rows for which keep returns true.
// Rows are shared, not copied.
func (t *Table) Filter(keep func(i int) bool) *Table {
	out := New(t.columns...)
	for i, row := range t.rows {
		if keep(i) {
			out.rows = append(out.rows, row)
		}
	}
	return out
}

// Equal returns the rows whose col cell groups with c (see Distinct).
func (t *Table) Equal(col string, c Cell) *Table {
	k := c.key()
	return t.Filter(func(i int) bool { return t.Cell(i, col).key() == k })
}

// Count returns how many rows group with c in col.
func (t *Table) Count(col string, c Cell) int {
	k := c.key()
	n := 0
	for i := range t.rows {
		if t.Cell(i, col).key() == k {
			n++
		}
	}
	return n
}

// Numeric coerces col to float64. Non-numeric and empty cells become NaN.
func (t *Table) Numeric(col string) []float64 {
	out := make([]float64, len(t.rows))
	for i := range t.rows {
		out[i], _ = t.Cell(i, col).Float()
	}
	return out
}

// Texts returns the display text of col per row; empty cells yield "".
func (t *Table) Texts(col string) []string {
	out := make([]string, len(t.rows))
	for i := range t.rows {
		out[i], _ = t.Cell(i, col).Text()
	}
	return out
}
