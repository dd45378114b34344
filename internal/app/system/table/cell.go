// internal/app/system/table/cell.go
package table

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// State distinguishes the three ways a cell can hold (or not hold) data.
type State uint8

const (
	// Missing means the row never had a value at this dot-path.
	Missing State = iota
	// Null means the path exists but holds null (or a NaN float).
	Null
	// Present means the cell holds a concrete value.
	Present
)

func (s State) String() string {
	switch s {
	case Missing:
		return "missing"
	case Null:
		return "null"
	case Present:
		return "present"
	}
	return "unknown"
}

// Cell is one value of the flat sample table.
type Cell struct {
	state State
	v     any
}

// MissingCell returns a cell for an absent dot-path.
func MissingCell() Cell { return Cell{state: Missing} }

// NullCell returns a cell for an explicit null.
func NullCell() Cell { return Cell{state: Null} }

// ValueCell wraps v. nil and NaN floats become Null.
func ValueCell(v any) Cell {
	switch x := v.(type) {
	case nil:
		return NullCell()
	case float64:
		if math.IsNaN(x) {
			return NullCell()
		}
	case float32:
		if math.IsNaN(float64(x)) {
			return NullCell()
		}
	}
	return Cell{state: Present, v: v}
}

// State reports which of the three states the cell is in.
func (c Cell) State() State { return c.state }

// IsEmpty reports whether the cell is Missing or Null.
func (c Cell) IsEmpty() bool { return c.state != Present }

// Value returns the raw value and whether the cell is Present.
func (c Cell) Value() (any, bool) {
	if c.state != Present {
		return nil, false
	}
	return c.v, true
}

// String returns the value when it is a Go string.
func (c Cell) String() (string, bool) {
	if c.state != Present {
		return "", false
	}
	s, ok := c.v.(string)
	return s, ok
}

// Text formats a Present value for display and grouping.
// Slices are joined with ", ". Empty cells return "" and false.
func (c Cell) Text() (string, bool) {
	if c.state != Present {
		return "", false
	}
	return formatValue(c.v), true
}

// Float coerces the cell to a number. Numeric Go types convert directly,
// strings are parsed; everything else (bools, slices, documents) fails.
func (c Cell) Float() (float64, bool) {
	if c.state != Present {
		return math.NaN(), false
	}
	switch x := c.v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil || math.IsNaN(f) {
			return math.NaN(), false
		}
		return f, true
	}
	return math.NaN(), false
}

// key is the grouping identity of a cell. Missing and Null share one key.
func (c Cell) key() string {
	if c.state != Present {
		return "\x00null"
	}
	return fmt.Sprintf("%T\x00%s", c.v, formatValue(c.v))
}

func formatValue(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case []any:
		parts := make([]string, len(x))
		for i, e := range x {
			parts[i] = formatValue(e)
		}
		return strings.Join(parts, ", ")
	case []string:
		return strings.Join(x, ", ")
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case nil:
		return ""
	}
	return fmt.Sprint(v)
}
