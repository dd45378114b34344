package qc

import (
	"testing"

	"github.com/dalemusser/strataqc/internal/app/system/table"
	"github.com/google/go-cmp/cmp"
)

func TestSplitTestValues(t *testing.T) {
	const f = "properties.stamper.summary.check"
	tb := table.New("_id", f, "name")
	tb.AppendRow(map[string]any{"_id": "1", f: "pass:ok:42", "name": "a"})
	tb.AppendRow(map[string]any{"_id": "2", f: "fail:low"})
	tb.AppendRow(map[string]any{"_id": "3", f: 7})
	tb.AppendRow(map[string]any{"_id": "4"})
	tb.AppendRow(map[string]any{"_id": "5", f: "a:b:c:d"})

	SplitTestValues(tb, []string{f, "properties.absent"})

	want := []string{"_id", f, f + ValueSuffix, "name"}
	if diff := cmp.Diff(want, tb.Columns()); diff != "" {
		t.Errorf("Columns() mismatch (-want +got):\n%s", diff)
	}
	if s, _ := tb.Cell(0, f+ValueSuffix).String(); s != "42" {
		t.Errorf("row 0 value = %q, want 42", s)
	}
	for _, i := range []int{1, 2, 3} {
		if st := tb.Cell(i, f+ValueSuffix).State(); st != table.Missing {
			t.Errorf("row %d value state = %v, want missing", i, st)
		}
	}
	if s, _ := tb.Cell(4, f+ValueSuffix).String(); s != "c" {
		t.Errorf("row 4 value = %q, want c", s)
	}
	if s, _ := tb.Cell(0, f).String(); s != "pass:ok:42" {
		t.Errorf("source column changed: %q", s)
	}
}
