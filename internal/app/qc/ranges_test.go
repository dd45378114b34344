package qc

import (
	"math"
	"testing"

	"github.com/dalemusser/strataqc/internal/app/system/qcconfig"
	"github.com/dalemusser/strataqc/internal/app/system/table"
)

func TestPaddedRange(t *testing.T) {
	tests := []struct {
		name      string
		values    []float64
		low, high float64
		want      [2]float64
	}{
		{"inside limits", []float64{2, 5, 8}, 0, 10, [2]float64{0, 10}},
		{"below low", []float64{-5, 3}, 0, 10, [2]float64{-6, 10}},
		{"above high", []float64{3, 20}, 0, 10, [2]float64{0, 21}},
		{"both sides", []float64{-1, 11}, 0, 10, [2]float64{-2, 12}},
		{"equal to limits is not padded", []float64{0, 10}, 0, 10, [2]float64{0, 10}},
		{"nan ignored", []float64{math.NaN(), 12}, 0, 10, [2]float64{0, 13}},
		{"inf ignored", []float64{math.Inf(1), 30}, 0, 200, [2]float64{0, 200}},
		{"both infinities ignored", []float64{math.Inf(-1), math.Inf(1), 250}, 0, 200, [2]float64{0, 270}},
		{"no data", []float64{math.NaN()}, 0.75, 1, [2]float64{0.75, 1}},
		{"empty", nil, 5, 6, [2]float64{5, 6}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PaddedRange(tt.values, tt.low, tt.high)
			if math.Abs(got[0]-tt.want[0]) > 1e-9 || math.Abs(got[1]-tt.want[1]) > 1e-9 {
				t.Errorf("PaddedRange() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBuildPanels_InfiniteStringKeepsConfiguredRange(t *testing.T) {
	pv := qcconfig.Default().PlotValues[3]
	tbl := table.New(pv.ID)
	tbl.AppendRow(map[string]any{pv.ID: "inf"})
	tbl.AppendRow(map[string]any{pv.ID: 30.0})

	panels := BuildPanels(tbl, []qcconfig.PlotValue{pv})
	if len(panels) != 1 {
		t.Fatalf("len(panels) = %d, want 1", len(panels))
	}
	if got := panels[0].Range; got != [2]float64{pv.Low(), pv.High()} {
		t.Errorf("Range = %v, want %v", got, pv.Limits)
	}
}
