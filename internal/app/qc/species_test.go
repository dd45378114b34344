package qc

import (
	"testing"

	"github.com/dalemusser/strataqc/internal/app/system/table"
	"github.com/google/go-cmp/cmp"
)

func speciesTable(col string, values ...any) *table.Table {
	t := table.New()
	for _, v := range values {
		if v == "<missing>" {
			t.AppendRow(map[string]any{"_id": "x"})
			continue
		}
		t.AppendRow(map[string]any{"_id": "x", col: v})
	}
	return t
}

func TestSpeciesColumn(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{SourceProvided, ProvidedSpeciesColumn},
		{SourceDetected, DetectedSpeciesColumn},
		{"", DetectedSpeciesColumn},
		{"other", DetectedSpeciesColumn},
	}
	for _, tt := range tests {
		if got := SpeciesColumn(tt.source); got != tt.want {
			t.Errorf("SpeciesColumn(%q) = %q, want %q", tt.source, got, tt.want)
		}
	}
}

func TestSpeciesOptions(t *testing.T) {
	col := ProvidedSpeciesColumn
	tests := []struct {
		name         string
		values       []any
		selected     string
		wantSelected string
		wantValues   []string
	}{
		{
			name:         "keeps valid selection",
			values:       []any{"E. coli", "Salmonella", "E. coli"},
			selected:     "Salmonella",
			wantSelected: "Salmonella",
			wantValues:   []string{AllSpecies, "E. coli", "Salmonella"},
		},
		{
			name:         "unset selection",
			values:       []any{"E. coli"},
			selected:     "",
			wantSelected: AllSpecies,
			wantValues:   []string{AllSpecies, "E. coli"},
		},
		{
			name:         "stale selection",
			values:       []any{"E. coli"},
			selected:     "Listeria",
			wantSelected: AllSpecies,
			wantValues:   []string{AllSpecies, "E. coli"},
		},
		{
			name:         "sentinel selection is repaired",
			values:       []any{nil, "E. coli", "<missing>"},
			selected:     NotClassified,
			wantSelected: AllSpecies,
			wantValues:   []string{AllSpecies, NotClassified, "E. coli"},
		},
		{
			name:         "no samples",
			values:       nil,
			selected:     "E. coli",
			wantSelected: AllSpecies,
			wantValues:   []string{AllSpecies},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tb := speciesTable(col, tt.values...)
			sel, opts := SpeciesOptions(tb, SourceProvided, tt.selected)
			if sel != tt.wantSelected {
				t.Errorf("selected = %q, want %q", sel, tt.wantSelected)
			}
			var got []string
			for _, o := range opts {
				if o.Label != o.Value {
					t.Errorf("option label %q != value %q", o.Label, o.Value)
				}
				got = append(got, o.Value)
			}
			if diff := cmp.Diff(tt.wantValues, got); diff != "" {
				t.Errorf("options mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSpeciesOptions_AbsentColumn(t *testing.T) {
	tb := speciesTable(DetectedSpeciesColumn, "E. coli")
	sel, opts := SpeciesOptions(tb, SourceProvided, "")
	if sel != AllSpecies {
		t.Errorf("selected = %q, want %q", sel, AllSpecies)
	}
	if len(opts) != 2 || opts[1].Value != NotClassified {
		t.Errorf("options = %+v, want [All species, Not classified]", opts)
	}
}

func TestRepairSelection(t *testing.T) {
	tests := []struct {
		selected   string
		candidates []string
		want       string
	}{
		{"", []string{NotClassified, "E. coli"}, "E. coli"},
		{NotClassified, []string{NotClassified}, NotClassified},
		{"gone", []string{AllSpecies, NotClassified}, AllSpecies},
		{"E. coli", []string{AllSpecies, "E. coli"}, "E. coli"},
		{"", nil, AllSpecies},
	}
	for _, tt := range tests {
		if got := repairSelection(tt.selected, tt.candidates); got != tt.want {
			t.Errorf("repairSelection(%q, %v) = %q, want %q", tt.selected, tt.candidates, got, tt.want)
		}
	}
}

func TestCountSpecies(t *testing.T) {
	tb := speciesTable("s", "a", "b", "a", "a")
	got := CountSpecies(tb, "s")
	want := []SpeciesCount{
		{Species: "a", Count: 3, Share: 0.75},
		{Species: "b", Count: 1, Share: 0.25},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("CountSpecies() mismatch (-want +got):\n%s", diff)
	}
}
