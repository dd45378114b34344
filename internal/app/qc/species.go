// Package qc builds the QC views of a sample set: the species dropdown
// state, the stacked box-plot panels, and the species/strain sunburst.
// Everything here is a pure transformation over a table.Table; data access
// goes through the SampleSource and SpeciesLookup interfaces.
package qc

import (
	"github.com/dalemusser/strataqc/internal/app/system/table"
)

// Species selections and sources.
const (
	AllSpecies    = "All species"
	NotClassified = "Not classified"

	SourceProvided = "provided"
	SourceDetected = "detected"
)

// Dot-paths read by the species and sunburst logic.
const (
	ProvidedSpeciesColumn = "properties.sample_info.summary.provided_species"
	DetectedSpeciesColumn = "properties.species_detection.summary.detected_species"
	SunburstSpeciesColumn = "properties.species_detection.summary.species"
	StrainColumn          = "properties.mlst.summary.strain"

	IDColumn   = "_id"
	NameColumn = "name"
)

// SpeciesColumn maps a species source to its column. Anything other than
// "provided" reads the detected species.
func SpeciesColumn(source string) string {
	if source == SourceProvided {
		return ProvidedSpeciesColumn
	}
	return DetectedSpeciesColumn
}

// Option is one dropdown entry.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// FillSpecies makes sure col exists and replaces every empty cell with
// NotClassified.
func FillSpecies(t *table.Table, col string) {
	t.EnsureColumn(col)
	t.FillEmpty(col, NotClassified)
}

// SpeciesCandidates returns AllSpecies followed by the distinct values of
// col in first-occurrence order. col must already be filled.
func SpeciesCandidates(t *table.Table, col string) []string {
	out := []string{AllSpecies}
	for _, c := range t.Distinct(col) {
		s, _ := c.Text()
		out = append(out, s)
	}
	return out
}

// SpeciesOptions fills the species column for source and returns the
// repaired selection with the candidate options.
func SpeciesOptions(t *table.Table, source, selected string) (string, []Option) {
	col := SpeciesColumn(source)
	FillSpecies(t, col)
	candidates := SpeciesCandidates(t, col)

	opts := make([]Option, len(candidates))
	for i, c := range candidates {
		opts[i] = Option{Label: c, Value: c}
	}
	return repairSelection(selected, candidates), opts
}

// repairSelection keeps selected when it is a real candidate, otherwise
// picks the first candidate, skipping a leading NotClassified when there
// is anything after it.
func repairSelection(selected string, candidates []string) string {
	if selected != "" && selected != NotClassified && contains(candidates, selected) {
		return selected
	}
	if len(candidates) == 0 {
		return AllSpecies
	}
	if candidates[0] == NotClassified && len(candidates) > 1 {
		return candidates[1]
	}
	return candidates[0]
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// SpeciesCount is one row of the species summary.
type SpeciesCount struct {
	Species string
	Count   int
	Share   float64
}

// CountSpecies tallies col in first-occurrence order. Share is the
// fraction of all rows.
func CountSpecies(t *table.Table, col string) []SpeciesCount {
	var out []SpeciesCount
	for _, c := range t.Distinct(col) {
		s, ok := c.Text()
		if !ok {
			s = NotClassified
		}
		n := t.Count(col, c)
		out = append(out, SpeciesCount{Species: s, Count: n, Share: float64(n) / float64(t.Len())})
	}
	return out
}
