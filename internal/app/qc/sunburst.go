package qc

import (
	"strings"

	"github.com/dalemusser/strataqc/internal/app/qc/figure"
	"github.com/dalemusser/strataqc/internal/app/system/table"
)

// RootID is the id and label of the sunburst root.
const RootID = "samples"

// unknownText stands in for a null species or strain inside text.
const unknownText = "unknown"

// Node is one sunburst segment. Label and ID are null for a null species.
type Node struct {
	ID     figure.Label
	Label  figure.Label
	Parent figure.Label
	Value  int
}

// Hierarchy is the flattened sunburst tree: the root first, then each
// species node followed by its strain leaves.
type Hierarchy []Node

// ShortSpecies abbreviates a binomial name to "G. epithet". One-word names
// are returned unchanged.
func ShortSpecies(species string) string {
	words := strings.Split(species, " ")
	if len(words) == 1 || words[0] == "" {
		return species
	}
	first := []rune(words[0])
	return string(first[0]) + ". " + strings.Join(words[1:], " ")
}

// BuildHierarchy builds the species to strain counts. ok is false when the
// species or strain column is absent.
func BuildHierarchy(t *table.Table) (h Hierarchy, ok bool) {
	if !t.Has(SunburstSpeciesColumn) || !t.Has(StrainColumn) {
		return nil, false
	}
	h = Hierarchy{{ID: figure.Text(RootID), Label: figure.Text(RootID), Parent: figure.Text(""), Value: t.Len()}}
	for _, sp := range t.Distinct(SunburstSpeciesColumn) {
		name, named := sp.Text()
		short := figure.Label{}
		if named {
			short = figure.Text(ShortSpecies(name))
		} else {
			name = unknownText
		}

		group := t.Equal(SunburstSpeciesColumn, sp)
		h = append(h, Node{ID: short, Label: short, Parent: figure.Text(RootID), Value: group.Len()})

		var order []string
		counts := make(map[string]int)
		for i := 0; i < group.Len(); i++ {
			s := joinStrains(group.Cell(i, StrainColumn))
			if _, seen := counts[s]; !seen {
				order = append(order, s)
			}
			counts[s]++
		}
		for _, s := range order {
			h = append(h, Node{
				ID:     figure.Text(name + "-" + s),
				Label:  figure.Text(s),
				Parent: short,
				Value:  counts[s],
			})
		}
	}
	return h, true
}

// joinStrains renders a strain list as one display string. An empty cell
// counts as a single null strain.
func joinStrains(c table.Cell) string {
	v, ok := c.Value()
	if !ok {
		return unknownText
	}
	list, isList := v.([]any)
	if !isList {
		list = []any{v}
	}
	if len(list) == 0 {
		return ""
	}
	parts := make([]string, len(list))
	for i, e := range list {
		if e == nil {
			parts[i] = unknownText
			continue
		}
		parts[i], _ = table.ValueCell(e).Text()
	}
	return strings.Join(parts, ", ")
}

// Sunburst converts h into a figure trace.
func (h Hierarchy) Sunburst() figure.Sunburst {
	sb := figure.Sunburst{
		BranchValues:    "total",
		OutsideTextFont: figure.Font{Size: 20, Color: "#377eb8"},
		Marker:          figure.SunburstMarker{Line: figure.Line{Width: 2}},
	}
	for _, n := range h {
		sb.IDs = append(sb.IDs, n.ID)
		sb.Labels = append(sb.Labels, n.Label)
		sb.Parents = append(sb.Parents, n.Parent)
		sb.Values = append(sb.Values, n.Value)
	}
	return sb
}

// Figure wraps h in a sunburst figure with zero margins.
func (h Hierarchy) Figure() figure.Figure {
	return figure.Figure{
		Data:   []figure.Trace{h.Sunburst()},
		Layout: &figure.Layout{Margin: &figure.Margin{}},
	}
}

// BuildSpeciesStrainSunburst returns the sunburst figure for t, or an empty
// figure when the species or strain column is absent.
func BuildSpeciesStrainSunburst(t *table.Table) figure.Figure {
	h, ok := BuildHierarchy(t)
	if !ok {
		return figure.Empty()
	}
	return h.Figure()
}
