// Package qcconfig holds the configuration that drives the QC panels: the
// ordered plot-value descriptors, the compound "a:b:c" test fields, and the
// fixed threshold annotations. Defaults live in defaults.go; a YAML file can
// replace any of the three sections.
package qcconfig

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// PanelRows is the number of stacked subplot rows in the QC figure.
const PanelRows = 7

// PlotValueCount is the number of descriptors the panel layout expects.
const PlotValueCount = 8

// Bound names let an annotation take its x position from the species
// QC bounds instead of a fixed value.
const (
	BoundMinLength = "min_length"
	BoundMaxLength = "max_length"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid qc config")

// PlotValue describes one metric to be boxed.
type PlotValue struct {
	ID     string    `yaml:"id"     json:"id"`
	Name   string    `yaml:"name"   json:"name"`
	Limits []float64 `yaml:"limits" json:"limits"`
}

// Low is the configured lower limit.
func (p PlotValue) Low() float64 { return p.Limits[0] }

// High is the configured upper limit.
func (p PlotValue) High() float64 { return p.Limits[1] }

// Annotation is a static calibration mark on one panel row.
// When Bound is set, X is ignored and the species bound is used.
type Annotation struct {
	Row   int     `yaml:"row"             json:"row"`
	X     float64 `yaml:"x"               json:"x"`
	Bound string  `yaml:"bound,omitempty" json:"bound,omitempty"`
	Y     float64 `yaml:"y"               json:"y"`
	Text  string  `yaml:"text"            json:"text"`
}

// Config is the full QC panel configuration.
type Config struct {
	PlotValues    []PlotValue  `yaml:"plot_values"     json:"plot_values"`
	ValueFromTest []string     `yaml:"value_from_test" json:"value_from_test"`
	Annotations   []Annotation `yaml:"annotations"     json:"annotations"`
}

// Load returns Default() when path is empty, otherwise the parsed file.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read qc config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults; sections absent from the document
// keep their default values. The result is validated.
func Parse(data []byte) (*Config, error) {
	var doc Config
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	cfg := Default()
	if doc.PlotValues != nil {
		cfg.PlotValues = doc.PlotValues
	}
	if doc.ValueFromTest != nil {
		cfg.ValueFromTest = doc.ValueFromTest
	}
	if doc.Annotations != nil {
		cfg.Annotations = doc.Annotations
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the invariants the figure builder relies on.
func (c *Config) Validate() error {
	if len(c.PlotValues) != PlotValueCount {
		return fmt.Errorf("%w: want %d plot values, got %d", ErrInvalid, PlotValueCount, len(c.PlotValues))
	}
	seen := make(map[string]bool, len(c.PlotValues))
	for i, pv := range c.PlotValues {
		if pv.ID == "" {
			return fmt.Errorf("%w: plot value %d has no id", ErrInvalid, i)
		}
		if seen[pv.ID] {
			return fmt.Errorf("%w: duplicate plot value id %q", ErrInvalid, pv.ID)
		}
		seen[pv.ID] = true
		if len(pv.Limits) != 2 {
			return fmt.Errorf("%w: plot value %q needs exactly 2 limits", ErrInvalid, pv.ID)
		}
		if pv.Low() >= pv.High() {
			return fmt.Errorf("%w: plot value %q has low limit >= high limit", ErrInvalid, pv.ID)
		}
	}
	for i, a := range c.Annotations {
		if a.Row < 1 || a.Row > PanelRows {
			return fmt.Errorf("%w: annotation %d row %d out of range", ErrInvalid, i, a.Row)
		}
		switch a.Bound {
		case "", BoundMinLength, BoundMaxLength:
		default:
			return fmt.Errorf("%w: annotation %d has unknown bound %q", ErrInvalid, i, a.Bound)
		}
	}
	return nil
}

// RowOf returns the 1-based panel row for descriptor i. The first two
// descriptors share row 1; descriptor i >= 2 sits on row i.
func RowOf(i int) int {
	if i < 2 {
		return 1
	}
	return i
}
