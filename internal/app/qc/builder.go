package qc

import (
	"context"
	"fmt"

	"github.com/dalemusser/strataqc/internal/app/qc/figure"
	"github.com/dalemusser/strataqc/internal/app/system/qcconfig"
	"github.com/dalemusser/strataqc/internal/app/system/table"
	"github.com/dalemusser/strataqc/internal/domain/models"
	"go.uber.org/zap"
)

// SampleSource fetches sample records by id. projection names top-level
// fields to return; empty means everything.
type SampleSource interface {
	FilterAll(ctx context.Context, ids []string, projection ...string) ([]table.Doc, error)
}

// SpeciesLookup returns the QC bounds of a species.
type SpeciesLookup interface {
	QCValues(ctx context.Context, organism string) (models.SpeciesQC, error)
}

// Builder produces the QC views for a sample set.
type Builder struct {
	Samples SampleSource
	Species SpeciesLookup
	Config  *qcconfig.Config
	Log     *zap.Logger
}

// NewBuilder returns a Builder. A nil cfg uses qcconfig.Default().
func NewBuilder(samples SampleSource, species SpeciesLookup, cfg *qcconfig.Config, logger *zap.Logger) *Builder {
	if cfg == nil {
		cfg = qcconfig.Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Builder{Samples: samples, Species: species, Config: cfg, Log: logger}
}

// Result is the output of BuildQCFigure.
type Result struct {
	Figure         figure.Figure
	Sunburst       figure.Figure
	PanelsRendered int

	// Selected is the species the panels were built for.
	Selected string
	// Panels holds the rendered metrics in descriptor order.
	Panels []Panel
	// Hierarchy is nil when the sunburst columns are absent.
	Hierarchy Hierarchy
	// Summary counts the samples per resolved species.
	Summary []SpeciesCount
	Bounds  Bounds
}

// ResolveSpecies loads the sample properties and returns the repaired
// species selection with the dropdown options.
func (b *Builder) ResolveSpecies(ctx context.Context, ids []string, source, selected string) (string, []Option, error) {
	t := table.New()
	if len(ids) > 0 {
		docs, err := b.Samples.FilterAll(ctx, ids, "properties")
		if err != nil {
			return "", nil, fmt.Errorf("load samples: %w", err)
		}
		t = table.FromDocs(docs)
	}
	sel, opts := SpeciesOptions(t, source, selected)
	return sel, opts, nil
}

// PrepareTable flattens docs, fills the species column for source and
// derives the compound test value columns.
func (b *Builder) PrepareTable(docs []table.Doc, source string) *table.Table {
	t := table.FromDocs(docs)
	t.EnsureColumn(ProvidedSpeciesColumn)
	FillSpecies(t, SpeciesColumn(source))
	SplitTestValues(t, b.Config.ValueFromTest)
	return t
}

// BuildQCFigure builds the box-plot panels for selected and the sunburst
// of the whole sample set. With no ids both figures are empty and nothing
// is loaded.
func (b *Builder) BuildQCFigure(ctx context.Context, selected string, ids []string, source string) (Result, error) {
	if len(ids) == 0 {
		return Result{Figure: figure.Empty(), Sunburst: figure.Empty(), Selected: selected}, nil
	}
	docs, err := b.Samples.FilterAll(ctx, ids)
	if err != nil {
		return Result{}, fmt.Errorf("load samples: %w", err)
	}
	t := b.PrepareTable(docs, source)
	col := SpeciesColumn(source)

	res := Result{Selected: selected, Summary: CountSpecies(t, col)}
	if h, ok := BuildHierarchy(t); ok {
		res.Hierarchy = h
		res.Sunburst = h.Figure()
	} else {
		res.Sunburst = figure.Empty()
	}

	if rows, ok := SelectSpecies(t, col, selected); ok {
		res.Panels = BuildPanels(rows, b.Config.PlotValues)
	}
	res.PanelsRendered = len(res.Panels)
	if res.PanelsRendered < len(b.Config.PlotValues) {
		b.Log.Debug("partial qc figure",
			zap.String("species", selected),
			zap.Int("panels", res.PanelsRendered),
			zap.Int("expected", len(b.Config.PlotValues)))
	}

	sp, err := b.Species.QCValues(ctx, selected)
	if err != nil {
		return Result{}, fmt.Errorf("species qc values: %w", err)
	}
	res.Bounds = Bounds{MinLength: sp.MinLength, MaxLength: sp.MaxLength}
	res.Figure = AssembleFigure(selected, res.Panels, b.Config.Annotations, res.Bounds)
	return res, nil
}
