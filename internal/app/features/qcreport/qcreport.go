// Package qcreport serves the QC API (species dropdown, figure), the HTML
// report page, and report exports to file storage.
package qcreport

import (
	"context"
	"net/http"

	errorsfeature "github.com/dalemusser/strataqc/internal/app/features/errors"
	"github.com/dalemusser/strataqc/internal/app/qc"
	"github.com/dalemusser/strataqc/internal/app/system/apistats"
	"github.com/dalemusser/strataqc/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/storage"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// DefaultExportPrefix is the storage folder for exported reports.
const DefaultExportPrefix = "reports"

// SnapshotStore records exported reports. Satisfied by *reportstore.Store.
type SnapshotStore interface {
	Create(ctx context.Context, snap models.ReportSnapshot) (models.ReportSnapshot, error)
	ListRecent(ctx context.Context, limit int) ([]models.ReportSnapshot, error)
}

// Handler provides the QC handlers.
type Handler struct {
	Builder      *qc.Builder
	Reports      SnapshotStore
	Storage      storage.Store
	Stats        *apistats.Recorder
	ExportPrefix string
	ErrLog       *errorsfeature.ErrorLogger
	Log          *zap.Logger
}

// NewHandler creates a new qcreport Handler. An empty exportPrefix uses
// DefaultExportPrefix.
func NewHandler(
	builder *qc.Builder,
	reports SnapshotStore,
	store storage.Store,
	stats *apistats.Recorder,
	exportPrefix string,
	errLog *errorsfeature.ErrorLogger,
	logger *zap.Logger,
) *Handler {
	if exportPrefix == "" {
		exportPrefix = DefaultExportPrefix
	}
	return &Handler{
		Builder:      builder,
		Reports:      reports,
		Storage:      store,
		Stats:        stats,
		ExportPrefix: exportPrefix,
		ErrLog:       errLog,
		Log:          logger,
	}
}

// APIRoutes returns the JSON endpoints, mounted under /api/qc.
func APIRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.With(apistats.MiddlewareWithRecorder(h.Stats, apistats.StatSpecies)).Post("/species", h.species)
	r.With(apistats.MiddlewareWithRecorder(h.Stats, apistats.StatFigure)).Post("/figure", h.figure)
	r.With(apistats.MiddlewareWithRecorder(h.Stats, apistats.StatExport)).Post("/report/export", h.export)
	r.With(apistats.MiddlewareWithRecorder(h.Stats, apistats.StatSnapshot)).Get("/report/snapshots", h.snapshots)
	return r
}

// PageRoutes returns the HTML report page, mounted under /qc.
func PageRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.With(apistats.MiddlewareWithRecorder(h.Stats, apistats.StatReport)).Get("/report", h.report)
	return r
}

// Request is the body of the species, figure and export endpoints.
// A null selected_species decodes as "".
type Request struct {
	SampleIDs       []string `json:"sample_ids"`
	SpeciesSource   string   `json:"species_source"`
	SelectedSpecies string   `json:"selected_species"`
}

// normalizeSource defaults an empty source to provided and rejects
// anything unknown.
func normalizeSource(s string) (string, bool) {
	switch s {
	case "":
		return qc.SourceProvided, true
	case qc.SourceProvided, qc.SourceDetected:
		return s, true
	}
	return "", false
}

func (h *Handler) logError(r *http.Request, msg string, err error) {
	if h.ErrLog != nil {
		h.ErrLog.Log(r, msg, err)
	}
}
