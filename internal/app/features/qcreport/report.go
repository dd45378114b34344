package qcreport

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/dalemusser/strataqc/internal/app/system/echartsreport"
	"github.com/dalemusser/strataqc/internal/app/system/jsonutil"
	"github.com/dalemusser/strataqc/internal/app/system/timeouts"
	"github.com/dalemusser/strataqc/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/storage"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const htmlContentType = "text/html; charset=utf-8"

var errNoSamples = errors.New("at least one sample id is required")

// renderReport repairs the species selection, builds the panels and
// renders the page. It also returns the number of rendered panels.
func (h *Handler) renderReport(ctx context.Context, req Request, now time.Time) ([]byte, string, int, error) {
	if len(req.SampleIDs) == 0 {
		return nil, "", 0, errNoSamples
	}
	sel, _, err := h.Builder.ResolveSpecies(ctx, req.SampleIDs, req.SpeciesSource, req.SelectedSpecies)
	if err != nil {
		return nil, "", 0, err
	}
	res, err := h.Builder.BuildQCFigure(ctx, sel, req.SampleIDs, req.SpeciesSource)
	if err != nil {
		return nil, "", 0, err
	}
	h.Stats.ObservePanels(res.PanelsRendered)

	var buf bytes.Buffer
	err = echartsreport.Render(&buf, echartsreport.Report{
		Species:     sel,
		Source:      req.SpeciesSource,
		Panels:      res.Panels,
		Hierarchy:   res.Hierarchy,
		Summary:     res.Summary,
		Bounds:      res.Bounds,
		GeneratedAt: now,
	})
	if err != nil {
		return nil, "", 0, err
	}
	return buf.Bytes(), sel, res.PanelsRendered, nil
}

// report handles GET /qc/report?sample_id=..&species_source=..&species=..
func (h *Handler) report(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	src, ok := normalizeSource(q.Get("species_source"))
	if !ok {
		http.Error(w, "species_source must be provided or detected", http.StatusBadRequest)
		return
	}
	req := Request{SampleIDs: q["sample_id"], SpeciesSource: src, SelectedSpecies: q.Get("species")}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Long(), h.Log, "qc report")
	defer cancel()

	page, _, _, err := h.renderReport(ctx, req, time.Now().UTC())
	if errors.Is(err, errNoSamples) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		h.logError(r, "render qc report failed", err)
		http.Error(w, "failed to render report", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", htmlContentType)
	_, _ = w.Write(page)
}

// export handles POST /api/qc/report/export. The rendered page goes to
// {prefix}/YYYY/MM/{uuid}.html and a snapshot document is recorded.
func (h *Handler) export(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRequest(w, r)
	if !ok {
		return
	}
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Long(), h.Log, "qc export")
	defer cancel()

	now := time.Now().UTC()
	page, sel, panels, err := h.renderReport(ctx, req, now)
	if errors.Is(err, errNoSamples) {
		jsonutil.BadRequest(w, err.Error())
		return
	}
	if err != nil {
		h.logError(r, "render qc report failed", err)
		jsonutil.InternalError(w, "failed to render report")
		return
	}

	id := uuid.New().String()
	path := fmt.Sprintf("%s/%04d/%02d/%s.html", h.ExportPrefix, now.Year(), int(now.Month()), id)
	if err := h.Storage.PutBytes(ctx, path, page, &storage.PutOptions{ContentType: htmlContentType}); err != nil {
		h.logError(r, "store qc report failed", err)
		jsonutil.InternalError(w, "failed to store report")
		return
	}

	snap, err := h.Reports.Create(ctx, models.ReportSnapshot{
		SnapshotID:     id,
		Species:        sel,
		SpeciesSource:  req.SpeciesSource,
		SampleIDs:      req.SampleIDs,
		StoragePath:    path,
		URL:            h.Storage.URL(path),
		PanelsRendered: panels,
		CreatedAt:      now,
	})
	if err != nil {
		// Remove the orphaned page.
		_ = h.Storage.Delete(ctx, path)
		h.logError(r, "record report snapshot failed", err)
		jsonutil.InternalError(w, "failed to record snapshot")
		return
	}
	if h.Log != nil {
		h.Log.Info("qc report exported",
			zap.String("snapshot_id", id),
			zap.String("path", path),
			zap.Int("samples", len(req.SampleIDs)))
	}
	jsonutil.Created(w, snap)
}
