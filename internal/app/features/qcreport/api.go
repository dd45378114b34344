package qcreport

import (
	"net/http"
	"strconv"

	"github.com/dalemusser/strataqc/internal/app/qc"
	"github.com/dalemusser/strataqc/internal/app/qc/figure"
	"github.com/dalemusser/strataqc/internal/app/system/jsonutil"
	"github.com/dalemusser/strataqc/internal/app/system/timeouts"
)

// SpeciesResponse is the species dropdown state.
type SpeciesResponse struct {
	SelectedSpecies string      `json:"selected_species"`
	Options         []qc.Option `json:"options"`
}

// FigureResponse carries the two plotly-style figures.
type FigureResponse struct {
	Figure         figure.Figure `json:"figure"`
	Sunburst       figure.Figure `json:"sunburst"`
	PanelsRendered int           `json:"panels_rendered"`
}

// decodeRequest reads and normalizes a Request, writing the 400 itself.
func decodeRequest(w http.ResponseWriter, r *http.Request) (Request, bool) {
	var req Request
	if err := jsonutil.Decode(w, r, &req); err != nil {
		jsonutil.BadRequest(w, err.Error())
		return Request{}, false
	}
	src, ok := normalizeSource(req.SpeciesSource)
	if !ok {
		jsonutil.BadRequest(w, "species_source must be provided or detected")
		return Request{}, false
	}
	req.SpeciesSource = src
	return req, true
}

// species handles POST /api/qc/species.
func (h *Handler) species(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRequest(w, r)
	if !ok {
		return
	}
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "qc species")
	defer cancel()

	sel, opts, err := h.Builder.ResolveSpecies(ctx, req.SampleIDs, req.SpeciesSource, req.SelectedSpecies)
	if err != nil {
		h.logError(r, "resolve species failed", err)
		jsonutil.InternalError(w, "failed to load samples")
		return
	}
	jsonutil.OK(w, SpeciesResponse{SelectedSpecies: sel, Options: opts})
}

// figure handles POST /api/qc/figure. The selection is used as given.
func (h *Handler) figure(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRequest(w, r)
	if !ok {
		return
	}
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "qc figure")
	defer cancel()

	res, err := h.Builder.BuildQCFigure(ctx, req.SelectedSpecies, req.SampleIDs, req.SpeciesSource)
	if err != nil {
		h.logError(r, "build qc figure failed", err)
		jsonutil.InternalError(w, "failed to build figure")
		return
	}
	h.Stats.ObservePanels(res.PanelsRendered)
	jsonutil.OK(w, FigureResponse{
		Figure:         res.Figure,
		Sunburst:       res.Sunburst,
		PanelsRendered: res.PanelsRendered,
	})
}

// snapshots handles GET /api/qc/report/snapshots?limit=N.
func (h *Handler) snapshots(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			jsonutil.BadRequest(w, "limit must be a non-negative integer")
			return
		}
		limit = n
	}
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "list snapshots")
	defer cancel()

	snaps, err := h.Reports.ListRecent(ctx, limit)
	if err != nil {
		h.logError(r, "list report snapshots failed", err)
		jsonutil.InternalError(w, "failed to list snapshots")
		return
	}
	jsonutil.OK(w, snaps)
}
