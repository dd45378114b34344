package health

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/dalemusser/strataqc/internal/testutil"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

type fakePinger struct{ err error }

func (f fakePinger) Ping(context.Context, *readpref.ReadPref) error { return f.err }

func TestHandler_Check(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := NewHandler(db.Client(), zap.NewNop())

	rec := testutil.NewRecorder()
	h.Check(rec, testutil.NewRequest(http.MethodGet, "/health"))

	rec.AssertStatus(t, http.StatusOK)
	var resp Response
	rec.DecodeJSON(t, &resp)
	if resp.Status != "ok" {
		t.Errorf("response status = %q, want %q", resp.Status, "ok")
	}
	if resp.Services["mongodb"] != "ok" {
		t.Errorf("mongodb status = %q, want %q", resp.Services["mongodb"], "ok")
	}
}

func TestHandler_CheckDegraded(t *testing.T) {
	h := NewHandler(fakePinger{err: errors.New("down")}, zap.NewNop())

	rec := testutil.NewRecorder()
	h.Check(rec, testutil.NewRequest(http.MethodGet, "/health"))

	rec.AssertStatus(t, http.StatusServiceUnavailable)
	var resp Response
	rec.DecodeJSON(t, &resp)
	if resp.Status != "degraded" || resp.Services["mongodb"] != "unavailable" {
		t.Errorf("response = %+v", resp)
	}
}

func TestHandler_Ready(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{"up", nil, http.StatusOK, `"ready"`},
		{"down", errors.New("timeout"), http.StatusServiceUnavailable, `"not ready"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(fakePinger{err: tt.err}, zap.NewNop())
			rec := testutil.NewRecorder()
			h.Ready(rec, testutil.NewRequest(http.MethodGet, "/ready"))
			rec.AssertStatus(t, tt.status)
			rec.AssertContains(t, tt.body)
		})
	}
}

func TestHandler_Live(t *testing.T) {
	// Live never touches the database.
	h := NewHandler(nil, zap.NewNop())

	rec := testutil.NewRecorder()
	h.Live(rec, testutil.NewRequest(http.MethodGet, "/livez"))

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, `"alive"`)
}

func TestMountRootEndpoints(t *testing.T) {
	r := chi.NewRouter()
	MountRootEndpoints(r, NewHandler(fakePinger{}, zap.NewNop()))

	for _, path := range []string{"/ready", "/readyz", "/livez"} {
		t.Run(path, func(t *testing.T) {
			rec := testutil.NewRecorder()
			r.ServeHTTP(rec, testutil.NewRequest(http.MethodGet, path))
			rec.AssertStatus(t, http.StatusOK)
		})
	}
}

func TestRoutes(t *testing.T) {
	r := Routes(NewHandler(fakePinger{}, zap.NewNop()))

	rec := testutil.NewRecorder()
	r.ServeHTTP(rec, testutil.NewRequest(http.MethodGet, "/live"))
	rec.AssertStatus(t, http.StatusOK)
}
