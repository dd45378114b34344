// Package apistats provides Prometheus instrumentation for the QC API.
package apistats

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// StatType identifies the API operation being measured.
type StatType string

// Stat types for the QC endpoints.
const (
	StatSpecies  StatType = "qc_species"
	StatFigure   StatType = "qc_figure"
	StatReport   StatType = "qc_report"
	StatExport   StatType = "qc_export"
	StatSnapshot StatType = "qc_snapshots"
)

const namespace = "strataqc"

// Recorder holds the request and panel metrics. It is safe for concurrent use.
type Recorder struct {
	requests *prometheus.CounterVec
	errors   *prometheus.CounterVec
	duration *prometheus.HistogramVec
	panels   prometheus.Histogram
}

// NewRecorder creates the metrics and registers them with reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "api_requests_total",
			Help:      "API requests by operation and status code.",
		}, []string{"stat_type", "code"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "api_errors_total",
			Help:      "API requests that ended with a 4xx or 5xx status.",
		}, []string{"stat_type"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "api_request_duration_seconds",
			Help:      "API request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"stat_type"}),
		panels: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "qc_panels_rendered",
			Help:      "Box-plot panels rendered per QC figure.",
			Buckets:   prometheus.LinearBuckets(0, 1, 9),
		}),
	}
	reg.MustRegister(r.requests, r.errors, r.duration, r.panels)
	return r
}

// Record records a single API request.
func (r *Recorder) Record(statType StatType, code int, d time.Duration) {
	r.requests.WithLabelValues(string(statType), strconv.Itoa(code)).Inc()
	if code >= 400 {
		r.errors.WithLabelValues(string(statType)).Inc()
	}
	r.duration.WithLabelValues(string(statType)).Observe(d.Seconds())
}

// ObservePanels records how many panels a figure rendered. Safe on a nil
// recorder.
func (r *Recorder) ObservePanels(n int) {
	if r == nil {
		return
	}
	r.panels.Observe(float64(n))
}

// MiddlewareWithRecorder returns HTTP middleware using a shared recorder.
// If recorder is nil, stats recording is skipped (useful for testing).
func MiddlewareWithRecorder(recorder *Recorder, statType StatType) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		// If no recorder, just pass through
		if recorder == nil {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// Wrap response writer to capture status code
			wrapped := &responseWrapper{
				ResponseWriter: w,
				statusCode:     http.StatusOK,
			}

			next.ServeHTTP(wrapped, r)

			recorder.Record(statType, wrapped.statusCode, time.Since(start))
		})
	}
}

// responseWrapper wraps http.ResponseWriter to capture status code.
type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWrapper) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWrapper) Write(b []byte) (int, error) {
	return rw.ResponseWriter.Write(b)
}

// Flush implements http.Flusher.
func (rw *responseWrapper) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}
