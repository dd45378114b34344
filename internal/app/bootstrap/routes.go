// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"
	"time"

	errorsfeature "github.com/dalemusser/strataqc/internal/app/features/errors"
	healthfeature "github.com/dalemusser/strataqc/internal/app/features/health"
	qcreportfeature "github.com/dalemusser/strataqc/internal/app/features/qcreport"
	"github.com/dalemusser/strataqc/internal/app/qc"
	reportstore "github.com/dalemusser/strataqc/internal/app/store/reports"
	samplestore "github.com/dalemusser/strataqc/internal/app/store/samples"
	speciesstore "github.com/dalemusser/strataqc/internal/app/store/species"
	"github.com/dalemusser/strataqc/internal/app/system/apicors"
	"github.com/dalemusser/strataqc/internal/app/system/apistats"
	"github.com/dalemusser/strataqc/internal/app/system/auth"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/middleware"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler for this WAFFLE app.
//
// Route layout:
//   - /api/qc/*       JSON API, bearer key + permissive CORS
//   - /qc/report      HTML report page
//   - /health, /ready, /readyz, /livez
//   - /metrics        Prometheus
//   - StorageLocalURL exported reports, local storage only
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	errLog := errorsfeature.NewErrorLogger(logger)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	statsRecorder := apistats.NewRecorder(reg)

	builder := qc.NewBuilder(
		samplestore.New(deps.MongoDatabase),
		speciesstore.New(deps.MongoDatabase),
		qcConfig,
		logger,
	)
	qcHandler := qcreportfeature.NewHandler(
		builder,
		reportstore.New(deps.MongoDatabase),
		deps.ReportStorage,
		statsRecorder,
		appCfg.ReportExportPrefix,
		errLog,
		logger,
	)

	r := chi.NewRouter()

	// Global middleware
	r.Use(chimw.Timeout(60 * time.Second))
	r.Use(middleware.CORSFromConfig(coreCfg))
	r.Use(middleware.SecurityHeadersFromConfig(coreCfg))

	r.Route("/api", func(r chi.Router) {
		r.Use(apicors.Middleware())
		r.Use(auth.APIKeyAuth(appCfg.APIKey, logger))
		r.Mount("/qc", qcreportfeature.APIRoutes(qcHandler))
	})
	r.Mount("/qc", qcreportfeature.PageRoutes(qcHandler))

	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))
	healthfeature.MountRootEndpoints(r, healthHandler)

	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	if appCfg.StorageType == "local" || appCfg.StorageType == "" {
		r.Handle(appCfg.StorageLocalURL+"/*", fileserver.Handler(appCfg.StorageLocalURL, appCfg.StorageLocalPath))
	}

	errorsHandler := errorsfeature.NewHandler()
	r.NotFound(errorsHandler.NotFound)
	r.MethodNotAllowed(errorsHandler.MethodNotAllowed)

	return r, nil
}
