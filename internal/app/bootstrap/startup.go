// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/strataqc/internal/app/system/qcconfig"
	"github.com/dalemusser/strataqc/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// qcConfig is loaded once in Startup and read by BuildHandler.
var qcConfig *qcconfig.Config

// Startup runs once after DB connections and indexes are ready, before
// the HTTP handler is built. It loads the QC panel configuration and
// applies the handler timeouts. A non-nil error aborts startup.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	cfg, err := qcconfig.Load(appCfg.QCConfigPath)
	if err != nil {
		logger.Error("failed to load QC config", zap.Error(err))
		return err
	}
	qcConfig = cfg

	source := "built-in defaults"
	if appCfg.QCConfigPath != "" {
		source = appCfg.QCConfigPath
	}
	logger.Info("loaded QC config",
		zap.String("source", source),
		zap.Int("plot_values", len(cfg.PlotValues)),
		zap.Int("value_from_test", len(cfg.ValueFromTest)),
		zap.Int("annotations", len(cfg.Annotations)),
	)

	timeouts.Configure(timeouts.Config{
		Medium: appCfg.TimeoutMedium,
		Long:   appCfg.TimeoutLong,
	})
	return nil
}
