// Package timeouts holds the handler timeouts shared by the QC endpoints.
package timeouts

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Default timeout values (used if Configure is not called).
const (
	DefaultPing   = 2 * time.Second
	DefaultMedium = 10 * time.Second
	DefaultLong   = 30 * time.Second
)

// Config holds timeout configuration values. Zero fields keep the
// current value.
type Config struct {
	Ping   time.Duration
	Medium time.Duration
	Long   time.Duration
}

var (
	mu  sync.RWMutex
	cur = Config{Ping: DefaultPing, Medium: DefaultMedium, Long: DefaultLong}
)

// Ping is used by health checks.
func Ping() time.Duration { return Current().Ping }

// Medium is used for species and figure requests.
func Medium() time.Duration { return Current().Medium }

// Long is used for report rendering and export.
func Long() time.Duration { return Current().Long }

// Current returns the active configuration.
func Current() Config {
	mu.RLock()
	defer mu.RUnlock()
	return cur
}

// Configure sets custom timeout values.
func Configure(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	if cfg.Ping > 0 {
		cur.Ping = cfg.Ping
	}
	if cfg.Medium > 0 {
		cur.Medium = cfg.Medium
	}
	if cfg.Long > 0 {
		cur.Long = cfg.Long
	}
}

// Reset restores the defaults.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	cur = Config{Ping: DefaultPing, Medium: DefaultMedium, Long: DefaultLong}
}

// WithTimeout creates a context with timeout and logs when the deadline
// was hit by the time cancel is called.
func WithTimeout(parent context.Context, timeout time.Duration, log *zap.Logger, operation string) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(parent, timeout)
	return ctx, func() {
		if ctx.Err() == context.DeadlineExceeded && log != nil {
			log.Warn("operation timed out",
				zap.String("operation", operation),
				zap.Duration("timeout", timeout),
			)
		}
		cancel()
	}
}
