// internal/app/bootstrap/hooks.go
package bootstrap

import (
	"github.com/dalemusser/waffle/app"
)

// Hooks wires this app into the WAFFLE lifecycle.
// app.Run calls them in order: config, DB setup, one-time startup work,
// HTTP handler construction, and graceful shutdown.
var Hooks = app.Hooks[AppConfig, DBDeps]{
	Name:           "strataqc",     // used only for logging/diagnostics
	LoadConfig:     LoadConfig,     // load core + app config
	ValidateConfig: ValidateConfig, // validate MongoDB URI, storage and QC config
	ConnectDB:      ConnectDB,      // connect to MongoDB and file storage
	EnsureSchema:   EnsureSchema,   // create indexes
	Startup:        Startup,        // load QC config, apply timeouts
	BuildHandler:   BuildHandler,   // build the HTTP router + middleware stack
	Shutdown:       Shutdown,       // disconnect MongoDB on shutdown
}
