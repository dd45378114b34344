// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig covers ports, TLS, logging, CORS and DB timeouts.
// Everything specific to the QC service lives here and is passed to the
// lifecycle hooks.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Maximum connections in pool (default: 100)
	MongoMinPoolSize uint64 // Minimum connections to keep warm (default: 10)

	// Bearer key for /api/* routes. Empty rejects every API request.
	APIKey string

	// File storage for exported reports
	StorageType      string // Storage backend: "local" or "s3"
	StorageLocalPath string // Local storage path (e.g., "./exports")
	StorageLocalURL  string // URL prefix for serving local files (e.g., "/files")

	// S3/CloudFront configuration (only used if StorageType is "s3")
	StorageS3Region    string
	StorageS3Bucket    string
	StorageS3Prefix    string
	StorageCFURL       string
	StorageCFKeyPairID string
	StorageCFKeyPath   string

	// QC panels
	QCConfigPath       string // Optional YAML overriding plot values, test fields and annotations
	ReportExportPrefix string // Storage folder for exported reports (default: reports)

	// Handler timeouts
	TimeoutMedium time.Duration // Figure and species requests
	TimeoutLong   time.Duration // Report rendering and export
}
