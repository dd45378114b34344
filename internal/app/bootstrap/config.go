// internal/app/bootstrap/config.go
package bootstrap

import (
	"errors"
	"fmt"

	"github.com/dalemusser/strataqc/internal/app/system/qcconfig"
	"github.com/dalemusser/strataqc/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// EnvVarPrefix is the prefix for environment variables.
const EnvVarPrefix = "STRATAQC"

// appConfigKeys defines the configuration keys for this application.
// Each key can come from a config file (mongo_uri), the environment
// (STRATAQC_MONGO_URI) or a flag (--mongo_uri).
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "strataqc", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},

	{Name: "api_key", Default: "", Desc: "API key for /api routes (empty rejects all API requests)"},

	// File storage configuration
	{Name: "storage_type", Default: "local", Desc: "Storage backend: 'local' or 's3'"},
	{Name: "storage_local_path", Default: "./exports", Desc: "Local storage path for exported reports"},
	{Name: "storage_local_url", Default: "/files", Desc: "URL prefix for serving local files"},

	// S3/CloudFront configuration
	{Name: "storage_s3_region", Default: "", Desc: "AWS region for S3"},
	{Name: "storage_s3_bucket", Default: "", Desc: "S3 bucket name"},
	{Name: "storage_s3_prefix", Default: "strataqc/", Desc: "S3 key prefix"},
	{Name: "storage_cf_url", Default: "", Desc: "CloudFront distribution URL"},
	{Name: "storage_cf_keypair_id", Default: "", Desc: "CloudFront key pair ID"},
	{Name: "storage_cf_key_path", Default: "", Desc: "Path to CloudFront private key file"},

	// QC configuration
	{Name: "qc_config_path", Default: "", Desc: "YAML file overriding the QC plot values and annotations"},
	{Name: "report_export_prefix", Default: "reports", Desc: "Storage folder for exported reports"},

	{Name: "timeout_medium", Default: "10s", Desc: "Timeout for species and figure requests"},
	{Name: "timeout_long", Default: "30s", Desc: "Timeout for report rendering and export"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// config.LoadWithAppConfig merges flags > env > files > defaults
// (WAFFLE_* for core, STRATAQC_* for app).
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, EnvVarPrefix, appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		APIKey: appValues.String("api_key"),

		StorageType:      appValues.String("storage_type"),
		StorageLocalPath: appValues.String("storage_local_path"),
		StorageLocalURL:  appValues.String("storage_local_url"),

		StorageS3Region:    appValues.String("storage_s3_region"),
		StorageS3Bucket:    appValues.String("storage_s3_bucket"),
		StorageS3Prefix:    appValues.String("storage_s3_prefix"),
		StorageCFURL:       appValues.String("storage_cf_url"),
		StorageCFKeyPairID: appValues.String("storage_cf_keypair_id"),
		StorageCFKeyPath:   appValues.String("storage_cf_key_path"),

		QCConfigPath:       appValues.String("qc_config_path"),
		ReportExportPrefix: appValues.String("report_export_prefix"),

		TimeoutMedium: appValues.Duration("timeout_medium", timeouts.DefaultMedium),
		TimeoutLong:   appValues.Duration("timeout_long", timeouts.DefaultLong),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig rejects a bad Mongo URI, an unknown storage backend, an
// S3 backend without a bucket, and an unusable QC config file.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	switch appCfg.StorageType {
	case "", "local":
	case "s3":
		if appCfg.StorageS3Bucket == "" {
			return errors.New("storage_s3_bucket is required when storage_type is s3")
		}
	default:
		return fmt.Errorf("unknown storage type: %s", appCfg.StorageType)
	}

	if _, err := qcconfig.Load(appCfg.QCConfigPath); err != nil {
		logger.Error("invalid QC config", zap.String("path", appCfg.QCConfigPath), zap.Error(err))
		return err
	}

	if appCfg.TimeoutMedium < 0 || appCfg.TimeoutLong < 0 {
		return errors.New("timeouts must not be negative")
	}
	return nil
}
