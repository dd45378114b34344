package bootstrap

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

func validAppConfig() AppConfig {
	return AppConfig{
		MongoURI:      "mongodb://localhost:27017",
		MongoDatabase: "strataqc",
		StorageType:   "local",
	}
}

func TestValidateConfig(t *testing.T) {
	badQC := filepath.Join(t.TempDir(), "qc.yaml")
	if err := os.WriteFile(badQC, []byte("plot_values:\n  - id: a\n    limits: [0, 1]\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		mutate  func(*AppConfig)
		wantErr bool
	}{
		{"defaults", func(*AppConfig) {}, false},
		{"unknown storage", func(c *AppConfig) { c.StorageType = "ftp" }, true},
		{"s3 without bucket", func(c *AppConfig) { c.StorageType = "s3" }, true},
		{"s3 with bucket", func(c *AppConfig) { c.StorageType = "s3"; c.StorageS3Bucket = "qc-reports" }, false},
		{"missing qc config", func(c *AppConfig) { c.QCConfigPath = filepath.Join(t.TempDir(), "none.yaml") }, true},
		{"invalid qc config", func(c *AppConfig) { c.QCConfigPath = badQC }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validAppConfig()
			tt.mutate(&cfg)
			err := ValidateConfig(nil, cfg, zap.NewNop())
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
