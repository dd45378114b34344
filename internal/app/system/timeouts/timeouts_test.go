package timeouts

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestConfigure(t *testing.T) {
	t.Cleanup(Reset)

	Configure(Config{Medium: 3 * time.Second})
	if Medium() != 3*time.Second {
		t.Errorf("Medium() = %v, want 3s", Medium())
	}
	if Ping() != DefaultPing || Long() != DefaultLong {
		t.Errorf("zero fields should keep defaults: %+v", Current())
	}

	Reset()
	if Medium() != DefaultMedium {
		t.Errorf("Reset() Medium = %v, want %v", Medium(), DefaultMedium)
	}
}

func TestWithTimeout_LogsDeadline(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	ctx, cancel := WithTimeout(context.Background(), time.Millisecond, zap.New(core), "render")
	<-ctx.Done()
	cancel()

	if logs.Len() != 1 || logs.All()[0].Message != "operation timed out" {
		t.Errorf("logs = %v", logs.All())
	}
}
