package timeouts_test

import (
	"context"
	"testing"
	"time"

	"github.com/dalemusser/activityboard/internal/app/system/timeouts"
	"go.uber.org/zap"
)

func TestDefaults(t *testing.T) {
	timeouts.Reset()
	if timeouts.Ping() != timeouts.DefaultPing || timeouts.Short() != timeouts.DefaultShort || timeouts.Medium() != timeouts.DefaultMedium {
		t.Error("Reset should restore defaults")
	}
}

func TestConfigure_IgnoresZero(t *testing.T) {
	t.Cleanup(timeouts.Reset)
	timeouts.Configure(timeouts.Config{Short: time.Second})
	if timeouts.Short() != time.Second {
		t.Errorf("Short = %v, want 1s", timeouts.Short())
	}
	if timeouts.Ping() != timeouts.DefaultPing {
		t.Errorf("Ping = %v, want default", timeouts.Ping())
	}
}

func TestWithTimeout_Expires(t *testing.T) {
	ctx, cancel := timeouts.WithTimeout(context.Background(), time.Millisecond, zap.NewNop(), "test")
	defer cancel()
	<-ctx.Done()
	if ctx.Err() != context.DeadlineExceeded {
		t.Errorf("ctx.Err() = %v, want DeadlineExceeded", ctx.Err())
	}
}
