package logger

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/skillwaves/skillwaves-server/internal/constant"
)

func TestGetLoggerFromContext(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	restore := zap.ReplaceGlobals(zap.New(core))
	defer restore()

	t.Run("carries the correlation id stamped on the context", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), constant.CorrelationIDKey, "cid-42")
		GetLoggerFromContext(ctx).Info("upstream failed")

		entries := logs.TakeAll()
		if len(entries) != 1 {
			t.Fatalf("got %d log entries, want 1", len(entries))
		}
		fields := entries[0].ContextMap()
		if got := fields["correlation_id"]; got != "cid-42" {
			t.Errorf("correlation_id = %v, want %q", got, "cid-42")
		}
	})

	t.Run("bare context logs without the field", func(t *testing.T) {
		GetLoggerFromContext(context.Background()).Info("no request scope")

		entries := logs.TakeAll()
		if len(entries) != 1 {
			t.Fatalf("got %d log entries, want 1", len(entries))
		}
		if _, ok := entries[0].ContextMap()["correlation_id"]; ok {
			t.Error("correlation_id present on a context without one")
		}
	})
}

func TestWithError(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	WithError(logger, errors.New("primary unreachable")).Error("ping failed")

	entries := logs.TakeAll()
	if len(entries) != 1 {
		t.Fatalf("got %d log entries, want 1", len(entries))
	}
	if got := entries[0].ContextMap()["error"]; got != "primary unreachable" {
		t.Errorf("error field = %v, want %q", got, "primary unreachable")
	}
}
