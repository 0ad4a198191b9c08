package logging

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
)

func TestLoggerFromContextFallsBackToGlobal(t *testing.T) {
	resetLoggerForTest()

	if got := LoggerFromContext(context.Background()); got != Logger() {
		t.Fatal("expected global logger for a bare context")
	}
	if got := LoggerFromContext(nil); got != Logger() { //nolint:staticcheck // nil context fallback is intentional
		t.Fatal("expected global logger for a nil context")
	}
}

func TestLoggerFromContextReturnsScopedLogger(t *testing.T) {
	resetLoggerForTest()

	scoped := Logger().With(zap.String("request_id", "abc"))
	ctx := contextWithLogger(context.Background(), scoped)

	if got := LoggerFromContext(ctx); got != scoped {
		t.Fatal("expected the request-scoped logger")
	}
}

func TestTraceIDFromContext(t *testing.T) {
	if got := TraceIDFromContext(context.Background()); got != nil {
		t.Fatalf("expected nil trace ID, got %v", *got)
	}

	ctx := contextWithTraceID(context.Background(), "trace-123")
	got := TraceIDFromContext(ctx)
	if got == nil || *got != "trace-123" {
		t.Fatalf("expected trace-123, got %v", got)
	}
}

func TestContextWithTraceIDEmptyIsNoop(t *testing.T) {
	ctx := contextWithTraceID(context.Background(), "")
	if got := TraceIDFromContext(ctx); got != nil {
		t.Fatalf("expected nil trace ID for empty input, got %v", *got)
	}
}

func TestLogErrorAttachesErrorField(t *testing.T) {
	payload := captureLogOutput(t, func(*zap.Logger) {
		LogError(context.Background(), "task failed", errors.New("boom"))
	})

	if got := payload["severity"]; got != "ERROR" {
		t.Fatalf("expected severity ERROR, got %v", got)
	}
	if got, ok := payload["error"].(string); !ok || got != "boom" {
		t.Fatalf("expected error field 'boom', got %v", payload["error"])
	}
}

func TestLogErrorWithoutError(t *testing.T) {
	payload := captureLogOutput(t, func(*zap.Logger) {
		LogError(context.Background(), "task failed", nil)
	})

	if _, exists := payload["error"]; exists {
		t.Fatal("did not expect an error field when err is nil")
	}
}

func TestLogInfoUsesScopedLogger(t *testing.T) {
	payload := captureLogOutput(t, func(l *zap.Logger) {
		ctx := contextWithLogger(context.Background(), l.With(zap.String("request_id", "req-1")))
		LogInfo(ctx, "hello")
	})

	if got, ok := payload["request_id"].(string); !ok || got != "req-1" {
		t.Fatalf("expected request_id 'req-1', got %v", payload["request_id"])
	}
}

func TestLogWarnSeverity(t *testing.T) {
	payload := captureLogOutput(t, func(*zap.Logger) {
		LogWarn(context.Background(), "slow upstream")
	})

	if got := payload["severity"]; got != "WARNING" {
		t.Fatalf("expected severity WARNING, got %v", got)
	}
}
