package logging

import (
	"context"
	"testing"

	"go.uber.org/zap"
)

func TestLogAuditEvent(t *testing.T) {
	payload := captureLogOutput(t, func(*zap.Logger) {
		LogAuditEvent(context.Background(),
			"create", "validation-api", "validation_task", "task-123", "success",
			map[string]any{"submitted": 2},
		)
	})

	if got := payload["message"]; got != "Audit event" {
		t.Fatalf("expected message 'Audit event', got %v", got)
	}
	if got := payload["audit.action"]; got != "create" {
		t.Errorf("audit.action = %v", got)
	}
	if got := payload["audit.actor"]; got != "validation-api" {
		t.Errorf("audit.actor = %v", got)
	}
	if got := payload["audit.resource_type"]; got != "validation_task" {
		t.Errorf("audit.resource_type = %v", got)
	}
	if got := payload["audit.resource_id"]; got != "task-123" {
		t.Errorf("audit.resource_id = %v", got)
	}
	if got := payload["audit.result"]; got != "success" {
		t.Errorf("audit.result = %v", got)
	}
	details, ok := payload["audit.details"].(map[string]any)
	if !ok || details["submitted"] != float64(2) {
		t.Errorf("audit.details = %v", payload["audit.details"])
	}
}

func TestLogAuditEventNilDetails(t *testing.T) {
	payload := captureLogOutput(t, func(*zap.Logger) {
		LogAuditEvent(context.Background(),
			"update", "task-runner", "validation_task", "task-456", "failure", nil)
	})

	if got := payload["audit.result"]; got != "failure" {
		t.Errorf("audit.result = %v", got)
	}
}
