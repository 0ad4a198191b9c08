package tasks

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/faang-dcc/validator-api/internal/validation"
)

func TestMockTaskLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := NewMockTaskService()

	task, err := svc.Create(ctx, map[string]int{"organism": 2})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if task.ID == "" {
		t.Error("expected a generated task ID")
	}
	if task.Status != StatusPending {
		t.Errorf("Status = %q, want %q", task.Status, StatusPending)
	}
	if task.SubmittedCounts["organism"] != 2 {
		t.Errorf("SubmittedCounts = %v", task.SubmittedCounts)
	}

	if err := svc.MarkRunning(ctx, task.ID); err != nil {
		t.Fatalf("MarkRunning: %v", err)
	}
	got, err := svc.Get(ctx, task.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Status != StatusRunning {
		t.Errorf("Status = %q, want %q", got.Status, StatusRunning)
	}

	result := &validation.Result{}
	if err := svc.Complete(ctx, task.ID, result); err != nil {
		t.Fatalf("Complete: %v", err)
	}
	got, err = svc.Get(ctx, task.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Status != StatusCompleted {
		t.Errorf("Status = %q, want %q", got.Status, StatusCompleted)
	}
	if got.Result == nil {
		t.Error("expected a stored result")
	}
	if got.UpdatedAt.Before(got.CreatedAt) {
		t.Error("UpdatedAt must not precede CreatedAt")
	}
}

func TestMockTaskFail(t *testing.T) {
	ctx := context.Background()
	svc := NewMockTaskService()

	task, err := svc.Create(ctx, nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := svc.Fail(ctx, task.ID, "boom"); err != nil {
		t.Fatalf("Fail: %v", err)
	}
	got, err := svc.Get(ctx, task.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Status != StatusFailed {
		t.Errorf("Status = %q, want %q", got.Status, StatusFailed)
	}
	if got.Error != "boom" {
		t.Errorf("Error = %q", got.Error)
	}
}

func TestMockTaskNotFound(t *testing.T) {
	ctx := context.Background()
	svc := NewMockTaskService()

	if _, err := svc.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get: expected ErrNotFound, got %v", err)
	}
	if err := svc.MarkRunning(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("MarkRunning: expected ErrNotFound, got %v", err)
	}
}

func TestMockTaskListPagination(t *testing.T) {
	ctx := context.Background()
	svc := NewMockTaskService()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tick := 0
	svc.clock = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}

	var ids []string
	for i := 0; i < 5; i++ {
		task, err := svc.Create(ctx, nil)
		if err != nil {
			t.Fatalf("Create #%d: %v", i, err)
		}
		ids = append(ids, task.ID)
	}

	page, next, err := svc.List(ctx, 2, "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(page) != 2 {
		t.Fatalf("len(page) = %d, want 2", len(page))
	}
	// Newest first.
	if page[0].ID != ids[4] || page[1].ID != ids[3] {
		t.Errorf("page order = %s, %s", page[0].ID, page[1].ID)
	}
	if next == "" {
		t.Fatal("expected a next cursor")
	}

	page, next, err = svc.List(ctx, 2, next)
	if err != nil {
		t.Fatalf("List page 2: %v", err)
	}
	if len(page) != 2 || page[0].ID != ids[2] || page[1].ID != ids[1] {
		t.Fatalf("unexpected second page %v", page)
	}

	page, next, err = svc.List(ctx, 2, next)
	if err != nil {
		t.Fatalf("List page 3: %v", err)
	}
	if len(page) != 1 || page[0].ID != ids[0] {
		t.Fatalf("unexpected final page %v", page)
	}
	if next != "" {
		t.Errorf("expected no cursor past the last page, got %q", next)
	}
}

func TestMockTaskListInvalidCursor(t *testing.T) {
	svc := NewMockTaskService()
	if _, _, err := svc.List(context.Background(), 10, "%%%"); err == nil {
		t.Error("expected an error for a malformed cursor")
	}
}
