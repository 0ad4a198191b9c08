package tasks

import (
	"context"
	"errors"
	"time"

	"github.com/faang-dcc/validator-api/internal/validation"
)

// Service errors
var ErrNotFound = errors.New("validation task not found")

// Status is the lifecycle state of a validation task.
type Status string

const (
	StatusPending   Status = "pending"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Task is one asynchronous validation run.
type Task struct {
	ID              string
	Status          Status
	SubmittedCounts map[string]int // records per type at submission time
	Result          *validation.Result
	Error           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Service defines validation task persistence.
type Service interface {
	Create(ctx context.Context, submittedCounts map[string]int) (*Task, error)
	Get(ctx context.Context, taskID string) (*Task, error)
	// List returns tasks newest first. cursor is an opaque token from a
	// previous call; empty starts at the newest task.
	List(ctx context.Context, limit int, cursor string) ([]*Task, string, error)
	MarkRunning(ctx context.Context, taskID string) error
	Complete(ctx context.Context, taskID string, result *validation.Result) error
	Fail(ctx context.Context, taskID string, message string) error
}
