package tasks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	applog "github.com/faang-dcc/validator-api/internal/platform/logging"
	"github.com/faang-dcc/validator-api/internal/ruleset"
	"github.com/faang-dcc/validator-api/internal/validation"
)

// Broadcaster pushes task lifecycle events to connected clients.
type Broadcaster interface {
	Broadcast(event string, payload map[string]any)
}

// Task lifecycle events emitted over the websocket hub.
const (
	EventAccepted  = "task.accepted"
	EventProgress  = "task.progress"
	EventCompleted = "task.completed"
	EventFailed    = "task.failed"
)

const defaultRunTimeout = 10 * time.Minute

// Runner executes validation tasks in the background.
type Runner struct {
	tasks   Service
	engine  *validation.Engine
	events  Broadcaster
	timeout time.Duration

	wg sync.WaitGroup
}

// NewRunner creates a runner. events may be nil when no hub is attached.
func NewRunner(svc Service, engine *validation.Engine, events Broadcaster) *Runner {
	return &Runner{
		tasks:   svc,
		engine:  engine,
		events:  events,
		timeout: defaultRunTimeout,
	}
}

// Submit registers a task for the given batch and starts validating it
// in the background. The returned task is in the pending state.
func (r *Runner) Submit(ctx context.Context, data map[string][]ruleset.Record) (*Task, error) {
	counts := make(map[string]int, len(data))
	for recordType, records := range data {
		counts[recordType] = len(records)
	}

	task, err := r.tasks.Create(ctx, counts)
	if err != nil {
		return nil, err
	}

	r.broadcast(EventAccepted, map[string]any{
		"task_id":   task.ID,
		"submitted": counts,
	})

	r.wg.Add(1)
	go r.run(task.ID, data)

	return task, nil
}

// Wait blocks until all in-flight tasks have finished. Used during
// graceful shutdown and in tests.
func (r *Runner) Wait() {
	r.wg.Wait()
}

func (r *Runner) run(taskID string, data map[string][]ruleset.Record) {
	defer r.wg.Done()

	// The request context ends when the 202 response is written, so the
	// run gets its own deadline.
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	defer func() {
		if rec := recover(); rec != nil {
			applog.LogError(ctx, "Validation task panicked", nil,
				zap.String("task_id", taskID),
				zap.Any("panic", rec),
			)
			r.fail(ctx, taskID, fmt.Sprintf("internal error: %v", rec))
		}
	}()

	if err := r.tasks.MarkRunning(ctx, taskID); err != nil {
		applog.LogError(ctx, "Failed to mark task running", err,
			zap.String("task_id", taskID),
		)
		r.fail(ctx, taskID, "failed to start validation")
		return
	}

	progress := func(recordType string, summary validation.Summary) {
		r.broadcast(EventProgress, map[string]any{
			"task_id":     taskID,
			"record_type": recordType,
			"valid":       summary.Valid,
			"invalid":     summary.Invalid,
			"warnings":    summary.Warnings,
		})
	}

	result := r.engine.ValidateAll(ctx, data, progress)

	if err := r.tasks.Complete(ctx, taskID, result); err != nil {
		applog.LogError(ctx, "Failed to store task result", err,
			zap.String("task_id", taskID),
		)
		r.broadcast(EventFailed, map[string]any{
			"task_id": taskID,
			"error":   "failed to store result",
		})
		return
	}

	r.broadcast(EventCompleted, map[string]any{
		"task_id": taskID,
		"summary": result.Summary,
	})
}

func (r *Runner) fail(ctx context.Context, taskID, message string) {
	if err := r.tasks.Fail(ctx, taskID, message); err != nil {
		applog.LogError(ctx, "Failed to mark task failed", err,
			zap.String("task_id", taskID),
		)
	}
	r.broadcast(EventFailed, map[string]any{
		"task_id": taskID,
		"error":   message,
	})
}

func (r *Runner) broadcast(event string, payload map[string]any) {
	if r.events == nil {
		return
	}
	r.events.Broadcast(event, payload)
}
