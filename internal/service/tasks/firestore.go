package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	applog "github.com/faang-dcc/validator-api/internal/platform/logging"
	"github.com/faang-dcc/validator-api/internal/platform/pagination"
	"github.com/faang-dcc/validator-api/internal/validation"
)

const tasksCollection = "validation_tasks"

const cursorType = "task"

// categorizeError converts errors to audit-safe categories.
func categorizeError(err error) string {
	switch {
	case errors.Is(err, ErrNotFound):
		return "not_found"
	default:
		return "internal_error"
	}
}

// firestoreTask maps to Firestore document structure. The validation
// result is stored as a JSON blob because its field names are
// user-supplied record names, which make poor Firestore field paths.
type firestoreTask struct {
	Status          string         `firestore:"status"`
	SubmittedCounts map[string]int `firestore:"submitted_counts"`
	ResultJSON      string         `firestore:"result_json"`
	Error           string         `firestore:"error"`
	CreatedAt       time.Time      `firestore:"created_at"`
	UpdatedAt       time.Time      `firestore:"updated_at"`
}

func (ft firestoreTask) toTask(id string) (*Task, error) {
	t := &Task{
		ID:              id,
		Status:          Status(ft.Status),
		SubmittedCounts: ft.SubmittedCounts,
		Error:           ft.Error,
		CreatedAt:       ft.CreatedAt,
		UpdatedAt:       ft.UpdatedAt,
	}
	if ft.ResultJSON != "" {
		var res validation.Result
		if err := json.Unmarshal([]byte(ft.ResultJSON), &res); err != nil {
			return nil, err
		}
		t.Result = &res
	}
	return t, nil
}

// FirestoreStore implements Service using Firestore with transactions.
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore creates a new Firestore-backed store.
func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

// Create registers a new pending task.
func (s *FirestoreStore) Create(ctx context.Context, submittedCounts map[string]int) (*Task, error) {
	taskID := uuid.NewString()
	docRef := s.client.Collection(tasksCollection).Doc(taskID)
	now := time.Now().UTC()

	ft := firestoreTask{
		Status:          string(StatusPending),
		SubmittedCounts: submittedCounts,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if _, err := docRef.Create(ctx, ft); err != nil {
		applog.LogAuditEvent(ctx, "create", "validation-api", "validation_task", taskID, "failure",
			map[string]any{"error": categorizeError(err)})
		return nil, err
	}

	applog.LogAuditEvent(ctx, "create", "validation-api", "validation_task", taskID, "success", nil)

	return ft.toTask(taskID)
}

// Get retrieves a task by ID.
func (s *FirestoreStore) Get(ctx context.Context, taskID string) (*Task, error) {
	docRef := s.client.Collection(tasksCollection).Doc(taskID)
	doc, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var ft firestoreTask
	if err := doc.DataTo(&ft); err != nil {
		return nil, err
	}

	return ft.toTask(taskID)
}

// List returns tasks ordered by creation time descending. The cursor
// value carries the created_at timestamp of the last task on the
// previous page.
func (s *FirestoreStore) List(ctx context.Context, limit int, cursor string) ([]*Task, string, error) {
	c, err := pagination.DecodeCursor(cursor)
	if err != nil {
		return nil, "", err
	}
	if c.Type != "" && c.Type != cursorType {
		return nil, "", pagination.ErrInvalidCursor
	}

	query := s.client.Collection(tasksCollection).
		OrderBy("created_at", firestore.Desc).
		Limit(limit)
	if c.Value != "" {
		after, err := time.Parse(time.RFC3339Nano, c.Value)
		if err != nil {
			return nil, "", pagination.ErrInvalidCursor
		}
		query = query.StartAfter(after)
	}

	var out []*Task
	iter := query.Documents(ctx)
	defer iter.Stop()
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, "", err
		}
		var ft firestoreTask
		if err := doc.DataTo(&ft); err != nil {
			return nil, "", err
		}
		t, err := ft.toTask(doc.Ref.ID)
		if err != nil {
			return nil, "", err
		}
		out = append(out, t)
	}

	next := ""
	if len(out) == limit {
		next = pagination.Cursor{
			Type:  cursorType,
			Value: out[len(out)-1].CreatedAt.Format(time.RFC3339Nano),
		}.Encode()
	}

	return out, next, nil
}

// MarkRunning transitions a pending task to running.
func (s *FirestoreStore) MarkRunning(ctx context.Context, taskID string) error {
	return s.updateStatus(ctx, taskID, StatusRunning, func(ft *firestoreTask) {})
}

// Complete stores the validation result and marks the task completed.
func (s *FirestoreStore) Complete(ctx context.Context, taskID string, result *validation.Result) error {
	blob, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return s.updateStatus(ctx, taskID, StatusCompleted, func(ft *firestoreTask) {
		ft.ResultJSON = string(blob)
	})
}

// Fail marks the task failed with a diagnostic message.
func (s *FirestoreStore) Fail(ctx context.Context, taskID string, message string) error {
	return s.updateStatus(ctx, taskID, StatusFailed, func(ft *firestoreTask) {
		ft.Error = message
	})
}

// updateStatus applies a status change inside a transaction so
// concurrent writers cannot clobber each other.
func (s *FirestoreStore) updateStatus(ctx context.Context, taskID string, to Status, mutate func(*firestoreTask)) error {
	docRef := s.client.Collection(tasksCollection).Doc(taskID)

	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(docRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return ErrNotFound
			}
			return err
		}

		var ft firestoreTask
		if err := doc.DataTo(&ft); err != nil {
			return err
		}

		ft.Status = string(to)
		mutate(&ft)
		ft.UpdatedAt = time.Now().UTC()

		return tx.Set(docRef, ft)
	})
	if err != nil {
		applog.LogAuditEvent(ctx, "update", "task-runner", "validation_task", taskID, "failure",
			map[string]any{"error": categorizeError(err), "status": string(to)})
		return err
	}

	applog.LogAuditEvent(ctx, "update", "task-runner", "validation_task", taskID, "success",
		map[string]any{"status": string(to)})

	return nil
}

// Compile-time interface check
var _ Service = (*FirestoreStore)(nil)
