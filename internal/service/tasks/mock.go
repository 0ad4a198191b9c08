package tasks

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/faang-dcc/validator-api/internal/platform/pagination"
	"github.com/faang-dcc/validator-api/internal/validation"
)

// MockTaskService implements Service in memory for unit tests.
type MockTaskService struct {
	mu    sync.RWMutex
	tasks map[string]*Task
	clock func() time.Time
}

// NewMockTaskService creates a new mock service.
func NewMockTaskService() *MockTaskService {
	return &MockTaskService{
		tasks: make(map[string]*Task),
		clock: func() time.Time { return time.Now().UTC() },
	}
}

func (m *MockTaskService) Create(ctx context.Context, submittedCounts map[string]int) (*Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.clock()
	t := &Task{
		ID:              uuid.NewString(),
		Status:          StatusPending,
		SubmittedCounts: submittedCounts,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	m.tasks[t.ID] = t
	return copyTask(t), nil
}

func (m *MockTaskService) Get(ctx context.Context, taskID string) (*Task, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	t, exists := m.tasks[taskID]
	if !exists {
		return nil, ErrNotFound
	}
	return copyTask(t), nil
}

func (m *MockTaskService) List(ctx context.Context, limit int, cursor string) ([]*Task, string, error) {
	c, err := pagination.DecodeCursor(cursor)
	if err != nil {
		return nil, "", err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	all := make([]*Task, 0, len(m.tasks))
	for _, t := range m.tasks {
		all = append(all, t)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	start := 0
	if c.Value != "" {
		after, err := time.Parse(time.RFC3339Nano, c.Value)
		if err != nil {
			return nil, "", pagination.ErrInvalidCursor
		}
		for i, t := range all {
			if t.CreatedAt.Before(after) {
				start = i
				break
			}
			start = len(all)
		}
	}

	end := min(start+limit, len(all))
	page := make([]*Task, 0, end-start)
	for _, t := range all[start:end] {
		page = append(page, copyTask(t))
	}

	next := ""
	if end < len(all) && len(page) > 0 {
		next = pagination.Cursor{
			Type:  cursorType,
			Value: page[len(page)-1].CreatedAt.Format(time.RFC3339Nano),
		}.Encode()
	}

	return page, next, nil
}

func (m *MockTaskService) MarkRunning(ctx context.Context, taskID string) error {
	return m.update(taskID, func(t *Task) {
		t.Status = StatusRunning
	})
}

func (m *MockTaskService) Complete(ctx context.Context, taskID string, result *validation.Result) error {
	return m.update(taskID, func(t *Task) {
		t.Status = StatusCompleted
		t.Result = result
	})
}

func (m *MockTaskService) Fail(ctx context.Context, taskID string, message string) error {
	return m.update(taskID, func(t *Task) {
		t.Status = StatusFailed
		t.Error = message
	})
}

func (m *MockTaskService) update(taskID string, mutate func(*Task)) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, exists := m.tasks[taskID]
	if !exists {
		return ErrNotFound
	}
	mutate(t)
	t.UpdatedAt = m.clock()
	return nil
}

// Clear removes all tasks (useful for test cleanup).
func (m *MockTaskService) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tasks = make(map[string]*Task)
}

func copyTask(t *Task) *Task {
	c := *t
	return &c
}

// Compile-time interface check
var _ Service = (*MockTaskService)(nil)
