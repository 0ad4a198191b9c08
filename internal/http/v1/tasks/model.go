package tasks

import (
	"github.com/faang-dcc/validator-api/internal/platform/timeutil"
	taskssvc "github.com/faang-dcc/validator-api/internal/service/tasks"
	"github.com/faang-dcc/validator-api/internal/validation"
)

// Task represents a validation task response.
type Task struct {
	ID        string             `json:"id"                  doc:"Unique task identifier"            example:"6e1f6f7e-1df5-4b86-9a0f-51e2e45a1fd1"`
	Status    string             `json:"status"              doc:"Task lifecycle state"              example:"completed" enum:"pending,running,completed,failed"`
	Submitted map[string]int     `json:"submitted,omitempty" doc:"Record counts per sample type at submission"`
	Result    *validation.Result `json:"result,omitempty"    doc:"Validation result, present once completed"`
	Error     string             `json:"error,omitempty"     doc:"Failure message, present when failed"`
	CreatedAt timeutil.Time      `json:"createdAt"           doc:"Creation timestamp"                example:"2024-01-15T10:30:00.000Z"`
	UpdatedAt timeutil.Time      `json:"updatedAt"           doc:"Last update timestamp"             example:"2024-01-15T10:30:00.000Z"`
}

func toHTTPTask(t *taskssvc.Task) Task {
	return Task{
		ID:        t.ID,
		Status:    string(t.Status),
		Submitted: t.SubmittedCounts,
		Result:    t.Result,
		Error:     t.Error,
		CreatedAt: timeutil.Time{Time: t.CreatedAt},
		UpdatedAt: timeutil.Time{Time: t.UpdatedAt},
	}
}
