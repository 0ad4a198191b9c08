package tasks

import (
	"github.com/faang-dcc/validator-api/internal/platform/pagination"
	"github.com/faang-dcc/validator-api/internal/ruleset"
)

// TaskCreateInput is the request body for submitting an asynchronous
// validation task. Keys are sample types, values the records to check.
type TaskCreateInput struct {
	Body map[string][]ruleset.Record `doc:"Records to validate, grouped by sample type"`
}

// TaskGetInput defines path parameters for retrieving a task.
type TaskGetInput struct {
	TaskID string `path:"taskID" doc:"Task identifier" format:"uuid" example:"6e1f6f7e-1df5-4b86-9a0f-51e2e45a1fd1"`
}

// TasksListInput defines query parameters for listing tasks.
type TasksListInput struct {
	pagination.Params
}
