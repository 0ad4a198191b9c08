package tasks

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/faang-dcc/validator-api/internal/platform/pagination"
	taskssvc "github.com/faang-dcc/validator-api/internal/service/tasks"
)

// Register wires validation task routes into the provided API router.
func Register(api huma.API, svc taskssvc.Service, runner *taskssvc.Runner, prefix string) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-validation-task",
		Method:        http.MethodPost,
		Path:          "/v1/validation/tasks",
		Summary:       "Submit an asynchronous validation task",
		Description:   "Accepts a batch of records for background validation. Progress and completion events are published on the websocket endpoint.",
		Tags:          []string{"Tasks"},
		DefaultStatus: http.StatusAccepted,
	}, func(ctx context.Context, input *TaskCreateInput) (*TaskCreateOutput, error) {
		if len(input.Body) == 0 {
			return nil, huma.Error422UnprocessableEntity("no records provided")
		}

		task, err := runner.Submit(ctx, input.Body)
		if err != nil {
			return nil, mapServiceError(err)
		}
		return &TaskCreateOutput{
			Location: fmt.Sprintf("%s/v1/validation/tasks/%s", prefix, task.ID),
			Body:     toHTTPTask(task),
		}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-validation-task",
		Method:      http.MethodGet,
		Path:        "/v1/validation/tasks/{taskID}",
		Summary:     "Get a validation task",
		Description: "Retrieves a task by ID, including the validation result once the task has completed.",
		Tags:        []string{"Tasks"},
	}, func(ctx context.Context, input *TaskGetInput) (*TaskGetOutput, error) {
		task, err := svc.Get(ctx, input.TaskID)
		if err != nil {
			return nil, mapServiceError(err)
		}
		return &TaskGetOutput{Body: toHTTPTask(task)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-validation-tasks",
		Method:      http.MethodGet,
		Path:        "/v1/validation/tasks",
		Summary:     "List validation tasks",
		Description: "Returns tasks newest first with cursor-based pagination. Use the cursor from the Link header or body to navigate between pages.",
		Tags:        []string{"Tasks"},
	}, func(ctx context.Context, input *TasksListInput) (*TasksListOutput, error) {
		page, next, err := svc.List(ctx, input.DefaultLimit(), input.Cursor)
		if err != nil {
			if errors.Is(err, pagination.ErrInvalidCursor) {
				return nil, huma.Error400BadRequest("invalid cursor format")
			}
			return nil, mapServiceError(err)
		}

		out := make([]Task, 0, len(page))
		for _, t := range page {
			out = append(out, toHTTPTask(t))
		}
		return &TasksListOutput{
			Link: pagination.BuildLinkHeader(prefix+"/v1/validation/tasks", nil, next),
			Body: ListData{Tasks: out, NextCursor: next},
		}, nil
	})
}

func mapServiceError(err error) error {
	switch {
	case errors.Is(err, taskssvc.ErrNotFound):
		return huma.Error404NotFound("validation task not found")
	default:
		return huma.Error500InternalServerError("internal error")
	}
}
