package tasks

// TaskCreateOutput is the response wrapper for POST /validation/tasks
// (202 Accepted).
type TaskCreateOutput struct {
	Location string `header:"Location" doc:"URL of the created task"`
	Body     Task
}

// TaskGetOutput is the response wrapper for GET /validation/tasks/{taskID}.
type TaskGetOutput struct {
	Body Task
}

// ListData is the response body containing a page of tasks.
type ListData struct {
	Tasks      []Task `json:"tasks"                doc:"Tasks, newest first"`
	NextCursor string `json:"nextCursor,omitempty" doc:"Cursor for the next page, empty on the last page"`
}

// TasksListOutput is the response wrapper with pagination Link header.
type TasksListOutput struct {
	Link string `header:"Link" doc:"RFC 8288 pagination links"`
	Body ListData
}
