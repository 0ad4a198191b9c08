// Package root serves the API landing endpoint.
package root

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// Data is the landing endpoint payload.
type Data struct {
	Message string `json:"message" doc:"Welcome message"            example:"Welcome to FAANG Validator API"`
	Status  string `json:"status"  doc:"Operational state of the API" example:"operational"`
}

// GetOutput is the response wrapper for GET /.
type GetOutput struct {
	Body Data
}

// Register wires the landing route into the provided API router.
func Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-root",
		Method:      http.MethodGet,
		Path:        "/",
		Summary:     "API welcome message",
		Description: "Returns a welcome message and the operational status of the service.",
		Tags:        []string{"Meta"},
	}, getHandler)
}

func getHandler(_ context.Context, _ *struct{}) (*GetOutput, error) {
	return &GetOutput{Body: Data{
		Message: "Welcome to FAANG Validator API",
		Status:  "operational",
	}}, nil
}
