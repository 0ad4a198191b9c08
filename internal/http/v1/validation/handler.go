package validation

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	applog "github.com/faang-dcc/validator-api/internal/platform/logging"
	enginepkg "github.com/faang-dcc/validator-api/internal/validation"
)

// Register wires the synchronous validation route into the API router.
func Register(api huma.API, engine *enginepkg.Engine) {
	huma.Register(api, huma.Operation{
		OperationID: "validate-records",
		Method:      http.MethodPost,
		Path:        "/v1/validation",
		Summary:     "Validate sample records",
		Description: "Validates the submitted records against the FAANG sample rulesets and returns the full result. For large batches prefer the asynchronous task endpoint.",
		Tags:        []string{"Validation"},
	}, func(ctx context.Context, input *ValidateInput) (*ValidateOutput, error) {
		if len(input.Body) == 0 {
			return nil, huma.Error422UnprocessableEntity("no records provided")
		}

		total := 0
		for _, records := range input.Body {
			total += len(records)
		}
		applog.LogInfo(ctx, "Synchronous validation requested",
			zap.Int("types", len(input.Body)),
			zap.Int("records", total),
		)

		result := engine.ValidateAll(ctx, input.Body, nil)
		return &ValidateOutput{Body: result}, nil
	})
}
