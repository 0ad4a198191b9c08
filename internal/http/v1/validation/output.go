package validation

import enginepkg "github.com/faang-dcc/validator-api/internal/validation"

// ValidateOutput is the response wrapper for POST /validation.
type ValidateOutput struct {
	Body *enginepkg.Result
}
