package routes

import (
	"net/url"

	"github.com/danielgtaylor/huma/v2"

	conversionhandler "github.com/faang-dcc/validator-api/internal/http/v1/conversion"
	taskshandler "github.com/faang-dcc/validator-api/internal/http/v1/tasks"
	validationhandler "github.com/faang-dcc/validator-api/internal/http/v1/validation"
	taskssvc "github.com/faang-dcc/validator-api/internal/service/tasks"
	enginepkg "github.com/faang-dcc/validator-api/internal/validation"
)

// Register wires all v1 HTTP routes into the provided API router.
func Register(
	api huma.API,
	engine *enginepkg.Engine,
	taskService taskssvc.Service,
	runner *taskssvc.Runner,
) {
	prefix := apiPrefix(api)

	validationhandler.Register(api, engine)
	taskshandler.Register(api, taskService, runner, prefix)
	conversionhandler.Register(api, engine)
}

func apiPrefix(api huma.API) string {
	for _, s := range api.OpenAPI().Servers {
		if u, err := url.Parse(s.URL); err == nil && u.Path != "" {
			return u.Path
		}
	}
	return ""
}
