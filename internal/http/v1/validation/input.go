package validation

import "github.com/faang-dcc/validator-api/internal/ruleset"

// ValidateInput is the request body for synchronous validation. Keys
// are sample types ("organism", "specimen_from_organism") and values
// are the records of that type, keyed by their ruleset field aliases.
type ValidateInput struct {
	Body map[string][]ruleset.Record `doc:"Records to validate, grouped by sample type" example:"{\"organism\": [{\"Sample Name\": \"ORG1\"}]}"`
}
