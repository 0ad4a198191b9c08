// Package conversion exposes the BioSamples submission format exporter.
package conversion

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/faang-dcc/validator-api/internal/ruleset"
	"github.com/faang-dcc/validator-api/internal/validation"
)

// ConvertInput is the request body for BioSamples conversion. The same
// grouped-records shape used by the validation endpoints.
type ConvertInput struct {
	Body map[string][]ruleset.Record `doc:"Records to convert, grouped by sample type"`
}

// ConvertData is the response body holding converted samples per type.
type ConvertData struct {
	Samples map[string][]map[string]any `json:"samples" doc:"Converted samples in BioSamples submission format, grouped by sample type"`
}

// ConvertOutput is the response wrapper for POST /conversion/biosamples.
type ConvertOutput struct {
	Body ConvertData
}

// Register wires the conversion route into the provided API router.
// Records run through the validation engine first; only a fully valid
// submission is exported.
func Register(api huma.API, engine *validation.Engine) {
	huma.Register(api, huma.Operation{
		OperationID: "convert-biosamples",
		Method:      http.MethodPost,
		Path:        "/v1/conversion/biosamples",
		Summary:     "Convert records to BioSamples format",
		Description: "Validates FAANG sample records and converts them into the BioSamples characteristics and relationships submission shape. Invalid records are rejected.",
		Tags:        []string{"Conversion"},
	}, func(ctx context.Context, input *ConvertInput) (*ConvertOutput, error) {
		if len(input.Body) == 0 {
			return nil, huma.Error422UnprocessableEntity("no records provided")
		}

		result := engine.ValidateAll(ctx, input.Body, nil)
		if len(result.UnknownTypes) > 0 {
			return nil, huma.Error422UnprocessableEntity(
				fmt.Sprintf("unsupported sample types: %s", strings.Join(result.UnknownTypes, ", ")))
		}
		if result.Summary.Invalid > 0 {
			var invalid []string
			for _, recordType := range result.TypesProcessed {
				for _, name := range result.Reports[recordType].InvalidRecords {
					invalid = append(invalid, fmt.Sprintf("%s/%s", recordType, name))
				}
			}
			return nil, huma.Error422UnprocessableEntity(
				fmt.Sprintf("invalid records cannot be converted: %s", strings.Join(invalid, ", ")))
		}

		types := make([]string, 0, len(input.Body))
		for recordType := range input.Body {
			types = append(types, recordType)
		}
		sort.Strings(types)

		samples := make(map[string][]map[string]any, len(types))
		for _, recordType := range types {
			converted := make([]map[string]any, 0, len(input.Body[recordType]))
			for _, record := range input.Body[recordType] {
				sample, err := validation.ExportBioSample(recordType, record)
				if err != nil {
					return nil, huma.Error422UnprocessableEntity(err.Error())
				}
				converted = append(converted, sample)
			}
			samples[recordType] = converted
		}

		return &ConvertOutput{Body: ConvertData{Samples: samples}}, nil
	})
}
