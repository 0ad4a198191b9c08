package ontology

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/faang-dcc/validator-api/internal/ruleset"
)

// Service errors
var (
	ErrRateLimited = errors.New("ols rate limit exceeded")
	ErrUpstream    = errors.New("ols upstream error")
)

// Doc is one OLS search hit for a term.
type Doc struct {
	IRI      string
	Label    string
	Ontology string
}

// Service resolves ontology term IDs against the Ontology Lookup Service.
//
// Lookup must be cheap for terms already fetched; Prefetch warms the cache so
// per-field validation never issues blocking HTTP calls.
type Service interface {
	Lookup(ctx context.Context, term string) ([]Doc, error)
	Prefetch(ctx context.Context, terms []string)
}

// TermResult carries the outcome of validating a single ontology term.
type TermResult struct {
	Errors   []string
	Warnings []string
}

// ValidateTerm checks that term exists in OLS and, when text is provided,
// that it matches one of the term's labels. A label mismatch is a warning,
// not an error; "restricted access" bypasses the lookup entirely.
func ValidateTerm(ctx context.Context, svc Service, term, text, fieldName string) TermResult {
	var result TermResult

	if term == ruleset.RestrictedAccess {
		return result
	}

	normalized := ruleset.NormalizeTerm(term)
	docs, err := svc.Lookup(ctx, normalized)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Term %s could not be checked: %v", normalized, err))
		return result
	}
	if len(docs) == 0 {
		result.Errors = append(result.Errors, fmt.Sprintf("Term %s not found in OLS", normalized))
		return result
	}

	if text == "" {
		return result
	}

	prefix := ruleset.TermPrefix(normalized)
	labels := make([]string, 0, len(docs))
	for _, doc := range docs {
		if strings.EqualFold(doc.Ontology, prefix) {
			labels = append(labels, strings.ToLower(doc.Label))
		}
	}
	if len(labels) == 0 {
		for _, doc := range docs {
			labels = append(labels, strings.ToLower(doc.Label))
		}
	}

	lowered := strings.ToLower(text)
	for _, label := range labels {
		if label == lowered {
			return result
		}
	}

	expected := "unknown"
	if len(labels) > 0 {
		expected = labels[0]
	}
	warning := fmt.Sprintf("Provided value '%s' doesn't precisely match '%s' for term '%s'", text, expected, normalized)
	if fieldName != "" {
		warning += fmt.Sprintf(" in field '%s'", fieldName)
	}
	result.Warnings = append(result.Warnings, warning)
	return result
}
