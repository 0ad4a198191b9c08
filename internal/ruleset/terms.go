package ruleset

import "strings"

// RestrictedAccess marks a value the submitter cannot disclose. It passes
// every field rule that allows it and bypasses ontology lookups.
const RestrictedAccess = "restricted access"

// missing-value markers permitted by the FAANG metadata standard.
var restrictedValues = map[string]struct{}{
	RestrictedAccess: {},
	"not applicable": {},
	"not collected":  {},
	"not provided":   {},
	"":               {},
}

// IsRestrictedValue reports whether v is one of the permitted missing-value
// markers (or empty).
func IsRestrictedValue(v string) bool {
	_, ok := restrictedValues[v]
	return ok
}

// NormalizeTerm converts underscore-form ontology IDs (PATO_0000384) to the
// colon form (PATO:0000384). IDs already in colon form pass through.
func NormalizeTerm(term string) string {
	if term == "" || strings.Contains(term, ":") {
		return term
	}
	if strings.Contains(term, "_") {
		return strings.Replace(term, "_", ":", 1)
	}
	return term
}

// OBOURL renders an ontology term as its purl.obolibrary.org URL, or ""
// for missing-value markers.
func OBOURL(term string) string {
	if IsRestrictedValue(term) {
		return ""
	}
	normalized := NormalizeTerm(term)
	return "http://purl.obolibrary.org/obo/" + strings.Replace(normalized, ":", "_", 1)
}

// TermPrefix returns the ontology prefix of a term ID ("PATO:0000384" → "PATO").
func TermPrefix(term string) string {
	normalized := NormalizeTerm(term)
	if i := strings.Index(normalized, ":"); i > 0 {
		return normalized[:i]
	}
	return ""
}
