package validation

import "fmt"

// RecordResult collects every issue found on a single record. Field-level
// issues appear both in the flat Errors/Warnings lists (prefixed with the
// field name) and in the per-field maps, mirroring the report layout
// submitters already consume.
type RecordResult struct {
	Errors             []string            `json:"errors"`
	Warnings           []string            `json:"warnings"`
	OntologyWarnings   []string            `json:"ontology_warnings,omitempty"`
	RelationshipErrors []string            `json:"relationship_errors,omitempty"`
	FieldErrors        map[string][]string `json:"field_errors,omitempty"`
	FieldWarnings      map[string][]string `json:"field_warnings,omitempty"`
}

// NewRecordResult creates an empty result with non-nil issue lists.
func NewRecordResult() *RecordResult {
	return &RecordResult{
		Errors:   []string{},
		Warnings: []string{},
	}
}

// Valid reports whether the record passed with no errors. Warnings and
// ontology warnings do not affect validity.
func (r *RecordResult) Valid() bool {
	return len(r.Errors) == 0 && len(r.RelationshipErrors) == 0
}

// HasWarnings reports whether any warning of any kind was recorded.
func (r *RecordResult) HasWarnings() bool {
	return len(r.Warnings) > 0 || len(r.OntologyWarnings) > 0
}

func (r *RecordResult) addFieldError(field, msg string) {
	if r.FieldErrors == nil {
		r.FieldErrors = make(map[string][]string)
	}
	r.FieldErrors[field] = append(r.FieldErrors[field], msg)
	r.Errors = append(r.Errors, fmt.Sprintf("%s: %s", field, msg))
}

func (r *RecordResult) addFieldWarning(field, msg string) {
	if r.FieldWarnings == nil {
		r.FieldWarnings = make(map[string][]string)
	}
	r.FieldWarnings[field] = append(r.FieldWarnings[field], msg)
	r.Warnings = append(r.Warnings, fmt.Sprintf("%s: %s", field, msg))
}

func (r *RecordResult) addRelationshipError(msg string) {
	r.RelationshipErrors = append(r.RelationshipErrors, msg)
}

// Summary aggregates record outcomes for one type or a whole submission.
type Summary struct {
	Total              int `json:"total"`
	Valid              int `json:"valid"`
	Invalid            int `json:"invalid"`
	Warnings           int `json:"warnings"`
	RelationshipErrors int `json:"relationship_errors"`
}

func (s *Summary) add(other Summary) {
	s.Total += other.Total
	s.Valid += other.Valid
	s.Invalid += other.Invalid
	s.Warnings += other.Warnings
	s.RelationshipErrors += other.RelationshipErrors
}

// TypeResult holds per-record results for one record type, keyed by the
// record's name field.
type TypeResult struct {
	Summary Summary                  `json:"summary"`
	Records map[string]*RecordResult `json:"records"`
}

// Report is the condensed per-type view surfaced to submitters.
type Report struct {
	Type           string         `json:"type"`
	Summary        Summary        `json:"summary"`
	InvalidRecords []string       `json:"invalid_records,omitempty"`
	IssuesByField  map[string]int `json:"issues_by_field,omitempty"`
}

// Result is the outcome of validating a full submission.
type Result struct {
	TypesProcessed []string               `json:"sample_types_processed"`
	UnknownTypes   []string               `json:"unknown_types,omitempty"`
	Results        map[string]*TypeResult `json:"sample_results"`
	Reports        map[string]*Report     `json:"sample_reports"`
	Summary        Summary                `json:"total_summary"`
}
