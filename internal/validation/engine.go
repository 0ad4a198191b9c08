package validation

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	applog "github.com/faang-dcc/validator-api/internal/platform/logging"
	"github.com/faang-dcc/validator-api/internal/ruleset"
	"github.com/faang-dcc/validator-api/internal/service/biosamples"
	"github.com/faang-dcc/validator-api/internal/service/ontology"
)

// Engine validates metadata submissions against the per-type rulesets.
// Ontology terms are pre-fetched in one batch so per-field checks read from
// cache only; relationship checks run after all records are individually
// validated because they reach across records.
type Engine struct {
	rulesets   map[string]ruleset.Ruleset
	ontology   ontology.Service
	biosamples biosamples.Service
}

// Progress is invoked after each record type finishes, for task streaming.
type Progress func(recordType string, summary Summary)

// NewEngine creates an engine over all supported rulesets.
func NewEngine(onto ontology.Service, bios biosamples.Service) *Engine {
	return &Engine{
		rulesets:   ruleset.All(),
		ontology:   onto,
		biosamples: bios,
	}
}

// SupportedTypes lists the record types the engine can validate, sorted.
func (e *Engine) SupportedTypes() []string {
	types := make([]string, 0, len(e.rulesets))
	for t := range e.rulesets {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// ValidateAll validates a whole submission. Unknown record types are
// reported but never fatal. progress may be nil.
func (e *Engine) ValidateAll(ctx context.Context, data map[string][]ruleset.Record, progress Progress) *Result {
	result := &Result{
		TypesProcessed: []string{},
		Results:        make(map[string]*TypeResult),
		Reports:        make(map[string]*Report),
	}

	types := make([]string, 0, len(data))
	for t := range data {
		types = append(types, t)
	}
	sort.Strings(types)

	e.ontology.Prefetch(ctx, e.collectTerms(data))

	for _, recordType := range types {
		rs, ok := e.rulesets[recordType]
		if !ok {
			result.UnknownTypes = append(result.UnknownTypes, recordType)
			applog.LogWarn(ctx, "unsupported record type skipped", zap.String("type", recordType))
			continue
		}
		records := data[recordType]
		if len(records) == 0 {
			continue
		}

		typeResult := &TypeResult{Records: make(map[string]*RecordResult, len(records))}
		for i, record := range records {
			name := recordName(rs, record, i)
			typeResult.Records[name] = e.validateRecord(ctx, rs, record)
		}

		e.validateRelationships(ctx, rs, records, data, typeResult)

		for _, rr := range typeResult.Records {
			typeResult.Summary.Total++
			if rr.Valid() {
				typeResult.Summary.Valid++
			} else {
				typeResult.Summary.Invalid++
			}
			if rr.HasWarnings() {
				typeResult.Summary.Warnings++
			}
			typeResult.Summary.RelationshipErrors += len(rr.RelationshipErrors)
		}

		result.TypesProcessed = append(result.TypesProcessed, recordType)
		result.Results[recordType] = typeResult
		result.Reports[recordType] = buildReport(recordType, typeResult)
		result.Summary.add(typeResult.Summary)

		applog.LogInfo(ctx, "record type validated",
			zap.String("type", recordType),
			zap.Int("total", typeResult.Summary.Total),
			zap.Int("invalid", typeResult.Summary.Invalid),
		)
		if progress != nil {
			progress(recordType, typeResult.Summary)
		}
	}

	return result
}

// collectTerms walks the submission and gathers every ontology term ID that
// rule evaluation will look up.
func (e *Engine) collectTerms(data map[string][]ruleset.Record) []string {
	var terms []string
	for recordType, records := range data {
		rs, ok := e.rulesets[recordType]
		if !ok {
			continue
		}
		for _, rule := range rs.Rules {
			switch rule.Kind {
			case ruleset.KindOntologyTerm:
				for _, record := range records {
					if v, ok := record.String(rule.Field); ok && !ruleset.IsRestrictedValue(v) {
						terms = append(terms, ruleset.NormalizeTerm(v))
					}
				}
			case ruleset.KindTermList:
				for _, record := range records {
					objs, ok := record.TermObjects(rule.Field)
					if !ok {
						continue
					}
					for _, obj := range objs {
						if !ruleset.IsRestrictedValue(obj.Term) {
							terms = append(terms, ruleset.NormalizeTerm(obj.Term))
						}
					}
				}
			}
		}
	}
	return terms
}

func recordName(rs ruleset.Ruleset, record ruleset.Record, index int) string {
	if name, ok := record.String(rs.NameField); ok && strings.TrimSpace(name) != "" {
		return strings.TrimSpace(name)
	}
	return fmt.Sprintf("record_%d", index+1)
}

func (e *Engine) validateRecord(ctx context.Context, rs ruleset.Ruleset, record ruleset.Record) *RecordResult {
	result := NewRecordResult()

	for _, rule := range rs.Rules {
		switch rule.Kind {
		case ruleset.KindTextList:
			e.checkTextList(rule, record, result)
		case ruleset.KindTermList:
			e.checkTermList(ctx, rule, record, result)
		default:
			e.checkScalar(ctx, rule, record, result)
		}
	}

	return result
}

func (e *Engine) checkScalar(ctx context.Context, rule ruleset.Rule, record ruleset.Record, result *RecordResult) {
	value, present := record.String(rule.Field)
	if record.Has(rule.Field) && !present {
		result.addFieldError(rule.Field, "has an unexpected value type")
		return
	}
	if !present || strings.TrimSpace(value) == "" {
		if rule.Required {
			result.addFieldError(rule.Field, "is required and cannot be empty")
		} else if conditionallyRequired(rule, record) {
			condition, _ := record.String(rule.RequiredWhenField)
			result.addFieldError(rule.Field,
				fmt.Sprintf("is required when %s is '%s'", rule.RequiredWhenField, condition))
		} else if rule.Kind == ruleset.KindOntologyTerm && rule.TextRequired && textProvided(rule, record) {
			result.addFieldError(rule.Field,
				fmt.Sprintf("is required when %s is provided", rule.TextField))
		} else if rule.Recommended {
			result.addFieldWarning(rule.Field, "is recommended but was not provided")
		}
		return
	}

	if rule.AllowRestricted && ruleset.IsRestrictedValue(value) {
		return
	}

	switch rule.Kind {
	case ruleset.KindText:
		// free text, presence is enough
	case ruleset.KindVocabulary:
		if err := ruleset.CheckVocabulary(value, rule.Vocabulary); err != nil {
			result.addFieldError(rule.Field, err.Error())
		}
	case ruleset.KindNumeric:
		if err := ruleset.CheckNonNegative(value); err != nil {
			result.addFieldError(rule.Field, err.Error())
		}
	case ruleset.KindPercentage:
		if err := ruleset.CheckPercentage(value); err != nil {
			result.addFieldError(rule.Field, err.Error())
		}
	case ruleset.KindLatitude:
		if err := ruleset.CheckLatitude(value); err != nil {
			result.addFieldError(rule.Field, err.Error())
		}
	case ruleset.KindLongitude:
		if err := ruleset.CheckLongitude(value); err != nil {
			result.addFieldError(rule.Field, err.Error())
		}
	case ruleset.KindDate:
		unit, _ := record.String(rule.UnitField)
		if err := ruleset.CheckDate(value, unit); err != nil {
			result.addFieldError(rule.Field, err.Error())
		}
	case ruleset.KindTime:
		if err := ruleset.CheckTime(value); err != nil {
			result.addFieldError(rule.Field, err.Error())
		}
	case ruleset.KindPhotoperiod:
		if err := ruleset.CheckPhotoperiod(value); err != nil {
			result.addFieldError(rule.Field, err.Error())
		}
	case ruleset.KindURL:
		if err := ruleset.CheckURL(value); err != nil {
			result.addFieldError(rule.Field, err.Error())
		}
	case ruleset.KindProtocolURL:
		if err := ruleset.CheckProtocolURL(value); err != nil {
			result.addFieldError(rule.Field, err.Error())
		}
	case ruleset.KindOntologyTerm:
		e.checkTerm(ctx, rule, record, value, result)
	}
}

func (e *Engine) checkTerm(ctx context.Context, rule ruleset.Rule, record ruleset.Record, value string, result *RecordResult) {
	if ruleset.IsRestrictedValue(value) {
		return
	}
	term := ruleset.NormalizeTerm(value)
	if !prefixAllowed(term, rule.Ontologies) {
		result.addFieldError(rule.Field,
			fmt.Sprintf("term '%s' should be from %s ontology", value, ontologyNames(rule.Ontologies)))
		return
	}

	text, _ := record.String(rule.TextField)
	if rule.TextRequired && strings.TrimSpace(text) == "" {
		result.addFieldError(rule.TextField,
			fmt.Sprintf("is required when %s is provided", rule.Field))
	}
	tr := ontology.ValidateTerm(ctx, e.ontology, term, text, rule.Field)
	for _, msg := range tr.Errors {
		result.addFieldError(rule.Field, msg)
	}
	result.OntologyWarnings = append(result.OntologyWarnings, tr.Warnings...)
}

// conditionallyRequired reports whether an absent field is required because
// of the value of another field (e.g. freezing details when the freezing
// method is not "fresh").
func conditionallyRequired(rule ruleset.Rule, record ruleset.Record) bool {
	if rule.RequiredWhenField == "" {
		return false
	}
	v, ok := record.String(rule.RequiredWhenField)
	return ok && strings.TrimSpace(v) != "" && v != rule.RequiredWhenNot
}

func textProvided(rule ruleset.Rule, record ruleset.Record) bool {
	text, _ := record.String(rule.TextField)
	return strings.TrimSpace(text) != ""
}

func (e *Engine) checkTextList(rule ruleset.Rule, record ruleset.Record, result *RecordResult) {
	values, ok := record.StringList(rule.Field)
	if record.Has(rule.Field) && !ok {
		result.addFieldError(rule.Field, "must be a list of strings")
		return
	}
	if len(values) == 0 {
		if rule.Required {
			result.addFieldError(rule.Field, "is required and cannot be empty")
		} else if rule.Recommended {
			result.addFieldWarning(rule.Field, "is recommended but was not provided")
		}
		return
	}
	if rule.MaxItems > 0 && len(values) > rule.MaxItems {
		result.addFieldError(rule.Field, fmt.Sprintf("must have at most %d entries, got %d", rule.MaxItems, len(values)))
	}
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			result.addFieldError(rule.Field, "contains an empty entry")
		}
	}
}

func (e *Engine) checkTermList(ctx context.Context, rule ruleset.Rule, record ruleset.Record, result *RecordResult) {
	objs, ok := record.TermObjects(rule.Field)
	if record.Has(rule.Field) && !ok {
		result.addFieldError(rule.Field, "must be a list of {text, term} objects")
		return
	}
	if len(objs) == 0 {
		if rule.Required {
			result.addFieldError(rule.Field, "is required and cannot be empty")
		} else if rule.Recommended {
			result.addFieldWarning(rule.Field, "is recommended but was not provided")
		}
		return
	}
	if rule.MaxItems > 0 && len(objs) > rule.MaxItems {
		result.addFieldError(rule.Field, fmt.Sprintf("must have at most %d entries, got %d", rule.MaxItems, len(objs)))
	}
	for _, obj := range objs {
		if ruleset.IsRestrictedValue(obj.Term) {
			continue
		}
		term := ruleset.NormalizeTerm(obj.Term)
		if !prefixAllowed(term, rule.Ontologies) {
			result.addFieldError(rule.Field,
				fmt.Sprintf("term '%s' should be from %s ontology", obj.Term, ontologyNames(rule.Ontologies)))
			continue
		}
		tr := ontology.ValidateTerm(ctx, e.ontology, term, obj.Text, rule.Field)
		for _, msg := range tr.Errors {
			result.addFieldError(rule.Field, msg)
		}
		result.OntologyWarnings = append(result.OntologyWarnings, tr.Warnings...)
	}
}

func prefixAllowed(term string, ontologies []ruleset.Ontology) bool {
	if len(ontologies) == 0 {
		return true
	}
	prefix := ruleset.TermPrefix(term)
	for _, o := range ontologies {
		if strings.EqualFold(prefix, o.Prefix) {
			return true
		}
	}
	return false
}

func ontologyNames(ontologies []ruleset.Ontology) string {
	names := make([]string, 0, len(ontologies))
	for _, o := range ontologies {
		names = append(names, o.Prefix)
	}
	return strings.Join(names, " or ")
}

func buildReport(recordType string, tr *TypeResult) *Report {
	report := &Report{Type: recordType, Summary: tr.Summary}
	for name, rr := range tr.Records {
		if !rr.Valid() {
			report.InvalidRecords = append(report.InvalidRecords, name)
		}
		for field, issues := range rr.FieldErrors {
			if report.IssuesByField == nil {
				report.IssuesByField = make(map[string]int)
			}
			report.IssuesByField[field] += len(issues)
		}
	}
	sort.Strings(report.InvalidRecords)
	return report
}
