package validation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/faang-dcc/validator-api/internal/ruleset"
	"github.com/faang-dcc/validator-api/internal/service/biosamples"
)

// Relationship references resolve either inside the submitted batch or to a
// public BioSamples accession (SAM* prefix). Anything else is an error on
// the referencing record.

// batchIndex locates submitted records by name across all types.
type batchEntry struct {
	recordType string
	record     ruleset.Record
}

func indexBatch(rulesets map[string]ruleset.Ruleset, data map[string][]ruleset.Record) map[string]batchEntry {
	index := make(map[string]batchEntry)
	for recordType, records := range data {
		rs, ok := rulesets[recordType]
		if !ok {
			continue
		}
		for _, record := range records {
			if name, ok := record.String(rs.NameField); ok && strings.TrimSpace(name) != "" {
				index[strings.TrimSpace(name)] = batchEntry{recordType: recordType, record: record}
			}
		}
	}
	return index
}

func isAccession(ref string) bool {
	return strings.HasPrefix(ref, "SAM")
}

func (e *Engine) validateRelationships(
	ctx context.Context,
	rs ruleset.Ruleset,
	records []ruleset.Record,
	data map[string][]ruleset.Record,
	typeResult *TypeResult,
) {
	if rs.RefField == "" {
		return
	}
	index := indexBatch(e.rulesets, data)

	for i, record := range records {
		refs, _ := record.StringList(rs.RefField)
		if len(refs) == 0 {
			continue
		}
		name := recordName(rs, record, i)
		result := typeResult.Records[name]

		for _, ref := range refs {
			ref = strings.TrimSpace(ref)
			if ref == "" || ref == ruleset.RestrictedAccess {
				continue
			}
			if ref == name {
				result.addRelationshipError(fmt.Sprintf("%s '%s' references itself", rs.RefField, ref))
				continue
			}

			if target, ok := index[ref]; ok {
				e.checkBatchReference(rs, record, ref, target, result)
				continue
			}
			if isAccession(ref) {
				e.checkAccessionReference(ctx, rs, record, ref, result)
				continue
			}
			result.addRelationshipError(fmt.Sprintf(
				"%s '%s' is neither in the submission nor a BioSamples accession", rs.RefField, ref))
		}
	}
}

// checkBatchReference validates a reference that points at another record in
// the same submission. The ruleset lists which record types are valid
// targets; child-of references additionally require matching species.
func (e *Engine) checkBatchReference(rs ruleset.Ruleset, record ruleset.Record, ref string, target batchEntry, result *RecordResult) {
	if !targetTypeAllowed(rs.RefTargetTypes, target.recordType) {
		result.addRelationshipError(fmt.Sprintf(
			"%s '%s' must reference %s, got %s",
			rs.RefField, ref, strings.Join(rs.RefTargetTypes, " or "), target.recordType))
		return
	}

	if rs.RefType == "child of" {
		childSpecies, _ := record.String("Organism")
		parentSpecies, _ := target.record.String("Organism")
		if childSpecies != "" && parentSpecies != "" && childSpecies != parentSpecies {
			result.addRelationshipError(fmt.Sprintf(
				"Child Of '%s' has a different species ('%s' vs '%s')", ref, parentSpecies, childSpecies))
		}
	}
}

func targetTypeAllowed(allowed []string, recordType string) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, t := range allowed {
		if t == recordType {
			return true
		}
	}
	return false
}

// checkAccessionReference validates a reference that points at a public
// BioSamples accession.
func (e *Engine) checkAccessionReference(ctx context.Context, rs ruleset.Ruleset, record ruleset.Record, ref string, result *RecordResult) {
	sample, err := e.biosamples.Get(ctx, ref)
	if err != nil {
		if errors.Is(err, biosamples.ErrNotFound) {
			result.addRelationshipError(fmt.Sprintf(
				"%s references unknown BioSamples accession '%s'", rs.RefField, ref))
			return
		}
		result.addRelationshipError(fmt.Sprintf(
			"%s '%s' could not be checked against BioSamples: %v", rs.RefField, ref, err))
		return
	}

	switch rs.RefType {
	case "child of":
		if sample.Material != "" && sample.Material != "organism" {
			result.addRelationshipError(fmt.Sprintf(
				"Child Of '%s' must reference organism material, got '%s'", ref, sample.Material))
			return
		}
		childSpecies, _ := record.String("Organism")
		if childSpecies != "" && sample.Organism != "" && childSpecies != sample.Organism {
			result.addRelationshipError(fmt.Sprintf(
				"Child Of '%s' has a different species ('%s' vs '%s')", ref, sample.Organism, childSpecies))
		}
	case "derived from":
		if sample.Material != "" && sample.Material != "organism" && sample.Material != "specimen from organism" {
			result.addRelationshipError(fmt.Sprintf(
				"Derived From '%s' must reference organism or specimen material, got '%s'", ref, sample.Material))
		}
	}
}
