package validation

import (
	"fmt"
	"strings"

	"github.com/faang-dcc/validator-api/internal/ruleset"
)

// ExportBioSample converts a validated record into the BioSamples
// characteristics/relationships submission shape. The caller is responsible
// for validating the record first; the exporter only reads fields.
func ExportBioSample(recordType string, record ruleset.Record) (map[string]any, error) {
	switch recordType {
	case ruleset.TypeOrganism:
		return exportOrganism(record), nil
	case ruleset.TypeSpecimenFromOrganism:
		return exportSpecimen(record), nil
	case ruleset.TypePoolOfSpecimens:
		return exportPool(record), nil
	case ruleset.TypeCellSpecimen:
		return exportCellSpecimen(record), nil
	case ruleset.TypeSingleCellSpecimen:
		return exportSingleCellSpecimen(record), nil
	case ruleset.TypeCellCulture:
		return exportCellCulture(record), nil
	case ruleset.TypeCellLine:
		return exportCellLine(record), nil
	case ruleset.TypeOrganoid:
		return exportOrganoid(record), nil
	case ruleset.TypeTeleosteiEmbryo, ruleset.TypeTeleosteiPostHatching:
		return exportTeleostei(record), nil
	default:
		return nil, fmt.Errorf("unsupported record type %q", recordType)
	}
}

func characteristic(text string, termURLs ...string) map[string]any {
	entry := map[string]any{"text": text}
	urls := make([]string, 0, len(termURLs))
	for _, u := range termURLs {
		if u != "" {
			urls = append(urls, u)
		}
	}
	if len(urls) > 0 {
		entry["ontologyTerms"] = urls
	}
	return entry
}

func relationships(record ruleset.Record, field, relType string) []map[string]any {
	refs, _ := record.StringList(field)
	var rels []map[string]any
	for _, ref := range refs {
		ref = strings.TrimSpace(ref)
		if ref == "" {
			continue
		}
		rels = append(rels, map[string]any{"type": relType, "target": ref})
	}
	return rels
}

func exportOrganism(record ruleset.Record) map[string]any {
	characteristics := map[string]any{"material": materialCharacteristic(record)}

	organism, _ := record.String("Organism")
	organismTerm, _ := record.String("Organism Term Source ID")
	organismURL := ruleset.OBOURL(organismTerm)

	// BioSamples schema validation requires a field named after the
	// characteristic key inside each entry for organism and species.
	organismEntry := characteristic(organism, organismURL)
	organismEntry["organism"] = organism
	speciesEntry := characteristic(organism, organismURL)
	speciesEntry["species"] = organism
	characteristics["organism"] = []map[string]any{organismEntry}
	characteristics["species"] = []map[string]any{speciesEntry}

	sex, _ := record.String("Sex")
	sexTerm, _ := record.String("Sex Term Source ID")
	characteristics["sex"] = []map[string]any{characteristic(sex, ruleset.OBOURL(sexTerm))}

	if birthDate, _ := record.String("Birth Date"); strings.TrimSpace(birthDate) != "" {
		unit, _ := record.String("Birth Date Unit")
		characteristics["birth date"] = []map[string]any{{"text": birthDate, "unit": unit}}
	}

	if breed, _ := record.String("Breed"); strings.TrimSpace(breed) != "" {
		breedTerm, _ := record.String("Breed Term Source ID")
		characteristics["breed"] = []map[string]any{characteristic(breed, ruleset.OBOURL(breedTerm))}
	}

	if statuses, ok := record.TermObjects("Health Status"); ok && len(statuses) > 0 {
		var hs []map[string]any
		for _, status := range statuses {
			hs = append(hs, characteristic(status.Text, ruleset.OBOURL(status.Term)))
		}
		characteristics["health status"] = hs
	}

	out := map[string]any{"characteristics": characteristics}
	if rels := relationships(record, "Child Of", "child of"); len(rels) > 0 {
		out["relationships"] = rels
	}
	return out
}

// materialCharacteristic renders the shared Material column.
func materialCharacteristic(record ruleset.Record) []map[string]any {
	material, _ := record.String("Material")
	materialTerm, _ := record.String("Term Source ID")
	return []map[string]any{characteristic(material, ruleset.OBOURL(materialTerm))}
}

// textCharacteristic adds a plain text characteristic when the field holds a
// non-blank value.
func textCharacteristic(characteristics map[string]any, record ruleset.Record, field, key string) {
	if v, _ := record.String(field); strings.TrimSpace(v) != "" {
		characteristics[key] = []map[string]any{{"text": v}}
	}
}

// unitCharacteristic adds a value/unit characteristic pair when the value
// field holds a non-blank value.
func unitCharacteristic(characteristics map[string]any, record ruleset.Record, field, unitField, key string) {
	if v, _ := record.String(field); strings.TrimSpace(v) != "" {
		unit, _ := record.String(unitField)
		characteristics[key] = []map[string]any{{"text": v, "unit": unit}}
	}
}

// termCharacteristic adds a text characteristic annotated with its ontology
// term when the text field holds a non-blank value.
func termCharacteristic(characteristics map[string]any, record ruleset.Record, field, termField, key string) {
	if v, _ := record.String(field); strings.TrimSpace(v) != "" {
		term, _ := record.String(termField)
		characteristics[key] = []map[string]any{characteristic(v, ruleset.OBOURL(term))}
	}
}

// cellTypeCharacteristics renders the Cell Type term list.
func cellTypeCharacteristics(characteristics map[string]any, record ruleset.Record) {
	if cells, ok := record.TermObjects("Cell Type"); ok && len(cells) > 0 {
		var out []map[string]any
		for _, cell := range cells {
			out = append(out, characteristic(cell.Text, ruleset.OBOURL(cell.Term)))
		}
		characteristics["cell type"] = out
	}
}

func exportSpecimen(record ruleset.Record) map[string]any {
	characteristics := map[string]any{"material": materialCharacteristic(record)}

	organismPart, _ := record.String("Organism Part")
	organismPartTerm, _ := record.String("Organism Part Term Source ID")
	characteristics["organism part"] = []map[string]any{characteristic(organismPart, ruleset.OBOURL(organismPartTerm))}

	stage, _ := record.String("Developmental Stage")
	stageTerm, _ := record.String("Developmental Stage Term Source ID")
	characteristics["developmental stage"] = []map[string]any{characteristic(stage, ruleset.OBOURL(stageTerm))}

	if date, _ := record.String("Specimen Collection Date"); strings.TrimSpace(date) != "" {
		unit, _ := record.String("Unit")
		characteristics["specimen collection date"] = []map[string]any{{"text": date, "unit": unit}}
	}

	if age, _ := record.String("Animal Age At Collection"); strings.TrimSpace(age) != "" {
		unit, _ := record.String("Animal Age At Collection Unit")
		characteristics["animal age at collection"] = []map[string]any{{"text": age, "unit": unit}}
	}

	if location, _ := record.String("Geographic Location"); strings.TrimSpace(location) != "" {
		characteristics["geographic location"] = []map[string]any{{"text": location}}
	}

	if protocol, _ := record.String("Specimen Collection Protocol"); strings.TrimSpace(protocol) != "" {
		characteristics["specimen collection protocol"] = []map[string]any{{"text": protocol}}
	}

	if statuses, ok := record.TermObjects("Health Status"); ok && len(statuses) > 0 {
		var hs []map[string]any
		for _, status := range statuses {
			hs = append(hs, characteristic(status.Text, ruleset.OBOURL(status.Term)))
		}
		characteristics["health status"] = hs
	}

	out := map[string]any{"characteristics": characteristics}
	if rels := relationships(record, "Derived From", "derived from"); len(rels) > 0 {
		out["relationships"] = rels
	}
	return out
}

func exportPool(record ruleset.Record) map[string]any {
	characteristics := map[string]any{"material": materialCharacteristic(record)}

	unitCharacteristic(characteristics, record, "Pool Creation Date", "Unit", "pool creation date")
	textCharacteristic(characteristics, record, "Pool Creation Protocol", "pool creation protocol")
	unitCharacteristic(characteristics, record, "Specimen Volume", "Specimen Volume Unit", "specimen volume")
	unitCharacteristic(characteristics, record, "Specimen Size", "Specimen Size Unit", "specimen size")
	unitCharacteristic(characteristics, record, "Specimen Weight", "Specimen Weight Unit", "specimen weight")

	out := map[string]any{"characteristics": characteristics}
	if rels := relationships(record, "Derived From", "derived from"); len(rels) > 0 {
		out["relationships"] = rels
	}
	return out
}

func exportCellSpecimen(record ruleset.Record) map[string]any {
	characteristics := map[string]any{"material": materialCharacteristic(record)}

	cellTypeCharacteristics(characteristics, record)
	textCharacteristic(characteristics, record, "Purification Protocol", "purification protocol")
	textCharacteristic(characteristics, record, "Markers", "markers")

	out := map[string]any{"characteristics": characteristics}
	if rels := relationships(record, "Derived From", "derived from"); len(rels) > 0 {
		out["relationships"] = rels
	}
	return out
}

func exportSingleCellSpecimen(record ruleset.Record) map[string]any {
	characteristics := map[string]any{"material": materialCharacteristic(record)}

	cellTypeCharacteristics(characteristics, record)
	textCharacteristic(characteristics, record, "Tissue Dissociation", "tissue dissociation")
	textCharacteristic(characteristics, record, "Cell Enrichment", "cell enrichment")
	textCharacteristic(characteristics, record, "Single Cell Isolation Protocol", "single cell isolation protocol")
	textCharacteristic(characteristics, record, "Single Cell Isolation", "single cell isolation")
	textCharacteristic(characteristics, record, "Single Cell Entity", "single cell entity")
	textCharacteristic(characteristics, record, "Single Cell Quality", "single cell quality")
	textCharacteristic(characteristics, record, "Enrichment Markers", "enrichment markers")
	unitCharacteristic(characteristics, record, "Cell Number", "Unit", "cell number")

	out := map[string]any{"characteristics": characteristics}
	if rels := relationships(record, "Derived From", "derived from"); len(rels) > 0 {
		out["relationships"] = rels
	}
	return out
}

func exportCellCulture(record ruleset.Record) map[string]any {
	characteristics := map[string]any{"material": materialCharacteristic(record)}

	termCharacteristic(characteristics, record, "Culture Type", "Culture Type Term Source ID", "culture type")
	cellTypeCharacteristics(characteristics, record)
	textCharacteristic(characteristics, record, "Cell Culture Protocol", "cell culture protocol")
	textCharacteristic(characteristics, record, "Culture Conditions", "culture conditions")
	textCharacteristic(characteristics, record, "Number Of Passages", "number of passages")

	out := map[string]any{"characteristics": characteristics}
	if rels := relationships(record, "Derived From", "derived from"); len(rels) > 0 {
		out["relationships"] = rels
	}
	return out
}

func exportCellLine(record ruleset.Record) map[string]any {
	characteristics := map[string]any{"material": materialCharacteristic(record)}

	organism, _ := record.String("Organism")
	organismTerm, _ := record.String("Organism Term Source ID")
	organismURL := ruleset.OBOURL(organismTerm)
	organismEntry := characteristic(organism, organismURL)
	organismEntry["organism"] = organism
	speciesEntry := characteristic(organism, organismURL)
	speciesEntry["species"] = organism
	characteristics["organism"] = []map[string]any{organismEntry}
	characteristics["species"] = []map[string]any{speciesEntry}

	termCharacteristic(characteristics, record, "Sex", "Sex Term Source ID", "sex")
	textCharacteristic(characteristics, record, "Cell Line", "cell line")
	textCharacteristic(characteristics, record, "Biomaterial Provider", "biomaterial provider")
	textCharacteristic(characteristics, record, "Catalogue Number", "catalogue number")
	unitCharacteristic(characteristics, record, "Date Established", "Unit", "date established")
	textCharacteristic(characteristics, record, "Publication", "publication")
	termCharacteristic(characteristics, record, "Breed", "Breed Term Source ID", "breed")
	cellTypeCharacteristics(characteristics, record)
	termCharacteristic(characteristics, record, "Disease", "Disease Term Source ID", "disease")
	textCharacteristic(characteristics, record, "Karyotype", "karyotype")

	out := map[string]any{"characteristics": characteristics}
	if rels := relationships(record, "Derived From", "derived from"); len(rels) > 0 {
		out["relationships"] = rels
	}
	return out
}

func exportOrganoid(record ruleset.Record) map[string]any {
	characteristics := map[string]any{"material": materialCharacteristic(record)}

	termCharacteristic(characteristics, record, "Organ Model", "Organ Model Term Source ID", "organ model")
	termCharacteristic(characteristics, record, "Organ Part Model", "Organ Part Model Term Source ID", "organ part model")
	textCharacteristic(characteristics, record, "Freezing Method", "freezing method")
	unitCharacteristic(characteristics, record, "Organoid Passage", "Organoid Passage Unit", "organoid passage")
	textCharacteristic(characteristics, record, "Organoid Passage Protocol", "organoid passage protocol")
	textCharacteristic(characteristics, record, "Type Of Organoid Culture", "type of organoid culture")
	textCharacteristic(characteristics, record, "Growth Environment", "growth environment")
	unitCharacteristic(characteristics, record, "Freezing Date", "Unit", "freezing date")
	textCharacteristic(characteristics, record, "Freezing Protocol", "freezing protocol")
	textCharacteristic(characteristics, record, "Organoid Morphology", "organoid morphology")

	out := map[string]any{"characteristics": characteristics}
	if rels := relationships(record, "Derived From", "derived from"); len(rels) > 0 {
		out["relationships"] = rels
	}
	return out
}

// exportTeleostei starts from the specimen shape and layers the aquaculture
// fields shared by both teleostei types on top.
func exportTeleostei(record ruleset.Record) map[string]any {
	out := exportSpecimen(record)
	characteristics := out["characteristics"].(map[string]any)

	textCharacteristic(characteristics, record, "Origin", "origin")
	textCharacteristic(characteristics, record, "Reproductive Strategy", "reproductive strategy")
	textCharacteristic(characteristics, record, "Hatching", "hatching")
	unitCharacteristic(characteristics, record, "Time Post Fertilisation", "Time Post Fertilisation Unit", "time post fertilisation")
	unitCharacteristic(characteristics, record,
		"Post-hatching Water Temperature Average", "Post-hatching Water Temperature Average Unit",
		"post-hatching water temperature average")
	unitCharacteristic(characteristics, record,
		"Average Water Salinity", "Average Water Salinity Unit", "average water salinity")
	textCharacteristic(characteristics, record, "Photoperiod", "photoperiod")
	termCharacteristic(characteristics, record, "Maturity State", "Maturity State Term Source ID", "maturity state")
	textCharacteristic(characteristics, record, "Gonad Type", "gonad type")
	textCharacteristic(characteristics, record, "Method Of Euthanasia", "method of euthanasia")

	return out
}
