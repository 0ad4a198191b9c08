package ruleset

// Record type names for the cell-derived sample types.
const (
	TypeCellSpecimen       = "cell_specimen"
	TypeSingleCellSpecimen = "single_cell_specimen"
	TypeCellCulture        = "cell_culture"
	TypeCellLine           = "cell_line"
)

// cellTypeRule builds the Cell Type term-list rule. Every cell-derived type
// annotates its cells with CL terms.
func cellTypeRule(required bool, maxItems int, ontologies ...Ontology) Rule {
	if len(ontologies) == 0 {
		ontologies = []Ontology{{Prefix: "CL", AllowedClasses: []string{"CL:0000000"}}}
	}
	return Rule{
		Field:      "Cell Type",
		Kind:       KindTermList,
		Required:   required,
		Ontologies: ontologies,
		MaxItems:   maxItems,
	}
}

// CellSpecimen returns the ruleset for cell specimen records: cells purified
// from a single specimen.
func CellSpecimen() Ruleset {
	rules := coreRules()
	rules = append(rules,
		cellTypeRule(true, 0),
		Rule{Field: "Purification Protocol", Kind: KindProtocolURL, Required: true, AllowRestricted: true},
		Rule{Field: "Derived From", Kind: KindTextList, Required: true, MaxItems: 1},
		Rule{Field: "Markers", Kind: KindText},
	)

	return Ruleset{
		Type:           TypeCellSpecimen,
		NameField:      "Sample Name",
		Rules:          rules,
		RefField:       "Derived From",
		RefType:        "derived from",
		RefRequired:    true,
		RefLimit:       1,
		RefTargetTypes: []string{TypeSpecimenFromOrganism},
	}
}

// SingleCellSpecimen returns the ruleset for single cell specimen records.
func SingleCellSpecimen() Ruleset {
	rules := coreRules()
	rules = append(rules,
		Rule{
			Field:    "Tissue Dissociation",
			Kind:     KindVocabulary,
			Required: true,
			Vocabulary: []string{
				"proteolysis", "mesh passage", "fine needle trituration",
				"fluids", "mechanical dissociation",
			},
		},
		Rule{
			Field:    "Cell Enrichment",
			Kind:     KindVocabulary,
			Required: true,
			Vocabulary: []string{
				"fluorescence-activated cell sorting (FACS)", "centrifugation",
				"magnetic levitation", "bead-based sorting",
				"Raman-spectometry sorting", "cell culture",
			},
		},
		cellTypeRule(true, 0),
		Rule{Field: "Single Cell Isolation Protocol", Kind: KindProtocolURL, Required: true, AllowRestricted: true},
		Rule{Field: "Derived From", Kind: KindTextList, Required: true, MaxItems: 1},
		Rule{
			Field:       "Enrichment Markers",
			Kind:        KindVocabulary,
			Recommended: true,
			Vocabulary: []string{
				"CD45+", "CD8+", "CD4+", "CD14+", "KRT8+", "KRT18+",
				"CD68+", "CD79A+", "CD79B+",
			},
		},
		Rule{
			Field:       "Single Cell Isolation",
			Kind:        KindVocabulary,
			Recommended: true,
			Vocabulary: []string{
				"FACS", "microfluidics", "manual selection",
				"droplet-based cell isolation",
			},
		},
		Rule{
			Field:       "Single Cell Entity",
			Kind:        KindVocabulary,
			Recommended: true,
			Vocabulary: []string{
				"whole cell", "nucleus", "cell-cell multimer",
				"spatially encoded cell barcoding",
			},
		},
		Rule{
			Field:       "Single Cell Quality",
			Kind:        KindVocabulary,
			Recommended: true,
			Vocabulary:  []string{"visual inspection", "viability metrics", "not done"},
		},
		Rule{Field: "Cell Number", Kind: KindNumeric, Recommended: true},
		Rule{Field: "Unit", Kind: KindVocabulary, Recommended: true, Vocabulary: []string{"cells"}},
	)

	return Ruleset{
		Type:           TypeSingleCellSpecimen,
		NameField:      "Sample Name",
		Rules:          rules,
		RefField:       "Derived From",
		RefType:        "derived from",
		RefRequired:    true,
		RefLimit:       1,
		RefTargetTypes: []string{TypeSpecimenFromOrganism},
	}
}

// CellCulture returns the ruleset for cell culture records.
func CellCulture() Ruleset {
	rules := coreRules()
	rules = append(rules,
		Rule{Field: "Culture Type", Kind: KindText, Required: true},
		Rule{
			Field:      "Culture Type Term Source ID",
			Kind:       KindOntologyTerm,
			Required:   true,
			TextField:  "Culture Type",
			Ontologies: []Ontology{{Prefix: "BTO", AllowedClasses: []string{"BTO:0000214"}}},
		},
		cellTypeRule(true, 1),
		Rule{Field: "Cell Culture Protocol", Kind: KindProtocolURL, Required: true, AllowRestricted: true},
		Rule{Field: "Culture Conditions", Kind: KindText, Required: true},
		Rule{Field: "Number Of Passages", Kind: KindNumeric, Required: true, AllowRestricted: true},
		Rule{Field: "Derived From", Kind: KindTextList, Required: true, MaxItems: 1},
	)

	return Ruleset{
		Type:           TypeCellCulture,
		NameField:      "Sample Name",
		Rules:          rules,
		RefField:       "Derived From",
		RefType:        "derived from",
		RefRequired:    true,
		RefLimit:       1,
		RefTargetTypes: []string{TypeCellSpecimen, TypeSpecimenFromOrganism},
	}
}

// CellLine returns the ruleset for cell line records. Cell lines stand alone,
// so Derived From is optional and the organism fields are repeated here.
func CellLine() Ruleset {
	rules := coreRules()
	rules = append(rules,
		Rule{Field: "Organism", Kind: KindText, Required: true},
		Rule{
			Field:      "Organism Term Source ID",
			Kind:       KindOntologyTerm,
			Required:   true,
			TextField:  "Organism",
			Ontologies: []Ontology{{Prefix: "NCBITaxon"}},
		},
		Rule{Field: "Sex", Kind: KindText, Required: true},
		Rule{
			Field:      "Sex Term Source ID",
			Kind:       KindOntologyTerm,
			Required:   true,
			TextField:  "Sex",
			Ontologies: []Ontology{{Prefix: "PATO", AllowedClasses: []string{"PATO:0000047"}}},
		},
		Rule{Field: "Cell Line", Kind: KindText, Required: true},
		Rule{Field: "Biomaterial Provider", Kind: KindText, Required: true},
		Rule{Field: "Catalogue Number", Kind: KindText, Recommended: true},
		Rule{Field: "Number of Passages", Kind: KindNumeric, Recommended: true, AllowRestricted: true},
		Rule{Field: "Date Established", Kind: KindDate, Recommended: true, AllowRestricted: true, UnitField: "Unit"},
		Rule{
			Field:       "Unit",
			Kind:        KindVocabulary,
			Recommended: true,
			Vocabulary: []string{
				"YYYY-MM-DD", "YYYY-MM", "YYYY",
				"not applicable", "not collected", "not provided", RestrictedAccess,
			},
		},
		Rule{Field: "Publication", Kind: KindText, Recommended: true},
		Rule{Field: "Breed", Kind: KindText},
		Rule{
			Field:        "Breed Term Source ID",
			Kind:         KindOntologyTerm,
			TextField:    "Breed",
			TextRequired: true,
			Ontologies:   []Ontology{{Prefix: "LBO"}},
		},
		cellTypeRule(false, 0,
			Ontology{Prefix: "CL", AllowedClasses: []string{"CL:0000000"}},
			Ontology{Prefix: "BTO", AllowedClasses: []string{"BTO:0000000"}},
		),
		Rule{Field: "Culture Conditions", Kind: KindText},
		Rule{Field: "Culture Protocol", Kind: KindProtocolURL},
		Rule{Field: "Disease", Kind: KindText},
		Rule{
			Field:        "Disease Term Source ID",
			Kind:         KindOntologyTerm,
			TextField:    "Disease",
			TextRequired: true,
			Ontologies: []Ontology{
				{Prefix: "PATO", AllowedClasses: []string{"PATO:0000461"}},
				{Prefix: "EFO", AllowedClasses: []string{"EFO:0000408"}},
			},
		},
		Rule{Field: "Karyotype", Kind: KindText},
		Rule{Field: "Derived From", Kind: KindTextList, MaxItems: 1},
	)

	return Ruleset{
		Type:      TypeCellLine,
		NameField: "Sample Name",
		Rules:     rules,
		RefField:  "Derived From",
		RefType:   "derived from",
		RefLimit:  1,
	}
}
