package ruleset

// TypeOrganism is the record type name for living animals.
const TypeOrganism = "organism"

// Organism returns the ruleset for organism records.
func Organism() Ruleset {
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
		Rule{Field: "Birth Date", Kind: KindDate, Recommended: true, AllowRestricted: true, UnitField: "Birth Date Unit"},
		Rule{
			Field:      "Birth Date Unit",
			Kind:       KindVocabulary,
			Vocabulary: []string{"YYYY-MM-DD", "YYYY-MM", "YYYY", RestrictedAccess},
		},
		Rule{Field: "Breed", Kind: KindText, Recommended: true},
		Rule{
			Field:      "Breed Term Source ID",
			Kind:       KindOntologyTerm,
			TextField:  "Breed",
			Ontologies: []Ontology{{Prefix: "LBO"}},
		},
		Rule{
			Field:       "Health Status",
			Kind:        KindTermList,
			Recommended: true,
			Ontologies: []Ontology{
				{Prefix: "PATO", AllowedClasses: []string{"PATO:0000461"}},
				{Prefix: "EFO", AllowedClasses: []string{"EFO:0000408"}},
			},
		},
		Rule{Field: "Birth Location", Kind: KindText},
		Rule{Field: "Birth Location Latitude", Kind: KindLatitude, AllowRestricted: true},
		Rule{
			Field:      "Birth Location Latitude Unit",
			Kind:       KindVocabulary,
			Vocabulary: []string{"decimal degrees", RestrictedAccess},
		},
		Rule{Field: "Birth Location Longitude", Kind: KindLongitude, AllowRestricted: true},
		Rule{
			Field:      "Birth Location Longitude Unit",
			Kind:       KindVocabulary,
			Vocabulary: []string{"decimal degrees", RestrictedAccess},
		},
		Rule{Field: "Birth Weight", Kind: KindNumeric, AllowRestricted: true},
		Rule{
			Field:      "Birth Weight Unit",
			Kind:       KindVocabulary,
			Vocabulary: []string{"grams", "kilograms", RestrictedAccess},
		},
		Rule{Field: "Child Of", Kind: KindTextList, MaxItems: 2},
	)

	return Ruleset{
		Type:           TypeOrganism,
		NameField:      "Sample Name",
		Rules:          rules,
		RefField:       "Child Of",
		RefType:        "child of",
		RefLimit:       2,
		RefTargetTypes: []string{TypeOrganism},
	}
}
