package ruleset

// TypeOrganoid is the record type name for organoid cultures.
const TypeOrganoid = "organoid"

// Organoid returns the ruleset for organoid records. The freezing fields are
// only meaningful when Freezing Method is not "fresh"; that cross-field
// constraint is enforced alongside the relationship checks.
func Organoid() Ruleset {
	rules := coreRules()
	rules = append(rules,
		Rule{Field: "Organ Model", Kind: KindText, Required: true},
		Rule{
			Field:     "Organ Model Term Source ID",
			Kind:      KindOntologyTerm,
			Required:  true,
			TextField: "Organ Model",
			Ontologies: []Ontology{
				{Prefix: "UBERON", AllowedClasses: []string{"UBERON:0001062"}},
				{Prefix: "BTO", AllowedClasses: []string{"BTO:0000042"}},
			},
		},
		Rule{
			Field:    "Freezing Method",
			Kind:     KindVocabulary,
			Required: true,
			Vocabulary: []string{
				"ambient temperature", "cut slide", "fresh", "frozen, -70 freezer",
				"frozen, -150 freezer", "frozen, liquid nitrogen", "frozen, vapor phase",
				"paraffin block", "RNAlater, frozen", "TRIzol, frozen",
			},
		},
		Rule{Field: "Organoid Passage", Kind: KindNumeric, Required: true},
		Rule{Field: "Organoid Passage Unit", Kind: KindVocabulary, Vocabulary: []string{"passages"}},
		Rule{Field: "Organoid Passage Protocol", Kind: KindProtocolURL, Required: true, AllowRestricted: true},
		Rule{
			Field:      "Type Of Organoid Culture",
			Kind:       KindVocabulary,
			Required:   true,
			Vocabulary: []string{"2D", "3D"},
		},
		Rule{
			Field:      "Growth Environment",
			Kind:       KindVocabulary,
			Required:   true,
			Vocabulary: []string{"matrigel", "liquid suspension", "adherent"},
		},
		Rule{Field: "Derived From", Kind: KindTextList, Required: true, MaxItems: 1},
		Rule{Field: "Organ Part Model", Kind: KindText},
		Rule{
			Field:        "Organ Part Model Term Source ID",
			Kind:         KindOntologyTerm,
			TextField:    "Organ Part Model",
			TextRequired: true,
			Ontologies: []Ontology{
				{Prefix: "UBERON", AllowedClasses: []string{"UBERON:0001062"}},
				{Prefix: "BTO", AllowedClasses: []string{"BTO:0000042"}},
			},
		},
		Rule{Field: "Number Of Frozen Cells", Kind: KindNumeric},
		Rule{Field: "Number Of Frozen Cells Unit", Kind: KindVocabulary, Vocabulary: []string{"organoids"}},
		Rule{Field: "Organoid Culture And Passage Protocol", Kind: KindProtocolURL, AllowRestricted: true},
		Rule{Field: "Organoid Morphology", Kind: KindText},
		Rule{Field: "Stored Oxygen Level", Kind: KindText},
		Rule{Field: "Stored Oxygen Level Unit", Kind: KindText},
		Rule{Field: "Incubation Temperature", Kind: KindText},
		Rule{Field: "Incubation Temperature Unit", Kind: KindText},
		Rule{
			Field:             "Freezing Date",
			Kind:              KindDate,
			AllowRestricted:   true,
			UnitField:         "Unit",
			RequiredWhenField: "Freezing Method",
			RequiredWhenNot:   "fresh",
		},
		Rule{
			Field:      "Unit",
			Kind:       KindVocabulary,
			Vocabulary: []string{"YYYY-MM-DD", "YYYY-MM", "YYYY", RestrictedAccess},
		},
		Rule{
			Field:             "Freezing Protocol",
			Kind:              KindProtocolURL,
			AllowRestricted:   true,
			RequiredWhenField: "Freezing Method",
			RequiredWhenNot:   "fresh",
		},
	)

	return Ruleset{
		Type:           TypeOrganoid,
		NameField:      "Sample Name",
		Rules:          rules,
		RefField:       "Derived From",
		RefType:        "derived from",
		RefRequired:    true,
		RefLimit:       1,
		RefTargetTypes: []string{TypeSpecimenFromOrganism},
	}
}
