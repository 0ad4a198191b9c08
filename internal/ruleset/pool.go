package ruleset

// TypePoolOfSpecimens is the record type name for pooled tissue specimens.
const TypePoolOfSpecimens = "pool_of_specimens"

// PoolOfSpecimens returns the ruleset for pool-of-specimens records. A pool
// derives from one or more specimens submitted in the same batch.
func PoolOfSpecimens() Ruleset {
	rules := coreRules()
	rules = append(rules,
		Rule{Field: "Pool Creation Date", Kind: KindDate, Required: true, AllowRestricted: true, UnitField: "Unit"},
		Rule{
			Field:      "Unit",
			Kind:       KindVocabulary,
			Required:   true,
			Vocabulary: []string{"YYYY-MM-DD", "YYYY-MM", "YYYY", RestrictedAccess},
		},
		Rule{Field: "Pool Creation Protocol", Kind: KindProtocolURL, Required: true, AllowRestricted: true},
		Rule{Field: "Derived From", Kind: KindTextList, Required: true},
		Rule{Field: "Specimen Volume", Kind: KindNumeric},
		Rule{
			Field:      "Specimen Volume Unit",
			Kind:       KindVocabulary,
			Vocabulary: []string{"square centimeters", "liters", "milliliters"},
		},
		Rule{Field: "Specimen Size", Kind: KindNumeric},
		Rule{
			Field: "Specimen Size Unit",
			Kind:  KindVocabulary,
			Vocabulary: []string{
				"meters", "centimeters", "millimeters",
				"square meters", "square centimeters", "square millimeters",
			},
		},
		Rule{Field: "Specimen Weight", Kind: KindNumeric},
		Rule{Field: "Specimen Weight Unit", Kind: KindVocabulary, Vocabulary: []string{"grams", "kilograms"}},
		Rule{Field: "Specimen Picture URL", Kind: KindTextList},
	)

	return Ruleset{
		Type:           TypePoolOfSpecimens,
		NameField:      "Sample Name",
		Rules:          rules,
		RefField:       "Derived From",
		RefType:        "derived from",
		RefRequired:    true,
		RefTargetTypes: []string{TypeSpecimenFromOrganism},
	}
}
