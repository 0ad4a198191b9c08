package ruleset

// Record type names for the teleostei (bony fish) specimen specialisations.
// Both extend the specimen-from-organism rules with aquaculture fields.
const (
	TypeTeleosteiEmbryo       = "teleostei_embryo"
	TypeTeleosteiPostHatching = "teleostei_post_hatching"
)

var (
	originVocabulary = []string{
		"Domesticated diploid", "Domesticated Double-haploid",
		"Domesticated Isogenic", "Wild", RestrictedAccess,
	}
	reproductiveStrategies = []string{
		"gonochoric", "simultaneous hermaphrodite",
		"successive hermaphrodite", RestrictedAccess,
	}
	hatchingStates               = []string{"pre", "post", RestrictedAccess}
	generationsFromWildUnitVocab = []string{
		"generations from wild",
		"not applicable", "not collected", "not provided", RestrictedAccess,
	}
	timePostFertilisationUnits = []string{"hours", "days", "months", "years", RestrictedAccess}
	waterTemperatureUnits      = []string{"Degrees celsius", RestrictedAccess}
	waterSalinityUnits         = []string{"parts per thousand", RestrictedAccess}
)

// teleosteiCommonRules holds the fields shared by embryo and post-hatching
// records on top of the specimen rules.
func teleosteiCommonRules() []Rule {
	return []Rule{
		{Field: "Origin", Kind: KindVocabulary, Required: true, Vocabulary: originVocabulary},
		{Field: "Reproductive Strategy", Kind: KindVocabulary, Required: true, Vocabulary: reproductiveStrategies},
		{Field: "Hatching", Kind: KindVocabulary, Required: true, Vocabulary: hatchingStates},
		{Field: "Time Post Fertilisation", Kind: KindNumeric, Required: true, AllowRestricted: true},
		{
			Field:      "Time Post Fertilisation Unit",
			Kind:       KindVocabulary,
			Required:   true,
			Vocabulary: timePostFertilisationUnits,
		},
		{Field: "Post-hatching Water Temperature Average", Kind: KindNumeric, Required: true, AllowRestricted: true},
		{
			Field:      "Post-hatching Water Temperature Average Unit",
			Kind:       KindVocabulary,
			Required:   true,
			Vocabulary: waterTemperatureUnits,
		},
		{Field: "Average Water Salinity", Kind: KindNumeric, Required: true, AllowRestricted: true},
		{
			Field:      "Average Water Salinity Unit",
			Kind:       KindVocabulary,
			Required:   true,
			Vocabulary: waterSalinityUnits,
		},
		{Field: "Photoperiod", Kind: KindPhotoperiod, Required: true, AllowRestricted: true},
		{Field: "Generations From Wild", Kind: KindNumeric, Recommended: true, AllowRestricted: true},
		{
			Field:       "Generations From Wild Unit",
			Kind:        KindVocabulary,
			Recommended: true,
			Vocabulary:  generationsFromWildUnitVocab,
		},
	}
}

// TeleosteiEmbryo returns the ruleset for teleostei embryo records.
func TeleosteiEmbryo() Ruleset {
	rules := specimenRules()
	rules = append(rules, teleosteiCommonRules()...)
	rules = append(rules,
		Rule{Field: "Pre-hatching Water Temperature Average", Kind: KindNumeric, Required: true, AllowRestricted: true},
		Rule{
			Field:      "Pre-hatching Water Temperature Average Unit",
			Kind:       KindVocabulary,
			Required:   true,
			Vocabulary: waterTemperatureUnits,
		},
		Rule{Field: "Degree Days", Kind: KindNumeric, Required: true, AllowRestricted: true},
		Rule{
			Field:      "Degree Days Unit",
			Kind:       KindVocabulary,
			Required:   true,
			Vocabulary: []string{"Thermal time", RestrictedAccess},
		},
		Rule{
			Field:      "Growth Media",
			Kind:       KindVocabulary,
			Required:   true,
			Vocabulary: []string{"Water", "Growing medium", RestrictedAccess},
		},
		Rule{Field: "Medium Replacement Frequency", Kind: KindNumeric, Required: true, AllowRestricted: true},
		Rule{
			Field:      "Medium Replacement Frequency Unit",
			Kind:       KindVocabulary,
			Required:   true,
			Vocabulary: []string{"days", RestrictedAccess},
		},
		Rule{Field: "Percentage Total Somite Number", Kind: KindPercentage, Required: true, AllowRestricted: true},
		Rule{
			Field:      "Percentage Total Somite Number Unit",
			Kind:       KindVocabulary,
			Required:   true,
			Vocabulary: []string{"%", RestrictedAccess},
		},
	)

	return Ruleset{
		Type:           TypeTeleosteiEmbryo,
		NameField:      "Sample Name",
		Rules:          rules,
		RefField:       "Derived From",
		RefType:        "derived from",
		RefRequired:    true,
		RefTargetTypes: []string{TypeOrganism, TypeSpecimenFromOrganism},
	}
}

// TeleosteiPostHatching returns the ruleset for teleostei post-hatching
// records.
func TeleosteiPostHatching() Ruleset {
	rules := specimenRules()
	rules = append(rules, teleosteiCommonRules()...)
	rules = append(rules,
		Rule{
			Field:    "Gonad Type",
			Kind:     KindVocabulary,
			Required: true,
			Vocabulary: []string{
				"testis", "ovary", "intersexual/transitional stage",
				"ovotestis", RestrictedAccess,
			},
		},
		Rule{Field: "Maturity State", Kind: KindText, Required: true},
		Rule{
			Field:      "Maturity State Term Source ID",
			Kind:       KindOntologyTerm,
			Required:   true,
			TextField:  "Maturity State",
			Ontologies: []Ontology{{Prefix: "PATO", AllowedClasses: []string{"PATO:0001501", "PATO:0001701"}}},
		},
		Rule{Field: "Post-hatching Animal Density", Kind: KindNumeric, Required: true, AllowRestricted: true},
		Rule{
			Field:      "Post-hatching Animal Density Unit",
			Kind:       KindVocabulary,
			Required:   true,
			Vocabulary: []string{"Kg/L", "Kg/m2", "Kg/m3", RestrictedAccess},
		},
		Rule{Field: "Food Restriction", Kind: KindNumeric, Required: true, AllowRestricted: true},
		Rule{
			Field:      "Food Restriction Unit",
			Kind:       KindVocabulary,
			Required:   true,
			Vocabulary: []string{"hours", RestrictedAccess},
		},
		Rule{Field: "Sampling Weight", Kind: KindNumeric, Required: true, AllowRestricted: true},
		Rule{
			Field:      "Sampling Weight Unit",
			Kind:       KindVocabulary,
			Required:   true,
			Vocabulary: []string{"grams", "kilograms", RestrictedAccess},
		},
		Rule{
			Field:    "Method Of Euthanasia",
			Kind:     KindVocabulary,
			Required: true,
			Vocabulary: []string{
				"Non-lethal anaesthetic and exsanguination",
				"Non-lethal anaesthetic and severing spinal cord",
				"Lethal anaesthetic",
				"Lethal anaesthetic and exsanguination",
				"Lethal anaesthetic and severing spinal cord",
				"Concussive blow and exsanguination",
				"Concussive blow and severing spinal cord",
				RestrictedAccess,
			},
		},
		Rule{Field: "Diet", Kind: KindText, Recommended: true},
		Rule{Field: "Standard Length", Kind: KindNumeric, Recommended: true, AllowRestricted: true},
		Rule{
			Field:       "Standard Length Unit",
			Kind:        KindVocabulary,
			Recommended: true,
			Vocabulary:  []string{"millimeters", "centimeters", RestrictedAccess},
		},
		Rule{Field: "Total Length", Kind: KindNumeric, Recommended: true, AllowRestricted: true},
		Rule{
			Field:       "Total Length Unit",
			Kind:        KindVocabulary,
			Recommended: true,
			Vocabulary:  []string{"millimeters", "centimeters", RestrictedAccess},
		},
		Rule{Field: "Fork Length", Kind: KindNumeric, Recommended: true, AllowRestricted: true},
		Rule{
			Field:       "Fork Length Unit",
			Kind:        KindVocabulary,
			Recommended: true,
			Vocabulary:  []string{"millimeters", "centimeters", RestrictedAccess},
		},
		Rule{Field: "Experimental Strain Id", Kind: KindText},
		Rule{Field: "Genetic Background", Kind: KindText},
		Rule{
			Field: "Water Rearing System",
			Kind:  KindVocabulary,
			Vocabulary: []string{
				"Closed water system (recirculatory)",
				"Open water system", RestrictedAccess,
			},
		},
		Rule{Field: "Average Water Oxygen", Kind: KindNumeric, AllowRestricted: true},
		Rule{
			Field:      "Average Water Oxygen Unit",
			Kind:       KindVocabulary,
			Vocabulary: []string{"%", "mg/L", RestrictedAccess},
		},
		Rule{Field: "Sampling Day Start Time", Kind: KindTime},
		Rule{Field: "Sampling Day End Time", Kind: KindTime},
		Rule{
			Field: "Anaesthetic Or Sedative Name",
			Kind:  KindVocabulary,
			Vocabulary: []string{
				"Tricaine methanesulfonate (MS-222)",
				"Tert-butyl hydroperoxide (TBH)",
				"Benzocaine", "Clove oil", "2-phenoxyethanol",
				RestrictedAccess,
			},
		},
	)

	return Ruleset{
		Type:           TypeTeleosteiPostHatching,
		NameField:      "Sample Name",
		Rules:          rules,
		RefField:       "Derived From",
		RefType:        "derived from",
		RefRequired:    true,
		RefTargetTypes: []string{TypeOrganism, TypeSpecimenFromOrganism},
	}
}
