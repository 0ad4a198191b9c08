package ruleset

// Core metadata rules shared by every sample type, from the FAANG sample
// core ruleset: name, material, project membership and availability.

// materialVocabulary lists the permitted Material values across the standard.
var materialVocabulary = []string{
	"organism",
	"specimen from organism",
	"pool of specimens",
	"cell specimen",
	"single cell specimen",
	"cell culture",
	"cell line",
	"organoid",
	RestrictedAccess,
}

func coreRules() []Rule {
	return []Rule{
		{Field: "Sample Name", Kind: KindText, Required: true},
		{Field: "Sample Description", Kind: KindText},
		{Field: "Material", Kind: KindVocabulary, Required: true, Vocabulary: materialVocabulary},
		{
			Field:      "Term Source ID",
			Kind:       KindOntologyTerm,
			Required:   true,
			TextField:  "Material",
			Ontologies: []Ontology{{Prefix: "OBI"}},
		},
		{Field: "Project", Kind: KindVocabulary, Required: true, Vocabulary: []string{"FAANG"}},
		{
			Field: "Secondary Project",
			Kind:  KindVocabulary,
			Vocabulary: []string{
				"AQUA-FAANG", "BovReg", "GENE-SWitCH", "Bovine-FAANG",
				"EFFICACE", "GEroNIMO", "RUMIGEN", "Equine-FAANG",
				"Holoruminant", "USPIGFAANG",
			},
		},
		{Field: "Availability", Kind: KindURL},
		{Field: "Same as", Kind: KindText},
	}
}
