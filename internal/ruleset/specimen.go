package ruleset

// TypeSpecimenFromOrganism is the record type name for tissue specimens.
const TypeSpecimenFromOrganism = "specimen_from_organism"

// geographicLocations is the INSDC country/sea vocabulary, including the
// historically valid names kept at the end for older submissions.
var geographicLocations = []string{
	"Afghanistan", "Albania", "Algeria", "American Samoa", "Andorra", "Angola", "Anguilla",
	"Antarctica", "Antigua and Barbuda", "Arctic Ocean", "Argentina", "Armenia", "Aruba",
	"Ashmore and Cartier Islands", "Atlantic Ocean", "Australia", "Austria", "Azerbaijan", "Bahamas",
	"Bahrain", "Baltic Sea", "Baker Island", "Bangladesh", "Barbados", "Bassas da India", "Belarus",
	"Belgium", "Belize", "Benin", "Bermuda", "Bhutan", "Bolivia", "Borneo", "Bosnia and Herzegovina",
	"Botswana", "Bouvet Island", "Brazil", "British Virgin Islands", "Brunei", "Bulgaria", "Burkina Faso",
	"Burundi", "Cambodia", "Cameroon", "Canada", "Cape Verde", "Cayman Islands", "Central African Republic",
	"Chad", "Chile", "China", "Christmas Island", "Clipperton Island", "Cocos Islands", "Colombia", "Comoros",
	"Cook Islands", "Coral Sea Islands", "Costa Rica", "Cote d'Ivoire", "Croatia", "Cuba", "Curacao",
	"Cyprus", "Czech Republic", "Democratic Republic of the Congo", "Denmark", "Djibouti", "Dominica",
	"Dominican Republic", "Ecuador", "Egypt", "El Salvador", "Equatorial Guinea", "Eritrea", "Estonia",
	"Eswatini", "Ethiopia", "Europa Island", "Falkland Islands (Islas Malvinas)", "Faroe Islands", "Fiji",
	"Finland", "France", "French Guiana", "French Polynesia", "French Southern and Antarctic Lands", "Gabon",
	"Gambia", "Gaza Strip", "Georgia", "Germany", "Ghana", "Gibraltar", "Glorioso Islands", "Greece",
	"Greenland", "Grenada", "Guadeloupe", "Guam", "Guatemala", "Guernsey", "Guinea", "Guinea-Bissau",
	"Guyana", "Haiti", "Heard Island and McDonald Islands", "Honduras", "Hong Kong", "Howland Island",
	"Hungary", "Iceland", "India", "Indian Ocean", "Indonesia", "Iran", "Iraq", "Ireland", "Isle of Man",
	"Israel", "Italy", "Jamaica", "Jan Mayen", "Japan", "Jarvis Island", "Jersey", "Johnston Atoll", "Jordan",
	"Juan de Nova Island", "Kazakhstan", "Kenya", "Kerguelen Archipelago", "Kingman Reef", "Kiribati",
	"Kosovo", "Kuwait", "Kyrgyzstan", "Laos", "Latvia", "Lebanon", "Lesotho", "Liberia", "Libya",
	"Liechtenstein", "Line Islands", "Lithuania", "Luxembourg", "Macau", "Madagascar", "Malawi", "Malaysia",
	"Maldives", "Mali", "Malta", "Marshall Islands", "Martinique", "Mauritania", "Mauritius", "Mayotte",
	"Mediterranean Sea", "Mexico", "Micronesia, Federated States of", "Midway Islands", "Moldova", "Monaco",
	"Mongolia", "Montenegro", "Montserrat", "Morocco", "Mozambique", "Myanmar", "Namibia", "Nauru",
	"Navassa Island", "Nepal", "Netherlands", "New Caledonia", "New Zealand", "Nicaragua", "Niger", "Nigeria",
	"Niue", "Norfolk Island", "North Korea", "North Macedonia", "North Sea", "Northern Mariana Islands",
	"Norway", "Oman", "Pacific Ocean", "Pakistan", "Palau", "Palmyra Atoll", "Panama", "Papua New Guinea",
	"Paracel Islands", "Paraguay", "Peru", "Philippines", "Pitcairn Islands", "Poland", "Portugal",
	"Puerto Rico", "Qatar", "Republic of the Congo", "Reunion", "Romania", "Ross Sea", "Russia", "Rwanda",
	"Saint Barthelemy", "Saint Helena", "Saint Kitts and Nevis", "Saint Lucia", "Saint Martin",
	"Saint Pierre and Miquelon", "Saint Vincent and the Grenadines", "Samoa", "San Marino",
	"Sao Tome and Principe", "Saudi Arabia", "Senegal", "Serbia", "Seychelles", "Sierra Leone", "Singapore",
	"Sint Maarten", "Slovakia", "Slovenia", "Solomon Islands", "Somalia", "South Africa",
	"South Georgia and the South Sandwich Islands", "South Korea", "South Sudan", "Southern Ocean", "Spain",
	"Spratly Islands", "Sri Lanka", "State of Palestine", "Sudan", "Suriname", "Svalbard", "Sweden",
	"Switzerland", "Syria", "Taiwan", "Tajikistan", "Tanzania", "Tasman Sea", "Thailand", "Timor-Leste",
	"Togo", "Tokelau", "Tonga", "Trinidad and Tobago", "Tromelin Island", "Tunisia", "Turkey", "Turkmenistan",
	"Turks and Caicos Islands", "Tuvalu", "USA", "Uganda", "Ukraine", "United Arab Emirates",
	"United Kingdom", "Uruguay", "Uzbekistan", "Vanuatu", "Venezuela", "Viet Nam", "Virgin Islands",
	"Wake Island", "Wallis and Futuna", "West Bank", "Western Sahara", "Yemen", "Zambia", "Zimbabwe",
	"Belgian Congo", "British Guiana", "Burma", "Czechoslovakia", "East Timor",
	"Former Yugoslav Republic of Macedonia", "Korea", "Macedonia", "Micronesia", "Netherlands Antilles",
	"Serbia and Montenegro", "Siam", "Swaziland", "The former Yugoslav Republic of Macedonia", "USSR",
	"Yugoslavia", "Zaire", RestrictedAccess,
}

// embryonicStages is the Hamburger-Hamilton staging vocabulary.
var embryonicStages = []string{
	"Early cleavage", "During cleavage", "Late cleavage",
	"1", "2", "3", "4", "5", "6", "7", "7 to 8-", "8", "9",
	"9+ to 10-", "10", "11", "12", "13", "13+ to 14-", "14",
	"14+ to 15-", "15", "16", "17", "18", "19", "20", "21", "22", "23",
	"24", "25", "26", "27", "28", "29", "30", "31", "32", "33", "34",
	"35", "36", "37", "38", "39", "40", "41", "42", "43", "44", "45", "46",
}

// specimenRules builds the rules shared by specimen-from-organism records
// and the teleostei specialisations layered on top of them.
func specimenRules() []Rule {
	rules := coreRules()
	return append(rules,
		Rule{Field: "Specimen Collection Date", Kind: KindDate, Required: true, AllowRestricted: true, UnitField: "Unit"},
		Rule{
			Field:      "Unit",
			Kind:       KindVocabulary,
			Required:   true,
			Vocabulary: []string{"YYYY-MM-DD", "YYYY-MM", "YYYY", RestrictedAccess},
		},
		Rule{Field: "Geographic Location", Kind: KindVocabulary, Required: true, Vocabulary: geographicLocations},
		Rule{Field: "Animal Age At Collection", Kind: KindNumeric, Required: true, AllowRestricted: true},
		Rule{
			Field:    "Animal Age At Collection Unit",
			Kind:     KindVocabulary,
			Required: true,
			Vocabulary: []string{
				"minutes", "hours", "month", "year", "days", "weeks", "months", "years",
				"minute", "hour", "day", "week", RestrictedAccess,
			},
		},
		Rule{Field: "Developmental Stage", Kind: KindText, Required: true},
		Rule{
			Field:     "Developmental Stage Term Source ID",
			Kind:      KindOntologyTerm,
			Required:  true,
			TextField: "Developmental Stage",
			Ontologies: []Ontology{
				{Prefix: "EFO", AllowedClasses: []string{"EFO:0000399"}},
				{Prefix: "UBERON", AllowedClasses: []string{"UBERON:0000105"}},
			},
		},
		Rule{Field: "Organism Part", Kind: KindText, Required: true},
		Rule{
			Field:     "Organism Part Term Source ID",
			Kind:      KindOntologyTerm,
			Required:  true,
			TextField: "Organism Part",
			Ontologies: []Ontology{
				{Prefix: "UBERON", AllowedClasses: []string{"UBERON:0001062"}},
				{Prefix: "BTO"},
			},
		},
		Rule{Field: "Specimen Collection Protocol", Kind: KindProtocolURL, Required: true, AllowRestricted: true},
		Rule{Field: "Derived From", Kind: KindTextList, Required: true},
		Rule{
			Field:       "Health Status",
			Kind:        KindTermList,
			Recommended: true,
			Ontologies: []Ontology{
				{Prefix: "PATO", AllowedClasses: []string{"PATO:0000461"}},
				{Prefix: "EFO", AllowedClasses: []string{"EFO:0000408"}},
			},
		},
		Rule{Field: "Fasted Status", Kind: KindVocabulary, Vocabulary: []string{"fed", "fasted", "unknown"}},
		Rule{Field: "Number of Pieces", Kind: KindNumeric},
		Rule{Field: "Number of Pieces Unit", Kind: KindVocabulary, Vocabulary: []string{"count"}},
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
		Rule{Field: "Gestational Age At Sample Collection", Kind: KindNumeric},
		Rule{
			Field:      "Gestational Age At Sample Collection Unit",
			Kind:       KindVocabulary,
			Vocabulary: []string{"days", "weeks", "day", "week"},
		},
		Rule{Field: "Average Incubation temperature", Kind: KindNumeric},
		Rule{
			Field:      "Average Incubation temperature Unit",
			Kind:       KindVocabulary,
			Vocabulary: []string{"degrees celsius"},
		},
		Rule{Field: "Average Incubation Humidity", Kind: KindPercentage},
		Rule{Field: "Average Incubation Humidity Unit", Kind: KindVocabulary, Vocabulary: []string{"%"}},
		Rule{Field: "Embryonic Stage", Kind: KindVocabulary, Vocabulary: embryonicStages},
		Rule{
			Field:      "Embryonic Stage Unit",
			Kind:       KindVocabulary,
			Vocabulary: []string{"stage Hamburger Hamilton"},
		},
	)
}

// SpecimenFromOrganism returns the ruleset for specimen-from-organism records.
func SpecimenFromOrganism() Ruleset {
	return Ruleset{
		Type:           TypeSpecimenFromOrganism,
		NameField:      "Sample Name",
		Rules:          specimenRules(),
		RefField:       "Derived From",
		RefType:        "derived from",
		RefRequired:    true,
		RefTargetTypes: []string{TypeOrganism, TypeSpecimenFromOrganism},
	}
}

// All returns every supported ruleset keyed by record type.
func All() map[string]Ruleset {
	return map[string]Ruleset{
		TypeOrganism:              Organism(),
		TypeSpecimenFromOrganism:  SpecimenFromOrganism(),
		TypePoolOfSpecimens:       PoolOfSpecimens(),
		TypeCellSpecimen:          CellSpecimen(),
		TypeSingleCellSpecimen:    SingleCellSpecimen(),
		TypeCellCulture:           CellCulture(),
		TypeCellLine:              CellLine(),
		TypeOrganoid:              Organoid(),
		TypeTeleosteiEmbryo:       TeleosteiEmbryo(),
		TypeTeleosteiPostHatching: TeleosteiPostHatching(),
	}
}
