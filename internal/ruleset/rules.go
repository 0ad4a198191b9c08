package ruleset

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Kind selects the value check applied to a field.
type Kind int

const (
	KindText Kind = iota
	KindNumeric
	KindPercentage
	KindLatitude
	KindLongitude
	KindDate
	KindTime
	KindPhotoperiod
	KindURL
	KindProtocolURL
	KindVocabulary
	KindOntologyTerm
	KindTextList
	KindTermList
)

// Ontology names an ontology a term field may draw from, optionally
// restricted to descendants of the listed root classes.
type Ontology struct {
	Prefix         string
	AllowedClasses []string
}

// Rule describes the constraints on a single record field. Field is the
// human-readable column alias used as the key in submitted records
// (e.g. "Sample Name"), matching the original submission spreadsheets.
type Rule struct {
	Field           string
	Kind            Kind
	Required        bool
	Recommended     bool
	AllowRestricted bool
	Vocabulary      []string   // KindVocabulary: permitted values
	Ontologies      []Ontology // KindOntologyTerm, KindTermList
	TextField       string     // KindOntologyTerm: companion free-text field for label checks
	UnitField       string     // KindDate: companion unit field selecting the pattern
	MaxItems        int        // list kinds; 0 means unlimited
	// TextRequired ties an optional term field to its TextField: providing
	// one without the other is an error.
	TextRequired bool
	// RequiredWhenField makes the field required whenever the named field
	// holds a value other than RequiredWhenNot.
	RequiredWhenField string
	RequiredWhenNot   string
}

// Ruleset is the full set of rules for one record type.
type Ruleset struct {
	Type      string
	NameField string // field holding the unique record name
	Rules     []Rule
	// RefField names the relationship column whose values must resolve to
	// other records or BioSamples accessions. RefRequired makes an empty
	// list an error, RefLimit caps the list (0 = unlimited).
	RefField    string
	RefType     string // relationship type for BioSamples export ("child of", "derived from")
	RefRequired bool
	RefLimit    int
	// RefTargetTypes lists the record types an in-batch reference may point
	// at. Empty means any type.
	RefTargetTypes []string
}

var (
	datePatterns = map[string]*regexp.Regexp{
		"YYYY-MM-DD": regexp.MustCompile(`^[12]\d{3}-(0[1-9]|1[0-2])-(0[1-9]|[12]\d|3[01])$`),
		"YYYY-MM":    regexp.MustCompile(`^[12]\d{3}-(0[1-9]|1[0-2])$`),
		"YYYY":       regexp.MustCompile(`^[12]\d{3}$`),
	}
	timePattern        = regexp.MustCompile(`^([0-1][0-9]|[2][0-3]):([0-5][0-9])$`)
	photoperiodPattern = regexp.MustCompile(`^(2[0-4]|1[0-9]|[1-9])L:(2[0-4]|1[0-9]|[1-9])D$`)
)

// CheckSampleName enforces that a record name is present and non-blank.
func CheckSampleName(v string) error {
	if strings.TrimSpace(v) == "" {
		return fmt.Errorf("is required and cannot be empty")
	}
	return nil
}

// CheckNonNegative parses v as a number and rejects negatives.
func CheckNonNegative(v string) error {
	n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return fmt.Errorf("must be a valid number, got '%s'", v)
	}
	if n < 0 {
		return fmt.Errorf("must be non-negative, got %v", n)
	}
	return nil
}

// CheckPercentage enforces a numeric value in [0, 100].
func CheckPercentage(v string) error {
	n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return fmt.Errorf("must be a valid number, got '%s'", v)
	}
	if n < 0 || n > 100 {
		return fmt.Errorf("must be between 0 and 100, got %v", n)
	}
	return nil
}

// CheckLatitude enforces a numeric value in [-90, 90] degrees.
func CheckLatitude(v string) error {
	n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return fmt.Errorf("must be a valid number, got '%s'", v)
	}
	if n < -90 || n > 90 {
		return fmt.Errorf("must be between -90 and 90 degrees, got %v", n)
	}
	return nil
}

// CheckLongitude enforces a numeric value in [-180, 180] degrees.
func CheckLongitude(v string) error {
	n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return fmt.Errorf("must be a valid number, got '%s'", v)
	}
	if n < -180 || n > 180 {
		return fmt.Errorf("must be between -180 and 180 degrees, got %v", n)
	}
	return nil
}

// CheckDate validates v against the pattern selected by unit. Unknown units
// pass through: the unit field carries its own vocabulary rule.
func CheckDate(v, unit string) error {
	if IsRestrictedValue(v) || unit == "" {
		return nil
	}
	pattern, ok := datePatterns[unit]
	if !ok {
		return nil
	}
	if !pattern.MatchString(v) {
		return fmt.Errorf("invalid format: %s. Must match %s pattern", v, unit)
	}
	return nil
}

// CheckTime enforces HH:MM between 00:00 and 23:59.
func CheckTime(v string) error {
	if !timePattern.MatchString(v) {
		return fmt.Errorf("must be in HH:MM format (00:00 to 23:59), got '%s'", v)
	}
	return nil
}

// CheckPhotoperiod enforces "natural light" or the XXL:XXD light/dark pattern.
func CheckPhotoperiod(v string) error {
	if v == "natural light" || v == RestrictedAccess {
		return nil
	}
	if !photoperiodPattern.MatchString(v) {
		return fmt.Errorf("must be 'natural light' or follow pattern 'XXL:XXD' (e.g., '12L:12D'), got '%s'", v)
	}
	return nil
}

// CheckURL enforces an http(s) link.
func CheckURL(v string) error {
	return checkURLProtocols(v, "http://", "https://")
}

// CheckProtocolURL enforces an http(s) or ftp link, matching protocol
// documents hosted on the FAANG FTP site.
func CheckProtocolURL(v string) error {
	return checkURLProtocols(v, "http://", "https://", "ftp://")
}

func checkURLProtocols(v string, protocols ...string) error {
	for _, p := range protocols {
		if strings.HasPrefix(v, p) {
			return nil
		}
	}
	return fmt.Errorf("must be a valid URL starting with '%s', got '%s'", strings.Join(protocols, "', '"), v)
}

// CheckVocabulary enforces membership in the permitted values.
func CheckVocabulary(v string, vocabulary []string) error {
	for _, allowed := range vocabulary {
		if v == allowed {
			return nil
		}
	}
	return fmt.Errorf("must be one of the permitted values, got '%s'", v)
}
