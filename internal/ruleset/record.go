package ruleset

import "strconv"

// Record is one submitted metadata record, keyed by column alias. Values come
// straight from the decoded JSON body, so strings, numbers, lists and nested
// objects all appear as their encoding/json types.
type Record map[string]any

// TermObject is a free-text value paired with an ontology term, the shape
// used by list fields such as Health Status.
type TermObject struct {
	Text string `json:"text"`
	Term string `json:"term"`
}

// String returns the field rendered as a string. Numbers are formatted
// without a trailing exponent so "12" and 12 validate identically.
func (r Record) String(field string) (string, bool) {
	v, ok := r[field]
	if !ok || v == nil {
		return "", false
	}
	switch t := v.(type) {
	case string:
		return t, true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(t), true
	default:
		return "", false
	}
}

// StringList returns the field as a list of strings. A bare string is
// treated as a single-element list.
func (r Record) StringList(field string) ([]string, bool) {
	v, ok := r[field]
	if !ok || v == nil {
		return nil, false
	}
	switch t := v.(type) {
	case string:
		return []string{t}, true
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	default:
		return nil, false
	}
}

// TermObjects returns the field as a list of text/term pairs.
func (r Record) TermObjects(field string) ([]TermObject, bool) {
	v, ok := r[field]
	if !ok || v == nil {
		return nil, false
	}
	items, ok := v.([]any)
	if !ok {
		return nil, false
	}
	out := make([]TermObject, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, false
		}
		var to TermObject
		if s, ok := obj["text"].(string); ok {
			to.Text = s
		}
		if s, ok := obj["term"].(string); ok {
			to.Term = s
		}
		out = append(out, to)
	}
	return out, true
}

// Has reports whether the field is present with a non-nil value.
func (r Record) Has(field string) bool {
	v, ok := r[field]
	return ok && v != nil
}
