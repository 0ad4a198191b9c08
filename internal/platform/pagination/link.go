package pagination

import (
	"fmt"
	"net/url"
)

// BuildLinkHeader constructs an RFC 8288 Link header, preserving
// existing query params.
func BuildLinkHeader(baseURL string, query url.Values, nextCursor string) string {
	if nextCursor == "" {
		return ""
	}
	q := cloneValues(query)
	q.Set("cursor", nextCursor)
	return fmt.Sprintf("<%s?%s>; rel=%q", baseURL, q.Encode(), "next")
}

func cloneValues(v url.Values) url.Values {
	if v == nil {
		return make(url.Values)
	}
	out := make(url.Values, len(v))
	for k, vals := range v {
		out[k] = append([]string(nil), vals...)
	}
	return out
}
