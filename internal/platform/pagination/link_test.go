package pagination

import (
	"net/url"
	"testing"
)

func TestBuildLinkHeader(t *testing.T) {
	got := BuildLinkHeader("/v1/validation/tasks", nil, "abc123")
	want := `</v1/validation/tasks?cursor=abc123>; rel="next"`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestBuildLinkHeaderPreservesQuery(t *testing.T) {
	q := url.Values{"limit": []string{"50"}}
	got := BuildLinkHeader("/v1/validation/tasks", q, "abc123")
	want := `</v1/validation/tasks?cursor=abc123&limit=50>; rel="next"`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	// The caller's values must not be mutated.
	if q.Get("cursor") != "" {
		t.Errorf("input query was mutated: %v", q)
	}
}

func TestBuildLinkHeaderNoCursor(t *testing.T) {
	if got := BuildLinkHeader("/v1/validation/tasks", nil, ""); got != "" {
		t.Errorf("expected empty header, got %q", got)
	}
}
