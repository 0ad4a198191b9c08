package ontology

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func olsServer(t *testing.T, hits int32, status int) (*httptest.Server, *int32) {
	t.Helper()
	var requests int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
		if r.URL.Path != "/api/search" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if rows := r.URL.Query().Get("rows"); rows != "100" {
			t.Errorf("expected rows=100, got %s", rows)
		}
		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}
		term := r.URL.Query().Get("q")
		w.Header().Set("Content-Type", "application/json")
		docs := ""
		for i := range hits {
			if i > 0 {
				docs += ","
			}
			docs += fmt.Sprintf(`{"iri":"http://purl.obolibrary.org/obo/x","label":"male","ontology_name":"pato","obo_id":"%s"}`, term)
		}
		fmt.Fprintf(w, `{"response":{"docs":[%s]}}`, docs)
	}))
	t.Cleanup(srv.Close)
	return srv, &requests
}

func TestLookupReturnsMatchingDocs(t *testing.T) {
	srv, _ := olsServer(t, 2, http.StatusOK)
	client := NewClient(srv.Client(), WithBaseURL(srv.URL))

	docs, err := client.Lookup(context.Background(), "PATO:0000384")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 docs, got %d", len(docs))
	}
	if docs[0].Label != "male" || docs[0].Ontology != "pato" {
		t.Errorf("unexpected doc %+v", docs[0])
	}
}

func TestLookupFiltersMismatchedOboIDs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"response":{"docs":[
			{"label":"male","ontology_name":"pato","obo_id":"PATO:0000384"},
			{"label":"male genitalia","ontology_name":"pato","obo_id":"PATO:0000385"}
		]}}`)
	}))
	t.Cleanup(srv.Close)
	client := NewClient(srv.Client(), WithBaseURL(srv.URL))

	docs, err := client.Lookup(context.Background(), "PATO:0000384")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(docs) != 1 || docs[0].Label != "male" {
		t.Errorf("expected the mismatched hit to be dropped, got %+v", docs)
	}
}

func TestLookupUsesCache(t *testing.T) {
	srv, requests := olsServer(t, 1, http.StatusOK)
	client := NewClient(srv.Client(), WithBaseURL(srv.URL))

	for range 3 {
		if _, err := client.Lookup(context.Background(), "PATO:0000384"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if got := atomic.LoadInt32(requests); got != 1 {
		t.Errorf("expected 1 upstream request, got %d", got)
	}
}

func TestLookupRateLimited(t *testing.T) {
	srv, _ := olsServer(t, 0, http.StatusTooManyRequests)
	client := NewClient(srv.Client(), WithBaseURL(srv.URL))

	if _, err := client.Lookup(context.Background(), "PATO:0000384"); err != ErrRateLimited {
		t.Fatalf("expected ErrRateLimited, got %v", err)
	}
}

func TestPrefetchWarmsCache(t *testing.T) {
	srv, requests := olsServer(t, 1, http.StatusOK)
	client := NewClient(srv.Client(), WithBaseURL(srv.URL))

	terms := []string{"PATO:0000384", "PATO:0000384", "NCBITaxon:9913", ""}
	client.Prefetch(context.Background(), terms)

	if got := atomic.LoadInt32(requests); got != 2 {
		t.Errorf("expected 2 upstream requests for 2 unique terms, got %d", got)
	}

	// Subsequent lookups are served from cache.
	if _, err := client.Lookup(context.Background(), "NCBITaxon:9913"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := atomic.LoadInt32(requests); got != 2 {
		t.Errorf("expected cached lookup, got %d requests", got)
	}
}
