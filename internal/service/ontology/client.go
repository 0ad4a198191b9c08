package ontology

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	applog "github.com/faang-dcc/validator-api/internal/platform/logging"
)

const (
	defaultBaseURL   = "https://www.ebi.ac.uk/ols4"
	userAgent        = "faang-validator-api"
	searchRows       = "100"
	prefetchParallel = 8
)

// Client implements Service against the EBI OLS4 search API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	cache      Cache
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL (useful for testing).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithCache sets the term cache. Defaults to an in-process map.
func WithCache(cache Cache) Option {
	return func(c *Client) {
		c.cache = cache
	}
}

// NewClient creates a new OLS search client.
func NewClient(httpClient *http.Client, opts ...Option) *Client {
	c := &Client{
		httpClient: httpClient,
		baseURL:    defaultBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.cache == nil {
		c.cache = NewMemoryCache()
	}
	return c
}

type olsSearchResponse struct {
	Response struct {
		Docs []olsDoc `json:"docs"`
	} `json:"response"`
}

type olsDoc struct {
	IRI          string `json:"iri"`
	Label        string `json:"label"`
	OntologyName string `json:"ontology_name"`
	OboID        string `json:"obo_id"`
}

// Lookup returns the OLS search hits for a term, consulting the cache first.
// Hits whose obo_id does not match the requested term are filtered out so a
// search for PATO:0000384 does not succeed on loosely related terms.
func (c *Client) Lookup(ctx context.Context, term string) ([]Doc, error) {
	if docs, ok := c.cache.Get(ctx, term); ok {
		return docs, nil
	}

	q := url.Values{"q": {term}, "rows": {searchRows}}
	u := c.baseURL + "/api/search?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("searching ols: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusTooManyRequests:
		applog.LogWarn(ctx, "ols rate limited", zap.String("term", term))
		return nil, ErrRateLimited
	default:
		applog.LogWarn(ctx, "ols request failed", zap.String("term", term), zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	var body olsSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding ols response: %w", err)
	}

	docs := make([]Doc, 0, len(body.Response.Docs))
	for _, d := range body.Response.Docs {
		if d.OboID != "" && d.OboID != term {
			continue
		}
		docs = append(docs, Doc{IRI: d.IRI, Label: d.Label, Ontology: d.OntologyName})
	}

	c.cache.Set(ctx, term, docs)
	return docs, nil
}

// Prefetch warms the cache for a batch of terms. Failures are logged and
// skipped; the affected terms surface as lookup errors during validation.
func (c *Client) Prefetch(ctx context.Context, terms []string) {
	seen := make(map[string]struct{}, len(terms))
	unique := terms[:0:0]
	for _, term := range terms {
		if term == "" {
			continue
		}
		if _, ok := seen[term]; ok {
			continue
		}
		seen[term] = struct{}{}
		unique = append(unique, term)
	}

	var mu sync.Mutex
	failed := 0

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(prefetchParallel)
	for _, term := range unique {
		g.Go(func() error {
			if _, err := c.Lookup(gctx, term); err != nil {
				mu.Lock()
				failed++
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	if failed > 0 {
		applog.LogWarn(ctx, "ontology prefetch incomplete",
			zap.Int("requested", len(unique)), zap.Int("failed", failed))
	}
}

// Compile-time interface check
var _ Service = (*Client)(nil)
