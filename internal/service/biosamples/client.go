package biosamples

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"

	"go.uber.org/zap"

	applog "github.com/faang-dcc/validator-api/internal/platform/logging"
)

const (
	defaultBaseURL = "https://www.ebi.ac.uk/biosamples"
	userAgent      = "faang-validator-api"
)

// Client implements Service against the EBI BioSamples API.
type Client struct {
	httpClient *http.Client
	baseURL    string

	mu    sync.RWMutex
	cache map[string]*Sample
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL (useful for testing).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// NewClient creates a new BioSamples client. Fetched records are cached for
// the lifetime of the client since published samples are immutable enough
// for relationship checks.
func NewClient(httpClient *http.Client, opts ...Option) *Client {
	c := &Client{
		httpClient: httpClient,
		baseURL:    defaultBaseURL,
		cache:      make(map[string]*Sample),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type biosampleRecord struct {
	Accession       string                     `json:"accession"`
	Characteristics map[string][]biosampleAttr `json:"characteristics"`
	Relationships   []biosampleRelationship    `json:"relationships"`
	Error           string                     `json:"error"`
}

type biosampleAttr struct {
	Text string `json:"text"`
}

type biosampleRelationship struct {
	Source string `json:"source"`
	Type   string `json:"type"`
	Target string `json:"target"`
}

// Get fetches a sample by accession.
func (c *Client) Get(ctx context.Context, accession string) (*Sample, error) {
	c.mu.RLock()
	cached, ok := c.cache[accession]
	c.mu.RUnlock()
	if ok {
		return cached, nil
	}

	u := c.baseURL + "/samples/" + url.PathEscape(accession)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching biosample: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusNotFound ||
		resp.StatusCode == http.StatusForbidden:
		// BioSamples answers 403 for private samples; either way the
		// accession cannot back a relationship.
		return nil, ErrNotFound
	default:
		applog.LogWarn(ctx, "biosamples request failed",
			zap.String("accession", accession), zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	var record biosampleRecord
	if err := json.NewDecoder(resp.Body).Decode(&record); err != nil {
		return nil, fmt.Errorf("decoding biosample: %w", err)
	}
	if record.Error != "" {
		return nil, ErrNotFound
	}

	sample := &Sample{Accession: accession}
	if attrs := record.Characteristics["organism"]; len(attrs) > 0 {
		sample.Organism = attrs[0].Text
	}
	if attrs := record.Characteristics["material"]; len(attrs) > 0 {
		sample.Material = attrs[0].Text
	}
	for _, rel := range record.Relationships {
		if rel.Source == accession && (rel.Type == "child of" || rel.Type == "derived from") {
			sample.Relationships = append(sample.Relationships, rel.Target)
		}
	}

	c.mu.Lock()
	c.cache[accession] = sample
	c.mu.Unlock()
	return sample, nil
}

// Compile-time interface check
var _ Service = (*Client)(nil)
