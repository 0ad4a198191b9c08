package ontology

import (
	"context"
	"sync"
)

// MockService implements Service for unit tests. Terms registered via Add
// resolve to their docs; everything else is unknown.
type MockService struct {
	mu         sync.RWMutex
	terms      map[string][]Doc
	err        error
	prefetched [][]string
}

// NewMockService creates an empty mock.
func NewMockService() *MockService {
	return &MockService{terms: make(map[string][]Doc)}
}

// Add registers a known term with the given label and ontology name.
func (m *MockService) Add(term, label, ontologyName string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.terms[term] = append(m.terms[term], Doc{Label: label, Ontology: ontologyName})
}

// Fail makes every Lookup return err.
func (m *MockService) Fail(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

func (m *MockService) Lookup(_ context.Context, term string) ([]Doc, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.err != nil {
		return nil, m.err
	}
	return m.terms[term], nil
}

func (m *MockService) Prefetch(_ context.Context, terms []string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prefetched = append(m.prefetched, terms)
}

// PrefetchCalls returns the batches passed to Prefetch.
func (m *MockService) PrefetchCalls() [][]string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.prefetched
}

// Compile-time interface check
var _ Service = (*MockService)(nil)
