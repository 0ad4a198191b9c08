package biosamples

import (
	"context"
	"sync"
)

// MockService implements Service for unit tests.
type MockService struct {
	mu      sync.RWMutex
	samples map[string]*Sample
	err     error
}

// NewMockService creates an empty mock.
func NewMockService() *MockService {
	return &MockService{samples: make(map[string]*Sample)}
}

// Add registers a known sample.
func (m *MockService) Add(sample Sample) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := sample
	m.samples[sample.Accession] = &s
}

// Fail makes every Get return err.
func (m *MockService) Fail(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

func (m *MockService) Get(_ context.Context, accession string) (*Sample, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.err != nil {
		return nil, m.err
	}
	s, ok := m.samples[accession]
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

// Compile-time interface check
var _ Service = (*MockService)(nil)
