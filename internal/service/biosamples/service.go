package biosamples

import (
	"context"
	"errors"
)

// Service errors
var (
	ErrNotFound = errors.New("biosample not found")
	ErrUpstream = errors.New("biosamples upstream error")
)

// Sample is the slice of a public BioSamples record the validator needs:
// just enough to check material chains and parent/child links.
type Sample struct {
	Accession     string
	Organism      string
	Material      string
	Relationships []string // accessions this sample is "child of" or "derived from"
}

// Service fetches public sample records by accession.
type Service interface {
	Get(ctx context.Context, accession string) (*Sample, error)
}
