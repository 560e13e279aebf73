// Package search indexes clip transcriptions and filters the visible cards.
package search

import (
	"errors"
	"fmt"

	"github.com/llehouerou/announcer/internal/catalogue"
)

// ErrUnknownBackend is returned for an index backend name that does not exist.
var ErrUnknownBackend = errors.New("unknown search backend")

// Backend names accepted by Build.
const (
	BackendTrigram = "trigram"
	BackendFTS     = "fts"
)

// Result is one ranked match. Ref is the document ref it was built from.
type Result struct {
	Ref   string
	Score float64
}

// Index answers free-text queries over a fixed document set.
type Index interface {
	// Search returns matches best first. Only the refs matter for filtering.
	Search(text string) ([]Result, error)
}

// Builder creates an index from documents.
type Builder func(docs []catalogue.Document) (Index, error)

// Build creates an index using the named backend.
func Build(backend string, docs []catalogue.Document) (Index, error) {
	var b Builder
	switch backend {
	case "", BackendTrigram:
		b = NewTrigramIndex
	case BackendFTS:
		b = NewFTSIndex
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
	return b(docs)
}

// ValidBackend reports whether name is a known backend.
func ValidBackend(name string) bool {
	return name == "" || name == BackendTrigram || name == BackendFTS
}
