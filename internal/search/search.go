package search

import (
	"context"

	"shopassist/internal/quotes"
)

// Result is the normalized outcome of one shopping search.
// A provider failure is carried in Err next to an empty quote list, so the
// normalization pipeline downstream always receives a well-formed sequence.
type Result struct {
	Quotes []quotes.RawQuote `json:"quotes"`
	// Err holds provider-supplied diagnostic text when the search failed.
	Err string `json:"error,omitempty"`
}

// Failed reports whether the provider returned an error instead of quotes.
func (r Result) Failed() bool { return r.Err != "" }

type Searcher interface {
	Name() string
	Search(ctx context.Context, query string) (Result, error)
}
