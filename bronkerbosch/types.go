// Package bronkerbosch defines the Clique result type and the functional
// options accepted by FindMaximalCliques.
package bronkerbosch

import (
	"context"
	"errors"
)

// ErrGraphNil is returned when a nil *core.Graph is passed to
// FindMaximalCliques.
var ErrGraphNil = errors.New("bronkerbosch: graph is nil")

// Clique is one maximal clique: vertex indices in ascending order,
// no duplicates. Treat it as a set: the order carries no meaning beyond
// being a canonical form convenient for comparison and printing.
type Clique []int

// Option configures optional behavior of the clique search.
// Use with FindMaximalCliques(g, opts...).
type Option func(*Options)

// Options holds configurable parameters for the clique search.
// The zero-configured defaults enumerate the exact maximal-clique set.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancelling the context aborts the search early.
	Ctx context.Context

	// OnClique, if non-nil, is invoked for each maximal clique at the
	// moment it is confirmed, before it is appended to the result.
	// Returning an error aborts the search with that error.
	OnClique func(Clique) error

	// MinSize, if positive, drops cliques with fewer vertices from the
	// result (and from OnClique). Default 0 keeps everything; note that
	// isolated vertices are themselves maximal cliques of size one.
	MinSize int
}

// DefaultOptions returns an Options struct with:
//   - Background context
//   - No per-clique hook
//   - No size filtering (MinSize = 0)
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnClique: nil,
		MinSize:  0,
	}
}

// WithContext returns an Option that sets the Context for the search.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnClique returns an Option that installs fn as the per-clique hook.
// The hook observes cliques in emission order, which is deterministic for
// a given graph but otherwise unspecified.
func WithOnClique(fn func(Clique) error) Option {
	return func(o *Options) {
		o.OnClique = fn
	}
}

// WithMinSize returns an Option that keeps only cliques of at least k
// vertices. Useful to skip the singleton cliques of isolated vertices.
func WithMinSize(k int) Option {
	return func(o *Options) {
		o.MinSize = k
	}
}
