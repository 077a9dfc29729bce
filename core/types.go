package core

import (
	"errors"

	"github.com/soniakeys/bits"
)

// ErrNegativeVertexCount indicates that NewGraph was called with n < 0.
// A negative order has no meaning, so construction is refused rather than
// clamped to zero.
var ErrNegativeVertexCount = errors.New("core: negative vertex count")

// Graph is an undirected simple graph over vertex indices [0, n).
//
// The vertex count is fixed at construction. Adjacency is stored densely,
// one bitmap row per vertex; the relation is kept symmetric (an edge u–v
// always implies v–u) and irreflexive (the diagonal is never set).
// Graph is not safe for concurrent mutation; concurrent reads are fine.
type Graph struct {
	n   int         // vertex count, immutable
	adj []bits.Bits // adj[u] holds one bit per potential neighbor of u
}

// NewGraph returns a graph with n vertices and no edges.
// Returns ErrNegativeVertexCount for n < 0; n == 0 is a valid empty graph.
// Complexity: O(n²/64) time and memory.
func NewGraph(n int) (*Graph, error) {
	// Validate order
	if n < 0 {
		return nil, ErrNegativeVertexCount
	}

	// Allocate one n-bit row per vertex
	adj := make([]bits.Bits, n)
	for i := range adj {
		adj[i] = bits.New(n)
	}

	return &Graph{n: n, adj: adj}, nil
}
