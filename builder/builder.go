// SPDX-License-Identifier: MIT

package builder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cliquer/core"
)

// ErrTooFewVertices indicates that a size parameter (n, m) is smaller than
// the allowed minimum for the requested family.
// Usage: if errors.Is(err, ErrTooFewVertices) { /* report invalid size */ }.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// Family minima; no magic numbers at call sites.
const (
	minCompleteNodes  = 1
	minCycleNodes     = 3
	minPathNodes      = 1
	minStarNodes      = 2
	minBipartiteNodes = 1
)

// sizeErrf wraps ErrTooFewVertices with the constructor and offending value.
func sizeErrf(method string, n, min int) error {
	return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, min, ErrTooFewVertices)
}

// Complete returns the complete simple graph K_n on vertices 0..n-1.
// Contract: n ≥ 1. Its only maximal clique is the full vertex set.
// Complexity: O(n²).
func Complete(n int) (*core.Graph, error) {
	if n < minCompleteNodes {
		return nil, sizeErrf("Complete", n, minCompleteNodes)
	}
	g, err := core.NewGraph(n)
	if err != nil {
		return nil, err
	}

	// Emit each unordered pair {i,j}, i<j, in ascending order
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			g.AddEdge(i, j)
		}
	}

	return g, nil
}

// Cycle returns the cycle graph C_n: 0–1–…–(n-1)–0.
// Contract: n ≥ 3 (C_3 is a triangle; below that the ring degenerates).
// Complexity: O(n).
func Cycle(n int) (*core.Graph, error) {
	if n < minCycleNodes {
		return nil, sizeErrf("Cycle", n, minCycleNodes)
	}
	g, err := core.NewGraph(n)
	if err != nil {
		return nil, err
	}

	for i := 0; i < n; i++ {
		g.AddEdge(i, (i+1)%n)
	}

	return g, nil
}

// Path returns the path graph P_n: 0–1–…–(n-1).
// Contract: n ≥ 1; P_1 is a single isolated vertex.
// Complexity: O(n).
func Path(n int) (*core.Graph, error) {
	if n < minPathNodes {
		return nil, sizeErrf("Path", n, minPathNodes)
	}
	g, err := core.NewGraph(n)
	if err != nil {
		return nil, err
	}

	for i := 0; i+1 < n; i++ {
		g.AddEdge(i, i+1)
	}

	return g, nil
}

// Star returns the star graph S_n on n vertices: hub 0 joined to every
// leaf 1..n-1. Contract: n ≥ 2. Every maximal clique is a hub–leaf edge.
// Complexity: O(n).
func Star(n int) (*core.Graph, error) {
	if n < minStarNodes {
		return nil, sizeErrf("Star", n, minStarNodes)
	}
	g, err := core.NewGraph(n)
	if err != nil {
		return nil, err
	}

	for leaf := 1; leaf < n; leaf++ {
		g.AddEdge(0, leaf)
	}

	return g, nil
}

// CompleteBipartite returns K_{m,n}: parts [0,m) and [m,m+n) with all
// cross edges and no edges inside a part. Contract: m ≥ 1 and n ≥ 1.
// Every maximal clique is one cross pair {i, m+j}.
// Complexity: O(m·n).
func CompleteBipartite(m, n int) (*core.Graph, error) {
	if m < minBipartiteNodes {
		return nil, sizeErrf("CompleteBipartite", m, minBipartiteNodes)
	}
	if n < minBipartiteNodes {
		return nil, sizeErrf("CompleteBipartite", n, minBipartiteNodes)
	}
	g, err := core.NewGraph(m + n)
	if err != nil {
		return nil, err
	}

	for i := 0; i < m; i++ {
		for j := m; j < m+n; j++ {
			g.AddEdge(i, j)
		}
	}

	return g, nil
}
