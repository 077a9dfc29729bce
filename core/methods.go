package core

import "github.com/soniakeys/bits"

// Order returns the number of vertices in the graph.
// Complexity: O(1).
func (g *Graph) Order() int {
	return g.n
}

// inRange reports whether v is a valid vertex index for g.
func (g *Graph) inRange(v int) bool {
	return v >= 0 && v < g.n
}

// AddEdge marks u and v as mutually adjacent.
//
// The call is a silent no-op when either endpoint lies outside [0, n):
// bulk loaders may feed raw pairs without pre-filtering. A self-loop
// (u == v) is likewise ignored, keeping the graph simple: a vertex needs
// no edge to itself to belong to a clique.
// Complexity: O(1).
func (g *Graph) AddEdge(u, v int) {
	// Permissive bounds policy: ignore, do not error
	if !g.inRange(u) || !g.inRange(v) || u == v {
		return
	}
	// Keep the relation symmetric
	g.adj[u].SetBit(v, 1)
	g.adj[v].SetBit(u, 1)
}

// HasEdge reports whether u and v are adjacent.
// Out-of-range endpoints are never adjacent.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	if !g.inRange(u) || !g.inRange(v) {
		return false
	}

	return g.adj[u].Bit(v) == 1
}

// Neighbors returns the vertices adjacent to v in ascending order.
// Returns nil for an out-of-range v.
// Complexity: O(n/64) scan over the bitmap row.
func (g *Graph) Neighbors(v int) []int {
	if !g.inRange(v) {
		return nil
	}

	// Collect set bits in ascending index order
	nbs := make([]int, 0, g.adj[v].OnesCount())
	g.adj[v].IterateOnes(func(u int) bool {
		nbs = append(nbs, u)

		return true
	})

	return nbs
}

// NeighborMask returns the adjacency bitmap row of v.
//
// The returned value shares storage with the graph: callers must treat it
// as read-only. It exists for hot paths (set intersections in the clique
// search) that would otherwise re-materialize neighbor slices.
// Returns an empty bitmap for an out-of-range v.
// Complexity: O(1).
func (g *Graph) NeighborMask(v int) bits.Bits {
	if !g.inRange(v) {
		return bits.New(0)
	}

	return g.adj[v]
}

// Degree returns the number of neighbors of v, or 0 for an out-of-range v.
// Complexity: O(n/64) popcount.
func (g *Graph) Degree(v int) int {
	if !g.inRange(v) {
		return 0
	}

	return g.adj[v].OnesCount()
}

// EdgeCount returns the number of undirected edges in the graph.
// Complexity: O(n²/64).
func (g *Graph) EdgeCount() int {
	total := 0
	for v := range g.adj {
		total += g.adj[v].OnesCount()
	}

	// Each edge is counted once per endpoint
	return total / 2
}

// Clone returns a deep copy of g. Mutations on the copy never affect the
// original, and vice versa.
// Complexity: O(n²/64) time and memory.
func (g *Graph) Clone() *Graph {
	adj := make([]bits.Bits, g.n)
	for v := range g.adj {
		adj[v] = bits.New(g.n)
		adj[v].Set(g.adj[v])
	}

	return &Graph{n: g.n, adj: adj}
}
