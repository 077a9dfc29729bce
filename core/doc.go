// Package core defines the Graph type used throughout cliquer: an
// undirected simple graph with a fixed vertex count, where vertices are
// plain integer indices in [0, n).
//
// What:
//
//   - NewGraph(n) allocates an n-vertex graph with no edges; the vertex
//     count never changes afterwards.
//   - AddEdge marks two vertices mutually adjacent. Out-of-range endpoints
//     and self-loops are silently ignored, so bulk edge insertion never
//     needs error handling.
//   - HasEdge, Neighbors, NeighborMask, Degree and EdgeCount answer
//     adjacency queries; Clone produces an independent deep copy.
//
// Why:
//
//   - Clique enumeration lives on adjacency tests and neighbourhood
//     intersections. Each vertex owns one bits.Bits bitmap row, so
//     HasEdge is O(1), Degree is a popcount, and intersecting a
//     neighbourhood with a candidate set is a word-parallel AND.
//
// Complexity:
//
//   - NewGraph: O(n²/64) memory, AddEdge/HasEdge/NeighborMask: O(1),
//     Neighbors/Degree: O(n/64), Clone/EdgeCount: O(n²/64).
//
// Errors:
//
//   - ErrNegativeVertexCount: NewGraph called with n < 0.
package core
