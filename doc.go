// Package cliquer enumerates all maximal cliques of undirected simple
// graphs — the complete answer to “which groups of vertices are pairwise
// connected and cannot grow any further?”.
//
// 🚀 What is cliquer?
//
//	A small, focused library built around the Bron–Kerbosch algorithm
//	with pivoting:
//		• core/         — fixed-order graphs over integer vertex indices,
//		                  dense bitmap adjacency with O(1) edge lookups
//		• bronkerbosch/ — the recursive search itself, with cancellation,
//		                  per-clique hooks and size filtering
//		• builder/      — deterministic graph families (K_n, C_n, paths,
//		                  stars, K_{m,n}) for tests, benchmarks and demos
//
// ✨ Why choose cliquer?
//
//   - Minimal API — build a graph, add edges, ask for the cliques
//   - Exact semantics — every maximal clique exactly once, never a subset
//   - Predictable costs — O(3^(n/3)) worst-case search on O(n²/64) storage
//
// Quick ASCII example:
//
//	    0───1
//	    │ ╲ │
//	    3───2
//
//	A square with one diagonal holds exactly two maximal cliques:
//	the triangles {0,1,2} and {0,2,3}.
//
// Dive into the examples/ directory for runnable scenarios.
//
//	go get github.com/katalvlaran/cliquer
package cliquer
