// SPDX-License-Identifier: MIT

// Package builder provides deterministic constructors for the classic
// graph families used when exercising clique enumeration: complete graphs,
// cycles, paths, stars, and complete bipartite graphs.
//
// What:
//
//   - Every constructor validates its size parameters, allocates a
//     core.Graph of the exact order, and emits each unordered pair {i, j}
//     with i < j exactly once in ascending order.
//   - Maximal-clique structure of each family is well known, which makes
//     the constructors ideal fixtures: K_n has a single clique, C_n (n ≥ 4)
//     decomposes into its edges, K_{m,n} into its m·n cross pairs.
//
// Errors:
//
//   - ErrTooFewVertices: a size parameter is below the family's minimum.
package builder
