// Package bronkerbosch enumerates all maximal cliques of a core.Graph
// using the Bron–Kerbosch algorithm with pivoting.
//
// Key features:
//   - FindMaximalCliques(g, opts...): the complete, duplicate-free set of
//     maximal cliques, each as ascending vertex indices
//   - Pivoting: branching restricted to P \ N(u) for a max-degree pivot u,
//     pruning the search tree without losing any clique
//   - Hooks: OnClique fires at every confirmed maximal clique; an error
//     aborts the search
//   - Limits: MinSize drops small cliques from the result
//   - Cancellation via context.Context
//
// The recursion carries three vertex sets: R, the clique grown so far;
// P, the candidates still able to extend R; and X, the vertices already
// fully explored at this position. Every member of P ∪ X is adjacent to
// every member of R, and a clique is recorded exactly when both P and X
// are empty. Each recursive call owns fresh copies of its sets, so a
// branch can never leak state into a sibling.
//
// Complexity:
//
//   - Time:   O(3^(n/3)) worst case (Moon–Moser graphs); far less on
//     sparse inputs thanks to the pivot.
//   - Memory: O(n²) auxiliary for recursion depth × bitset size.
//
// Options:
//
//   - WithContext(ctx)    allows cancellation via context.Context.
//   - WithOnClique(fn)    hook on each maximal clique; error aborts.
//   - WithMinSize(k)      keep only cliques with at least k vertices.
//
// Errors:
//
//   - ErrGraphNil          if g is nil.
//   - context.Canceled     if ctx is done.
//   - any error returned by OnClique.
package bronkerbosch
