package bronkerbosch

import (
	"fmt"

	"github.com/soniakeys/bits"

	"github.com/katalvlaran/cliquer/core"
)

// searcher encapsulates state shared by all frames of one search.
type searcher struct {
	graph   *core.Graph // underlying graph
	opts    Options     // search options
	degree  []int       // whole-graph degree per vertex, cached once
	cliques []Clique    // result collector
}

// FindMaximalCliques returns every maximal clique of g, each exactly once.
//
// With default options the result is the complete maximal-clique set:
// for an empty graph (order 0) it is an empty slice, and in an edgeless
// graph every vertex forms its own singleton clique. Emission order is
// deterministic for a given graph but unspecified; compare results as an
// unordered collection of sets.
//
// Returns ErrGraphNil for a nil graph, the context error on cancellation,
// or any error produced by the OnClique hook. The search itself has no
// failure modes.
func FindMaximalCliques(g *core.Graph, opts ...Option) ([]Clique, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	sopts := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&sopts)
	}

	// 3. Trivial order-0 graph: nothing to recurse on
	n := g.Order()
	s := &searcher{graph: g, opts: sopts, cliques: make([]Clique, 0)}
	if n == 0 {
		return s.cliques, nil
	}

	// 4. Cache whole-graph degrees once; the pivot rule reads them
	//    at every frame.
	s.degree = make([]int, n)
	for v := 0; v < n; v++ {
		s.degree[v] = g.Degree(v)
	}

	// 5. Root frame: R = ∅, P = all vertices, X = ∅
	R := bits.New(n)
	P := bits.New(n)
	X := bits.New(n)
	P.SetAll()
	if err := s.expand(R, P, X); err != nil {
		return nil, err
	}

	return s.cliques, nil
}

// expand is one Bron–Kerbosch frame over (R, P, X).
//
// Invariants on entry: R is a clique, P and X are disjoint, and every
// vertex of P ∪ X is adjacent to every vertex of R. The frame owns all
// three sets: children receive fresh copies, and only this frame moves a
// finished branch vertex from its own P to its own X.
func (s *searcher) expand(R, P, X bits.Bits) error {
	// 1. Cancellation check, once per frame
	select {
	case <-s.opts.Ctx.Done():
		return s.opts.Ctx.Err()
	default:
	}

	// 2. Termination: P exhausted
	if P.AllZeros() {
		if X.AllZeros() {
			// R can neither grow nor was it reachable through an
			// excluded vertex: a maximal clique.
			return s.record(R)
		}
		// Some excluded vertex extends R, so R is not maximal.
		return nil
	}

	// 3. Pivot selection and branch set P \ N(u)
	u := s.pivot(P, X)
	n := s.graph.Order()
	branch := bits.New(n)
	branch.AndNot(P, s.graph.NeighborMask(u))

	// 4. Branch on each candidate outside the pivot's neighborhood.
	//    branch is fixed up front; P and X mutate between siblings.
	var err error
	branch.IterateOnes(func(v int) bool {
		nv := s.graph.NeighborMask(v)

		// Fresh per-branch copies: R' = R ∪ {v}
		R2 := bits.New(n)
		R2.Set(R)
		R2.SetBit(v, 1)

		// P' = P ∩ N(v), X' = X ∩ N(v): adjacency to R' is preserved
		P2 := bits.New(n)
		P2.And(P, nv)
		X2 := bits.New(n)
		X2.And(X, nv)

		if err = s.expand(R2, P2, X2); err != nil {
			return false
		}

		// v is fully explored at this position: later siblings must not
		// rediscover cliques already found through it.
		P.SetBit(v, 0)
		X.SetBit(v, 1)

		return true
	})

	return err
}

// pivot picks the branching pivot for the current frame: the vertex of P
// with the highest whole-graph degree among those not in X, seeded by the
// first member of P. Ties resolve to the earliest index; the choice only
// affects pruning, never the clique set.
func (s *searcher) pivot(P, X bits.Bits) int {
	u := -1
	P.IterateOnes(func(v int) bool {
		if u < 0 {
			u = v // first candidate seeds the choice

			return true
		}
		if X.Bit(v) == 1 {
			return true
		}
		if s.degree[v] > s.degree[u] {
			u = v
		}

		return true
	})

	return u
}

// record materializes R as a Clique, applies the size filter, fires the
// hook, and appends to the result.
func (s *searcher) record(R bits.Bits) error {
	c := make(Clique, 0, R.OnesCount())
	R.IterateOnes(func(v int) bool {
		c = append(c, v)

		return true
	})

	// Size filter drops the clique entirely, hook included
	if len(c) < s.opts.MinSize {
		return nil
	}

	if s.opts.OnClique != nil {
		if err := s.opts.OnClique(c); err != nil {
			return fmt.Errorf("bronkerbosch: OnClique hook for %v: %w", c, err)
		}
	}

	s.cliques = append(s.cliques, c)

	return nil
}
