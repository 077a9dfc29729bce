package core_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/cliquer/core"
)

//----------------------------------------------------------------------------//
// Construction Tests
//----------------------------------------------------------------------------//

// TestNewGraph_NegativeCount verifies that a negative order is rejected.
func TestNewGraph_NegativeCount(t *testing.T) {
	for _, n := range []int{-1, -7} {
		g, err := core.NewGraph(n)
		if !errors.Is(err, core.ErrNegativeVertexCount) {
			t.Errorf("NewGraph(%d) error = %v; want ErrNegativeVertexCount", n, err)
		}
		if g != nil {
			t.Errorf("NewGraph(%d) returned non-nil graph on error", n)
		}
	}
}

// TestNewGraph_EmptyAndEdgeless checks the n=0 and no-edge baselines.
func TestNewGraph_EmptyAndEdgeless(t *testing.T) {
	empty, err := core.NewGraph(0)
	if err != nil {
		t.Fatalf("NewGraph(0) error: %v", err)
	}
	if empty.Order() != 0 || empty.EdgeCount() != 0 {
		t.Errorf("empty graph: Order=%d EdgeCount=%d; want 0, 0", empty.Order(), empty.EdgeCount())
	}

	g, err := core.NewGraph(4)
	if err != nil {
		t.Fatalf("NewGraph(4) error: %v", err)
	}
	if g.Order() != 4 || g.EdgeCount() != 0 {
		t.Errorf("edgeless graph: Order=%d EdgeCount=%d; want 4, 0", g.Order(), g.EdgeCount())
	}
}

//----------------------------------------------------------------------------//
// AddEdge Policy Tests
//----------------------------------------------------------------------------//

// TestAddEdge_PermissiveBounds verifies that out-of-range endpoints and
// self-loops are silently ignored, never stored.
func TestAddEdge_PermissiveBounds(t *testing.T) {
	g, err := core.NewGraph(3)
	if err != nil {
		t.Fatalf("NewGraph error: %v", err)
	}

	ignored := [][2]int{
		{-1, 0}, {0, -1}, // negative endpoint
		{0, 3}, {3, 0}, // endpoint == n
		{5, 7},   // both out of range
		{1, 1},   // self-loop
		{-2, -2}, // self-loop, out of range
	}
	for _, e := range ignored {
		g.AddEdge(e[0], e[1])
	}

	if got := g.EdgeCount(); got != 0 {
		t.Errorf("EdgeCount after ignored inserts = %d; want 0", got)
	}
	if g.HasEdge(1, 1) {
		t.Error("HasEdge(1,1) = true; self-loop must not be stored")
	}
}

// TestAddEdge_SymmetryAndIdempotence checks the undirected contract.
func TestAddEdge_SymmetryAndIdempotence(t *testing.T) {
	g, err := core.NewGraph(3)
	if err != nil {
		t.Fatalf("NewGraph error: %v", err)
	}
	g.AddEdge(0, 1)
	g.AddEdge(1, 0) // duplicate in reverse orientation

	if !g.HasEdge(0, 1) || !g.HasEdge(1, 0) {
		t.Error("edge 0–1 must be adjacent in both orientations")
	}
	if got := g.EdgeCount(); got != 1 {
		t.Errorf("EdgeCount = %d; want 1 (re-insertion is idempotent)", got)
	}
	if g.HasEdge(0, 2) {
		t.Error("HasEdge(0,2) = true; want false")
	}
}

//----------------------------------------------------------------------------//
// Query Tests
//----------------------------------------------------------------------------//

// buildDiamond returns the 4-vertex square 0-1-2-3-0 with diagonal 0-2.
func buildDiamond(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(4)
	if err != nil {
		t.Fatalf("NewGraph error: %v", err)
	}
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {0, 2}} {
		g.AddEdge(e[0], e[1])
	}

	return g
}

// TestNeighbors_AscendingOrder verifies neighbor enumeration and bounds.
func TestNeighbors_AscendingOrder(t *testing.T) {
	g := buildDiamond(t)

	cases := []struct {
		v    int
		want []int
	}{
		{0, []int{1, 2, 3}},
		{1, []int{0, 2}},
		{2, []int{0, 1, 3}},
		{3, []int{0, 2}},
	}
	for _, tc := range cases {
		got := g.Neighbors(tc.v)
		if len(got) != len(tc.want) {
			t.Errorf("Neighbors(%d) = %v; want %v", tc.v, got, tc.want)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("Neighbors(%d) = %v; want %v (ascending)", tc.v, got, tc.want)
				break
			}
		}
	}

	if got := g.Neighbors(-1); got != nil {
		t.Errorf("Neighbors(-1) = %v; want nil", got)
	}
	if got := g.Neighbors(4); got != nil {
		t.Errorf("Neighbors(4) = %v; want nil", got)
	}
}

// TestDegreeAndMask verifies Degree against the bitmap view.
func TestDegreeAndMask(t *testing.T) {
	g := buildDiamond(t)

	wantDeg := []int{3, 2, 3, 2}
	for v, want := range wantDeg {
		if got := g.Degree(v); got != want {
			t.Errorf("Degree(%d) = %d; want %d", v, got, want)
		}
		if got := g.NeighborMask(v).OnesCount(); got != want {
			t.Errorf("NeighborMask(%d).OnesCount() = %d; want %d", v, got, want)
		}
	}

	if got := g.Degree(99); got != 0 {
		t.Errorf("Degree(99) = %d; want 0", got)
	}
	if got := g.NeighborMask(99).OnesCount(); got != 0 {
		t.Errorf("NeighborMask(99).OnesCount() = %d; want 0", got)
	}
	if g.NeighborMask(1).Bit(0) != 1 || g.NeighborMask(1).Bit(3) != 0 {
		t.Error("NeighborMask(1) bits disagree with adjacency")
	}
}

//----------------------------------------------------------------------------//
// Clone Tests
//----------------------------------------------------------------------------//

// TestClone_Independent verifies mutations never cross between copies.
func TestClone_Independent(t *testing.T) {
	g := buildDiamond(t)
	c := g.Clone()

	if c.Order() != g.Order() || c.EdgeCount() != g.EdgeCount() {
		t.Fatalf("clone shape Order=%d EdgeCount=%d; want %d, %d",
			c.Order(), c.EdgeCount(), g.Order(), g.EdgeCount())
	}

	c.AddEdge(1, 3)
	if g.HasEdge(1, 3) {
		t.Error("mutating the clone leaked into the original")
	}
	g.AddEdge(1, 3)
	if c.EdgeCount() != g.EdgeCount() {
		// both now hold 1–3, counts must agree again
		t.Errorf("EdgeCount clone=%d original=%d; want equal", c.EdgeCount(), g.EdgeCount())
	}
}
