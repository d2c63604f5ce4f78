package graphmatch

import "testing"

func TestAdjacencyGraphBasics(t *testing.T) {
	g := NewAdjacencyGraph()
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)

	if g.Order() != 3 {
		t.Fatalf("Order() = %d, want 3", g.Order())
	}
	if g.IsEmpty() {
		t.Fatalf("IsEmpty() should be false")
	}
	if !g.HasNode(1) || g.HasNode(5) {
		t.Fatalf("HasNode incorrect")
	}
	neighbors := g.Neighbors(1)
	if len(neighbors) != 2 {
		t.Fatalf("Neighbors(1) = %v, want 2 entries", neighbors)
	}
}

func TestMaximumMatchingHexagon(t *testing.T) {
	// A six-cycle (like benzene's pi-subgraph) has a unique perfect
	// matching up to rotation; greedy alone may strand a node, so
	// MaximumMatching must finish the job.
	g := NewAdjacencyGraph()
	ring := []int{0, 1, 2, 3, 4, 5}
	for i := range ring {
		g.AddEdge(ring[i], ring[(i+1)%len(ring)])
	}

	p := Greedy(g)
	MaximumMatching(g, p)

	if p.Order() != g.Order() {
		t.Fatalf("matching order = %d, want %d (perfect matching)", p.Order(), g.Order())
	}
	for _, n := range ring {
		if !p.HasNode(n) {
			t.Fatalf("node %d left unmatched", n)
		}
	}
}

func TestMaximumMatchingOddCycleFails(t *testing.T) {
	// A five-cycle has no perfect matching; MaximumMatching must leave
	// exactly one node unmatched rather than claim a false perfect match.
	g := NewAdjacencyGraph()
	ring := []int{0, 1, 2, 3, 4}
	for i := range ring {
		g.AddEdge(ring[i], ring[(i+1)%len(ring)])
	}

	p := Greedy(g)
	MaximumMatching(g, p)

	if p.Order() == g.Order() {
		t.Fatalf("five-cycle should not admit a perfect matching")
	}
}
