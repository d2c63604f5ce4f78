package graphmatch

import "github.com/willf/bitset"

// Matching is a read-only view of a pairing over a graph's nodes.
type Matching interface {
	Order() int
	HasNode(id int) bool
	Mate(id int) (int, bool)
	Edges() [][2]int
}

// Pairing is a mutable Matching built up by Greedy and MaximumMatching,
// grounded on original_source/src/daylight/smiles/read/kekulize.rs's
// greedy/maximum_matching collaborator contract. Matched-node membership is
// tracked in a bitset rather than a second map, mirroring
// RxnWeaver-RxnWeaver/data/molecule/atom.go's use of willf/bitset for
// per-atom flag state.
type Pairing struct {
	mate    map[int]int
	matched *bitset.BitSet
}

// NewPairing returns an empty pairing sized for node ids in [0, capacity).
func NewPairing(capacity int) *Pairing {
	if capacity < 1 {
		capacity = 1
	}
	return &Pairing{
		mate:    make(map[int]int),
		matched: bitset.New(uint(capacity)),
	}
}

// Order returns the number of matched nodes (twice the edge count).
func (p *Pairing) Order() int { return len(p.mate) }

func (p *Pairing) HasNode(id int) bool {
	return id >= 0 && p.matched.Test(uint(id))
}

// Mate returns the node paired with id, if any.
func (p *Pairing) Mate(id int) (int, bool) {
	m, ok := p.mate[id]
	return m, ok
}

// Pair joins a and b, replacing either one's previous pairing if present.
func (p *Pairing) Pair(a, b int) {
	p.Unpair(a)
	p.Unpair(b)
	p.mate[a] = b
	p.mate[b] = a
	p.matched.Set(uint(a))
	p.matched.Set(uint(b))
}

// Unpair removes id's pairing, if any, along with its partner's.
func (p *Pairing) Unpair(id int) {
	if other, ok := p.mate[id]; ok {
		delete(p.mate, id)
		delete(p.mate, other)
		p.matched.Clear(uint(id))
		p.matched.Clear(uint(other))
	}
}

// Edges returns each matched pair once, with the lower id first.
func (p *Pairing) Edges() [][2]int {
	seen := make(map[int]bool, len(p.mate))
	out := make([][2]int, 0, len(p.mate)/2)
	for a, b := range p.mate {
		if seen[a] || seen[b] {
			continue
		}
		seen[a], seen[b] = true, true
		if a < b {
			out = append(out, [2]int{a, b})
		} else {
			out = append(out, [2]int{b, a})
		}
	}
	return out
}

// Greedy builds a maximal (not necessarily maximum) matching by visiting
// nodes in graph order and pairing each unmatched node with its first
// unmatched neighbor.
func Greedy(g Graph) *Pairing {
	p := NewPairing(g.Order() + 1)
	for _, n := range g.Nodes() {
		if p.HasNode(n) {
			continue
		}
		for _, nb := range g.Neighbors(n) {
			if !p.HasNode(nb) {
				p.Pair(n, nb)
				break
			}
		}
	}
	return p
}

// MaximumMatching extends pairing towards a maximum matching by searching
// an augmenting path from every still-unmatched node, in graph order.
//
// The search is a plain alternating-path DFS (Kuhn's algorithm): correct
// and maximum for the bipartite-like pi-subgraphs every kekulizable
// aromatic ring produces, but, like the collaborator contract it
// implements, it does not contract blossoms, so it is not guaranteed
// maximum on a pi-subgraph containing an odd alternating cycle with no
// matching augmentation. Molecules that exercise that corner case are
// outside the practical SMILES corpus this reader targets.
func MaximumMatching(g Graph, p *Pairing) {
	for _, n := range g.Nodes() {
		if p.HasNode(n) {
			continue
		}
		visited := bitset.New(uint(g.Order() + 1))
		augment(g, p, n, visited)
	}
}

// augment searches for an alternating path starting at the unmatched node n
// and, if found, flips it in place.
func augment(g Graph, p *Pairing, n int, visited *bitset.BitSet) bool {
	for _, nb := range g.Neighbors(n) {
		if visited.Test(uint(nb)) {
			continue
		}
		visited.Set(uint(nb))

		mate, isMatched := p.Mate(nb)
		if !isMatched || augment(g, p, mate, visited) {
			p.Pair(n, nb)
			return true
		}
	}
	return false
}
