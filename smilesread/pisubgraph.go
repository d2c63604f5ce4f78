package smilesread

import (
	"github.com/cx-luo/go-smiles/chem"
	"github.com/cx-luo/go-smiles/graphmatch"
)

// buildPiSubgraph constructs the graph of candidate aromatic atoms and
// bonds that kekulize must find a perfect matching over, grounded on
// original_source/src/daylight/smiles/read/pi_subgraph.rs: an atom is
// eligible if it was written aromatic (lowercase, or touched by an
// explicit ':' bond) and has positive subvalence; an elided bond joins two
// already-eligible atoms, while an explicit ':' bond forces both endpoints
// in if their subvalence allows it.
func buildPiSubgraph(r *parseResult) graphmatch.Graph {
	g := graphmatch.NewAdjacencyGraph()

	subvalence := make([]int, len(r.atoms))
	subvalenceOK := make([]bool, len(r.atoms))
	for idx, a := range r.atoms {
		hydrogens := 0
		if a.bracket && a.explicitH != nil {
			hydrogens = *a.explicitH
		}
		sv, ok := chem.Subvalence(a.number, a.charge, hydrogens, r.structuralBondOrderSum(idx))
		subvalence[idx] = sv
		subvalenceOK[idx] = ok
	}

	eligible := func(idx int) bool {
		return subvalenceOK[idx] && subvalence[idx] > 0
	}

	for idx, a := range r.atoms {
		if eligible(idx) && (a.aromaticWritten || r.hasAromaticKindBond(idx)) {
			g.AddNode(idx)
		}
	}

	for _, b := range r.bonds {
		switch b.kind {
		case kindElided:
			if g.HasNode(b.a) && g.HasNode(b.b) {
				g.AddEdge(b.a, b.b)
			}
		case kindAromatic:
			if eligible(b.a) && eligible(b.b) {
				g.AddNode(b.a)
				g.AddNode(b.b)
				g.AddEdge(b.a, b.b)
			}
		}
	}

	return g
}
