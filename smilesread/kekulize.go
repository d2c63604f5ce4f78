package smilesread

import (
	"github.com/cx-luo/go-smiles/chem"
	"github.com/cx-luo/go-smiles/graphmatch"
)

// kekulize finds a perfect matching over the pi-subgraph and marks each
// matched bond as promoted to a double bond, grounded on
// original_source/src/daylight/smiles/read/kekulize.rs. A pi-subgraph node
// left unmatched (no perfect matching exists) is a Kekulization error; any aromatic-kind bond that legitimately sits outside the
// pi-subgraph (e.g. one endpoint had no spare subvalence) is left for
// finalOrder to demote to Single, grounded on
// cx-luo-go-chem/src/molecule/dearomatizer.go's final demotion step.
func kekulize(r *parseResult) error {
	g := buildPiSubgraph(r)
	if g.IsEmpty() {
		return nil
	}

	pairing := graphmatch.Greedy(g)
	graphmatch.MaximumMatching(g, pairing)
	if pairing.Order() != g.Order() {
		return chem.NewKekulizationError()
	}

	matched := make(map[[2]int]bool, len(pairing.Edges()))
	for _, e := range pairing.Edges() {
		matched[e] = true
	}
	for i, b := range r.bonds {
		key := [2]int{b.a, b.b}
		if b.a > b.b {
			key = [2]int{b.b, b.a}
		}
		if matched[key] {
			r.bonds[i].promoted = true
		}
	}
	return nil
}

// finalOrder returns a bond's resolved order after kekulize has run.
func finalOrder(b parsedBond) chem.BondOrder {
	switch b.kind {
	case kindElided, kindAromatic:
		if b.promoted {
			return chem.BondDouble
		}
		return chem.BondSingle
	case kindSingle, kindUp, kindDown:
		return chem.BondSingle
	case kindDouble:
		return chem.BondDouble
	case kindTriple:
		return chem.BondTriple
	case kindQuadruple:
		return chem.BondQuadruple
	default:
		return chem.BondSingle
	}
}
