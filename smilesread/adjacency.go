package smilesread

import "github.com/cx-luo/go-smiles/chem"

// AdjacencyBond is one neighbor entry in an AdjacencyEntry's bond list.
type AdjacencyBond struct {
	Other  int
	Order  chem.BondOrder
	Parity *chem.Parity
}

// AdjacencyEntry pairs a resolved atom with its neighbor list.
type AdjacencyEntry struct {
	Atom      chem.Atom
	Neighbors []AdjacencyBond
}

// ReadAdjacency parses smiles and projects the resulting molecule into a
// per-atom adjacency-list view, grounded on
// original_source/src/daylight/smiles_to_adjacency.rs. It is a derived view
// of an already-assembled chem.Molecule, not a second source of truth.
func ReadAdjacency(smiles string) ([]AdjacencyEntry, error) {
	m, err := Read(smiles)
	if err != nil {
		return nil, err
	}

	out := make([]AdjacencyEntry, m.AtomCount())
	for i := 0; i < m.AtomCount(); i++ {
		out[i].Atom = m.Atoms[i]
		for _, bi := range m.BondIndices(i) {
			b := m.Bonds[bi]
			out[i].Neighbors = append(out[i].Neighbors, AdjacencyBond{
				Other:  b.Other(i),
				Order:  b.Order,
				Parity: b.Parity,
			})
		}
	}
	return out, nil
}
