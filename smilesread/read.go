package smilesread

import "github.com/cx-luo/go-smiles/chem"

// Read parses a SMILES string into a chem.Molecule, running the full
// pipeline: tokenize, kekulize the pi-subgraph, then resolve every atom and
// bond. The first error encountered aborts the pipeline; no partial
// molecule is ever returned alongside a non-nil error.
func Read(smiles string) (*chem.Molecule, error) {
	return ReadWithClasses(smiles, nil)
}

// ReadWithClasses is Read plus the optional atom-class map collector: when
// classes is non-nil, every bracket atom carrying a ':N' suffix populates
// classes[id] = N. A nil classes map parses and discards the suffix, same
// as Read.
func ReadWithClasses(smiles string, classes map[int]int) (*chem.Molecule, error) {
	r, err := tokenize(smiles)
	if err != nil {
		return nil, err
	}

	if err := kekulize(r); err != nil {
		return nil, err
	}

	bonds, err := resolveBonds(r)
	if err != nil {
		return nil, err
	}

	bondOrderSum := make([]int, len(r.atoms))
	for _, b := range bonds {
		bondOrderSum[b.Begin] += b.Order.Multiplicity()
		bondOrderSum[b.End] += b.Order.Multiplicity()
	}

	m := chem.NewMolecule()
	for idx, pa := range r.atoms {
		atom, err := resolveAtom(pa, bondOrderSum[idx])
		if err != nil {
			return nil, err
		}
		id := m.AddAtom(atom)
		if classes != nil && pa.class != nil {
			classes[id] = *pa.class
		}
	}
	for _, b := range bonds {
		m.AddBond(b)
	}

	return m, nil
}
