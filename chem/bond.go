package chem

// Bond connects atom Begin to atom End (indices into Molecule.Atoms) with a
// resolved order and, for a double bond between two trigonal centers, a
// cis/trans Parity.
type Bond struct {
	Begin  int
	End    int
	Order  BondOrder
	Parity *Parity
}

// Other returns the endpoint of the bond that isn't atom.
func (b Bond) Other(atom int) int {
	if b.Begin == atom {
		return b.End
	}
	return b.Begin
}
