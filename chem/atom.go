package chem

// Atom is a resolved atom: its element, isotope, formal charge, attached
// hydrogen count, non-bonding valence electron count, and tetrahedral
// parity (if any stereo marker applied). Wildcard atoms ("*") use Number 0
// and Electrons 0.
type Atom struct {
	Number    int
	Isotope   *int
	Charge    int
	Hydrogens int
	Electrons int
	Parity    *Parity
}

// NewAtom builds a resolved atom.
func NewAtom(number, hydrogens, charge, electrons int, isotope *int, parity *Parity) Atom {
	return Atom{
		Number:    number,
		Isotope:   isotope,
		Charge:    charge,
		Hydrogens: hydrogens,
		Electrons: electrons,
		Parity:    parity,
	}
}

// IsWildcard reports whether this atom was written as "*" (no element).
func (a Atom) IsWildcard() bool {
	return a.Number == 0
}
