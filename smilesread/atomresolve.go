package smilesread

import "github.com/cx-luo/go-smiles/chem"

// resolveAtom finalizes one atom's semantics, grounded on
// original_source/src/daylight/smiles/read/to_node.rs: wildcard/charge
// checks, isotope plausibility, implicit hydrogen count for organic-subset
// atoms, explicit hydrogen count for bracket atoms, and the tetrahedral
// parity flip for an implicit bracket hydrogen.
func resolveAtom(a parsedAtom, finalBondOrderSum int) (chem.Atom, error) {
	if a.number == 0 {
		if a.charge != 0 {
			return chem.Atom{}, chem.NewChargedStarError(a.offset)
		}
		hydrogens := 0
		if a.bracket && a.explicitH != nil {
			hydrogens = *a.explicitH
		}
		return chem.NewAtom(0, hydrogens, 0, 0, a.isotope, finalParity(a)), nil
	}

	if a.isotope != nil && *a.isotope < a.number {
		return chem.Atom{}, chem.NewIsotopeError(a.offset)
	}

	var hydrogens int
	if a.bracket {
		hydrogens = 0
		if a.explicitH != nil {
			hydrogens = *a.explicitH
		}
	} else {
		h, ok := chem.ImplicitHydrogens(a.number, a.charge, finalBondOrderSum)
		if !ok {
			return chem.Atom{}, chem.NewValenceError(a.offset)
		}
		hydrogens = h
	}

	// Overbonding check, grounded on to_node.rs's to_electrons/bare_to_atom:
	// accept iff valence_electrons(element) - charge - (bonds + hydrogens) >= 0.
	// This is an overbonding-only check — it does not require an exact target
	// valence match, so radicals, cations and carbenes with fewer electrons
	// than a neutral closed-shell atom (e.g. [CH3+], [B-](C)(C)(C)C) are
	// accepted rather than rejected.
	electrons, ok := chem.Electrons(a.number, a.charge, hydrogens, finalBondOrderSum)
	if !ok {
		return chem.Atom{}, chem.NewValenceError(a.offset)
	}

	return chem.NewAtom(a.number, hydrogens, a.charge, electrons, a.isotope, finalParity(a)), nil
}

// finalParity applies the parent-plus-implicit-hydrogen flip rule, grounded
// on original_source/src/daylight/atom_parity.rs's atom_parity function: an
// implicit hydrogen inserted into a bracket atom's neighbor list sits right
// after the parent, so the written parity is negated when both a parent and
// an implicit hydrogen are present.
func finalParity(a parsedAtom) *chem.Parity {
	if a.rawParity == nil {
		return nil
	}
	p := *a.rawParity
	if a.hasParent && a.bracket && a.explicitH != nil && *a.explicitH > 0 {
		p = p.Negate()
	}
	return &p
}
