package smilesread

import "github.com/cx-luo/go-smiles/chem"

// resolveBonds finalizes every bond's order and, for double bonds between
// two trigonal centers, its cis/trans parity, grounded on
// original_source/src/daylight/smiles/read/to_bond.rs.
func resolveBonds(r *parseResult) ([]chem.Bond, error) {
	out := make([]chem.Bond, len(r.bonds))
	for i, b := range r.bonds {
		order := finalOrder(b)
		var parity *chem.Parity

		if order == chem.BondDouble {
			left, err := trigonalParity(r, b.a)
			if err != nil {
				return nil, err
			}
			right, err := trigonalParity(r, b.b)
			if err != nil {
				return nil, err
			}
			if left != nil && right != nil {
				combined := left.Multiply(right.Negate())
				parity = &combined
			}
		}

		out[i] = chem.Bond{Begin: b.a, End: b.b, Order: order, Parity: parity}
	}
	return out, nil
}

// trigonalBond is one of an atom's incident bonds, in written order, with
// its kind resolved to Double for bonds kekulize promoted (kekulize.go only
// flips parsedBond.promoted, never b.kind itself) and its other endpoint's
// offset available for error reporting.
type trigonalBond struct {
	index       int
	kind        bondKind
	otherOffset int
}

// trigonalBonds returns atom's incident bonds in written order, mirroring
// purr::graph::Atom.bonds as consumed by to_bond.rs's trigonal_parity: each
// entry carries its kekulize-resolved kind (a matched aromatic bond reads as
// Double; an unmatched one reads as a plain, non-directional bond).
func (r *parseResult) trigonalBonds(atom int) []trigonalBond {
	indices := r.bondIndicesOf(atom)
	out := make([]trigonalBond, len(indices))
	for i, bi := range indices {
		b := r.bonds[bi]
		kind := b.kind
		if b.promoted {
			kind = kindDouble
		} else if kind == kindAromatic {
			kind = kindElided
		}
		other := b.a
		if other == atom {
			other = b.b
		}
		out[i] = trigonalBond{index: bi, kind: kind, otherOffset: r.atoms[other].offset}
	}
	return out
}

// trigonalParity computes one double-bond terminus's local parity
// contribution, transliterated from
// original_source/src/daylight/smiles/read/to_bond.rs's trigonal_parity: a
// full slot-position decision table over the atom's first, second and
// (optional) third incident bond, in written order — the double bond may
// occupy any of those slots depending on where it was written relative to
// this atom, so the resulting sign is slot-dependent, not just a function of
// which directional token was used. Two identically-directed bonds at one
// atom, or a directional bond where the table requires a double/elided
// neighbor, is reported as a BondKind error (this table's only error kind —
// Parity is reserved for atoms with the wrong bond count entirely).
func trigonalParity(r *parseResult, atom int) (*chem.Parity, error) {
	bonds := r.trigonalBonds(atom)
	if len(bonds) < 2 {
		return nil, nil
	}

	first, second := bonds[0], bonds[1]
	var third *trigonalBond
	if len(bonds) >= 3 {
		t := bonds[2]
		third = &t
	}

	pos, neg := chem.Positive, chem.Negative

	switch first.kind {
	case kindUp:
		switch second.kind {
		case kindUp:
			return nil, chem.NewBondKindError(second.otherOffset)
		case kindDown:
			if third == nil || third.kind != kindDouble {
				return nil, chem.NewBondKindError(first.otherOffset)
			}
			if len(bonds) == 3 {
				return &pos, nil
			}
			return nil, chem.NewBondKindError(first.otherOffset)
		case kindDouble:
			if third == nil {
				return &neg, nil
			}
			switch third.kind {
			case kindDown, kindElided:
				if len(bonds) == 3 {
					return &neg, nil
				}
				return nil, chem.NewBondKindError(first.otherOffset)
			default:
				return nil, chem.NewBondKindError(third.otherOffset)
			}
		case kindElided:
			if third == nil || third.kind != kindDouble {
				if third != nil {
					return nil, chem.NewBondKindError(third.otherOffset)
				}
				return nil, chem.NewBondKindError(first.otherOffset)
			}
			if len(bonds) == 3 {
				return &pos, nil
			}
			return nil, chem.NewBondKindError(first.otherOffset)
		default:
			return nil, chem.NewBondKindError(second.otherOffset)
		}

	case kindDown:
		switch second.kind {
		case kindDown:
			return nil, chem.NewBondKindError(second.otherOffset)
		case kindUp:
			if third == nil || third.kind != kindDouble {
				return nil, chem.NewBondKindError(first.otherOffset)
			}
			if len(bonds) == 3 {
				return &neg, nil
			}
			return nil, chem.NewBondKindError(first.otherOffset)
		case kindDouble:
			if third == nil {
				return &pos, nil
			}
			switch third.kind {
			case kindUp, kindElided:
				if len(bonds) == 3 {
					return &pos, nil
				}
				return nil, chem.NewBondKindError(first.otherOffset)
			default:
				return nil, chem.NewBondKindError(third.otherOffset)
			}
		case kindElided:
			if third == nil || third.kind != kindDouble {
				if third != nil {
					return nil, chem.NewBondKindError(third.otherOffset)
				}
				return nil, chem.NewBondKindError(first.otherOffset)
			}
			if len(bonds) == 3 {
				return &neg, nil
			}
			return nil, chem.NewBondKindError(first.otherOffset)
		default:
			return nil, chem.NewBondKindError(second.otherOffset)
		}

	case kindDouble:
		switch second.kind {
		case kindUp:
			if third == nil {
				return &neg, nil
			}
			switch third.kind {
			case kindUp:
				return nil, chem.NewBondKindError(third.otherOffset)
			case kindDown:
				if len(bonds) == 3 {
					return &neg, nil
				}
				return nil, chem.NewBondKindError(second.otherOffset)
			case kindElided:
				if len(bonds) == 3 {
					return &neg, nil
				}
				return nil, chem.NewBondKindError(bonds[3].otherOffset)
			default:
				return nil, chem.NewBondKindError(third.otherOffset)
			}
		case kindDown:
			if third == nil {
				return &pos, nil
			}
			switch third.kind {
			case kindDown:
				return nil, chem.NewBondKindError(third.otherOffset)
			case kindUp:
				if len(bonds) == 3 {
					return &pos, nil
				}
				return nil, chem.NewBondKindError(second.otherOffset)
			case kindElided:
				if len(bonds) == 3 {
					return &pos, nil
				}
				return nil, chem.NewBondKindError(bonds[3].otherOffset)
			default:
				return nil, chem.NewBondKindError(third.otherOffset)
			}
		default:
			if third == nil {
				return nil, nil
			}
			switch third.kind {
			case kindUp, kindDown:
				return nil, chem.NewBondKindError(second.otherOffset)
			default:
				return nil, nil
			}
		}

	case kindElided:
		switch second.kind {
		case kindDouble:
			if third == nil {
				return nil, nil
			}
			switch third.kind {
			case kindUp:
				return &neg, nil
			case kindDown:
				return &pos, nil
			default:
				return nil, nil
			}
		case kindUp:
			return &neg, nil
		case kindDown:
			return &pos, nil
		default:
			return nil, nil
		}

	default:
		switch second.kind {
		case kindUp, kindDown:
			return nil, chem.NewBondKindError(first.otherOffset)
		default:
			return nil, nil
		}
	}
}
