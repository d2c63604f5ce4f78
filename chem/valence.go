package chem

import "github.com/cx-luo/go-smiles/element"

// targetValences lists, in ascending order, the valences a neutral atom of
// each organic-subset element is expected to satisfy. Elements outside this
// table (bracket-only atoms) carry no implicit valence contract: their
// hydrogen count must always be written explicitly.
var targetValences = map[int][]int{
	1:  {1},       // H
	5:  {3},       // B
	6:  {4},       // C
	7:  {3, 5},    // N
	8:  {2},       // O
	9:  {1},       // F
	15: {3, 5},    // P
	16: {2, 4, 6}, // S
	17: {1},       // Cl
	35: {1},       // Br
	53: {1},       // I
}

// nearestValence returns the smallest entry of targets, shifted by charge,
// that is at least occupied, and whether one exists.
func nearestValence(number, charge, occupied int) (int, bool) {
	targets, ok := targetValences[number]
	if !ok {
		return 0, false
	}
	for _, t := range targets {
		shifted := t + charge
		if shifted >= occupied {
			return shifted, true
		}
	}
	return 0, false
}

// ImplicitHydrogens returns the number of hydrogens an organic-subset atom
// must carry implicitly, given the sum of its explicit bond orders (aromatic
// bonds counted as order 1) and its formal charge. ok is false if the atom
// is hypervalent: no target valence accommodates its explicit bonds.
func ImplicitHydrogens(number, charge, explicitBondOrderSum int) (int, bool) {
	target, ok := nearestValence(number, charge, explicitBondOrderSum)
	if !ok {
		return 0, false
	}
	return target - explicitBondOrderSum, true
}

// Subvalence returns the number of additional bond orders an atom may still
// accept beyond its explicit bonds and the given hydrogens, with aromatic
// bonds counted as order 1. Implicit hydrogens are not subtracted, so an
// organic-subset atom can return more than 1 (2 for each carbon of
// "c1ccccc1"). A positive subvalence marks the atom eligible for the
// pi-subgraph; ok is false if the atom is hypervalent.
func Subvalence(number, charge, hydrogens, explicitBondOrderSum int) (int, bool) {
	target, ok := nearestValence(number, charge, explicitBondOrderSum+hydrogens)
	if !ok {
		return 0, false
	}
	return target - (explicitBondOrderSum + hydrogens), true
}

// Electrons computes an atom's non-bonding valence electron count, grounded
// on original_source/src/daylight/smiles/read/to_node.rs's to_electrons:
// the element's valence electrons, less its formal charge, less its total
// bonding (explicit bond order sum plus hydrogen count). ok is false if the
// result would be negative — an overbonded atom, regardless of whether its
// hydrogen count was inferred (organic subset) or written explicitly
// (bracket atom).
func Electrons(number, charge, hydrogens, explicitBondOrderSum int) (int, bool) {
	result := element.ValenceElectrons(number) - charge - (hydrogens + explicitBondOrderSum)
	if result < 0 {
		return 0, false
	}
	return result, true
}
