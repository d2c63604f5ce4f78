package smilesread

import (
	"testing"

	"github.com/cx-luo/go-smiles/chem"
)

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name    string
		smiles  string
		wantErr bool
	}{
		{"methane", "C", false},
		{"ethane", "CC", false},
		{"ethene", "C=C", false},
		{"benzene_lowercase", "c1ccccc1", false},
		{"benzene_aromatic_bonds", "C1:C:C:C:C:C:1", false},
		{"furan", "c1ccoc1", false},
		{"pyrrole", "c1cc[nH]c1", false},
		{"unkekulizable", "ccc", true},
		{"invalid_character", "CCX", true},
		{"end_of_line", "C=", true},
		{"stray_directional_bond", "C-C/C", true},
		{"hypervalence", "C=C(C)(C)C", true},
		{"incompatible_join", "C-1CC=1", true},
		{"charged_wildcard", "C[*+]", true},
		{"unlikely_isotope", "[2C]C", true},
		{"tritium_is_plausible", "[3H]C", false},
		{"bracket_methyl_cation", "[CH3+]", false},
		{"negative_boron_tetravalent", "[B-](C)(C)(C)C", false},
		{"bracket_methylene_radical", "[CH2]", false},
		{"bracket_methylene_anion", "[CH2-]", false},
		{"same_direction_bonds", "C=C(/C)/C", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Read(tc.smiles)
			if (err != nil) != tc.wantErr {
				t.Fatalf("Read(%q) error = %v, wantErr %v", tc.smiles, err, tc.wantErr)
			}
		})
	}
}

func TestReadTransButeneParity(t *testing.T) {
	m, err := Read("C/C=C/C")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	bi, ok := m.BondBetween(1, 2)
	if !ok {
		t.Fatalf("expected a bond between atoms 1 and 2")
	}
	bond := m.Bonds[bi]
	if bond.Order != chem.BondDouble {
		t.Fatalf("bond order = %v, want Double", bond.Order)
	}
	if bond.Parity == nil || *bond.Parity != chem.Negative {
		t.Fatalf("bond parity = %v, want Negative", bond.Parity)
	}
}

func TestBracketOverbondingIsElectronsNotExactValence(t *testing.T) {
	tests := []struct {
		name          string
		smiles        string
		wantElectrons int
	}{
		{"methyl_cation", "[CH3+]", 0},
		{"boron_tetravalent_anion", "[B-](C)(C)(C)C", 0},
		{"methylene_radical", "[CH2]", 2},
		{"methylene_anion", "[CH2-]", 3},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := Read(tc.smiles)
			if err != nil {
				t.Fatalf("Read(%q): %v", tc.smiles, err)
			}
			if got := m.Atoms[0].Electrons; got != tc.wantElectrons {
				t.Fatalf("Atoms[0].Electrons = %d, want %d", got, tc.wantElectrons)
			}
		})
	}
}

func TestReadWithClassesCollectsAtomClass(t *testing.T) {
	classes := make(map[int]int)
	m, err := ReadWithClasses("[CH3:1]O[CH3:2]", classes)
	if err != nil {
		t.Fatalf("ReadWithClasses: %v", err)
	}
	if m.AtomCount() != 3 {
		t.Fatalf("AtomCount() = %d, want 3", m.AtomCount())
	}
	want := map[int]int{0: 1, 2: 2}
	if len(classes) != len(want) {
		t.Fatalf("classes = %v, want %v", classes, want)
	}
	for id, class := range want {
		if classes[id] != class {
			t.Fatalf("classes[%d] = %d, want %d", id, classes[id], class)
		}
	}
}

func TestOrganicStarAndBracketStarAgree(t *testing.T) {
	bare, err := Read("C*")
	if err != nil {
		t.Fatalf("Read(C*): %v", err)
	}
	bracket, err := Read("C[*]")
	if err != nil {
		t.Fatalf("Read(C[*]): %v", err)
	}
	if bare.AtomCount() != bracket.AtomCount() || bare.BondCount() != bracket.BondCount() {
		t.Fatalf("bare and bracket star molecules differ in shape")
	}
	if bare.Atoms[1].Number != bracket.Atoms[1].Number {
		t.Fatalf("bare and bracket star atoms differ: %+v vs %+v", bare.Atoms[1], bracket.Atoms[1])
	}
}
