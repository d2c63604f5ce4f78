package chem

import "testing"

func TestParityMultiply(t *testing.T) {
	cases := []struct {
		name     string
		a, b     Parity
		expected Parity
	}{
		{"positive_positive", Positive, Positive, Positive},
		{"negative_negative", Negative, Negative, Positive},
		{"positive_negative", Positive, Negative, Negative},
		{"negative_positive", Negative, Positive, Negative},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.a.Multiply(c.b); got != c.expected {
				t.Fatalf("%v.Multiply(%v) = %v, want %v", c.a, c.b, got, c.expected)
			}
		})
	}
}

func TestParityNegate(t *testing.T) {
	if Positive.Negate() != Negative {
		t.Fatalf("Positive.Negate() should be Negative")
	}
	if Negative.Negate() != Positive {
		t.Fatalf("Negative.Negate() should be Positive")
	}
}

func TestBondOrderMultiplicity(t *testing.T) {
	cases := []struct {
		order BondOrder
		want  int
	}{
		{BondZero, 0},
		{BondSingle, 1},
		{BondDouble, 2},
		{BondTriple, 3},
		{BondQuadruple, 4},
	}
	for _, c := range cases {
		if got := c.order.Multiplicity(); got != c.want {
			t.Fatalf("%v.Multiplicity() = %d, want %d", c.order, got, c.want)
		}
	}
}

func TestImplicitHydrogens(t *testing.T) {
	cases := []struct {
		name                  string
		number, charge, bonds int
		want                  int
		ok                    bool
	}{
		{"methane_carbon", 6, 0, 0, 4, true},
		{"ethane_carbon", 6, 0, 1, 3, true},
		{"ammonium_nitrogen", 7, 1, 0, 4, true},
		{"hypervalent_carbon", 6, 0, 5, 0, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := ImplicitHydrogens(c.number, c.charge, c.bonds)
			if ok != c.ok {
				t.Fatalf("ok = %v, want %v", ok, c.ok)
			}
			if ok && got != c.want {
				t.Fatalf("hydrogens = %d, want %d", got, c.want)
			}
		})
	}
}

func TestMoleculeAddBond(t *testing.T) {
	m := NewMolecule()
	a := m.AddAtom(NewAtom(6, 3, 0, 0, nil, nil))
	b := m.AddAtom(NewAtom(6, 3, 0, 0, nil, nil))
	m.AddBond(Bond{Begin: a, End: b, Order: BondSingle})

	if m.AtomCount() != 2 || m.BondCount() != 1 {
		t.Fatalf("unexpected molecule shape: %d atoms, %d bonds", m.AtomCount(), m.BondCount())
	}
	neighbors := m.Neighbors(a)
	if len(neighbors) != 1 || neighbors[0] != b {
		t.Fatalf("Neighbors(a) = %v, want [%d]", neighbors, b)
	}
	if _, ok := m.BondBetween(a, b); !ok {
		t.Fatalf("expected a bond between a and b")
	}
}

func TestElectronsOverbondingOnly(t *testing.T) {
	cases := []struct {
		name                                      string
		number, charge, hydrogens, bondOrderSum   int
		want                                      int
		ok                                        bool
	}{
		{"methyl_cation", 6, 1, 3, 0, 0, true},
		{"boron_tetravalent_anion", 5, -1, 0, 4, 0, true},
		{"methylene_radical", 6, 0, 2, 0, 2, true},
		{"methylene_anion", 6, -1, 2, 0, 3, true},
		{"hypervalent_carbon", 6, 0, 0, 5, 0, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := Electrons(c.number, c.charge, c.hydrogens, c.bondOrderSum)
			if ok != c.ok {
				t.Fatalf("ok = %v, want %v", ok, c.ok)
			}
			if ok && got != c.want {
				t.Fatalf("electrons = %d, want %d", got, c.want)
			}
		})
	}
}

func TestMoleculeGraphAccessors(t *testing.T) {
	m := NewMolecule()
	a := m.AddAtom(NewAtom(6, 4, 0, 4, nil, nil))
	b := m.AddAtom(NewAtom(6, 3, 1, 3, nil, nil))
	c := m.AddAtom(NewAtom(6, 4, 0, 4, nil, nil))
	m.AddBond(Bond{Begin: b, End: a, Order: BondSingle})

	if m.IsEmpty() {
		t.Fatalf("IsEmpty() = true, want false")
	}
	if m.Order() != 3 || m.Size() != 1 {
		t.Fatalf("Order()/Size() = %d/%d, want 3/1", m.Order(), m.Size())
	}
	if got := m.Ids(); len(got) != 3 || got[0] != 0 || got[2] != 2 {
		t.Fatalf("Ids() = %v", got)
	}
	if !m.HasID(c) || m.HasID(99) {
		t.Fatalf("HasID gave wrong answer for valid/invalid ids")
	}
	if m.Degree(a) != 1 || m.Degree(c) != 0 {
		t.Fatalf("Degree(a)/Degree(c) = %d/%d, want 1/0", m.Degree(a), m.Degree(c))
	}
	if !m.HasEdge(a, b) || m.HasEdge(a, c) {
		t.Fatalf("HasEdge gave wrong answer")
	}
	edges := m.Edges()
	if len(edges) != 1 || edges[0] != [2]int{a, b} {
		t.Fatalf("Edges() = %v, want [[%d %d]]", edges, a, b)
	}

	order, err := m.BondOrder(a, b)
	if err != nil || order != float32(BondSingle.Multiplicity()) {
		t.Fatalf("BondOrder(a,b) = %v, %v", order, err)
	}
	order, err = m.BondOrder(a, c)
	if err != nil || order != 0 {
		t.Fatalf("BondOrder(a,c) for non-adjacent valid atoms = %v, %v, want 0, nil", order, err)
	}
	if _, err := m.BondOrder(a, 99); err == nil {
		t.Fatalf("BondOrder with an unknown id should fail")
	}

	charge, err := m.Charge(b)
	if err != nil || charge != 1 {
		t.Fatalf("Charge(b) = %v, %v, want 1, nil", charge, err)
	}
	if _, err := m.Charge(99); err == nil {
		t.Fatalf("Charge with an unknown id should fail")
	}
}
