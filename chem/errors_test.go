package chem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorConstructors(t *testing.T) {
	cases := []struct {
		name string
		err  *Error
		kind ErrorKind
	}{
		{"character", NewCharacterError(3), Character},
		{"end_of_line", NewEndOfLineError(), EndOfLine},
		{"bond_kind", NewBondKindError(4), BondKind},
		{"valence", NewValenceError(1), Valence},
		{"isotope", NewIsotopeError(0), Isotope},
		{"parity", NewParityError(2), TetrahedralParity},
		{"charged_star", NewChargedStarError(5), ChargedStar},
		{"incompatible_join", NewIncompatibleJoinError(0, 4), IncompatibleJoin},
		{"kekulization", NewKekulizationError(), Kekulization},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.NotNil(t, c.err)
			assert.Equal(t, c.kind, c.err.Kind)
			assert.NotEmpty(t, c.err.Error())
		})
	}
}

func TestIncompatibleJoinCarriesBothOffsets(t *testing.T) {
	err := NewIncompatibleJoinError(0, 4)
	assert.Equal(t, 0, err.Offset1)
	assert.Equal(t, 4, err.Offset2)
}
