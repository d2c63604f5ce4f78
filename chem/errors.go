package chem

import "fmt"

// ErrorKind classifies a reader error. Every kind except Kekulization,
// EndOfLine and UnknownId carries one or two byte offsets into the original
// SMILES text; UnknownId carries an atom id instead.
type ErrorKind int

const (
	// Character marks an unrecognized character at Offset1.
	Character ErrorKind = iota
	// EndOfLine marks a SMILES string that ended mid-construct (a trailing
	// bond symbol, an unterminated bracket, ...). It carries no offset.
	EndOfLine
	// BondKind marks a directional bond token not adjacent to a double
	// bond, or an invalid local conformation at one end of a double bond
	// (such as two same-direction directional bonds at one atom), at Offset1.
	BondKind
	// Valence marks an atom whose explicit bonds and hydrogens overflow
	// every valence the element accepts, at Offset1.
	Valence
	// Isotope marks an isotope mass number implausible for its element
	// (below the atomic number), at Offset1.
	Isotope
	// TetrahedralParity marks a tetrahedral parity marker on an atom whose
	// effective degree is not 4, at Offset1. The reading pipeline does not
	// check tetrahedral degree, so Read never returns this kind.
	TetrahedralParity
	// ChargedStar marks a wildcard atom written with an explicit charge,
	// at Offset1.
	ChargedStar
	// IncompatibleJoin marks a ring closure whose two ends declared
	// conflicting bond kinds, at Offset1 and Offset2.
	IncompatibleJoin
	// Kekulization marks an aromatic system with no perfect matching over
	// its pi-subgraph. It carries no offset.
	Kekulization
	// UnknownId marks a Molecule graph-accessor call naming an atom id that
	// does not exist, at Offset1.
	UnknownId
)

// Error is the structured error type returned by the reading pipeline. The
// first error encountered aborts the pipeline; no partial molecule is ever
// returned alongside a non-nil Error.
type Error struct {
	Kind    ErrorKind
	Offset1 int
	Offset2 int
}

func (e *Error) Error() string {
	switch e.Kind {
	case Character:
		return fmt.Sprintf("invalid character at offset %d", e.Offset1)
	case EndOfLine:
		return "unexpected end of SMILES"
	case BondKind:
		return fmt.Sprintf("misplaced directional bond at offset %d", e.Offset1)
	case Valence:
		return fmt.Sprintf("no valid valence for atom at offset %d", e.Offset1)
	case Isotope:
		return fmt.Sprintf("implausible isotope at offset %d", e.Offset1)
	case TetrahedralParity:
		return fmt.Sprintf("invalid tetrahedral parity at offset %d", e.Offset1)
	case ChargedStar:
		return fmt.Sprintf("charged wildcard atom at offset %d", e.Offset1)
	case IncompatibleJoin:
		return fmt.Sprintf("incompatible ring closure between offsets %d and %d", e.Offset1, e.Offset2)
	case Kekulization:
		return "aromatic system cannot be kekulized"
	case UnknownId:
		return fmt.Sprintf("unknown atom id %d", e.Offset1)
	default:
		return "unknown reader error"
	}
}

// NewCharacterError builds a Character error.
func NewCharacterError(offset int) *Error { return &Error{Kind: Character, Offset1: offset} }

// NewEndOfLineError builds an EndOfLine error.
func NewEndOfLineError() *Error { return &Error{Kind: EndOfLine} }

// NewBondKindError builds a BondKind error.
func NewBondKindError(offset int) *Error { return &Error{Kind: BondKind, Offset1: offset} }

// NewValenceError builds a Valence error.
func NewValenceError(offset int) *Error { return &Error{Kind: Valence, Offset1: offset} }

// NewIsotopeError builds an Isotope error.
func NewIsotopeError(offset int) *Error { return &Error{Kind: Isotope, Offset1: offset} }

// NewParityError builds a TetrahedralParity error.
func NewParityError(offset int) *Error { return &Error{Kind: TetrahedralParity, Offset1: offset} }

// NewChargedStarError builds a ChargedStar error.
func NewChargedStarError(offset int) *Error { return &Error{Kind: ChargedStar, Offset1: offset} }

// NewIncompatibleJoinError builds an IncompatibleJoin error.
func NewIncompatibleJoinError(offset1, offset2 int) *Error {
	return &Error{Kind: IncompatibleJoin, Offset1: offset1, Offset2: offset2}
}

// NewKekulizationError builds a Kekulization error.
func NewKekulizationError() *Error { return &Error{Kind: Kekulization} }

// NewUnknownIdError builds an UnknownId error for the given atom id.
func NewUnknownIdError(id int) *Error { return &Error{Kind: UnknownId, Offset1: id} }
