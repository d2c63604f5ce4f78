package smilesread

import (
	"strconv"
	"strings"

	"github.com/cx-luo/go-smiles/chem"
	"github.com/cx-luo/go-smiles/element"
)

// ringOpen records a still-open ring-closure digit: the atom that opened it,
// that atom's offset (for IncompatibleJoin reporting), and the bond kind
// written at the opening, if any.
type ringOpen struct {
	atom   int
	offset int
	kind   bondKind
	kindSet bool
}

// tokenize scans a SMILES string into a flat atom/bond list, grounded on
// cx-luo-go-chem/src/molecule/smiles_loader.go's character-scan shape
// (branch stack, ring-bond map with conflict detection) merged with
// original_source's two-offset IncompatibleJoin reporting, which requires
// tracking the *atom* offset at each ring digit rather than the bond
// symbol's offset.
func tokenize(s string) (*parseResult, error) {
	r := &parseResult{}
	var branchStack []int
	lastAtom := -1
	pendingKind := kindElided
	pendingSet := false
	rings := make(map[int]ringOpen)

	linkFromLast := func(childIdx, offset int) {
		if lastAtom == -1 {
			return
		}
		kind := kindElided
		if pendingSet {
			kind = pendingKind
			pendingSet = false
		}
		r.bonds = append(r.bonds, parsedBond{offset: offset, kind: kind, a: lastAtom, b: childIdx})
		r.atoms[childIdx].hasParent = true
	}

	i := 0
	for i < len(s) {
		ch := s[i]
		switch {
		case ch == '(':
			if lastAtom == -1 {
				return nil, chem.NewCharacterError(i)
			}
			branchStack = append(branchStack, lastAtom)
			i++

		case ch == ')':
			if len(branchStack) == 0 {
				return nil, chem.NewCharacterError(i)
			}
			lastAtom = branchStack[len(branchStack)-1]
			branchStack = branchStack[:len(branchStack)-1]
			i++

		case ch == '.':
			if pendingSet {
				return nil, chem.NewEndOfLineError()
			}
			lastAtom = -1
			i++

		case bondSymbol(ch):
			kind, _ := bondKindFromByte(ch)
			pendingKind = kind
			pendingSet = true
			i++

		case ch == '%' || isDigit(ch):
			ringNum, next, err := scanRingNumber(s, i)
			if err != nil {
				return nil, err
			}
			if lastAtom == -1 {
				return nil, chem.NewCharacterError(i)
			}
			kind := kindElided
			kindSet := false
			if pendingSet {
				kind = pendingKind
				kindSet = true
				pendingSet = false
			}
			atomOffset := r.atoms[lastAtom].offset
			if open, ok := rings[ringNum]; ok {
				finalKind, ok2 := joinRingBondKinds(open, kind, kindSet)
				if !ok2 {
					return nil, chem.NewIncompatibleJoinError(open.offset, atomOffset)
				}
				r.bonds = append(r.bonds, parsedBond{offset: atomOffset, kind: finalKind, a: open.atom, b: lastAtom})
				delete(rings, ringNum)
			} else {
				rings[ringNum] = ringOpen{atom: lastAtom, offset: atomOffset, kind: kind, kindSet: kindSet}
			}
			i = next

		case ch == '[':
			atom, next, err := parseBracketAtom(s, i)
			if err != nil {
				return nil, err
			}
			idx := len(r.atoms)
			r.atoms = append(r.atoms, atom)
			linkFromLast(idx, i)
			lastAtom = idx
			i = next

		default:
			atom, next, err := parseOrganicAtom(s, i)
			if err != nil {
				return nil, err
			}
			idx := len(r.atoms)
			r.atoms = append(r.atoms, atom)
			linkFromLast(idx, i)
			lastAtom = idx
			i = next
		}
	}

	if pendingSet || len(branchStack) > 0 || len(rings) > 0 || len(r.atoms) == 0 {
		return nil, chem.NewEndOfLineError()
	}
	if err := validateDirectionalBonds(r); err != nil {
		return nil, err
	}
	return r, nil
}

// validateDirectionalBonds rejects a directional bond ("/" or "\") that
// isn't adjacent to a double bond at either endpoint, per
// original_source/src/daylight/smiles/read/to_bond.rs. The reported offset
// is the bond's target atom, matching that function's BondKind(usize)
// convention (confirmed by "C-C/C" resolving to BondKind(4), the offset of
// the second "C", not the "/" token at offset 3).
func validateDirectionalBonds(r *parseResult) error {
	adjacentToDouble := func(atom, exclude int) bool {
		for _, bi := range r.bondIndicesOf(atom) {
			if bi != exclude && r.bonds[bi].kind == kindDouble {
				return true
			}
		}
		return false
	}
	for i, b := range r.bonds {
		if b.kind != kindUp && b.kind != kindDown {
			continue
		}
		if adjacentToDouble(b.a, i) || adjacentToDouble(b.b, i) {
			continue
		}
		return chem.NewBondKindError(r.atoms[b.b].offset)
	}
	return nil
}

func bondSymbol(ch byte) bool {
	switch ch {
	case '-', '=', '#', '$', ':', '/', '\\':
		return true
	}
	return false
}

func bondKindFromByte(ch byte) (bondKind, bool) {
	switch ch {
	case '-':
		return kindSingle, true
	case '=':
		return kindDouble, true
	case '#':
		return kindTriple, true
	case '$':
		return kindQuadruple, true
	case ':':
		return kindAromatic, true
	case '/':
		return kindUp, true
	case '\\':
		return kindDown, true
	}
	return kindElided, false
}

// joinRingBondKinds resolves the bond kind for a closed ring, per
// original_source's IncompatibleJoin rule: an elided side defers to the
// other side; two non-elided sides must agree.
func joinRingBondKinds(open ringOpen, closeKind bondKind, closeSet bool) (bondKind, bool) {
	switch {
	case !open.kindSet && !closeSet:
		return kindElided, true
	case !open.kindSet:
		return closeKind, true
	case !closeSet:
		return open.kind, true
	case open.kind == closeKind:
		return open.kind, true
	default:
		return kindElided, false
	}
}

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }

func scanRingNumber(s string, i int) (int, int, error) {
	if s[i] == '%' {
		if i+2 >= len(s) || !isDigit(s[i+1]) || !isDigit(s[i+2]) {
			return 0, 0, chem.NewCharacterError(i)
		}
		n, _ := strconv.Atoi(s[i+1 : i+3])
		return n, i + 3, nil
	}
	n := int(s[i] - '0')
	return n, i + 1, nil
}

// parseOrganicAtom reads one organic-subset atom outside brackets: a
// wildcard, a one- or two-letter aliphatic element, or a lowercase aromatic
// element.
func parseOrganicAtom(s string, i int) (parsedAtom, int, error) {
	if s[i] == '*' {
		return parsedAtom{offset: i}, i + 1, nil
	}
	if i+1 < len(s) {
		two := s[i : i+2]
		if two == "Cl" || two == "Br" {
			num, _ := element.FromSymbol(two)
			return parsedAtom{offset: i, number: num}, i + 2, nil
		}
	}
	ch := s[i]
	switch ch {
	case 'B', 'C', 'N', 'O', 'P', 'S', 'F', 'I':
		num, ok := element.FromSymbol(string(ch))
		if !ok {
			return parsedAtom{}, 0, chem.NewCharacterError(i)
		}
		return parsedAtom{offset: i, number: num}, i + 1, nil
	case 'b', 'c', 'n', 'o', 'p', 's':
		num, ok := element.FromSymbol(strings.ToUpper(string(ch)))
		if !ok {
			return parsedAtom{}, 0, chem.NewCharacterError(i)
		}
		return parsedAtom{offset: i, number: num, aromaticWritten: true}, i + 1, nil
	}
	return parsedAtom{}, 0, chem.NewCharacterError(i)
}

// parseBracketAtom reads a bracketed atom starting at s[i] == '['.
func parseBracketAtom(s string, i int) (parsedAtom, int, error) {
	offset := i
	j := i + 1

	var isotope *int
	start := j
	for j < len(s) && isDigit(s[j]) {
		j++
	}
	if j > start {
		n, _ := strconv.Atoi(s[start:j])
		isotope = &n
	}

	if j >= len(s) {
		return parsedAtom{}, 0, chem.NewEndOfLineError()
	}

	number := 0
	aromaticWritten := false
	wildcard := false

	switch {
	case s[j] == '*':
		wildcard = true
		j++
	case isUpper(s[j]):
		if j+1 < len(s) && isLower(s[j+1]) {
			if num, ok := element.FromSymbol(s[j : j+2]); ok {
				number = num
				j += 2
				break
			}
		}
		num, ok := element.FromSymbol(string(s[j]))
		if !ok {
			return parsedAtom{}, 0, chem.NewCharacterError(j)
		}
		number = num
		j++
	case isLower(s[j]):
		if j+1 < len(s) && isLower(s[j+1]) {
			candidate := strings.ToUpper(s[j:j+1]) + s[j+1:j+2]
			if num, ok := element.FromSymbol(candidate); ok {
				number = num
				aromaticWritten = true
				j += 2
				break
			}
		}
		num, ok := element.FromSymbol(strings.ToUpper(string(s[j])))
		if !ok {
			return parsedAtom{}, 0, chem.NewCharacterError(j)
		}
		number = num
		aromaticWritten = true
		j++
	default:
		return parsedAtom{}, 0, chem.NewCharacterError(j)
	}

	var rawParity *chem.Parity
	if j < len(s) && s[j] == '@' {
		j++
		if j < len(s) && s[j] == '@' {
			p := chem.Positive
			rawParity = &p
			j++
		} else {
			p := chem.Negative
			rawParity = &p
		}
	}

	zero := 0
	explicitH := &zero
	if j < len(s) && s[j] == 'H' {
		j++
		n := 1
		start := j
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		if j > start {
			n, _ = strconv.Atoi(s[start:j])
		}
		explicitH = &n
	}

	charge := 0
	if j < len(s) && (s[j] == '+' || s[j] == '-') {
		sign := 1
		if s[j] == '-' {
			sign = -1
		}
		mark := s[j]
		j++
		switch {
		case j < len(s) && s[j] == mark:
			charge = 2 * sign
			j++
		case j < len(s) && isDigit(s[j]):
			start := j
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			n, _ := strconv.Atoi(s[start:j])
			charge = sign * n
		default:
			charge = sign
		}
	}

	var class *int
	if j < len(s) && s[j] == ':' {
		j++
		start := j
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		if j > start {
			n, _ := strconv.Atoi(s[start:j])
			class = &n
		}
	}

	if j >= len(s) || s[j] != ']' {
		return parsedAtom{}, 0, chem.NewEndOfLineError()
	}
	j++

	if wildcard && charge != 0 {
		return parsedAtom{}, 0, chem.NewChargedStarError(offset)
	}

	return parsedAtom{
		offset:          offset,
		number:          number,
		bracket:         true,
		aromaticWritten: aromaticWritten,
		isotope:         isotope,
		charge:          charge,
		explicitH:       explicitH,
		rawParity:       rawParity,
		class:           class,
	}, j, nil
}

func isUpper(ch byte) bool { return ch >= 'A' && ch <= 'Z' }
func isLower(ch byte) bool { return ch >= 'a' && ch <= 'z' }
