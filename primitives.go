package peglex

//  ---- Epsilon ----

type epsilon struct{}

// Epsilon matches the empty string: it always succeeds and never
// advances.  It is the identity element of Sequence and the fallback
// arm of Optional.
func Epsilon() Matcher { return epsilon{} }

func (epsilon) Match(pos Position) (Position, error) {
	return pos, nil
}

//  ---- Any ----

type anyByte struct{}

// Any matches any single byte.  It also succeeds at the terminator,
// where it observes the sentinel without advancing, so repeating Any
// at end of input stays put instead of running away.
func Any() Matcher { return anyByte{} }

func (anyByte) Match(pos Position) (Position, error) {
	return pos.Next(), nil
}

//  ---- Char ----

type char struct{ c byte }

// Char matches the byte c exactly and advances by one.  Matching
// Char(Terminator) at end of input succeeds but leaves the position
// unchanged, mirroring Any's fixed point: "end of input" can be
// required, yet never consumed.
func Char(c byte) Matcher { return char{c: c} }

func (m char) Match(pos Position) (Position, error) {
	if pos.Peek() != m.c {
		return pos, ErrNoMatch
	}
	return pos.Next(), nil
}

//  ---- Range ----

type byteRange struct{ lo, hi byte }

// Range matches a single byte within the closed interval [lo, hi].
// The terminator advance rule is the same as Char's: Range(0, 'z')
// matches at end of input without moving.
func Range(lo, hi byte) Matcher { return byteRange{lo: lo, hi: hi} }

func (m byteRange) Match(pos Position) (Position, error) {
	if c := pos.Peek(); c < m.lo || c > m.hi {
		return pos, ErrNoMatch
	}
	return pos.Next(), nil
}

//  ---- Literal ----

type literal struct{ s string }

// Literal matches s byte by byte.  It fails on the first mismatch,
// or when the input ends before the literal does, and advances by
// exactly len(s) on success.
func Literal(s string) Matcher { return literal{s: s} }

func (m literal) Match(pos Position) (Position, error) {
	cur := pos
	for i := 0; i < len(m.s); i++ {
		if cur.AtEnd() || cur.Peek() != m.s[i] {
			return pos, ErrNoMatch
		}
		cur = cur.Next()
	}
	return cur, nil
}
