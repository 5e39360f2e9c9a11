package peglex

import "fmt"

// Terminator is the sentinel byte marking end of input.  The
// position holding it is valid and matchable (Char(Terminator)
// succeeds there), but no matcher ever advances past it.
const Terminator byte = 0

// Position is a cursor into an immutable input buffer.  It is a
// small value: combinators never mutate one, they return new ones,
// which is what makes rewinding free.  An earlier Position value
// still points at the earlier spot.
//
// Positions from different buffers must not be mixed; Span and Text
// are only defined between two positions of the same buffer.
type Position struct {
	input  []byte
	cursor int
}

// NewPosition returns the position of the first byte of input.
func NewPosition(input []byte) Position {
	return Position{input: input}
}

// Cursor returns the byte offset of the position within its buffer.
func (p Position) Cursor() int {
	return p.cursor
}

// Peek returns the byte under the cursor.  At or beyond the end of
// the buffer it returns Terminator, so an embedded zero byte behaves
// exactly like end of input.
func (p Position) Peek() byte {
	if p.cursor >= len(p.input) {
		return Terminator
	}
	return p.input[p.cursor]
}

// AtEnd reports whether the position observes the terminator.
func (p Position) AtEnd() bool {
	return p.Peek() == Terminator
}

// Next returns the position one byte ahead.  The terminator is a
// fixed point: it can be observed but never moved past, so Next at
// the end of input returns the position unchanged.  Hand-written
// MatcherFuncs advance with Peek and Next; everything else in the
// package is built on the same pair.
func (p Position) Next() Position {
	if p.Peek() == Terminator {
		return p
	}
	return Position{input: p.input, cursor: p.cursor + 1}
}

// Span returns the input between p and end as a subslice of the
// original buffer.  No copy is made: the result aliases the buffer
// and is valid only for as long as the buffer is.
func (p Position) Span(end Position) []byte {
	return p.input[p.cursor:end.cursor]
}

// Text returns the input between p and end as a freshly allocated
// string, independent of the buffer's lifetime.
func (p Position) Text(end Position) string {
	return string(p.input[p.cursor:end.cursor])
}

func (p Position) String() string {
	return fmt.Sprintf("%d", p.cursor)
}
