package peglex

//  ---- Sequence ----

type sequence struct{ items []Matcher }

// Sequence matches every item in order, each one starting where the
// previous one stopped, and fails as soon as any item fails.  Side
// effects already triggered by earlier items are not undone.  An
// empty Sequence is Epsilon.
func Sequence(items ...Matcher) Matcher { return sequence{items: items} }

func (m sequence) Match(pos Position) (Position, error) {
	cur := pos
	for _, item := range m.items {
		next, err := item.Match(cur)
		if err != nil {
			return pos, err
		}
		cur = next
	}
	return cur, nil
}

//  ---- Choice ----

type choice struct{ items []Matcher }

// Choice tries each alternative at the original position and returns
// the first success.  Order carries meaning: when one alternative is
// a prefix of another, the longer one must come first or it will
// never be reached.  An empty Choice always fails.
func Choice(items ...Matcher) Matcher { return choice{items: items} }

func (m choice) Match(pos Position) (Position, error) {
	for _, item := range m.items {
		if next, err := item.Match(pos); err == nil {
			return next, nil
		}
	}
	return pos, ErrNoMatch
}

//  ---- Not ----

type not struct{ expr Matcher }

// Not is the negative lookahead predicate: it succeeds exactly when
// expr fails, and never advances either way.
func Not(expr Matcher) Matcher { return not{expr: expr} }

func (m not) Match(pos Position) (Position, error) {
	if _, err := m.expr.Match(pos); err == nil {
		return pos, ErrNoMatch
	}
	return pos, nil
}

//  ---- And ----

type and struct{ expr Matcher }

// And is the positive lookahead predicate: it succeeds when expr
// succeeds, but always returns the original position, discarding
// whatever expr consumed.  Because expr may be an arbitrary
// sub-grammar this buys unbounded lookahead, paid for by
// re-evaluating expr when the main walk arrives here again.
func And(expr Matcher) Matcher { return and{expr: expr} }

func (m and) Match(pos Position) (Position, error) {
	if _, err := m.expr.Match(pos); err != nil {
		return pos, err
	}
	return pos, nil
}

//  ---- ZeroOrMore ----

type zeroOrMore struct{ expr Matcher }

// ZeroOrMore matches expr repeatedly until it fails and never fails
// itself.  Repetition is greedy and does not backtrack: once input
// is consumed here, no later node can ask for it back, so
// Sequence(ZeroOrMore(x), x) can never succeed on input tiled by x.
// A child that succeeds without advancing loops forever; guaranteeing
// progress is the grammar author's job.
func ZeroOrMore(expr Matcher) Matcher { return zeroOrMore{expr: expr} }

func (m zeroOrMore) Match(pos Position) (Position, error) {
	for {
		next, err := m.expr.Match(pos)
		if err != nil {
			return pos, nil
		}
		pos = next
	}
}

// OneOrMore matches expr at least once: it is literally
// Sequence(expr, ZeroOrMore(expr)).
func OneOrMore(expr Matcher) Matcher {
	return Sequence(expr, ZeroOrMore(expr))
}

// Optional matches expr if it is there: Choice(expr, Epsilon()).
// Expr is tried first; the other order would always take the empty
// arm.
func Optional(expr Matcher) Matcher {
	return Choice(expr, Epsilon())
}

//  ---- Until ----

type until struct{ expr Matcher }

// Until sweeps forward one byte at a time, testing expr
// lookahead-style at every offset, and stops at the first offset
// where expr would match: the swept bytes are consumed, expr's own
// match is not.  It fails when the terminator arrives first.  The
// sweep re-runs expr at every position, so an expensive expr makes
// this quadratic or worse; bound it by grammar design.
func Until(expr Matcher) Matcher { return until{expr: expr} }

func (m until) Match(pos Position) (Position, error) {
	cur := pos
	for !cur.AtEnd() {
		if _, err := m.expr.Match(cur); err == nil {
			return cur, nil
		}
		cur = cur.Next()
	}
	return pos, ErrNoMatch
}
