package peglex

// The callback wrappers are the engine's only output channel.  Each
// wraps a sub-matcher and notifies the surrounding application when
// that sub-matcher succeeds or fails, with increasing payload: none,
// the matched span as raw boundaries, or an owned copy of the
// matched text.
//
// Hooks fire in traversal order, synchronously, and are not
// transactional: a hook runs even when an enclosing Sequence or
// Choice later throws the branch away, so consumers must tolerate
// speculative invocation.  A nil hook is a no-op.

type callback struct {
	expr    Matcher
	matched func()
	missed  func()
}

// Callback invokes matched after expr succeeds (before the result is
// returned) and missed after it fails.
func Callback(expr Matcher, matched, missed func()) Matcher {
	return callback{expr: expr, matched: matched, missed: missed}
}

func (m callback) Match(pos Position) (Position, error) {
	next, err := m.expr.Match(pos)
	if err != nil {
		if m.missed != nil {
			m.missed()
		}
		return pos, err
	}
	if m.matched != nil {
		m.matched()
	}
	return next, nil
}

type spanCallback struct {
	expr    Matcher
	matched func(start, end Position)
	missed  func()
}

// SpanCallback is Callback with the matched span handed to the
// success hook as its raw boundary pair.  start.Span(end) yields the
// matched bytes without copying; the slice aliases the input buffer
// and is valid only for as long as the buffer is.
func SpanCallback(expr Matcher, matched func(start, end Position), missed func()) Matcher {
	return spanCallback{expr: expr, matched: matched, missed: missed}
}

func (m spanCallback) Match(pos Position) (Position, error) {
	next, err := m.expr.Match(pos)
	if err != nil {
		if m.missed != nil {
			m.missed()
		}
		return pos, err
	}
	if m.matched != nil {
		m.matched(pos, next)
	}
	return next, nil
}

type textCallback struct {
	expr    Matcher
	matched func(text string)
	missed  func()
}

// TextCallback is Callback with the matched text handed to the
// success hook as a fresh string, trading one allocation per match
// for a value independent of the input buffer's lifetime.
func TextCallback(expr Matcher, matched func(text string), missed func()) Matcher {
	return textCallback{expr: expr, matched: matched, missed: missed}
}

func (m textCallback) Match(pos Position) (Position, error) {
	next, err := m.expr.Match(pos)
	if err != nil {
		if m.missed != nil {
			m.missed()
		}
		return pos, err
	}
	if m.matched != nil {
		m.matched(pos.Text(next))
	}
	return next, nil
}
