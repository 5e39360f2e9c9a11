// Package peglex implements Parsing Expression Grammar (PEG) matching
// over byte buffers.
//
// Grammars are assembled bottom-up as immutable trees of Matcher
// values and evaluated in a single top-down walk: each node either
// advances the input position or fails, and there is no global
// backtracking; only the explicit lookahead combinators (And, Not,
// Until) rewind consumed input.  Choice is ordered: the first
// alternative to succeed wins, so alternatives must be listed from
// most to least specific.  Repetition is greedy and never gives
// input back to a later node.
//
// The engine produces no parse tree.  A match either advances the
// position or fails; anything else the application wants out of a
// match happens through the callback wrappers (Callback,
// SpanCallback, TextCallback), which fire their hooks even when an
// enclosing combinator later discards the branch.  Recursive
// rules, which cannot be expressed by bottom-up construction alone,
// are tied with a Registry: reference a key before the rule exists,
// bind the finished rule to the key afterwards.
//
// Matching is byte oriented.  The zero byte is the input terminator:
// positions at (or beyond) the end of the buffer observe Terminator
// and can be matched, but never advanced past.
package peglex

import "errors"

// ErrNoMatch is the failure result of a matcher.  It carries no
// further information on purpose: failing is a normal, recoverable
// grammar outcome, and any diagnostics are the grammar author's
// business through the callback wrappers.
var ErrNoMatch = errors.New("no match")

// Matcher is the single contract every grammar node implements.
// Match tests the node's rule at pos and returns the advanced
// position, or ErrNoMatch when the rule does not hold there.  The
// input buffer is never modified, so a failed attempt leaves the
// caller free to retry at the same Position value.
type Matcher interface {
	Match(pos Position) (Position, error)
}

// MatcherFunc adapts a plain function to the Matcher interface, the
// same way http.HandlerFunc adapts handlers.  It is the indirection
// node of the engine: Registry lookups return one, and hand-written
// matching functions can be dropped into a grammar as leaves.
type MatcherFunc func(pos Position) (Position, error)

// Match calls fn.
func (fn MatcherFunc) Match(pos Position) (Position, error) { return fn(pos) }

// Match runs matcher m against input from the first byte.  It is a
// convenience for m.Match(NewPosition(input)).
func Match(m Matcher, input []byte) (Position, error) {
	return m.Match(NewPosition(input))
}
