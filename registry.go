package peglex

import "fmt"

// Registry resolves rules that are referenced before they can exist.
// A grammar tree is built bottom-up, so a rule that contains itself
// (an expression holding a parenthesized expression, say) has nothing
// to point at while its own fragments are being assembled.  The
// registry breaks the cycle with one level of indirection: Lookup
// hands out a matcher tied to a key and the finished rule is bound
// to that key afterwards; every match through the lookup resolves
// dynamically to whatever is bound at that moment.
//
// Binding is construction-time work.  A registry is expected to be
// fully populated before the first match; after that lookups are
// read-only and safe for concurrent matching.  Bind concurrent with
// lookup is not synchronized.
type Registry[K comparable] struct {
	bindings map[K]Matcher
}

// NewRegistry returns an empty registry keyed by K.
func NewRegistry[K comparable]() *Registry[K] {
	return &Registry[K]{bindings: make(map[K]Matcher)}
}

// Bind registers m as the rule behind key.  Each key is bound exactly
// once; binding it again is a defect in grammar assembly and panics.
func (r *Registry[K]) Bind(key K, m Matcher) {
	if _, ok := r.bindings[key]; ok {
		panic(fmt.Sprintf("peglex: duplicate binding for key %v", key))
	}
	r.bindings[key] = m
}

// Lookup returns the indirection matcher for key.  Calling Lookup
// before the key is bound is fine (that is the whole point), but
// matching through the result while the key is still unbound is a
// defect in grammar assembly and panics.
func (r *Registry[K]) Lookup(key K) MatcherFunc {
	return func(pos Position) (Position, error) {
		m, ok := r.bindings[key]
		if !ok {
			panic(fmt.Sprintf("peglex: no matcher bound for key %v", key))
		}
		return m.Match(pos)
	}
}
