// Package term is the program representation between parsing and
// lowering: named definitions made of pattern-matching rules whose
// bodies are terms of the interaction-combinator source calculus.
// Passes rewrite a Book in place; the printer renders the surface
// syntax for diagnostics and golden tests.
package term

// Name is an interned identifier. Names compare and hash by value and
// are immutable once created; the empty Name is reserved as the
// "no name" sentinel used by erased binders and wildcard patterns.
type Name string

// NoName marks an absent binder: an erased lambda argument, an unused
// duplication slot, or a wildcard pattern position.
const NoName Name = ""

// IsSet reports whether the name actually names something.
func (n Name) IsSet() bool {
	return n != NoName
}

func (n Name) String() string {
	return string(n)
}

// CtrSet is the global constructor namespace: the set of every
// constructor name declared anywhere in the program. It is built by an
// external collaborator (the parser's declaration sweep or a manifest)
// and read by the resolution pass through Has.
type CtrSet map[Name]struct{}

// NewCtrSet builds a set from the given names.
func NewCtrSet(names ...Name) CtrSet {
	s := make(CtrSet, len(names))
	for _, n := range names {
		s.Add(n)
	}
	return s
}

// Add inserts a constructor name. Re-adding is a no-op.
func (s CtrSet) Add(n Name) {
	s[n] = struct{}{}
}

// Has reports whether n is a declared constructor.
func (s CtrSet) Has(n Name) bool {
	_, ok := s[n]
	return ok
}

// Len returns the number of declared constructors.
func (s CtrSet) Len() int {
	return len(s)
}
