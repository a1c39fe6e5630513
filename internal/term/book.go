package term

import "fmt"

// Rule is one equation of a definition: a fixed-arity parameter
// pattern list and a body. Rules of one definition are tried in
// declaration order, so rule order is meaningful and preserved.
type Rule struct {
	Def  DefID
	Pats []Pattern
	Body *Term
}

// Definition is one top-level definition: a handle plus its rules in
// declaration order.
type Definition struct {
	Def   DefID
	Rules []Rule
}

// Book is the whole program at this stage: the name table plus every
// definition. It is built incrementally by the parser, rewritten in
// place by passes, and read by lowering; definitions are never removed
// at this layer.
type Book struct {
	Names *DefNames
	Defs  []*Definition
}

// NewBook returns an empty program container.
func NewBook() *Book {
	return &Book{Names: NewDefNames()}
}

// AddDef registers a definition under name and appends it with the
// given rules. The rules' Def fields are stamped with the new handle.
func (b *Book) AddDef(name Name, rules ...Rule) (*Definition, error) {
	if _, ok := b.Names.ID(name); ok {
		return nil, fmt.Errorf("duplicate definition %q", name)
	}
	id := b.Names.Intern(name)
	def := &Definition{Def: id, Rules: rules}
	for i := range def.Rules {
		def.Rules[i].Def = id
	}
	b.Defs = append(b.Defs, def)
	return def, nil
}

// Def finds a definition by handle.
func (b *Book) Def(id DefID) (*Definition, bool) {
	for _, d := range b.Defs {
		if d.Def == id {
			return d, true
		}
	}
	return nil, false
}

// Arity returns the parameter count of the definition's first rule, or
// zero for a definition with no rules.
func (d *Definition) Arity() int {
	if len(d.Rules) == 0 {
		return 0
	}
	return len(d.Rules[0].Pats)
}
