package term

import (
	"fmt"

	"loom/internal/diag"
)

// Validate checks the referential-integrity invariants the rest of the
// pipeline assumes: every TermRef resolves in the name table, every
// channel use has exactly one binder in its definition, and no two
// channel binders in one definition share a name. Violations indicate
// an upstream bug; callers must stop on bag.HasErrors() rather than
// hand a partially-wrong book to lowering.
func (b *Book) Validate(bag *diag.Bag) {
	for _, def := range b.Defs {
		b.validateDef(def, bag)
	}
}

func (b *Book) validateDef(def *Definition, bag *diag.Bag) {
	defName := ""
	if n, ok := b.Names.Name(def.Def); ok {
		defName = string(n)
	} else {
		bag.Add(diag.Diagnostic{
			Severity: diag.SevError,
			Code:     diag.IRDanglingRef,
			Message:  fmt.Sprintf("definition id %d has no name-table entry", def.Def),
		})
	}

	arity := def.Arity()
	for i := range def.Rules {
		if len(def.Rules[i].Pats) != arity {
			bag.Add(diag.Diagnostic{
				Severity: diag.SevError,
				Code:     diag.IRArityMismatch,
				Message:  fmt.Sprintf("rule %d has %d patterns, first rule has %d", i, len(def.Rules[i].Pats), arity),
				Def:      defName,
			})
		}
	}

	// Channel names are scoped to the whole definition, not to the
	// binder's body, so they get their own per-definition registry
	// instead of the lexical environment lambdas would use.
	chans := make(map[Name]int)
	for i := range def.Rules {
		countChannels(def.Rules[i].Body, chans)
	}
	for name, n := range chans {
		if n > 1 {
			bag.Add(diag.Diagnostic{
				Severity: diag.SevError,
				Code:     diag.IRDuplicateChannel,
				Message:  fmt.Sprintf("channel $%s bound %d times", name, n),
				Def:      defName,
			})
		}
	}
	for i := range def.Rules {
		b.validateTerm(def.Rules[i].Body, defName, chans, bag)
	}
}

// countChannels records every Chn binder name in the tree.
func countChannels(t *Term, chans map[Name]int) {
	switch d := t.Data.(type) {
	case LamData:
		countChannels(d.Body, chans)
	case VarTermData:
	case ChnData:
		chans[d.Name]++
		countChannels(d.Body, chans)
	case LnkData:
	case RefData:
	case AppData:
		countChannels(d.Fun, chans)
		countChannels(d.Arg, chans)
	case DupData:
		countChannels(d.Val, chans)
		countChannels(d.Nxt, chans)
	case U32TermData, I32TermData:
	case OpxData:
		countChannels(d.Fst, chans)
		countChannels(d.Snd, chans)
	case SupData:
		countChannels(d.Fst, chans)
		countChannels(d.Snd, chans)
	case EraData:
	default:
		panic(fmt.Sprintf("term: unvalidatable term kind %s", t.Kind))
	}
}

func (b *Book) validateTerm(t *Term, defName string, chans map[Name]int, bag *diag.Bag) {
	switch d := t.Data.(type) {
	case LamData:
		b.validateTerm(d.Body, defName, chans, bag)
	case VarTermData:
	case ChnData:
		b.validateTerm(d.Body, defName, chans, bag)
	case LnkData:
		if chans[d.Name] == 0 {
			bag.Add(diag.Diagnostic{
				Severity: diag.SevError,
				Code:     diag.IRUnboundLink,
				Message:  fmt.Sprintf("link $%s has no channel binder", d.Name),
				Def:      defName,
			})
		}
	case RefData:
		if !b.Names.Has(d.Def) {
			bag.Add(diag.Diagnostic{
				Severity: diag.SevError,
				Code:     diag.IRDanglingRef,
				Message:  fmt.Sprintf("reference to unregistered definition id %d", d.Def),
				Def:      defName,
			})
		}
	case AppData:
		b.validateTerm(d.Fun, defName, chans, bag)
		b.validateTerm(d.Arg, defName, chans, bag)
	case DupData:
		b.validateTerm(d.Val, defName, chans, bag)
		b.validateTerm(d.Nxt, defName, chans, bag)
	case U32TermData, I32TermData:
	case OpxData:
		b.validateTerm(d.Fst, defName, chans, bag)
		b.validateTerm(d.Snd, defName, chans, bag)
	case SupData:
		b.validateTerm(d.Fst, defName, chans, bag)
		b.validateTerm(d.Snd, defName, chans, bag)
	case EraData:
	default:
		panic(fmt.Sprintf("term: unvalidatable term kind %s", t.Kind))
	}
}
