package transform

import (
	"context"
	"fmt"
	"reflect"
	"testing"

	"loom/internal/term"
)

func patStrings(pats []term.Pattern) []string {
	out := make([]string, len(pats))
	for i := range pats {
		out[i] = pats[i].String()
	}
	return out
}

func singleRuleBook(t *testing.T, pats ...term.Pattern) *term.Book {
	t.Helper()
	book := term.NewBook()
	if _, err := book.AddDef("Main", term.Rule{Pats: pats, Body: term.Era()}); err != nil {
		t.Fatal(err)
	}
	return book
}

func TestResolveBareCtrName(t *testing.T) {
	ctrs := term.NewCtrSet("Cons", "Nil")
	book := singleRuleBook(t,
		term.PatVarOf("Cons"),
		term.PatVarOf("x"),
		term.PatWild(),
	)

	ResolveCtrs(book, ctrs.Has)

	got := patStrings(book.Defs[0].Rules[0].Pats)
	want := []string{"(Cons)", "x", "*"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestResolveInsideCtrArgs(t *testing.T) {
	ctrs := term.NewCtrSet("Nil")
	book := singleRuleBook(t,
		term.PatCtrOf("Pair", term.PatVarOf("Nil"), term.PatVarOf("y")),
	)

	ResolveCtrs(book, ctrs.Has)

	got := book.Defs[0].Rules[0].Pats[0].String()
	want := "(Pair (Nil) y)"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestResolveNoCtrsIsNoop(t *testing.T) {
	ctrs := term.NewCtrSet()
	book := singleRuleBook(t,
		term.PatVarOf("Cons"),
		term.PatCtrOf("Pair", term.PatVarOf("Nil")),
		term.PatU32Of(4),
		term.PatWild(),
	)
	before := make([]term.Pattern, len(book.Defs[0].Rules[0].Pats))
	for i, p := range book.Defs[0].Rules[0].Pats {
		before[i] = p.Clone()
	}

	ResolveCtrs(book, ctrs.Has)

	if !reflect.DeepEqual(book.Defs[0].Rules[0].Pats, before) {
		t.Errorf("empty oracle changed patterns: %v", patStrings(book.Defs[0].Rules[0].Pats))
	}
}

func TestResolveNonInterference(t *testing.T) {
	// Wildcards, numerics, tuples and explicitly-applied ctrs survive
	// untouched; only their sub-patterns may be rewritten.
	ctrs := term.NewCtrSet("Nil")
	book := singleRuleBook(t,
		term.PatWild(),
		term.PatU32Of(7),
		term.PatI32Of(-7),
		term.PatTupOf(term.PatVarOf("Nil"), term.PatVarOf("b")),
		term.PatCtrOf("Cons", term.PatVarOf("x"), term.PatVarOf("xs")),
	)

	ResolveCtrs(book, ctrs.Has)

	got := patStrings(book.Defs[0].Rules[0].Pats)
	want := []string{"*", "7", "-7", "(Nil, b)", "(Cons x xs)"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestResolveGlobalNamespaceWins(t *testing.T) {
	// A constructor declared anywhere claims its name in every
	// definition; there is no per-rule shadowing.
	ctrs := term.NewCtrSet("Zero")
	book := term.NewBook()
	if _, err := book.AddDef("Nat", term.Rule{Pats: []term.Pattern{term.PatVarOf("Zero")}, Body: term.U32(0)}); err != nil {
		t.Fatal(err)
	}
	if _, err := book.AddDef("Unrelated", term.Rule{Pats: []term.Pattern{term.PatVarOf("Zero")}, Body: term.Era()}); err != nil {
		t.Fatal(err)
	}

	ResolveCtrs(book, ctrs.Has)

	for _, def := range book.Defs {
		if got := def.Rules[0].Pats[0].String(); got != "(Zero)" {
			t.Errorf("definition %d: got %q, want (Zero)", def.Def, got)
		}
	}
}

func TestResolveIdempotent(t *testing.T) {
	ctrs := term.NewCtrSet("Cons", "Nil")
	book := singleRuleBook(t,
		term.PatVarOf("Cons"),
		term.PatCtrOf("Pair", term.PatVarOf("Nil"), term.PatWild()),
		term.PatVarOf("x"),
	)

	ResolveCtrs(book, ctrs.Has)
	once := make([]term.Pattern, len(book.Defs[0].Rules[0].Pats))
	for i, p := range book.Defs[0].Rules[0].Pats {
		once[i] = p.Clone()
	}

	ResolveCtrs(book, ctrs.Has)
	if !reflect.DeepEqual(book.Defs[0].Rules[0].Pats, once) {
		t.Errorf("second run changed the result: %v", patStrings(book.Defs[0].Rules[0].Pats))
	}
}

func TestResolveLocality(t *testing.T) {
	ctrs := term.NewCtrSet("Nil")
	book := term.NewBook()
	if _, err := book.AddDef("A", term.Rule{Pats: []term.Pattern{term.PatVarOf("Nil")}, Body: term.Era()}); err != nil {
		t.Fatal(err)
	}
	if _, err := book.AddDef("B", term.Rule{Pats: []term.Pattern{term.PatVarOf("x")}, Body: term.Era()}); err != nil {
		t.Fatal(err)
	}
	bBefore := book.Defs[1].Rules[0].Pats[0].Clone()

	ResolveCtrs(book, ctrs.Has)

	if !reflect.DeepEqual(book.Defs[1].Rules[0].Pats[0], bBefore) {
		t.Error("resolving A's patterns changed B's patterns")
	}
}

// assertNoCtrVars fails if any variable pattern still carries a
// declared constructor name.
func assertNoCtrVars(t *testing.T, pats []term.Pattern, ctrs term.CtrSet) {
	t.Helper()
	for i := range pats {
		walkPattern(&pats[i], func(p *term.Pattern) {
			if d, ok := p.Data.(term.VarData); ok && ctrs.Has(d.Name) {
				t.Errorf("unresolved constructor name %q in %s", d.Name, p)
			}
		})
	}
}

func walkPattern(p *term.Pattern, f func(*term.Pattern)) {
	f(p)
	switch d := p.Data.(type) {
	case term.CtrData:
		for i := range d.Args {
			walkPattern(&d.Args[i], f)
		}
	case term.TupData:
		walkPattern(d.Fst, f)
		walkPattern(d.Snd, f)
	}
}

func buildWideBook(t *testing.T, defs int) (*term.Book, term.CtrSet) {
	t.Helper()
	ctrs := term.NewCtrSet("Cons", "Nil", "Zero", "Succ")
	book := term.NewBook()
	for i := 0; i < defs; i++ {
		name := term.Name(fmt.Sprintf("Def%d", i))
		rules := []term.Rule{
			{
				Pats: []term.Pattern{
					term.PatVarOf("Cons"),
					term.PatCtrOf("Pair", term.PatVarOf("Nil"), term.PatVarOf("x")),
					term.PatWild(),
				},
				Body: term.Era(),
			},
			{
				Pats: []term.Pattern{
					term.PatVarOf("Succ"),
					term.PatVarOf("y"),
					term.PatI32Of(-1),
				},
				Body: term.U32(0),
			},
		}
		if _, err := book.AddDef(name, rules...); err != nil {
			t.Fatal(err)
		}
	}
	return book, ctrs
}

func TestResolveCompleteness(t *testing.T) {
	book, ctrs := buildWideBook(t, 16)

	ResolveCtrs(book, ctrs.Has)

	for _, def := range book.Defs {
		for i := range def.Rules {
			assertNoCtrVars(t, def.Rules[i].Pats, ctrs)
		}
	}
}

func TestResolveParallelMatchesSequential(t *testing.T) {
	seq, ctrs := buildWideBook(t, 32)
	par, _ := buildWideBook(t, 32)

	ResolveCtrs(seq, ctrs.Has)
	if err := ResolveCtrsParallel(context.Background(), par, ctrs.Has, 4); err != nil {
		t.Fatalf("parallel resolve: %v", err)
	}

	if seq.Display() != par.Display() {
		t.Error("parallel and sequential resolution disagree")
	}
}

func TestResolveParallelCanceled(t *testing.T) {
	book, ctrs := buildWideBook(t, 8)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := ResolveCtrsParallel(ctx, book, ctrs.Has, 2); err == nil {
		t.Error("canceled context must surface an error")
	}
}
