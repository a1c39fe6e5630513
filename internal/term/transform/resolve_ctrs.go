// Package transform holds the in-place rewriting passes that run over
// a Book between parsing and lowering.
package transform

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"loom/internal/term"
)

// ResolveCtrs disambiguates constructor names inside rule patterns.
// While parsing a rule the full constructor set is not known yet, so a
// bare pattern identifier cannot be told apart from a zero-argument
// constructor; once every declaration has been seen, this pass rewrites
// each Var pattern whose name the oracle recognizes into a
// zero-argument Ctr pattern. The constructor namespace is global: a
// name declared as a constructor anywhere in the program is never a
// pattern variable, regardless of which definition it appears in.
//
// The pass is total and idempotent. Wildcards, numeric and tuple
// patterns are left untouched; existing Ctr nodes keep their arguments
// and only have those arguments resolved recursively.
func ResolveCtrs(book *term.Book, isCtr func(term.Name) bool) {
	for _, def := range book.Defs {
		resolveDef(def, isCtr)
	}
}

// ResolveCtrsParallel is ResolveCtrs fanned out across definitions. No
// rule's resolution depends on another's, so definitions only share
// read access to the oracle; jobs <= 0 means GOMAXPROCS. The oracle
// must be safe for concurrent reads.
func ResolveCtrsParallel(ctx context.Context, book *term.Book, isCtr func(term.Name) bool, jobs int) error {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(book.Defs)))

	for _, def := range book.Defs {
		def := def
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			resolveDef(def, isCtr)
			return nil
		})
	}
	return g.Wait()
}

func resolveDef(def *term.Definition, isCtr func(term.Name) bool) {
	for r := range def.Rules {
		pats := def.Rules[r].Pats
		for i := range pats {
			resolvePattern(&pats[i], isCtr)
		}
	}
}

// resolvePattern rewrites one pattern node in place. The decision at a
// Var node depends only on its own name and the oracle, never on
// sibling or ancestor context.
func resolvePattern(p *term.Pattern, isCtr func(term.Name) bool) {
	switch d := p.Data.(type) {
	case term.VarData:
		if d.Name.IsSet() && isCtr(d.Name) {
			*p = term.PatCtrOf(d.Name)
		}
	case term.CtrData:
		for i := range d.Args {
			resolvePattern(&d.Args[i], isCtr)
		}
	case term.U32Data, term.I32Data, term.TupData:
		// Numeric matches are never names; tuples are eliminated by a
		// later lowering and carry no constructor positions here.
	}
}
