package term

import (
	"fmt"
	"io"
	"strings"
)

// Printer renders terms, patterns, rules and whole books in the
// surface syntax. The output is a display format for diagnostics and
// golden tests; it is not guaranteed to parse back into the same tree.
type Printer struct {
	w     io.Writer
	names *DefNames
}

// NewPrinter creates a printer. The name table is needed to render
// TermRef nodes and rule heads.
func NewPrinter(w io.Writer, names *DefNames) *Printer {
	return &Printer{w: w, names: names}
}

func (p *Printer) printf(format string, args ...any) {
	fmt.Fprintf(p.w, format, args...)
}

// orWild renders an optional binder name.
func orWild(n Name) string {
	if !n.IsSet() {
		return "*"
	}
	return string(n)
}

// PrintTerm writes one term.
func (p *Printer) PrintTerm(t *Term) {
	switch d := t.Data.(type) {
	case LamData:
		p.printf("λ%s ", orWild(d.Name))
		p.PrintTerm(d.Body)
	case VarTermData:
		p.printf("%s", d.Name)
	case ChnData:
		p.printf("λ$%s ", d.Name)
		p.PrintTerm(d.Body)
	case LnkData:
		p.printf("$%s", d.Name)
	case RefData:
		p.printf("%s", p.names.MustName(d.Def))
	case AppData:
		p.printf("(")
		p.PrintTerm(d.Fun)
		p.printf(" ")
		p.PrintTerm(d.Arg)
		p.printf(")")
	case DupData:
		p.printf("dup %s %s = ", orWild(d.Fst), orWild(d.Snd))
		p.PrintTerm(d.Val)
		p.printf("; ")
		p.PrintTerm(d.Nxt)
	case U32TermData:
		p.printf("%d", d.Val)
	case I32TermData:
		p.printf("%+d", d.Val)
	case OpxData:
		p.printf("(%s ", d.Op)
		p.PrintTerm(d.Fst)
		p.printf(" ")
		p.PrintTerm(d.Snd)
		p.printf(")")
	case SupData:
		p.printf("{")
		p.PrintTerm(d.Fst)
		p.printf(" ")
		p.PrintTerm(d.Snd)
		p.printf("}")
	case EraData:
		p.printf("*")
	default:
		panic(fmt.Sprintf("term: unprintable term kind %s", t.Kind))
	}
}

// PrintPattern writes one pattern.
func (p *Printer) PrintPattern(pat Pattern) {
	switch d := pat.Data.(type) {
	case CtrData:
		p.printf("(%s", d.Name)
		for i := range d.Args {
			p.printf(" ")
			p.PrintPattern(d.Args[i])
		}
		p.printf(")")
	case U32Data:
		p.printf("%d", d.Val)
	case I32Data:
		p.printf("%+d", d.Val)
	case VarData:
		p.printf("%s", orWild(d.Name))
	case TupData:
		p.printf("(")
		p.PrintPattern(*d.Fst)
		p.printf(", ")
		p.PrintPattern(*d.Snd)
		p.printf(")")
	default:
		panic(fmt.Sprintf("term: unprintable pattern kind %s", pat.Kind))
	}
}

// PrintRule writes one rule as "(<def> <pats...>) = <body>".
func (p *Printer) PrintRule(r *Rule) {
	p.printf("(%s", p.names.MustName(r.Def))
	for i := range r.Pats {
		p.printf(" ")
		p.PrintPattern(r.Pats[i])
	}
	p.printf(") = ")
	p.PrintTerm(r.Body)
}

// PrintDefinition writes a definition, one rule per line.
func (p *Printer) PrintDefinition(d *Definition) {
	for i := range d.Rules {
		if i > 0 {
			p.printf("\n")
		}
		p.PrintRule(&d.Rules[i])
	}
}

// PrintBook writes every definition, blank-line separated.
func (p *Printer) PrintBook(b *Book) {
	for i, d := range b.Defs {
		if i > 0 {
			p.printf("\n")
		}
		p.PrintDefinition(d)
	}
}

// Display renders the term to a string.
func (t *Term) Display(names *DefNames) string {
	var sb strings.Builder
	NewPrinter(&sb, names).PrintTerm(t)
	return sb.String()
}

// String renders the pattern. Patterns never reference the name table.
func (p Pattern) String() string {
	var sb strings.Builder
	NewPrinter(&sb, nil).PrintPattern(p)
	return sb.String()
}

// Display renders the rule to a string.
func (r *Rule) Display(names *DefNames) string {
	var sb strings.Builder
	NewPrinter(&sb, names).PrintRule(r)
	return sb.String()
}

// Display renders the whole book to a string.
func (b *Book) Display() string {
	var sb strings.Builder
	NewPrinter(&sb, b.Names).PrintBook(b)
	return sb.String()
}
