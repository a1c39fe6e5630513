package term

// TermKind enumerates term node kinds.
type TermKind uint8

const (
	// TermLam is a lambda; the bound name is visible in Body only.
	TermLam TermKind = iota
	// TermVar is a reference to a lexically bound name.
	TermVar
	// TermChn is a channel binder: a scopeless lambda whose name may be
	// referenced from anywhere in the same top-level definition.
	TermChn
	// TermLnk is the use of a channel-bound name.
	TermLnk
	// TermRef is a reference to a top-level definition.
	TermRef
	// TermApp is function application.
	TermApp
	// TermDup binds two aliases of one duplicated value over Nxt.
	TermDup
	// TermU32 is an unsigned machine-number literal.
	TermU32
	// TermI32 is a signed machine-number literal.
	TermI32
	// TermOpx is a binary numeric operation.
	TermOpx
	// TermSup pairs two terms as simultaneous alternatives.
	TermSup
	// TermEra is an explicit discard.
	TermEra
)

// String returns a human-readable name for the term kind.
func (k TermKind) String() string {
	switch k {
	case TermLam:
		return "Lam"
	case TermVar:
		return "Var"
	case TermChn:
		return "Chn"
	case TermLnk:
		return "Lnk"
	case TermRef:
		return "Ref"
	case TermApp:
		return "App"
	case TermDup:
		return "Dup"
	case TermU32:
		return "U32"
	case TermI32:
		return "I32"
	case TermOpx:
		return "Opx"
	case TermSup:
		return "Sup"
	case TermEra:
		return "Era"
	default:
		return "Unknown"
	}
}

// Term is one node of a rule body.
type Term struct {
	Kind TermKind
	Data TermData
}

// TermData is the interface for kind-specific term payloads.
type TermData interface {
	termData()
}

// LamData holds data for TermLam. An unset Name is an erased binder.
type LamData struct {
	Name Name
	Body *Term
}

// VarTermData holds data for TermVar.
type VarTermData struct {
	Name Name
}

// ChnData holds data for TermChn.
type ChnData struct {
	Name Name
	Body *Term
}

// LnkData holds data for TermLnk.
type LnkData struct {
	Name Name
}

// RefData holds data for TermRef. Def must resolve in the enclosing
// Book's DefNames table.
type RefData struct {
	Def DefID
}

// AppData holds data for TermApp.
type AppData struct {
	Fun *Term
	Arg *Term
}

// DupData holds data for TermDup. Fst and Snd both alias Val and are
// lexically scoped over Nxt; either may be unset when unused.
type DupData struct {
	Fst Name
	Snd Name
	Val *Term
	Nxt *Term
}

// U32TermData holds data for TermU32.
type U32TermData struct {
	Val uint32
}

// I32TermData holds data for TermI32.
type I32TermData struct {
	Val int32
}

// OpxData holds data for TermOpx.
type OpxData struct {
	Op  Opr
	Fst *Term
	Snd *Term
}

// SupData holds data for TermSup.
type SupData struct {
	Fst *Term
	Snd *Term
}

// EraData holds data for TermEra.
type EraData struct{}

func (LamData) termData()     {}
func (VarTermData) termData() {}
func (ChnData) termData()     {}
func (LnkData) termData()     {}
func (RefData) termData()     {}
func (AppData) termData()     {}
func (DupData) termData()     {}
func (U32TermData) termData() {}
func (I32TermData) termData() {}
func (OpxData) termData()     {}
func (SupData) termData()     {}
func (EraData) termData()     {}

// Lam builds a lambda term.
func Lam(name Name, body *Term) *Term {
	return &Term{Kind: TermLam, Data: LamData{Name: name, Body: body}}
}

// Var builds a lexical variable reference.
func Var(name Name) *Term {
	return &Term{Kind: TermVar, Data: VarTermData{Name: name}}
}

// Chn builds a channel binder.
func Chn(name Name, body *Term) *Term {
	return &Term{Kind: TermChn, Data: ChnData{Name: name, Body: body}}
}

// Lnk builds a channel reference.
func Lnk(name Name) *Term {
	return &Term{Kind: TermLnk, Data: LnkData{Name: name}}
}

// Ref builds a top-level reference.
func Ref(def DefID) *Term {
	return &Term{Kind: TermRef, Data: RefData{Def: def}}
}

// App builds an application.
func App(fun, arg *Term) *Term {
	return &Term{Kind: TermApp, Data: AppData{Fun: fun, Arg: arg}}
}

// Dup builds a duplication binder.
func Dup(fst, snd Name, val, nxt *Term) *Term {
	return &Term{Kind: TermDup, Data: DupData{Fst: fst, Snd: snd, Val: val, Nxt: nxt}}
}

// U32 builds an unsigned literal.
func U32(v uint32) *Term {
	return &Term{Kind: TermU32, Data: U32TermData{Val: v}}
}

// I32 builds a signed literal.
func I32(v int32) *Term {
	return &Term{Kind: TermI32, Data: I32TermData{Val: v}}
}

// Opx builds a binary numeric operation.
func Opx(op Opr, fst, snd *Term) *Term {
	return &Term{Kind: TermOpx, Data: OpxData{Op: op, Fst: fst, Snd: snd}}
}

// Sup builds a superposition.
func Sup(fst, snd *Term) *Term {
	return &Term{Kind: TermSup, Data: SupData{Fst: fst, Snd: snd}}
}

// Era builds an erasure.
func Era() *Term {
	return &Term{Kind: TermEra, Data: EraData{}}
}
