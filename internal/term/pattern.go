package term

// PatternKind enumerates rule-parameter pattern kinds.
type PatternKind uint8

const (
	// PatCtr matches a data constructor applied to sub-patterns.
	PatCtr PatternKind = iota
	// PatU32 matches an unsigned machine-number literal.
	PatU32
	// PatI32 matches a signed machine-number literal.
	PatI32
	// PatVar binds a bare identifier, or nothing when the name is unset.
	PatVar
	// PatTup matches a pair. Carried through this layer untouched;
	// tuple elimination happens during lowering.
	PatTup
)

// String returns a human-readable name for the pattern kind.
func (k PatternKind) String() string {
	switch k {
	case PatCtr:
		return "Ctr"
	case PatU32:
		return "U32"
	case PatI32:
		return "I32"
	case PatVar:
		return "Var"
	case PatTup:
		return "Tup"
	default:
		return "Unknown"
	}
}

// Pattern is one node of a rule-parameter pattern tree.
type Pattern struct {
	Kind PatternKind
	Data PatternData
}

// PatternData is the interface for kind-specific pattern payloads.
type PatternData interface {
	patternData()
}

// CtrData holds data for PatCtr. Until the constructor-resolution pass
// has run, Name is only known to be a constructor when Args came from
// explicit application syntax; afterwards every constructor occurrence
// in pattern position is a CtrData node.
type CtrData struct {
	Name Name
	Args []Pattern
}

// U32Data holds data for PatU32.
type U32Data struct {
	Val uint32
}

// I32Data holds data for PatI32.
type I32Data struct {
	Val int32
}

// VarData holds data for PatVar. An unset Name is the wildcard that
// binds nothing.
type VarData struct {
	Name Name
}

// TupData holds data for PatTup.
type TupData struct {
	Fst *Pattern
	Snd *Pattern
}

func (CtrData) patternData() {}
func (U32Data) patternData() {}
func (I32Data) patternData() {}
func (VarData) patternData() {}
func (TupData) patternData() {}

// PatCtrOf builds a constructor pattern.
func PatCtrOf(name Name, args ...Pattern) Pattern {
	return Pattern{Kind: PatCtr, Data: CtrData{Name: name, Args: args}}
}

// PatU32Of builds an unsigned numeric pattern.
func PatU32Of(v uint32) Pattern {
	return Pattern{Kind: PatU32, Data: U32Data{Val: v}}
}

// PatI32Of builds a signed numeric pattern.
func PatI32Of(v int32) Pattern {
	return Pattern{Kind: PatI32, Data: I32Data{Val: v}}
}

// PatVarOf builds a binding pattern.
func PatVarOf(name Name) Pattern {
	return Pattern{Kind: PatVar, Data: VarData{Name: name}}
}

// PatWild builds the wildcard pattern.
func PatWild() Pattern {
	return Pattern{Kind: PatVar, Data: VarData{}}
}

// PatTupOf builds a pair pattern.
func PatTupOf(fst, snd Pattern) Pattern {
	return Pattern{Kind: PatTup, Data: TupData{Fst: &fst, Snd: &snd}}
}

// Clone returns a deep copy of the pattern tree.
func (p Pattern) Clone() Pattern {
	switch d := p.Data.(type) {
	case CtrData:
		args := make([]Pattern, len(d.Args))
		for i := range d.Args {
			args[i] = d.Args[i].Clone()
		}
		return Pattern{Kind: PatCtr, Data: CtrData{Name: d.Name, Args: args}}
	case TupData:
		fst := d.Fst.Clone()
		snd := d.Snd.Clone()
		return Pattern{Kind: PatTup, Data: TupData{Fst: &fst, Snd: &snd}}
	default:
		// U32Data, I32Data and VarData carry no references.
		return p
	}
}
