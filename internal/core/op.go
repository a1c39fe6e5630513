// Package core declares the numeric-operator codes of the interaction
// graph runtime that rule bodies are ultimately lowered into. Only the
// operator boundary lives here; graph construction and reduction belong
// to the runtime itself.
package core

// Op is a runtime numeric-operator code. The set is fixed by the
// runtime's reduction rules; codes outside it do not exist on the wire.
type Op uint8

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpEq
	OpNeq
	OpLt
	OpGt
	OpLte
	OpGte
	OpAnd
	OpOr
)

// String returns the runtime mnemonic for the code.
func (o Op) String() string {
	switch o {
	case OpAdd:
		return "ADD"
	case OpSub:
		return "SUB"
	case OpMul:
		return "MUL"
	case OpDiv:
		return "DIV"
	case OpMod:
		return "MOD"
	case OpEq:
		return "EQ"
	case OpNeq:
		return "NEQ"
	case OpLt:
		return "LT"
	case OpGt:
		return "GT"
	case OpLte:
		return "LTE"
	case OpGte:
		return "GTE"
	case OpAnd:
		return "AND"
	case OpOr:
		return "OR"
	default:
		return "UNKNOWN"
	}
}

// Valid reports whether the code is one the runtime defines.
func (o Op) Valid() bool {
	return o <= OpOr
}
