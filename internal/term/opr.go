package term

import (
	"errors"
	"fmt"

	"loom/internal/core"
)

// Opr is a numeric operator on built-in machine numbers.
type Opr uint8

const (
	OprAdd Opr = iota
	OprSub
	OprMul
	OprDiv
	OprMod
	OprAnd
	OprOr
	OprXor
	OprShl
	OprShr
	OprLtn
	OprLte
	OprGtn
	OprGte
	OprEql
	OprNeq
)

// ErrUnsupportedOp reports an operator the runtime has no code for.
// Conversion fails loudly instead of substituting a code; a wrong code
// would silently corrupt numeric results during reduction.
var ErrUnsupportedOp = errors.New("operator unsupported by runtime")

// String returns the surface symbol of the operator.
func (op Opr) String() string {
	switch op {
	case OprAdd:
		return "+"
	case OprSub:
		return "-"
	case OprMul:
		return "*"
	case OprDiv:
		return "/"
	case OprMod:
		return "%"
	case OprAnd:
		return "&"
	case OprOr:
		return "|"
	case OprXor:
		return "^"
	case OprShl:
		return "<<"
	case OprShr:
		return ">>"
	case OprLtn:
		return "<"
	case OprLte:
		return "<="
	case OprGtn:
		return ">"
	case OprGte:
		return ">="
	case OprEql:
		return "=="
	case OprNeq:
		return "!="
	default:
		return "?"
	}
}

// Core converts the operator to its runtime code. The bitwise shifts
// and xor have no runtime counterpart yet and fail with
// ErrUnsupportedOp; lowering must reject them before graph emission.
func (op Opr) Core() (core.Op, error) {
	switch op {
	case OprAdd:
		return core.OpAdd, nil
	case OprSub:
		return core.OpSub, nil
	case OprMul:
		return core.OpMul, nil
	case OprDiv:
		return core.OpDiv, nil
	case OprMod:
		return core.OpMod, nil
	case OprAnd:
		return core.OpAnd, nil
	case OprOr:
		return core.OpOr, nil
	case OprLtn:
		return core.OpLt, nil
	case OprLte:
		return core.OpLte, nil
	case OprGtn:
		return core.OpGt, nil
	case OprGte:
		return core.OpGte, nil
	case OprEql:
		return core.OpEq, nil
	case OprNeq:
		return core.OpNeq, nil
	case OprXor, OprShl, OprShr:
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedOp, op)
	default:
		return 0, fmt.Errorf("%w: unknown operator %d", ErrUnsupportedOp, uint8(op))
	}
}

// OprFromCore converts a runtime code back to the operator it encodes.
// Total over every code the runtime defines.
func OprFromCore(o core.Op) (Opr, error) {
	switch o {
	case core.OpAdd:
		return OprAdd, nil
	case core.OpSub:
		return OprSub, nil
	case core.OpMul:
		return OprMul, nil
	case core.OpDiv:
		return OprDiv, nil
	case core.OpMod:
		return OprMod, nil
	case core.OpEq:
		return OprEql, nil
	case core.OpNeq:
		return OprNeq, nil
	case core.OpLt:
		return OprLtn, nil
	case core.OpGt:
		return OprGtn, nil
	case core.OpLte:
		return OprLte, nil
	case core.OpGte:
		return OprGte, nil
	case core.OpAnd:
		return OprAnd, nil
	case core.OpOr:
		return OprOr, nil
	default:
		return 0, fmt.Errorf("unknown runtime operator code %d", uint8(o))
	}
}
