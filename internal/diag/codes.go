package diag

import (
	"fmt"
)

type Code uint16

const (
	// UnknownCode is the fallback for unclassified findings.
	UnknownCode Code = 0

	// Referential integrity of the term representation.
	IRInfo             Code = 1000
	IRDanglingRef      Code = 1001
	IRUnboundLink      Code = 1002
	IRDuplicateChannel Code = 1003
	IRArityMismatch    Code = 1004

	// Snapshot and manifest I/O.
	IOInfo             Code = 4000
	IOLoadError        Code = 4001
	IOSchemaMismatch   Code = 4002
	IODuplicateCtr     Code = 4003
	IOMalformedPayload Code = 4004
)

var codeDescription = map[Code]string{
	UnknownCode: "unknown",

	IRInfo:             "term representation info",
	IRDanglingRef:      "reference to an unregistered definition",
	IRUnboundLink:      "channel use without a binder",
	IRDuplicateChannel: "channel binder shadows another in the same definition",
	IRArityMismatch:    "rules of one definition disagree on arity",

	IOInfo:             "input/output info",
	IOLoadError:        "failed to load file",
	IOSchemaMismatch:   "snapshot schema version mismatch",
	IODuplicateCtr:     "constructor declared more than once",
	IOMalformedPayload: "malformed snapshot payload",
}

// ID renders the stable short identifier, e.g. "IR1001".
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("IR%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	default:
		return fmt.Sprintf("UNK%04d", ic)
	}
}

// Title returns the human description for the code.
func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
