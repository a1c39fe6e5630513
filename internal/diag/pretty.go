package diag

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// PrettyOpts configures diagnostic rendering.
type PrettyOpts struct {
	Color bool
}

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan, color.Bold)
	noteColor    = color.New(color.Faint)
)

func severityPaint(s Severity) *color.Color {
	switch s {
	case SevError:
		return errorColor
	case SevWarning:
		return warningColor
	default:
		return infoColor
	}
}

func severityLabel(s Severity) string {
	switch s {
	case SevError:
		return "error"
	case SevWarning:
		return "warning"
	default:
		return "info"
	}
}

// Pretty renders the bag one finding per line:
//
//	error[IR1002] in Main: link $x has no channel binder
//
// Notes are indented under their diagnostic.
func Pretty(w io.Writer, bag *Bag, opts PrettyOpts) {
	for _, d := range bag.Items() {
		label := fmt.Sprintf("%s[%s]", severityLabel(d.Severity), d.Code.ID())
		if opts.Color {
			label = severityPaint(d.Severity).Sprint(label)
		}
		if d.Def != "" {
			fmt.Fprintf(w, "%s in %s: %s\n", label, d.Def, d.Message)
		} else {
			fmt.Fprintf(w, "%s: %s\n", label, d.Message)
		}
		for _, n := range d.Notes {
			note := "  note: " + n.Msg
			if opts.Color {
				note = noteColor.Sprint(note)
			}
			fmt.Fprintln(w, note)
		}
	}
}
