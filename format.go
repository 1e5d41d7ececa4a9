// format.go — fmt.Formatter implementations for xgx-exn core.
//
// Behavior:
//
//	%s, %v   → concise one-line form (Error()).
//	%+v      → structural multi-line form (Tree for Exn and Frame; the
//	           carried strategy for ExnAny).
//	%q       → quoted Error().
//
// Rationale:
//   - Keep core free of logging policy; only fmt formatting.
//   - %+v is the diagnostic form log sinks reach for; it must show the whole
//     tree, aggregated siblings included.
package xgxexn

import (
	"fmt"
	"io"
)

// Format implements fmt.Formatter for Exn.
func (e *Exn[E]) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = io.WriteString(s, ReprTree.Render(e.root))
			return
		}
		_, _ = io.WriteString(s, e.Error())
	case 's':
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	default:
		_, _ = io.WriteString(s, e.Error())
	}
}

// Format implements fmt.Formatter for ExnAny using its carried strategy.
func (a *ExnAny) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = io.WriteString(s, a.Render())
			return
		}
		_, _ = io.WriteString(s, a.Error())
	case 's':
		_, _ = io.WriteString(s, a.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", a.Error())
	default:
		_, _ = io.WriteString(s, a.Error())
	}
}

// Format implements fmt.Formatter for Frame: %+v renders the subtree rooted
// here, everything else reads as the message.
func (f *Frame) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = io.WriteString(s, ReprTree.Render(f))
			return
		}
		_, _ = io.WriteString(s, f.message)
	case 's':
		_, _ = io.WriteString(s, f.message)
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", f.message)
	default:
		_, _ = io.WriteString(s, f.message)
	}
}

var (
	_ fmt.Formatter = (*Exn[error])(nil)
	_ fmt.Formatter = (*ExnAny)(nil)
	_ fmt.Formatter = (*Frame)(nil)
)
