// anyhow.go — linear chain rendering strategy for xgx-exn core.
//
// Anyhow models purely-linear causality: it follows only the FIRST child at
// each level and omits non-first siblings by design. On unbranched trees it
// reads like the familiar fmt.Errorf("%s: %w") chain; on aggregated trees it
// shows the primary path only (use Tree or List for the full picture).
package xgxexn

import (
	"fmt"
	"strings"
)

// Anyhow is the linear chain strategy.
type Anyhow struct{}

// Summary joins the first-child chain's messages with ": ":
// "outer context: inner: root error".
func (Anyhow) Summary(f *Frame) string {
	var sb strings.Builder
	for first := true; f != nil; f = f.firstChild() {
		if !first {
			sb.WriteString(": ")
		}
		first = false
		sb.WriteString(f.message)
	}
	return sb.String()
}

// Render emits one message per line, prefixed by its increasing index along
// the first-child chain:
//
//	0: outer context
//	1: inner
//	2: root error
func (Anyhow) Render(f *Frame) string {
	var sb strings.Builder
	for i := 0; f != nil; i, f = i+1, f.firstChild() {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "%d: %s", i, f.message)
	}
	return sb.String()
}

var _ Repr = Anyhow{}
