// list.go — flat list rendering strategy for xgx-exn core.
//
// List flattens the entire tree by pre-order traversal into (depth, message)
// pairs and ignores nesting shape beyond the depth number. Unlike Anyhow it
// loses no frame; unlike Tree it draws no structure.
package xgxexn

import (
	"fmt"
	"strings"
)

// List is the pre-order flattening strategy.
type List struct{}

// Render emits one "<depth>: <message>" line per frame in pre-order,
// left-to-right:
//
//	0: multiple errors occurred
//	1: inner cause A
//	1: inner cause B
//	2: root error
func (List) Render(f *Frame) string {
	var sb strings.Builder
	first := true
	Walk(f, func(depth int, fr *Frame) bool {
		if !first {
			sb.WriteByte('\n')
		}
		first = false
		fmt.Fprintf(&sb, "%d: %s", depth, fr.message)
		return true
	})
	return sb.String()
}

// Summary joins every message in pre-order with "; ".
func (List) Summary(f *Frame) string {
	var sb strings.Builder
	first := true
	Walk(f, func(_ int, fr *Frame) bool {
		if !first {
			sb.WriteString("; ")
		}
		first = false
		sb.WriteString(fr.message)
		return true
	})
	return sb.String()
}

var _ Repr = List{}
