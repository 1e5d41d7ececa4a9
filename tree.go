// tree.go — full structural rendering strategy for xgx-exn core.
//
// Tree reproduces the exact visual contract the golden-file tests pin down:
// non-last siblings get "├─ ", the last sibling gets "└─ ", and each level's
// indentation column reflects its ancestors' connector state ("│  " under an
// ancestor with further siblings, three blanks otherwise). Structure
// round-trips losslessly: message text, order, and arity are all visible.
package xgxexn

import "strings"

// Tree is the full structural strategy.
type Tree struct {
	// Locations appends ", at file.go:line" to every rendered frame. The
	// zero value renders messages only, which is the stable golden format.
	Locations bool
}

// Render draws the whole tree:
//
//	outer context
//	├─ inner cause A
//	└─ inner cause B
//	   └─ root error
func (t Tree) Render(f *Frame) string {
	if f == nil {
		return ""
	}
	var sb strings.Builder
	t.render(&sb, f, "")
	return sb.String()
}

// Summary is the root message alone; the structure is Render's job.
func (Tree) Summary(f *Frame) string {
	if f == nil {
		return ""
	}
	return f.message
}

func (t Tree) render(sb *strings.Builder, f *Frame, prefix string) {
	sb.WriteString(f.message)
	if t.Locations && !f.loc.IsZero() {
		sb.WriteString(", at ")
		sb.WriteString(f.loc.String())
	}
	kids := f.kids()
	for i, child := range kids {
		sb.WriteByte('\n')
		sb.WriteString(prefix)
		if i < len(kids)-1 {
			sb.WriteString("├─ ")
			t.render(sb, child, prefix+"│  ")
		} else {
			sb.WriteString("└─ ")
			t.render(sb, child, prefix+"   ")
		}
	}
}

var _ Repr = Tree{}
