// repr.go — pluggable rendering strategies for xgx-exn core.
//
// A Repr is a stateless policy that turns a Frame tree into text. Strategies
// are selected per rendering call, not per value: the same Exn can be
// rendered under any strategy. Both forms are pure functions of the tree —
// deterministic, side-effect free, byte-identical across calls.
//
// Built-ins (see anyhow.go, list.go, tree.go):
//   - Anyhow: linear chain view, first child only at each level.
//   - List:   pre-order flattening into (depth, message) lines.
//   - Tree:   full structural view with box-drawing connectors.
package xgxexn

// Repr renders a context tree into the two standard textual forms.
type Repr interface {
	// Render produces the structural, multi-line form.
	Render(f *Frame) string

	// Summary produces the one-line form.
	Summary(f *Frame) string
}

// Ready-to-use strategy values. Tree carries optional knobs (see tree.go);
// ReprTree is its default configuration.
var (
	ReprAnyhow Repr = Anyhow{}
	ReprList   Repr = List{}
	ReprTree   Repr = Tree{}
)
