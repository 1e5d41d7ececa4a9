// any.go — the type-erased failure container for xgx-exn core.
//
// ExnAny is an Exn whose terminal-cause type has been erased to the minimal
// error capability {message, chained-source-or-absent}, so it can cross an
// API boundary that must not be generic over E. Conversion is one-way via
// Exn.Erase / Exn.EraseWith; there is no way back to the typed form.
//
// Unlike Exn, an ExnAny carries the strategy chosen at erasure time: a
// boundary that erases the type also fixes how the failure reads on the
// other side.
package xgxexn

// ExnAny is a type-erased Exn exposing only the minimal error capability.
type ExnAny struct {
	frame *Frame
	repr  Repr
}

// Error returns the one-line form under the carried strategy.
func (a *ExnAny) Error() string { return a.repr.Summary(a.frame) }

// Unwrap exposes the root's child frames plus its retained origin to stdlib
// traversal, so errors.Is/As reach every frame beneath an erased tree,
// aggregated siblings included.
func (a *ExnAny) Unwrap() []error { return a.frame.Unwrap() }

// Frame returns the root of the underlying context tree.
func (a *ExnAny) Frame() *Frame { return a.frame }

// Render produces the structural form under the carried strategy.
func (a *ExnAny) Render() string { return a.repr.Render(a.frame) }

var (
	_ error                         = (*ExnAny)(nil)
	_ interface{ Unwrap() []error } = (*ExnAny)(nil)
)
