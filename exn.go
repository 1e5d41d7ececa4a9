// exn.go — the public failure container for xgx-exn core.
//
// Exn[E] pairs a Frame tree with a disjoint typed view onto its terminal
// cause(s), so callers can branch on the original error type without
// re-parsing rendered text. Invariant: the typed view lists the terminal
// causes in pre-order, left-to-right leaf-visitation order, and is never
// empty.
//
// Fluent methods are non-mutating (copy-on-write): Context returns a NEW
// Exn and never touches the receiver, which keeps shared values safe across
// goroutines without synchronization. The only in-place growth is Append,
// which — like multierror.Append — requires the head to be exclusively
// owned by the caller.
package xgxexn

// AggregateMessage is the fixed root message of every aggregated failure
// built by RaiseAll, Join, Append, and CollectAll.
const AggregateMessage = "multiple errors occurred"

// Exn is a failure container: a context tree whose leaves resolve to values
// of the terminal error type E.
//
// The zero value is not a valid Exn; values must come from New, RaiseAll,
// Join, or the extension operations. A zero value is inert: Cause reports no
// sole cause, Causes is empty, and Error reads as "".
type Exn[E error] struct {
	root *Frame
	errs []E // terminal causes, pre-order; len >= 1 by construction

	// aggregated marks trees rooted by the fixed-summary aggregation frame;
	// Append may grow only such trees in place.
	aggregated bool
}

// New wraps an error value as an Exn with a single leaf Frame and no
// annotation: the resulting tree's root IS the leaf. The source chain of err
// is materialized eagerly (see Leaf).
func New[E error](err E) *Exn[E] {
	return &Exn[E]{root: newLeafFrame(err, callerLocation(1)), errs: []E{err}}
}

// Context returns a new Exn whose tree wraps the receiver's tree under one
// more annotation frame. The typed view is unchanged: context attachment
// never touches the terminal cause type. Repeated attachment nests outward,
// most recent message outermost.
func (e *Exn[E]) Context(msg string) *Exn[E] {
	return &Exn[E]{
		root:       &Frame{message: msg, shape: shapeOne, child: e.root, loc: callerLocation(1)},
		errs:       e.errs,
		aggregated: false,
	}
}

// RaiseAll builds one aggregated Exn from a non-empty ordered sequence of
// causes. The root message is AggregateMessage and the children are the leaf
// Frames of the causes, in input order.
//
// Zero causes is a contract violation and panics; the design requires at
// least one cause and an empty aggregate would be a misleading tree.
func RaiseAll[E error](causes ...E) *Exn[E] {
	if len(causes) == 0 {
		panic("xgxexn: RaiseAll requires at least one cause")
	}
	loc := callerLocation(1)
	kids := make([]*Frame, len(causes))
	errs := make([]E, len(causes))
	for i, c := range causes {
		kids[i] = newLeafFrame(c, loc)
		errs[i] = c
	}
	root := &Frame{message: AggregateMessage, loc: loc}
	root.setChildren(kids)
	return &Exn[E]{root: root, errs: errs, aggregated: true}
}

// Join combines already-raised Exns, ignoring nils.
//   - All nil → nil.
//   - One non-nil → that Exn (identity preserved).
//   - 2+ non-nil → one aggregated Exn whose children are the inputs' trees,
//     in input order.
func Join[E error](exns ...*Exn[E]) *Exn[E] {
	nz := make([]*Exn[E], 0, len(exns))
	for _, x := range exns {
		if x != nil {
			nz = append(nz, x)
		}
	}
	switch len(nz) {
	case 0:
		return nil
	case 1:
		return nz[0]
	}
	loc := callerLocation(1)
	kids := make([]*Frame, len(nz))
	errs := make([]E, 0, len(nz))
	for i, x := range nz {
		kids[i] = x.root
		errs = append(errs, x.errs...)
	}
	root := &Frame{message: AggregateMessage, loc: loc}
	root.setChildren(kids)
	return &Exn[E]{root: root, errs: errs, aggregated: true}
}

// Append grows an existing aggregate by more failures, mirroring the
// multierror.Append idiom: when head is an aggregate the caller exclusively
// owns, its tree gains the new failures as siblings in place and head is
// returned. A nil or non-aggregate head falls back to Join semantics.
func Append[E error](head *Exn[E], more ...*Exn[E]) *Exn[E] {
	if head == nil || !head.aggregated {
		all := make([]*Exn[E], 0, 1+len(more))
		if head != nil {
			all = append(all, head)
		}
		all = append(all, more...)
		return Join(all...)
	}
	for _, x := range more {
		if x == nil {
			continue
		}
		head.root.Append(x.root)
		head.errs = append(head.errs, x.errs...)
	}
	return head
}

// Cause returns the typed terminal cause and true when the tree has exactly
// one. For aggregated Exns it returns the first terminal cause and false.
func (e *Exn[E]) Cause() (E, bool) {
	if len(e.errs) == 0 {
		var zero E
		return zero, false
	}
	return e.errs[0], len(e.errs) == 1
}

// Causes returns all typed terminal causes in pre-order, left-to-right
// leaf-visitation order. The slice is a copy.
func (e *Exn[E]) Causes() []E {
	out := make([]E, len(e.errs))
	copy(out, e.errs)
	return out
}

// Frame returns the root of the context tree.
func (e *Exn[E]) Frame() *Frame { return e.root }

// Render produces the structural (multi-line) textual form under the given
// strategy. Rendering is a pure function of the tree.
func (e *Exn[E]) Render(r Repr) string { return r.Render(e.root) }

// Summary produces the one-line textual form under the given strategy.
func (e *Exn[E]) Summary(r Repr) string { return r.Summary(e.root) }

// Error implements the error interface as the Anyhow summary chain
// ("outer: inner: root"), the shape Go callers expect from wrapped errors.
func (e *Exn[E]) Error() string {
	if e.root == nil {
		return ""
	}
	return ReprAnyhow.Summary(e.root)
}

// Unwrap exposes the context tree to stdlib traversal; errors.Is/As reach
// every frame and every retained origin beneath it.
func (e *Exn[E]) Unwrap() error { return e.root }

// Erase discards the static terminal-cause type in favor of the minimal
// message+source capability, rendering under the Tree strategy. Erasure is
// one-way; there is no conversion back.
func (e *Exn[E]) Erase() *ExnAny { return &ExnAny{frame: e.root, repr: ReprTree} }

// EraseWith is Erase with an explicit rendering strategy. A nil strategy
// falls back to Tree.
func (e *Exn[E]) EraseWith(r Repr) *ExnAny {
	if r == nil {
		r = ReprTree
	}
	return &ExnAny{frame: e.root, repr: r}
}

// Interface conformance guards (E instantiated with the error interface).
var (
	_ error                       = (*Exn[error])(nil)
	_ interface{ Unwrap() error } = (*Exn[error])(nil)
)
