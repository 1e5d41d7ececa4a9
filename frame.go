// frame.go — the context-tree node for xgx-exn core.
//
// A Frame is one node of a failure's context tree: a human-readable message
// plus a cause shape. The shape is a tagged three-way variant:
//   - leaf:  no cause (terminal)
//   - one:   exactly one nested cause (linear "why this happened")
//   - many:  a non-empty ordered sequence of parallel causes (aggregation)
//
// Keeping the shape as a variant (rather than a single []*Frame) makes
// Append's single→many promotion a local reassignment and keeps the common
// linear chain free of slice headers.
//
// Ownership:
//   - A Frame is exclusively owned by its parent Frame or by the Exn that
//     roots it; nothing is shared or referenced weakly, so traversal needs
//     no cycle guards.
//   - Frames are immutable after construction except for Append, which is
//     used by incremental aggregation on trees the caller exclusively owns.
//
// Interop:
//   - Frame implements error (message) and Unwrap() []error (child frames
//     plus the retained origin), so errors.Is/As traverse the whole tree,
//     including aggregated siblings.
//   - Leaf construction walks the source's own cause links EAGERLY into
//     owned frames: stdlib Unwrap() []error yields sibling children, stdlib
//     Unwrap() error or pkg/errors-style Cause() yields a single-child
//     chain. Rendering never re-walks caller-owned error data.
package xgxexn

// causeShape tags the three-way cause variant of a Frame.
type causeShape uint8

const (
	shapeLeaf causeShape = iota // terminal: no nested cause
	shapeOne                    // exactly one nested cause
	shapeMany                   // parallel causes, order preserved
)

// maxSourceDepth bounds eager source-chain materialization against
// pathological self-unwrapping errors.
const maxSourceDepth = 1 << 8

// Frame is one node of a failure's context tree: either a context annotation
// or a terminal-cause leaf.
type Frame struct {
	message  string
	shape    causeShape
	child    *Frame   // set iff shape == shapeOne
	children []*Frame // set iff shape == shapeMany; always len >= 2
	origin   error    // the caller error this frame was derived from, if any
	loc      Location // capture site
}

// Leaf creates a terminal-cause Frame. If source is non-nil, it becomes a
// nested single-child chain: one frame for the source itself, then one per
// link of the source's own cause chain, walked eagerly at construction time.
// The tree is fully materialized and never lazily re-walked during
// rendering. Empty messages are accepted as-is.
func Leaf(message string, source error) *Frame {
	f := &Frame{message: message, loc: callerLocation(1)}
	if source != nil {
		f.shape, f.child = shapeOne, materializeFrame(source, f.loc, 0)
	}
	return f
}

// Wrap creates a context annotation with exactly one child. A nil child
// yields a childless annotation (no validation imposed).
func Wrap(message string, child *Frame) *Frame {
	f := &Frame{message: message, loc: callerLocation(1)}
	if child != nil {
		f.shape, f.child = shapeOne, child
	}
	return f
}

// WrapAll creates a context annotation over a non-empty ordered sequence of
// children, order preserved exactly as supplied. This is the only
// aggregation point.
//
// Zero children is a contract violation and panics: an empty aggregate would
// silently produce a misleading tree.
func WrapAll(message string, children ...*Frame) *Frame {
	if len(children) == 0 {
		panic("xgxexn: WrapAll requires at least one child frame")
	}
	kids := make([]*Frame, len(children))
	copy(kids, children)
	f := &Frame{message: message, loc: callerLocation(1)}
	f.setChildren(kids)
	return f
}

// Append grows the frame in place by one more sibling cause:
//   - many-shaped frames gain one child at the end;
//   - one-child frames are promoted to a two-child many shape with the
//     existing child kept at index 0;
//   - leaves become one-child frames.
//
// Append is the in-place mechanism behind incremental aggregation; the
// receiver must be exclusively owned by the caller. Nil children are ignored.
func (f *Frame) Append(child *Frame) {
	if child == nil {
		return
	}
	switch f.shape {
	case shapeLeaf:
		f.shape, f.child = shapeOne, child
	case shapeOne:
		f.shape = shapeMany
		f.children = []*Frame{f.child, child}
		f.child = nil
	case shapeMany:
		f.children = append(f.children, child)
	}
}

// Message returns the frame's human-readable message.
func (f *Frame) Message() string { return f.message }

// Location returns the callsite captured when the frame was created.
func (f *Frame) Location() Location { return f.loc }

// Origin returns the caller error this frame was derived from, or nil for
// pure annotations.
func (f *Frame) Origin() error { return f.origin }

// Children returns a copy of the frame's nested causes in order, or nil for
// a leaf. The copy keeps the tree immutable for external callers.
func (f *Frame) Children() []*Frame {
	kids := f.kids()
	if len(kids) == 0 {
		return nil
	}
	out := make([]*Frame, len(kids))
	copy(out, kids)
	return out
}

// kids returns the child list without copying. Package-internal: callers
// must not modify the result.
func (f *Frame) kids() []*Frame {
	switch f.shape {
	case shapeOne:
		return []*Frame{f.child}
	case shapeMany:
		return f.children
	default:
		return nil
	}
}

// firstChild returns the first nested cause, or nil for a leaf. The Anyhow
// strategy's linear view follows exactly this edge.
func (f *Frame) firstChild() *Frame {
	switch f.shape {
	case shapeOne:
		return f.child
	case shapeMany:
		return f.children[0]
	default:
		return nil
	}
}

// setChildren assigns the cause shape from a prepared child list.
func (f *Frame) setChildren(kids []*Frame) {
	switch len(kids) {
	case 0:
		f.shape, f.child, f.children = shapeLeaf, nil, nil
	case 1:
		f.shape, f.child, f.children = shapeOne, kids[0], nil
	default:
		f.shape, f.child, f.children = shapeMany, nil, kids
	}
}

// Error implements the error interface: a frame reads as its message.
func (f *Frame) Error() string { return f.message }

// Unwrap exposes child frames plus the retained origin to stdlib traversal,
// so errors.Is/As observe full causal trees (Go 1.20+ walks Unwrap() []error
// as a set).
func (f *Frame) Unwrap() []error {
	kids := f.kids()
	if len(kids) == 0 && f.origin == nil {
		return nil
	}
	out := make([]error, 0, len(kids)+1)
	for _, k := range kids {
		out = append(out, k)
	}
	if f.origin != nil {
		out = append(out, f.origin)
	}
	return out
}

// -----------------------------------------------------------------------------
// Eager source materialization
// -----------------------------------------------------------------------------

// newLeafFrame wraps a caller error as a leaf: message from err.Error(), the
// error itself retained as origin, and its cause chain materialized eagerly.
func newLeafFrame(err error, loc Location) *Frame {
	f := &Frame{message: err.Error(), origin: err, loc: loc}
	f.setChildren(materializeSources(err, loc, 0))
	return f
}

// materializeSources walks err's own cause links once, at wrap time, into
// owned frames. Multi-unwrap sources (errors.Join, multi-%w) become sibling
// children; single-link sources become a one-child chain.
func materializeSources(err error, loc Location, depth int) []*Frame {
	if err == nil || depth >= maxSourceDepth {
		return nil
	}
	if m, ok := err.(interface{ Unwrap() []error }); ok {
		srcs := m.Unwrap()
		out := make([]*Frame, 0, len(srcs))
		for _, s := range srcs {
			if s == nil {
				continue
			}
			out = append(out, materializeFrame(s, loc, depth+1))
		}
		return out
	}
	if next := unwrapOnce(err); next != nil {
		return []*Frame{materializeFrame(next, loc, depth+1)}
	}
	return nil
}

// materializeFrame converts one link of an external cause chain into an
// owned frame, recursing into its own sources.
func materializeFrame(err error, loc Location, depth int) *Frame {
	f := &Frame{message: err.Error(), origin: err, loc: loc}
	f.setChildren(materializeSources(err, loc, depth))
	return f
}

// unwrapOnce follows a single cause link, honoring both the stdlib
// Unwrap() error form and the pkg/errors Cause() form.
func unwrapOnce(err error) error {
	if u, ok := err.(interface{ Unwrap() error }); ok {
		return u.Unwrap()
	}
	if c, ok := err.(interface{ Cause() error }); ok {
		return c.Cause()
	}
	return nil
}

// -----------------------------------------------------------------------------
// Interface conformance guards
// -----------------------------------------------------------------------------
var (
	_ error                         = (*Frame)(nil)
	_ interface{ Unwrap() []error } = (*Frame)(nil)
)
