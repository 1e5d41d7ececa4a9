// walk.go — Frame-tree traversal helpers for xgx-exn core.
//
// Traversal semantics:
//   - Walk:   iterative pre-order (visit, then expand children), children
//     left-to-right. Stops early if visit returns false.
//   - Leaves: terminal frames (no children) in visitation order.
//
// Frames are exclusively owned by their parents, so unlike traversal over
// arbitrary error graphs there are no cycles to guard against and no seen
// set to maintain.
package xgxexn

// Walk visits every frame of the tree rooted at f in pre-order, passing its
// depth (root = 0). If visit returns false, traversal stops. Nil f or visit
// is a no-op.
func Walk(f *Frame, visit func(depth int, f *Frame) bool) {
	if f == nil || visit == nil {
		return
	}

	type item struct {
		f     *Frame
		depth int
	}

	stack := make([]item, 0, 8)
	stack = append(stack, item{f, 0})

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !visit(cur.depth, cur.f) {
			return
		}

		// Push children in reverse for left-to-right visitation.
		kids := cur.f.kids()
		for i := len(kids) - 1; i >= 0; i-- {
			stack = append(stack, item{kids[i], cur.depth + 1})
		}
	}
}

// Leaves returns the terminal frames of the tree rooted at f in pre-order,
// left-to-right visitation order. Nil f yields nil.
func Leaves(f *Frame) []*Frame {
	var out []*Frame
	Walk(f, func(_ int, fr *Frame) bool {
		if fr.shape == shapeLeaf {
			out = append(out, fr)
		}
		return true
	})
	return out
}
