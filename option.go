// option.go — raising failures from absent optional values.
//
// The Go rendering of the optional-value idiom is the (value, ok) pair, as
// produced by map lookups, type assertions, and channel receives. OkOrRaise
// layers failure-raising on top of it without restructuring caller control
// flow.
package xgxexn

// OkOrRaise yields value unchanged when ok is true. When ok is false, it
// evaluates err — a zero-argument deferred producer, invoked exactly once
// and only on the absent path, so the success path never pays for message
// construction — and raises its result as a leaf-only Exn.
//
//	cached, found := cache[id]
//	user, exn := xgxexn.OkOrRaise(cached, found, func() LookupError {
//	        return LookupError{ID: id}
//	})
func OkOrRaise[T any, E error](value T, ok bool, err func() E) (T, *Exn[E]) {
	if ok {
		return value, nil
	}
	e := err()
	var zero T
	return zero, &Exn[E]{root: newLeafFrame(e, callerLocation(1)), errs: []E{e}}
}
