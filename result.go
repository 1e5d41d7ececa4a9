// result.go — raising failures from failed computations.
//
// OrRaise layers failure-raising on top of the (value, error) pair every
// fallible Go call already returns. No information is dropped: the original
// low-level error stays reachable both textually (its chain is materialized
// beneath the new leaf) and structurally (errors.Is/As reach it through the
// retained origin).
package xgxexn

// OrRaise yields value unchanged when err is nil. Otherwise it evaluates
// wrap — invoked exactly once, only on the failure path, with the original
// failure as input — and raises its result as the new leaf, recording the
// original error as the leaf's eagerly materialized chained source.
//
//	f, err := os.Open(path)
//	file, exn := xgxexn.OrRaise(f, err, func(cause error) ConfigError {
//	        return ConfigError{Path: path}
//	})
func OrRaise[T any, E error](value T, err error, wrap func(error) E) (T, *Exn[E]) {
	if err == nil {
		return value, nil
	}
	e := wrap(err)
	loc := callerLocation(1)
	f := &Frame{message: e.Error(), origin: e, loc: loc}
	f.setChildren([]*Frame{materializeFrame(err, loc, 0)})
	var zero T
	return zero, &Exn[E]{root: f, errs: []E{e}}
}
