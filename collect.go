// collect.go — never-short-circuiting collection of fallible computations.
//
// Standard fail-fast collection stops at the first failure; for a batch of
// INDEPENDENT operations that wastes the diagnostics of every later one.
// CollectAll runs the entire input to completion and reports either all
// successes or one aggregate of all failures, so a single log line can show
// every broken element of the batch.
//
// The aggregate is built incrementally: the first failure roots a
// fixed-summary frame, each later failure's tree is appended as one more
// sibling (Frame.Append handles the single→many promotion).
package xgxexn

import "iter"

// CollectAll runs every computation in fns to completion, never
// short-circuiting. With zero failures it returns the successes in input
// order. Otherwise the successes are discarded and all failures are returned
// as one aggregated Exn, children in input order.
func CollectAll[T any, E error](fns []func() (T, *Exn[E])) ([]T, *Exn[E]) {
	loc := callerLocation(1)
	vals := make([]T, 0, len(fns))
	var agg *Exn[E]
	for _, fn := range fns {
		v, exn := fn()
		if exn != nil {
			agg = appendFailure(agg, exn, loc)
			continue
		}
		vals = append(vals, v)
	}
	if agg != nil {
		return nil, agg
	}
	return vals, nil
}

// CollectSeq is CollectAll over an iter.Seq2 of already-evaluated results.
// The sequence is always consumed in full.
func CollectSeq[T any, E error](seq iter.Seq2[T, *Exn[E]]) ([]T, *Exn[E]) {
	loc := callerLocation(1)
	var vals []T
	var agg *Exn[E]
	for v, exn := range seq {
		if exn != nil {
			agg = appendFailure(agg, exn, loc)
			continue
		}
		vals = append(vals, v)
	}
	if agg != nil {
		return nil, agg
	}
	return vals, nil
}

// appendFailure grows the running aggregate by one failure, creating the
// fixed-summary root on first use.
func appendFailure[E error](agg, exn *Exn[E], loc Location) *Exn[E] {
	if agg == nil {
		root := &Frame{message: AggregateMessage, loc: loc}
		root.setChildren([]*Frame{exn.root})
		errs := make([]E, len(exn.errs))
		copy(errs, exn.errs)
		return &Exn[E]{root: root, errs: errs, aggregated: true}
	}
	agg.root.Append(exn.root)
	agg.errs = append(agg.errs, exn.errs...)
	return agg
}
