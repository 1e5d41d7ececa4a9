// doc.go — package documentation for xgx-exn
//
// Package xgxexn attaches structured, hierarchical context to failures. When
// an operation fails, the caller can inspect not just the terminal cause but
// the whole chain — and, for batched operations, the whole set — of
// contributing causes, each annotated with a human-readable message. It is
// designed to be:
//   - Ergonomic at call sites (wrap on the unwind path, no pre-declared types)
//   - Interoperable with the stdlib (errors.Is/As, Unwrap chains, fmt.Formatter)
//   - Policy-free (no logging/HTTP/retry rules in core)
//
// # Data Model
//
// A failure is a tree of Frames. Each Frame is either a context annotation
// (a message plus children) or a terminal-cause leaf wrapping a caller error.
// Exn[E] pairs such a tree with a statically typed view onto its terminal
// cause(s), so callers can branch on the original error type without
// re-parsing text:
//
//	exn := xgxexn.New(err).            // leaf — the root IS the leaf
//	        Context("flush failed").   // each layer adds one annotation
//	        Context("save failed")
//
// Fluent methods are non-mutating: every Context call returns a new value,
// so shared Exns are safe to render and extend concurrently.
//
// # Aggregation
//
// Batched operations report all of their failures as siblings instead of
// stopping at the first one:
//
//   - RaiseAll(causes...) builds one aggregate from error values.
//   - Join/Append combine already-raised Exns (Append grows an aggregate the
//     caller exclusively owns, in the go-multierror style).
//   - CollectAll runs every computation to completion, returning either all
//     successes or one aggregate of all failures, input order preserved.
//
// # Rendering
//
// Rendering is a pure function of the tree, selected per call:
//
//	+----------+----------------------------+--------------------------------+
//	| Strategy | Render (multi-line)        | Summary (one line)             |
//	+----------+----------------------------+--------------------------------+
//	| Anyhow   | indexed first-child chain  | "m1: m2: m3"                   |
//	| List     | "<depth>: <msg>" pre-order | messages joined by "; "        |
//	| Tree     | box-drawing connectors     | root message                   |
//	+----------+----------------------------+--------------------------------+
//
// The Tree strategy is the full structural view:
//
//	save failed
//	└─ flush failed
//	   └─ disk full
//
// # Interop
//
//   - Leaf construction eagerly materializes the source's own cause chain
//     (stdlib Unwrap() error and Unwrap() []error, pkg/errors Cause()) into
//     owned frames; rendering never re-walks caller-owned errors.
//   - Frames retain the error they wrap, so errors.Is/As traverse the whole
//     tree, aggregates included.
//   - ExnAny erases the terminal-cause type for API boundaries that must not
//     be generic over E. Erasure is one-way.
//
// # Contract Violations
//
// Construction cannot fail and inputs are not validated (empty messages are
// legal), with one exception: aggregating zero causes is a programmer error
// and panics. An empty aggregate would be a misleading tree, and Go cannot
// reject the call at compile time.
package xgxexn
