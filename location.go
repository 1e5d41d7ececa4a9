// location.go — single-frame callsite capture for xgx-exn core.
//
// Every public construction point records the file:line of its caller so a
// frame can report where it was created. This is deliberately one frame, not
// a full stack: frames already form a causal tree, so a per-frame callsite
// gives the same navigability a stack trace would, at a fraction of the cost.
//
// Notes:
//   - runtime.Caller is used directly; full CallersFrames resolution is not
//     needed for a single frame (no inline expansion concerns at depth 1).
//   - Locations render only when a strategy opts in (Tree{Locations: true});
//     the default textual forms carry messages only.
package xgxexn

import (
	"fmt"
	"runtime"
)

// Location is the file and line where a Frame was created.
type Location struct {
	File string // absolute file path (as provided by runtime)
	Line int
}

// IsZero reports whether the location was never captured.
func (l Location) IsZero() bool { return l.File == "" }

// String renders the location as "file.go:123". Zero locations render empty.
func (l Location) String() string {
	if l.IsZero() {
		return ""
	}
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// callerLocation captures the callsite 'skip' frames above the caller of
// callerLocation itself (skip=1 from inside a public constructor points at
// the constructor's caller).
func callerLocation(skip int) Location {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Location{}
	}
	return Location{File: file, Line: line}
}
