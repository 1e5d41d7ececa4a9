package xgxexn

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocation_CapturedAtCallsite(t *testing.T) {
	f := Leaf("here", nil)

	loc := f.Location()
	require.False(t, loc.IsZero())
	assert.True(t, strings.HasSuffix(loc.File, "location_test.go"),
		"want this file, got %s", loc.File)
	assert.Positive(t, loc.Line)
}

func TestLocation_ExnConstructorsCapture(t *testing.T) {
	exn := New(testErr{"cause"}).Context("annotated")

	assert.True(t, strings.HasSuffix(exn.Frame().Location().File, "location_test.go"))
	assert.True(t, strings.HasSuffix(exn.Frame().Children()[0].Location().File, "location_test.go"))
}

func TestLocation_String(t *testing.T) {
	assert.Equal(t, "", Location{}.String())
	assert.Equal(t, "a/b.go:12", Location{File: "a/b.go", Line: 12}.String())
}

func TestLocation_SourceFramesInheritWrapSite(t *testing.T) {
	// Materialized source frames carry the wrap callsite, not a callsite
	// inside the library.
	inner := testErr{"inner"}
	f := Leaf("outer", chainErr{msg: "mid", cause: inner})

	Walk(f, func(_ int, fr *Frame) bool {
		assert.True(t, strings.HasSuffix(fr.Location().File, "location_test.go"))
		return true
	})
}
