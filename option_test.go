package xgxexn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOkOrRaise_PresentPassesThrough(t *testing.T) {
	calls := 0
	v, exn := OkOrRaise(42, true, func() testErr {
		calls++
		return testErr{"missing"}
	})

	assert.Nil(t, exn)
	assert.Equal(t, 42, v)
	// The deferred producer must never run on the success path.
	assert.Equal(t, 0, calls)
}

func TestOkOrRaise_AbsentRaisesLeafOnly(t *testing.T) {
	calls := 0
	_, exn := OkOrRaise(0, false, func() testErr {
		calls++
		return testErr{"user not found"}
	})

	require.NotNil(t, exn)
	assert.Equal(t, 1, calls)

	// Leaf-only: the root is the terminal cause, no annotation frame.
	assert.Equal(t, "user not found", exn.Frame().Message())
	assert.Nil(t, exn.Frame().Children())

	cause, sole := exn.Cause()
	assert.True(t, sole)
	assert.Equal(t, testErr{"user not found"}, cause)
}

func TestOkOrRaise_MapLookupIdiom(t *testing.T) {
	cache := map[string]int{"a": 1}

	hit, found := cache["a"]
	v, exn := OkOrRaise(hit, found, func() testErr { return testErr{"miss"} })
	assert.Nil(t, exn)
	assert.Equal(t, 1, v)

	miss, found := cache["b"]
	_, exn = OkOrRaise(miss, found, func() testErr { return testErr{"miss"} })
	require.NotNil(t, exn)
	assert.Equal(t, "miss", exn.Error())
}
