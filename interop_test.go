package xgxexn

import (
	stderrors "errors"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The conversion boundary accepts any external error exposing a message and,
// optionally, a chained source. These tests pin the behavior for the cause
// chains found in the wild: pkg/errors wrapping, hashicorp/go-multierror
// accumulations, and stdlib errors.Join sets.

func TestInterop_PkgErrorsChain(t *testing.T) {
	base := stderrors.New("base")
	wrapped := errors.Wrap(base, "mid")

	f := Leaf("op failed", wrapped)

	// The full chain is materialized: the wrapper's text and the base both
	// appear as owned frames.
	var msgs []string
	Walk(f, func(_ int, fr *Frame) bool {
		msgs = append(msgs, fr.Message())
		return true
	})
	assert.Contains(t, msgs, "mid: base")
	assert.Contains(t, msgs, "base")

	// And the original values stay reachable structurally.
	assert.True(t, stderrors.Is(f, base))
	assert.True(t, stderrors.Is(f, wrapped))
}

func TestInterop_PkgErrorsThroughOrRaise(t *testing.T) {
	base := stderrors.New("permission denied")
	wrapped := errors.Wrap(base, "open /etc/shadow")

	_, exn := OrRaise(0, wrapped, func(error) testErr {
		return testErr{"load credentials"}
	})
	require.NotNil(t, exn)

	assert.True(t, stderrors.Is(exn, base))
	assert.Contains(t, exn.Render(ReprList), "permission denied")
}

func TestInterop_MultierrorSource(t *testing.T) {
	e1 := stderrors.New("boom-1")
	e2 := stderrors.New("boom-2")
	merr := multierror.Append(nil, e1, e2)

	f := Leaf("batch failed", merr)

	// go-multierror exposes its children as a sequential unwrap chain; both
	// messages must survive materialization.
	out := ReprList.Render(f)
	assert.Contains(t, out, "boom-1")
	assert.Contains(t, out, "boom-2")

	assert.True(t, stderrors.Is(f, e1))
	assert.True(t, stderrors.Is(f, e2))
}

func TestInterop_StdErrorsJoinBecomesSiblings(t *testing.T) {
	e1 := stderrors.New("first")
	e2 := stderrors.New("second")

	f := Leaf("batch failed", stderrors.Join(e1, e2))

	kids := f.Children()
	require.Len(t, kids, 1)
	siblings := kids[0].Children()
	require.Len(t, siblings, 2)
	assert.Equal(t, "first", siblings[0].Message())
	assert.Equal(t, "second", siblings[1].Message())
}

func TestInterop_ExnAsStdError(t *testing.T) {
	// An Exn passes through APIs that traffic in plain errors.
	var err error = New(testErr{"cause"}).Context("op failed")

	assert.Equal(t, "op failed: cause", err.Error())
	assert.True(t, stderrors.Is(err, testErr{"cause"}))

	var te testErr
	require.True(t, stderrors.As(err, &te))
	assert.Equal(t, "cause", te.msg)
}

func TestInterop_ErasedExnAsStdError(t *testing.T) {
	var err error = New(testErr{"cause"}).Context("op failed").Erase()

	assert.True(t, stderrors.Is(err, testErr{"cause"}))
	assert.Equal(t, "op failed", err.Error())
}
