package xgxexn

import "testing"

func BenchmarkNew(b *testing.B) {
	err := testErr{"cause"}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = New(err)
	}
}

func BenchmarkContext_ThreeLevels(b *testing.B) {
	err := testErr{"cause"}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = New(err).Context("inner").Context("middle").Context("outer")
	}
}

func BenchmarkOrRaise_SuccessPath(b *testing.B) {
	// The hot path must not pay for message construction.
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = OrRaise(i, nil, func(error) testErr { return testErr{"unused"} })
	}
}

func BenchmarkTreeRender(b *testing.B) {
	exn := Join(
		New(testErr{"a"}).Context("first"),
		New(testErr{"b"}).Context("second"),
		New(testErr{"c"}),
	).Context("batch failed")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = exn.Render(ReprTree)
	}
}

func BenchmarkCollectAll_AllSuccess(b *testing.B) {
	fns := make([]func() (int, *Exn[testErr]), 16)
	for i := range fns {
		fns[i] = func() (int, *Exn[testErr]) { return i, nil }
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = CollectAll(fns)
	}
}
