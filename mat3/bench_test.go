// Package mat3_test provides benchmarks for the hot-path operations the
// mechanics loop calls per step: copy, products and the direct solver.
package mat3_test

import (
	"testing"

	"github.com/katalvlaran/mech3/mat3"
	"github.com/katalvlaran/mech3/vec3"
)

// sinks to defeat dead-code elimination
var (
	sinkM *mat3.Matrix3
	sinkV *vec3.Vector3
)

func BenchmarkCopy(b *testing.B) {
	b.ReportAllocs()
	src := mat3.New(1, 2, 3, 4, 5, 6, 7, 8, 9)
	dst := mat3.New()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkM = src.Copy(dst) // reused target: zero allocations expected
	}
}

func BenchmarkVMult(b *testing.B) {
	b.ReportAllocs()
	m := mat3.New(1, 2, 3, 4, 5, 6, 7, 8, 9)
	v := vec3.New(1, 2, 3)
	out := &vec3.Vector3{}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkV = m.VMult(v, out)
	}
}

func BenchmarkMMult(b *testing.B) {
	b.ReportAllocs()
	m := mat3.New(1, 2, 3, 4, 5, 6, 7, 8, 9)
	n := mat3.New(9, 8, 7, 6, 5, 4, 3, 2, 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkM = m.MMult(n) // MMult always allocates its result
	}
}

func BenchmarkSolve(b *testing.B) {
	b.ReportAllocs()
	a := mat3.New(2, 1, 0, 1, 3, 1, 0, 1, 4)
	rhs := vec3.New(1, 2, 3)
	out := &vec3.Vector3{}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x, err := a.Solve(rhs, out)
		if err != nil {
			b.Fatal(err)
		}
		sinkV = x
	}
}
