// Package mat3_test: tests for the gonum bridge.
package mat3_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/mech3/mat3"
	"github.com/katalvlaran/mech3/vec3"
)

// TestToDense_Values checks the element mapping and the float64 widening.
func TestToDense_Values(t *testing.T) {
	m := mat3.New(flat...)
	d := m.ToDense()

	r, c := d.Dims()
	require.Equal(t, mat3.Dim, r)
	require.Equal(t, mat3.Dim, c)

	var i, j int
	for i = 0; i < mat3.Dim; i++ {
		for j = 0; j < mat3.Dim; j++ {
			require.Equal(t, float64(m.E(i, j)), d.At(i, j), "widened (%d,%d)", i, j)
		}
	}
}

// TestFromDense_RoundTrip: ToDense then FromDense restores the matrix
// exactly (float32 -> float64 -> float32 is lossless).
func TestFromDense_RoundTrip(t *testing.T) {
	m := mat3.New(flat...)

	back, err := mat3.FromDense(m.ToDense())
	require.NoError(t, err)
	require.Equal(t, m.String(), back.String())
	require.NotSame(t, m, back)
}

// TestFromDense_BadShape rejects anything that is not 3x3.
func TestFromDense_BadShape(t *testing.T) {
	_, err := mat3.FromDense(mat.NewDense(2, 2, []float64{1, 2, 3, 4}))
	require.ErrorIs(t, err, mat3.ErrBadShape)

	_, err = mat3.FromDense(mat.NewDense(3, 4, make([]float64, 12)))
	require.ErrorIs(t, err, mat3.ErrBadShape)
}

// TestSolve_MatchesGonum cross-checks Solve against gonum's general dense
// solver on a well-conditioned system with an exactly representable
// solution.
func TestSolve_MatchesGonum(t *testing.T) {
	// Rows of A: (1,0,0), (2,1,0), (0,0,1); b = (1,4,5).
	a := mat3.New(1, 2, 0, 0, 1, 0, 0, 0, 1)
	b := vec3.New(1, 4, 5)

	var ref mat.VecDense
	require.NoError(t, ref.SolveVec(a.ToDense(), mat.NewVecDense(3, []float64{1, 4, 5})))

	x, err := a.Solve(b, nil)
	require.NoError(t, err)
	require.InDelta(t, ref.AtVec(0), float64(x.X), 1e-6)
	require.InDelta(t, ref.AtVec(1), float64(x.Y), 1e-6)
	require.InDelta(t, ref.AtVec(2), float64(x.Z), 1e-6)
}
