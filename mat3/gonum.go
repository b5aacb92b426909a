package mat3

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ToDense widens the matrix into a 3×3 float64 gonum dense matrix.
// General decompositions (LU, QR, inversion) are out of scope for this
// package; the bridge hands callers to gonum for those. The float32 to
// float64 widening is exact.
func (m *Matrix3) ToDense() *mat.Dense {
	d := mat.NewDense(Dim, Dim, nil)
	var i, j int
	for i = 0; i < Dim; i++ {
		for j = 0; j < Dim; j++ {
			d.Set(i, j, float64(m.elements[i+Dim*j]))
		}
	}

	return d
}

// FromDense narrows a 3×3 gonum matrix into a freshly allocated Matrix3,
// rounding each element to single precision. Any other shape fails with
// ErrBadShape.
func FromDense(d mat.Matrix) (*Matrix3, error) {
	r, c := d.Dims()
	if r != Dim || c != Dim {
		return nil, fmt.Errorf("FromDense(%dx%d): %w", r, c, ErrBadShape)
	}

	m := &Matrix3{}
	var i, j int
	for i = 0; i < Dim; i++ {
		for j = 0; j < Dim; j++ {
			m.elements[i+Dim*j] = float32(d.At(i, j))
		}
	}

	return m, nil
}
