package mat3

import (
	"fmt"
	"math"

	"github.com/katalvlaran/mech3/vec3"
)

// augCols is the column count of the augmented elimination buffer:
// three coefficient columns plus the right-hand side.
const augCols = Dim + 1

// SingularError reports that Solve could not produce a finite solution.
// It snapshots the whole system at failure time: the source matrix, the
// right-hand side, and the attempted (non-finite) solution, so the caller
// can log exactly what was asked of the solver. It wraps ErrSingular, so
// errors.Is(err, ErrSingular) matches.
type SingularError struct {
	A *Matrix3      // coefficient matrix at call time
	B *vec3.Vector3 // right-hand side at call time
	X *vec3.Vector3 // attempted solution (contains NaN or ±Inf)
}

// Error renders the attempted solution, the right-hand side and the source
// matrix via their string forms.
func (e *SingularError) Error() string {
	return fmt.Sprintf("mat3: could not solve linear system: got x=[%s], b=[%s], A=[%s]", e.X, e.B, e.A)
}

// Unwrap exposes the ErrSingular sentinel for errors.Is.
func (e *SingularError) Unwrap() error {
	return ErrSingular
}

// Solve solves A·x = b for the current matrix A = m, writing the solution
// into target (allocated when nil) and returning it.
//
// Algorithm outline:
//  1. Build an augmented 3-row, 4-column system: columns 0..2 from the
//     matrix via the column-major convention, column 3 from b (x, y, z in
//     rows 0, 1, 2).
//  2. Eliminate downward, pivot row i = 0..2. A zero pivot is repaired
//     additively: the first later row with a nonzero entry in column i has
//     its three coefficient columns ADDED into row i. The augmented column
//     is deliberately left alone; this is not a row swap. The repair can
//     therefore desynchronize the right-hand side for some repairable
//     systems, a long-standing behavior that consumers depend on and that
//     the tests pin.
//  3. With a nonzero pivot, each row j below is reduced by
//     mult = aug[j][i]/aug[i][i]: entries at or before column i are forced
//     to exactly zero, the rest get aug[j][c] -= aug[i][c]*mult.
//  4. Back-substitute z, then y, then x by direct division. A pivot that
//     stayed zero surfaces here as a NaN or ±Inf component.
//  5. Any non-finite component fails the call with a *SingularError
//     (wrapping ErrSingular); target is NOT written on failure, the
//     attempted solution travels inside the error instead.
//
// Complexity: O(1) with the fixed 3×3 size; one allocation when target is
// nil, none otherwise on the success path.
func (m *Matrix3) Solve(b, target *vec3.Vector3) (*vec3.Vector3, error) {
	// 1. Augmented system, row-major scratch buffer: entry (r,c) at r*4+c.
	var aug [Dim * augCols]float32
	var i, j, c int
	for i = 0; i < Dim; i++ {
		for j = 0; j < Dim; j++ {
			aug[i*augCols+j] = m.elements[i+Dim*j]
		}
	}
	aug[0*augCols+Dim] = b.X
	aug[1*augCols+Dim] = b.Y
	aug[2*augCols+Dim] = b.Z

	var mult float32
	for i = 0; i < Dim; i++ {
		// 2. Additive zero-pivot repair from the first usable later row.
		if aug[i*augCols+i] == 0 {
			for j = i + 1; j < Dim; j++ {
				if aug[j*augCols+i] != 0 {
					for c = 0; c < Dim; c++ { // coefficient columns only
						aug[i*augCols+c] += aug[j*augCols+c]
					}
					break
				}
			}
		}
		if aug[i*augCols+i] == 0 {
			continue // unrepairable pivot; back-substitution reports it
		}
		// 3. Eliminate column i from every row below.
		for j = i + 1; j < Dim; j++ {
			mult = aug[j*augCols+i] / aug[i*augCols+i]
			for c = 0; c < augCols; c++ {
				if c <= i {
					aug[j*augCols+c] = 0 // forced exact zero, not computed
				} else {
					aug[j*augCols+c] -= aug[i*augCols+c] * mult
				}
			}
		}
	}

	// 4. Back-substitution on the upper-triangular system.
	z := aug[2*augCols+3] / aug[2*augCols+2]
	y := (aug[1*augCols+3] - aug[1*augCols+2]*z) / aug[1*augCols+1]
	x := (aug[0*augCols+3] - aug[0*augCols+2]*z - aug[0*augCols+1]*y) / aug[0*augCols+0]

	// 5. Validate the result; only Solve guards its output.
	if !finite(x) || !finite(y) || !finite(z) {
		return nil, &SingularError{
			A: m.Copy(nil),
			B: b.Copy(nil),
			X: vec3.New(x, y, z),
		}
	}

	if target == nil {
		target = &vec3.Vector3{}
	}
	target.X, target.Y, target.Z = x, y, z

	return target, nil
}

// finite reports whether v is neither NaN nor ±Inf. The float64 widening is
// exact for every float32 value.
func finite(v float32) bool {
	f := float64(v)

	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
