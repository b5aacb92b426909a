package mat3

import (
	"fmt"
	"strings"
)

// Dim is the fixed row and column count of Matrix3.
const Dim = 3

// Matrix3 is a 3×3 single-precision dense matrix.
// The 9 elements are stored column-major in a fixed buffer: element (i,j)
// sits at flat index i + 3*j. The zero value is the zero matrix.
type Matrix3 struct {
	elements [Dim * Dim]float32
}

// New returns a freshly allocated matrix initialized from the given flat
// column-major sequence. Up to 9 leading values are copied; a shorter
// sequence leaves the remaining slots zero and extra values are ignored.
// The sequence length is deliberately not validated.
// New() with no arguments yields the zero matrix.
func New(elements ...float32) *Matrix3 {
	m := &Matrix3{}
	copy(m.elements[:], elements)

	return m
}

// Zero resets all 9 elements to zero in place.
func (m *Matrix3) Zero() {
	m.elements = [Dim * Dim]float32{}
}

// Identity resets the matrix to the identity in place.
func (m *Matrix3) Identity() {
	m.elements = [Dim * Dim]float32{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// E returns the element at row i, column j via the flat index i + 3*j.
// Indices are unchecked: out-of-range i or j addresses a slot outside the
// logical 3×3 region (and panics once i+3*j leaves the 9-slot buffer).
// Complexity: O(1).
func (m *Matrix3) E(i, j int) float32 {
	return m.elements[i+Dim*j]
}

// SetE writes v at row i, column j via the flat index i + 3*j.
// Indices are unchecked, exactly as in E.
// Complexity: O(1).
func (m *Matrix3) SetE(i, j int, v float32) {
	m.elements[i+Dim*j] = v
}

// indexOf computes the column-major flat index for (i, j) or reports
// ErrIndexOutOfBounds. Shared by the checked accessors only.
func (m *Matrix3) indexOf(method string, i, j int) (int, error) {
	if i < 0 || i >= Dim || j < 0 || j >= Dim {
		return 0, fmt.Errorf("Matrix3.%s(%d,%d): %w", method, i, j, ErrIndexOutOfBounds)
	}

	return i + Dim*j, nil
}

// At is the checked counterpart of E: it returns the element at (i, j) or
// ErrIndexOutOfBounds. It complements the unchecked accessor, it does not
// replace it.
func (m *Matrix3) At(i, j int) (float32, error) {
	idx, err := m.indexOf("At", i, j)
	if err != nil {
		return 0, err
	}

	return m.elements[idx], nil
}

// Set is the checked counterpart of SetE: it writes v at (i, j) or returns
// ErrIndexOutOfBounds.
func (m *Matrix3) Set(i, j int, v float32) error {
	idx, err := m.indexOf("Set", i, j)
	if err != nil {
		return err
	}
	m.elements[idx] = v

	return nil
}

// Copy writes all 9 elements into target and returns target.
// A nil target allocates a fresh matrix owned by the caller. The result
// never shares storage with m.
func (m *Matrix3) Copy(target *Matrix3) *Matrix3 {
	if target == nil {
		target = &Matrix3{}
	}
	target.elements = m.elements // fixed array assignment is a full value copy

	return target
}

// SMult multiplies every element by s in place. Zero, NaN and Inf scalars
// propagate through ordinary IEEE-754 arithmetic.
func (m *Matrix3) SMult(s float32) {
	for i := range m.elements {
		m.elements[i] *= s
	}
}

// String implements fmt.Stringer, rendering the 9 elements in flat storage
// order, each followed by a comma and with no surrounding brackets.
// The identity matrix renders as "1,0,0,0,1,0,0,0,1,". Consumers parse this
// form, so the trailing comma is part of the contract.
func (m *Matrix3) String() string {
	var sb strings.Builder
	for _, e := range m.elements {
		fmt.Fprintf(&sb, "%g,", e)
	}

	return sb.String()
}
