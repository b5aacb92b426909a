package vec3

import (
	"fmt"
	"math"
)

// Vector3 is a 3-component single-precision vector.
// The zero value is the zero vector and is ready to use.
type Vector3 struct {
	X, Y, Z float32
}

// New returns a freshly allocated vector with the given components.
func New(x, y, z float32) *Vector3 {
	return &Vector3{X: x, Y: y, Z: z}
}

// Set assigns all three components in place.
func (v *Vector3) Set(x, y, z float32) {
	v.X, v.Y, v.Z = x, y, z
}

// Copy writes v's components into target and returns target.
// A nil target allocates a fresh vector owned by the caller.
// The result never shares storage with v.
func (v *Vector3) Copy(target *Vector3) *Vector3 {
	if target == nil {
		target = &Vector3{}
	}
	target.X, target.Y, target.Z = v.X, v.Y, v.Z

	return target
}

// Add writes v + w into target (allocated when nil) and returns target.
func (v *Vector3) Add(w, target *Vector3) *Vector3 {
	if target == nil {
		target = &Vector3{}
	}
	target.X, target.Y, target.Z = v.X+w.X, v.Y+w.Y, v.Z+w.Z

	return target
}

// Sub writes v - w into target (allocated when nil) and returns target.
func (v *Vector3) Sub(w, target *Vector3) *Vector3 {
	if target == nil {
		target = &Vector3{}
	}
	target.X, target.Y, target.Z = v.X-w.X, v.Y-w.Y, v.Z-w.Z

	return target
}

// Negate writes -v into target (allocated when nil) and returns target.
func (v *Vector3) Negate(target *Vector3) *Vector3 {
	if target == nil {
		target = &Vector3{}
	}
	target.X, target.Y, target.Z = -v.X, -v.Y, -v.Z

	return target
}

// Mult writes s*v into target (allocated when nil) and returns target.
func (v *Vector3) Mult(s float32, target *Vector3) *Vector3 {
	if target == nil {
		target = &Vector3{}
	}
	target.X, target.Y, target.Z = s*v.X, s*v.Y, s*v.Z

	return target
}

// Dot returns the scalar product v · w.
func (v *Vector3) Dot(w *Vector3) float32 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross writes v × w into target (allocated when nil) and returns target.
// The result is buffered, so target may alias v or w.
func (v *Vector3) Cross(w, target *Vector3) *Vector3 {
	if target == nil {
		target = &Vector3{}
	}
	// Buffer the components so aliased targets read consistent inputs.
	cx := v.Y*w.Z - v.Z*w.Y
	cy := v.Z*w.X - v.X*w.Z
	cz := v.X*w.Y - v.Y*w.X
	target.X, target.Y, target.Z = cx, cy, cz

	return target
}

// Norm2 returns the squared Euclidean length of v.
func (v *Vector3) Norm2() float32 {
	return v.Dot(v)
}

// Norm returns the Euclidean length of v.
func (v *Vector3) Norm() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y + v.Z*v.Z)))
}

// Normalize scales v in place to unit length and returns the previous norm.
// A zero vector stays zero and reports a zero norm.
func (v *Vector3) Normalize() float32 {
	n := v.Norm()
	if n > 0 {
		inv := 1 / n
		v.X *= inv
		v.Y *= inv
		v.Z *= inv
	} else {
		v.X, v.Y, v.Z = 0, 0, 0
	}

	return n
}

// IsZero reports whether all three components are exactly zero.
func (v *Vector3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// AlmostEquals reports whether v and w differ by at most eps per component.
func (v *Vector3) AlmostEquals(w *Vector3, eps float32) bool {
	return abs(v.X-w.X) <= eps && abs(v.Y-w.Y) <= eps && abs(v.Z-w.Z) <= eps
}

// String implements fmt.Stringer, rendering the components comma-separated
// with no surrounding brackets, e.g. "1,2.5,-3".
func (v *Vector3) String() string {
	return fmt.Sprintf("%g,%g,%g", v.X, v.Y, v.Z)
}

// abs is a float32 absolute value without a float64 round trip.
func abs(f float32) float32 {
	if f < 0 {
		return -f
	}

	return f
}
