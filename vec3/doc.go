// Package vec3 provides a single-precision 3-component vector and the
// elementary arithmetic a mechanics engine performs on it: addition,
// subtraction, negation, scalar multiplication, dot and cross products,
// norms and normalization.
//
// All operations are O(1), allocation-free when the caller supplies an
// output target, and perform no input validation: NaN and ±Inf propagate
// through ordinary IEEE-754 arithmetic.
package vec3
