// Package mech3 bundles the small fixed-size linear-algebra primitives a
// rigid-body mechanics engine leans on for coordinate transforms and
// 3-unknown constraint systems.
//
// Everything is organized under two subpackages:
//
//	vec3/ — a single-precision 3-component vector with elementary arithmetic
//	mat3/ — a single-precision 3×3 column-major matrix with scalar, vector
//	        and matrix products, and a direct Gaussian-elimination solver
//
// Design points shared by both packages:
//
//   - Single precision throughout: the types exist to feed a physics loop,
//     not a numerics workbench. Callers needing float64 or general
//     decompositions can bridge to gonum via mat3.ToDense / mat3.FromDense.
//   - Explicit output buffers: every operation that produces a vector or
//     matrix accepts an optional target pointer. Pass a buffer to avoid
//     allocation in hot paths; pass nil to receive a freshly allocated,
//     caller-owned result.
//   - No validation outside the solver: malformed indices and degenerate
//     operands produce whatever IEEE-754 arithmetic yields. Only
//     Matrix3.Solve inspects its result and reports failure, via a typed
//     error that carries the full system for diagnostics.
package mech3
