// Package wide provides SIMD-friendly wide types for float32 plane arithmetic.
//
// The F32x8 type is a fixed-size array of 8 float32 lanes. Simple loops over
// fixed-size arrays let the Go compiler auto-vectorize on architectures with
// SSE, AVX or NEON without assembly or unsafe.
//
// # Kernels
//
// BlendRow computes dst = a*(1-t) + b*t over whole rows, 8 lanes at a time,
// with a scalar tail. ClampRow clamps a row to [lo, hi] in the same fashion.
//
//	wide.BlendRow(dst, original, generated, weights)
//
// Design rules:
//   - simple loops over fixed-size arrays for auto-vectorization
//   - no unsafe and no assembly
//   - small inlineable functions
package wide
