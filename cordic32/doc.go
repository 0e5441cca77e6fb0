// This package computes two elementary functions over IEEE-754 binary32
// values: the hyperbolic tangent, and the reciprocal. Both are computed
// with classic fixed-schedule iterative algorithms, namely hyperbolic
// CORDIC rotation for tanh, and Newton-Raphson refinement for the
// reciprocal. All inputs and outputs are raw 32-bit patterns; the package
// never works on float32 values at its API boundary, so that results are
// reproducible bit-for-bit regardless of how the caller obtained or will
// interpret the patterns.
//
// [Tanh] runs 27 hyperbolic micro-rotations against a fixed table of
// pre-computed atanh(2^-i) angles; two of the table entries are applied
// on two consecutive steps each, which is required for convergence of the
// hyperbolic variant. Inputs whose magnitude is not below 1.17 are halved
// first, and the result is recovered through the double-angle identity.
//
// [Reciprocal] renormalizes the input significand into [0.5,1.0), applies
// the minimax linear seed 48/17 - (32/17)*x, then exactly three Newton
// steps, and rescales by the appropriate power of two. Special operands
// (NaN, infinities, zeros) are dispatched to their IEEE-754 results before
// refinement. A [RecipEngine] instance additionally maintains advisory
// counters of NaN and subnormal inputs, safe for concurrent use; these
// counters are observability only and never affect computation.
//
// Every call is a pure, bounded computation: there is no data-dependent
// iteration count, no shared mutable state between calls (outside the
// advisory counters), and therefore no failure path. Non-finite inputs
// flow through the arithmetic and produce deterministic outputs.
//
// Internally, arithmetic is performed through a small f32 layer with two
// interchangeable implementations: the default one maps each operation to
// a single native float32 operation (each wrapped so that the compiler
// cannot contract expressions into fused multiply-adds), while the
// alternative one, selected with the "cordic32_fp_emu" build tag, is a
// complete integer-only emulation of binary32 arithmetic with
// round-to-nearest-even. Both implementations produce identical outputs
// for all inputs.
package cordic32
