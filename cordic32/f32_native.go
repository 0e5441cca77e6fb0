//go:build !cordic32_fp_emu

package cordic32

import (
	"math"
)

type f32 = float32

const f32_ZERO = f32(0.0)
const f32_ONE = f32(1.0)
const f32_TWO = f32(2.0)
const f32_HALF = f32(0.5)

// Convert a f32 value to its 32-bit representation.
func f32_to_bits(x f32) uint32 {
	return math.Float32bits(x)
}

// Make a f32 value from its 32-bit representation.
func f32_from_bits(v uint32) f32 {
	return math.Float32frombits(v)
}

// Each operation below performs exactly one binary32 operation, wrapped
// in its own function with an explicit float32 conversion on the result.
// The conversion forces rounding at that point, so the compiler cannot
// contract a multiplication and an addition from separate calls into a
// fused multiply-add, which would change low-order result bits.

// Addition.
func f32_add(x f32, y f32) f32 {
	return float32(x + y)
}

// Subtraction.
func f32_sub(x f32, y f32) f32 {
	return float32(x - y)
}

// Multiplication.
func f32_mul(x f32, y f32) f32 {
	return float32(x * y)
}

// Division.
func f32_div(x f32, y f32) f32 {
	return float32(x / y)
}

// Negation (flips the sign bit, including on zeros and NaNs).
func f32_neg(x f32) f32 {
	return math.Float32frombits(math.Float32bits(x) ^ b31)
}
