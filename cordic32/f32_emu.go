//go:build cordic32_fp_emu

package cordic32

import (
	"math/bits"
)

type f32 = uint32

const f32_ZERO = f32(0x00000000)
const f32_ONE = f32(0x3F800000)
const f32_TWO = f32(0x40000000)
const f32_HALF = f32(0x3F000000)

// Convert a f32 value to its 32-bit representation.
func f32_to_bits(x f32) uint32 {
	return x
}

// Make a f32 value from its 32-bit representation.
func f32_from_bits(v uint32) f32 {
	return v
}

// The functions below emulate binary32 arithmetic with integer
// operations only, applying roundTiesToEven. Subnormal operands and
// results are fully supported; overflows yield infinities; all NaN
// results use the canonical quiet NaN pattern (NaN payload propagation
// is architecture-defined on the native side, so no payload is carried
// here either).

// 1 if x is non-zero, 0 otherwise.
func nonzero32(x uint32) uint32 {
	return uint32((uint64(x) + 0xFFFFFFFF) >> 32)
}

func nonzero64(x uint64) uint32 {
	return nonzero32(uint32(x>>32) | uint32(x))
}

// Make a value out of the sign bit s, scale e, and mantissa m. Rules:
//
//	only the low bit of s is used (0 or 1)
//	for a non-zero finite result, 2^25 <= m < 2^26 and the encoded
//	  value is (-1)^s * m * 2^e, with proper rounding applied; the
//	  low bit of m is sticky (it stands for all dropped lower bits)
//	m = 0 is tolerated for any e and yields a signed zero
//
// Values too large for the format become infinities; values in the
// subnormal range are denormalized and rounded; a rounding carry out of
// the top mantissa bit propagates into the exponent field naturally,
// which also covers the subnormal-to-normal and largest-finite-to-
// infinity transitions.
func f32_build(s uint32, e int32, m uint32) uint32 {
	if m == 0 {
		return s << 31
	}
	if e >= 103 {
		// Exponent field would be at least 255.
		return (s << 31) | 0x7F800000
	}
	if e < -151 {
		// Subnormal range: shift the mantissa down, keeping a
		// sticky bit, and encode with exponent field 0.
		d := uint32(-151 - e)
		if d > 26 {
			m = nonzero32(m)
		} else {
			m = (m >> d) | nonzero32(m&((1<<d)-1))
		}
		cc := (uint32(0xC8) >> (m & 7)) & 1
		return (s << 31) + (m >> 2) + cc
	}
	cc := (uint32(0xC8) >> (m & 7)) & 1
	return (s << 31) + (uint32(e+151) << 23) + (m >> 2) + cc
}

// Split a finite non-zero value into its sign, scale and normalized
// significand, such that the value is (-1)^s * sig * 2^(te-23) with
// 2^23 <= sig < 2^24. Subnormal operands are normalized by shifting.
func f32_norm(v uint32) (s uint32, te int32, sig uint32) {
	s = v >> 31
	e := (v >> 23) & 0xFF
	m := v & m23
	if e == 0 {
		l := uint32(bits.LeadingZeros32(m)) - 8
		return s, -126 - int32(l), m << l
	}
	return s, int32(e) - 127, m | b23
}

func emu_nan(v uint32) bool {
	return (v&0x7F800000) == 0x7F800000 && (v&m23) != 0
}

func emu_inf(v uint32) bool {
	return (v & m31) == 0x7F800000
}

func emu_zero(v uint32) bool {
	return (v & m31) == 0
}

// Addition.
func f32_add(x f32, y f32) f32 {
	if emu_nan(x) || emu_nan(y) {
		return fp32_qnan
	}
	if emu_inf(x) {
		if emu_inf(y) && (x>>31) != (y>>31) {
			return fp32_qnan
		}
		return x
	}
	if emu_inf(y) {
		return y
	}
	if emu_zero(x) {
		if emu_zero(y) {
			// +0 except for (-0) + (-0).
			return x & y
		}
		return y
	}
	if emu_zero(y) {
		return x
	}

	sx, tx, mx := f32_norm(x)
	sy, ty, my := f32_norm(y)

	// Work with 3 extra low bits (guard, round, sticky), and arrange
	// for (tx, mx) to hold the larger magnitude of the two; the result
	// then has the sign of x after the conditional swap, and only y
	// needs alignment shifting.
	mx <<= 3
	my <<= 3
	if tx < ty || (tx == ty && mx < my) {
		sx, sy = sy, sx
		tx, ty = ty, tx
		mx, my = my, mx
	}
	d := uint32(tx - ty)
	if d > 30 {
		my = nonzero32(my)
	} else if d != 0 {
		my = (my >> d) | nonzero32(my&((1<<d)-1))
	}

	if sx == sy {
		sm := mx + my
		sh := uint32(1) + (sm >> 27)
		m := (sm >> sh) | nonzero32(sm&((1<<sh)-1))
		return f32_build(sx, tx-26+int32(sh), m)
	}

	df := mx - my
	if df == 0 {
		// Exact cancellation rounds to +0.
		return 0
	}
	l := int32(bits.LeadingZeros32(df)) - 6
	var m uint32
	if l >= 0 {
		// Cancellation of more than one bit only happens when the
		// alignment shift was at most 1, in which case no sticky
		// bit was lost and the left shift is exact.
		m = df << uint32(l)
	} else {
		m = (df >> 1) | (df & 1)
	}
	return f32_build(sx, tx-26-l, m)
}

// Subtraction.
func f32_sub(x f32, y f32) f32 {
	return f32_add(x, y^b31)
}

// Negation (flips the sign bit, including on zeros and NaNs).
func f32_neg(x f32) f32 {
	return x ^ b31
}

// Multiplication.
func f32_mul(x f32, y f32) f32 {
	if emu_nan(x) || emu_nan(y) {
		return fp32_qnan
	}
	s := (x ^ y) >> 31
	if emu_inf(x) || emu_inf(y) {
		if emu_zero(x) || emu_zero(y) {
			return fp32_qnan
		}
		return (s << 31) | 0x7F800000
	}
	if emu_zero(x) || emu_zero(y) {
		return s << 31
	}

	_, tx, mx := f32_norm(x)
	_, ty, my := f32_norm(y)

	// Product of the two 24-bit significands is in [2^46,2^48); shrink
	// it to [2^25,2^26) with a sticky low bit.
	p := uint64(mx) * uint64(my)
	sh := uint32(21) + uint32(p>>47)
	m := uint32(p>>sh) | nonzero64(p&((uint64(1)<<sh)-1))
	return f32_build(s, tx+ty-46+int32(sh), m)
}

// Division.
func f32_div(x f32, y f32) f32 {
	if emu_nan(x) || emu_nan(y) {
		return fp32_qnan
	}
	s := (x ^ y) >> 31
	if emu_inf(x) {
		if emu_inf(y) {
			return fp32_qnan
		}
		return (s << 31) | 0x7F800000
	}
	if emu_inf(y) {
		return s << 31
	}
	if emu_zero(y) {
		if emu_zero(x) {
			return fp32_qnan
		}
		return (s << 31) | 0x7F800000
	}
	if emu_zero(x) {
		return s << 31
	}

	_, tx, mx := f32_norm(x)
	_, ty, my := f32_norm(y)

	// Scale the dividend significand by 2^26 so that the integer
	// quotient lands in (2^25,2^27); a non-zero remainder only sets
	// the sticky bit.
	num := uint64(mx) << 26
	q := num / uint64(my)
	r := num % uint64(my)
	q |= uint64(nonzero64(r))
	e := tx - ty - 26
	if (q >> 26) != 0 {
		q = (q >> 1) | (q & 1)
		e++
	}
	return f32_build(s, e, uint32(q))
}
