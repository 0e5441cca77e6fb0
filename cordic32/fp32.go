package cordic32

// Some useful constants over the binary32 layout:
//   bNN    2^NN
//   mNN    2^NN - 1

const b23 = uint32(0x00800000)
const b31 = uint32(0x80000000)

const m23 = uint32(0x007FFFFF)
const m31 = uint32(0x7FFFFFFF)

// Canonical quiet NaN.
const fp32_qnan = uint32(0x7FC00000)

// Classification of a binary32 pattern. Every 32-bit pattern has exactly
// one class.
type fp32_class uint32

const (
	fp32_zero fp32_class = iota
	fp32_subnormal
	fp32_normal
	fp32_infinity
	fp32_nan
)

// Extract the sign bit (0 or 1).
func fp32_sign(v uint32) uint32 {
	return v >> 31
}

// Extract the 8-bit exponent field.
func fp32_exp(v uint32) uint32 {
	return (v >> 23) & 0xFF
}

// Extract the 23-bit mantissa field.
func fp32_man(v uint32) uint32 {
	return v & m23
}

// Classify a binary32 pattern.
func fp32_classify(v uint32) fp32_class {
	e := fp32_exp(v)
	m := fp32_man(v)
	switch {
	case e == 0 && m == 0:
		return fp32_zero
	case e == 0:
		return fp32_subnormal
	case e == 0xFF && m == 0:
		return fp32_infinity
	case e == 0xFF:
		return fp32_nan
	default:
		return fp32_normal
	}
}

// Split a binary32 pattern into its sign, exponent and mantissa fields,
// along with its classification. Total function, no failure modes.
func fp32_decode(v uint32) (s uint32, e uint32, m uint32, c fp32_class) {
	return fp32_sign(v), fp32_exp(v), fp32_man(v), fp32_classify(v)
}

// Assemble a binary32 pattern from raw fields. Only the low bit of s,
// the low 8 bits of e and the low 23 bits of m are used.
func fp32_pack(s uint32, e uint32, m uint32) uint32 {
	return ((s & 1) << 31) | ((e & 0xFF) << 23) | (m & m23)
}
