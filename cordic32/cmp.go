package cordic32

// Magnitude comparison on raw binary32 fields, answering "is abs(x) <
// abs(t)?" without converting either operand to a real value. For
// positive exponent/mantissa fields, IEEE-754 magnitude ordering is
// lexicographic on (exponent, mantissa), which is what the general case
// relies on. Policy, in priority order:
//
//	x has exponent field 0    -> true, unless t also has exponent field 0
//	x or t is infinity or NaN -> false (non-finite magnitudes are
//	                             defined as not-less-than)
//	t has exponent field 0    -> false
//	both normal               -> lexicographic on (exponent, mantissa)
//
// The sign bits of both operands are ignored.
func abs_lt(x uint32, t uint32) bool {
	ex := fp32_exp(x)
	et := fp32_exp(t)
	if ex == 0 {
		return et != 0
	}
	if ex == 0xFF || et == 0xFF {
		return false
	}
	if et == 0 {
		return false
	}
	if ex != et {
		return ex < et
	}
	return fp32_man(x) < fp32_man(t)
}
