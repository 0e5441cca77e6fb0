package cordic32

// Number of hyperbolic micro-rotations. The schedule draws 27 steps
// from the 25-entry angle table because two of the indices are applied
// twice (see below).
const cordic_steps = 27

// ROM indices that must be applied on two consecutive steps. Hyperbolic
// CORDIC only converges if the angles atanh(2^-i) for i = 4, 13, 40...
// are each used twice, since each of them exceeds the sum of all the
// angles that follow it; within a 25-entry table that means indices 3
// and 12.
func rom_repeat(i uint32) bool {
	return i == 3 || i == 12
}

// Run the raw 27-step hyperbolic CORDIC rotation for an input angle
// within the convergence range, and return tanh of that angle as the
// final y/x quotient. The iteration state is local to the call; two
// counters advance together: the step counter always increments, while
// the ROM index is held for one extra step on the first use of each
// repeated index.
func cordic_rotate(angle f32) f32 {
	x := f32_from_bits(cordic_gain)
	y := f32_ZERO
	z := angle

	ri := uint32(0)
	held := false
	for step := 0; step < cordic_steps; step++ {
		// Rotation direction is steered by the sign bit of the
		// residual angle alone; its magnitude is irrelevant.
		pw := f32_from_bits(pow2_rom[ri])
		dz := f32_from_bits(atanh_lookup(ri))
		dx := f32_mul(y, pw)
		dy := f32_mul(x, pw)
		if fp32_sign(f32_to_bits(z)) != 0 {
			x = f32_sub(x, dx)
			y = f32_sub(y, dy)
			z = f32_add(z, dz)
		} else {
			x = f32_add(x, dx)
			y = f32_add(y, dy)
			z = f32_sub(z, dz)
		}

		if rom_repeat(ri) && !held {
			held = true
		} else {
			ri++
			held = false
		}
	}
	return f32_div(y, x)
}

// Recover tanh(2a) from t = tanh(a) through the double-angle identity
// 2t / (1 + t^2).
func double_angle(t f32) f32 {
	num := f32_mul(f32_TWO, t)
	den := f32_add(f32_ONE, f32_mul(t, t))
	return f32_div(num, den)
}

// Tanh computes the hyperbolic tangent of the binary32 value encoded in
// x, and returns the binary32 encoding of the result. Inputs with
// magnitude below 1.17 are rotated directly; larger inputs are halved
// first and the result is recovered with the double-angle identity,
// extending the usable range to about |x| < 2.23 (beyond which the
// output saturates near +-0.97742, the tanh of the schedule's total
// rotation capacity). Zeros map to themselves exactly. Non-finite
// inputs are not trapped; they flow through the iteration and produce
// deterministic saturated outputs.
//
// The call is a pure function of x: no state is retained or shared, so
// concurrent calls need no coordination.
func Tanh(x uint32) uint32 {
	if fp32_classify(x) == fp32_zero {
		// The raw iteration leaves a residual of the order of the
		// last rotation angle (~2^-25), so an exact signed zero
		// must bypass it.
		return x
	}
	xf := f32_from_bits(x)
	if abs_lt(x, cordic_threshold) {
		return f32_to_bits(cordic_rotate(xf))
	}
	t := cordic_rotate(f32_mul(xf, f32_HALF))
	return f32_to_bits(double_angle(t))
}
