package cordic32

// Pre-computed rotation angles for the hyperbolic CORDIC iteration:
// entry i holds the binary32 pattern of atanh(2^-(i+1)). From entry 11
// on, atanh(2^-i) is indistinguishable from 2^-i at this precision.
var atanh_rom = [25]uint32{
	0x3F0C9F54, // atanh(2^-1)  = 0.54930615
	0x3E82C578, // atanh(2^-2)  = 0.25541282
	0x3E00AC49, // atanh(2^-3)  = 0.12565722
	0x3D802AC4, // atanh(2^-4)  = 0.062581569
	0x3D000AAC, // atanh(2^-5)  = 0.031260177
	0x3C8002AB, // atanh(2^-6)  = 0.015626272
	0x3C0000AB, // atanh(2^-7)  = 0.0078126593
	0x3B80002B, // atanh(2^-8)  = 0.0039062700
	0x3B00000B, // atanh(2^-9)  = 0.0019531276
	0x3A800003, // atanh(2^-10) = 0.00097656285
	0x3A000001, // atanh(2^-11) = 0.00048828131
	0x39800000, // atanh(2^-12) = 0.00024414062
	0x39000000, // atanh(2^-13) = 0.00012207031
	0x38800000, // atanh(2^-14)
	0x38000000, // atanh(2^-15)
	0x37800000, // atanh(2^-16)
	0x37000000, // atanh(2^-17)
	0x36800000, // atanh(2^-18)
	0x36000000, // atanh(2^-19)
	0x35800000, // atanh(2^-20)
	0x35000000, // atanh(2^-21)
	0x34800000, // atanh(2^-22)
	0x34000000, // atanh(2^-23)
	0x33800000, // atanh(2^-24)
	0x33000000, // atanh(2^-25)
}

// Get the angle pattern for ROM index i; out-of-range indices return
// the all-zero pattern.
func atanh_lookup(i uint32) uint32 {
	if i >= uint32(len(atanh_rom)) {
		return 0
	}
	return atanh_rom[i]
}

// Exact power-of-two shift factors matching the angle table: entry i is
// the binary32 pattern of 2^-(i+1) (exponent field 126-i, mantissa 0).
var pow2_rom = func() [25]uint32 {
	var t [25]uint32
	for i := range t {
		t[i] = uint32(126-i) << 23
	}
	return t
}()

// Reciprocal of the aggregate hyperbolic CORDIC gain for the 27-step
// schedule (indices 3 and 12 applied twice): 1/K = 0.82815933. Seeding
// x with this value makes the final (x, y) pair converge to
// (cosh, sinh) of the residual-free angle; the tanh quotient itself is
// insensitive to the scale.
const cordic_gain = uint32(0x3F540240)

// Convergence gate for the input magnitude: 1.17. Inputs not below this
// threshold are halved and the result is recovered with the
// double-angle identity.
const cordic_threshold = uint32(0x3F95C28F)
