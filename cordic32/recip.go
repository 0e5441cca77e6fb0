package cordic32

import (
	"sync/atomic"
)

// Seed constants for the Newton-Raphson reciprocal: the minimax linear
// approximation to 1/x over [0.5,1.0) is 48/17 - (32/17)*x.
const recip_seed_c0 = uint32(0x4034B4B5) // 48/17 = 2.8235294
const recip_seed_c1 = uint32(0x3FF0F0F1) // 32/17 = 1.8823529

// Newton steps applied after the seed. Three steps bring the seed's
// worst-case relative error of about 1/17 below single precision; the
// count is fixed, there is no convergence test.
const recip_steps = 3

// Number of NaN inputs after which a RecipEngine raises its advisory
// error flag.
const recip_nan_limit = 100

// Compute the reciprocal of a finite non-zero (or subnormal) input.
// The significand is renormalized into [0.5,1.0) by forcing the
// exponent field to 126 and the sign positive, refined there, then
// rescaled by the power of two matching the input's unbiased exponent.
// The scale's exponent field wraps modulo 256, so inputs with unbiased
// exponent outside [-126,125] produce saturated (zero or infinite)
// results instead of subnormal ones.
func recip_refine(v uint32) uint32 {
	s, ef, mf, _ := fp32_decode(v)
	eu := int32(ef) - 127

	// scaled_D in [0.5,1.0) (below 0.5 for subnormal inputs, which
	// lack the implicit leading bit; the refinement then loses
	// precision but still terminates, since the step count is fixed).
	d := f32_from_bits(fp32_pack(0, 126, mf))

	z := f32_sub(f32_from_bits(recip_seed_c0),
		f32_mul(f32_from_bits(recip_seed_c1), d))
	for i := 0; i < recip_steps; i++ {
		z = f32_mul(z, f32_sub(f32_TWO, f32_mul(d, z)))
	}

	// The refined value approximates 1/scaled_D, whose scale is
	// 2^-1; the true reciprocal needs scale 2^(-eu-1), hence a
	// power-of-two factor with exponent field 126 - eu.
	scale := f32_from_bits(fp32_pack(0, uint32(126-eu), 0))
	r := f32_to_bits(f32_mul(z, scale))
	return r ^ (s << 31)
}

// Reciprocal computes 1/x over binary32 encodings as a pure function:
// special operands short-circuit to their IEEE-754 results and all
// other inputs go through the fixed three-step Newton refinement. No
// advisory counters are maintained; use a RecipEngine when input
// monitoring is wanted.
func Reciprocal(x uint32) uint32 {
	switch fp32_classify(x) {
	case fp32_nan:
		return fp32_qnan
	case fp32_infinity:
		return fp32_sign(x) << 31
	case fp32_zero:
		return (fp32_sign(x) << 31) | 0x7F800000
	default:
		return recip_refine(x)
	}
}

// A RecipEngine computes reciprocals like [Reciprocal] while keeping
// advisory counts of NaN and subnormal inputs. The counters are
// observability only: they never affect results or block computation.
// All methods are safe for concurrent use; counter updates are atomic.
type RecipEngine struct {
	nan_count    uint32
	denorm_count uint32
	err_flag     uint32
}

// Create a new reciprocal engine with zeroed counters.
func NewRecipEngine() *RecipEngine {
	return new(RecipEngine)
}

// Reciprocal computes 1/x over binary32 encodings. Dispatch on the
// decoded input, in priority order:
//
//	NaN        -> canonical quiet NaN (counted; past 100 NaN inputs
//	              the advisory error flag is raised)
//	infinity   -> zero with the input's sign
//	zero       -> infinity with the input's sign
//	subnormal  -> refined like a normal input (counted; the result
//	              has reduced precision)
//	normal     -> Newton-Raphson refinement
func (eng *RecipEngine) Reciprocal(x uint32) uint32 {
	switch fp32_classify(x) {
	case fp32_nan:
		if atomic.AddUint32(&eng.nan_count, 1) > recip_nan_limit {
			atomic.StoreUint32(&eng.err_flag, 1)
		}
		return fp32_qnan
	case fp32_infinity:
		return fp32_sign(x) << 31
	case fp32_zero:
		return (fp32_sign(x) << 31) | 0x7F800000
	case fp32_subnormal:
		atomic.AddUint32(&eng.denorm_count, 1)
		return recip_refine(x)
	default:
		return recip_refine(x)
	}
}

// Number of NaN inputs seen since the last reset.
func (eng *RecipEngine) NaNCount() uint32 {
	return atomic.LoadUint32(&eng.nan_count)
}

// Number of subnormal inputs seen since the last reset.
func (eng *RecipEngine) DenormCount() uint32 {
	return atomic.LoadUint32(&eng.denorm_count)
}

// Whether more than 100 NaN inputs have been seen since the last reset.
func (eng *RecipEngine) ErrorFlag() bool {
	return atomic.LoadUint32(&eng.err_flag) != 0
}

// ResetCounters clears the NaN and subnormal counters and the error
// flag.
func (eng *RecipEngine) ResetCounters() {
	atomic.StoreUint32(&eng.nan_count, 0)
	atomic.StoreUint32(&eng.denorm_count, 0)
	atomic.StoreUint32(&eng.err_flag, 0)
}
