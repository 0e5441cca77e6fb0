package cordic32

import (
	sha3 "golang.org/x/crypto/sha3"
)

// A PRNG based on four parallel SHAKE256 instances, with interleaved
// outputs. Tests use it to draw reproducible pseudo-random bit patterns
// from a fixed seed.
type shake256x4 struct {
	state [4]sha3.ShakeHash
	buf   [4 * 136]byte
	ptr   int
}

// Create a new SHAKE256x4 instance, initialized with the provided seed.
func newSHAKE256x4(seed []byte) *shake256x4 {
	r := new(shake256x4)
	for i := 0; i < 4; i++ {
		var tmp [1]byte
		tmp[0] = byte(i)
		r.state[i] = sha3.NewShake256()
		r.state[i].Write(seed)
		r.state[i].Write(tmp[:])
	}
	r.ptr = len(r.buf)
	return r
}

// Get next 32-bit value from a SHAKE256x4 instance.
func (r *shake256x4) next_u32() uint32 {
	ptr := r.ptr
	if ptr >= (len(r.buf) - 3) {
		r.refill()
		ptr = 0
	}
	x := uint32(0)
	r.ptr = ptr + 4
	for i := 0; i < 4; i++ {
		x += uint32(r.buf[ptr+i]) << (i << 3)
	}
	return x
}

// Get next 64-bit value from a SHAKE256x4 instance.
func (r *shake256x4) next_u64() uint64 {
	ptr := r.ptr
	if ptr >= (len(r.buf) - 7) {
		r.refill()
		ptr = 0
	}
	x := uint64(0)
	r.ptr = ptr + 8
	for i := 0; i < 8; i++ {
		x += uint64(r.buf[ptr+i]) << (i << 3)
	}
	return x
}

// Refill a SHAKE256x4 instance.
func (r *shake256x4) refill() {
	var tmp [136]byte
	for i := 0; i < 4; i++ {
		r.state[i].Read(tmp[:])
		for j := 0; j < 17; j++ {
			u := (i << 3) + (j << 5)
			v := j << 3
			copy(r.buf[u:u+8], tmp[v:v+8])
		}
	}
	r.ptr = 0
}

// Draw a pattern with a normal (finite, non-subnormal) classification,
// with the exponent field restricted to [lo,hi].
func (r *shake256x4) next_normal(lo uint32, hi uint32) uint32 {
	v := r.next_u32()
	e := lo + (((v >> 23) & 0xFF) % (hi - lo + 1))
	return (v & (b31 | m23)) | (e << 23)
}
