package sfmt

// w128 is one 128-bit state word, stored as four 32-bit lanes with the
// lowest lane first. The same memory is never reinterpreted through a
// second pointer type; the 32-bit and 64-bit views used elsewhere go
// through explicit lane arithmetic instead.
type w128 [4]uint32

// lshift128 shifts w left by shift*8 bits across the full 128-bit word.
func lshift128(w w128, shift uint) w128 {
	th := uint64(w[3])<<32 | uint64(w[2])
	tl := uint64(w[1])<<32 | uint64(w[0])

	oh := th<<(shift*8) | tl>>(64-shift*8)
	ol := tl << (shift * 8)

	return w128{uint32(ol), uint32(ol >> 32), uint32(oh), uint32(oh >> 32)}
}

// rshift128 shifts w right by shift*8 bits across the full 128-bit word.
func rshift128(w w128, shift uint) w128 {
	th := uint64(w[3])<<32 | uint64(w[2])
	tl := uint64(w[1])<<32 | uint64(w[0])

	ol := tl>>(shift*8) | th<<(64-shift*8)
	oh := th >> (shift * 8)

	return w128{uint32(ol), uint32(ol >> 32), uint32(oh), uint32(oh >> 32)}
}

// doRecursion advances the recurrence by one 128-bit word:
//
//	r = a ^ (a << sl2 bytes) ^ ((b >> sr1) & msk) ^ (c >> sr2 bytes) ^ (d << sl1)
//
// where the sr1/sl1 shifts act on each 32-bit lane independently and the
// byte shifts span the whole word. a is the word being replaced, b the
// word pos1 ahead, c and d the two most recently generated words.
//
// This is the sole site of the recurrence. Everything is fixed-width
// integer XOR/shift arithmetic, so the result is identical on every
// platform.
func doRecursion(a, b, c, d w128) w128 {
	x := lshift128(a, sl2)
	y := rshift128(c, sr2)

	var r w128
	r[0] = a[0] ^ x[0] ^ ((b[0] >> sr1) & msk[0]) ^ y[0] ^ (d[0] << sl1)
	r[1] = a[1] ^ x[1] ^ ((b[1] >> sr1) & msk[1]) ^ y[1] ^ (d[1] << sl1)
	r[2] = a[2] ^ x[2] ^ ((b[2] >> sr1) & msk[2]) ^ y[2] ^ (d[2] << sl1)
	r[3] = a[3] ^ x[3] ^ ((b[3] >> sr1) & msk[3]) ^ y[3] ^ (d[3] << sl1)
	return r
}
