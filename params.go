package sfmt

// SFMT-19937 parameter set. The generator's period is 2^19937 - 1.
// These values are fixed at build time; the recurrence, the seeding
// routines and the published test vectors all depend on every one of
// them, so they are deliberately not configurable.
const (
	mexp = 19937

	// n is the state size in 128-bit words; n32 and n64 are the same
	// state viewed as 32-bit and 64-bit lanes.
	n   = mexp/128 + 1
	n32 = n * 4
	n64 = n * 2

	// pos1 is the pick-up lag of the recurrence, in 128-bit words.
	pos1 = 122

	// Shift amounts: sl1/sr1 are 32-bit lane shifts in bits, sl2/sr2
	// are whole-128-bit shifts in bytes.
	sl1 = 18
	sl2 = 1
	sr1 = 11
	sr2 = 1
)

// msk is the 128-bit recurrence mask, one 32-bit lane per entry,
// lowest lane first.
var msk = [4]uint32{0xdfffffef, 0xddfecb7f, 0xbffaffff, 0xbffffff6}

// parity certifies the period; see periodCertification.
var parity = [4]uint32{0x00000001, 0x00000000, 0x00000000, 0x13c9e684}

// idString identifies the generator: word size, Mersenne exponent and
// the full parameter set.
const idString = "SFMT-19937:122-18-1-11-1:dfffffef-ddfecb7f-bffaffff-bffffff6"

// IDString returns the identification string of the generator. Two
// builds with the same identification string produce bit-identical
// output for the same seeds and call sequence.
func IDString() string {
	return idString
}

// MinArraySize32 returns the minimum length accepted by FillUint32.
func MinArraySize32() int {
	return n32
}

// MinArraySize64 returns the minimum length accepted by FillUint64.
func MinArraySize64() int {
	return n64
}
