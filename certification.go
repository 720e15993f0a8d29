package sfmt

// periodCertification checks that the state lies on the maximal-period
// orbit and corrects it if not. The check XOR-folds the first four
// lanes, masked by the parity constants, down to one bit; 1 means the
// state is certified. On failure the lowest set bit of the first
// non-zero parity constant is flipped in the corresponding lane, which
// by construction of the constants moves the state onto the full
// 2^19937-1 period.
//
// Runs once per seeding call and never during generation. Calling it
// on an already certified state is a no-op.
func (g *SFMT) periodCertification() {
	var inner uint32
	for i := 0; i < 4; i++ {
		inner ^= g.lane(i) & parity[i]
	}
	for sh := 16; sh > 0; sh >>= 1 {
		inner ^= inner >> uint(sh)
	}
	if inner&1 == 1 {
		return
	}

	for i := 0; i < 4; i++ {
		work := uint32(1)
		for j := 0; j < 32; j++ {
			if work&parity[i] != 0 {
				g.setLane(i, g.lane(i)^work)
				return
			}
			work <<= 1
		}
	}
}
