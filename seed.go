package sfmt

import (
	"encoding/binary"

	"github.com/opd-ai/go-sfmt/internal"
)

// func1 and func2 are the scrambling functions of the key-array
// initialization.
func func1(x uint32) uint32 {
	return (x ^ (x >> 27)) * 1664525
}

func func2(x uint32) uint32 {
	return (x ^ (x >> 27)) * 1566083941
}

// Seed initializes the state from a single 32-bit seed using the
// standard Knuth-style expansion, then certifies the period.
func (g *SFMT) Seed(seed uint32) {
	g.setLane(0, seed)
	for i := 1; i < n32; i++ {
		prev := g.lane(i - 1)
		g.setLane(i, 1812433253*(prev^(prev>>30))+uint32(i))
	}
	g.idx = n32
	g.periodCertification()
}

// SeedByArray initializes the state from a key array of 32-bit words.
// Any length is legal, including zero; short or patterned keys are
// defended against by pre-filling the state and running a fixed
// scrambling schedule over it.
//
// The schedule, its lag/mid offsets, and its pass order follow the
// reference implementation exactly: the output stream is a published
// compatibility contract, so none of it may be reordered.
func (g *SFMT) SeedByArray(key []uint32) {
	const size = n32

	var lag int
	switch {
	case size >= 623:
		lag = 11
	case size >= 68:
		lag = 7
	case size >= 39:
		lag = 5
	default:
		lag = 3
	}
	mid := (size - lag) / 2

	for i := range g.state {
		g.state[i] = w128{0x8b8b8b8b, 0x8b8b8b8b, 0x8b8b8b8b, 0x8b8b8b8b}
	}
	count := n32
	if len(key)+1 > n32 {
		count = len(key) + 1
	}

	r := func1(g.lane(0) ^ g.lane(mid) ^ g.lane(n32-1))
	g.setLane(mid, g.lane(mid)+r)
	r += uint32(len(key))
	g.setLane(mid+lag, g.lane(mid+lag)+r)
	g.setLane(0, r)

	count--
	i := 1
	j := 0
	for ; j < count && j < len(key); j++ {
		r = func1(g.lane(i) ^ g.lane((i+mid)%n32) ^ g.lane((i+n32-1)%n32))
		g.setLane((i+mid)%n32, g.lane((i+mid)%n32)+r)
		r += key[j] + uint32(i)
		g.setLane((i+mid+lag)%n32, g.lane((i+mid+lag)%n32)+r)
		g.setLane(i, r)
		i = (i + 1) % n32
	}
	for ; j < count; j++ {
		r = func1(g.lane(i) ^ g.lane((i+mid)%n32) ^ g.lane((i+n32-1)%n32))
		g.setLane((i+mid)%n32, g.lane((i+mid)%n32)+r)
		r += uint32(i)
		g.setLane((i+mid+lag)%n32, g.lane((i+mid+lag)%n32)+r)
		g.setLane(i, r)
		i = (i + 1) % n32
	}
	for j = 0; j < n32; j++ {
		r = func2(g.lane(i) + g.lane((i+mid)%n32) + g.lane((i+n32-1)%n32))
		g.setLane((i+mid)%n32, g.lane((i+mid)%n32)^r)
		r -= uint32(i)
		g.setLane((i+mid+lag)%n32, g.lane((i+mid+lag)%n32)^r)
		g.setLane(i, r)
		i = (i + 1) % n32
	}

	g.idx = n32
	g.periodCertification()
}

// SeedBytes initializes the state from arbitrary byte entropy. The
// bytes are expanded with BLAKE2b-512 into a 16-word key array, which
// is then fed through SeedByArray. This gives hosts that hold string
// or hash seeds a deterministic path into the generator without
// hand-rolling a key layout.
func (g *SFMT) SeedBytes(seed []byte) {
	digest := internal.Blake2b512(seed)

	var key [16]uint32
	for i := range key {
		key[i] = binary.LittleEndian.Uint32(digest[i*4:])
	}
	g.SeedByArray(key[:])
}
