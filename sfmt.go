// Package sfmt provides a pure-Go implementation of the SIMD-oriented
// Fast Mersenne Twister (SFMT) pseudorandom number generator with the
// SFMT-19937 parameter set, bit-compatible with the reference C
// implementation by Saito and Matsumoto.
//
// The generator is built for bulk output: callers hand it a large
// buffer and receive the next stretch of the stream in one call.
// Output is fully deterministic given the seed and the sequence of
// calls, independent of host architecture, which makes it suitable for
// lockstep simulation and replay.
//
// Example usage:
//
//	g := sfmt.New(1234)
//	buf := make([]uint32, sfmt.MinArraySize32())
//	g.FillUint32(buf)
//
// SFMT is not a cryptographic generator, and an instance is not safe
// for concurrent use; give each goroutine its own stream.
package sfmt

import (
	"encoding/binary"
	"fmt"
)

// SFMT holds the generator state: n 128-bit words plus a cursor into
// their 32-bit lane view. State bytes are only ever written by the
// seeding routines, the recurrence, and period certification.
type SFMT struct {
	state [n]w128
	idx   int
}

// New returns a generator seeded with the given 32-bit seed.
func New(seed uint32) *SFMT {
	g := &SFMT{}
	g.Seed(seed)
	return g
}

// NewFromKey returns a generator seeded with a key array of any
// length, including zero.
func NewFromKey(key []uint32) *SFMT {
	g := &SFMT{}
	g.SeedByArray(key)
	return g
}

// NewFromBytes returns a generator seeded from arbitrary bytes; see
// SeedBytes.
func NewFromBytes(seed []byte) *SFMT {
	g := &SFMT{}
	g.SeedBytes(seed)
	return g
}

// lane returns the i-th 32-bit lane of the state. The lane view and
// the 128-bit word view share the same backing array; lane 4k+j is
// lane j of word k.
func (g *SFMT) lane(i int) uint32 {
	return g.state[i>>2][i&3]
}

// setLane writes the i-th 32-bit lane of the state.
func (g *SFMT) setLane(i int, v uint32) {
	g.state[i>>2][i&3] = v
}

// Equal reports whether g and o hold identical generator state: the
// same cursor and byte-identical state words. Two equal generators
// produce identical output for any identical sequence of calls.
func (g *SFMT) Equal(o *SFMT) bool {
	if g.idx != o.idx {
		return false
	}
	return g.state == o.state
}

// NotEqual is the negation of Equal.
func (g *SFMT) NotEqual(o *SFMT) bool {
	return !g.Equal(o)
}

// SnapshotSize is the length in bytes of the slab returned by Snapshot.
const SnapshotSize = n32*4 + 4

// Snapshot serializes the complete generator state, word array plus
// cursor, in little-endian lane order. Restoring the snapshot
// reproduces the exact subsequent output stream; no smaller
// representation is guaranteed to.
func (g *SFMT) Snapshot() []byte {
	buf := make([]byte, SnapshotSize)
	for i := 0; i < n32; i++ {
		binary.LittleEndian.PutUint32(buf[i*4:], g.lane(i))
	}
	binary.LittleEndian.PutUint32(buf[n32*4:], uint32(g.idx))
	return buf
}

// Restore overwrites the generator state with a snapshot previously
// produced by Snapshot.
func (g *SFMT) Restore(snap []byte) error {
	if len(snap) != SnapshotSize {
		return fmt.Errorf("sfmt: snapshot is %d bytes, want %d", len(snap), SnapshotSize)
	}
	idx := binary.LittleEndian.Uint32(snap[n32*4:])
	if idx > n32 {
		return fmt.Errorf("sfmt: snapshot cursor %d out of range [0,%d]", idx, n32)
	}
	for i := 0; i < n32; i++ {
		g.setLane(i, binary.LittleEndian.Uint32(snap[i*4:]))
	}
	g.idx = int(idx)
	return nil
}
