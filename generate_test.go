package sfmt

import "testing"

// refNextBlock advances a state array by one full block, one word at a
// time, the way the scalar reference generator regenerates its state.
// Independent of the array-fill crossover logic, so the two paths
// cross-check each other.
func refNextBlock(state *[n]w128) []uint32 {
	out := make([]uint32, 0, n32)
	for i := 0; i < n; i++ {
		r := doRecursion(
			state[i],
			state[(i+pos1)%n],
			state[(i+n-2)%n],
			state[(i+n-1)%n],
		)
		state[i] = r
		out = append(out, r[0], r[1], r[2], r[3])
	}
	return out
}

// Test FillUint32 against the block-at-a-time reference path.
func TestFillUint32MatchesBlockGeneration(t *testing.T) {
	g := New(1234)
	state := g.state // copy

	buf := make([]uint32, 3*n32)
	g.FillUint32(buf)

	var ref []uint32
	for b := 0; b < 3; b++ {
		ref = append(ref, refNextBlock(&state)...)
	}

	for i := range buf {
		if buf[i] != ref[i] {
			t.Fatalf("array fill diverged from block generation at lane %d: %d != %d", i, buf[i], ref[i])
		}
	}

	// The state left behind must be exactly the last block.
	for i := 0; i < n32; i++ {
		if g.lane(i) != ref[2*n32+i] {
			t.Fatalf("state lane %d = %d after fill, want %d", i, g.lane(i), ref[2*n32+i])
		}
	}
	if g.idx != n32 {
		t.Errorf("cursor = %d after fill, want %d", g.idx, n32)
	}
}

// Test that output is independent of how callers chunk their draws.
func TestFillUint32Chunking(t *testing.T) {
	const k = 4

	a := New(999)
	one := make([]uint32, k*n32)
	a.FillUint32(one)

	b := New(999)
	var many []uint32
	chunk := make([]uint32, n32)
	for i := 0; i < k; i++ {
		b.FillUint32(chunk)
		many = append(many, chunk...)
	}

	for i := range one {
		if one[i] != many[i] {
			t.Fatalf("chunked stream diverged at lane %d: %d != %d", i, many[i], one[i])
		}
	}
	if a.NotEqual(b) {
		t.Error("generators should be equal after drawing the same range")
	}
}

// Test that the 64-bit entry point is the 32-bit stream regrouped
// little-endian, and that both leave identical state behind.
func TestFillUint64Regrouping(t *testing.T) {
	a := New(1234)
	b := New(1234)

	lanes := make([]uint32, 2*n32)
	a.FillUint32(lanes)

	wide := make([]uint64, 2*n64)
	b.FillUint64(wide)

	for i, w := range wide {
		want := uint64(lanes[2*i]) | uint64(lanes[2*i+1])<<32
		if w != want {
			t.Fatalf("uint64 lane %d = %#x, want %#x", i, w, want)
		}
	}
	if a.NotEqual(b) {
		t.Error("32-bit and 64-bit fills over the same range should leave equal state")
	}
}

// mustPanic fails the test unless fn panics.
func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s should panic", name)
		}
	}()
	fn()
}

// Test the buffer-size and cursor contracts.
func TestFillContracts(t *testing.T) {
	g := New(1)

	mustPanic(t, "short uint32 buffer", func() {
		g.FillUint32(make([]uint32, n32-4))
	})
	mustPanic(t, "unaligned uint32 buffer", func() {
		g.FillUint32(make([]uint32, n32+2))
	})
	mustPanic(t, "short uint64 buffer", func() {
		g.FillUint64(make([]uint64, n64-2))
	})
	mustPanic(t, "unaligned uint64 buffer", func() {
		g.FillUint64(make([]uint64, n64+1))
	})

	// Contract panics must not have touched the stream.
	h := New(1)
	if g.NotEqual(h) {
		t.Error("rejected fills should leave state untouched")
	}

	// Minimum sizes are accepted.
	g.FillUint32(make([]uint32, n32))
	g.FillUint64(make([]uint64, n64))

	// A corrupted cursor is a caller bug, not a silent misalignment.
	g.idx = 1
	mustPanic(t, "fill with partial cursor", func() {
		g.FillUint32(make([]uint32, n32))
	})
}

func BenchmarkFillUint32(b *testing.B) {
	g := New(1234)
	buf := make([]uint32, n32)
	b.SetBytes(int64(len(buf) * 4))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.FillUint32(buf)
	}
}

func BenchmarkFillUint32Large(b *testing.B) {
	g := New(1234)
	buf := make([]uint32, 16*n32)
	b.SetBytes(int64(len(buf) * 4))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.FillUint32(buf)
	}
}

func BenchmarkFillUint64(b *testing.B) {
	g := New(1234)
	buf := make([]uint64, n64)
	b.SetBytes(int64(len(buf) * 8))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.FillUint64(buf)
	}
}
