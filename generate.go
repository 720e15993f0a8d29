package sfmt

import "fmt"

// wordBuffer is a caller buffer viewed as a sequence of 128-bit words.
// The two implementations regroup uint32 and uint64 lanes over the
// same little-endian word layout, so filling either width produces the
// identical bit stream.
type wordBuffer interface {
	word(i int) w128
	setWord(i int, w w128)
}

// lanes32 views a []uint32 as 128-bit words, four lanes per word.
type lanes32 []uint32

func (b lanes32) word(i int) w128 {
	return w128{b[i*4], b[i*4+1], b[i*4+2], b[i*4+3]}
}

func (b lanes32) setWord(i int, w w128) {
	b[i*4], b[i*4+1], b[i*4+2], b[i*4+3] = w[0], w[1], w[2], w[3]
}

// lanes64 views a []uint64 as 128-bit words, two lanes per word.
type lanes64 []uint64

func (b lanes64) word(i int) w128 {
	lo, hi := b[i*2], b[i*2+1]
	return w128{uint32(lo), uint32(lo >> 32), uint32(hi), uint32(hi >> 32)}
}

func (b lanes64) setWord(i int, w w128) {
	b[i*2] = uint64(w[0]) | uint64(w[1])<<32
	b[i*2+1] = uint64(w[2]) | uint64(w[3])<<32
}

// genRandArray writes size 128-bit words of output into buf and leaves
// the internal state holding the last n of them. The first n outputs
// are computed from the internal state treated as a circular buffer;
// after that the recurrence reads back words already emitted into buf,
// which is what lets a single call fill buffers far larger than the
// state.
func (g *SFMT) genRandArray(buf wordBuffer, size int) {
	r1 := g.state[n-2]
	r2 := g.state[n-1]

	i := 0
	for ; i < n-pos1; i++ {
		r := doRecursion(g.state[i], g.state[i+pos1], r1, r2)
		buf.setWord(i, r)
		r1, r2 = r2, r
	}
	for ; i < n; i++ {
		r := doRecursion(g.state[i], buf.word(i+pos1-n), r1, r2)
		buf.setWord(i, r)
		r1, r2 = r2, r
	}
	for ; i < size-n; i++ {
		r := doRecursion(buf.word(i-n), buf.word(i+pos1-n), r1, r2)
		buf.setWord(i, r)
		r1, r2 = r2, r
	}

	j := 0
	for ; j < 2*n-size; j++ {
		g.state[j] = buf.word(j + size - n)
	}
	for ; i < size; i++ {
		r := doRecursion(buf.word(i-n), buf.word(i+pos1-n), r1, r2)
		buf.setWord(i, r)
		r1, r2 = r2, r
		g.state[j] = r
		j++
	}
}

// FillUint32 fills buf with pseudorandom 32-bit integers in one call.
// len(buf) must be a multiple of 4 and at least MinArraySize32, and
// the generator must not have a partially consumed block outstanding;
// violations are caller bugs and panic. The stream continues exactly
// where a previous fill left off, regardless of how calls are chunked.
func (g *SFMT) FillUint32(buf []uint32) {
	if g.idx != n32 {
		panic("sfmt: FillUint32 called with a partially consumed block")
	}
	if len(buf)%4 != 0 {
		panic(fmt.Sprintf("sfmt: FillUint32 length %d is not a multiple of 4", len(buf)))
	}
	if len(buf) < n32 {
		panic(fmt.Sprintf("sfmt: FillUint32 length %d is below the minimum %d", len(buf), n32))
	}

	g.genRandArray(lanes32(buf), len(buf)/4)
	g.idx = n32
}

// FillUint64 fills buf with pseudorandom 64-bit integers in one call.
// len(buf) must be a multiple of 2 and at least MinArraySize64; the
// same contract and continuation rules as FillUint32 apply. The output
// is the 32-bit stream regrouped little-endian two lanes at a time.
func (g *SFMT) FillUint64(buf []uint64) {
	if g.idx != n32 {
		panic("sfmt: FillUint64 called with a partially consumed block")
	}
	if len(buf)%2 != 0 {
		panic(fmt.Sprintf("sfmt: FillUint64 length %d is not a multiple of 2", len(buf)))
	}
	if len(buf) < n64 {
		panic(fmt.Sprintf("sfmt: FillUint64 length %d is below the minimum %d", len(buf), n64))
	}

	g.genRandArray(lanes64(buf), len(buf)/2)
	g.idx = n32
}
