package internals

import "encoding/binary"

// ripemd160Engine implements the Merkle–Damgård structure based hash
// algorithm invented by Hans Dobbertin, Antoon Bosselaers and
// Bart Preneel (1996). Two parallel lanes of five 16-step rounds are
// combined into the chaining state.
type ripemd160Engine struct {
	s [5]uint32
}

func newRIPEMD160Engine() *ripemd160Engine {
	e := new(ripemd160Engine)
	e.reset()
	return e
}

func (e *ripemd160Engine) reset() {
	e.s[0] = 0x67452301
	e.s[1] = 0xefcdab89
	e.s[2] = 0x98badcfe
	e.s[3] = 0x10325476
	e.s[4] = 0xc3d2e1f0
}

func (e *ripemd160Engine) clone() engine {
	c := *e
	return &c
}

// message word selectors, left lane
var rmdNL = [80]uint{
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15,
	7, 4, 13, 1, 10, 6, 15, 3, 12, 0, 9, 5, 2, 14, 11, 8,
	3, 10, 14, 4, 9, 15, 8, 1, 2, 7, 0, 6, 13, 11, 5, 12,
	1, 9, 11, 10, 0, 8, 12, 4, 13, 3, 7, 15, 14, 5, 6, 2,
	4, 0, 5, 9, 7, 12, 2, 10, 14, 1, 3, 8, 11, 6, 15, 13,
}

// rotation amounts, left lane
var rmdRL = [80]uint{
	11, 14, 15, 12, 5, 8, 7, 9, 11, 13, 14, 15, 6, 7, 9, 8,
	7, 6, 8, 13, 11, 9, 7, 15, 7, 12, 15, 9, 11, 7, 13, 12,
	11, 13, 6, 7, 14, 9, 13, 15, 14, 8, 13, 6, 5, 12, 7, 5,
	11, 12, 14, 15, 14, 15, 9, 8, 9, 14, 5, 6, 8, 6, 5, 12,
	9, 15, 5, 11, 6, 8, 13, 12, 5, 12, 13, 14, 11, 8, 5, 6,
}

// message word selectors, right lane
var rmdNR = [80]uint{
	5, 14, 7, 0, 9, 2, 11, 4, 13, 6, 15, 8, 1, 10, 3, 12,
	6, 11, 3, 7, 0, 13, 5, 10, 14, 15, 8, 12, 4, 9, 1, 2,
	15, 5, 1, 3, 7, 14, 6, 9, 11, 8, 12, 2, 10, 0, 4, 13,
	8, 6, 4, 1, 3, 11, 15, 0, 5, 12, 2, 13, 9, 7, 10, 14,
	12, 15, 10, 4, 1, 5, 8, 7, 6, 2, 13, 14, 0, 3, 9, 11,
}

// rotation amounts, right lane
var rmdRR = [80]uint{
	8, 9, 9, 11, 13, 15, 15, 5, 7, 7, 8, 11, 14, 14, 12, 6,
	9, 13, 15, 7, 12, 8, 9, 11, 7, 7, 12, 7, 6, 15, 13, 11,
	9, 7, 15, 11, 8, 6, 6, 14, 12, 13, 5, 14, 13, 13, 7, 5,
	15, 5, 8, 11, 14, 14, 6, 14, 6, 9, 12, 9, 12, 5, 15, 8,
	8, 5, 12, 9, 12, 5, 14, 6, 8, 13, 6, 5, 15, 13, 11, 11,
}

var rmdKL = [5]uint32{0x00000000, 0x5a827999, 0x6ed9eba1, 0x8f1bbcdc, 0xa953fd4e}
var rmdKR = [5]uint32{0x50a28be6, 0x5c4dd124, 0x6d703ef3, 0x7a6d76e9, 0x00000000}

func rotl32(x uint32, n uint) uint32 {
	return x<<n | x>>(32-n)
}

func rmdF(round int, x, y, z uint32) uint32 {
	switch round {
	case 0:
		return x ^ y ^ z
	case 1:
		return (x & y) | (^x & z)
	case 2:
		return (x | ^y) ^ z
	case 3:
		return (x & z) | (y & ^z)
	}
	return x ^ (y | ^z)
}

func (e *ripemd160Engine) compress(block []byte) {
	var x [16]uint32
	for i := 0; i < 16; i++ {
		x[i] = binary.LittleEndian.Uint32(block[4*i:])
	}

	a1, b1, c1, d1, e1 := e.s[0], e.s[1], e.s[2], e.s[3], e.s[4]
	a2, b2, c2, d2, e2 := e.s[0], e.s[1], e.s[2], e.s[3], e.s[4]

	for i := 0; i < 80; i++ {
		round := i / 16

		// left lane uses f1..f5, right lane f5..f1
		t := a1 + rmdF(round, b1, c1, d1) + x[rmdNL[i]] + rmdKL[round]
		t = rotl32(t, rmdRL[i]) + e1
		a1, b1, c1, d1, e1 = e1, t, b1, rotl32(c1, 10), d1

		t = a2 + rmdF(4-round, b2, c2, d2) + x[rmdNR[i]] + rmdKR[round]
		t = rotl32(t, rmdRR[i]) + e2
		a2, b2, c2, d2, e2 = e2, t, b2, rotl32(c2, 10), d2
	}

	t := e.s[1] + c1 + d2
	e.s[1] = e.s[2] + d1 + e2
	e.s[2] = e.s[3] + e1 + a2
	e.s[3] = e.s[4] + a1 + b2
	e.s[4] = e.s[0] + b1 + c2
	e.s[0] = t
}

func (e *ripemd160Engine) finalize(tail []byte, total uint64) []byte {
	for _, block := range mdPadLittleEndian(tail, total) {
		e.compress(block)
	}
	digest := make([]byte, 20)
	for i, word := range e.s {
		binary.LittleEndian.PutUint32(digest[4*i:], word)
	}
	return digest
}
