package internals

import "encoding/binary"

// md4Engine implements the Merkle–Damgård structure based hash algorithm
// invented by Ronald Rivest (1990). MD4 is broken for cryptographic
// purposes and provided for interoperability with legacy formats only.
type md4Engine struct {
	s [4]uint32
}

func newMD4Engine() *md4Engine {
	e := new(md4Engine)
	e.reset()
	return e
}

func (e *md4Engine) reset() {
	e.s[0] = 0x67452301
	e.s[1] = 0xefcdab89
	e.s[2] = 0x98badcfe
	e.s[3] = 0x10325476
}

func (e *md4Engine) clone() engine {
	c := *e
	return &c
}

var md4Shift1 = []uint{3, 7, 11, 19}
var md4Shift2 = []uint{3, 5, 9, 13}
var md4Shift3 = []uint{3, 9, 11, 15}

var md4XIndex2 = []uint{0, 4, 8, 12, 1, 5, 9, 13, 2, 6, 10, 14, 3, 7, 11, 15}
var md4XIndex3 = []uint{0, 8, 4, 12, 2, 10, 6, 14, 1, 9, 5, 13, 3, 11, 7, 15}

func (e *md4Engine) compress(block []byte) {
	var x [16]uint32
	for i := 0; i < 16; i++ {
		x[i] = binary.LittleEndian.Uint32(block[4*i:])
	}

	a, b, c, d := e.s[0], e.s[1], e.s[2], e.s[3]

	// round 1
	for i := uint(0); i < 16; i++ {
		s := md4Shift1[i%4]
		f := ((c ^ d) & b) ^ d
		a += f + x[i]
		a = a<<s | a>>(32-s)
		a, b, c, d = d, a, b, c
	}

	// round 2
	for i := uint(0); i < 16; i++ {
		s := md4Shift2[i%4]
		g := (b & c) | (b & d) | (c & d)
		a += g + x[md4XIndex2[i]] + 0x5a827999
		a = a<<s | a>>(32-s)
		a, b, c, d = d, a, b, c
	}

	// round 3
	for i := uint(0); i < 16; i++ {
		s := md4Shift3[i%4]
		h := b ^ c ^ d
		a += h + x[md4XIndex3[i]] + 0x6ed9eba1
		a = a<<s | a>>(32-s)
		a, b, c, d = d, a, b, c
	}

	e.s[0] += a
	e.s[1] += b
	e.s[2] += c
	e.s[3] += d
}

func (e *md4Engine) finalize(tail []byte, total uint64) []byte {
	for _, block := range mdPadLittleEndian(tail, total) {
		e.compress(block)
	}
	digest := make([]byte, 16)
	for i, word := range e.s {
		binary.LittleEndian.PutUint32(digest[4*i:], word)
	}
	return digest
}

// mdPadLittleEndian produces the trailing padded block(s) shared by the
// MD4/MD5/RIPEMD-160 family: 0x80, zero fill, then the 64-bit message
// bit length little-endian. A second block is emitted whenever the tail
// leaves no room for the length field.
func mdPadLittleEndian(tail []byte, total uint64) [][]byte {
	padded := make([]byte, 0, 128)
	padded = append(padded, tail...)
	padded = append(padded, 0x80)
	for len(padded)%64 != 56 {
		padded = append(padded, 0x00)
	}
	padded = binary.LittleEndian.AppendUint64(padded, total<<3)

	blocks := make([][]byte, 0, 2)
	for off := 0; off < len(padded); off += 64 {
		blocks = append(blocks, padded[off:off+64])
	}
	return blocks
}

// mdPadBigEndian is the big-endian counterpart (SHA-1, SHA-224/256).
func mdPadBigEndian(tail []byte, total uint64) [][]byte {
	padded := make([]byte, 0, 128)
	padded = append(padded, tail...)
	padded = append(padded, 0x80)
	for len(padded)%64 != 56 {
		padded = append(padded, 0x00)
	}
	padded = binary.BigEndian.AppendUint64(padded, total<<3)

	blocks := make([][]byte, 0, 2)
	for off := 0; off < len(padded); off += 64 {
		blocks = append(blocks, padded[off:off+64])
	}
	return blocks
}
