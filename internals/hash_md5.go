package internals

import "encoding/binary"

// md5Engine implements the Merkle–Damgård structure based hash algorithm
// invented by Ronald Rivest (1992), specified in RFC 1321
type md5Engine struct {
	s [4]uint32
}

func newMD5Engine() *md5Engine {
	e := new(md5Engine)
	e.reset()
	return e
}

func (e *md5Engine) reset() {
	e.s[0] = 0x67452301
	e.s[1] = 0xefcdab89
	e.s[2] = 0x98badcfe
	e.s[3] = 0x10325476
}

func (e *md5Engine) clone() engine {
	c := *e
	return &c
}

// md5T holds the 64 sine-derived additive constants, T[i] = floor(2^32 · |sin(i+1)|)
var md5T = [64]uint32{
	0xd76aa478, 0xe8c7b756, 0x242070db, 0xc1bdceee,
	0xf57c0faf, 0x4787c62a, 0xa8304613, 0xfd469501,
	0x698098d8, 0x8b44f7af, 0xffff5bb1, 0x895cd7be,
	0x6b901122, 0xfd987193, 0xa679438e, 0x49b40821,
	0xf61e2562, 0xc040b340, 0x265e5a51, 0xe9b6c7aa,
	0xd62f105d, 0x02441453, 0xd8a1e681, 0xe7d3fbc8,
	0x21e1cde6, 0xc33707d6, 0xf4d50d87, 0x455a14ed,
	0xa9e3e905, 0xfcefa3f8, 0x676f02d9, 0x8d2a4c8a,
	0xfffa3942, 0x8771f681, 0x6d9d6122, 0xfde5380c,
	0xa4beea44, 0x4bdecfa9, 0xf6bb4b60, 0xbebfbc70,
	0x289b7ec6, 0xeaa127fa, 0xd4ef3085, 0x04881d05,
	0xd9d4d039, 0xe6db99e5, 0x1fa27cf8, 0xc4ac5665,
	0xf4292244, 0x432aff97, 0xab9423a7, 0xfc93a039,
	0x655b59c3, 0x8f0ccc92, 0xffeff47d, 0x85845dd1,
	0x6fa87e4f, 0xfe2ce6e0, 0xa3014314, 0x4e0811a1,
	0xf7537e82, 0xbd3af235, 0x2ad7d2bb, 0xeb86d391,
}

var md5Shift = [4][4]uint{
	{7, 12, 17, 22},
	{5, 9, 14, 20},
	{4, 11, 16, 23},
	{6, 10, 15, 21},
}

func (e *md5Engine) compress(block []byte) {
	var x [16]uint32
	for i := 0; i < 16; i++ {
		x[i] = binary.LittleEndian.Uint32(block[4*i:])
	}

	a, b, c, d := e.s[0], e.s[1], e.s[2], e.s[3]

	for i := 0; i < 64; i++ {
		var f uint32
		var k int
		switch {
		case i < 16:
			f = ((c ^ d) & b) ^ d
			k = i
		case i < 32:
			f = ((b ^ c) & d) ^ c
			k = (5*i + 1) % 16
		case i < 48:
			f = b ^ c ^ d
			k = (3*i + 5) % 16
		default:
			f = c ^ (b | ^d)
			k = (7 * i) % 16
		}
		s := md5Shift[i/16][i%4]
		a += f + x[k] + md5T[i]
		a = a<<s | a>>(32-s)
		a += b
		a, b, c, d = d, a, b, c
	}

	e.s[0] += a
	e.s[1] += b
	e.s[2] += c
	e.s[3] += d
}

func (e *md5Engine) finalize(tail []byte, total uint64) []byte {
	for _, block := range mdPadLittleEndian(tail, total) {
		e.compress(block)
	}
	digest := make([]byte, 16)
	for i, word := range e.s {
		binary.LittleEndian.PutUint32(digest[4*i:], word)
	}
	return digest
}
