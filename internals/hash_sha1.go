package internals

import "encoding/binary"

// sha1Engine implements the Merkle–Damgård structure based hash
// algorithm designed by NSA (1995), specified in FIPS 180-4
type sha1Engine struct {
	s [5]uint32
}

func newSHA1Engine() *sha1Engine {
	e := new(sha1Engine)
	e.reset()
	return e
}

func (e *sha1Engine) reset() {
	e.s[0] = 0x67452301
	e.s[1] = 0xefcdab89
	e.s[2] = 0x98badcfe
	e.s[3] = 0x10325476
	e.s[4] = 0xc3d2e1f0
}

func (e *sha1Engine) clone() engine {
	c := *e
	return &c
}

func (e *sha1Engine) compress(block []byte) {
	var w [80]uint32
	for i := 0; i < 16; i++ {
		w[i] = binary.BigEndian.Uint32(block[4*i:])
	}
	for i := 16; i < 80; i++ {
		t := w[i-3] ^ w[i-8] ^ w[i-14] ^ w[i-16]
		w[i] = t<<1 | t>>31
	}

	a, b, c, d, ee := e.s[0], e.s[1], e.s[2], e.s[3], e.s[4]

	for i := 0; i < 80; i++ {
		var f, k uint32
		switch {
		case i < 20:
			f = (b & c) | (^b & d)
			k = 0x5a827999
		case i < 40:
			f = b ^ c ^ d
			k = 0x6ed9eba1
		case i < 60:
			f = (b & c) | (b & d) | (c & d)
			k = 0x8f1bbcdc
		default:
			f = b ^ c ^ d
			k = 0xca62c1d6
		}
		t := a<<5 | a>>27
		t += f + ee + k + w[i]
		ee = d
		d = c
		c = b<<30 | b>>2
		b = a
		a = t
	}

	e.s[0] += a
	e.s[1] += b
	e.s[2] += c
	e.s[3] += d
	e.s[4] += ee
}

func (e *sha1Engine) finalize(tail []byte, total uint64) []byte {
	for _, block := range mdPadBigEndian(tail, total) {
		e.compress(block)
	}
	digest := make([]byte, 20)
	for i, word := range e.s {
		binary.BigEndian.PutUint32(digest[4*i:], word)
	}
	return digest
}
