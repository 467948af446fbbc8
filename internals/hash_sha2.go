package internals

import "encoding/binary"

// sha2Engine implements the Merkle–Damgård structure based hash
// algorithms SHA-224 and SHA-256 designed by NSA (2001), specified
// in FIPS 180-4. SHA-224 is SHA-256 with distinct IVs, truncated
// to 28 bytes.
type sha2Engine struct {
	s    [8]uint32
	bits int
}

func newSHA2Engine(bits int) *sha2Engine {
	e := &sha2Engine{bits: bits}
	e.reset()
	return e
}

func (e *sha2Engine) reset() {
	if e.bits == 224 {
		e.s = [8]uint32{
			0xc1059ed8, 0x367cd507, 0x3070dd17, 0xf70e5939,
			0xffc00b31, 0x68581511, 0x64f98fa7, 0xbefa4fa4,
		}
		return
	}
	e.s = [8]uint32{
		0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a,
		0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
	}
}

func (e *sha2Engine) clone() engine {
	c := *e
	return &c
}

var sha2K = [64]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5,
	0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
	0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3,
	0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
	0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc,
	0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7,
	0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
	0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13,
	0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
	0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3,
	0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5,
	0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
	0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208,
	0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

func rotr32(x uint32, n uint) uint32 {
	return x>>n | x<<(32-n)
}

func (e *sha2Engine) compress(block []byte) {
	var w [64]uint32
	for i := 0; i < 16; i++ {
		w[i] = binary.BigEndian.Uint32(block[4*i:])
	}
	for i := 16; i < 64; i++ {
		s0 := rotr32(w[i-15], 7) ^ rotr32(w[i-15], 18) ^ (w[i-15] >> 3)
		s1 := rotr32(w[i-2], 17) ^ rotr32(w[i-2], 19) ^ (w[i-2] >> 10)
		w[i] = w[i-16] + s0 + w[i-7] + s1
	}

	a, b, c, d, ee, f, g, h := e.s[0], e.s[1], e.s[2], e.s[3], e.s[4], e.s[5], e.s[6], e.s[7]

	for i := 0; i < 64; i++ {
		s1 := rotr32(ee, 6) ^ rotr32(ee, 11) ^ rotr32(ee, 25)
		ch := (ee & f) ^ (^ee & g)
		t1 := h + s1 + ch + sha2K[i] + w[i]
		s0 := rotr32(a, 2) ^ rotr32(a, 13) ^ rotr32(a, 22)
		maj := (a & b) ^ (a & c) ^ (b & c)
		t2 := s0 + maj

		h = g
		g = f
		f = ee
		ee = d + t1
		d = c
		c = b
		b = a
		a = t1 + t2
	}

	e.s[0] += a
	e.s[1] += b
	e.s[2] += c
	e.s[3] += d
	e.s[4] += ee
	e.s[5] += f
	e.s[6] += g
	e.s[7] += h
}

func (e *sha2Engine) finalize(tail []byte, total uint64) []byte {
	for _, block := range mdPadBigEndian(tail, total) {
		e.compress(block)
	}
	digest := make([]byte, 32)
	for i, word := range e.s {
		binary.BigEndian.PutUint32(digest[4*i:], word)
	}
	if e.bits == 224 {
		return digest[:28]
	}
	return digest
}
