package internals

import "encoding/binary"

// sha512Engine implements the 64-bit word variants SHA-384 and SHA-512
// designed by NSA (2001), specified in FIPS 180-4. The block width is
// 128 bytes and the padding trailer carries a 128-bit message bit
// length. SHA-384 is SHA-512 with distinct IVs, truncated to 48 bytes.
type sha512Engine struct {
	s    [8]uint64
	bits int
}

func newSHA512Engine(bits int) *sha512Engine {
	e := &sha512Engine{bits: bits}
	e.reset()
	return e
}

func (e *sha512Engine) reset() {
	if e.bits == 384 {
		e.s = [8]uint64{
			0xcbbb9d5dc1059ed8, 0x629a292a367cd507,
			0x9159015a3070dd17, 0x152fecd8f70e5939,
			0x67332667ffc00b31, 0x8eb44a8768581511,
			0xdb0c2e0d64f98fa7, 0x47b5481dbefa4fa4,
		}
		return
	}
	e.s = [8]uint64{
		0x6a09e667f3bcc908, 0xbb67ae8584caa73b,
		0x3c6ef372fe94f82b, 0xa54ff53a5f1d36f1,
		0x510e527fade682d1, 0x9b05688c2b3e6c1f,
		0x1f83d9abfb41bd6b, 0x5be0cd19137e2179,
	}
}

func (e *sha512Engine) clone() engine {
	c := *e
	return &c
}

var sha512K = [80]uint64{
	0x428a2f98d728ae22, 0x7137449123ef65cd, 0xb5c0fbcfec4d3b2f, 0xe9b5dba58189dbbc,
	0x3956c25bf348b538, 0x59f111f1b605d019, 0x923f82a4af194f9b, 0xab1c5ed5da6d8118,
	0xd807aa98a3030242, 0x12835b0145706fbe, 0x243185be4ee4b28c, 0x550c7dc3d5ffb4e2,
	0x72be5d74f27b896f, 0x80deb1fe3b1696b1, 0x9bdc06a725c71235, 0xc19bf174cf692694,
	0xe49b69c19ef14ad2, 0xefbe4786384f25e3, 0x0fc19dc68b8cd5b5, 0x240ca1cc77ac9c65,
	0x2de92c6f592b0275, 0x4a7484aa6ea6e483, 0x5cb0a9dcbd41fbd4, 0x76f988da831153b5,
	0x983e5152ee66dfab, 0xa831c66d2db43210, 0xb00327c898fb213f, 0xbf597fc7beef0ee4,
	0xc6e00bf33da88fc2, 0xd5a79147930aa725, 0x06ca6351e003826f, 0x142929670a0e6e70,
	0x27b70a8546d22ffc, 0x2e1b21385c26c926, 0x4d2c6dfc5ac42aed, 0x53380d139d95b3df,
	0x650a73548baf63de, 0x766a0abb3c77b2a8, 0x81c2c92e47edaee6, 0x92722c851482353b,
	0xa2bfe8a14cf10364, 0xa81a664bbc423001, 0xc24b8b70d0f89791, 0xc76c51a30654be30,
	0xd192e819d6ef5218, 0xd69906245565a910, 0xf40e35855771202a, 0x106aa07032bbd1b8,
	0x19a4c116b8d2d0c8, 0x1e376c085141ab53, 0x2748774cdf8eeb99, 0x34b0bcb5e19b48a8,
	0x391c0cb3c5c95a63, 0x4ed8aa4ae3418acb, 0x5b9cca4f7763e373, 0x682e6ff3d6b2b8a3,
	0x748f82ee5defb2fc, 0x78a5636f43172f60, 0x84c87814a1f0ab72, 0x8cc702081a6439ec,
	0x90befffa23631e28, 0xa4506cebde82bde9, 0xbef9a3f7b2c67915, 0xc67178f2e372532b,
	0xca273eceea26619c, 0xd186b8c721c0c207, 0xeada7dd6cde0eb1e, 0xf57d4f7fee6ed178,
	0x06f067aa72176fba, 0x0a637dc5a2c898a6, 0x113f9804bef90dae, 0x1b710b35131c471b,
	0x28db77f523047d84, 0x32caab7b40c72493, 0x3c9ebe0a15c9bebc, 0x431d67c49c100d4c,
	0x4cc5d4becb3e42b6, 0x597f299cfc657e2a, 0x5fcb6fab3ad6faec, 0x6c44198c4a475817,
}

func rotr64(x uint64, n uint) uint64 {
	return x>>n | x<<(64-n)
}

func (e *sha512Engine) compress(block []byte) {
	var w [80]uint64
	for i := 0; i < 16; i++ {
		w[i] = binary.BigEndian.Uint64(block[8*i:])
	}
	for i := 16; i < 80; i++ {
		s0 := rotr64(w[i-15], 1) ^ rotr64(w[i-15], 8) ^ (w[i-15] >> 7)
		s1 := rotr64(w[i-2], 19) ^ rotr64(w[i-2], 61) ^ (w[i-2] >> 6)
		w[i] = w[i-16] + s0 + w[i-7] + s1
	}

	a, b, c, d, ee, f, g, h := e.s[0], e.s[1], e.s[2], e.s[3], e.s[4], e.s[5], e.s[6], e.s[7]

	for i := 0; i < 80; i++ {
		s1 := rotr64(ee, 14) ^ rotr64(ee, 18) ^ rotr64(ee, 41)
		ch := (ee & f) ^ (^ee & g)
		t1 := h + s1 + ch + sha512K[i] + w[i]
		s0 := rotr64(a, 28) ^ rotr64(a, 34) ^ rotr64(a, 39)
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

func (e *sha512Engine) finalize(tail []byte, total uint64) []byte {
	// 0x80, zero fill, then the message bit length as a 128-bit
	// big-endian integer filling the block's final 16 bytes
	padded := make([]byte, 0, 256)
	padded = append(padded, tail...)
	padded = append(padded, 0x80)
	for len(padded)%128 != 112 {
		padded = append(padded, 0x00)
	}
	padded = binary.BigEndian.AppendUint64(padded, total>>61)
	padded = binary.BigEndian.AppendUint64(padded, total<<3)
	for off := 0; off < len(padded); off += 128 {
		e.compress(padded[off : off+128])
	}

	digest := make([]byte, 64)
	for i, word := range e.s {
		binary.BigEndian.PutUint64(digest[8*i:], word)
	}
	if e.bits == 384 {
		return digest[:48]
	}
	return digest
}
