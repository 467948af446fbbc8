package internals

import "encoding/binary"

// blake2bEngine implements the hash algorithm invented by
// Jean-Philippe Aumasson, Samuel Neves, Zooko Wilcox-O'Hearn and
// Christian Winnerlein (2012), specified in RFC 7693. The digest length
// and key length are folded into the IV through the parameter block
// (fanout 1, depth 1). The compression of the final block carries a
// finalization flag, so the facade withholds one buffered block until
// it knows whether more input follows.
type blake2bEngine struct {
	h          [8]uint64
	t0, t1     uint64 // 128-bit byte counter, includes the key block
	digestSize int
	keyLen     int
}

var blake2bIV = [8]uint64{
	0x6a09e667f3bcc908, 0xbb67ae8584caa73b,
	0x3c6ef372fe94f82b, 0xa54ff53a5f1d36f1,
	0x510e527fade682d1, 0x9b05688c2b3e6c1f,
	0x1f83d9abfb41bd6b, 0x5be0cd19137e2179,
}

var blake2bSigma = [10][16]int{
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
	{14, 10, 4, 8, 9, 15, 13, 6, 1, 12, 0, 2, 11, 7, 5, 3},
	{11, 8, 12, 0, 5, 2, 15, 13, 10, 14, 3, 6, 7, 1, 9, 4},
	{7, 9, 3, 1, 13, 12, 11, 14, 2, 6, 5, 10, 4, 0, 15, 8},
	{9, 0, 5, 7, 2, 4, 10, 15, 14, 1, 11, 12, 6, 8, 3, 13},
	{2, 12, 6, 10, 0, 11, 8, 3, 4, 13, 7, 5, 15, 14, 1, 9},
	{12, 5, 1, 15, 14, 13, 4, 10, 0, 7, 6, 3, 9, 2, 8, 11},
	{13, 11, 7, 14, 12, 1, 3, 9, 5, 0, 15, 4, 8, 6, 2, 10},
	{6, 15, 14, 9, 11, 3, 0, 8, 12, 2, 13, 7, 1, 4, 10, 5},
	{10, 2, 8, 4, 7, 6, 1, 5, 15, 11, 9, 14, 3, 12, 13, 0},
}

func newBlake2bEngine(digestSize int, key []byte) *blake2bEngine {
	e := &blake2bEngine{digestSize: digestSize, keyLen: len(key)}
	e.reset()
	return e
}

func (e *blake2bEngine) reset() {
	e.h = blake2bIV
	e.h[0] ^= uint64(e.digestSize) | uint64(e.keyLen)<<8 | 1<<16 | 1<<24
	e.t0 = 0
	e.t1 = 0
}

func (e *blake2bEngine) clone() engine {
	c := *e
	return &c
}

func (e *blake2bEngine) zeroize() {
	e.h = [8]uint64{}
	e.t0 = 0
	e.t1 = 0
}

func (e *blake2bEngine) addToCounter(n uint64) {
	e.t0 += n
	if e.t0 < n {
		e.t1++
	}
}

func (e *blake2bEngine) compress(block []byte) {
	e.addToCounter(128)
	e.f(block, false)
}

func (e *blake2bEngine) finalize(tail []byte, total uint64) []byte {
	e.addToCounter(uint64(len(tail)))
	var last [128]byte
	copy(last[:], tail)
	e.f(last[:], true)

	digest := make([]byte, 64)
	for i, word := range e.h {
		binary.LittleEndian.PutUint64(digest[8*i:], word)
	}
	return digest[:e.digestSize]
}

// f is the compression function F from RFC 7693 §3.2
func (e *blake2bEngine) f(block []byte, final bool) {
	var m [16]uint64
	for i := 0; i < 16; i++ {
		m[i] = binary.LittleEndian.Uint64(block[8*i:])
	}

	var v [16]uint64
	copy(v[:8], e.h[:])
	copy(v[8:], blake2bIV[:])
	v[12] ^= e.t0
	v[13] ^= e.t1
	if final {
		v[14] = ^v[14]
	}

	g := func(a, b, c, d int, x, y uint64) {
		v[a] = v[a] + v[b] + x
		v[d] = rotr64(v[d]^v[a], 32)
		v[c] = v[c] + v[d]
		v[b] = rotr64(v[b]^v[c], 24)
		v[a] = v[a] + v[b] + y
		v[d] = rotr64(v[d]^v[a], 16)
		v[c] = v[c] + v[d]
		v[b] = rotr64(v[b]^v[c], 63)
	}

	for round := 0; round < 12; round++ {
		s := &blake2bSigma[round%10]
		g(0, 4, 8, 12, m[s[0]], m[s[1]])
		g(1, 5, 9, 13, m[s[2]], m[s[3]])
		g(2, 6, 10, 14, m[s[4]], m[s[5]])
		g(3, 7, 11, 15, m[s[6]], m[s[7]])
		g(0, 5, 10, 15, m[s[8]], m[s[9]])
		g(1, 6, 11, 12, m[s[10]], m[s[11]])
		g(2, 7, 8, 13, m[s[12]], m[s[13]])
		g(3, 4, 9, 14, m[s[14]], m[s[15]])
	}

	for i := 0; i < 8; i++ {
		e.h[i] ^= v[i] ^ v[i+8]
	}
}

// NewBlake2b returns a Digester for BLAKE2b with the given digest size
// in bytes (1..64) and an optional key of up to 64 bytes. A keyed
// instance prepends the zero-padded key as the first input block; the
// key survives Init for reuse and is erased by Close.
func NewBlake2b(digestSize int, key []byte) (*Digester, error) {
	if digestSize < 1 || digestSize > 64 {
		return nil, &ParameterError{Parameter: `digestSize`, Reason: `must be within 1..64 bytes`}
	}
	if len(key) > 64 {
		return nil, &ParameterError{Parameter: `key`, Reason: `must not exceed 64 bytes`}
	}

	info := algoTable[HashBlake2b]
	info.digestSize = digestSize
	d := newDigester(HashBlake2b, info, newBlake2bEngine(digestSize, key))
	if len(key) > 0 {
		keyBlock := make([]byte, 128)
		copy(keyBlock, key)
		d.prefix = keyBlock
	}
	d.Init()
	return d, nil
}
