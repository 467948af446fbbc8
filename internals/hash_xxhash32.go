package internals

import "encoding/binary"

// xxhash32Engine implements the seeded non-cryptographic hash
// algorithm invented by Yann Collet (2012). Four accumulators each
// consume one 32-bit word per 16-byte stripe; inputs shorter than one
// stripe bypass the accumulators and start from the seed directly.
type xxhash32Engine struct {
	v1, v2, v3, v4 uint32
	seed           uint32
	sawStripe      bool
}

const (
	xxh32Prime1 uint32 = 2654435761
	xxh32Prime2 uint32 = 2246822519
	xxh32Prime3 uint32 = 3266489917
	xxh32Prime4 uint32 = 668265263
	xxh32Prime5 uint32 = 374761393
)

func newXXHash32Engine(seed uint32) *xxhash32Engine {
	e := &xxhash32Engine{seed: seed}
	e.reset()
	return e
}

func (e *xxhash32Engine) reset() {
	e.v1 = e.seed + xxh32Prime1 + xxh32Prime2
	e.v2 = e.seed + xxh32Prime2
	e.v3 = e.seed
	e.v4 = e.seed - xxh32Prime1
	e.sawStripe = false
}

func (e *xxhash32Engine) clone() engine {
	c := *e
	return &c
}

func xxh32Round(acc, input uint32) uint32 {
	acc += input * xxh32Prime2
	acc = rotl32(acc, 13)
	acc *= xxh32Prime1
	return acc
}

func (e *xxhash32Engine) compress(block []byte) {
	e.v1 = xxh32Round(e.v1, binary.LittleEndian.Uint32(block[0:]))
	e.v2 = xxh32Round(e.v2, binary.LittleEndian.Uint32(block[4:]))
	e.v3 = xxh32Round(e.v3, binary.LittleEndian.Uint32(block[8:]))
	e.v4 = xxh32Round(e.v4, binary.LittleEndian.Uint32(block[12:]))
	e.sawStripe = true
}

func (e *xxhash32Engine) finalize(tail []byte, total uint64) []byte {
	var h uint32
	if e.sawStripe {
		h = rotl32(e.v1, 1) + rotl32(e.v2, 7) + rotl32(e.v3, 12) + rotl32(e.v4, 18)
	} else {
		h = e.seed + xxh32Prime5
	}
	h += uint32(total)

	for len(tail) >= 4 {
		h += binary.LittleEndian.Uint32(tail) * xxh32Prime3
		h = rotl32(h, 17) * xxh32Prime4
		tail = tail[4:]
	}
	for _, b := range tail {
		h += uint32(b) * xxh32Prime5
		h = rotl32(h, 11) * xxh32Prime1
	}

	// avalanche
	h ^= h >> 15
	h *= xxh32Prime2
	h ^= h >> 13
	h *= xxh32Prime3
	h ^= h >> 16

	digest := make([]byte, 4)
	binary.BigEndian.PutUint32(digest, h)
	return digest
}

// NewXXHash32 returns a Digester for xxHash32 with the given seed.
func NewXXHash32(seed uint32) *Digester {
	d := newDigester(HashXXHash32, algoTable[HashXXHash32], newXXHash32Engine(seed))
	return d
}
