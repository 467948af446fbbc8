package internals

import "encoding/binary"

// crc32Engine implements the cyclic redundancy check invented by
// W. Wesley Peterson (1961) with the reflected IEEE 802.3 polynomial.
// The running value starts at 0xFFFFFFFF, is updated through a
// 256-entry lookup table and finalized by XOR with 0xFFFFFFFF. CRC32
// consumes its input bytewise; the block size only governs buffering.
type crc32Engine struct {
	crc uint32
}

// reflected representation of the IEEE 802.3 polynomial
const crc32IEEEPoly = 0xedb88320

var crc32Table = makeCRC32Table()

func makeCRC32Table() *[256]uint32 {
	t := new([256]uint32)
	for i := range t {
		crc := uint32(i)
		for j := 0; j < 8; j++ {
			if crc&1 == 1 {
				crc = (crc >> 1) ^ crc32IEEEPoly
			} else {
				crc >>= 1
			}
		}
		t[i] = crc
	}
	return t
}

func newCRC32Engine() *crc32Engine {
	e := new(crc32Engine)
	e.reset()
	return e
}

func (e *crc32Engine) reset() {
	e.crc = 0xffffffff
}

func (e *crc32Engine) clone() engine {
	c := *e
	return &c
}

func (e *crc32Engine) update(data []byte) {
	crc := e.crc
	for _, b := range data {
		crc = crc32Table[byte(crc)^b] ^ (crc >> 8)
	}
	e.crc = crc
}

func (e *crc32Engine) compress(block []byte) {
	e.update(block)
}

func (e *crc32Engine) finalize(tail []byte, total uint64) []byte {
	e.update(tail)
	digest := make([]byte, 4)
	binary.BigEndian.PutUint32(digest, e.crc^0xffffffff)
	return digest
}
