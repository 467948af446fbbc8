package internals

import "encoding/binary"

// domain separation byte appended behind the message, before padding
const (
	dsSHA3   byte = 0x06 // FIPS 202 SHA3 variants
	dsKeccak byte = 0x01 // pre-standardization Keccak submission
)

// keccakEngine implements the sponge construction over the
// Keccak-f[1600] permutation invented by Guido Bertoni, Joan Daemen,
// Michaël Peeters and Gilles Van Assche (2008). It covers both the
// FIPS 202 SHA3 variants and the legacy Keccak variants, which differ
// only in the domain separation byte. The sponge rate doubles as the
// facade's block size; capacity is 1600 bits minus the rate.
type keccakEngine struct {
	a          [25]uint64 // lane state
	rate       int        // bytes absorbed/squeezed per permutation
	outputSize int
	dsbyte     byte
}

func newKeccakEngine(bits int, dsbyte byte) *keccakEngine {
	return &keccakEngine{
		rate:       200 - 2*(bits/8),
		outputSize: bits / 8,
		dsbyte:     dsbyte,
	}
}

func (e *keccakEngine) reset() {
	for i := range e.a {
		e.a[i] = 0
	}
}

func (e *keccakEngine) clone() engine {
	c := *e
	return &c
}

// compress XORs one rate-sized block into the lane state and permutes
func (e *keccakEngine) compress(block []byte) {
	for i := 0; i < len(block)/8; i++ {
		e.a[i] ^= binary.LittleEndian.Uint64(block[8*i:])
	}
	keccakF1600(&e.a)
}

func (e *keccakEngine) finalize(tail []byte, total uint64) []byte {
	// pad: domain separator behind the message, zero fill, final bit
	// of the rate set by XORing 0x80 into the block's last byte. The
	// two can coincide in the same byte when the tail fills the block
	// up to its final position.
	last := make([]byte, e.rate)
	copy(last, tail)
	last[len(tail)] ^= e.dsbyte
	last[e.rate-1] ^= 0x80
	e.compress(last)

	// squeeze; every supported output size fits within one rate
	digest := make([]byte, e.outputSize)
	for i := 0; i < (e.outputSize+7)/8; i++ {
		var lane [8]byte
		binary.LittleEndian.PutUint64(lane[:], e.a[i])
		copy(digest[8*i:], lane[:])
	}
	return digest
}

// NewKeccak returns a Digester for the Keccak family with the given
// output width in bits (224, 256, 384 or 512). With legacy set, the
// pre-standardization padding (domain byte 0x01) is used instead of
// the FIPS 202 SHA3 padding (0x06).
func NewKeccak(bits int, legacy bool) (*Digester, error) {
	var algo HashAlgo
	switch bits {
	case 224:
		algo = HashSHA3_224
	case 256:
		algo = HashSHA3_256
	case 384:
		algo = HashSHA3_384
	case 512:
		algo = HashSHA3_512
	default:
		return nil, &ParameterError{Parameter: `bits`, Reason: `must be one of 224, 256, 384, 512`}
	}
	if legacy {
		switch bits {
		case 224:
			algo = HashKeccak224
		case 256:
			algo = HashKeccak256
		case 384:
			algo = HashKeccak384
		case 512:
			algo = HashKeccak512
		}
	}
	return algo.New(), nil
}

// round constants for the ι step
var keccakRC = [24]uint64{
	0x0000000000000001, 0x0000000000008082, 0x800000000000808a, 0x8000000080008000,
	0x000000000000808b, 0x0000000080000001, 0x8000000080008081, 0x8000000000008009,
	0x000000000000008a, 0x0000000000000088, 0x0000000080008009, 0x000000008000000a,
	0x000000008000808b, 0x800000000000008b, 0x8000000000008089, 0x8000000000008003,
	0x8000000000008002, 0x8000000000000080, 0x000000000000800a, 0x800000008000000a,
	0x8000000080008081, 0x8000000000008080, 0x0000000080000001, 0x8000000080008008,
}

// rotation offsets for the ρ step, indexed in π permutation order
var keccakRotc = [24]uint{
	1, 3, 6, 10, 15, 21, 28, 36, 45, 55, 2, 14,
	27, 41, 56, 8, 25, 43, 62, 18, 39, 61, 20, 44,
}

// lane permutation for the π step
var keccakPiln = [24]int{
	10, 7, 11, 17, 18, 3, 5, 16, 8, 21, 24, 4,
	15, 23, 19, 13, 12, 2, 20, 14, 22, 9, 6, 1,
}

func rotl64(x uint64, n uint) uint64 {
	return x<<n | x>>(64-n)
}

// keccakF1600 applies the full 24-round Keccak-f[1600] permutation in place
func keccakF1600(a *[25]uint64) {
	var bc [5]uint64
	for round := 0; round < 24; round++ {
		// θ
		for i := 0; i < 5; i++ {
			bc[i] = a[i] ^ a[i+5] ^ a[i+10] ^ a[i+15] ^ a[i+20]
		}
		for i := 0; i < 5; i++ {
			t := bc[(i+4)%5] ^ rotl64(bc[(i+1)%5], 1)
			for j := 0; j < 25; j += 5 {
				a[j+i] ^= t
			}
		}

		// ρ and π
		t := a[1]
		for i := 0; i < 24; i++ {
			j := keccakPiln[i]
			bc[0] = a[j]
			a[j] = rotl64(t, keccakRotc[i])
			t = bc[0]
		}

		// χ
		for j := 0; j < 25; j += 5 {
			for i := 0; i < 5; i++ {
				bc[i] = a[j+i]
			}
			for i := 0; i < 5; i++ {
				a[j+i] ^= (^bc[(i+1)%5]) & bc[(i+2)%5]
			}
		}

		// ι
		a[0] ^= keccakRC[round]
	}
}
