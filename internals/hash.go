package internals

import (
	"fmt"
	"strings"
)

// HashAlgo is an alias for string, but specifically can only
// be one of the identifiers for hash algorithms.
type HashAlgo string

const (
	HashMD4       HashAlgo = `md4`
	HashMD5       HashAlgo = `md5`
	HashRIPEMD160 HashAlgo = `ripemd-160`
	HashSHA1      HashAlgo = `sha-1`
	HashSHA224    HashAlgo = `sha-224`
	HashSHA256    HashAlgo = `sha-256`
	HashSHA384    HashAlgo = `sha-384`
	HashSHA512    HashAlgo = `sha-512`
	HashSHA3_224  HashAlgo = `sha-3-224`
	HashSHA3_256  HashAlgo = `sha-3-256`
	HashSHA3_384  HashAlgo = `sha-3-384`
	HashSHA3_512  HashAlgo = `sha-3-512`
	HashKeccak224 HashAlgo = `keccak-224`
	HashKeccak256 HashAlgo = `keccak-256`
	HashKeccak384 HashAlgo = `keccak-384`
	HashKeccak512 HashAlgo = `keccak-512`
	HashBlake2b   HashAlgo = `blake2b`
	HashCRC32     HashAlgo = `crc32`
	HashXXHash32  HashAlgo = `xxhash32`
	HashXXHash64  HashAlgo = `xxhash64`
)

// algoInfo collects the static properties of one hash algorithm:
// the input block width its compression function consumes, the
// digest output width, whether the algorithm is admissible under
// HMAC and a constructor for its engine with default parameters.
type algoInfo struct {
	blockSize  int
	digestSize int
	hmac       bool
	newEngine  func() engine
}

var algoTable = map[HashAlgo]algoInfo{
	HashMD4:       {64, 16, true, func() engine { return newMD4Engine() }},
	HashMD5:       {64, 16, true, func() engine { return newMD5Engine() }},
	HashRIPEMD160: {64, 20, true, func() engine { return newRIPEMD160Engine() }},
	HashSHA1:      {64, 20, true, func() engine { return newSHA1Engine() }},
	HashSHA224:    {64, 28, true, func() engine { return newSHA2Engine(224) }},
	HashSHA256:    {64, 32, true, func() engine { return newSHA2Engine(256) }},
	HashSHA384:    {128, 48, true, func() engine { return newSHA512Engine(384) }},
	HashSHA512:    {128, 64, true, func() engine { return newSHA512Engine(512) }},
	HashSHA3_224:  {144, 28, true, func() engine { return newKeccakEngine(224, dsSHA3) }},
	HashSHA3_256:  {136, 32, true, func() engine { return newKeccakEngine(256, dsSHA3) }},
	HashSHA3_384:  {104, 48, true, func() engine { return newKeccakEngine(384, dsSHA3) }},
	HashSHA3_512:  {72, 64, true, func() engine { return newKeccakEngine(512, dsSHA3) }},
	HashKeccak224: {144, 28, true, func() engine { return newKeccakEngine(224, dsKeccak) }},
	HashKeccak256: {136, 32, true, func() engine { return newKeccakEngine(256, dsKeccak) }},
	HashKeccak384: {104, 48, true, func() engine { return newKeccakEngine(384, dsKeccak) }},
	HashKeccak512: {72, 64, true, func() engine { return newKeccakEngine(512, dsKeccak) }},
	HashBlake2b:   {128, 64, false, func() engine { return newBlake2bEngine(64, nil) }},
	HashCRC32:     {64, 4, false, func() engine { return newCRC32Engine() }},
	HashXXHash32:  {16, 4, false, func() engine { return newXXHash32Engine(0) }},
	HashXXHash64:  {32, 8, false, func() engine { return newXXHash64Engine(0) }},
}

// SupportedHashAlgorithms returns the list of supported hash algorithms.
// The slice contains specified hash algorithm identifiers
func SupportedHashAlgorithms() []string {
	return []string{
		string(HashMD4),
		string(HashMD5),
		string(HashRIPEMD160),
		string(HashSHA1),
		string(HashSHA224),
		string(HashSHA256),
		string(HashSHA384),
		string(HashSHA512),
		string(HashSHA3_224),
		string(HashSHA3_256),
		string(HashSHA3_384),
		string(HashSHA3_512),
		string(HashKeccak224),
		string(HashKeccak256),
		string(HashKeccak384),
		string(HashKeccak512),
		string(HashBlake2b),
		string(HashCRC32),
		string(HashXXHash32),
		string(HashXXHash64),
	}
}

// HashAlgorithmFromString returns a HashAlgo instance, given the hash algorithm's name as a string
func HashAlgorithmFromString(name string) (HashAlgo, error) {
	name = strings.ToLower(name)
	for _, algo := range SupportedHashAlgorithms() {
		if name == algo {
			return HashAlgo(algo), nil
		}
	}
	return HashAlgo(``), fmt.Errorf(`unknown hash algorithm %q`, name)
}

// BlockSize returns the input block width in bytes the algorithm's
// compression function consumes. For the Keccak family this is the
// sponge rate. CRC32 processes its input bytewise; the reported
// block size only governs internal buffering.
func (h HashAlgo) BlockSize() int {
	return algoTable[h].blockSize
}

// DigestSize returns the output size in bytes for a given hash algorithm.
func (h HashAlgo) DigestSize() int {
	return algoTable[h].digestSize
}

// SupportsHMAC reports whether the algorithm satisfies the block/IV
// discipline HMAC requires. BLAKE2b (keyed natively), CRC32 and the
// xxHash family do not.
func (h HashAlgo) SupportsHMAC() bool {
	return algoTable[h].hmac
}

// New returns a fresh Digester for the given hash algorithm
// with default parameters (unkeyed BLAKE2b-512, seed 0 for xxHash).
func (h HashAlgo) New() *Digester {
	info, ok := algoTable[h]
	if !ok {
		return nil
	}
	return newDigester(h, info, info.newEngine())
}
