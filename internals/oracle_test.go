package internals

import (
	"bytes"
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"hash"
	"hash/crc32"
	"math/rand"
	"testing"

	"github.com/cespare/xxhash/v2"
	blake2bsimd "github.com/minio/blake2b-simd"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/md4"
	"golang.org/x/crypto/ripemd160"
	"golang.org/x/crypto/sha3"
)

// randomInputs produces a deterministic series of inputs whose lengths
// cover the interesting block-boundary neighbourhoods
func randomInputs() [][]byte {
	rng := rand.New(rand.NewSource(0x5eed))
	lengths := []int{0, 1, 3, 15, 16, 17, 31, 32, 33, 55, 56, 63, 64, 65,
		71, 72, 111, 112, 119, 120, 127, 128, 129, 135, 136, 143, 144,
		200, 1000, 4096, 10000}
	inputs := make([][]byte, 0, len(lengths))
	for _, n := range lengths {
		data := make([]byte, n)
		rng.Read(data)
		inputs = append(inputs, data)
	}
	return inputs
}

// TestAgainstReferenceImplementations cross-checks every algorithm
// except keccak-224, keccak-384 and the xxHash family against an
// independent implementation over varied input lengths
func TestAgainstReferenceImplementations(t *testing.T) {
	oracles := map[HashAlgo]func() hash.Hash{
		HashMD4:       md4.New,
		HashMD5:       md5.New,
		HashRIPEMD160: ripemd160.New,
		HashSHA1:      sha1.New,
		HashSHA224:    sha256.New224,
		HashSHA256:    sha256.New,
		HashSHA384:    sha512.New384,
		HashSHA512:    sha512.New,
		HashSHA3_224:  sha3.New224,
		HashSHA3_256:  sha3.New256,
		HashSHA3_384:  sha3.New384,
		HashSHA3_512:  sha3.New512,
		HashKeccak256: sha3.NewLegacyKeccak256,
		HashKeccak512: sha3.NewLegacyKeccak512,
		HashBlake2b: func() hash.Hash {
			h, err := blake2b.New512(nil)
			if err != nil {
				panic(err)
			}
			return h
		},
		HashCRC32: func() hash.Hash { return crc32.NewIEEE() },
	}

	for _, input := range randomInputs() {
		for algo, newOracle := range oracles {
			oracle := newOracle()
			oracle.Write(input)
			expected := oracle.Sum(nil)

			d := algo.New()
			actual := mustDigest(t, d, input)
			if !bytes.Equal(actual, expected) {
				t.Errorf(`%s digest differs from reference for input length %d`, algo, len(input))
			}
		}
	}
}

// TestXXHash64AgainstReference cross-checks the unseeded xxHash64
// against the cespare implementation
func TestXXHash64AgainstReference(t *testing.T) {
	for _, input := range randomInputs() {
		oracle := xxhash.New()
		oracle.Write(input)
		expected := oracle.Sum(nil)

		d := NewXXHash64(0, 0)
		actual := mustDigest(t, d, input)
		if !bytes.Equal(actual, expected) {
			t.Errorf(`xxhash64 digest differs from reference for input length %d`, len(input))
		}
	}
}

// TestKeyedBlake2bAgainstReference cross-checks keyed and truncated
// BLAKE2b variants against the minio implementation
func TestKeyedBlake2bAgainstReference(t *testing.T) {
	key := patternBytes(32)
	for _, digestSize := range []int{20, 32, 48, 64} {
		for _, input := range randomInputs() {
			oracle, err := blake2bsimd.New(&blake2bsimd.Config{
				Size: uint8(digestSize),
				Key:  key,
			})
			if err != nil {
				t.Fatal(err)
			}
			oracle.Write(input)
			expected := oracle.Sum(nil)

			d, err := NewBlake2b(digestSize, key)
			if err != nil {
				t.Fatal(err)
			}
			actual := mustDigest(t, d, input)
			if !bytes.Equal(actual, expected) {
				t.Errorf(`keyed blake2b-%d differs from reference for input length %d`, 8*digestSize, len(input))
			}
		}
	}
}
