package internals

import "sync"

// The short-form functions below digest a byte slice in one call and
// return the lowercase hexadecimal representation. Fixed-parameter
// variants route through a shared Digester cached per algorithm;
// concurrent one-shot calls for the same algorithm serialize on its
// mutex. Callers needing parallel or interleaved hashing obtain their
// own instances through the streaming constructors instead.

type pooledDigester struct {
	mu sync.Mutex
	d  *Digester
}

var poolMu sync.Mutex
var pool = make(map[HashAlgo]*pooledDigester)

func sharedDigester(algo HashAlgo) *pooledDigester {
	poolMu.Lock()
	defer poolMu.Unlock()
	p, ok := pool[algo]
	if !ok {
		p = &pooledDigester{d: algo.New()}
		pool[algo] = p
	}
	return p
}

// Sum computes the digest of data under the given algorithm with
// default parameters and returns it hex-encoded.
func Sum(algo HashAlgo, data []byte) (string, error) {
	if _, err := HashAlgorithmFromString(string(algo)); err != nil {
		return ``, err
	}
	p := sharedDigester(algo)
	p.mu.Lock()
	defer p.mu.Unlock()

	p.d.Init()
	if err := p.d.Update(data); err != nil {
		return ``, err
	}
	return p.d.HexDigest()
}

// SumMD4 returns the hex-encoded MD4 digest of data
func SumMD4(data []byte) (string, error) { return Sum(HashMD4, data) }

// SumMD5 returns the hex-encoded MD5 digest of data
func SumMD5(data []byte) (string, error) { return Sum(HashMD5, data) }

// SumRIPEMD160 returns the hex-encoded RIPEMD-160 digest of data
func SumRIPEMD160(data []byte) (string, error) { return Sum(HashRIPEMD160, data) }

// SumSHA1 returns the hex-encoded SHA-1 digest of data
func SumSHA1(data []byte) (string, error) { return Sum(HashSHA1, data) }

// SumSHA224 returns the hex-encoded SHA-224 digest of data
func SumSHA224(data []byte) (string, error) { return Sum(HashSHA224, data) }

// SumSHA256 returns the hex-encoded SHA-256 digest of data
func SumSHA256(data []byte) (string, error) { return Sum(HashSHA256, data) }

// SumSHA384 returns the hex-encoded SHA-384 digest of data
func SumSHA384(data []byte) (string, error) { return Sum(HashSHA384, data) }

// SumSHA512 returns the hex-encoded SHA-512 digest of data
func SumSHA512(data []byte) (string, error) { return Sum(HashSHA512, data) }

// SumSHA3 returns the hex-encoded SHA3 digest of data for the given
// output width in bits (224, 256, 384 or 512)
func SumSHA3(data []byte, bits int) (string, error) {
	algo, err := keccakAlgo(bits, false)
	if err != nil {
		return ``, err
	}
	return Sum(algo, data)
}

// SumKeccak returns the hex-encoded legacy Keccak digest of data for
// the given output width in bits (224, 256, 384 or 512)
func SumKeccak(data []byte, bits int) (string, error) {
	algo, err := keccakAlgo(bits, true)
	if err != nil {
		return ``, err
	}
	return Sum(algo, data)
}

func keccakAlgo(bits int, legacy bool) (HashAlgo, error) {
	switch bits {
	case 224:
		if legacy {
			return HashKeccak224, nil
		}
		return HashSHA3_224, nil
	case 256:
		if legacy {
			return HashKeccak256, nil
		}
		return HashSHA3_256, nil
	case 384:
		if legacy {
			return HashKeccak384, nil
		}
		return HashSHA3_384, nil
	case 512:
		if legacy {
			return HashKeccak512, nil
		}
		return HashSHA3_512, nil
	}
	return ``, &ParameterError{Parameter: `bits`, Reason: `must be one of 224, 256, 384, 512`}
}

// SumBlake2b returns the hex-encoded BLAKE2b digest of data with the
// given digest size in bytes and optional key. The default variant
// (64 bytes, unkeyed) goes through the shared pool; any other
// parameter set uses a throwaway instance, since keyed states must
// not linger in a cache.
func SumBlake2b(data []byte, digestSize int, key []byte) (string, error) {
	if digestSize == 64 && len(key) == 0 {
		return Sum(HashBlake2b, data)
	}
	d, err := NewBlake2b(digestSize, key)
	if err != nil {
		return ``, err
	}
	defer d.Close()
	if err := d.Update(data); err != nil {
		return ``, err
	}
	return d.HexDigest()
}

// SumCRC32 returns the hex-encoded CRC32 checksum of data
func SumCRC32(data []byte) (string, error) { return Sum(HashCRC32, data) }

// SumXXHash32 returns the hex-encoded xxHash32 digest of data with the
// given seed. Seed 0 goes through the shared pool.
func SumXXHash32(data []byte, seed uint32) (string, error) {
	if seed == 0 {
		return Sum(HashXXHash32, data)
	}
	d := NewXXHash32(seed)
	if err := d.Update(data); err != nil {
		return ``, err
	}
	return d.HexDigest()
}

// SumXXHash64 returns the hex-encoded xxHash64 digest of data with the
// seed given as two 32-bit halves. Seed 0 goes through the shared pool.
func SumXXHash64(data []byte, seedLow, seedHigh uint32) (string, error) {
	if seedLow == 0 && seedHigh == 0 {
		return Sum(HashXXHash64, data)
	}
	d := NewXXHash64(seedLow, seedHigh)
	if err := d.Update(data); err != nil {
		return ``, err
	}
	return d.HexDigest()
}

// SumHMAC returns the hex-encoded HMAC tag of data under the given
// hash algorithm and key. The HMAC state is throwaway; key material is
// zeroised before returning.
func SumHMAC(algo HashAlgo, key, data []byte) (string, error) {
	mac, err := NewHMAC(algo, key)
	if err != nil {
		return ``, err
	}
	defer mac.Close()
	if err := mac.Update(data); err != nil {
		return ``, err
	}
	return mac.HexDigest()
}
