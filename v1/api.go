package v1

import (
	"github.com/meisterluk/digests-go/internals"
)

const VERSION_MAJOR = 1
const VERSION_MINOR = 0
const VERSION_PATCH = 0
const RELEASE_DATE = "2026-08-06"

// SupportedHashAlgorithms returns the identifiers of all supported hash algorithms
func SupportedHashAlgorithms() []string {
	return internals.SupportedHashAlgorithms()
}

// HashOfBytes returns the hex-encoded digest of data under the given parameters
func HashOfBytes(data []byte, params HashParameters) (string, error) {
	algo, err := internals.HashAlgorithmFromString(params.HashAlgorithm)
	if err != nil {
		return ``, err
	}
	switch algo {
	case internals.HashBlake2b:
		length := params.Blake2bLength
		if length == 0 {
			length = 64
		}
		return internals.SumBlake2b(data, length, params.Blake2bKey)
	case internals.HashXXHash32:
		return internals.SumXXHash32(data, params.SeedLow)
	case internals.HashXXHash64:
		return internals.SumXXHash64(data, params.SeedLow, params.SeedHigh)
	}
	return internals.Sum(algo, data)
}

// HashOfFile returns the hex-encoded digest of the file's content
func HashOfFile(path string, params HashParameters) (string, error) {
	algo, err := internals.HashAlgorithmFromString(params.HashAlgorithm)
	if err != nil {
		return ``, err
	}

	var digester *internals.Digester
	switch algo {
	case internals.HashBlake2b:
		length := params.Blake2bLength
		if length == 0 {
			length = 64
		}
		digester, err = internals.NewBlake2b(length, params.Blake2bKey)
		if err != nil {
			return ``, err
		}
	case internals.HashXXHash32:
		digester = internals.NewXXHash32(params.SeedLow)
	case internals.HashXXHash64:
		digester = internals.NewXXHash64(params.SeedLow, params.SeedHigh)
	default:
		digester = algo.New()
	}

	if err := digester.ReadFile(path); err != nil {
		return ``, err
	}
	return digester.HexDigest()
}

// HMACOfBytes returns the hex-encoded HMAC tag of data under key
func HMACOfBytes(algorithm string, key, data []byte) (string, error) {
	algo, err := internals.HashAlgorithmFromString(algorithm)
	if err != nil {
		return ``, err
	}
	return internals.SumHMAC(algo, key, data)
}

// DeriveKey derives a key with PBKDF2 and returns its raw bytes
func DeriveKey(params DeriveKeyParameters) ([]byte, error) {
	algo, err := internals.HashAlgorithmFromString(params.HashAlgorithm)
	if err != nil {
		return nil, err
	}
	return internals.PBKDF2(params.Password, params.Salt, params.Iterations, params.Length, algo)
}
