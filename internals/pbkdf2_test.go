package internals

import (
	"bytes"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"hash"
	"testing"

	"golang.org/x/crypto/pbkdf2"
)

// TestRFC6070Vectors checks the published PBKDF2-HMAC-SHA1 test cases
func TestRFC6070Vectors(t *testing.T) {
	cases := []struct {
		password   string
		salt       string
		iterations int
		keyLen     int
		expected   string
	}{
		{`password`, `salt`, 1, 20, `0c60c80f961f0e71f3a9b524af6012062fe037a6`},
		{`password`, `salt`, 2, 20, `ea6c014dc72d6f8ccd1ed92ace1d41f0d8de8957`},
		{`password`, `salt`, 4096, 20, `4b007901b765489abead49d926f721d065a429c1`},
		{`passwordPASSWORDpassword`, `saltSALTsaltSALTsaltSALTsaltSALTsalt`, 4096, 25,
			`3d2eec4fe41c849b80c8d83662c0e44a8b291a964cf2f07038`},
		{"pass\x00word", "sa\x00lt", 4096, 16, `56fa6aa75548099dcc37d7f03425e0c3`},
	}
	for _, c := range cases {
		derived, err := PBKDF2([]byte(c.password), []byte(c.salt), c.iterations, c.keyLen, HashSHA1)
		if err != nil {
			t.Fatal(err)
		}
		if hex.EncodeToString(derived) != c.expected {
			t.Errorf(`pbkdf2-sha-1 (%q, %q, %d, %d) incorrect: expected %s, got %s`,
				c.password, c.salt, c.iterations, c.keyLen, c.expected, hex.EncodeToString(derived))
		}
	}
}

// TestPBKDF2SHA256Vectors checks published PBKDF2-HMAC-SHA256 values
func TestPBKDF2SHA256Vectors(t *testing.T) {
	cases := []struct {
		iterations int
		expected   string
	}{
		{1, `120fb6cffcf8b32c43e7225256c4f837a86548c92ccc35480805987cb70be17b`},
		{2, `ae4d0c95af6b46d32d0adff928f06dd02a303f8ef3c251dfd6e2d85a95474c43`},
		{4096, `c5e478d59288c841aa530db6845c4c8d962893a001ce4e11a4963873aa98134a`},
	}
	for _, c := range cases {
		derived, err := PBKDF2([]byte(`password`), []byte(`salt`), c.iterations, 32, HashSHA256)
		if err != nil {
			t.Fatal(err)
		}
		if hex.EncodeToString(derived) != c.expected {
			t.Errorf(`pbkdf2-sha-256 with %d iterations incorrect: expected %s, got %s`,
				c.iterations, c.expected, hex.EncodeToString(derived))
		}
	}
}

// TestPBKDF2TruncationLaw checks that a shorter requested key is a
// prefix of a longer one under identical parameters
func TestPBKDF2TruncationLaw(t *testing.T) {
	long, err := PBKDF2([]byte(`password`), []byte(`salt`), 16, 100, HashSHA256)
	if err != nil {
		t.Fatal(err)
	}
	for _, keyLen := range []int{1, 31, 32, 33, 64, 99} {
		short, err := PBKDF2([]byte(`password`), []byte(`salt`), 16, keyLen, HashSHA256)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(short, long[:keyLen]) {
			t.Errorf(`pbkdf2 output for keyLen %d is not a prefix of the longer output`, keyLen)
		}
	}
}

// oracleConstructor returns the stdlib hash constructor matching algo
// (sha-1 or sha-512; anything else maps to sha-256)
func oracleConstructor(algo HashAlgo) func() hash.Hash {
	switch algo {
	case HashSHA1:
		return sha1.New
	case HashSHA512:
		return sha512.New
	}
	return sha256.New
}

// TestPBKDF2AgainstReference cross-checks against x/crypto/pbkdf2
// for several underlying hash algorithms
func TestPBKDF2AgainstReference(t *testing.T) {
	refs := []struct {
		algo   HashAlgo
		keyLen int
	}{
		{HashSHA1, 20},
		{HashSHA1, 37},
		{HashSHA256, 32},
		{HashSHA256, 80},
		{HashSHA512, 64},
		{HashSHA512, 17},
	}
	for _, ref := range refs {
		expected := pbkdf2.Key([]byte(`secret pass`), []byte(`pepper`), 64, ref.keyLen, oracleConstructor(ref.algo))
		actual, err := PBKDF2([]byte(`secret pass`), []byte(`pepper`), 64, ref.keyLen, ref.algo)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(actual, expected) {
			t.Errorf(`pbkdf2-%s differs from reference for keyLen %d`, ref.algo, ref.keyLen)
		}
	}
}

// TestPBKDF2ParameterValidation checks the rejection surface
func TestPBKDF2ParameterValidation(t *testing.T) {
	var param *ParameterError
	if _, err := PBKDF2([]byte(`p`), []byte(`s`), 0, 32, HashSHA256); !errors.As(err, &param) {
		t.Errorf(`expected ParameterError for zero iterations, got %v`, err)
	}
	if _, err := PBKDF2([]byte(`p`), []byte(`s`), -3, 32, HashSHA256); !errors.As(err, &param) {
		t.Errorf(`expected ParameterError for negative iterations, got %v`, err)
	}
	if _, err := PBKDF2([]byte(`p`), []byte(`s`), 1, 0, HashSHA256); !errors.As(err, &param) {
		t.Errorf(`expected ParameterError for zero key length, got %v`, err)
	}

	var unsupported *UnsupportedError
	if _, err := PBKDF2([]byte(`p`), []byte(`s`), 1, 32, HashXXHash64); !errors.As(err, &unsupported) {
		t.Errorf(`expected UnsupportedError for pbkdf2 over xxhash64, got %v`, err)
	}
}
