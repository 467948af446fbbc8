package internals

import "encoding/binary"

// PBKDF2 derives a key of keyLen bytes from the password and salt by
// iterated HMAC, per RFC 2898. A single HMAC instance carries the
// key-pad template states across all block and iteration rounds, so
// the pads are derived exactly once per call. The hash algorithm must
// be HMAC-capable; iterations and keyLen must be positive and keyLen
// must not exceed (2^32 − 1) · digestSize.
func PBKDF2(password, salt []byte, iterations, keyLen int, algo HashAlgo) ([]byte, error) {
	if iterations < 1 {
		return nil, &ParameterError{Parameter: `iterations`, Reason: `must be a positive integer`}
	}
	if keyLen < 1 {
		return nil, &ParameterError{Parameter: `keyLen`, Reason: `must be a positive integer`}
	}

	mac, err := NewHMAC(algo, password)
	if err != nil {
		return nil, err
	}
	defer mac.Close()

	hashLen := mac.Size()
	if uint64(keyLen) > (1<<32-1)*uint64(hashLen) {
		return nil, &ParameterError{Parameter: `keyLen`, Reason: `exceeds (2^32 - 1) times the digest size`}
	}

	numBlocks := (keyLen + hashLen - 1) / hashLen
	derived := make([]byte, 0, numBlocks*hashLen)
	var blockIndex [4]byte

	for block := 1; block <= numBlocks; block++ {
		// U_1 = HMAC(password, salt ‖ BE32(block))
		mac.Init()
		if err := mac.Update(salt); err != nil {
			return nil, err
		}
		binary.BigEndian.PutUint32(blockIndex[:], uint32(block))
		if err := mac.Update(blockIndex[:]); err != nil {
			return nil, err
		}
		u, err := mac.Digest()
		if err != nil {
			return nil, err
		}

		// T = U_1 ⊕ U_2 ⊕ … ⊕ U_c with U_j = HMAC(password, U_{j-1})
		t := make([]byte, hashLen)
		copy(t, u)
		for iter := 1; iter < iterations; iter++ {
			mac.Init()
			if err := mac.Update(u); err != nil {
				return nil, err
			}
			u, err = mac.Digest()
			if err != nil {
				return nil, err
			}
			xorByteSlices(t, u)
		}
		derived = append(derived, t...)
	}

	return derived[:keyLen], nil
}

// xorByteSlices takes byte slices x and y and updates x with x xor y.
// NOTE assumes x and y have same length.
func xorByteSlices(x, y []byte) {
	for i := 0; i < len(x); i++ {
		x[i] = x[i] ^ y[i]
	}
}
