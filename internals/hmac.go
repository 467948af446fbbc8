package internals

import "encoding/hex"

// HMAC implements the keyed message authentication construction from
// RFC 2104 over any hash algorithm satisfying the block/IV discipline.
// The inner and outer hasher states are snapshotted right after
// absorbing the key pads; Init restores both snapshots, so resetting
// for a new message never touches the key again. BLAKE2b, CRC32 and
// the xxHash family are rejected. An HMAC instance is not safe for
// concurrent use.
type HMAC struct {
	algo         HashAlgo
	inner, outer *Digester
	innerTpl     *Digester
	outerTpl     *Digester
	ipad, opad   []byte
}

// NewHMAC builds an HMAC instance for the given algorithm and key.
// Keys longer than the algorithm's block size are replaced by their
// digest before padding, per RFC 2104.
func NewHMAC(algo HashAlgo, key []byte) (*HMAC, error) {
	if _, err := HashAlgorithmFromString(string(algo)); err != nil {
		return nil, err
	}
	if !algo.SupportsHMAC() {
		return nil, &UnsupportedError{Algorithm: string(algo), Construction: `HMAC`}
	}

	blockSize := algo.BlockSize()
	if len(key) > blockSize {
		d := algo.New()
		if err := d.Update(key); err != nil {
			return nil, err
		}
		shrunk, err := d.Digest()
		if err != nil {
			return nil, err
		}
		key = shrunk
	}

	m := &HMAC{algo: algo}
	m.ipad = make([]byte, blockSize)
	m.opad = make([]byte, blockSize)
	copy(m.ipad, key)
	copy(m.opad, key)
	for i := 0; i < blockSize; i++ {
		m.ipad[i] ^= 0x36
		m.opad[i] ^= 0x5c
	}

	m.innerTpl = algo.New()
	m.innerTpl.Init()
	if err := m.innerTpl.Update(m.ipad); err != nil {
		return nil, err
	}
	m.outerTpl = algo.New()
	m.outerTpl.Init()
	if err := m.outerTpl.Update(m.opad); err != nil {
		return nil, err
	}

	m.Init()
	return m, nil
}

// Name returns the construction name, e.g. `hmac-sha-256`
func (m *HMAC) Name() string {
	return `hmac-` + string(m.algo)
}

// Size returns the number of bytes of the authentication tag
func (m *HMAC) Size() int {
	return m.algo.DigestSize()
}

// BlockSize returns the block size of the underlying hash algorithm
func (m *HMAC) BlockSize() int {
	return m.algo.BlockSize()
}

// Init restores the inner and outer hasher states to their key-pad
// templates, discarding any absorbed message.
func (m *HMAC) Init() {
	m.inner = m.innerTpl.clone()
	m.outer = m.outerTpl.clone()
}

// Update forwards message bytes to the inner hasher
func (m *HMAC) Update(data []byte) error {
	return m.inner.Update(data)
}

// Digest finalizes the inner hasher, feeds its digest to the outer
// hasher and returns the authentication tag. Like Digester.Digest it
// is single-shot; call Init before authenticating the next message.
func (m *HMAC) Digest() ([]byte, error) {
	innerDigest, err := m.inner.Digest()
	if err != nil {
		return nil, err
	}
	if err := m.outer.Update(innerDigest); err != nil {
		return nil, err
	}
	return m.outer.Digest()
}

// HexDigest finalizes like Digest and returns the tag
// encoded as a lowercase hexadecimal string
func (m *HMAC) HexDigest() (string, error) {
	raw, err := m.Digest()
	if err != nil {
		return ``, err
	}
	return hex.EncodeToString(raw), nil
}

// Close zeroises the derived key pads and the template snapshots.
// The instance must not be used afterwards.
func (m *HMAC) Close() {
	for i := range m.ipad {
		m.ipad[i] = 0
		m.opad[i] = 0
	}
	m.ipad = nil
	m.opad = nil
	for _, d := range []*Digester{m.innerTpl, m.outerTpl, m.inner, m.outer} {
		if d != nil {
			d.Close()
		}
	}
	m.innerTpl = nil
	m.outerTpl = nil
	m.inner = nil
	m.outer = nil
}
