package internals

import (
	"encoding/hex"
	"io"
	"os"
)

// engine is the algorithm-specific part behind the Digester facade.
// reset restores the IV, compress consumes exactly one full block,
// finalize pads the trailing buffer, encodes the message length where
// the algorithm demands it and serializes the digest. clone returns an
// independent deep copy of the current state (required for the HMAC
// template states).
type engine interface {
	reset()
	compress(block []byte)
	finalize(tail []byte, total uint64) []byte
	clone() engine
}

// phase of the hasher state machine, see Digester.
type phase int

const (
	phaseFresh phase = iota
	phaseAbsorbing
	phaseFinalized
)

func (p phase) String() string {
	switch p {
	case phaseFresh:
		return `fresh`
	case phaseAbsorbing:
		return `absorbing`
	case phaseFinalized:
		return `finalized`
	}
	return `unknown`
}

// Digester provides the uniform streaming contract over any hash
// algorithm: Init resets to the IV, Update absorbs any number of byte
// slices, Digest finalizes and emits the raw digest bytes. It buffers
// partial blocks, tracks the cumulative input length and enforces the
// fresh → absorbing → finalized phase machine. A Digester instance is
// not safe for concurrent use.
type Digester struct {
	algo       HashAlgo
	eng        engine
	blockSize  int
	digestSize int
	// deferFinal withholds one full block from compression because the
	// algorithm must know which compression is the last one (BLAKE2b).
	deferFinal bool
	// prefix is absorbed right after every Init without counting
	// towards the reported input length (the BLAKE2b key block).
	prefix []byte
	buf    []byte
	total  uint64
	ph     phase
}

func newDigester(algo HashAlgo, info algoInfo, eng engine) *Digester {
	d := &Digester{
		algo:       algo,
		eng:        eng,
		blockSize:  info.blockSize,
		digestSize: info.digestSize,
		buf:        make([]byte, 0, 2*info.blockSize),
	}
	if algo == HashBlake2b {
		d.deferFinal = true
	}
	d.eng.reset()
	d.buf = append(d.buf, d.prefix...)
	return d
}

// Name returns the hash algorithm's name
// in accordance with the design document
func (d *Digester) Name() string {
	return string(d.algo)
}

// BlockSize returns the input block width of the underlying algorithm in bytes
func (d *Digester) BlockSize() int {
	return d.blockSize
}

// Size returns the number of bytes of the digest
func (d *Digester) Size() int {
	return d.digestSize
}

// Init resets the hash state to the algorithm's IV. It may be called in
// any phase and is idempotent; afterwards the instance absorbs again.
func (d *Digester) Init() {
	d.eng.reset()
	d.buf = d.buf[:0]
	d.buf = append(d.buf, d.prefix...)
	d.total = 0
	d.ph = phaseAbsorbing
}

// Update appends data to the logical input. Any slice lengths including
// zero are permitted; `Update(a); Update(b)` is byte-for-byte equivalent
// to `Update(a ‖ b)`. Returns a UsageError after Digest until the next Init.
func (d *Digester) Update(data []byte) error {
	if d.ph == phaseFinalized {
		return &UsageError{Operation: `update`, Phase: d.ph.String()}
	}
	d.ph = phaseAbsorbing
	d.total += uint64(len(data))
	d.buf = append(d.buf, data...)
	d.compressBuffered()
	return nil
}

// compressBuffered feeds whole blocks to the engine and keeps the
// remainder. Engines with deferFinal keep one full block back since
// only a subsequent Update or Digest can tell whether it is the last.
func (d *Digester) compressBuffered() {
	low := d.blockSize
	if d.deferFinal {
		low++
	}
	off := 0
	for len(d.buf)-off >= low {
		d.eng.compress(d.buf[off : off+d.blockSize])
		off += d.blockSize
	}
	if off > 0 {
		rest := copy(d.buf, d.buf[off:])
		d.buf = d.buf[:rest]
	}
}

// Digest finalizes the hash computation (padding, length encoding,
// serialization) and returns the raw digest bytes. The instance
// transitions to the finalized phase: a second Digest or a further
// Update fails with a UsageError until Init is called. This single-shot
// rule holds uniformly, including for CRC32 and the xxHash family.
// Digest on a fresh instance yields the digest of the empty input.
func (d *Digester) Digest() ([]byte, error) {
	if d.ph == phaseFinalized {
		return nil, &UsageError{Operation: `digest`, Phase: d.ph.String()}
	}
	d.ph = phaseFinalized
	return d.eng.finalize(d.buf, d.total), nil
}

// HexDigest finalizes like Digest and returns the digest
// encoded as a lowercase hexadecimal string
func (d *Digester) HexDigest() (string, error) {
	raw, err := d.Digest()
	if err != nil {
		return ``, err
	}
	return hex.EncodeToString(raw), nil
}

// ReadBytes provides an interface to update the hash state with individual bytes
func (d *Digester) ReadBytes(data []byte) error {
	return d.Update(data)
}

// ReadFile provides an interface to update the hash state with the content of an entire file
func (d *Digester) ReadFile(filepath string) error {
	// open/close file
	fd, err := os.Open(filepath)
	if err != nil {
		return err
	}
	defer fd.Close()

	// read file
	chunk := make([]byte, 64*1024)
	for {
		n, err := fd.Read(chunk)
		if n > 0 {
			if uerr := d.Update(chunk[:n]); uerr != nil {
				return uerr
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// Close erases key material held by the hash state (the BLAKE2b key
// block). The instance remains usable after a subsequent Init, but a
// previously configured key is gone.
func (d *Digester) Close() {
	for i := range d.prefix {
		d.prefix[i] = 0
	}
	d.prefix = nil
	for i := range d.buf {
		d.buf[i] = 0
	}
	d.buf = d.buf[:0]
	if z, ok := d.eng.(interface{ zeroize() }); ok {
		z.zeroize()
	}
	// drop any key-derived chaining values back to the public IV
	d.eng.reset()
	d.ph = phaseFinalized
}

// clone returns an independent deep copy including the engine state.
func (d *Digester) clone() *Digester {
	c := *d
	c.eng = d.eng.clone()
	c.buf = make([]byte, len(d.buf), cap(d.buf))
	copy(c.buf, d.buf)
	if d.prefix != nil {
		c.prefix = make([]byte, len(d.prefix))
		copy(c.prefix, d.prefix)
	}
	return &c
}
