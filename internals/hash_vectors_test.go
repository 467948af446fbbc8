package internals

import "testing"

// TestAllHashAlgosDefined checks that every identifier returned by
// SupportedHashAlgorithms resolves to a working Digester
func TestAllHashAlgosDefined(t *testing.T) {
	for _, name := range SupportedHashAlgorithms() {
		algo, err := HashAlgorithmFromString(name)
		if err != nil {
			t.Fatalf(`algorithm '%s' listed but not resolvable: %s`, name, err)
		}
		d := algo.New()
		if d == nil {
			t.Fatalf(`algorithm '%s' has no constructor`, name)
		}
		if d.Name() != name {
			t.Errorf(`expected name %s, got %s`, name, d.Name())
		}
		if d.Size() != algo.DigestSize() {
			t.Errorf(`%s: Size() %d does not match DigestSize() %d`, name, d.Size(), algo.DigestSize())
		}
	}
}

func TestUnknownHashAlgorithm(t *testing.T) {
	_, err := HashAlgorithmFromString(`sha-42`)
	if err == nil {
		t.Error(`expected error for unknown hash algorithm 'sha-42'`)
	}
}

// TestEmptyInputDigests verifies the documented empty-string digest
// for every algorithm with default parameters
func TestEmptyInputDigests(t *testing.T) {
	data := map[HashAlgo]string{
		HashMD4:       `31d6cfe0d16ae931b73c59d7e0c089c0`,
		HashMD5:       `d41d8cd98f00b204e9800998ecf8427e`,
		HashRIPEMD160: `9c1185a5c5e9fc54612808977ee8f548b2258d31`,
		HashSHA1:      `da39a3ee5e6b4b0d3255bfef95601890afd80709`,
		HashSHA224:    `d14a028c2a3a2bc9476102bb288234c415a2b01f828ea62ac5b3e42f`,
		HashSHA256:    `e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855`,
		HashSHA384:    `38b060a751ac96384cd9327eb1b1e36a21fdb71114be07434c0cc7bf63f6e1da274edebfe76f65fbd51ad2f14898b95b`,
		HashSHA512:    `cf83e1357eefb8bdf1542850d66d8007d620e4050b5715dc83f4a921d36ce9ce47d0d13c5d85f2b0ff8318d2877eec2f63b931bd47417a81a538327af927da3e`,
		HashSHA3_224:  `6b4e03423667dbb73b6e15454f0eb1abd4597f9a1b078e3f5b5a6bc7`,
		HashSHA3_256:  `a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a`,
		HashSHA3_384:  `0c63a75b845e4f7d01107d852e4c2485c51a50aaaa94fc61995e71bbee983a2ac3713831264adb47fb6bd1e058d5f004`,
		HashSHA3_512:  `a69f73cca23a9ac5c8b567dc185a756e97c982164fe25859e0d1dcc1475c80a615b2123af1f5f94c11e3e9402c3ac558f500199d95b6d3e301758586281dcd26`,
		HashKeccak224: `f71837502ba8e10837bdd8d365adb85591895602fc552b48b7390abd`,
		HashKeccak256: `c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470`,
		HashKeccak384: `2c23146a63a29acf99e73b88f8c24eaa7dc60aa771780ccc006afbfa8fe2479b2dd2b21362337441ac12b515911957ff`,
		HashKeccak512: `0eab42de4c3ceb9235fc91acffe746b29c29a8c366b7c60e4e67c466f36a4304c00fa9caf9d87976ba469bcbe06713b435f091ef2769fb160cdab33d3670680e`,
		HashBlake2b:   `786a02f742015903c6c6fd852552d272912f4740e15847618a86e217f71f5419d25e1031afee585313896444934eb04b903a685b1448b755d56f701afe9be2ce`,
		HashCRC32:     `00000000`,
		HashXXHash32:  `02cc5d05`,
		HashXXHash64:  `ef46db3751d8e999`,
	}
	for algo, refDigest := range data {
		d := algo.New()
		actual, err := d.HexDigest()
		if err != nil {
			t.Fatal(err)
		}
		if actual != refDigest {
			t.Errorf(`empty-input digest incorrect (%s): expected %s, got %s`, algo, refDigest, actual)
		}
	}
}

// TestABCDigests verifies the digest of the three-byte input "abc"
// with default parameters for every algorithm except keccak-224,
// keccak-384 and keccak-512
func TestABCDigests(t *testing.T) {
	data := map[HashAlgo]string{
		HashMD4:       `a448017aaf21d8525fc10ae87aa6729d`,
		HashMD5:       `900150983cd24fb0d6963f7d28e17f72`,
		HashRIPEMD160: `8eb208f7e05d987a9b044a8e98c6b087f15a0bfc`,
		HashSHA1:      `a9993e364706816aba3e25717850c26c9cd0d89d`,
		HashSHA224:    `23097d223405d8228642a477bda255b32aadbce4bda0b3f7e36c9da7`,
		HashSHA256:    `ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad`,
		HashSHA384:    `cb00753f45a35e8bb5a03d699ac65007272c32ab0eded1631a8b605a43ff5bed8086072ba1e7cc2358baeca134c825a7`,
		HashSHA512:    `ddaf35a193617abacc417349ae20413112e6fa4e89a97ea20a9eeee64b55d39a2192992a274fc1a836ba3c23a3feebbd454d4423643ce80e2a9ac94fa54ca49f`,
		HashSHA3_224:  `e642824c3f8cf24ad09234ee7d3c766fc9a3a5168d0c94ad73b46fdf`,
		HashSHA3_256:  `3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532`,
		HashSHA3_384:  `ec01498288516fc926459f58e2c6ad8df9b473cb0fc08c2596da7cf0e49be4b298d88cea927ac7f539f1edf228376d25`,
		HashSHA3_512:  `b751850b1a57168a5693cd924b6b096e08f621827444f70d884f5d0240d2712e10e116e9192af3c91a7ec57647e3934057340b4cf408d5a56592f8274eec53f0`,
		HashKeccak256: `4e03657aea45a94fc7d47ba826c8d667c0d1e6e33a64a036ec44f58fa12d6c45`,
		HashBlake2b:   `ba80a53f981c4d0d6a2797b69f12f6e94c212f14685ac4b74b12bb6fdbffa2d17d87c5392aab792dc252d5de4533cc9518d38aa8dbf1925ab92386edd4009923`,
		HashCRC32:     `352441c2`,
		HashXXHash32:  `32d153ff`,
		HashXXHash64:  `44bc2cf5ad770999`,
	}
	for algo, refDigest := range data {
		d := algo.New()
		if err := d.ReadBytes([]byte(`abc`)); err != nil {
			t.Fatal(err)
		}
		actual, err := d.HexDigest()
		if err != nil {
			t.Fatal(err)
		}
		if actual != refDigest {
			t.Errorf(`digest for "abc" incorrect (%s): expected %s, got %s`, algo, refDigest, actual)
		}
	}
}

// TestTwoBlockDigests exercises a 56-byte input whose padding and
// length trailer spill into a second block (Merkle–Damgård family)
func TestTwoBlockDigests(t *testing.T) {
	input := `abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq`
	data := map[HashAlgo]string{
		HashSHA1:   `84983e441c3bd26ebaae4aa1f95129e5e54670f1`,
		HashSHA256: `248d6a61d20638b8e5c026930c3e6039a33ce45964ff2167f6ecedd419db06c1`,
	}
	for algo, refDigest := range data {
		d := algo.New()
		if err := d.ReadBytes([]byte(input)); err != nil {
			t.Fatal(err)
		}
		actual, err := d.HexDigest()
		if err != nil {
			t.Fatal(err)
		}
		if actual != refDigest {
			t.Errorf(`two-block digest incorrect (%s): expected %s, got %s`, algo, refDigest, actual)
		}
	}
}

func TestRFC1321Suite(t *testing.T) {
	data := map[string]string{
		`a`:                          `0cc175b9c0f1b6a831c399e269772661`,
		`message digest`:             `f96b697d7cb7938d525a2f31aaf161d0`,
		`abcdefghijklmnopqrstuvwxyz`: `c3fcd3d76192e4007dfb496cca67e13b`,
		`ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789`: `d174ab98d277d9f5a5611c2c9f419d9f`,
	}
	for input, refDigest := range data {
		d := HashMD5.New()
		if err := d.Update([]byte(input)); err != nil {
			t.Fatal(err)
		}
		actual, err := d.HexDigest()
		if err != nil {
			t.Fatal(err)
		}
		if actual != refDigest {
			t.Errorf(`md5 digest for %q incorrect: expected %s, got %s`, input, refDigest, actual)
		}
	}
}

func TestCRC32CheckValue(t *testing.T) {
	digest, err := SumCRC32([]byte(`123456789`))
	if err != nil {
		t.Fatal(err)
	}
	if digest != `cbf43926` {
		t.Errorf(`crc32 check value incorrect: expected cbf43926, got %s`, digest)
	}
}

// TestBlake2bKeyedEmptyInput checks the first known-answer vector of
// the keyed BLAKE2b suite: the 64-byte key 00..3f over the empty input.
// The result must differ from the unkeyed hash of the key itself.
func TestBlake2bKeyedEmptyInput(t *testing.T) {
	key := make([]byte, 64)
	for i := range key {
		key[i] = byte(i)
	}
	expected := `10ebb67700b1868efb4417987acf4690ae9d972fb7a590c2f02871799aaa4786` +
		`b5e996e8f0f4eb981fc214b005f42d2ff4233499391653df7aefcbc13fc51568`

	d, err := NewBlake2b(64, key)
	if err != nil {
		t.Fatal(err)
	}
	actual, err := d.HexDigest()
	if err != nil {
		t.Fatal(err)
	}
	if actual != expected {
		t.Errorf(`keyed blake2b digest incorrect: expected %s, got %s`, expected, actual)
	}

	unkeyed := HashBlake2b.New()
	if err := unkeyed.Update(key); err != nil {
		t.Fatal(err)
	}
	hashOfKey, err := unkeyed.HexDigest()
	if err != nil {
		t.Fatal(err)
	}
	if hashOfKey == actual {
		t.Error(`keyed empty-input digest must not equal the unkeyed hash of the key`)
	}
}

func TestBlake2bParameterValidation(t *testing.T) {
	if _, err := NewBlake2b(0, nil); err == nil {
		t.Error(`expected ParameterError for digest size 0`)
	}
	if _, err := NewBlake2b(65, nil); err == nil {
		t.Error(`expected ParameterError for digest size 65`)
	}
	if _, err := NewBlake2b(64, make([]byte, 65)); err == nil {
		t.Error(`expected ParameterError for 65-byte key`)
	}
	if _, err := NewKeccak(123, false); err == nil {
		t.Error(`expected ParameterError for output width 123`)
	}
}

// TestBlake2bDigestSizes exercises truncated output widths
func TestBlake2bDigestSizes(t *testing.T) {
	// RFC 7693 appendix: blake2b-256 of "abc"
	d, err := NewBlake2b(32, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := d.Update([]byte(`abc`)); err != nil {
		t.Fatal(err)
	}
	actual, err := d.HexDigest()
	if err != nil {
		t.Fatal(err)
	}
	expected := `bddd813c634239723171ef3fee98579b94964e3bb1cb3e427262c8c068d52319`
	if actual != expected {
		t.Errorf(`blake2b-256 digest incorrect: expected %s, got %s`, expected, actual)
	}
}

// TestXXHashSeeds checks seed handling including a seed whose high bit
// is set, where a sign-extending representation would diverge
func TestXXHashSeeds(t *testing.T) {
	d := NewXXHash32(1)
	if err := d.Update([]byte(``)); err != nil {
		t.Fatal(err)
	}
	seeded, err := d.HexDigest()
	if err != nil {
		t.Fatal(err)
	}
	unseeded, err := SumXXHash32([]byte(``), 0)
	if err != nil {
		t.Fatal(err)
	}
	if seeded == unseeded {
		t.Error(`xxhash32 seeds 1 and 0 must not collide on the empty input`)
	}

	// seed 0xffffffff‖0xffffffff assembles to 2^64-1, not -1 folded to 0
	d64 := NewXXHash64(0xffffffff, 0xffffffff)
	zero64 := NewXXHash64(0, 0)
	a, err := d64.HexDigest()
	if err != nil {
		t.Fatal(err)
	}
	b, err := zero64.HexDigest()
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Error(`xxhash64 seeds 2^64-1 and 0 must not collide on the empty input`)
	}

	// sign-extending seedLow 0x80000000 would yield 0xffffffff80000000,
	// the seed given by the halves (0x80000000, 0xffffffff)
	unsignedLow, err := NewXXHash64(0x80000000, 0).HexDigest()
	if err != nil {
		t.Fatal(err)
	}
	signExtended, err := NewXXHash64(0x80000000, 0xffffffff).HexDigest()
	if err != nil {
		t.Fatal(err)
	}
	if unsignedLow == signExtended {
		t.Error(`xxhash64 seedLow 0x80000000 must not be sign-extended into the high half`)
	}
}
