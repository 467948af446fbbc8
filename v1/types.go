package v1

// HashParameters collects the per-algorithm settings the one-shot
// API accepts. Zero values select the defaults: an unkeyed BLAKE2b
// with 64 bytes of output and seed 0 for the xxHash family.
type HashParameters struct {
	HashAlgorithm string
	Blake2bKey    []byte
	Blake2bLength int
	SeedLow       uint32
	SeedHigh      uint32
}

// DeriveKeyParameters collects the PBKDF2 settings
type DeriveKeyParameters struct {
	HashAlgorithm string
	Password      []byte
	Salt          []byte
	Iterations    int
	Length        int
}
