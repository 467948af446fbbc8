package internals

import "fmt"

// UsageError indicates that an operation was called in a phase
// which does not permit this operation; e.g. `Update` after `Digest`.
type UsageError struct {
	Operation string
	Phase     string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf(`operation '%s' is not allowed in phase '%s'`, e.Operation, e.Phase)
}

// UnsupportedError indicates that a construction (like HMAC or PBKDF2)
// was requested with a hash algorithm it is not defined for.
type UnsupportedError struct {
	Algorithm    string
	Construction string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf(`hash algorithm '%s' does not support %s`, e.Algorithm, e.Construction)
}

// ParameterError indicates an illegal construction parameter;
// e.g. a BLAKE2b key exceeding 64 bytes or non-positive PBKDF2 iterations.
// A hasher refused at construction never enters the state machine.
type ParameterError struct {
	Parameter string
	Reason    string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf(`invalid parameter '%s': %s`, e.Parameter, e.Reason)
}
