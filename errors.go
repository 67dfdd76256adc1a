package wibe

import "errors"

// Error taxonomy for the core. Callers distinguish failure kinds with
// errors.Is against these sentinels; every returned error wraps one of them
// with fmt.Errorf("%w: ...") for additional context.
var (
	// ErrBadParams is returned by Bootstrap when the pairing context tag is
	// rejected.
	ErrBadParams = errors.New("wibe: bad pairing parameters")

	// ErrBadHierarchy is returned by Bootstrap when the hierarchy bound L is
	// not positive, and by KeyDerive when invoked on a level-L key.
	ErrBadHierarchy = errors.New("wibe: bad hierarchy depth")

	// ErrBadPattern is returned by Encrypt when the pattern length falls
	// outside [1,L], and by Decrypt when the secret key's level does not
	// match the ciphertext's pattern length.
	ErrBadPattern = errors.New("wibe: bad pattern")

	// ErrRandomnessFailure is returned when the configured randomness source
	// fails to produce a scalar or group element.
	ErrRandomnessFailure = errors.New("wibe: randomness source failure")
)
