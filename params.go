package wibe

import (
	"crypto/rand"
	"fmt"
	"io"
)

// Params is the global context shared by every operation: the hierarchy
// bound L and the randomness source used to sample scalars and group
// elements. Params is immutable after Bootstrap returns and safe for
// concurrent read-only use by any number of goroutines.
type Params struct {
	// L is the maximum hierarchy depth and the maximum pattern length.
	L int

	// Rand is the randomness source used by Setup, KeyDerive and Encrypt.
	// Defaults to crypto/rand.Reader; override with WithRandom for tests
	// that need a deterministic-but-still-secure reader.
	Rand io.Reader

	// context is a defensive copy of the caller-supplied context tag. The
	// bn256 pairing is a single fixed curve, so this tag carries no curve
	// parameters; it exists purely for caller-side domain separation and
	// bookkeeping, mirroring the shape of the pairing-parameter bytes a
	// PBC-backed implementation would parse here.
	context []byte
}

// Option configures a Params at Bootstrap time.
type Option func(*Params)

// WithRandom overrides the default crypto/rand.Reader randomness source.
func WithRandom(r io.Reader) Option {
	return func(p *Params) { p.Rand = r }
}

// Bootstrap constructs the global parameters: it validates the hierarchy
// bound and the context tag, and wires up the randomness source every other
// operation will draw from. contextTag must be non-empty; bn256's curve is
// fixed at compile time, so there is nothing else to parse, but an empty tag
// is rejected the same way a PBC-backed implementation would reject
// malformed pairing-parameter bytes.
func Bootstrap(contextTag []byte, l int, opts ...Option) (*Params, error) {
	if l <= 0 {
		return nil, fmt.Errorf("%w: hierarchy depth must be positive, got %d", ErrBadHierarchy, l)
	}
	if len(contextTag) == 0 {
		return nil, fmt.Errorf("%w: empty pairing context tag", ErrBadParams)
	}

	params := &Params{
		L:       l,
		Rand:    rand.Reader,
		context: append([]byte(nil), contextTag...),
	}
	for _, opt := range opts {
		opt(params)
	}
	return params, nil
}

// Context returns a copy of the context tag supplied at Bootstrap.
func (p *Params) Context() []byte {
	return append([]byte(nil), p.context...)
}
