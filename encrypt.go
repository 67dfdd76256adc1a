package wibe

import (
	"fmt"

	"golang.org/x/crypto/bn256"
)

// Ciphertext is the encryption of a message under Pattern. C4 has exactly
// one entry per wildcard position of Pattern. Ciphertext owns Pattern by
// value, so no two ciphertexts can ever alias (and corrupt) the same
// pattern's slots.
type Ciphertext struct {
	Pattern Pattern
	C1      *bn256.G2
	C2      *bn256.G1
	C3      *bn256.GT
	C4      map[int]*bn256.G1
}

// Encrypt encrypts m under pattern using mpk. The pattern length must be in
// [1, params.L].
func Encrypt(mpk *MPK, pattern Pattern, m *bn256.GT, params *Params) (*Ciphertext, error) {
	k := len(pattern.Slots)
	if k < 1 || k > params.L {
		return nil, fmt.Errorf("%w: pattern length %d outside [1,%d]", ErrBadPattern, k, params.L)
	}

	s, err := randomScalar(params)
	if err != nil {
		return nil, err
	}
	defer zeroizeScalar(s)

	c1 := new(bn256.G2).ScalarMult(mpk.G1pub, s)

	base := cloneG1(mpk.U[0])
	c4 := make(map[int]*bn256.G1)
	for i, slot := range pattern.Slots {
		if slot.IsWildcard() {
			c4[i] = new(bn256.G1).ScalarMult(mpk.U[i+1], s)
			continue
		}
		term := new(bn256.G1).ScalarMult(mpk.U[i+1], slot.ID())
		base.Add(base, term)
	}
	c2 := new(bn256.G1).ScalarMult(base, s)

	c3 := new(bn256.GT).ScalarMult(mpk.blindingFactor(), s)
	c3.Add(c3, m)

	owned := make([]Slot, k)
	for i, slot := range pattern.Slots {
		if !slot.IsWildcard() {
			owned[i] = Fixed(slot.ID())
		}
	}

	return &Ciphertext{
		Pattern: Pattern{Slots: owned},
		C1:      c1,
		C2:      c2,
		C3:      c3,
		C4:      c4,
	}, nil
}
