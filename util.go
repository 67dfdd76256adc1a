package wibe

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"golang.org/x/crypto/bn256"
)

// randomScalar draws a uniform element of Zr = Z/bn256.Order.
func randomScalar(params *Params) (*big.Int, error) {
	s, err := rand.Int(params.Rand, bn256.Order)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRandomnessFailure, err)
	}
	return s, nil
}

func randomG1(params *Params) (*bn256.G1, error) {
	_, p, err := bn256.RandomG1(params.Rand)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRandomnessFailure, err)
	}
	return p, nil
}

func randomG2(params *Params) (*bn256.G2, error) {
	_, p, err := bn256.RandomG2(params.Rand)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRandomnessFailure, err)
	}
	return p, nil
}

// zeroizeScalar best-effort erases a sensitive scalar. math/big offers no
// secure-wipe guarantee (the backing words array may already have been
// copied by prior arithmetic), so this is documented as a mitigation, not a
// proof of erasure.
func zeroizeScalar(x *big.Int) {
	if x == nil {
		return
	}
	x.SetInt64(0)
}

// identityG1 returns the identity element of G1.
func identityG1() *bn256.G1 {
	return new(bn256.G1).ScalarBaseMult(big.NewInt(0))
}

// identityG2 returns the identity element of G2.
func identityG2() *bn256.G2 {
	return new(bn256.G2).ScalarBaseMult(big.NewInt(0))
}

// cloneG1 returns an independent copy of p. bn256.G1 exposes no Set/Clone
// method, so a marshal/unmarshal round trip is the only way to decouple the
// returned value from p's backing storage before mutating it in place with
// Add.
func cloneG1(p *bn256.G1) *bn256.G1 {
	clone := new(bn256.G1)
	if _, err := clone.Unmarshal(p.Marshal()); err != nil {
		panic("wibe: corrupt G1 element during clone")
	}
	return clone
}
