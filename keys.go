package wibe

import (
	"fmt"
	"math/big"
	"sync"

	"golang.org/x/crypto/bn256"
)

// MPK is the master public key: (g1, g2, h1, u0, u1, ..., uL). U has length
// L+1, with U[0] = u0 and U[i] = ui for i in [1,L]. MPK is immutable after
// Setup except for the lazily computed blinding-factor cache.
type MPK struct {
	G1pub *bn256.G2 // g1
	G2pub *bn256.G1 // g2
	H1    *bn256.G2 // h1 = g1^alpha
	U     []*bn256.G1

	blindOnce sync.Once
	blind     *bn256.GT // e(g2, h1), memoized
}

// blindingFactor returns e(g2, h1), computing it on first use. sync.Once
// makes this safe for the concurrent Encrypt calls §5 explicitly permits,
// unlike the corpus's non-thread-safe "Precache" idiom this generalizes.
func (mpk *MPK) blindingFactor() *bn256.GT {
	mpk.blindOnce.Do(func() {
		mpk.blind = bn256.Pair(mpk.G2pub, mpk.H1)
	})
	return mpk.blind
}

// SecretKey is a key at level ℓ = len(ID): the identity path ID and the key
// material (A0, B, C). len(B) == params.L - ℓ holds the b-slots for levels
// ℓ+1..L; C is g1^r for the key's implicit randomness r. The MSK is the
// special case ℓ=0 returned by Setup.
type SecretKey struct {
	ID []*big.Int
	A0 *bn256.G1
	B  []*bn256.G1
	C  *bn256.G2
}

// Level returns the key's depth in the hierarchy, i.e. len(ID).
func (sk *SecretKey) Level() int {
	return len(sk.ID)
}

// Setup samples a fresh (MPK, MSK) pair. Every sampled group element and the
// scalar alpha come from params.Rand; alpha is zeroed before Setup returns.
func Setup(params *Params) (*MPK, *SecretKey, error) {
	g1, err := randomG2(params)
	if err != nil {
		return nil, nil, err
	}
	g2, err := randomG1(params)
	if err != nil {
		return nil, nil, err
	}
	alpha, err := randomScalar(params)
	if err != nil {
		return nil, nil, err
	}
	defer zeroizeScalar(alpha)

	h1 := new(bn256.G2).ScalarMult(g1, alpha)

	u := make([]*bn256.G1, params.L+1)
	for i := range u {
		ui, err := randomG1(params)
		if err != nil {
			return nil, nil, err
		}
		u[i] = ui
	}

	mpk := &MPK{G1pub: g1, G2pub: g2, H1: h1, U: u}

	a0 := new(bn256.G1).ScalarMult(g2, alpha)
	b := make([]*bn256.G1, params.L)
	for i := range b {
		b[i] = identityG1()
	}
	msk := &SecretKey{
		ID: []*big.Int{},
		A0: a0,
		B:  b,
		C:  identityG2(),
	}

	return mpk, msk, nil
}

// KeyDerive produces a level-(parent.Level()+1) secret key from parent, one
// additional identity scalar id, and MPK. It fails with ErrBadHierarchy if
// parent is already at depth L.
//
// Every lookup into mpk.U uses the absolute hierarchy index (level+offset),
// never a raw array position, per the index-discipline requirement: the
// child's B array shrinks by one slot relative to the parent, but the
// absolute u-index for each remaining slot is level-dependent, not
// offset-dependent.
func KeyDerive(parent *SecretKey, mpk *MPK, id *big.Int, params *Params) (*SecretKey, error) {
	level := parent.Level()
	if level >= params.L {
		return nil, fmt.Errorf("%w: cannot derive past hierarchy depth %d", ErrBadHierarchy, params.L)
	}

	rPrime, err := randomScalar(params)
	if err != nil {
		return nil, err
	}
	defer zeroizeScalar(rPrime)

	childID := make([]*big.Int, level+1)
	copy(childID, parent.ID)
	childID[level] = new(big.Int).Set(id)

	// base = u0 * prod_{i=0}^{level} u_{i+1}^childID[i]
	base := cloneG1(mpk.U[0])
	for i, idi := range childID {
		term := new(bn256.G1).ScalarMult(mpk.U[i+1], idi)
		base.Add(base, term)
	}
	base.ScalarMult(base, rPrime)

	// a0' = parent.A0 * parent.B[0]^id * base
	consumed := new(bn256.G1).ScalarMult(parent.B[0], id)
	a0 := new(bn256.G1).Add(parent.A0, consumed)
	a0.Add(a0, base)

	remaining := params.L - level - 1
	b := make([]*bn256.G1, remaining)
	for i := 0; i < remaining; i++ {
		absolute := level + 2 + i
		bi := new(bn256.G1).ScalarMult(mpk.U[absolute], rPrime)
		bi.Add(bi, parent.B[i+1])
		b[i] = bi
	}

	c := new(bn256.G2).ScalarMult(mpk.G1pub, rPrime)
	c.Add(c, parent.C)

	return &SecretKey{ID: childID, A0: a0, B: b, C: c}, nil
}
