package wibe

import (
	"fmt"

	"golang.org/x/crypto/bn256"
)

// Decrypt recovers the plaintext GT element encrypted in ct using sk. sk's
// level must equal the length of ct's pattern, or ErrBadPattern is returned.
// Beyond that length check, Decrypt performs no validity check: a
// non-matching key (one that disagrees with the pattern at some non-wildcard
// position) simply yields an unrelated GT element, consistent with the
// scheme's CPA-only security (§7). Use Pattern.Matches beforehand if you need
// to distinguish that case.
func Decrypt(sk *SecretKey, ct *Ciphertext, params *Params) (*bn256.GT, error) {
	k := len(ct.Pattern.Slots)
	if sk.Level() != k {
		return nil, fmt.Errorf("%w: key level %d does not match pattern length %d", ErrBadPattern, sk.Level(), k)
	}

	c2star := cloneG1(ct.C2)
	for _, i := range ct.Pattern.wildcardPositions() {
		term := new(bn256.G1).ScalarMult(ct.C4[i], sk.ID[i])
		c2star.Add(c2star, term)
	}

	numerator := bn256.Pair(c2star, sk.C)
	denominator := bn256.Pair(sk.A0, ct.C1)

	m := new(bn256.GT).Add(numerator, new(bn256.GT).Neg(denominator))
	m.Add(m, ct.C3)
	return m, nil
}
