package wibe

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPatternIsWildcard(t *testing.T) {
	fixed := Fixed(big.NewInt(7))
	wild := Wildcard()

	assert.False(t, fixed.IsWildcard())
	assert.True(t, wild.IsWildcard())
	assert.Equal(t, 0, fixed.ID().Cmp(big.NewInt(7)))
}

func TestSlotIDPanicsOnWildcard(t *testing.T) {
	assert.Panics(t, func() {
		Wildcard().ID()
	})
}

func TestIdentityPattern(t *testing.T) {
	p := IdentityPattern(big.NewInt(1), big.NewInt(0))
	assert.Len(t, p.Slots, 2)
	for _, s := range p.Slots {
		assert.False(t, s.IsWildcard())
	}
}

func TestPatternMatches(t *testing.T) {
	p := NewPattern(Fixed(big.NewInt(1)), Wildcard())

	assert.True(t, p.Matches([]*big.Int{big.NewInt(1), big.NewInt(42)}))
	assert.True(t, p.Matches([]*big.Int{big.NewInt(1), big.NewInt(0)}))
	assert.False(t, p.Matches([]*big.Int{big.NewInt(2), big.NewInt(0)}))
	assert.False(t, p.Matches([]*big.Int{big.NewInt(1)}))
}

func TestPatternWildcardPositions(t *testing.T) {
	p := NewPattern(Wildcard(), Fixed(big.NewInt(3)), Wildcard())
	assert.Equal(t, []int{0, 2}, p.wildcardPositions())

	none := IdentityPattern(big.NewInt(1))
	assert.Nil(t, none.wildcardPositions())
}
