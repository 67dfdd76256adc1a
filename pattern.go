package wibe

import "math/big"

// Slot is one position of a Pattern: either a wildcard or a fixed identity
// scalar. A nil id means wildcard. This replaces the C source's parallel
// ids[]/wildcards[] arrays (and their "ids[i] is undefined when
// wildcards[i]" invariant) with a single tagged value per slot.
type Slot struct {
	id *big.Int
}

// Fixed returns a Slot constraining its position to id.
func Fixed(id *big.Int) Slot {
	return Slot{id: new(big.Int).Set(id)}
}

// Wildcard returns a Slot that matches any identity scalar.
func Wildcard() Slot {
	return Slot{id: nil}
}

// IsWildcard reports whether the slot is a wildcard.
func (s Slot) IsWildcard() bool {
	return s.id == nil
}

// ID returns the slot's fixed identity scalar. It panics if the slot is a
// wildcard; callers should check IsWildcard first.
func (s Slot) ID() *big.Int {
	if s.id == nil {
		panic("wibe: ID called on a wildcard slot")
	}
	return s.id
}

// Pattern is an identity vector of length k in [1,L], each position either
// fixed or wildcarded.
type Pattern struct {
	Slots []Slot
}

// NewPattern builds a Pattern from explicit slots.
func NewPattern(slots ...Slot) Pattern {
	return Pattern{Slots: append([]Slot(nil), slots...)}
}

// IdentityPattern builds a pattern with no wildcards, one fixed slot per id.
// Encrypting under IdentityPattern(ids...) and decrypting with a secret key
// derived along the same ids is the wildcard-free, plain-HIBE case (P1).
func IdentityPattern(ids ...*big.Int) Pattern {
	slots := make([]Slot, len(ids))
	for i, id := range ids {
		slots[i] = Fixed(id)
	}
	return Pattern{Slots: slots}
}

// Matches reports whether id (a secret key's identity path) matches the
// pattern: equal to the pattern at every non-wildcard position, and of the
// same length. Decrypt never calls this itself (per §4.5/§7, it performs no
// matching check beyond the length check and is otherwise total); it is
// exposed for callers who want to pre-filter keys before attempting
// decryption.
func (p Pattern) Matches(id []*big.Int) bool {
	if len(id) != len(p.Slots) {
		return false
	}
	for i, slot := range p.Slots {
		if slot.IsWildcard() {
			continue
		}
		if slot.id.Cmp(id[i]) != 0 {
			return false
		}
	}
	return true
}

// wildcardPositions returns the indices of the pattern's wildcard slots, in
// ascending order.
func (p Pattern) wildcardPositions() []int {
	var w []int
	for i, slot := range p.Slots {
		if slot.IsWildcard() {
			w = append(w, i)
		}
	}
	return w
}
