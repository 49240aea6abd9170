package game

import "math/bits"

// CardSet is an unordered set of card values, stored as a bitmask with bit
// v set when value v is present. The representation is canonical: two sets
// holding the same values compare equal regardless of insertion or removal
// order, so a CardSet can key a map directly.
type CardSet uint16

// FullSet returns the initial set holding one card of each value 1-11.
func FullSet() CardSet {
	var s CardSet
	for v := MinCard; v <= MaxCard; v++ {
		s = s.Add(v)
	}
	return s
}

func (s CardSet) Contains(v Card) bool {
	return s&(1<<uint(v)) != 0
}

func (s CardSet) Add(v Card) CardSet {
	return s | 1<<uint(v)
}

func (s CardSet) Remove(v Card) CardSet {
	return s &^ (1 << uint(v))
}

// Size returns the number of values in the set.
func (s CardSet) Size() int {
	return bits.OnesCount16(uint16(s))
}

// Cards returns the values in the set in ascending order.
func (s CardSet) Cards() []Card {
	cards := make([]Card, 0, s.Size())
	for v := MinCard; v <= MaxCard; v++ {
		if s.Contains(v) {
			cards = append(cards, v)
		}
	}
	return cards
}
