package game

// Card is a card value in the fixed initial set. There is no suit or face
// distinction: the game deals plain values 1 through 11, one of each.
type Card int

const (
	MinCard Card = 1
	MaxCard Card = 11
)

// Target is the score both sides try to reach without exceeding.
const Target = 21
