package game

import "fmt"

type Phase int

const (
	PlayerTurn Phase = iota
	DealerTurn
)

func (p Phase) String() string {
	switch p {
	case PlayerTurn:
		return "player"
	case DealerTurn:
		return "dealer"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// State is one node of the game tree: the remaining card values, the
// player's accumulated score, whose turn it is, and the dealer's
// accumulated score. States are values - transitions return new copies.
//
// PlayerTurn states always carry a dealer score of 0: the dealer starts
// drawing from 0 when the player stands (single-round interpretation, the
// dealer has no cards before the player's turn ends).
type State struct {
	Remaining   CardSet
	PlayerScore int
	DealerScore int
	Phase       Phase
}

// NewInitial returns the state before any card has been dealt.
func NewInitial() State {
	return State{Remaining: FullSet(), Phase: PlayerTurn}
}

// StateFromDealt builds the PlayerTurn state for the given dealt card
// values. The values must be distinct and within the initial set; anything
// else is a programming defect and panics.
func StateFromDealt(dealt []Card) State {
	remaining := FullSet()
	score := 0
	for _, v := range dealt {
		if v < MinCard || v > MaxCard {
			panic(fmt.Sprintf("game: card value %d outside the initial set", v))
		}
		if !remaining.Contains(v) {
			panic(fmt.Sprintf("game: card value %d dealt twice", v))
		}
		remaining = remaining.Remove(v)
		score += int(v)
	}
	return State{Remaining: remaining, PlayerScore: score, Phase: PlayerTurn}
}

// Terminal reports whether the state is resolved and, if so, the player's
// win probability. The checks apply in a fixed priority order since several
// conditions can hold at once: player 21, player bust, dealer bust, dealer
// ahead. The dealer-ahead check only ever fires after a dealer draw - a
// fresh DealerTurn state starts the dealer at 0.
func (s State) Terminal() (win float64, ok bool) {
	switch {
	case s.PlayerScore == Target:
		return 1, true
	case s.PlayerScore > Target:
		return 0, true
	case s.DealerScore > Target:
		return 1, true
	case s.DealerScore > s.PlayerScore:
		return 0, true
	}
	return 0, false
}

// Stand commits the player to their current score and hands the turn to
// the dealer, whose score starts accumulating at 0.
func (s State) Stand() State {
	if s.Phase != PlayerTurn {
		panic("game: stand out of turn")
	}
	return State{
		Remaining:   s.Remaining,
		PlayerScore: s.PlayerScore,
		DealerScore: 0,
		Phase:       DealerTurn,
	}
}

// Hit draws v into the player's hand.
func (s State) Hit(v Card) State {
	if s.Phase != PlayerTurn {
		panic("game: hit out of turn")
	}
	if !s.Remaining.Contains(v) {
		panic(fmt.Sprintf("game: hit with card %d not in the remaining set", v))
	}
	return State{
		Remaining:   s.Remaining.Remove(v),
		PlayerScore: s.PlayerScore + int(v),
		DealerScore: s.DealerScore,
		Phase:       PlayerTurn,
	}
}

// DealerDraw draws v into the dealer's hand. The dealer has no choice: it
// draws until a terminal condition resolves the game.
func (s State) DealerDraw(v Card) State {
	if s.Phase != DealerTurn {
		panic("game: dealer draw out of turn")
	}
	if !s.Remaining.Contains(v) {
		panic(fmt.Sprintf("game: dealer draw with card %d not in the remaining set", v))
	}
	return State{
		Remaining:   s.Remaining.Remove(v),
		PlayerScore: s.PlayerScore,
		DealerScore: s.DealerScore + int(v),
		Phase:       DealerTurn,
	}
}

// Key is the canonical cache identity of a state. CardSet is canonical by
// construction, so equal states always produce equal keys; the struct is
// comparable and keys a map directly with no serialization step.
type Key struct {
	remaining CardSet
	player    int8
	dealer    int8
	phase     Phase
}

func (s State) Key() Key {
	return Key{
		remaining: s.Remaining,
		player:    int8(s.PlayerScore),
		dealer:    int8(s.DealerScore),
		phase:     s.Phase,
	}
}

func (s State) String() string {
	return fmt.Sprintf("%s turn, player %d, dealer %d, %d cards left",
		s.Phase, s.PlayerScore, s.DealerScore, s.Remaining.Size())
}
