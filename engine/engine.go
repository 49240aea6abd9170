package engine

import (
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"twentyone/game"
	"twentyone/solver"
)

// Engine plays complete games in which the player follows solver advice
// and every draw is uniform over the remaining set. The empirical win rate
// converges on the analytic optimal-play probability, which makes the
// engine a cross-check on the evaluator.
type Engine struct {
	solver *solver.Solver
	rng    *rand.Rand
}

func New(s *solver.Solver, seed uint64) *Engine {
	return &Engine{
		solver: s,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// Result tallies the outcomes of a batch of self-play games.
type Result struct {
	Games int
	Wins  int
}

func (r Result) WinRate() float64 {
	if r.Games == 0 {
		return 0
	}
	return float64(r.Wins) / float64(r.Games)
}

// Run plays the given number of games and reports the tally.
func (e *Engine) Run(games int) Result {
	result := Result{Games: games}
	for i := 0; i < games; i++ {
		if e.playOne() {
			result.Wins++
		}
	}

	log.Info().
		Int("games", result.Games).
		Float64("winRate", result.WinRate()).
		Msg("self-play batch finished")
	return result
}

// playOne plays a single game to a terminal state and reports whether the
// player won.
func (e *Engine) playOne() bool {
	state := game.NewInitial()
	for {
		if win, ok := state.Terminal(); ok {
			return win == 1
		}

		switch state.Phase {
		case game.PlayerTurn:
			odds := e.solver.Evaluate(state)
			if odds.Recommend() == solver.ActionHit {
				state = state.Hit(e.draw(state.Remaining))
			} else {
				state = state.Stand()
			}
		case game.DealerTurn:
			state = state.DealerDraw(e.draw(state.Remaining))
		}
	}
}

func (e *Engine) draw(remaining game.CardSet) game.Card {
	cards := remaining.Cards()
	return cards[e.rng.Intn(len(cards))]
}
