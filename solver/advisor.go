package solver

import "twentyone/game"

// Report is the odds summary handed to display collaborators for the
// current set of dealt cards. Probabilities are exact to float64
// precision; rounding for display is the caller's concern.
//
// When Resolved is set the game needs no decision (the score is already at
// or past 21) and only Win is meaningful.
type Report struct {
	PlayerScore    int
	Win            float64
	Stand          float64
	Hit            float64
	BustOnHit      float64
	Resolved       bool
	Recommendation Action
}

// Advise evaluates the PlayerTurn state for the given dealt card values
// and derives the display metrics. The dealt values must be distinct and
// within the initial set; anything else panics - no untrusted input
// reaches the evaluator.
func (s *Solver) Advise(dealt []game.Card) Report {
	state := game.StateFromDealt(dealt)
	odds := s.Evaluate(state)

	report := Report{
		PlayerScore: state.PlayerScore,
		Win:         odds.Win,
	}
	if !odds.HasChoice {
		report.Resolved = true
		return report
	}

	report.Stand = odds.Stand
	report.Hit = odds.Hit
	report.BustOnHit = bustOnHit(state)
	report.Recommendation = odds.Recommend()
	return report
}

// bustOnHit is the fraction of remaining values that would push the player
// past 21 on the next draw.
func bustOnHit(state game.State) float64 {
	busts := 0
	count := 0
	for v := game.MinCard; v <= game.MaxCard; v++ {
		if !state.Remaining.Contains(v) {
			continue
		}
		if state.PlayerScore+int(v) > game.Target {
			busts++
		}
		count++
	}
	if count == 0 {
		return 0
	}
	return float64(busts) / float64(count)
}
