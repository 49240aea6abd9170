package solver

// Action is an advised play at a decision point.
type Action int

const (
	ActionStand Action = iota
	ActionHit
)

func (a Action) String() string {
	switch a {
	case ActionStand:
		return "stand"
	case ActionHit:
		return "hit"
	default:
		return "unknown"
	}
}

// Odds is the immutable evaluation result for one state. Win is the
// probability of a player win under optimal play. Stand and Hit are the
// win probabilities of each action and are only meaningful when HasChoice
// is set - resolved states carry the single Win probability.
type Odds struct {
	Win       float64
	Stand     float64
	Hit       float64
	HasChoice bool
}

// Recommend picks the action with the higher win probability. An exact tie
// recommends standing - the tie-break is explicit, not an artifact of
// comparison order.
func (o Odds) Recommend() Action {
	if !o.HasChoice {
		panic("solver: recommendation requested for a resolved state")
	}
	if o.Hit > o.Stand {
		return ActionHit
	}
	return ActionStand
}
