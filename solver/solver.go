package solver

import (
	"sync"

	"github.com/rs/zerolog/log"

	"twentyone/game"
)

// Solver owns the memoization cache for the exhaustive game-tree
// evaluation. The cache grows insert-only and entries are never mutated
// after insertion: a key always maps to the same result, so the cache is
// an internal detail rather than observable state. Construct one Solver
// per rule set; independent instances never share entries.
//
// Evaluation itself is synchronous, but the cache is lock-guarded so a
// warmed Solver can serve concurrent readers. Two goroutines computing the
// same missing key is benign - both produce the identical value.
type Solver struct {
	mu      sync.RWMutex
	cache   map[game.Key]Odds
	metrics Collector
}

type Option func(*Solver)

func WithMetrics(c Collector) Option {
	return func(s *Solver) {
		if c != nil {
			s.metrics = c
		}
	}
}

func New(options ...Option) *Solver {
	s := &Solver{
		cache:   make(map[game.Key]Odds),
		metrics: NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// Warmup eagerly evaluates the full initial deck, populating the cache
// with every reachable non-terminal state so that interactive queries are
// cache-dominated. It blocks until the walk completes.
func (s *Solver) Warmup() SearchMetric {
	s.metrics.Start()
	s.Evaluate(game.NewInitial())
	metric := s.metrics.Complete()

	log.Info().
		Dur("duration", metric.Duration).
		Int("states", s.CacheSize()).
		Msg("solver cache warmed")
	return metric
}

// CacheSize returns the number of distinct states memoized so far.
func (s *Solver) CacheSize() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.cache)
}

// maxDepth bounds the recursion: at most 11 draws plus one stand
// transition separate any state from a terminal, so exceeding the bound
// means a rule change introduced a cycle.
const maxDepth = 24

// Evaluate computes the odds for state, with the player assumed to play
// optimally and the dealer drawing until the game resolves. Results are
// deterministic for a given state regardless of call history.
//
// Terminal states resolve immediately and never touch the cache: they are
// cheap to recompute and keying them would fill the cache with one-off
// leaves.
func (s *Solver) Evaluate(state game.State) Odds {
	return s.evaluate(state, 0)
}

func (s *Solver) evaluate(state game.State, depth int) Odds {
	if depth > maxDepth {
		panic("solver: search depth exceeded the finite state space bound")
	}
	if win, ok := state.Terminal(); ok {
		return Odds{Win: win}
	}

	key := state.Key()
	s.mu.RLock()
	cached, ok := s.cache[key]
	s.mu.RUnlock()
	if ok {
		s.metrics.AddCacheHit()
		return cached
	}

	s.metrics.AddExpansion()

	var odds Odds
	switch state.Phase {
	case game.DealerTurn:
		odds = Odds{Win: s.dealerWin(state, depth)}
	case game.PlayerTurn:
		stand := s.evaluate(state.Stand(), depth+1).Win
		hit := s.hitWin(state, depth)
		win := stand
		if hit > win {
			win = hit
		}
		odds = Odds{Win: win, Stand: stand, Hit: hit, HasChoice: true}
	default:
		panic("solver: unknown phase")
	}

	s.mu.Lock()
	s.cache[key] = odds
	s.mu.Unlock()
	return odds
}

// dealerWin is the mean win probability over every card the dealer could
// draw next: the dealer has no choice and each remaining value is equally
// likely.
func (s *Solver) dealerWin(state game.State, depth int) float64 {
	total := 0.0
	count := 0
	for v := game.MinCard; v <= game.MaxCard; v++ {
		if !state.Remaining.Contains(v) {
			continue
		}
		total += s.evaluate(state.DealerDraw(v), depth+1).Win
		count++
	}
	if count == 0 {
		// Unreachable from any valid deal: the dealer always terminates
		// before the 11-card set runs out.
		panic("solver: dealer turn with no cards remaining")
	}
	return total / float64(count)
}

// hitWin is the mean win probability over every card the player could draw
// next. An empty remaining set leaves hitting impossible, probability 0.
func (s *Solver) hitWin(state game.State, depth int) float64 {
	total := 0.0
	count := 0
	for v := game.MinCard; v <= game.MaxCard; v++ {
		if !state.Remaining.Contains(v) {
			continue
		}
		total += s.evaluate(state.Hit(v), depth+1).Win
		count++
	}
	if count == 0 {
		return 0
	}
	return total / float64(count)
}
