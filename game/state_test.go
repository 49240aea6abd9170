package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStateFromDealt(t *testing.T) {
	t.Run("empty deal", func(t *testing.T) {
		state := StateFromDealt(nil)

		require.Equal(t, NewInitial(), state)
	})

	t.Run("scores and remaining set are consistent", func(t *testing.T) {
		state := StateFromDealt([]Card{10, 6})

		require.Equal(t, 16, state.PlayerScore)
		require.Equal(t, 0, state.DealerScore)
		require.Equal(t, PlayerTurn, state.Phase)
		require.Equal(t, 9, state.Remaining.Size())
		require.False(t, state.Remaining.Contains(10), "Dealt card should leave the remaining set")
		require.False(t, state.Remaining.Contains(6), "Dealt card should leave the remaining set")
	})

	t.Run("panics on duplicate value", func(t *testing.T) {
		require.Panics(t, func() {
			StateFromDealt([]Card{5, 5})
		}, "A value can only be dealt once")
	})

	t.Run("panics on value outside the initial set", func(t *testing.T) {
		require.Panics(t, func() { StateFromDealt([]Card{12}) })
		require.Panics(t, func() { StateFromDealt([]Card{0}) })
		require.Panics(t, func() { StateFromDealt([]Card{-1}) })
	})
}

func TestTerminal(t *testing.T) {
	deck := FullSet().Remove(10).Remove(11)

	t.Run("player 21 wins regardless of dealer", func(t *testing.T) {
		state := State{Remaining: deck, PlayerScore: 21, DealerScore: 30, Phase: DealerTurn}

		win, ok := state.Terminal()

		require.True(t, ok)
		require.Equal(t, 1.0, win, "Player 21 should win exactly")
	})

	t.Run("player bust loses before dealer bust is considered", func(t *testing.T) {
		state := State{Remaining: deck, PlayerScore: 24, DealerScore: 30, Phase: DealerTurn}

		win, ok := state.Terminal()

		require.True(t, ok)
		require.Equal(t, 0.0, win, "Player bust should lose even when the dealer busts too")
	})

	t.Run("dealer bust wins", func(t *testing.T) {
		state := State{Remaining: deck, PlayerScore: 18, DealerScore: 25, Phase: DealerTurn}

		win, ok := state.Terminal()

		require.True(t, ok)
		require.Equal(t, 1.0, win)
	})

	t.Run("dealer ahead loses", func(t *testing.T) {
		state := State{Remaining: deck, PlayerScore: 18, DealerScore: 20, Phase: DealerTurn}

		win, ok := state.Terminal()

		require.True(t, ok)
		require.Equal(t, 0.0, win)
	})

	t.Run("fresh dealer turn is not terminal", func(t *testing.T) {
		state := State{Remaining: deck, PlayerScore: 5, DealerScore: 0, Phase: DealerTurn}

		_, ok := state.Terminal()

		require.False(t, ok, "Dealer at 0 has not drawn past the player yet")
	})

	t.Run("dealer tie is not terminal", func(t *testing.T) {
		state := State{Remaining: deck, PlayerScore: 18, DealerScore: 18, Phase: DealerTurn}

		_, ok := state.Terminal()

		require.False(t, ok, "Dealer keeps drawing on a tie until busting or exceeding the player")
	})

	t.Run("initial state is not terminal", func(t *testing.T) {
		_, ok := NewInitial().Terminal()

		require.False(t, ok)
	})
}

func TestStand(t *testing.T) {
	t.Run("hands the turn to the dealer at score 0", func(t *testing.T) {
		state := StateFromDealt([]Card{10, 6})

		got := state.Stand()

		require.Equal(t, DealerTurn, got.Phase)
		require.Equal(t, 0, got.DealerScore, "Dealer accumulation should start at 0 on stand")
		require.Equal(t, state.PlayerScore, got.PlayerScore)
		require.Equal(t, state.Remaining, got.Remaining)
	})

	t.Run("panics out of turn", func(t *testing.T) {
		state := StateFromDealt([]Card{10, 6}).Stand()

		require.Panics(t, func() { state.Stand() })
	})
}

func TestHit(t *testing.T) {
	t.Run("draws the value into the player hand", func(t *testing.T) {
		state := StateFromDealt([]Card{10, 6})

		got := state.Hit(4)

		require.Equal(t, 20, got.PlayerScore)
		require.Equal(t, PlayerTurn, got.Phase)
		require.False(t, got.Remaining.Contains(4))
		require.Equal(t, state.Remaining.Size()-1, got.Remaining.Size())
	})

	t.Run("panics when the card is not in the remaining set", func(t *testing.T) {
		state := StateFromDealt([]Card{10, 6})

		require.Panics(t, func() { state.Hit(10) })
	})

	t.Run("panics out of turn", func(t *testing.T) {
		state := StateFromDealt([]Card{10, 6}).Stand()

		require.Panics(t, func() { state.Hit(4) })
	})
}

func TestDealerDraw(t *testing.T) {
	t.Run("draws the value into the dealer hand", func(t *testing.T) {
		state := StateFromDealt([]Card{10, 6}).Stand()

		got := state.DealerDraw(9)

		require.Equal(t, 9, got.DealerScore)
		require.Equal(t, 16, got.PlayerScore)
		require.Equal(t, DealerTurn, got.Phase)
		require.False(t, got.Remaining.Contains(9))
	})

	t.Run("panics when the card is not in the remaining set", func(t *testing.T) {
		state := StateFromDealt([]Card{10, 6}).Stand()

		require.Panics(t, func() { state.DealerDraw(6) })
	})

	t.Run("panics out of turn", func(t *testing.T) {
		state := StateFromDealt([]Card{10, 6})

		require.Panics(t, func() { state.DealerDraw(9) })
	})
}

func TestKey(t *testing.T) {
	t.Run("equal states map to the same key", func(t *testing.T) {
		a := StateFromDealt([]Card{3, 9}).Key()
		b := StateFromDealt([]Card{9, 3}).Key()

		require.Equal(t, a, b, "Deal order should not change the key")
	})

	t.Run("phase distinguishes keys", func(t *testing.T) {
		state := StateFromDealt([]Card{10, 6})

		require.NotEqual(t, state.Key(), state.Stand().Key())
	})

	t.Run("remaining set distinguishes keys", func(t *testing.T) {
		// Same scores, different remaining sets
		a := State{Remaining: FullSet().Remove(2).Remove(5), PlayerScore: 7, Phase: PlayerTurn}
		b := State{Remaining: FullSet().Remove(3).Remove(4), PlayerScore: 7, Phase: PlayerTurn}

		require.NotEqual(t, a.Key(), b.Key())
	})
}
