package experiments

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"twentyone/game"
	"twentyone/solver"
)

func TestBuildTable(t *testing.T) {
	s := solver.New()
	s.Warmup()

	records := BuildTable(s)

	require.Len(t, records, 55, "There are C(11,2) distinct two-card deals")

	byDeal := make(map[[2]game.Card]DealRecord, len(records))
	for _, record := range records {
		require.Less(t, record.First, record.Second, "Deals should be ordered by ascending value")
		require.Equal(t, int(record.First)+int(record.Second), record.Score)
		byDeal[[2]game.Card{record.First, record.Second}] = record
	}

	blackjack := byDeal[[2]game.Card{10, 11}]
	require.True(t, blackjack.Resolved)
	require.Equal(t, 1.0, blackjack.Win)

	sixteen := byDeal[[2]game.Card{6, 10}]
	require.False(t, sixteen.Resolved)
	require.InDelta(t, 0.38293650793650791, sixteen.Win, 1e-12)
	require.Equal(t, solver.ActionHit, sixteen.Recommendation)
}

func TestWriteCSV(t *testing.T) {
	s := solver.New()
	s.Warmup()
	records := BuildTable(s)
	path := filepath.Join(t.TempDir(), "strategy.csv")

	err := WriteCSV(path, records)
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 56, "Header plus one row per deal")
	require.Equal(t,
		[]string{"first", "second", "score", "win", "stand", "hit", "bust_on_hit", "advice"},
		rows[0])

	for _, row := range rows[1:] {
		require.Len(t, row, 8)
		if row[0] == "10" && row[1] == "11" {
			require.Equal(t, "1", row[3], "A dealt 21 should report a certain win")
			require.Empty(t, row[7], "Resolved deals carry no advice")
		}
	}
}

func TestWriteCSVBadPath(t *testing.T) {
	err := WriteCSV(filepath.Join(t.TempDir(), "missing", "strategy.csv"), nil)

	require.Error(t, err)
}
