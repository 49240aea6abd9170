package experiments

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"twentyone/game"
	"twentyone/solver"
)

// DealRecord is one row of the strategy table: a two-card deal and the
// solver's verdict on it.
type DealRecord struct {
	First  game.Card
	Second game.Card
	Score  int
	solver.Report
}

// BuildTable evaluates every distinct two-card deal and collects the odds
// breakdown for each, ordered by ascending card values.
func BuildTable(s *solver.Solver) []DealRecord {
	var records []DealRecord
	for first := game.MinCard; first <= game.MaxCard; first++ {
		for second := first + 1; second <= game.MaxCard; second++ {
			report := s.Advise([]game.Card{first, second})
			records = append(records, DealRecord{
				First:  first,
				Second: second,
				Score:  report.PlayerScore,
				Report: report,
			})
		}
	}
	return records
}

// WriteCSV writes the strategy table to path, one record per row.
func WriteCSV(path string, records []DealRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create strategy table file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"first", "second", "score", "win", "stand", "hit", "bust_on_hit", "advice"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write strategy table header: %w", err)
	}

	for _, record := range records {
		advice := ""
		if !record.Resolved {
			advice = record.Recommendation.String()
		}
		row := []string{
			strconv.Itoa(int(record.First)),
			strconv.Itoa(int(record.Second)),
			strconv.Itoa(record.Score),
			strconv.FormatFloat(record.Win, 'g', -1, 64),
			strconv.FormatFloat(record.Stand, 'g', -1, 64),
			strconv.FormatFloat(record.Hit, 'g', -1, 64),
			strconv.FormatFloat(record.BustOnHit, 'g', -1, 64),
			advice,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write strategy table row: %w", err)
		}
	}

	return nil
}
