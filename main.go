package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"twentyone/config"
	"twentyone/engine"
	"twentyone/experiments"
	"twentyone/solver"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	s := solver.New(solver.WithMetrics(solver.NewCollector()))
	metric := s.Warmup()
	log.Info().
		Int("expansions", metric.Expansions).
		Int("cacheHits", metric.CacheHits).
		Msg("warm-up walk complete")

	initial := s.Advise(nil)
	log.Info().
		Float64("win", initial.Win).
		Float64("stand", initial.Stand).
		Float64("hit", initial.Hit).
		Msg("optimal-play odds from an empty hand")

	records := experiments.BuildTable(s)
	if err := experiments.WriteCSV(cfg.TablePath, records); err != nil {
		log.Fatal().Err(err).Msg("failed to write strategy table")
	}
	log.Info().Str("path", cfg.TablePath).Int("deals", len(records)).Msg("strategy table written")

	result := engine.New(s, cfg.SelfPlaySeed).Run(cfg.SelfPlayGames)
	log.Info().
		Float64("empirical", result.WinRate()).
		Float64("analytic", initial.Win).
		Msg("self-play win rate vs analytic probability")
}
