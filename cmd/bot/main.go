package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"twentyone/bot"
	"twentyone/config"
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
	if cfg.BotToken == "" {
		log.Fatal().Msg("BOT_TOKEN is not set")
	}

	s := solver.New(solver.WithMetrics(solver.NewCollector()))
	s.Warmup()

	b, err := bot.New(cfg.BotToken, s)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create bot")
	}

	if err := b.Run(); err != nil {
		log.Fatal().Err(err).Msg("bot stopped")
	}
}
