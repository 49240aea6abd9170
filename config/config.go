package config

import (
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config holds the advisor process settings, read from the environment
// with an optional .env file applied first.
type Config struct {
	BotToken      string `env:"BOT_TOKEN"`
	LogLevel      string `env:"LOG_LEVEL" env-default:"info"`
	TablePath     string `env:"TABLE_PATH" env-default:"strategy.csv"`
	SelfPlayGames int    `env:"SELF_PLAY_GAMES" env-default:"20000"`
	SelfPlaySeed  uint64 `env:"SELF_PLAY_SEED" env-default:"1"`
}

func Load() (*Config, error) {
	godotenv.Load()

	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
