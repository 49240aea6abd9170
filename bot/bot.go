package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog/log"

	"twentyone/solver"
)

// Bot is the Telegram front end: it renders the card board and forwards
// every toggle to the solver. The solver should be warmed before Run so
// interactive queries stay cache-dominated.
type Bot struct {
	api     *tgbotapi.BotAPI
	handler *Handler
}

func New(token string, s *solver.Solver) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	return &Bot{
		api:     api,
		handler: NewHandler(api, s),
	}, nil
}

func (b *Bot) Run() error {
	log.Info().Str("username", b.api.Self.UserName).Msg("bot started")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	for update := range updates {
		if update.CallbackQuery != nil {
			go b.handler.HandleCallback(update.CallbackQuery)
			continue
		}

		if update.Message != nil {
			go b.handler.HandleMessage(update.Message)
		}
	}

	return nil
}
