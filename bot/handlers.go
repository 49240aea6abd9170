package bot

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog/log"

	"twentyone/game"
	"twentyone/solver"
)

// Handler reacts to chat commands and card-toggle callbacks. It tracks the
// set of dealt cards per chat; the set lives for the session only and is
// discarded on restart.
type Handler struct {
	api    *tgbotapi.BotAPI
	solver *solver.Solver

	mu    sync.Mutex
	dealt map[int64]game.CardSet
}

func NewHandler(api *tgbotapi.BotAPI, s *solver.Solver) *Handler {
	return &Handler{
		api:    api,
		solver: s,
		dealt:  make(map[int64]game.CardSet),
	}
}

func (h *Handler) HandleMessage(msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start", "reset":
		h.setDealt(msg.Chat.ID, 0)
		h.sendBoard(msg.Chat.ID)
	case "help":
		h.send(msg.Chat.ID,
			"Tap card values to mark them dealt to your hand. After every "+
				"toggle the board shows your score, the win probability under "+
				"optimal play, the stand/hit breakdown, the chance of busting "+
				"on the next draw, and the advised action.")
	default:
		h.send(msg.Chat.ID, "Commands: /start — new board, /reset — clear dealt cards, /help — how it works")
	}
}

func (h *Handler) HandleCallback(cb *tgbotapi.CallbackQuery) {
	chatID := cb.Message.Chat.ID

	switch {
	case cb.Data == CallbackReset:
		h.setDealt(chatID, 0)
		h.answerCallback(cb.ID, "Board reset")
	case strings.HasPrefix(cb.Data, CallbackTogglePrefix):
		v, err := strconv.Atoi(strings.TrimPrefix(cb.Data, CallbackTogglePrefix))
		if err != nil || game.Card(v) < game.MinCard || game.Card(v) > game.MaxCard {
			h.answerCallback(cb.ID, "Unknown card")
			return
		}
		h.toggle(chatID, game.Card(v))
		h.answerCallback(cb.ID, "")
	default:
		h.answerCallback(cb.ID, "Unknown action")
		return
	}

	dealt := h.getDealt(chatID)
	text := h.boardText(dealt)
	edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, cb.Message.MessageID, text, CardKeyboard(dealt))
	if _, err := h.api.Send(edit); err != nil {
		log.Error().Err(err).Int64("chat", chatID).Msg("failed to edit board message")
	}
}

func (h *Handler) toggle(chatID int64, v game.Card) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set := h.dealt[chatID]
	if set.Contains(v) {
		set = set.Remove(v)
	} else {
		set = set.Add(v)
	}
	h.dealt[chatID] = set
}

func (h *Handler) getDealt(chatID int64) game.CardSet {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.dealt[chatID]
}

func (h *Handler) setDealt(chatID int64, set game.CardSet) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.dealt[chatID] = set
}

func (h *Handler) sendBoard(chatID int64) {
	dealt := h.getDealt(chatID)
	msg := tgbotapi.NewMessage(chatID, h.boardText(dealt))
	msg.ReplyMarkup = CardKeyboard(dealt)
	if _, err := h.api.Send(msg); err != nil {
		log.Error().Err(err).Int64("chat", chatID).Msg("failed to send board message")
	}
}

func (h *Handler) boardText(dealt game.CardSet) string {
	return FormatReport(dealt, h.solver.Advise(dealt.Cards()))
}

func (h *Handler) send(chatID int64, text string) {
	if _, err := h.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		log.Error().Err(err).Int64("chat", chatID).Msg("failed to send message")
	}
}

func (h *Handler) answerCallback(id, text string) {
	if _, err := h.api.Request(tgbotapi.NewCallback(id, text)); err != nil {
		log.Error().Err(err).Msg("failed to answer callback")
	}
}

// FormatReport renders the odds summary as display text. Probabilities are
// rounded to two decimal places as percentages here, at the display layer.
func FormatReport(dealt game.CardSet, report solver.Report) string {
	var sb strings.Builder

	if dealt.Size() == 0 {
		sb.WriteString("🎴 No cards dealt yet\n")
	} else {
		cards := make([]string, 0, dealt.Size())
		for _, v := range dealt.Cards() {
			cards = append(cards, strconv.Itoa(int(v)))
		}
		fmt.Fprintf(&sb, "🎴 Dealt: %s\n", strings.Join(cards, ", "))
	}
	fmt.Fprintf(&sb, "Score: %d\n\n", report.PlayerScore)

	if report.Resolved {
		if report.Win == 1 {
			sb.WriteString("🏆 21 — you win!")
		} else {
			sb.WriteString("💥 Bust — you lose.")
		}
		return sb.String()
	}

	fmt.Fprintf(&sb, "Win (optimal play): %.2f%%\n", report.Win*100)
	fmt.Fprintf(&sb, "• Stand now: %.2f%%\n", report.Stand*100)
	fmt.Fprintf(&sb, "• Hit now: %.2f%%\n", report.Hit*100)
	fmt.Fprintf(&sb, "• Bust on next draw: %.2f%%\n\n", report.BustOnHit*100)

	switch report.Recommendation {
	case solver.ActionHit:
		sb.WriteString("👊 Advice: HIT")
	default:
		sb.WriteString("✋ Advice: STAND")
	}
	return sb.String()
}
