package bot

import (
	"fmt"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"twentyone/game"
)

const (
	CallbackTogglePrefix = "toggle:"
	CallbackReset        = "reset"
)

// ToggleCallback is the callback data that flips card v between dealt and
// remaining.
func ToggleCallback(v game.Card) string {
	return CallbackTogglePrefix + strconv.Itoa(int(v))
}

// CardKeyboard renders every card value as a toggle button, marking the
// ones currently dealt, plus a reset row.
func CardKeyboard(dealt game.CardSet) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton

	row := []tgbotapi.InlineKeyboardButton{}
	for v := game.MinCard; v <= game.MaxCard; v++ {
		label := strconv.Itoa(int(v))
		if dealt.Contains(v) {
			label = fmt.Sprintf("✅ %d", v)
		}
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(label, ToggleCallback(v)))
		if len(row) == 6 {
			rows = append(rows, row)
			row = []tgbotapi.InlineKeyboardButton{}
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("🔄 Reset", CallbackReset),
	))

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
