package bot

import (
	"NoteKeeperBot/internal/database/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const BackButton = "⬅️ Back"

func CreateMainMenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("📝 New note"),
			tgbotapi.NewKeyboardButton("🗂 Categories"),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("➕ New category"),
			tgbotapi.NewKeyboardButton("🗑 Delete category"),
		),
	)
}

func CreateBackKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(BackButton),
		),
	)
}

// CreateCategoriesKeyboard lays category names out two per row, with a back
// button at the bottom.
func CreateCategoriesKeyboard(categories []models.Category) tgbotapi.ReplyKeyboardMarkup {
	var rows [][]tgbotapi.KeyboardButton

	var row []tgbotapi.KeyboardButton
	for _, category := range categories {
		row = append(row, tgbotapi.NewKeyboardButton(category.Name))
		if len(row) == 2 {
			rows = append(rows, tgbotapi.NewKeyboardButtonRow(row...))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, tgbotapi.NewKeyboardButtonRow(row...))
	}

	rows = append(rows, tgbotapi.NewKeyboardButtonRow(
		tgbotapi.NewKeyboardButton(BackButton),
	))

	return tgbotapi.NewReplyKeyboard(rows...)
}
