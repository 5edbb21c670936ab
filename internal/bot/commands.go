package bot

import (
	"NoteKeeperBot/internal/database"
	"NoteKeeperBot/internal/storage"
	"fmt"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	StateWaitingForCategoryName = "waiting_for_category_name"
	StateChoosingNoteCategory   = "choosing_note_category"
	StateWaitingForNoteText     = "waiting_for_note_text"
	StateBrowsingCategories     = "browsing_categories"
	StateChoosingDeleteCategory = "choosing_delete_category"
)

type MessageHandler struct {
	bot     *tgbotapi.BotAPI
	storage storage.BotStorage
}

func NewMessageHandler(bot *tgbotapi.BotAPI, storage storage.BotStorage) *MessageHandler {
	return &MessageHandler{bot: bot, storage: storage}
}

func (h *MessageHandler) sendMessage(chatID int64, text string, keyboard tgbotapi.ReplyKeyboardMarkup) error {
	msg := tgbotapi.NewMessage(chatID, text)

	if keyboard.Keyboard != nil {
		msg.ReplyMarkup = keyboard
	} else {
		msg.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)
	}

	sentMsg, err := h.bot.Send(msg)
	if err != nil {
		return fmt.Errorf("send message failed: %w", err)
	}

	h.storage.SetLastMessageID(chatID, sentMsg.MessageID)
	return nil
}

func (h *MessageHandler) SendMessage(chatID int64, text string, keyboard tgbotapi.ReplyKeyboardMarkup) error {
	return h.sendMessage(chatID, text, keyboard)
}

func (h *MessageHandler) SendStartMessage(chatID int64) {
	text := `👋 Welcome to NoteKeeperBot!

✨ What it does:
• 🗂 Keeps your notes sorted into categories
• 📝 Saves any text you send as a note
• 🔎 Lets you browse notes per category`

	h.sendMessage(chatID, text, CreateMainMenuKeyboard())
}

func (h *MessageHandler) SendMainMenu(chatID int64) {
	h.storage.SetUserState(chatID, "")
	h.sendMessage(chatID, "Pick an action from the menu", CreateMainMenuKeyboard())
}

func (h *MessageHandler) AskForCategoryName(chatID int64) {
	h.sendMessage(chatID, "✏️ Send the name for the new category:", CreateBackKeyboard())
	h.storage.SetUserState(chatID, StateWaitingForCategoryName)
}

// AskForNoteCategory shows the category picker, or falls back to creating a
// category first when none exist yet.
func (h *MessageHandler) AskForNoteCategory(chatID int64) {
	categories, err := database.GetAllCategories()
	if err != nil {
		log.Printf("Error listing categories: %v", err)
		h.sendMessage(chatID, "Something went wrong, try again later.", CreateMainMenuKeyboard())
		return
	}

	if len(categories) == 0 {
		h.sendMessage(chatID, "There are no categories yet. Create one first:", CreateBackKeyboard())
		h.storage.SetUserState(chatID, StateWaitingForCategoryName)
		return
	}

	h.sendMessage(chatID, "🗂 Pick a category for the note:", CreateCategoriesKeyboard(categories))
	h.storage.SetUserState(chatID, StateChoosingNoteCategory)
}

func (h *MessageHandler) AskForNoteText(chatID int64, categoryName string) {
	h.sendMessage(chatID, fmt.Sprintf("📝 Send the text of the note for «%s»:", categoryName), CreateBackKeyboard())
	h.storage.SetUserState(chatID, StateWaitingForNoteText)
}

func (h *MessageHandler) SendCategoryList(chatID int64) {
	categories, err := database.GetAllCategories()
	if err != nil {
		log.Printf("Error listing categories: %v", err)
		h.sendMessage(chatID, "Something went wrong, try again later.", CreateMainMenuKeyboard())
		return
	}

	if len(categories) == 0 {
		h.sendMessage(chatID, "There are no categories yet.", CreateMainMenuKeyboard())
		return
	}

	h.sendMessage(chatID, "🗂 Pick a category to browse:", CreateCategoriesKeyboard(categories))
	h.storage.SetUserState(chatID, StateBrowsingCategories)
}

func (h *MessageHandler) SendCategoryNotes(chatID int64, categoryName string) {
	category, err := database.FindCategoryByName(categoryName)
	if err != nil {
		log.Printf("Error finding category %q: %v", categoryName, err)
		h.sendMessage(chatID, fmt.Sprintf("Category «%s» was not found.", categoryName), CreateMainMenuKeyboard())
		return
	}

	notes, err := database.GetCategoryNotes(category.ID)
	if err != nil {
		log.Printf("Error loading notes for category %d: %v", category.ID, err)
		h.sendMessage(chatID, "Something went wrong, try again later.", CreateMainMenuKeyboard())
		return
	}

	if len(notes) == 0 {
		h.sendMessage(chatID, fmt.Sprintf("«%s» has no notes yet.", category.Name), CreateMainMenuKeyboard())
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🗂 %s — %d note(s):\n", category.Name, len(notes)))
	for i, note := range notes {
		sb.WriteString(fmt.Sprintf("\n%d. %s", i+1, note.Text))
	}

	h.sendMessage(chatID, sb.String(), CreateMainMenuKeyboard())
	h.storage.SetUserState(chatID, "")
}

func (h *MessageHandler) AskForDeleteCategory(chatID int64) {
	categories, err := database.GetAllCategories()
	if err != nil {
		log.Printf("Error listing categories: %v", err)
		h.sendMessage(chatID, "Something went wrong, try again later.", CreateMainMenuKeyboard())
		return
	}

	if len(categories) == 0 {
		h.sendMessage(chatID, "There is nothing to delete.", CreateMainMenuKeyboard())
		return
	}

	h.sendMessage(chatID, "🗑 Pick a category to delete (its notes go with it):", CreateCategoriesKeyboard(categories))
	h.storage.SetUserState(chatID, StateChoosingDeleteCategory)
}
