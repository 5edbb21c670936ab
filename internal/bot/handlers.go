package bot

import (
	"NoteKeeperBot/internal/database"
	dbmodels "NoteKeeperBot/internal/database/models"
	"NoteKeeperBot/internal/storage"
	"NoteKeeperBot/pkg/models"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"gorm.io/gorm"
)

type UpdateHandler struct {
	bot        *tgbotapi.BotAPI
	storage    storage.BotStorage
	msgHandler *MessageHandler
}

func NewUpdateHandler(bot *tgbotapi.BotAPI, storage storage.BotStorage) *UpdateHandler {
	return &UpdateHandler{
		bot:        bot,
		storage:    storage,
		msgHandler: NewMessageHandler(bot, storage),
	}
}

func (h *UpdateHandler) GetMessageHandler() *MessageHandler {
	return h.msgHandler
}

func (h *UpdateHandler) handleUserState(chatID int64, state, userText string) bool {
	switch state {
	case StateWaitingForCategoryName:
		h.createCategory(chatID, strings.TrimSpace(userText))
		return true

	case StateChoosingNoteCategory:
		category, err := database.FindCategoryByName(userText)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.msgHandler.sendMessage(chatID, fmt.Sprintf("There is no category «%s». Pick one from the keyboard.", userText), CreateBackKeyboard())
			return true
		}
		if err != nil {
			log.Printf("Error finding category %q: %v", userText, err)
			h.msgHandler.SendMainMenu(chatID)
			return true
		}

		h.storage.SetDraft(chatID, models.NoteDraft{
			CategoryID:   category.ID,
			CategoryName: category.Name,
		})
		h.msgHandler.AskForNoteText(chatID, category.Name)
		return true

	case StateWaitingForNoteText:
		h.createNote(chatID, userText)
		return true

	case StateBrowsingCategories:
		h.msgHandler.SendCategoryNotes(chatID, userText)
		return true

	case StateChoosingDeleteCategory:
		h.deleteCategory(chatID, userText)
		return true
	}
	return false
}

func (h *UpdateHandler) createCategory(chatID int64, name string) {
	if name == "" {
		h.msgHandler.sendMessage(chatID, "A category name cannot be empty, try again:", CreateBackKeyboard())
		return
	}

	existing, err := database.SearchCategoriesByName(name)
	if err != nil {
		log.Printf("Error searching category %q: %v", name, err)
		h.msgHandler.SendMainMenu(chatID)
		return
	}
	if len(existing) > 0 {
		h.msgHandler.sendMessage(chatID, fmt.Sprintf("Category «%s» already exists, names must be unique. Try another one:", name), CreateBackKeyboard())
		return
	}

	category, err := database.CreateCategory(name)
	if err != nil {
		log.Printf("Error creating category %q: %v", name, err)
		h.msgHandler.sendMessage(chatID, "Could not create the category, try again later.", CreateMainMenuKeyboard())
		h.storage.SetUserState(chatID, "")
		return
	}

	h.storage.SetUserState(chatID, "")
	h.msgHandler.sendMessage(chatID, fmt.Sprintf("✅ Category «%s» created.", category.Name), CreateMainMenuKeyboard())
}

func (h *UpdateHandler) createNote(chatID int64, text string) {
	draft, exists := h.storage.GetDraft(chatID)
	if !exists {
		// draft evicted or expired, restart the flow
		h.msgHandler.AskForNoteCategory(chatID)
		return
	}

	if strings.TrimSpace(text) == "" {
		h.msgHandler.sendMessage(chatID, "A note cannot be empty, send some text:", CreateBackKeyboard())
		return
	}

	note := &dbmodels.Note{Text: text, CategoryID: draft.CategoryID}
	if err := database.CreateNote(note); err != nil {
		log.Printf("Error creating note in category %d: %v", draft.CategoryID, err)
		h.msgHandler.sendMessage(chatID, "Could not save the note, try again later.", CreateMainMenuKeyboard())
		h.storage.ClearUserData(chatID)
		return
	}

	count, err := database.CountNotesByCategory(draft.CategoryID)
	if err != nil {
		log.Printf("Error counting notes for category %d: %v", draft.CategoryID, err)
	}

	h.storage.ClearUserData(chatID)
	h.msgHandler.sendMessage(chatID,
		fmt.Sprintf("✅ Saved to «%s» (%d note(s) there now).", draft.CategoryName, count),
		CreateMainMenuKeyboard())
}

func (h *UpdateHandler) deleteCategory(chatID int64, name string) {
	category, err := database.FindCategoryByName(name)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		h.msgHandler.sendMessage(chatID, fmt.Sprintf("There is no category «%s». Pick one from the keyboard.", name), CreateBackKeyboard())
		return
	}
	if err != nil {
		log.Printf("Error finding category %q: %v", name, err)
		h.msgHandler.SendMainMenu(chatID)
		return
	}

	if err := database.DeleteCategory(category.ID); err != nil {
		log.Printf("Error deleting category %d: %v", category.ID, err)
		h.msgHandler.sendMessage(chatID, "Could not delete the category, try again later.", CreateMainMenuKeyboard())
		h.storage.SetUserState(chatID, "")
		return
	}

	h.storage.SetUserState(chatID, "")
	h.msgHandler.sendMessage(chatID, fmt.Sprintf("🗑 Category «%s» and its notes were deleted.", category.Name), CreateMainMenuKeyboard())
}

func (h *UpdateHandler) HandleUpdates(updates tgbotapi.UpdatesChannel) {
	for update := range updates {
		if update.Message == nil || update.Message.From.IsBot {
			continue
		}

		chatID := update.Message.Chat.ID
		userText := update.Message.Text

		log.Printf("[%d]: %s", chatID, userText)

		adminChatID := os.Getenv("ADMIN_CHAT_ID")
		if adminChatID != "" && adminChatID != fmt.Sprintf("%d", chatID) {
			log.Printf("Ignoring chat id: %d", chatID)
			continue
		}

		if userText == BackButton {
			h.storage.ClearUserData(chatID)
			h.msgHandler.SendMainMenu(chatID)
			continue
		}

		if state, exists := h.storage.GetUserState(chatID); exists && state != "" {
			if h.handleUserState(chatID, state, userText) {
				continue
			}
		}

		switch userText {
		case "/start":
			h.msgHandler.SendStartMessage(chatID)

		case "📝 New note":
			h.msgHandler.AskForNoteCategory(chatID)

		case "🗂 Categories":
			h.msgHandler.SendCategoryList(chatID)

		case "➕ New category":
			h.msgHandler.AskForCategoryName(chatID)

		case "🗑 Delete category":
			h.msgHandler.AskForDeleteCategory(chatID)

		default:
			h.msgHandler.sendMessage(chatID, "Use the menu to navigate", CreateMainMenuKeyboard())
		}
	}
}
