package scheduler

import (
	"NoteKeeperBot/internal/bot"
	"NoteKeeperBot/internal/database"
	"NoteKeeperBot/internal/database/models"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Scheduler sends a daily summary of stored notes to the admin chat.
type Scheduler struct {
	bot *bot.MessageHandler
}

func NewScheduler(botHandler *bot.MessageHandler) *Scheduler {
	return &Scheduler{bot: botHandler}
}

// StartDailyDigest runs the digest loop in the background. The send time is
// taken from DIGEST_HOUR and DIGEST_MINUTE, defaulting to 09:00.
func (s *Scheduler) StartDailyDigest() {
	go func() {
		for {
			now := time.Now()
			nextRun := nextRunAfter(now, envInt("DIGEST_HOUR", 9), envInt("DIGEST_MINUTE", 0))

			duration := nextRun.Sub(now)
			log.Printf("Next notes digest will be sent at %v (in %v)", nextRun, duration)
			time.Sleep(duration)

			s.sendDigest()
		}
	}()
}

func (s *Scheduler) sendDigest() {
	adminChatID, err := strconv.ParseInt(os.Getenv("ADMIN_CHAT_ID"), 10, 64)
	if err != nil {
		log.Printf("Digest skipped, ADMIN_CHAT_ID is not set: %v", err)
		return
	}

	categories, err := database.GetAllCategories()
	if err != nil {
		log.Printf("Error getting categories for digest: %v", err)
		return
	}

	counts := make(map[uint]int64, len(categories))
	for _, category := range categories {
		count, err := database.CountNotesByCategory(category.ID)
		if err != nil {
			log.Printf("Error counting notes for category %d: %v", category.ID, err)
			continue
		}
		counts[category.ID] = count
	}

	text := formatDigest(categories, counts)
	if err := s.bot.SendMessage(adminChatID, text, bot.CreateMainMenuKeyboard()); err != nil {
		log.Printf("Error sending digest to chat %d: %v", adminChatID, err)
	}
}

// nextRunAfter returns the next occurrence of hour:minute strictly after now.
func nextRunAfter(now time.Time, hour, minute int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if !now.Before(next) {
		next = next.Add(24 * time.Hour)
	}
	return next
}

func formatDigest(categories []models.Category, counts map[uint]int64) string {
	if len(categories) == 0 {
		return "🗂 Notes digest: no categories yet."
	}

	var sb strings.Builder
	sb.WriteString("🗂 Notes digest:\n")
	var total int64
	for _, category := range categories {
		count := counts[category.ID]
		total += count
		sb.WriteString(fmt.Sprintf("\n• %s — %d", category.Name, count))
	}
	sb.WriteString(fmt.Sprintf("\n\nTotal: %d note(s)", total))
	return sb.String()
}

func envInt(name string, fallback int) int {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
