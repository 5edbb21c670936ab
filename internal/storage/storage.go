package storage

import (
	"NoteKeeperBot/pkg/models"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

const (
	DefaultCacheSize       = 1000
	DefaultCleanupInterval = 5 * time.Minute
	defaultEntryMaxAge     = 24 * time.Hour
)

// BotStorage keeps the per-chat dialog state between Telegram updates.
type BotStorage interface {
	GetUserState(chatID int64) (string, bool)
	SetUserState(chatID int64, state string)
	GetDraft(chatID int64) (models.NoteDraft, bool)
	SetDraft(chatID int64, draft models.NoteDraft)
	GetLastMessageID(chatID int64) (int, bool)
	SetLastMessageID(chatID int64, messageID int)
	ClearUserData(chatID int64)
	CleanupExpiredData()
}

// MemoryStorage is an in-process BotStorage bounded by LRU caches, so an
// abandoned dialog can never grow the process without limit.
type MemoryStorage struct {
	mu sync.RWMutex

	userStates      *lru.Cache[int64, string]
	drafts          *lru.Cache[int64, models.NoteDraft]
	lastBotMessages *lru.Cache[int64, int]

	// first-seen time per chat, for TTL cleanup
	creationTime map[int64]time.Time
}

func NewMemoryStorage() (*MemoryStorage, error) {
	userStates, err := lru.New[int64, string](DefaultCacheSize)
	if err != nil {
		return nil, err
	}

	drafts, err := lru.New[int64, models.NoteDraft](DefaultCacheSize)
	if err != nil {
		return nil, err
	}

	lastBotMessages, err := lru.New[int64, int](DefaultCacheSize)
	if err != nil {
		return nil, err
	}

	storage := &MemoryStorage{
		userStates:      userStates,
		drafts:          drafts,
		lastBotMessages: lastBotMessages,
		creationTime:    make(map[int64]time.Time),
	}

	go storage.startCleanupRoutine()

	return storage, nil
}

func (s *MemoryStorage) startCleanupRoutine() {
	ticker := time.NewTicker(DefaultCleanupInterval)
	defer ticker.Stop()

	for range ticker.C {
		s.CleanupExpiredData()
	}
}

// CleanupExpiredData drops every chat not touched for defaultEntryMaxAge.
func (s *MemoryStorage) CleanupExpiredData() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for chatID, createdAt := range s.creationTime {
		if now.Sub(createdAt) > defaultEntryMaxAge {
			s.removeLocked(chatID)
		}
	}
}

func (s *MemoryStorage) GetUserState(chatID int64) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.userStates.Get(chatID)
}

func (s *MemoryStorage) SetUserState(chatID int64, state string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.userStates.Add(chatID, state)
	s.updateCreationTime(chatID)
}

func (s *MemoryStorage) GetDraft(chatID int64) (models.NoteDraft, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.drafts.Get(chatID)
}

func (s *MemoryStorage) SetDraft(chatID int64, draft models.NoteDraft) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.drafts.Add(chatID, draft)
	s.updateCreationTime(chatID)
}

func (s *MemoryStorage) GetLastMessageID(chatID int64) (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.lastBotMessages.Get(chatID)
}

func (s *MemoryStorage) SetLastMessageID(chatID int64, messageID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastBotMessages.Add(chatID, messageID)
	s.updateCreationTime(chatID)
}

func (s *MemoryStorage) ClearUserData(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.removeLocked(chatID)
}

func (s *MemoryStorage) removeLocked(chatID int64) {
	s.userStates.Remove(chatID)
	s.drafts.Remove(chatID)
	s.lastBotMessages.Remove(chatID)
	delete(s.creationTime, chatID)
}

func (s *MemoryStorage) updateCreationTime(chatID int64) {
	if _, exists := s.creationTime[chatID]; !exists {
		s.creationTime[chatID] = time.Now()
	}
}

// GetStats returns cache sizes for monitoring.
func (s *MemoryStorage) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return map[string]interface{}{
		"user_states_size":   s.userStates.Len(),
		"drafts_size":        s.drafts.Len(),
		"last_messages_size": s.lastBotMessages.Len(),
		"active_users":       len(s.creationTime),
		"cache_capacity":     DefaultCacheSize,
	}
}
