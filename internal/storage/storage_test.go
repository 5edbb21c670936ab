package storage

import (
	"NoteKeeperBot/pkg/models"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestUserStateRoundTrip(t *testing.T) {
	s, err := NewMemoryStorage()
	require.NoError(t, err)

	_, exists := s.GetUserState(1)
	require.False(t, exists)

	s.SetUserState(1, "waiting_for_note_text")
	state, exists := s.GetUserState(1)
	require.True(t, exists)
	require.Equal(t, "waiting_for_note_text", state)
}

func TestDraftRoundTrip(t *testing.T) {
	s, err := NewMemoryStorage()
	require.NoError(t, err)

	draft := models.NoteDraft{CategoryID: 7, CategoryName: "ideas"}
	s.SetDraft(42, draft)

	got, exists := s.GetDraft(42)
	require.True(t, exists)
	require.Equal(t, draft, got)
}

func TestClearUserData(t *testing.T) {
	s, err := NewMemoryStorage()
	require.NoError(t, err)

	s.SetUserState(5, "browsing_categories")
	s.SetDraft(5, models.NoteDraft{CategoryID: 1})
	s.SetLastMessageID(5, 100)

	s.ClearUserData(5)

	_, exists := s.GetUserState(5)
	require.False(t, exists)
	_, exists = s.GetDraft(5)
	require.False(t, exists)
	_, exists = s.GetLastMessageID(5)
	require.False(t, exists)
}

func TestCleanupExpiredData(t *testing.T) {
	s, err := NewMemoryStorage()
	require.NoError(t, err)

	s.SetUserState(1, "stale")
	s.SetUserState(2, "fresh")

	s.mu.Lock()
	s.creationTime[1] = time.Now().Add(-25 * time.Hour)
	s.mu.Unlock()

	s.CleanupExpiredData()

	_, exists := s.GetUserState(1)
	require.False(t, exists)
	state, exists := s.GetUserState(2)
	require.True(t, exists)
	require.Equal(t, "fresh", state)
}

func TestGetStats(t *testing.T) {
	s, err := NewMemoryStorage()
	require.NoError(t, err)

	s.SetUserState(1, "x")
	s.SetLastMessageID(1, 10)

	stats := s.GetStats()
	require.Equal(t, 1, stats["user_states_size"])
	require.Equal(t, 1, stats["last_messages_size"])
	require.Equal(t, 1, stats["active_users"])
}
