package chatstore

import (
	"time"

	"chatflow/src/models"
)

const avatarBaseURL = "https://api.dicebear.com/7.x/avataaars/svg?seed="

// AvatarRef returns the avatar reference generated for a seed string.
func AvatarRef(seed string) string {
	return avatarBaseURL + seed
}

// DefaultSeed returns the demo chats and messages loaded at session start,
// with times relative to now.
func DefaultSeed(now time.Time) ([]models.Chat, []models.Message) {
	ago := func(d time.Duration) time.Time { return now.Add(-d) }

	chats := []models.Chat{
		{
			ID:                 "1",
			Name:               "Alice Johnson",
			AvatarRef:          AvatarRef("alice"),
			LastMessagePreview: "Would you like to grab coffee this afternoon?",
			LastMessageTime:    ago(2 * time.Minute),
			UnreadCount:        2,
		},
		{
			ID:                 "2",
			Name:               "Bob Smith",
			AvatarRef:          AvatarRef("bob"),
			LastMessagePreview: "Let's meet up this weekend",
			LastMessageTime:    ago(30 * time.Minute),
		},
		{
			ID:                 "3",
			Name:               "Team Discussion",
			AvatarRef:          AvatarRef("team"),
			LastMessagePreview: "Great work on the project!",
			LastMessageTime:    ago(2 * time.Hour),
			UnreadCount:        5,
		},
	}

	messages := []models.Message{
		{ID: "1", ChatID: "1", Content: "Hey! How are you doing?", Timestamp: ago(5 * time.Minute), Sender: "Alice Johnson"},
		{ID: "2", ChatID: "1", Content: "I'm doing great! Thanks for asking.", Timestamp: ago(4 * time.Minute), Sender: models.LocalSender, IsPinned: true},
		{ID: "3", ChatID: "1", Content: "Would you like to grab coffee this afternoon?", Timestamp: ago(2 * time.Minute), Sender: "Alice Johnson"},
		{ID: "4", ChatID: "2", Content: "Let's meet up this weekend", Timestamp: ago(30 * time.Minute), Sender: "Bob Smith"},
		{ID: "5", ChatID: "3", Content: "Great work on the project!", Timestamp: ago(2 * time.Hour), Sender: "Team Lead", IsPinned: true},
	}
	return chats, messages
}
