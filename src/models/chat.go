package models

import "time"

// Chat represents one conversation thread for list display.
type Chat struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	AvatarRef          string    `json:"avatar"`
	LastMessagePreview string    `json:"last_message,omitempty"`
	LastMessageTime    time.Time `json:"last_message_time"` // zero when the chat has no messages
	UnreadCount        int       `json:"unread_count"`
}

// HasLastMessage reports whether the chat carries a last-message snapshot.
func (c Chat) HasLastMessage() bool {
	return !c.LastMessageTime.IsZero()
}

// ClearLastMessage drops the last-message snapshot.
func (c *Chat) ClearLastMessage() {
	c.LastMessagePreview = ""
	c.LastMessageTime = time.Time{}
}
