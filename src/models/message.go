// message.go - Defines the Message struct for chat entries across the application.

package models

import "time"

// LocalSender is the sender label used for messages typed in this session.
const LocalSender = "You"

// Message represents a chat message.
type Message struct {
	ID        string    `json:"id"`
	ChatID    string    `json:"chat_id"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	Sender    string    `json:"sender"`
	IsPinned  bool      `json:"is_pinned"`
}

// IsLocal reports whether the message was sent by the local user.
func (m Message) IsLocal() bool {
	return m.Sender == LocalSender
}
