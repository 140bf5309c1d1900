// Package chatstore holds the in-memory chat and message collections and the
// session coordinator that is the only writer to them.
package chatstore

import (
	"slices"

	"chatflow/src/models"
)

// ChatStore is an insertion-ordered collection of chats keyed by id.
// It is not safe for concurrent use.
type ChatStore struct {
	order []string
	byID  map[string]*models.Chat
}

// NewChatStore creates an empty chat store.
func NewChatStore() *ChatStore {
	return &ChatStore{byID: make(map[string]*models.Chat)}
}

// Put inserts or replaces a chat. Replacing keeps the original position.
func (s *ChatStore) Put(chat models.Chat) {
	if _, ok := s.byID[chat.ID]; !ok {
		s.order = append(s.order, chat.ID)
	}
	c := chat
	s.byID[chat.ID] = &c
}

// Get returns a copy of the chat with the given id.
func (s *ChatStore) Get(id string) (models.Chat, bool) {
	c, ok := s.byID[id]
	if !ok {
		return models.Chat{}, false
	}
	return *c, true
}

// Update applies fn to the stored chat in place. It reports whether the chat exists.
func (s *ChatStore) Update(id string, fn func(*models.Chat)) bool {
	c, ok := s.byID[id]
	if !ok {
		return false
	}
	fn(c)
	return true
}

// Delete removes the chat. It reports whether the chat existed.
func (s *ChatStore) Delete(id string) bool {
	if _, ok := s.byID[id]; !ok {
		return false
	}
	delete(s.byID, id)
	s.order = slices.DeleteFunc(s.order, func(v string) bool { return v == id })
	return true
}

// All returns copies of every chat in insertion order.
func (s *ChatStore) All() []models.Chat {
	out := make([]models.Chat, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.byID[id])
	}
	return out
}

// Len returns the number of chats.
func (s *ChatStore) Len() int { return len(s.order) }

// MessageStore is a flat, insertion-ordered collection of messages keyed by id.
// Messages reference their chat by id only.
type MessageStore struct {
	order []string
	byID  map[string]*models.Message
}

// NewMessageStore creates an empty message store.
func NewMessageStore() *MessageStore {
	return &MessageStore{byID: make(map[string]*models.Message)}
}

// Append adds a message at the end of the collection. An existing id is replaced in place.
func (s *MessageStore) Append(msg models.Message) {
	if _, ok := s.byID[msg.ID]; !ok {
		s.order = append(s.order, msg.ID)
	}
	m := msg
	s.byID[msg.ID] = &m
}

// Get returns a copy of the message with the given id.
func (s *MessageStore) Get(id string) (models.Message, bool) {
	m, ok := s.byID[id]
	if !ok {
		return models.Message{}, false
	}
	return *m, true
}

// Update applies fn to the stored message in place. It reports whether the message exists.
func (s *MessageStore) Update(id string, fn func(*models.Message)) bool {
	m, ok := s.byID[id]
	if !ok {
		return false
	}
	fn(m)
	return true
}

// DeleteWhere removes every message matching pred and returns how many were removed.
func (s *MessageStore) DeleteWhere(pred func(models.Message) bool) int {
	removed := 0
	s.order = slices.DeleteFunc(s.order, func(id string) bool {
		if pred(*s.byID[id]) {
			delete(s.byID, id)
			removed++
			return true
		}
		return false
	})
	return removed
}

// Filter returns copies of the messages matching pred, in insertion order.
func (s *MessageStore) Filter(pred func(models.Message) bool) []models.Message {
	var out []models.Message
	for _, id := range s.order {
		if m := s.byID[id]; pred(*m) {
			out = append(out, *m)
		}
	}
	return out
}

// Len returns the number of messages.
func (s *MessageStore) Len() int { return len(s.order) }
