package chatstore

import (
	"io"
	"log/slog"
	"slices"
	"strings"
	"time"

	"chatflow/src/models"

	"github.com/google/uuid"
)

// Session coordinates the chat and message stores for one logged-in user.
//
// Every method runs to completion on the caller's goroutine and leaves both
// stores consistent. A Session is driven from the Bubble Tea update loop and
// is not safe for concurrent use.
type Session struct {
	chats    *ChatStore
	messages *MessageStore
	selected string

	now    func() time.Time
	newID  func() string
	logger *slog.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithClock replaces the time source used for new messages.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// WithIDGenerator replaces the message id generator.
func WithIDGenerator(newID func() string) Option {
	return func(s *Session) { s.newID = newID }
}

// WithLogger sets the logger used for mutation traces.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) { s.logger = logger }
}

// NewSession creates an empty session.
func NewSession(opts ...Option) *Session {
	s := &Session{
		chats:    NewChatStore(),
		messages: NewMessageStore(),
		now:      time.Now,
		newID:    uuid.NewString,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Seed loads initial chats and messages. Messages whose chat is unknown are dropped.
func (s *Session) Seed(chats []models.Chat, messages []models.Message) {
	for _, c := range chats {
		s.chats.Put(c)
	}
	for _, m := range messages {
		if _, ok := s.chats.Get(m.ChatID); !ok {
			s.logger.Warn("dropping seed message for unknown chat", "message_id", m.ID, "chat_id", m.ChatID)
			continue
		}
		s.messages.Append(m)
	}
	s.logger.Debug("session seeded", "chats", s.chats.Len(), "messages", s.messages.Len())
}

// Reset drops all chats, messages and the selection.
func (s *Session) Reset() {
	s.chats = NewChatStore()
	s.messages = NewMessageStore()
	s.selected = ""
}

// Chats returns every chat in display order.
func (s *Session) Chats() []models.Chat {
	return s.chats.All()
}

// Chat returns the chat with the given id.
func (s *Session) Chat(id string) (models.Chat, bool) {
	return s.chats.Get(id)
}

// SelectedChatID returns the selected chat id, or "" when nothing is selected.
func (s *Session) SelectedChatID() string {
	return s.selected
}

// SelectedChat returns the selected chat, if any.
func (s *Session) SelectedChat() (models.Chat, bool) {
	if s.selected == "" {
		return models.Chat{}, false
	}
	return s.chats.Get(s.selected)
}

// SelectChat focuses the chat and marks it read. An unknown id leaves the
// session untouched and returns false.
func (s *Session) SelectChat(chatID string) bool {
	ok := s.chats.Update(chatID, func(c *models.Chat) {
		c.UnreadCount = 0
	})
	if !ok {
		s.logger.Debug("select ignored, unknown chat", "chat_id", chatID)
		return false
	}
	s.selected = chatID
	return true
}

// SendMessage appends a message from the local user to the selected chat.
// It does nothing and returns false when no chat is selected or the trimmed
// content is empty.
func (s *Session) SendMessage(content string) (models.Message, bool) {
	text := strings.TrimSpace(content)
	if s.selected == "" || text == "" {
		return models.Message{}, false
	}
	msg := models.Message{
		ID:        s.newID(),
		ChatID:    s.selected,
		Content:   text,
		Timestamp: s.now(),
		Sender:    models.LocalSender,
	}
	if !s.chats.Update(s.selected, func(c *models.Chat) {
		c.LastMessagePreview = msg.Content
		c.LastMessageTime = msg.Timestamp
	}) {
		return models.Message{}, false
	}
	s.messages.Append(msg)
	s.logger.Debug("message sent", "chat_id", msg.ChatID, "message_id", msg.ID)
	return msg, true
}

// PinMessage flags the message as pinned. Unknown ids are ignored.
func (s *Session) PinMessage(messageID string) {
	s.setPinned(messageID, true)
}

// UnpinMessage clears the pinned flag. Unknown ids are ignored.
func (s *Session) UnpinMessage(messageID string) {
	s.setPinned(messageID, false)
}

// TogglePin flips the pinned flag and returns the new state.
func (s *Session) TogglePin(messageID string) bool {
	msg, ok := s.messages.Get(messageID)
	if !ok {
		return false
	}
	s.setPinned(messageID, !msg.IsPinned)
	return !msg.IsPinned
}

func (s *Session) setPinned(messageID string, pinned bool) {
	s.messages.Update(messageID, func(m *models.Message) {
		m.IsPinned = pinned
	})
}

// ClearMessages removes every message of the chat, pinned ones included,
// and drops the chat's last-message snapshot.
func (s *Session) ClearMessages(chatID string) {
	n := s.messages.DeleteWhere(func(m models.Message) bool { return m.ChatID == chatID })
	s.chats.Update(chatID, func(c *models.Chat) {
		c.ClearLastMessage()
	})
	s.logger.Debug("chat cleared", "chat_id", chatID, "removed", n)
}

// DeleteChat removes the chat and all its messages, and clears the selection
// if it pointed at the chat.
func (s *Session) DeleteChat(chatID string) {
	s.chats.Delete(chatID)
	n := s.messages.DeleteWhere(func(m models.Message) bool { return m.ChatID == chatID })
	if s.selected == chatID {
		s.selected = ""
	}
	s.logger.Debug("chat deleted", "chat_id", chatID, "removed", n)
}

// MessagesForChat returns the chat's messages ordered by timestamp. Messages
// with equal timestamps keep their insertion order.
func (s *Session) MessagesForChat(chatID string) []models.Message {
	msgs := s.messages.Filter(func(m models.Message) bool { return m.ChatID == chatID })
	slices.SortStableFunc(msgs, func(a, b models.Message) int {
		return a.Timestamp.Compare(b.Timestamp)
	})
	return msgs
}

// PinnedMessages returns every pinned message across all chats.
func (s *Session) PinnedMessages() []models.Message {
	return s.messages.Filter(func(m models.Message) bool { return m.IsPinned })
}

// PinnedMessagesForSelection returns the pinned messages of the selected chat,
// or all pinned messages when no chat is selected.
func (s *Session) PinnedMessagesForSelection() []models.Message {
	if s.selected == "" {
		return s.PinnedMessages()
	}
	return s.messages.Filter(func(m models.Message) bool {
		return m.IsPinned && m.ChatID == s.selected
	})
}
