// Package chatwindow renders the message thread of the selected chat and
// handles the per-message actions: pin toggle, copy and clear requests.
package chatwindow

import (
	"chatflow/src/models"
	"chatflow/src/types"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// ThreadSource is the part of the chat session the thread view reads and mutates.
type ThreadSource interface {
	SelectedChat() (models.Chat, bool)
	MessagesForChat(chatID string) []models.Message
	TogglePin(messageID string) bool
}

// ClearChatRequestMsg asks the owner to confirm and clear a chat's messages.
type ClearChatRequestMsg struct {
	ChatID string
	Name   string
}

// CopiedMsg reports the result of copying a message to the clipboard.
type CopiedMsg struct {
	MessageID string
	Err       error
}

// PinToggledMsg reports a pin state change made from the thread.
type PinToggledMsg struct {
	MessageID string
	Pinned    bool
}

// ChatWindowModel is the thread pane. The cursor is a message index; while
// it sits on the last message it follows new messages.
type ChatWindowModel struct {
	source  ThreadSource
	copy    func(string) error
	chatID  string
	Cursor  int
	follow  bool
	top     int
	Focused bool
	Width   int
	Height  int
}

// Option configures a ChatWindowModel.
type Option func(*ChatWindowModel)

// WithClipboard replaces the clipboard writer.
func WithClipboard(write func(string) error) Option {
	return func(c *ChatWindowModel) { c.copy = write }
}

func NewChatWindowModel(source ThreadSource, opts ...Option) *ChatWindowModel {
	c := &ChatWindowModel{
		source: source,
		copy:   clipboard.WriteAll,
		follow: true,
		Width:  60,
		Height: 20,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *ChatWindowModel) SetSize(width, height int) {
	c.Width = width
	c.Height = height
}

// messages returns the selected chat's thread, resetting the cursor when the
// selection changed since the last call.
func (c *ChatWindowModel) messages() (models.Chat, []models.Message, bool) {
	chat, ok := c.source.SelectedChat()
	if !ok {
		c.chatID = ""
		return models.Chat{}, nil, false
	}
	if chat.ID != c.chatID {
		c.chatID = chat.ID
		c.follow = true
		c.top = 0
	}
	msgs := c.source.MessagesForChat(chat.ID)
	switch {
	case len(msgs) == 0:
		c.Cursor = 0
		c.follow = true
	case c.follow || c.Cursor >= len(msgs):
		c.Cursor = len(msgs) - 1
	}
	return chat, msgs, true
}

// CursorMessage returns the message under the cursor.
func (c *ChatWindowModel) CursorMessage() (models.Message, bool) {
	_, msgs, ok := c.messages()
	if !ok || len(msgs) == 0 {
		return models.Message{}, false
	}
	return msgs[c.Cursor], true
}

// Update handles thread navigation and message actions.
func (c *ChatWindowModel) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	chat, msgs, ok := c.messages()
	if !ok {
		return nil
	}
	if key.String() == "ctrl+x" {
		return func() tea.Msg { return ClearChatRequestMsg{ChatID: chat.ID, Name: chat.Name} }
	}
	if len(msgs) == 0 {
		return nil
	}
	last := len(msgs) - 1
	switch key.String() {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < last {
			c.Cursor++
		}
	case "home", "g":
		c.Cursor = 0
	case "end", "G":
		c.Cursor = last
	case "p":
		id := msgs[c.Cursor].ID
		pinned := c.source.TogglePin(id)
		return func() tea.Msg { return PinToggledMsg{MessageID: id, Pinned: pinned} }
	case "y":
		m := msgs[c.Cursor]
		write := c.copy
		return func() tea.Msg { return CopiedMsg{MessageID: m.ID, Err: write(m.Content)} }
	}
	c.follow = c.Cursor == last
	return nil
}

// GetControlSet returns the thread bindings.
func (c *ChatWindowModel) GetControlSet() types.ControlSet {
	return types.ControlSet{Controls: []types.ControlType{
		{Name: "move", Key: "↑↓"},
		{Name: "pin/unpin", Key: "p"},
		{Name: "copy", Key: "y"},
		{Name: "clear chat", Key: "ctrl+x"},
	}}
}
