// components/sidebar/model.go - SidebarModel is the chat list pane: cursor
// navigation over the session's chats, selection, and delete requests.

package sidebar

import (
	"time"

	"chatflow/src/models"
	"chatflow/src/types"

	tea "github.com/charmbracelet/bubbletea"
)

// ChatSource is the part of the chat session the sidebar reads and mutates.
type ChatSource interface {
	Chats() []models.Chat
	SelectedChatID() string
	SelectChat(chatID string) bool
}

// ChatSelectedMsg reports that enter selected a chat.
type ChatSelectedMsg struct {
	ChatID string
}

// DeleteChatRequestMsg asks the owner to confirm and delete a chat.
type DeleteChatRequestMsg struct {
	ChatID string
	Name   string
}

// SidebarModel manages the chat list pane. It keeps no copy of the chats;
// every Update and View reads them from the source.
type SidebarModel struct {
	source       ChatSource
	now          func() time.Time
	Cursor       int
	scrollOffset int
	Focused      bool
	Width        int
	Height       int
}

// NewSidebarModel creates a sidebar over source. now defaults to time.Now.
func NewSidebarModel(source ChatSource, now func() time.Time) *SidebarModel {
	if now == nil {
		now = time.Now
	}
	return &SidebarModel{source: source, now: now, Width: 32, Height: 20}
}

// SetSize sets the outer size of the pane.
func (s *SidebarModel) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// CursorChat returns the chat under the cursor.
func (s *SidebarModel) CursorChat() (models.Chat, bool) {
	chats := s.source.Chats()
	s.clamp(len(chats))
	if len(chats) == 0 {
		return models.Chat{}, false
	}
	return chats[s.Cursor], true
}

// Update handles key navigation for the chat list.
func (s *SidebarModel) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	chats := s.source.Chats()
	s.clamp(len(chats))
	if len(chats) == 0 {
		return nil
	}
	switch key.String() {
	case "up", "k":
		if s.Cursor > 0 {
			s.Cursor--
		}
	case "down", "j":
		if s.Cursor < len(chats)-1 {
			s.Cursor++
		}
	case "home", "g":
		s.Cursor = 0
	case "end", "G":
		s.Cursor = len(chats) - 1
	case "enter":
		chat := chats[s.Cursor]
		if s.source.SelectChat(chat.ID) {
			return func() tea.Msg { return ChatSelectedMsg{ChatID: chat.ID} }
		}
	case "d", "delete":
		chat := chats[s.Cursor]
		return func() tea.Msg { return DeleteChatRequestMsg{ChatID: chat.ID, Name: chat.Name} }
	}
	return nil
}

// clamp keeps the cursor inside a list of n chats after deletions.
func (s *SidebarModel) clamp(n int) {
	if s.Cursor >= n {
		s.Cursor = n - 1
	}
	if s.Cursor < 0 {
		s.Cursor = 0
	}
}

// GetControlSet returns the chat list bindings.
func (s *SidebarModel) GetControlSet() types.ControlSet {
	return types.ControlSet{Controls: []types.ControlType{
		{Name: "move", Key: "↑↓"},
		{Name: "open", Key: "enter"},
		{Name: "delete", Key: "d"},
	}}
}
