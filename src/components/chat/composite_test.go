package chat

import (
	"testing"
	"time"

	"chatflow/src/components/chatwindow"
	"chatflow/src/components/modals/dialogs"
	"chatflow/src/components/sidebar"
	"chatflow/src/models"
	"chatflow/src/services/chatstore"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newTestScreen(t *testing.T) (*CompositeChatViewState, *chatstore.Session) {
	t.Helper()
	clock := func() time.Time { return testNow }
	s := chatstore.NewSession(chatstore.WithClock(clock))
	s.Seed(chatstore.DefaultSeed(testNow))
	user := &models.User{ID: "1", Username: "jane", Email: "jane@example.com"}
	c := NewCompositeChatViewState(s, user,
		WithClock(clock),
		WithStatusTTL(time.Millisecond),
		WithWindowOptions(chatwindow.WithClipboard(func(string) error { return nil })),
	)
	c.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return c, s
}

func press(c *CompositeChatViewState, keys ...tea.KeyMsg) {
	for _, k := range keys {
		_, cmd := c.Update(k)
		drain(c, cmd)
	}
}

// drain feeds command results back into the screen, skipping timers.
func drain(c *CompositeChatViewState, cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	msg := cmd()
	switch msg.(type) {
	case nil, statusExpiredMsg:
		return
	}
	if _, ok := msg.(LogoutRequestedMsg); ok {
		return
	}
	_, next := c.Update(msg)
	drain(c, next)
}

func typeText(c *CompositeChatViewState, s string) {
	for _, r := range s {
		press(c, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	down  = tea.KeyMsg{Type: tea.KeyDown}
	left  = tea.KeyMsg{Type: tea.KeyLeft}
	tab   = tea.KeyMsg{Type: tea.KeyTab}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func TestChatScreen_SelectAndSend(t *testing.T) {
	c, s := newTestScreen(t)
	assert.NotContains(t, c.View(), "Type a message...")

	press(c, enter)
	assert.Equal(t, "1", s.SelectedChatID())
	assert.Equal(t, FocusInput, c.Focus)
	assert.Contains(t, c.View(), "Would you like to grab coffee")

	typeText(c, "  hi  ")
	press(c, enter)

	msgs := s.MessagesForChat("1")
	last := msgs[len(msgs)-1]
	assert.Equal(t, "hi", last.Content)
	assert.Equal(t, models.LocalSender, last.Sender)
	chat, _ := s.Chat("1")
	assert.Equal(t, "hi", chat.LastMessagePreview)
	assert.Empty(t, c.Input.Value())
}

func TestChatScreen_BlankMessageIsIgnored(t *testing.T) {
	c, s := newTestScreen(t)
	press(c, enter)
	typeText(c, "   ")
	press(c, enter)

	assert.Len(t, s.MessagesForChat("1"), 3)
	assert.Equal(t, "   ", c.Input.Value())
}

func TestChatScreen_FocusCycle(t *testing.T) {
	c, s := newTestScreen(t)

	// Without a selection the composer is skipped.
	press(c, tab)
	assert.Equal(t, FocusThread, c.Focus)
	press(c, tab)
	assert.Equal(t, FocusList, c.Focus)

	s.SelectChat("2")
	press(c, tab, tab)
	assert.Equal(t, FocusInput, c.Focus)
	assert.True(t, c.Input.Focused())
	press(c, esc)
	assert.Equal(t, FocusList, c.Focus)
}

func TestChatScreen_DeleteChatWithConfirmation(t *testing.T) {
	c, s := newTestScreen(t)
	press(c, down, runes("d"))

	require.IsType(t, &dialogs.ConfirmationModal{}, c.TopModal())
	assert.Contains(t, c.View(), "Bob Smith")

	// Default answer is No.
	press(c, enter)
	assert.Nil(t, c.TopModal())
	_, ok := s.Chat("2")
	assert.True(t, ok)

	press(c, runes("d"), left, enter)
	_, ok = s.Chat("2")
	assert.False(t, ok)
	assert.Empty(t, s.MessagesForChat("2"))
	assert.Equal(t, "Chat deleted", c.Status())
}

func TestChatScreen_DeleteSelectedChatHidesComposer(t *testing.T) {
	c, s := newTestScreen(t)
	press(c, enter)
	require.Equal(t, FocusInput, c.Focus)

	press(c, esc, runes("d"), left, enter)
	assert.Empty(t, s.SelectedChatID())
	assert.Equal(t, FocusList, c.Focus)
	assert.Contains(t, c.View(), "Select a chat")
}

func TestChatScreen_PinThenClear(t *testing.T) {
	c, s := newTestScreen(t)
	press(c, enter, tab, tab)
	require.Equal(t, FocusThread, c.Focus)

	press(c, runes("p"))
	assert.Equal(t, "Message pinned", c.Status())
	require.Len(t, s.PinnedMessagesForSelection(), 2)

	press(c, tea.KeyMsg{Type: tea.KeyCtrlX}, left, enter)
	assert.Empty(t, s.MessagesForChat("1"))
	assert.Empty(t, s.PinnedMessagesForSelection())
	chat, ok := s.Chat("1")
	require.True(t, ok)
	assert.False(t, chat.HasLastMessage())
	assert.Contains(t, c.View(), "No messages yet")
}

func TestChatScreen_PinnedOverlay(t *testing.T) {
	c, s := newTestScreen(t)
	assert.Contains(t, c.View(), "Pinned (2)")

	press(c, tea.KeyMsg{Type: tea.KeyCtrlP})
	require.IsType(t, &dialogs.PinnedModal{}, c.TopModal())
	assert.Contains(t, c.View(), "Pinned Messages")

	press(c, runes("u"), esc)
	assert.Nil(t, c.TopModal())
	assert.Len(t, s.PinnedMessages(), 1)
	assert.Contains(t, c.View(), "Pinned (1)")
}

func TestChatScreen_UserMenu(t *testing.T) {
	c, _ := newTestScreen(t)

	press(c, tea.KeyMsg{Type: tea.KeyCtrlO})
	assert.Contains(t, c.View(), "jane@example.com")

	// Choosing an entry replaces the menu with the chosen overlay.
	press(c, enter)
	require.Len(t, c.ModalStack, 1)
	assert.IsType(t, &dialogs.PinnedModal{}, c.TopModal())
}

func TestChatScreen_LogoutConfirmation(t *testing.T) {
	c, _ := newTestScreen(t)
	press(c, tea.KeyMsg{Type: tea.KeyCtrlL}, left)

	_, cmd := c.Update(enter)
	require.NotNil(t, cmd)
	assert.Equal(t, LogoutRequestedMsg{}, cmd())
}

func TestChatScreen_Help(t *testing.T) {
	c, _ := newTestScreen(t)
	press(c, runes("?"))
	require.IsType(t, &dialogs.HelpModal{}, c.TopModal())
	assert.Contains(t, c.View(), "Keyboard shortcuts")
	press(c, esc)
	assert.Nil(t, c.TopModal())
}

func TestChatScreen_StatusExpires(t *testing.T) {
	c, _ := newTestScreen(t)
	_, cmd := c.Update(chatwindow.CopiedMsg{MessageID: "1"})
	require.NotNil(t, cmd)
	assert.Equal(t, "Copied to clipboard", c.Status())

	c.Update(statusExpiredMsg{seq: c.statusSeq - 1})
	assert.NotEmpty(t, c.Status())
	c.Update(statusExpiredMsg{seq: c.statusSeq})
	assert.Empty(t, c.Status())
}

func TestChatScreen_SidebarSelectionMsg(t *testing.T) {
	c, s := newTestScreen(t)
	s.SelectChat("3")
	c.Update(sidebar.ChatSelectedMsg{ChatID: "3"})
	assert.Equal(t, FocusInput, c.Focus)
}
