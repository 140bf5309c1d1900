package dialogs

import (
	"testing"
	"time"

	"chatflow/src/components/modals"
	"chatflow/src/services/chatstore"
	"chatflow/src/types"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestConfirmationModal_OptionCount(t *testing.T) {
	assert.Panics(t, func() { NewConfirmationModal("", "none", nil) })
	assert.Panics(t, func() {
		NewConfirmationModal("", "many", make([]modals.ModalOption, 4))
	})
	assert.NotPanics(t, func() {
		NewConfirmationModal("", "one", []modals.ModalOption{{Label: "OK"}})
	})
}

func TestYesNoModal(t *testing.T) {
	t.Run("defaults to no", func(t *testing.T) {
		confirmed := false
		m := NewYesNoModal("Delete chat", "Delete this chat?", func() tea.Cmd { confirmed = true; return nil })
		m.Update(key("enter"))
		assert.False(t, confirmed)
		assert.True(t, m.Done())
	})

	t.Run("left then enter confirms", func(t *testing.T) {
		confirmed := false
		m := NewYesNoModal("Delete chat", "Delete this chat?", func() tea.Cmd { confirmed = true; return nil })
		m.Update(key("left"))
		m.Update(key("enter"))
		assert.True(t, confirmed)
		assert.True(t, m.Done())
	})

	t.Run("esc cancels", func(t *testing.T) {
		confirmed := false
		m := NewYesNoModal("", "Sure?", func() tea.Cmd { confirmed = true; return nil })
		m.Update(key("tab"))
		m.Update(key("esc"))
		assert.False(t, confirmed)
		assert.True(t, m.Done())
	})

	t.Run("renders message and options", func(t *testing.T) {
		m := NewYesNoModal("Clear chat", "Remove every message?", nil)
		out := m.ViewRegion(80, 20)
		assert.Contains(t, out, "Clear chat")
		assert.Contains(t, out, "Remove every message?")
		assert.Contains(t, out, "Yes")
		assert.Contains(t, out, "No")
	})
}

func TestMenuModal(t *testing.T) {
	picked := ""
	opt := func(name string) modals.ModalOption {
		return modals.ModalOption{Label: name, OnSelect: func() tea.Cmd { picked = name; return nil }}
	}
	m := NewMenuModal("alice", "alice@example.com", []modals.ModalOption{opt("Pinned"), opt("Help"), opt("Sign out")})

	out := m.ViewRegion(80, 20)
	assert.Contains(t, out, "alice@example.com")
	assert.Contains(t, out, "Sign out")

	m.Update(key("up"))
	assert.Equal(t, 2, m.Selected)
	m.Update(key("enter"))
	assert.Equal(t, "Sign out", picked)
	assert.True(t, m.Done())
}

func TestHelpModal(t *testing.T) {
	m := NewHelpModal("Keys", []types.ControlSet{
		{Controls: []types.ControlType{{Name: "select", Key: "enter"}}},
		types.GlobalControlSet,
	})
	assert.Contains(t, m.Content, "select")
	assert.Contains(t, m.Content, "ctrl+c")
	assert.Contains(t, m.ViewRegion(60, 20), "Keys")

	m.Update(key("x"))
	assert.False(t, m.Done())
	m.Update(key("?"))
	assert.True(t, m.Done())
}

func newSeededSession(now time.Time) *chatstore.Session {
	s := chatstore.NewSession(chatstore.WithClock(func() time.Time { return now }))
	s.Seed(chatstore.DefaultSeed(now))
	return s
}

func TestPinnedModal_FiltersBySelection(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	s := newSeededSession(now)
	m := NewPinnedModal(s, func() time.Time { return now })

	assert.Len(t, m.Messages(), 2)

	require.True(t, s.SelectChat("3"))
	require.Len(t, m.Messages(), 1)
	assert.Equal(t, "5", m.Messages()[0].ID)

	out := m.ViewRegion(100, 30)
	assert.Contains(t, out, "Team Lead")
	assert.Contains(t, out, "2 hours ago")
}

func TestPinnedModal_UnpinRemovesEntry(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	s := newSeededSession(now)
	m := NewPinnedModal(s, func() time.Time { return now })

	m.Update(key("down"))
	assert.Equal(t, 1, m.Selected())
	m.Update(key("u"))

	require.Len(t, m.Messages(), 1)
	assert.Equal(t, "2", m.Messages()[0].ID)
	assert.Equal(t, 0, m.Selected())
	assert.Len(t, s.PinnedMessages(), 1)

	m.Update(key("u"))
	assert.Empty(t, m.Messages())
	out := m.ViewRegion(100, 30)
	assert.Contains(t, out, "No pinned messages")
	assert.Contains(t, out, "Pin important messages to find them easily later")

	// Nothing left to unpin.
	m.Update(key("u"))
	assert.False(t, m.Done())
	m.Update(key("esc"))
	assert.True(t, m.Done())
}
