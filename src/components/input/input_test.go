package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func typeString(m *InputModel, s string) {
	for _, r := range s {
		if r == ' ' {
			m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
			continue
		}
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestInputModel_Editing(t *testing.T) {
	m := New("Type a message...")
	m.Focus()

	typeString(m, "helo world")
	assert.Equal(t, "helo world", m.Value())
	assert.Equal(t, 10, m.Cursor)

	for i := 0; i < 7; i++ {
		m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	}
	typeString(m, "l")
	assert.Equal(t, "hello world", m.Value())

	m.Update(tea.KeyMsg{Type: tea.KeyEnd})
	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "hello worl", m.Value())

	m.Update(tea.KeyMsg{Type: tea.KeyHome})
	m.Update(tea.KeyMsg{Type: tea.KeyDelete})
	assert.Equal(t, "ello worl", m.Value())

	m.Update(tea.KeyMsg{Type: tea.KeyEnd})
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlU})
	assert.Equal(t, "", m.Value())
	assert.Equal(t, 0, m.Cursor)
}

func TestInputModel_IgnoresKeysWhenBlurred(t *testing.T) {
	m := New("")
	assert.False(t, m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}))
	assert.Empty(t, m.Value())
}

func TestInputModel_LeavesEnterToOwner(t *testing.T) {
	m := New("")
	m.Focus()
	assert.False(t, m.Update(tea.KeyMsg{Type: tea.KeyEnter}))
	assert.False(t, m.Update(tea.KeyMsg{Type: tea.KeyTab}))
}

func TestInputModel_MaskedView(t *testing.T) {
	m := NewMasked("Password")
	assert.Contains(t, m.View(30), "Password")

	m.Focus()
	typeString(m, "secret")
	view := m.View(30)
	assert.NotContains(t, view, "secret")
	assert.Contains(t, view, "••••••|")
}

func TestInputModel_MultiByteRunes(t *testing.T) {
	m := New("")
	m.Focus()
	typeString(m, "héllo")
	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "héll", m.Value())
	m.SetValue("日本")
	assert.Equal(t, 2, m.Cursor)
}
