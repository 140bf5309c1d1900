// Package input provides the single-line text input used by the message
// composer and the login/signup forms.
package input

import (
	"strings"

	"chatflow/src/types"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const cursorMark = "|"

var (
	placeholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true)
	boxStyle         = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1)
	focusedBoxStyle  = boxStyle.BorderForeground(lipgloss.Color("33"))
)

// InputModel is an editable line of text with a rune cursor.
type InputModel struct {
	Buffer      string
	Cursor      int  // rune offset into Buffer
	Mask        rune // when non-zero every rune renders as Mask
	Placeholder string
	focused     bool
}

// New creates an empty input.
func New(placeholder string) *InputModel {
	return &InputModel{Placeholder: placeholder}
}

// NewMasked creates an input that hides its content, for passwords.
func NewMasked(placeholder string) *InputModel {
	return &InputModel{Placeholder: placeholder, Mask: '•'}
}

func (m *InputModel) Focus()        { m.focused = true }
func (m *InputModel) Blur()         { m.focused = false }
func (m *InputModel) Focused() bool { return m.focused }

// Value returns the raw buffer.
func (m *InputModel) Value() string { return m.Buffer }

// SetValue replaces the buffer and moves the cursor to the end.
func (m *InputModel) SetValue(s string) {
	m.Buffer = s
	m.Cursor = len([]rune(s))
}

// Reset empties the buffer.
func (m *InputModel) Reset() {
	m.Buffer = ""
	m.Cursor = 0
}

// Update applies editing keys. Enter and navigation between widgets are left
// to the owner. It returns true when the key was consumed.
func (m *InputModel) Update(msg tea.Msg) bool {
	if !m.focused {
		return false
	}
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return false
	}
	runes := []rune(m.Buffer)
	if m.Cursor > len(runes) {
		m.Cursor = len(runes)
	}
	switch key.Type {
	case tea.KeyRunes, tea.KeySpace:
		ins := key.Runes
		if key.Type == tea.KeySpace {
			ins = []rune{' '}
		}
		runes = append(runes[:m.Cursor], append(append([]rune(nil), ins...), runes[m.Cursor:]...)...)
		m.Cursor += len(ins)
	case tea.KeyBackspace:
		if m.Cursor == 0 {
			return true
		}
		runes = append(runes[:m.Cursor-1], runes[m.Cursor:]...)
		m.Cursor--
	case tea.KeyDelete:
		if m.Cursor < len(runes) {
			runes = append(runes[:m.Cursor], runes[m.Cursor+1:]...)
		}
	case tea.KeyLeft:
		if m.Cursor > 0 {
			m.Cursor--
		}
	case tea.KeyRight:
		if m.Cursor < len(runes) {
			m.Cursor++
		}
	case tea.KeyHome, tea.KeyCtrlA:
		m.Cursor = 0
	case tea.KeyEnd, tea.KeyCtrlE:
		m.Cursor = len(runes)
	case tea.KeyCtrlU:
		runes = runes[m.Cursor:]
		m.Cursor = 0
	default:
		return false
	}
	m.Buffer = string(runes)
	return true
}

// View renders the input inside a box width cells wide.
func (m *InputModel) View(width int) string {
	style := boxStyle
	if m.focused {
		style = focusedBoxStyle
	}
	// Border and padding take four cells.
	return style.Width(max(width-2, 1)).Render(m.text())
}

func (m *InputModel) text() string {
	if m.Buffer == "" && !m.focused {
		return placeholderStyle.Render(m.Placeholder)
	}
	runes := []rune(m.Buffer)
	if m.Mask != 0 {
		runes = []rune(strings.Repeat(string(m.Mask), len(runes)))
	}
	if !m.focused {
		return string(runes)
	}
	cursor := min(m.Cursor, len(runes))
	return string(runes[:cursor]) + cursorMark + string(runes[cursor:])
}

// GetControlSet returns the editing bindings.
func (m *InputModel) GetControlSet() types.ControlSet {
	return types.ControlSet{Controls: []types.ControlType{
		{Name: "move", Key: "←→"},
		{Name: "clear line", Key: "ctrl+u"},
	}}
}
