// menu.go - MenuModal shows a vertical list of actions, e.g. the account menu.

package dialogs

import (
	"chatflow/src/components/modals"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// MenuModal is a reusable modal for displaying a menu with options.
type MenuModal struct {
	modals.BaseModal
	Title string
}

var _ modals.Modal = (*MenuModal)(nil)

// NewMenuModal creates a menu; Message is shown under the title when set.
func NewMenuModal(title, message string, options []modals.ModalOption) *MenuModal {
	return &MenuModal{
		BaseModal: modals.BaseModal{Message: message, Options: options},
		Title:     title,
	}
}

// Update handles up/down to navigate, enter to select, esc to close.
func (m *MenuModal) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch key.String() {
	case "up", "k":
		m.Prev()
	case "down", "j":
		m.Next()
	case "enter":
		return m.Choose()
	case "esc":
		m.Close()
	}
	return nil
}

func (m *MenuModal) ViewRegion(regionWidth, regionHeight int) string {
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).Render(m.Title)
	lines := []string{title}
	if m.Message != "" {
		lines = append(lines, lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Render(m.Message))
	}
	lines = append(lines, "")
	for i, opt := range m.Options {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
		marker := "   "
		if i == m.Selected {
			style = style.Bold(true).Foreground(lipgloss.Color("203")).Background(lipgloss.Color("236"))
			marker = " > "
		}
		lines = append(lines, marker+style.Render(opt.Label))
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("245")).
		Padding(1, 4).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
	return lipgloss.Place(regionWidth, regionHeight, lipgloss.Center, lipgloss.Center, box)
}
