// confirmation.go - ConfirmationModal asks the user to confirm a destructive action
// with 1-3 options. Left/right (or tab) move the selection, enter selects, esc cancels.

package dialogs

import (
	"chatflow/src/components/modals"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmationModal is a reusable modal for confirmation dialogs (1-3 options).
type ConfirmationModal struct {
	modals.BaseModal
	Title string
}

var _ modals.Modal = (*ConfirmationModal)(nil)

// NewConfirmationModal creates a new ConfirmationModal with the given message and options.
func NewConfirmationModal(title, message string, options []modals.ModalOption) *ConfirmationModal {
	if len(options) < 1 || len(options) > 3 {
		panic("ConfirmationModal must have 1-3 options")
	}
	return &ConfirmationModal{
		BaseModal: modals.BaseModal{
			Message: message,
			Options: options,
		},
		Title: title,
	}
}

// NewYesNoModal builds a confirmation whose "Yes" runs onYes. "No" is preselected.
func NewYesNoModal(title, message string, onYes func() tea.Cmd) *ConfirmationModal {
	m := NewConfirmationModal(title, message, []modals.ModalOption{
		{Label: "Yes", OnSelect: onYes},
		{Label: "No"},
	})
	m.Selected = 1
	return m
}

func (m *ConfirmationModal) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch key.String() {
	case "left", "shift+tab":
		m.Prev()
	case "right", "tab":
		m.Next()
	case "enter":
		return m.Choose()
	case "esc":
		m.Close()
	}
	return nil
}

func (m *ConfirmationModal) ViewRegion(regionWidth, regionHeight int) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("245")).
		Padding(1, 4).
		Align(lipgloss.Center)

	var opts []string
	for i, opt := range m.Options {
		style := lipgloss.NewStyle().Padding(0, 2)
		if i == m.Selected {
			style = style.Bold(true).Foreground(lipgloss.Color("203")).Background(lipgloss.Color("236"))
		}
		opts = append(opts, style.Render(opt.Label))
	}
	parts := []string{}
	if m.Title != "" {
		parts = append(parts, lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).Render(m.Title), "")
	}
	parts = append(parts, m.Message, "", lipgloss.JoinHorizontal(lipgloss.Center, opts...))
	box := boxStyle.Render(lipgloss.JoinVertical(lipgloss.Center, parts...))
	return lipgloss.Place(regionWidth, regionHeight, lipgloss.Center, lipgloss.Center, box)
}
