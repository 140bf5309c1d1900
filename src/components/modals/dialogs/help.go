// help.go - HelpModal lists the key bindings of the current screen.

package dialogs

import (
	"strings"

	"chatflow/src/components/modals"
	"chatflow/src/types"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpModal is a reusable modal for displaying help or info content.
type HelpModal struct {
	Title   string
	Content string
	done    bool
}

var _ modals.Modal = (*HelpModal)(nil)

// NewHelpModal renders one line per control of every set.
func NewHelpModal(title string, sets []types.ControlSet) *HelpModal {
	var b strings.Builder
	keyStyle := lipgloss.NewStyle().Bold(true).Width(12)
	for i, cs := range sets {
		if i > 0 && len(cs.Controls) > 0 {
			b.WriteString("\n")
		}
		for _, c := range cs.Controls {
			b.WriteString(keyStyle.Render(c.Key) + c.Name + "\n")
		}
	}
	return &HelpModal{Title: title, Content: strings.TrimRight(b.String(), "\n")}
}

// Update closes the modal on esc, enter, q or ?.
func (m *HelpModal) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc", "enter", "q", "?":
			m.done = true
		}
	}
	return nil
}

func (m *HelpModal) Done() bool { return m.done }

// ViewRegion renders the help content centered in the given region.
func (m *HelpModal) ViewRegion(regionWidth, regionHeight int) string {
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).Render(m.Title)
	footer := lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Render("esc to close")
	content := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("245")).
		Padding(1, 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, "", m.Content, "", footer))
	return lipgloss.Place(regionWidth, regionHeight, lipgloss.Center, lipgloss.Center, content)
}
