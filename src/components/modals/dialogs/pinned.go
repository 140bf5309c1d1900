// pinned.go - PinnedModal lists pinned messages and lets the user unpin them.

package dialogs

import (
	"time"

	"chatflow/src/components/common"
	"chatflow/src/components/modals"
	"chatflow/src/models"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// PinnedSource is the part of the chat session the overlay reads and mutates.
type PinnedSource interface {
	PinnedMessagesForSelection() []models.Message
	UnpinMessage(messageID string)
}

var (
	pinnedCardStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(common.PinColor).
			PaddingLeft(1)
	pinnedSelectedStyle = pinnedCardStyle.Background(common.HighlightBg)
)

// PinnedModal is the pinned-messages overlay. It always reflects the current
// session state, so unpinning removes the entry immediately.
type PinnedModal struct {
	source   PinnedSource
	now      func() time.Time
	selected int
	done     bool
}

var _ modals.Modal = (*PinnedModal)(nil)

func NewPinnedModal(source PinnedSource, now func() time.Time) *PinnedModal {
	if now == nil {
		now = time.Now
	}
	return &PinnedModal{source: source, now: now}
}

// Messages returns the entries currently shown.
func (m *PinnedModal) Messages() []models.Message {
	return m.source.PinnedMessagesForSelection()
}

// Selected returns the index of the highlighted entry.
func (m *PinnedModal) Selected() int { return m.selected }

func (m *PinnedModal) Done() bool { return m.done }

func (m *PinnedModal) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	pinned := m.Messages()
	switch key.String() {
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < len(pinned)-1 {
			m.selected++
		}
	case "u", "enter":
		if m.selected < len(pinned) {
			m.source.UnpinMessage(pinned[m.selected].ID)
			if m.selected >= len(pinned)-1 && m.selected > 0 {
				m.selected--
			}
		}
	case "esc", "q", "ctrl+p":
		m.done = true
	}
	return nil
}

func (m *PinnedModal) ViewRegion(regionWidth, regionHeight int) string {
	width := min(max(regionWidth*2/3, 30), regionWidth)
	inner := width - 6

	title := lipgloss.NewStyle().Bold(true).Foreground(common.PinColor).Render("📌 Pinned Messages")
	lines := []string{title, ""}

	pinned := m.Messages()
	if len(pinned) == 0 {
		lines = append(lines,
			"No pinned messages",
			common.MutedStyle.Render("Pin important messages to find them easily later"),
		)
	}
	now := m.now()
	for i, msg := range pinned {
		style := pinnedCardStyle
		if i == m.selected {
			style = pinnedSelectedStyle
		}
		head := lipgloss.NewStyle().Bold(true).Render(msg.Sender) + "  " +
			common.MutedStyle.Render(humanize.RelTime(msg.Timestamp, now, "ago", "from now"))
		body := common.Truncate(msg.Content, inner-2)
		lines = append(lines, style.Width(inner).Render(head+"\n"+body))
	}
	lines = append(lines, "", common.MutedStyle.Render("↑↓ move · u unpin · esc close"))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(common.PinColor).
		Padding(1, 2).
		Width(width - 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
	return lipgloss.Place(regionWidth, regionHeight, lipgloss.Center, lipgloss.Center, box)
}
