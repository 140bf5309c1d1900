package chat

import (
	"fmt"
	"strings"

	"chatflow/src/components/common"
	"chatflow/src/types"

	"github.com/charmbracelet/lipgloss"
)

const (
	maxSidebarWidth = 36
	inputHeight     = 3
)

var (
	brandStyle  = lipgloss.NewStyle().Bold(true).Foreground(common.BrandColor)
	pinnedStyle = lipgloss.NewStyle().Foreground(common.PinColor)
	userStyle   = lipgloss.NewStyle().Bold(true)
	footerStyle = common.MutedStyle
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

// layout sizes the panes for the current window: one header line, one footer
// line, the list on the left and the thread above the composer on the right.
func (c *CompositeChatViewState) layout() {
	bodyHeight := max(c.height-2, 3)
	sidebarWidth := min(maxSidebarWidth, max(c.width/3, 20))
	mainWidth := max(c.width-sidebarWidth, 20)

	c.Sidebar.SetSize(sidebarWidth, bodyHeight)
	threadHeight := bodyHeight
	if c.inputVisible() {
		threadHeight = max(bodyHeight-inputHeight, 3)
	}
	c.Window.SetSize(mainWidth, threadHeight)
}

// View renders the active modal full screen, or the three panes.
func (c *CompositeChatViewState) View() string {
	if top := c.TopModal(); top != nil {
		return top.ViewRegion(c.width, c.height)
	}

	// Selection may have changed since the last resize.
	c.layout()

	main := c.Window.View()
	if c.inputVisible() {
		main = lipgloss.JoinVertical(lipgloss.Left, main, c.Input.View(c.Window.Width))
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, c.Sidebar.View(), main)
	return lipgloss.JoinVertical(lipgloss.Left, c.renderHeader(), body, c.renderFooter())
}

// renderHeader shows the brand on the left and the pinned count and user on the right.
func (c *CompositeChatViewState) renderHeader() string {
	left := brandStyle.Render("💬 ChatFlow")
	pinned := pinnedStyle.Render(fmt.Sprintf("📌 Pinned (%d)", len(c.Session.PinnedMessagesForSelection())))
	right := pinned
	if c.User != nil {
		right += "  " + common.Avatar(c.User.Username, c.User.AvatarRef) + " " + userStyle.Render(c.User.Username)
	}
	gap := max(c.width-lipgloss.Width(left)-lipgloss.Width(right)-2, 1)
	return " " + left + strings.Repeat(" ", gap) + right + " "
}

// renderFooter shows the status line when one is pending, otherwise key hints.
func (c *CompositeChatViewState) renderFooter() string {
	if c.status != "" {
		return " " + statusStyle.Render(c.status)
	}
	hints := types.HintLines(c.GetControlSets())
	return " " + footerStyle.Render(common.Truncate(strings.Join(hints, " · "), max(c.width-2, 1)))
}
