package sidebar

import (
	"strconv"
	"strings"

	"chatflow/src/components/common"
	"chatflow/src/models"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Each chat takes two text lines plus a separator.
const rowHeight = 3

var (
	nameStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252"))
	cursorStyle   = lipgloss.NewStyle().Background(common.HighlightBg)
	selectedMark  = lipgloss.NewStyle().Foreground(common.BrandColor).Render("▌")
	unreadBadge   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(common.BrandColor).Padding(0, 1)
	emptyTitle    = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	sectionHeader = common.TitleStyle.PaddingLeft(1)
)

// View renders the pane, bordered and highlighted when focused.
func (s *SidebarModel) View() string {
	return common.Pane(s.content(), s.Width, s.Height, s.Focused)
}

func (s *SidebarModel) content() string {
	inner := max(s.Width-2, 1)
	lines := []string{sectionHeader.Render("Messages"), ""}

	chats := s.source.Chats()
	if len(chats) == 0 {
		lines = append(lines,
			lipgloss.PlaceHorizontal(inner, lipgloss.Center, emptyTitle.Render("No chats yet")),
			lipgloss.PlaceHorizontal(inner, lipgloss.Center, common.MutedStyle.Render("Start a conversation!")),
		)
		return strings.Join(lines, "\n")
	}

	s.clamp(len(chats))
	visible := max((s.Height-2-len(lines))/rowHeight, 1)
	if s.Cursor < s.scrollOffset {
		s.scrollOffset = s.Cursor
	}
	if s.Cursor >= s.scrollOffset+visible {
		s.scrollOffset = s.Cursor - visible + 1
	}
	if s.scrollOffset > len(chats)-visible {
		s.scrollOffset = max(len(chats)-visible, 0)
	}

	selected := s.source.SelectedChatID()
	end := min(s.scrollOffset+visible, len(chats))
	for i := s.scrollOffset; i < end; i++ {
		row := s.renderRow(chats[i], inner, chats[i].ID == selected, s.Focused && i == s.Cursor)
		lines = append(lines, row, "")
	}
	return strings.Join(lines, "\n")
}

// renderRow draws one chat as two lines: avatar, name and age, then the
// preview and the unread badge.
func (s *SidebarModel) renderRow(chat models.Chat, width int, selected, underCursor bool) string {
	mark := " "
	if selected {
		mark = selectedMark
	}
	avatar := common.Avatar(chat.Name, chat.AvatarRef)
	prefix := mark + avatar + " "
	indent := strings.Repeat(" ", lipgloss.Width(prefix))
	body := max(width-lipgloss.Width(prefix)-1, 1)

	age := ""
	if chat.HasLastMessage() {
		age = common.RelativeTime(chat.LastMessageTime, s.now())
	}
	name := common.Truncate(chat.Name, max(body-runewidth.StringWidth(age)-1, 1))
	top := nameStyle.Render(name) + gap(body, name, age) + common.MutedStyle.Render(age)

	preview := chat.LastMessagePreview
	if preview == "" {
		preview = "No messages yet"
	}
	badge := ""
	if chat.UnreadCount > 0 {
		badge = unreadBadge.Render(strconv.Itoa(chat.UnreadCount))
	}
	preview = common.Truncate(preview, max(body-lipgloss.Width(badge)-1, 1))
	bottom := common.MutedStyle.Render(preview) + strings.Repeat(" ", max(body-runewidth.StringWidth(preview)-lipgloss.Width(badge), 1)) + badge

	row := prefix + top + "\n" + indent + bottom
	if underCursor {
		row = cursorStyle.Width(width).Render(row)
	}
	return row
}

// gap returns the spaces that push right to the end of a width-wide line.
func gap(width int, left, right string) string {
	return strings.Repeat(" ", max(width-runewidth.StringWidth(left)-runewidth.StringWidth(right), 1))
}
