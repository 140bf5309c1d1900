package chatwindow

import (
	"strings"

	"chatflow/src/components/common"
	"chatflow/src/models"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerNameStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252"))
	onlineStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))

	bubbleStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1)
	localBubbleStyle  = bubbleStyle.BorderForeground(common.BrandColor)
	pinnedBubbleStyle = bubbleStyle.BorderForeground(common.PinColor)
	cursorMarker      = lipgloss.NewStyle().Foreground(common.BrandColor).Bold(true)
)

// View renders the pane, bordered and highlighted when focused.
func (c *ChatWindowModel) View() string {
	return common.Pane(c.content(), c.Width, c.Height, c.Focused)
}

func (c *ChatWindowModel) content() string {
	inner := max(c.Width-2, 1)
	innerHeight := max(c.Height-2, 1)

	chat, msgs, ok := c.messages()
	if !ok {
		return placeCentered(inner, innerHeight,
			"💬",
			headerNameStyle.Render("Select a chat"),
			common.MutedStyle.Render("Choose a conversation to start messaging"),
		)
	}

	header := " " + common.Avatar(chat.Name, chat.AvatarRef) + " " +
		headerNameStyle.Render(common.Truncate(chat.Name, inner-12)) + "  " + onlineStyle.Render("● Online")
	rule := common.MutedStyle.Render(strings.Repeat("─", inner))
	avail := max(innerHeight-2, 1)

	if len(msgs) == 0 {
		return header + "\n" + rule + "\n" + placeCentered(inner, avail,
			"No messages yet",
			common.MutedStyle.Render("Send a message to start the conversation"),
		)
	}

	bubbles := make([]string, len(msgs))
	for i, m := range msgs {
		bubbles[i] = renderBubble(m, inner, c.Focused && i == c.Cursor)
	}
	c.scrollTo(bubbles, avail)

	var body []string
	used := 0
	for i := c.top; i < len(bubbles); i++ {
		h := lipgloss.Height(bubbles[i])
		if used+h > avail && used > 0 {
			break
		}
		body = append(body, bubbles[i])
		used += h
	}
	return header + "\n" + rule + "\n" + strings.Join(body, "\n")
}

// scrollTo moves the first visible bubble so the cursor bubble fits in avail lines.
func (c *ChatWindowModel) scrollTo(bubbles []string, avail int) {
	if c.Cursor < c.top {
		c.top = c.Cursor
	}
	for c.top < c.Cursor {
		h := 0
		for i := c.top; i <= c.Cursor; i++ {
			h += lipgloss.Height(bubbles[i])
		}
		if h <= avail {
			break
		}
		c.top++
	}
}

// renderBubble draws one message: local messages on the right, others on the
// left with the sender name. Pinned messages get the pin colour and marker.
func renderBubble(m models.Message, width int, underCursor bool) string {
	maxWidth := max(width*2/3, 10)
	style := bubbleStyle
	if m.IsLocal() {
		style = localBubbleStyle
	}
	if m.IsPinned {
		style = pinnedBubbleStyle
	}

	meta := common.ClockTime(m.Timestamp)
	if m.IsPinned {
		meta = "📌 " + meta
	}
	text := m.Content
	if !m.IsLocal() {
		text = lipgloss.NewStyle().Bold(true).Render(m.Sender) + "\n" + text
	}
	contentWidth := min(max(lipgloss.Width(text), lipgloss.Width(meta)), maxWidth-4)
	bubble := style.Width(contentWidth + 2).Render(text + "\n" + common.MutedStyle.Render(meta))

	if m.IsLocal() {
		marker := "  "
		if underCursor {
			marker = cursorMarker.Render(" ◀")
		}
		lines := strings.Split(lipgloss.PlaceHorizontal(width-2, lipgloss.Right, bubble), "\n")
		for i := range lines {
			if i == 0 {
				lines[i] += marker
			} else {
				lines[i] += "  "
			}
		}
		return strings.Join(lines, "\n")
	}
	marker := "  "
	if underCursor {
		marker = cursorMarker.Render("▶ ")
	}
	lines := strings.Split(bubble, "\n")
	for i := range lines {
		if i == 0 {
			lines[i] = marker + lines[i]
		} else {
			lines[i] = "  " + lines[i]
		}
	}
	return strings.Join(lines, "\n")
}

func placeCentered(width, height int, lines ...string) string {
	block := lipgloss.JoinVertical(lipgloss.Center, lines...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, block)
}
