package common

import (
	"hash/fnv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Shared palette.
var (
	BrandColor  = lipgloss.Color("33")
	MutedColor  = lipgloss.Color("244")
	BorderColor = lipgloss.Color("240")
	HighlightBg = lipgloss.Color("236")
	PinColor    = lipgloss.Color("214")
	ErrorColor  = lipgloss.Color("203")

	TitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(BrandColor)
	MutedStyle   = lipgloss.NewStyle().Foreground(MutedColor)
	ErrorStyle   = lipgloss.NewStyle().Foreground(ErrorColor)
	PaneStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(BorderColor)
	FocusedStyle = PaneStyle.BorderForeground(BrandColor)
)

// AvatarColor derives a stable colour from an avatar reference.
func AvatarColor(ref string) lipgloss.Color {
	h := fnv.New32a()
	_, _ = h.Write([]byte(ref))
	hue := float64(h.Sum32() % 360)
	return lipgloss.Color(colorful.Hcl(hue, 0.55, 0.65).Clamped().Hex())
}

// Avatar renders a one-letter badge for name tinted by ref.
func Avatar(name, ref string) string {
	initial := "?"
	for _, r := range name {
		initial = strings.ToUpper(string(r))
		break
	}
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("15")).
		Background(AvatarColor(ref)).
		Padding(0, 1).
		Render(initial)
}

// Pane wraps content in the pane border, highlighted when focused.
func Pane(content string, width, height int, focused bool) string {
	style := PaneStyle
	if focused {
		style = FocusedStyle
	}
	// Border takes one cell on every side.
	return style.Width(max(width-2, 0)).Height(max(height-2, 0)).Render(content)
}
