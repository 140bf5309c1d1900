package login

import (
	"strings"

	"chatflow/src/components/common"
	"chatflow/src/types"

	"github.com/charmbracelet/lipgloss"
)

const formWidth = 44

var (
	logoStyle    = lipgloss.NewStyle().Bold(true).Foreground(common.BrandColor)
	cardStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(common.BorderColor).Padding(1, 3)
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	alertStyle   = lipgloss.NewStyle().Foreground(common.ErrorColor).Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(common.ErrorColor).PaddingLeft(1)
	buttonStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(common.BrandColor).Padding(0, 2)
	linkStyle    = lipgloss.NewStyle().Foreground(common.BrandColor).Underline(true)
)

type copyText struct {
	heading, subheading, button, busy, prompt, link string
}

func (f *FormViewState) text() copyText {
	if f.mode == SignupMode {
		return copyText{
			heading:    "Create an account",
			subheading: "Sign up to start chatting with your friends",
			button:     "Create account",
			busy:       "Creating account...",
			prompt:     "Already have an account?",
			link:       "Sign in",
		}
	}
	return copyText{
		heading:    "Welcome back",
		subheading: "Sign in to your account to continue chatting",
		button:     "Sign in",
		busy:       "Signing in...",
		prompt:     "Don't have an account?",
		link:       "Sign up",
	}
}

func (f *FormViewState) View() string {
	t := f.text()

	lines := []string{
		lipgloss.PlaceHorizontal(formWidth, lipgloss.Center, headingStyle.Render(t.heading)),
		lipgloss.PlaceHorizontal(formWidth, lipgloss.Center, common.MutedStyle.Render(t.subheading)),
		"",
	}
	if f.errMsg != "" {
		lines = append(lines, alertStyle.Width(formWidth-1).Render(f.errMsg), "")
	}
	for _, fl := range f.fields {
		lines = append(lines, labelStyle.Render(fl.label), fl.input.View(formWidth))
	}

	button := buttonStyle.Render(t.button)
	if f.submitting {
		button = buttonStyle.Render(spinnerFrames[f.frame] + " " + t.busy)
	}
	lines = append(lines, "",
		lipgloss.PlaceHorizontal(formWidth, lipgloss.Center, button),
		"",
		lipgloss.PlaceHorizontal(formWidth, lipgloss.Center, common.MutedStyle.Render(t.prompt+" ")+linkStyle.Render(t.link)+common.MutedStyle.Render(" (ctrl+n)")),
	)

	page := lipgloss.JoinVertical(lipgloss.Center,
		logoStyle.Render("💬 ChatFlow"),
		common.MutedStyle.Render("Connect with friends and family"),
		"",
		cardStyle.Render(strings.Join(lines, "\n")),
		"",
		common.MutedStyle.Render("Demo credentials: use any email and password to sign in"),
		common.MutedStyle.Render(strings.Join(types.HintLines(f.GetControlSets()), " · ")),
	)
	return lipgloss.Place(f.width, f.height, lipgloss.Center, lipgloss.Center, page)
}
