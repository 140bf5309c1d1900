// Package notfound renders the fallback screen for unknown routes.
package notfound

import (
	"chatflow/src/components/common"
	"chatflow/src/navigation"
	"chatflow/src/types"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var codeStyle = lipgloss.NewStyle().Bold(true).Foreground(common.BrandColor)

// NotFoundViewState shows the unknown path and offers a way home.
type NotFoundViewState struct {
	Path   string
	width  int
	height int
}

var _ types.ViewState = (*NotFoundViewState)(nil)

func New(path string) *NotFoundViewState {
	return &NotFoundViewState{Path: path, width: 80, height: 24}
}

func (n *NotFoundViewState) ViewType() types.ViewType { return types.NotFoundStateType }

func (n *NotFoundViewState) Init() tea.Cmd { return nil }

// Update sends the user home on enter or esc.
func (n *NotFoundViewState) Update(msg tea.Msg) (types.ViewState, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		n.width, n.height = msg.Width, msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "enter", "esc":
			return n, navigation.Navigate(navigation.RootPath)
		}
	}
	return n, nil
}

func (n *NotFoundViewState) View() string {
	page := lipgloss.JoinVertical(lipgloss.Center,
		codeStyle.Render("404"),
		"Page not found",
		common.MutedStyle.Render(common.Truncate(n.Path, max(n.width-4, 1))),
		"",
		common.MutedStyle.Render("enter go home"),
	)
	return lipgloss.Place(n.width, n.height, lipgloss.Center, lipgloss.Center, page)
}

func (n *NotFoundViewState) GetControlSets() []types.ControlSet {
	return []types.ControlSet{
		{Controls: []types.ControlType{{Name: "go home", Key: "enter"}}},
		types.GlobalControlSet,
	}
}
