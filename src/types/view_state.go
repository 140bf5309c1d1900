// types/view_state.go - Screen and control-set types shared by the root app
// and the components it hosts.

package types

import (
	tea "github.com/charmbracelet/bubbletea"
)

// ViewType identifies a kind of screen.
type ViewType int

const (
	LoginStateType ViewType = iota
	SignupStateType
	ChatStateType
	NotFoundStateType
)

// ViewState is a full-screen state hosted by the root app.
type ViewState interface {
	ViewType() ViewType
	Init() tea.Cmd
	Update(msg tea.Msg) (ViewState, tea.Cmd)
	View() string
	GetControlSets() []ControlSet
}
