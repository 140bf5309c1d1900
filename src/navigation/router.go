// Package navigation maps route paths to screens and applies the login guard.
package navigation

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Route identifies a screen.
type Route int

const (
	NotFoundRoute Route = iota
	LoginRoute
	SignupRoute
	ChatRoute
)

// Route paths.
const (
	RootPath   = "/"
	LoginPath  = "/login"
	SignupPath = "/signup"
	ChatPath   = "/chat"
)

func (r Route) String() string {
	switch r {
	case LoginRoute:
		return "login"
	case SignupRoute:
		return "signup"
	case ChatRoute:
		return "chat"
	default:
		return "not-found"
	}
}

// Path returns the canonical path of the route.
func (r Route) Path() string {
	switch r {
	case LoginRoute:
		return LoginPath
	case SignupRoute:
		return SignupPath
	case ChatRoute:
		return ChatPath
	default:
		return ""
	}
}

// Resolve returns the screen to show for path. The root redirects to the
// chat screen, the chat screen requires a user, and the auth screens send a
// logged-in user to the chat screen. Guards look only at whether a user exists.
func Resolve(path string, authenticated bool) Route {
	switch path {
	case RootPath, ChatPath:
		if !authenticated {
			return LoginRoute
		}
		return ChatRoute
	case LoginPath:
		if authenticated {
			return ChatRoute
		}
		return LoginRoute
	case SignupPath:
		if authenticated {
			return ChatRoute
		}
		return SignupRoute
	default:
		return NotFoundRoute
	}
}

// NavigateMsg asks the root model to switch to Path.
type NavigateMsg struct {
	Path string
}

// Navigate returns a command emitting a NavigateMsg.
func Navigate(path string) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Path: path}
	}
}
