// Package app provides the root Bubble Tea model: it owns the current screen,
// applies the route guards and reacts to login and logout.
package app

import (
	"context"
	"log/slog"
	"time"

	"chatflow/src/components/chat"
	"chatflow/src/components/login"
	"chatflow/src/components/notfound"
	"chatflow/src/models"
	"chatflow/src/navigation"
	"chatflow/src/services/chatstore"
	"chatflow/src/types"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	minWidth  = 60
	minHeight = 16
)

// AuthService is what the app needs from the auth service.
type AuthService interface {
	login.Authenticator
	User() *models.User
	IsAuthenticated() bool
	Logout() error
}

// App is the root model.
type App struct {
	ctx     context.Context
	auth    AuthService
	session *chatstore.Session
	logger  *slog.Logger
	now     func() time.Time

	seedOnEnter bool
	seeded      bool
	chatOpts    []chat.Option

	current types.ViewState
	route   navigation.Route
	path    string
	width   int
	height  int
}

var _ tea.Model = (*App)(nil)

// Option configures the App.
type Option func(*App)

func WithLogger(logger *slog.Logger) Option {
	return func(a *App) { a.logger = logger }
}

// WithClock sets the time source used for the demo data and relative ages.
func WithClock(now func() time.Time) Option {
	return func(a *App) { a.now = now }
}

// WithSeed controls whether the demo chats are loaded when the chat screen
// is entered with an empty session.
func WithSeed(seed bool) Option {
	return func(a *App) { a.seedOnEnter = seed }
}

// WithChatOptions passes options to every chat screen the app builds.
func WithChatOptions(opts ...chat.Option) Option {
	return func(a *App) { a.chatOpts = append(a.chatOpts, opts...) }
}

// New creates the app showing path. ctx bounds pending auth submissions.
func New(ctx context.Context, authService AuthService, session *chatstore.Session, path string, opts ...Option) *App {
	a := &App{
		ctx:         ctx,
		auth:        authService,
		session:     session,
		logger:      slog.Default(),
		now:         time.Now,
		seedOnEnter: true,
		width:       80,
		height:      24,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.navigate(path)
	return a
}

// Route returns the screen being shown.
func (a *App) Route() navigation.Route { return a.route }

// Path returns the path of the screen being shown.
func (a *App) Path() string { return a.path }

// Current returns the active screen.
func (a *App) Current() types.ViewState { return a.current }

func (a *App) Init() tea.Cmd {
	return a.current.Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.logger.Debug("window resized", "width", msg.Width, "height", msg.Height)
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
	case navigation.NavigateMsg:
		return a, a.navigate(msg.Path)
	case chat.LogoutRequestedMsg:
		return a, a.logout()
	}

	next, cmd := a.current.Update(msg)
	a.current = next
	return a, cmd
}

// navigate resolves path against the guards and swaps in the matching screen.
func (a *App) navigate(path string) tea.Cmd {
	route := navigation.Resolve(path, a.auth.IsAuthenticated())
	a.route = route
	a.path = route.Path()

	switch route {
	case navigation.ChatRoute:
		if a.seedOnEnter && !a.seeded {
			a.session.Seed(chatstore.DefaultSeed(a.now()))
		}
		a.seeded = true
		opts := append([]chat.Option{chat.WithClock(a.now), chat.WithLogger(a.logger)}, a.chatOpts...)
		a.current = chat.NewCompositeChatViewState(a.session, a.auth.User(), opts...)
	case navigation.LoginRoute:
		a.current = login.NewFormViewState(a.ctx, login.LoginMode, a.auth, a.logger)
	case navigation.SignupRoute:
		a.current = login.NewFormViewState(a.ctx, login.SignupMode, a.auth, a.logger)
	default:
		a.path = path
		a.current = notfound.New(path)
	}
	a.logger.Info("navigated", "requested", path, "path", a.path, "screen", route.String())

	return a.show(a.current)
}

// show sizes screen to the terminal and starts it, keeping the commands of both.
func (a *App) show(screen types.ViewState) tea.Cmd {
	next, sizeCmd := screen.Update(tea.WindowSizeMsg{Width: a.width, Height: a.height})
	a.current = next
	return tea.Batch(sizeCmd, a.current.Init())
}

// logout clears the profile, drops the chat state and returns to the login screen.
func (a *App) logout() tea.Cmd {
	if err := a.auth.Logout(); err != nil {
		a.logger.Error("failed to clear stored profile", "error", err)
	}
	a.session.Reset()
	a.seeded = false
	return a.navigate(navigation.LoginPath)
}

func (a *App) View() string {
	if a.width < minWidth || a.height < minHeight {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Align(lipgloss.Center, lipgloss.Center).
			Width(a.width).
			Height(a.height).
			Render("Terminal too small for ChatFlow")
	}
	return a.current.View()
}
