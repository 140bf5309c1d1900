// Package login provides the sign-in and sign-up screens.
package login

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"chatflow/src/components/input"
	"chatflow/src/models"
	"chatflow/src/navigation"
	"chatflow/src/services/auth"
	"chatflow/src/types"

	tea "github.com/charmbracelet/bubbletea"
)

// Mode selects which form is shown.
type Mode int

const (
	LoginMode Mode = iota
	SignupMode
)

const (
	spinnerInterval = 100 * time.Millisecond
	genericError    = "An error occurred. Please try again."
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Authenticator is the part of the auth service the forms submit to.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (*models.User, error)
	Signup(ctx context.Context, username, email, password string) (*models.User, error)
}

// AuthResultMsg carries the outcome of a submission back into the update loop.
type AuthResultMsg struct {
	User *models.User
	Err  error
}

type spinnerTickMsg struct{}

type field struct {
	label string
	input *input.InputModel
}

// FormViewState is the login or signup screen. While a submission is
// pending it ignores input and shows a spinner.
type FormViewState struct {
	mode       Mode
	auth       Authenticator
	ctx        context.Context
	logger     *slog.Logger
	fields     []field
	focus      int
	submitting bool
	errMsg     string
	frame      int
	width      int
	height     int
}

var _ types.ViewState = (*FormViewState)(nil)

// NewFormViewState builds the form for mode. ctx bounds pending submissions.
func NewFormViewState(ctx context.Context, mode Mode, authenticator Authenticator, logger *slog.Logger) *FormViewState {
	if logger == nil {
		logger = slog.Default()
	}
	f := &FormViewState{
		mode:   mode,
		auth:   authenticator,
		ctx:    ctx,
		logger: logger,
		width:  80,
		height: 24,
	}
	if mode == SignupMode {
		f.fields = append(f.fields, field{"Username", input.New("Choose a username")})
	}
	f.fields = append(f.fields,
		field{"Email", input.New("Enter your email")},
		field{"Password", input.NewMasked("Enter your password")},
	)
	f.fields[0].input.Focus()
	return f
}

func (f *FormViewState) ViewType() types.ViewType {
	if f.mode == SignupMode {
		return types.SignupStateType
	}
	return types.LoginStateType
}

func (f *FormViewState) Init() tea.Cmd { return nil }

// Submitting reports whether a submission is pending.
func (f *FormViewState) Submitting() bool { return f.submitting }

// Error returns the inline error shown above the fields.
func (f *FormViewState) Error() string { return f.errMsg }

// Field returns the input labelled label, or nil.
func (f *FormViewState) Field(label string) *input.InputModel {
	for _, fl := range f.fields {
		if fl.label == label {
			return fl.input
		}
	}
	return nil
}

func (f *FormViewState) Update(msg tea.Msg) (types.ViewState, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		f.width, f.height = msg.Width, msg.Height
	case spinnerTickMsg:
		if f.submitting {
			f.frame = (f.frame + 1) % len(spinnerFrames)
			return f, spinnerTick()
		}
	case AuthResultMsg:
		return f, f.handleResult(msg)
	case tea.KeyMsg:
		if f.submitting {
			return f, nil
		}
		return f, f.handleKey(msg)
	}
	return f, nil
}

func (f *FormViewState) handleKey(key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case "tab", "down":
		f.moveFocus(1)
	case "shift+tab", "up":
		f.moveFocus(-1)
	case "enter":
		if f.focus < len(f.fields)-1 {
			f.moveFocus(1)
			return nil
		}
		return f.submit()
	case "ctrl+n":
		if f.mode == SignupMode {
			return navigation.Navigate(navigation.LoginPath)
		}
		return navigation.Navigate(navigation.SignupPath)
	default:
		f.fields[f.focus].input.Update(key)
	}
	return nil
}

func (f *FormViewState) moveFocus(step int) {
	f.fields[f.focus].input.Blur()
	f.focus = (f.focus + step + len(f.fields)) % len(f.fields)
	f.fields[f.focus].input.Focus()
}

// submit starts the auth call on its own goroutine via a command.
func (f *FormViewState) submit() tea.Cmd {
	f.submitting = true
	f.errMsg = ""
	f.frame = 0

	ctx, authenticator := f.ctx, f.auth
	var call func() (*models.User, error)
	if f.mode == SignupMode {
		username, email, password := f.Field("Username").Value(), f.Field("Email").Value(), f.Field("Password").Value()
		call = func() (*models.User, error) { return authenticator.Signup(ctx, username, email, password) }
	} else {
		email, password := f.Field("Email").Value(), f.Field("Password").Value()
		call = func() (*models.User, error) { return authenticator.Login(ctx, email, password) }
	}
	return tea.Batch(spinnerTick(), func() tea.Msg {
		user, err := call()
		return AuthResultMsg{User: user, Err: err}
	})
}

func (f *FormViewState) handleResult(res AuthResultMsg) tea.Cmd {
	f.submitting = false
	var validation *models.ValidationError
	switch {
	case res.Err == nil:
		return navigation.Navigate(navigation.ChatPath)
	case errors.As(res.Err, &validation):
		f.errMsg = validation.Message
	case errors.Is(res.Err, auth.ErrSubmitInProgress):
		// The earlier submission is still pending and will report.
		f.submitting = true
	case errors.Is(res.Err, context.Canceled):
		// Shutting down.
	default:
		f.logger.Error("authentication failed", "error", res.Err)
		f.errMsg = genericError
	}
	return nil
}

func spinnerTick() tea.Cmd {
	return tea.Tick(spinnerInterval, func(time.Time) tea.Msg { return spinnerTickMsg{} })
}

// GetControlSets returns the form bindings.
func (f *FormViewState) GetControlSets() []types.ControlSet {
	other := "sign up"
	if f.mode == SignupMode {
		other = "sign in"
	}
	return []types.ControlSet{
		{Controls: []types.ControlType{
			{Name: "next field", Key: "tab"},
			{Name: "submit", Key: "enter"},
			{Name: other, Key: "ctrl+n"},
		}},
		types.GlobalControlSet,
	}
}
