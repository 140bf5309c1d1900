package login

import (
	"context"
	"errors"
	"testing"

	"chatflow/src/models"
	"chatflow/src/navigation"
	"chatflow/src/services/auth"
	"chatflow/src/services/storage"
	"chatflow/src/services/storage/repositories"
	"chatflow/src/types"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuth struct {
	err   error
	calls []string
}

func (f *fakeAuth) Login(_ context.Context, email, password string) (*models.User, error) {
	f.calls = append(f.calls, "login:"+email+":"+password)
	if f.err != nil {
		return nil, f.err
	}
	return &models.User{ID: "1", Email: email}, nil
}

func (f *fakeAuth) Signup(_ context.Context, username, email, password string) (*models.User, error) {
	f.calls = append(f.calls, "signup:"+username+":"+email+":"+password)
	if f.err != nil {
		return nil, f.err
	}
	return &models.User{ID: "1", Username: username, Email: email}, nil
}

func typeInto(f *FormViewState, s string) {
	for _, r := range s {
		f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// submitAndWait presses enter on the last field and returns the auth result,
// running the batched commands the way the program would.
func submitAndWait(t *testing.T, f *FormViewState) AuthResultMsg {
	t.Helper()
	_, cmd := f.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	batch, ok := cmd().(tea.BatchMsg)
	require.True(t, ok)
	for _, c := range batch {
		if res, ok := c().(AuthResultMsg); ok {
			return res
		}
	}
	t.Fatal("no auth result")
	return AuthResultMsg{}
}

func TestLoginForm_SuccessNavigatesToChat(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := auth.NewService(repositories.NewProfileRepository(store, nil), 0, nil)
	f := NewFormViewState(context.Background(), LoginMode, svc, nil)
	assert.Equal(t, types.LoginStateType, f.ViewType())

	typeInto(f, "alice@example.com")
	f.Update(tea.KeyMsg{Type: tea.KeyEnter})
	typeInto(f, "secret")
	assert.Contains(t, f.View(), "••••••")
	assert.NotContains(t, f.View(), "secret")

	res := submitAndWait(t, f)
	assert.True(t, f.Submitting())
	assert.Contains(t, f.View(), "Signing in...")

	// Keys are ignored while submitting.
	typeInto(f, "x")
	assert.Equal(t, "secret", f.Field("Password").Value())

	_, cmd := f.Update(res)
	require.NotNil(t, cmd)
	assert.Equal(t, navigation.NavigateMsg{Path: navigation.ChatPath}, cmd())
	assert.False(t, f.Submitting())
	require.NotNil(t, svc.User())
	assert.Equal(t, "alice", svc.User().Username)
}

func TestLoginForm_ValidationErrorShownInline(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := auth.NewService(repositories.NewProfileRepository(store, nil), 0, nil)
	f := NewFormViewState(context.Background(), LoginMode, svc, nil)

	f.Update(tea.KeyMsg{Type: tea.KeyEnter})
	res := submitAndWait(t, f)
	_, cmd := f.Update(res)

	assert.Nil(t, cmd)
	assert.False(t, f.Submitting())
	assert.Equal(t, "Invalid email or password", f.Error())
	assert.Contains(t, f.View(), "Invalid email or password")
	assert.Nil(t, svc.User())
}

func TestSignupForm(t *testing.T) {
	fa := &fakeAuth{}
	f := NewFormViewState(context.Background(), SignupMode, fa, nil)
	assert.Equal(t, types.SignupStateType, f.ViewType())
	assert.Contains(t, f.View(), "Create an account")

	typeInto(f, "jane")
	f.Update(tea.KeyMsg{Type: tea.KeyTab})
	typeInto(f, "jane@example.com")
	f.Update(tea.KeyMsg{Type: tea.KeyTab})
	typeInto(f, "pw")

	res := submitAndWait(t, f)
	require.NoError(t, res.Err)
	assert.Equal(t, []string{"signup:jane:jane@example.com:pw"}, fa.calls)
}

func TestForm_UnexpectedErrorIsGeneric(t *testing.T) {
	f := NewFormViewState(context.Background(), LoginMode, &fakeAuth{}, nil)
	f.Update(AuthResultMsg{Err: errors.New("disk full")})
	assert.Equal(t, genericError, f.Error())

	g := NewFormViewState(context.Background(), LoginMode, &fakeAuth{}, nil)
	g.Update(AuthResultMsg{Err: context.Canceled})
	assert.Empty(t, g.Error())
}

func TestForm_SwitchMode(t *testing.T) {
	f := NewFormViewState(context.Background(), LoginMode, &fakeAuth{}, nil)
	_, cmd := f.Update(tea.KeyMsg{Type: tea.KeyCtrlN})
	require.NotNil(t, cmd)
	assert.Equal(t, navigation.NavigateMsg{Path: navigation.SignupPath}, cmd())

	s := NewFormViewState(context.Background(), SignupMode, &fakeAuth{}, nil)
	_, cmd = s.Update(tea.KeyMsg{Type: tea.KeyCtrlN})
	assert.Equal(t, navigation.NavigateMsg{Path: navigation.LoginPath}, cmd())
}

func TestForm_SpinnerStopsWhenIdle(t *testing.T) {
	f := NewFormViewState(context.Background(), LoginMode, &fakeAuth{}, nil)
	_, cmd := f.Update(spinnerTickMsg{})
	assert.Nil(t, cmd)
}
