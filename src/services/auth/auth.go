// Package auth implements the mock login and signup flow. Credentials are not
// checked against anything: any non-empty input succeeds after a simulated
// network delay, and the resulting profile is persisted locally.
package auth

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"chatflow/src/models"

	"golang.org/x/sync/semaphore"
)

// ErrSubmitInProgress is returned when a login or signup is already pending.
var ErrSubmitInProgress = errors.New("a submission is already in progress")

const (
	mockUserID       = "1"
	avatarURLPrefix  = "https://api.dicebear.com/7.x/avataaars/svg?seed="
	msgInvalidLogin  = "Invalid email or password"
	msgMissingFields = "Please fill in all fields"
)

// ProfileStore persists the logged-in profile.
type ProfileStore interface {
	Load() (*models.User, error)
	Save(user models.User) error
	Clear() error
}

// Service holds the current user. User state may be read from the UI loop
// while a submission completes on another goroutine.
type Service struct {
	profiles ProfileStore
	delay    time.Duration
	pending  *semaphore.Weighted
	logger   *slog.Logger

	mu   sync.RWMutex
	user *models.User
}

// NewService creates a service that waits delay before answering a submission.
func NewService(profiles ProfileStore, delay time.Duration, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{
		profiles: profiles,
		delay:    delay,
		pending:  semaphore.NewWeighted(1),
		logger:   logger,
	}
}

// Restore loads the stored profile, if any. It is called once at startup.
func (s *Service) Restore() (*models.User, error) {
	user, err := s.profiles.Load()
	if err != nil {
		return nil, err
	}
	s.setUser(user)
	if user != nil {
		s.logger.Info("restored session", "username", user.Username)
	}
	return user, nil
}

// User returns a copy of the current user, or nil when logged out.
func (s *Service) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// IsAuthenticated reports whether a user is logged in.
func (s *Service) IsAuthenticated() bool {
	return s.User() != nil
}

// Login signs in with any non-empty email and password.
func (s *Service) Login(ctx context.Context, email, password string) (*models.User, error) {
	return s.submit(ctx, "login", func() (*models.User, error) {
		email = strings.TrimSpace(email)
		if email == "" || password == "" {
			return nil, &models.ValidationError{Message: msgInvalidLogin}
		}
		return &models.User{
			ID:        mockUserID,
			Username:  usernameFromEmail(email),
			Email:     email,
			AvatarRef: avatarURLPrefix + email,
		}, nil
	})
}

// Signup registers with any non-empty username, email and password.
func (s *Service) Signup(ctx context.Context, username, email, password string) (*models.User, error) {
	return s.submit(ctx, "signup", func() (*models.User, error) {
		username = strings.TrimSpace(username)
		email = strings.TrimSpace(email)
		if username == "" || email == "" || password == "" {
			return nil, &models.ValidationError{Message: msgMissingFields}
		}
		return &models.User{
			ID:        mockUserID,
			Username:  username,
			Email:     email,
			AvatarRef: avatarURLPrefix + email,
		}, nil
	})
}

// Logout forgets the current user and the stored profile.
func (s *Service) Logout() error {
	s.setUser(nil)
	if err := s.profiles.Clear(); err != nil {
		return err
	}
	s.logger.Info("logged out")
	return nil
}

func (s *Service) submit(ctx context.Context, op string, build func() (*models.User, error)) (*models.User, error) {
	if !s.pending.TryAcquire(1) {
		return nil, ErrSubmitInProgress
	}
	defer s.pending.Release(1)

	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	user, err := build()
	if err != nil {
		s.logger.Info(op+" rejected", "error", err)
		return nil, err
	}
	if err := s.profiles.Save(*user); err != nil {
		return nil, err
	}
	s.setUser(user)
	s.logger.Info(op+" succeeded", "username", user.Username)
	return s.User(), nil
}

func (s *Service) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Service) setUser(user *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
}

func usernameFromEmail(email string) string {
	name, _, _ := strings.Cut(email, "@")
	return name
}
