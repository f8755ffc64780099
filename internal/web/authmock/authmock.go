// Package authmock implements the demo sign-in flows. Credentials are
// checked against the seeded account directory; a configurable delay
// stands in for an upstream identity provider.
package authmock

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/healing-together/recoveryhub/internal/storage"
)

// ErrInvalidCredentials is the one failure reason surfaced to the login
// form; everything else collapses to a generic error page.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrEmailTaken reports a registration against an existing account.
var ErrEmailTaken = errors.New("email already registered")

// DefaultDelay simulates the latency of an upstream identity provider.
const DefaultDelay = 1500 * time.Millisecond

// Result is a successful authentication outcome.
type Result struct {
	Account    storage.Account
	RedirectTo string
}

// Service authenticates against the account directory.
type Service struct {
	store storage.Store
	delay time.Duration
}

// NewService creates an authenticator with the given simulated delay.
// A zero delay still honors context cancellation but returns at once.
func NewService(store storage.Store, delay time.Duration) *Service {
	if delay < 0 {
		delay = DefaultDelay
	}
	return &Service{store: store, delay: delay}
}

// Authenticate checks an email and password pair. The simulated delay
// elapses before the directory lookup, like a round trip would, and is
// cut short when the request context ends.
func (s *Service) Authenticate(ctx context.Context, email, password string) (Result, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return Result{}, err
	}
	account, found, err := s.store.GetAccountByEmail(ctx, email)
	if err != nil {
		return Result{}, fmt.Errorf("look up account: %w", err)
	}
	if !found {
		return Result{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return Result{}, ErrInvalidCredentials
	}
	return Result{Account: account, RedirectTo: "/dashboard"}, nil
}

// RegisterAccount creates a member account after the simulated delay.
// The caller is redirected to the login page with a success notice.
func (s *Service) RegisterAccount(ctx context.Context, name, email, password string) (Result, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return Result{}, err
	}
	normalized := strings.ToLower(strings.TrimSpace(email))
	if _, found, err := s.store.GetAccountByEmail(ctx, normalized); err != nil {
		return Result{}, fmt.Errorf("look up account: %w", err)
	} else if found {
		return Result{}, ErrEmailTaken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return Result{}, fmt.Errorf("hash password: %w", err)
	}
	account := storage.Account{
		ID:           "acct-" + uuid.NewString(),
		Email:        normalized,
		Name:         strings.TrimSpace(name),
		PasswordHash: string(hash),
		Role:         storage.RoleMember,
		JoinedAt:     time.Now().UTC(),
	}
	if err := s.store.CreateAccount(ctx, account); err != nil {
		return Result{}, fmt.Errorf("create account: %w", err)
	}
	return Result{Account: account, RedirectTo: "/login"}, nil
}

// AuthenticateGoogle is the mock OAuth flow: no provider round trip,
// only the delay, then straight to the dashboard as the demo admin.
func (s *Service) AuthenticateGoogle(ctx context.Context) (Result, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return Result{}, err
	}
	account, found, err := s.store.GetAccountByEmail(ctx, "admin@healing-together.com")
	if err != nil {
		return Result{}, fmt.Errorf("look up demo account: %w", err)
	}
	if !found {
		return Result{}, fmt.Errorf("demo account missing")
	}
	return Result{Account: account, RedirectTo: "/dashboard"}, nil
}

func (s *Service) simulateLatency(ctx context.Context) error {
	if s.delay == 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
