package gitsource

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"
)

// TokenSource yields a read credential for cloning. Implementations may
// mint short-lived tokens (installation tokens) or read a static one.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// EnvTokenSource reads a static token from an environment variable. An
// unset variable yields an empty token, which clones public repositories
// anonymously.
type EnvTokenSource struct {
	EnvVar string
}

func (s *EnvTokenSource) Token(ctx context.Context) (string, error) {
	return os.Getenv(s.EnvVar), nil
}

// expiringToken is what a minting function returns.
type expiringToken struct {
	value     string
	expiresAt time.Time
}

// MintFunc mints a fresh short-lived token.
type MintFunc func(ctx context.Context) (token string, expiresAt time.Time, err error)

// CachedTokenSource caches a short-lived token and re-mints it once it is
// within the refresh margin of expiry, so a clone never starts with a
// token about to die under it.
type CachedTokenSource struct {
	mint   MintFunc
	margin time.Duration

	mu      sync.Mutex
	current expiringToken
}

// NewCachedTokenSource wraps mint with a five minute refresh margin.
func NewCachedTokenSource(mint MintFunc) *CachedTokenSource {
	return &CachedTokenSource{mint: mint, margin: 5 * time.Minute}
}

func (s *CachedTokenSource) Token(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current.value != "" && time.Until(s.current.expiresAt) > s.margin {
		return s.current.value, nil
	}

	value, expiresAt, err := s.mint(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to mint access token: %w", err)
	}
	s.current = expiringToken{value: value, expiresAt: expiresAt}
	return value, nil
}
