package session

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidToken        = errors.New("invalid or expired token")
	ErrProviderUnavailable = errors.New("auth provider unavailable")
)

// Session is the identity of one logged-in user. It is passed explicitly to
// whichever layer needs it and never stored in package state.
type Session struct {
	UserID       string
	Email        string
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

// Expired reports whether the access token is no longer valid at now. A zero
// ExpiresAt is treated as non-expiring.
func (s Session) Expired(now time.Time) bool {
	if s.ExpiresAt.IsZero() {
		return false
	}
	return !now.Before(s.ExpiresAt)
}

// NeedsRefresh reports whether the access token expires within skew of now.
func (s Session) NeedsRefresh(now time.Time, skew time.Duration) bool {
	if s.ExpiresAt.IsZero() || strings.TrimSpace(s.RefreshToken) == "" {
		return false
	}
	return !now.Add(skew).Before(s.ExpiresAt)
}

// User is the identity behind an access token.
type User struct {
	ID    string
	Email string
}
