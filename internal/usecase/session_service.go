package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/riskibarqy/golf-twitchers/internal/domain/session"
)

// SessionService owns the login lifecycle. It keeps no state of its own:
// callers hold the session and pass its tokens back in.
type SessionService struct {
	provider session.Provider
}

func NewSessionService(provider session.Provider) *SessionService {
	return &SessionService{provider: provider}
}

func (s *SessionService) Login(ctx context.Context, email, password string) (session.Session, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SessionService.Login")
	defer span.End()

	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return session.Session{}, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	out, err := s.provider.SignInWithPassword(ctx, email, password)
	if err != nil {
		return session.Session{}, mapSessionError("login", err)
	}
	if out.Email == "" {
		out.Email = email
	}
	return out, nil
}

func (s *SessionService) Refresh(ctx context.Context, refreshToken string) (session.Session, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SessionService.Refresh")
	defer span.End()

	refreshToken = strings.TrimSpace(refreshToken)
	if refreshToken == "" {
		return session.Session{}, fmt.Errorf("%w: refresh token is required", ErrInvalidInput)
	}

	out, err := s.provider.Refresh(ctx, refreshToken)
	if err != nil {
		return session.Session{}, mapSessionError("refresh session", err)
	}
	return out, nil
}

// Logout invalidates the access token. A token the provider no longer
// recognises counts as already logged out.
func (s *SessionService) Logout(ctx context.Context, accessToken string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.SessionService.Logout")
	defer span.End()

	accessToken = strings.TrimSpace(accessToken)
	if accessToken == "" {
		return fmt.Errorf("%w: access token is required", ErrInvalidInput)
	}

	err := s.provider.SignOut(ctx, accessToken)
	if err == nil || errors.Is(err, session.ErrInvalidToken) {
		return nil
	}
	return mapSessionError("logout", err)
}

func (s *SessionService) Verify(ctx context.Context, accessToken string) (session.User, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SessionService.Verify")
	defer span.End()

	accessToken = strings.TrimSpace(accessToken)
	if accessToken == "" {
		return session.User{}, fmt.Errorf("%w: access token is required", ErrUnauthorized)
	}

	user, err := s.provider.GetUser(ctx, accessToken)
	if err != nil {
		return session.User{}, mapSessionError("verify token", err)
	}
	return user, nil
}

func mapSessionError(op string, err error) error {
	switch {
	case errors.Is(err, session.ErrProviderUnavailable):
		return fmt.Errorf("%w: %s: %v", ErrDependencyUnavailable, op, err)
	case errors.Is(err, session.ErrInvalidCredentials), errors.Is(err, session.ErrInvalidToken):
		return fmt.Errorf("%w: %s: %v", ErrUnauthorized, op, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
