package session

import "context"

// Provider is the hosted authentication service.
type Provider interface {
	SignInWithPassword(ctx context.Context, email, password string) (Session, error)
	Refresh(ctx context.Context, refreshToken string) (Session, error)
	SignOut(ctx context.Context, accessToken string) error
	GetUser(ctx context.Context, accessToken string) (User, error)
}
