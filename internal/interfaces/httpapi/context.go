package httpapi

import (
	"context"

	"github.com/riskibarqy/golf-twitchers/internal/domain/session"
)

type contextKey string

const principalContextKey contextKey = "auth_principal"

// principal is the verified caller of an authorized route.
type principal struct {
	User        session.User
	AccessToken string
}

func withPrincipal(ctx context.Context, p principal) context.Context {
	return context.WithValue(ctx, principalContextKey, p)
}

func principalFromContext(ctx context.Context) (principal, bool) {
	p, ok := ctx.Value(principalContextKey).(principal)
	return p, ok
}
