package gotrue

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/golang-jwt/jwt/v5"

	"github.com/riskibarqy/golf-twitchers/internal/domain/session"
	"github.com/riskibarqy/golf-twitchers/internal/platform/logging"
	"github.com/riskibarqy/golf-twitchers/internal/platform/resilience"
)

func newTestClient(srv *httptest.Server, breaker resilience.CircuitBreakerConfig) *Client {
	return NewClient(srv.Client(), Config{
		BaseURL:        srv.URL,
		APIKey:         "anon-key",
		CircuitBreaker: breaker,
	}, logging.NewJSONWriter(io.Discard, logging.LevelError))
}

func TestClientSignInWithPassword_SendsGrantAndParsesSession(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/auth/v1/token" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if got := r.URL.Query().Get("grant_type"); got != "password" {
			t.Fatalf("unexpected grant type: %s", got)
		}
		if got := r.Header.Get("apikey"); got != "anon-key" {
			t.Fatalf("unexpected apikey header: %s", got)
		}

		var req map[string]string
		if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request body: %v", err)
		}
		if req["email"] != "sam@example.com" || req["password"] != "hunter2" {
			t.Fatalf("unexpected credentials: %v", req)
		}

		w.Header().Set("Content-Type", "application/json")
		_ = sonic.ConfigDefault.NewEncoder(w).Encode(map[string]any{
			"access_token":  "access-1",
			"token_type":    "bearer",
			"expires_in":    3600,
			"expires_at":    1717200000,
			"refresh_token": "refresh-1",
			"user":          map[string]any{"id": "user-1", "email": "sam@example.com"},
		})
	}))
	defer srv.Close()

	client := newTestClient(srv, resilience.CircuitBreakerConfig{Enabled: false})
	got, err := client.SignInWithPassword(context.Background(), " sam@example.com ", "hunter2")
	if err != nil {
		t.Fatalf("sign in failed: %v", err)
	}
	if got.UserID != "user-1" || got.AccessToken != "access-1" || got.RefreshToken != "refresh-1" {
		t.Fatalf("unexpected session: %+v", got)
	}
	if !got.ExpiresAt.Equal(time.Unix(1717200000, 0)) {
		t.Fatalf("unexpected expiry: %s", got.ExpiresAt)
	}
}

func TestClientSignInWithPassword_InvalidCredentialsDoNotTripBreaker(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid_grant","error_description":"Invalid login credentials"}`))
	}))
	defer srv.Close()

	client := newTestClient(srv, resilience.CircuitBreakerConfig{Enabled: true, FailureThreshold: 1, OpenTimeout: time.Minute, HalfOpenMaxReq: 1})
	for i := 0; i < 3; i++ {
		_, err := client.SignInWithPassword(context.Background(), "sam@example.com", "wrong")
		if !errors.Is(err, session.ErrInvalidCredentials) {
			t.Fatalf("attempt %d: expected invalid credentials, got %v", i, err)
		}
	}
	if calls.Load() != 3 {
		t.Fatalf("expected every attempt to reach the server, got %d", calls.Load())
	}
}

func TestClient_UpstreamFailuresOpenBreaker(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := newTestClient(srv, resilience.CircuitBreakerConfig{Enabled: true, FailureThreshold: 2, OpenTimeout: time.Minute, HalfOpenMaxReq: 1})
	for i := 0; i < 2; i++ {
		if _, err := client.Refresh(context.Background(), "refresh-1"); !errors.Is(err, session.ErrProviderUnavailable) {
			t.Fatalf("attempt %d: expected provider unavailable, got %v", i, err)
		}
	}

	_, err := client.Refresh(context.Background(), "refresh-1")
	if !errors.Is(err, session.ErrProviderUnavailable) || !errors.Is(err, resilience.ErrCircuitOpen) {
		t.Fatalf("expected open circuit error, got %v", err)
	}
	if calls.Load() != 2 {
		t.Fatalf("expected open breaker to short circuit, server saw %d calls", calls.Load())
	}
}

func TestClientGetUser(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/v1/user" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer good-token" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"msg":"invalid JWT"}`))
			return
		}
		_, _ = w.Write([]byte(`{"id":"user-7","email":"jo@example.com"}`))
	}))
	defer srv.Close()

	client := newTestClient(srv, resilience.DefaultCircuitBreakerConfig())

	user, err := client.GetUser(context.Background(), "good-token")
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if user.ID != "user-7" || user.Email != "jo@example.com" {
		t.Fatalf("unexpected user: %+v", user)
	}

	if _, err := client.GetUser(context.Background(), "bad-token"); !errors.Is(err, session.ErrInvalidToken) {
		t.Fatalf("expected invalid token, got %v", err)
	}
	if _, err := client.GetUser(context.Background(), " "); !errors.Is(err, session.ErrInvalidToken) {
		t.Fatalf("expected invalid token for blank input, got %v", err)
	}
}

func TestClientSignOut_SendsBearer(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/auth/v1/logout" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer access-1" {
			t.Fatalf("missing bearer token")
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := newTestClient(srv, resilience.DefaultCircuitBreakerConfig())
	if err := client.SignOut(context.Background(), "access-1"); err != nil {
		t.Fatalf("sign out: %v", err)
	}
}

func TestSessionFromToken_FallsBackToJWTExpiry(t *testing.T) {
	exp := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "user-1", "exp": exp.Unix()}).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	client := &Client{now: time.Now}
	got, err := client.sessionFromToken(tokenResponse{AccessToken: token, User: userResponse{ID: "user-1"}})
	if err != nil {
		t.Fatalf("session from token: %v", err)
	}
	if !got.ExpiresAt.Equal(exp) {
		t.Fatalf("expected expiry from exp claim, got %s", got.ExpiresAt)
	}

	if _, err := client.sessionFromToken(tokenResponse{}); err == nil {
		t.Fatalf("expected error for empty access token")
	}
}

func TestBuildURL(t *testing.T) {
	if got := buildURL("https://auth.example.com/", "auth/v1/user"); got != "https://auth.example.com/auth/v1/user" {
		t.Fatalf("unexpected url: %s", got)
	}
	if got := buildURL("https://auth.example.com", "https://other.example.com/x"); got != "https://other.example.com/x" {
		t.Fatalf("absolute path must win: %s", got)
	}
}

func TestErrorMessage(t *testing.T) {
	if got := errorMessage([]byte(`{"error":"invalid_grant","error_description":"Invalid login credentials"}`)); got != "Invalid login credentials" {
		t.Fatalf("unexpected message: %s", got)
	}
	if got := errorMessage([]byte("upstream exploded")); got != "upstream exploded" {
		t.Fatalf("unexpected raw message: %s", got)
	}
}
