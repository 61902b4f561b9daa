package gotrue

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"
	"golang.org/x/sync/singleflight"

	"github.com/riskibarqy/golf-twitchers/internal/domain/session"
	"github.com/riskibarqy/golf-twitchers/internal/platform/logging"
	"github.com/riskibarqy/golf-twitchers/internal/platform/metrics"
	"github.com/riskibarqy/golf-twitchers/internal/platform/resilience"
)

const maxResponseBytes = 1 << 20

type Config struct {
	BaseURL        string
	APIKey         string
	Timeout        time.Duration
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client talks to a GoTrue compatible hosted auth service.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	apiKey         string
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	userGroup      singleflight.Group
	now            func() time.Time
}

func NewClient(httpClient *http.Client, cfg Config, logger *logging.Logger) *Client {
	if logger == nil {
		logger = logging.Default()
	}
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	breaker := resilience.NewCircuitBreaker("gotrue", cfg.CircuitBreaker)
	breaker.OnStateChange(func(name string, from, to resilience.CircuitState) {
		open := 0.0
		if to != resilience.CircuitStateClosed {
			open = 1
		}
		metrics.CircuitStateGauge.WithLabelValues(name).Set(open)
		logger.Warn("circuit breaker state changed", "breaker", name, "from", string(from), "to", string(to))
	})

	return &Client{
		httpClient:     httpClient,
		baseURL:        strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		apiKey:         strings.TrimSpace(cfg.APIKey),
		logger:         logger,
		breaker:        breaker,
		circuitEnabled: cfg.CircuitBreaker.Enabled,
		now:            time.Now,
	}
}

func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (session.Session, error) {
	var resp tokenResponse
	err := c.do(ctx, "sign_in", http.MethodPost, "/auth/v1/token", url.Values{"grant_type": {"password"}}, "",
		passwordGrantRequest{Email: strings.TrimSpace(email), Password: password}, &resp, session.ErrInvalidCredentials)
	if err != nil {
		return session.Session{}, err
	}
	return c.sessionFromToken(resp)
}

func (c *Client) Refresh(ctx context.Context, refreshToken string) (session.Session, error) {
	refreshToken = strings.TrimSpace(refreshToken)
	if refreshToken == "" {
		return session.Session{}, crerr.Wrap(session.ErrInvalidToken, "refresh token is required")
	}

	var resp tokenResponse
	err := c.do(ctx, "refresh", http.MethodPost, "/auth/v1/token", url.Values{"grant_type": {"refresh_token"}}, "",
		refreshGrantRequest{RefreshToken: refreshToken}, &resp, session.ErrInvalidToken)
	if err != nil {
		return session.Session{}, err
	}
	return c.sessionFromToken(resp)
}

func (c *Client) SignOut(ctx context.Context, accessToken string) error {
	return c.do(ctx, "sign_out", http.MethodPost, "/auth/v1/logout", nil, accessToken, nil, nil, session.ErrInvalidToken)
}

// GetUser resolves the user behind an access token. Concurrent lookups of the
// same token share one upstream request.
func (c *Client) GetUser(ctx context.Context, accessToken string) (session.User, error) {
	accessToken = strings.TrimSpace(accessToken)
	if accessToken == "" {
		return session.User{}, crerr.Wrap(session.ErrInvalidToken, "access token is required")
	}

	v, err, _ := c.userGroup.Do(hashToken(accessToken), func() (any, error) {
		var resp userResponse
		if err := c.do(ctx, "get_user", http.MethodGet, "/auth/v1/user", nil, accessToken, nil, &resp, session.ErrInvalidToken); err != nil {
			return session.User{}, err
		}
		if strings.TrimSpace(resp.ID) == "" {
			return session.User{}, crerr.New("invalid user response: id is empty")
		}
		return session.User{ID: resp.ID, Email: resp.Email}, nil
	})
	if err != nil {
		return session.User{}, err
	}
	return v.(session.User), nil
}

func (c *Client) do(
	ctx context.Context,
	op, method, path string,
	query url.Values,
	bearer string,
	payload any,
	out any,
	rejectErr error,
) error {
	call := func() error {
		return c.roundTrip(ctx, op, method, path, query, bearer, payload, out, rejectErr)
	}

	var err error
	if c.circuitEnabled {
		err = c.breaker.Execute(call, isCircuitFailure)
	} else {
		err = call()
	}

	switch {
	case err == nil:
		metrics.AuthRequestCounter.WithLabelValues(op, "ok").Inc()
	case errors.Is(err, resilience.ErrCircuitOpen):
		metrics.AuthRequestCounter.WithLabelValues(op, "circuit_open").Inc()
		c.logger.WarnContext(ctx, "gotrue circuit breaker rejected request", "operation", op, "state", string(c.breaker.State()))
		return fmt.Errorf("%w: %w", session.ErrProviderUnavailable, err)
	case isCircuitFailure(err):
		metrics.AuthRequestCounter.WithLabelValues(op, "unavailable").Inc()
	default:
		metrics.AuthRequestCounter.WithLabelValues(op, "rejected").Inc()
	}
	return err
}

func (c *Client) roundTrip(
	ctx context.Context,
	op, method, path string,
	query url.Values,
	bearer string,
	payload any,
	out any,
	rejectErr error,
) error {
	endpoint := buildURL(c.baseURL, path)
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		encoded, err := sonic.Marshal(payload)
		if err != nil {
			return crerr.Wrapf(err, "marshal %s request", op)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return crerr.Wrapf(err, "create %s request", op)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("apikey", c.apiKey)
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", session.ErrProviderUnavailable, crerr.Wrapf(err, "send %s request", op))
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if _, err := buf.ReadFrom(io.LimitReader(resp.Body, maxResponseBytes)); err != nil {
		return fmt.Errorf("%w: %w", session.ErrProviderUnavailable, crerr.Wrapf(err, "read %s response", op))
	}

	switch {
	case resp.StatusCode/100 == 2:
		if out == nil || buf.Len() == 0 {
			return nil
		}
		if err := sonic.Unmarshal(buf.B, out); err != nil {
			return crerr.Wrapf(err, "decode %s response", op)
		}
		return nil
	case isRejectStatus(resp.StatusCode):
		return crerr.Wrapf(rejectErr, "%s status=%d: %s", op, resp.StatusCode, errorMessage(buf.B))
	case isRetryableStatus(resp.StatusCode):
		c.logger.WarnContext(ctx, "gotrue upstream failure", "operation", op, "status_code", resp.StatusCode)
		return fmt.Errorf("%w: %s status=%d", session.ErrProviderUnavailable, op, resp.StatusCode)
	default:
		return crerr.Newf("gotrue %s failed status=%d: %s", op, resp.StatusCode, errorMessage(buf.B))
	}
}

func (c *Client) sessionFromToken(resp tokenResponse) (session.Session, error) {
	if strings.TrimSpace(resp.AccessToken) == "" {
		return session.Session{}, crerr.New("invalid token response: access_token is empty")
	}

	out := session.Session{
		UserID:       resp.User.ID,
		Email:        resp.User.Email,
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
	}
	switch {
	case resp.ExpiresAt > 0:
		out.ExpiresAt = time.Unix(resp.ExpiresAt, 0).UTC()
	case resp.ExpiresIn > 0:
		out.ExpiresAt = c.now().Add(time.Duration(resp.ExpiresIn) * time.Second).UTC()
	default:
		if exp, ok := tokenExpiry(resp.AccessToken); ok {
			out.ExpiresAt = exp
		}
	}
	return out, nil
}

type passwordGrantRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshGrantRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type tokenResponse struct {
	AccessToken  string       `json:"access_token"`
	TokenType    string       `json:"token_type"`
	ExpiresIn    int64        `json:"expires_in"`
	ExpiresAt    int64        `json:"expires_at"`
	RefreshToken string       `json:"refresh_token"`
	User         userResponse `json:"user"`
}

type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type errorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
	Msg              string `json:"msg"`
	Message          string `json:"message"`
}
