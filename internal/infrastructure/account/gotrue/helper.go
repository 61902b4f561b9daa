package gotrue

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/http"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/golang-jwt/jwt/v5"

	"github.com/riskibarqy/golf-twitchers/internal/domain/session"
)

func isCircuitFailure(err error) bool {
	return errors.Is(err, session.ErrProviderUnavailable)
}

func isRejectStatus(status int) bool {
	switch status {
	case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound, http.StatusUnprocessableEntity:
		return true
	default:
		return false
	}
}

func isRetryableStatus(status int) bool {
	return status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// tokenExpiry reads the exp claim without verifying the signature; the auth
// service remains the authority on validity.
func tokenExpiry(accessToken string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(accessToken, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.UTC(), true
}

func errorMessage(raw []byte) string {
	var decoded errorResponse
	if err := sonic.Unmarshal(raw, &decoded); err == nil {
		for _, candidate := range []string{decoded.ErrorDescription, decoded.Msg, decoded.Message, decoded.Error} {
			if strings.TrimSpace(candidate) != "" {
				return candidate
			}
		}
	}
	text := strings.TrimSpace(string(raw))
	if len(text) > 256 {
		text = text[:256] + "...(truncated)"
	}
	return text
}

func buildURL(baseURL, path string) string {
	baseURL = strings.TrimSuffix(strings.TrimSpace(baseURL), "/")
	path = strings.TrimSpace(path)
	if path == "" {
		return baseURL
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return baseURL + path
}
