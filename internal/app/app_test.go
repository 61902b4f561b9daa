package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/riskibarqy/golf-twitchers/internal/config"
	"github.com/riskibarqy/golf-twitchers/internal/domain/summary"
	"github.com/riskibarqy/golf-twitchers/internal/platform/logging"
)

func TestNewHTTPServer_MemoryStore(t *testing.T) {
	cfg := config.Config{
		AppEnv:             config.EnvDev,
		HTTPAddr:           ":0",
		StoreDriver:        config.StoreDriverMemory,
		DBSeedDemo:         true,
		AuthBaseURL:        "http://127.0.0.1:1",
		CORSAllowedOrigins: []string{"*"},
		Summary:            summary.DefaultOptions(),
	}

	srv, cleanup, err := NewHTTPServer(context.Background(), cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("build server: %v", err)
	}
	t.Cleanup(func() { _ = cleanup() })

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected healthz 200, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/summary", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without a token, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected metrics route to be disabled, got %d", rec.Code)
	}
}

func TestNewHTTPServer_RequiresAddr(t *testing.T) {
	if _, _, err := NewHTTPServer(context.Background(), config.Config{StoreDriver: config.StoreDriverMemory}, nil); err == nil {
		t.Fatalf("expected error for empty addr")
	}
}
