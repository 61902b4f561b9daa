package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/riskibarqy/golf-twitchers/internal/domain/summary"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("STORE_DRIVER", "")
	t.Setenv("SUMMARY_MIN_ROUNDS", "")
	t.Setenv("SUMMARY_SCORING_DIRECTION", "")
	t.Setenv("METRICS_ENABLED", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.StoreDriver != StoreDriverPostgres {
		t.Fatalf("unexpected default store driver: %q", cfg.StoreDriver)
	}
	if cfg.DBSeedDemo {
		t.Fatalf("expected demo seed disabled for postgres by default")
	}
	if cfg.Summary != summary.DefaultOptions() {
		t.Fatalf("unexpected summary defaults: %+v", cfg.Summary)
	}
	if !cfg.MetricsEnabled {
		t.Fatalf("expected metrics enabled by default")
	}
	if cfg.ReadTimeout != 10*time.Second || cfg.WriteTimeout != 15*time.Second {
		t.Fatalf("unexpected timeouts: %s %s", cfg.ReadTimeout, cfg.WriteTimeout)
	}
	if !cfg.AuthCircuit.Enabled || cfg.AuthCircuit.FailureThreshold != 5 {
		t.Fatalf("unexpected auth circuit defaults: %+v", cfg.AuthCircuit)
	}
}

func TestLoad_StoreDriver(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	t.Run("memory seeds demo data in dev", func(t *testing.T) {
		t.Setenv("STORE_DRIVER", " Memory ")
		t.Setenv("DB_SEED_DEMO", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.StoreDriver != StoreDriverMemory || !cfg.DBSeedDemo {
			t.Fatalf("unexpected store config: driver=%q seed=%v", cfg.StoreDriver, cfg.DBSeedDemo)
		}
	})

	t.Run("unknown driver", func(t *testing.T) {
		t.Setenv("STORE_DRIVER", "sqlite")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for unknown STORE_DRIVER")
		}
	})
}

func TestLoad_SummaryOptions(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	t.Run("parsed", func(t *testing.T) {
		t.Setenv("SUMMARY_MIN_ROUNDS", "3")
		t.Setenv("SUMMARY_SCORING_DIRECTION", "stableford")
		t.Setenv("SUMMARY_COUNT_NULL_AS_PLAYED", "true")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		want := summary.Options{MinRounds: 3, Direction: summary.Stableford, CountNullAsPlayed: true}
		if cfg.Summary != want {
			t.Fatalf("unexpected summary options: %+v", cfg.Summary)
		}
	})

	t.Run("negative min rounds", func(t *testing.T) {
		t.Setenv("SUMMARY_MIN_ROUNDS", "-1")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for negative SUMMARY_MIN_ROUNDS")
		}
	})

	t.Run("unknown direction", func(t *testing.T) {
		t.Setenv("SUMMARY_MIN_ROUNDS", "")
		t.Setenv("SUMMARY_SCORING_DIRECTION", "match-play")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for unknown SUMMARY_SCORING_DIRECTION")
		}
	})
}

func TestLoad_AuthConfig(t *testing.T) {
	t.Run("prod requires api key", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvProd)
		t.Setenv("AUTH_API_KEY", "")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error when AUTH_API_KEY is missing in prod")
		}
	})

	t.Run("circuit overrides", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvDev)
		t.Setenv("AUTH_TIMEOUT", "2s")
		t.Setenv("AUTH_CIRCUIT_FAILURE_COUNT", "3")
		t.Setenv("AUTH_CIRCUIT_OPEN_TIMEOUT", "30s")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.AuthTimeout != 2*time.Second {
			t.Fatalf("unexpected auth timeout: %s", cfg.AuthTimeout)
		}
		if cfg.AuthCircuit.FailureThreshold != 3 || cfg.AuthCircuit.OpenTimeout != 30*time.Second {
			t.Fatalf("unexpected auth circuit: %+v", cfg.AuthCircuit)
		}
	})

	t.Run("invalid failure count", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvDev)
		t.Setenv("AUTH_CIRCUIT_FAILURE_COUNT", "0")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for AUTH_CIRCUIT_FAILURE_COUNT=0")
		}
	})
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "x-other=1, uptrace-dsn=\"https://token@api.uptrace.dev?grpc=4317\"")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev?grpc=4317" {
		t.Fatalf("unexpected uptrace dsn: %q", cfg.UptraceDSN)
	}
}

func TestLoad_PprofDefaultsAddrWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("PPROF_ENABLED", "true")
	t.Setenv("PPROF_ADDR", "  ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PprofAddr != ":6060" {
		t.Fatalf("expected default pprof addr :6060, got %q", cfg.PprofAddr)
	}
}

func TestLoad_PyroscopeRequiresServerAddressWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PYROSCOPE_ENABLED=true without PYROSCOPE_SERVER_ADDRESS")
	}
}

func TestLoad_PyroscopeAppNameDefaultsToServiceName(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("APP_SERVICE_NAME", "golf-twitchers-api-test")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "http://localhost:4040")
	t.Setenv("PYROSCOPE_APP_NAME", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PyroscopeAppName != "golf-twitchers-api-test" {
		t.Fatalf("unexpected pyroscope app name: %q", cfg.PyroscopeAppName)
	}
}

func TestLoad_CORSOriginsDefaultAndParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	t.Run("default wildcard", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
			t.Fatalf("unexpected default CORS origins: %+v", cfg.CORSAllowedOrigins)
		}
	})

	t.Run("comma separated parsing", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example.com, http://localhost:5173 ")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 2 {
			t.Fatalf("unexpected CORS origins length: %d", len(cfg.CORSAllowedOrigins))
		}
		if cfg.CORSAllowedOrigins[0] != "https://a.example.com" {
			t.Fatalf("unexpected first CORS origin: %s", cfg.CORSAllowedOrigins[0])
		}
		if cfg.CORSAllowedOrigins[1] != "http://localhost:5173" {
			t.Fatalf("unexpected second CORS origin: %s", cfg.CORSAllowedOrigins[1])
		}
	})
}

func TestLoad_DBDisablePreparedBinaryResultParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	t.Run("default true", func(t *testing.T) {
		t.Setenv("DB_DISABLE_PREPARED_BINARY_RESULT", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if !cfg.DBDisablePreparedBinary {
			t.Fatalf("expected DBDisablePreparedBinary=true by default")
		}
	})

	t.Run("invalid value", func(t *testing.T) {
		t.Setenv("DB_DISABLE_PREPARED_BINARY_RESULT", "not-bool")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for invalid DB_DISABLE_PREPARED_BINARY_RESULT")
		}
	})
}

func TestLoad_RejectsNonPositiveTimeouts(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("APP_READ_TIMEOUT", "0s")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for APP_READ_TIMEOUT=0s")
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("GOLF_TEST_DOTENV_KEY=from-file\nGOLF_TEST_DOTENV_SET=from-file\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv("GOLF_TEST_DOTENV_SET", "from-env")
	t.Cleanup(func() { _ = os.Unsetenv("GOLF_TEST_DOTENV_KEY") })

	if err := LoadDotEnv(filepath.Join(dir, "missing.env"), path); err != nil {
		t.Fatalf("load dotenv: %v", err)
	}
	if got := os.Getenv("GOLF_TEST_DOTENV_KEY"); got != "from-file" {
		t.Fatalf("expected value from file, got %q", got)
	}
	if got := os.Getenv("GOLF_TEST_DOTENV_SET"); got != "from-env" {
		t.Fatalf("expected existing env to win, got %q", got)
	}
}
