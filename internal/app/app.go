package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/golf-twitchers/internal/config"
	"github.com/riskibarqy/golf-twitchers/internal/domain/course"
	"github.com/riskibarqy/golf-twitchers/internal/domain/player"
	"github.com/riskibarqy/golf-twitchers/internal/domain/round"
	"github.com/riskibarqy/golf-twitchers/internal/domain/score"
	"github.com/riskibarqy/golf-twitchers/internal/infrastructure/account/gotrue"
	"github.com/riskibarqy/golf-twitchers/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/golf-twitchers/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/golf-twitchers/internal/interfaces/httpapi"
	"github.com/riskibarqy/golf-twitchers/internal/platform/logging"
	"github.com/riskibarqy/golf-twitchers/internal/usecase"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
)

type repositories struct {
	players player.Repository
	courses course.Repository
	rounds  round.Repository
	scores  score.Repository
}

// NewHTTPServer wires storage, services and the router. The returned cleanup
// releases the database pool and must be called after the server stops.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	repos, cleanup, err := openRepositories(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	authClient := gotrue.NewClient(nil, gotrue.Config{
		BaseURL:        cfg.AuthBaseURL,
		APIKey:         cfg.AuthAPIKey,
		Timeout:        cfg.AuthTimeout,
		CircuitBreaker: cfg.AuthCircuit,
	}, logger.Named("gotrue"))

	playerSvc := usecase.NewPlayerService(repos.players)
	courseSvc := usecase.NewCourseService(repos.courses)
	roundSvc := usecase.NewRoundService(repos.rounds, repos.scores, repos.courses, repos.players)
	summarySvc := usecase.NewSummaryService(repos.scores, cfg.Summary)
	sessionSvc := usecase.NewSessionService(authClient)
	menuSvc := usecase.NewMenuService(playerSvc, courseSvc, roundSvc, summarySvc)

	handler := httpapi.NewHandler(playerSvc, courseSvc, roundSvc, summarySvc, sessionSvc, menuSvc, logger)
	router := httpapi.NewRouter(handler, sessionSvc, logger, cfg.CORSAllowedOrigins, cfg.MetricsEnabled)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return server, cleanup, nil
}

func openRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (repositories, func() error, error) {
	if cfg.StoreDriver == config.StoreDriverMemory {
		data := memory.Dataset{}
		if cfg.DBSeedDemo {
			data = memory.SeedDataset()
		}
		store := memory.NewStore(data)
		logger.Info("using in-memory store", "seeded", cfg.DBSeedDemo)
		return repositories{
			players: store.Players(),
			courses: store.Courses(),
			rounds:  store.Rounds(),
			scores:  store.Scores(),
		}, func() error { return nil }, nil
	}

	db, err := openDB(ctx, cfg)
	if err != nil {
		return repositories{}, nil, err
	}
	if cfg.DBSeedDemo {
		if err := postgres.BootstrapSeed(ctx, db); err != nil {
			_ = db.Close()
			return repositories{}, nil, fmt.Errorf("bootstrap seed: %w", err)
		}
	}
	logger.Info("using postgres store", "db_name", dbNameFromURL(cfg.DBURL), "seeded", cfg.DBSeedDemo)

	return repositories{
		players: postgres.NewPlayerRepository(db),
		courses: postgres.NewCourseRepository(db),
		rounds:  postgres.NewRoundRepository(db),
		scores:  postgres.NewScoreRepository(db),
	}, db.Close, nil
}

func openDB(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	dsn := NormalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)
	db, err := otelsqlx.Open("postgres", dsn,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(dsn)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}
