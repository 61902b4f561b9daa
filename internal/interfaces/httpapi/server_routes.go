package httpapi

import (
	"net/http"

	"github.com/riskibarqy/golf-twitchers/internal/platform/metrics"
)

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, metricsEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !metricsEnabled {
		return
	}

	mux.Handle("GET /metrics", metrics.Handler())
}

func registerSessionRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.HandleFunc("POST /v1/auth/login", handler.Login)
	mux.HandleFunc("POST /v1/auth/refresh", handler.RefreshSession)
	mux.Handle("POST /v1/auth/logout", RequireAuth(verifier, http.HandlerFunc(handler.Logout)))
	mux.Handle("GET /v1/auth/me", RequireAuth(verifier, http.HandlerFunc(handler.Me)))
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	registerAuthorizedMenuRoutes(mux, handler, verifier)
	registerAuthorizedRosterRoutes(mux, handler, verifier)
	registerAuthorizedRoundRoutes(mux, handler, verifier)
	registerAuthorizedScoreViewRoutes(mux, handler, verifier)
}

func registerAuthorizedMenuRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /v1/menu", RequireAuth(verifier, http.HandlerFunc(handler.ListMenuCommands)))
	mux.Handle("GET /v1/menu/{command}", RequireAuth(verifier, http.HandlerFunc(handler.DispatchMenu)))
}

func registerAuthorizedRosterRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /v1/players", RequireAuth(verifier, http.HandlerFunc(handler.ListPlayers)))
	mux.Handle("POST /v1/players", RequireAuth(verifier, http.HandlerFunc(handler.CreatePlayer)))
	mux.Handle("PUT /v1/players/{playerID}", RequireAuth(verifier, http.HandlerFunc(handler.UpdatePlayer)))
	mux.Handle("DELETE /v1/players/{playerID}", RequireAuth(verifier, http.HandlerFunc(handler.DeletePlayer)))

	mux.Handle("GET /v1/courses", RequireAuth(verifier, http.HandlerFunc(handler.ListCourses)))
	mux.Handle("POST /v1/courses", RequireAuth(verifier, http.HandlerFunc(handler.CreateCourse)))
	mux.Handle("PUT /v1/courses/{courseID}", RequireAuth(verifier, http.HandlerFunc(handler.UpdateCourse)))
	mux.Handle("DELETE /v1/courses/{courseID}", RequireAuth(verifier, http.HandlerFunc(handler.DeleteCourse)))
}

func registerAuthorizedRoundRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /v1/rounds", RequireAuth(verifier, http.HandlerFunc(handler.ListRounds)))
	mux.Handle("POST /v1/rounds", RequireAuth(verifier, http.HandlerFunc(handler.CreateRound)))
	mux.Handle("GET /v1/rounds/{roundID}", RequireAuth(verifier, http.HandlerFunc(handler.GetRoundSheet)))
	mux.Handle("PUT /v1/rounds/{roundID}/scores/{playerID}", RequireAuth(verifier, http.HandlerFunc(handler.UpdateScore)))
}

func registerAuthorizedScoreViewRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /v1/scores", RequireAuth(verifier, http.HandlerFunc(handler.ViewScores)))
	mux.Handle("GET /v1/scores/by-day", RequireAuth(verifier, http.HandlerFunc(handler.ScoresByDay)))
	mux.Handle("GET /v1/summary", RequireAuth(verifier, http.HandlerFunc(handler.Summary)))
}
