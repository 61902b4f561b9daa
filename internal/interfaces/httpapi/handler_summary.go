package httpapi

import (
	"net/http"

	"github.com/riskibarqy/golf-twitchers/internal/usecase"
)

func (h *Handler) ViewScores(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ViewScores")
	defer span.End()

	playerID, err := queryID(r, "player_id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	view, err := h.summaryService.ViewScores(ctx, playerID)
	if err != nil {
		h.logger.ErrorContext(ctx, "view scores failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, scoresViewToDTO(view))
}

func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Summary")
	defer span.End()

	query, err := summaryQueryFromRequest(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	report, err := h.summaryService.Summary(ctx, query)
	if err != nil {
		h.logger.WarnContext(ctx, "summary failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, summaryToDTO(report))
}

func (h *Handler) ScoresByDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ScoresByDay")
	defer span.End()

	table, err := h.summaryService.ScoresByDay(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "scores by day failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, dayTableToDTO(table))
}

func (h *Handler) ListMenuCommands(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMenuCommands")
	defer span.End()

	commands := usecase.Commands()
	items := make([]string, 0, len(commands))
	for _, cmd := range commands {
		items = append(items, string(cmd))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) DispatchMenu(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DispatchMenu")
	defer span.End()

	cmd, err := usecase.ParseCommand(r.PathValue("command"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	params := usecase.MenuParams{}
	if params.PlayerID, err = queryID(r, "player_id"); err != nil {
		writeError(ctx, w, err)
		return
	}
	if params.RoundID, err = queryID(r, "round_id"); err != nil {
		writeError(ctx, w, err)
		return
	}
	if params.Summary, err = summaryQueryFromRequest(r); err != nil {
		writeError(ctx, w, err)
		return
	}

	view, err := h.menuService.Dispatch(ctx, cmd, params)
	if err != nil {
		h.logger.WarnContext(ctx, "menu dispatch failed", "command", string(cmd), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, menuViewToDTO(view))
}
