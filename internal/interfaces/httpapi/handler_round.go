package httpapi

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/golf-twitchers/internal/domain/round"
	"github.com/riskibarqy/golf-twitchers/internal/usecase"
)

func (h *Handler) ListRounds(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListRounds")
	defer span.End()

	rounds, err := h.roundService.ListRounds(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list rounds failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, roundsToDTO(rounds))
}

func (h *Handler) CreateRound(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateRound")
	defer span.End()

	var req createRoundRequest
	if err := h.decodeRequest(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	date, err := round.ParseDate(req.Date)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err))
		return
	}

	entries := make([]usecase.ScoreEntry, 0, len(req.Scores))
	for _, s := range req.Scores {
		entries = append(entries, usecase.ScoreEntry{
			PlayerID: s.PlayerID,
			Score:    s.Score,
			Birdies:  s.Birdies,
			Eagles:   s.Eagles,
			Hat:      s.Hat,
		})
	}

	recorded, err := h.roundService.AddRound(ctx, usecase.AddRoundInput{
		Date:     date,
		CourseID: req.CourseID,
		Entries:  entries,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create round failed", "course_id", req.CourseID, "date", req.Date, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, recordedRoundToDTO(recorded))
}

func (h *Handler) GetRoundSheet(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetRoundSheet")
	defer span.End()

	roundID, err := pathID(r, "roundID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	sheet, err := h.roundService.GetRoundSheet(ctx, roundID)
	if err != nil {
		h.logger.WarnContext(ctx, "get round sheet failed", "round_id", roundID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, roundSheetToDTO(sheet))
}

func (h *Handler) UpdateScore(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateScore")
	defer span.End()

	roundID, err := pathID(r, "roundID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	playerID, err := pathID(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req updateScoreRequest
	if err := h.decodeRequest(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.roundService.UpdateScore(ctx, usecase.UpdateScoreInput{
		RoundID:  roundID,
		PlayerID: playerID,
		Score:    req.Score,
		Birdies:  req.Birdies,
		Eagles:   req.Eagles,
		Hat:      req.Hat,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update score failed", "round_id", roundID, "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, scoreToDTO(updated))
}
