package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/golf-twitchers/internal/domain/round"
	"github.com/riskibarqy/golf-twitchers/internal/platform/logging"
	"github.com/riskibarqy/golf-twitchers/internal/usecase"
)

const maxRequestBodyBytes = 1 << 20

type Handler struct {
	playerService  *usecase.PlayerService
	courseService  *usecase.CourseService
	roundService   *usecase.RoundService
	summaryService *usecase.SummaryService
	sessionService *usecase.SessionService
	menuService    *usecase.MenuService
	logger         *logging.Logger
	validator      *validator.Validate
}

func NewHandler(
	playerService *usecase.PlayerService,
	courseService *usecase.CourseService,
	roundService *usecase.RoundService,
	summaryService *usecase.SummaryService,
	sessionService *usecase.SessionService,
	menuService *usecase.MenuService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		playerService:  playerService,
		courseService:  courseService,
		roundService:   roundService,
		summaryService: summaryService,
		sessionService: sessionService,
		menuService:    menuService,
		logger:         logger,
		validator:      validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) decodeRequest(ctx context.Context, w http.ResponseWriter, r *http.Request, payload any) error {
	decoder := sonic.ConfigDefault.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(payload); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return h.validateRequest(ctx, payload)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func pathID(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", usecase.ErrInvalidInput, name)
	}
	return id, nil
}

func queryID(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", usecase.ErrInvalidInput, name)
	}
	return id, nil
}

// summaryQueryFromRequest reads cutoff, min_rounds, direction and
// count_null_as_played; absent parameters keep the service defaults.
func summaryQueryFromRequest(r *http.Request) (usecase.SummaryQuery, error) {
	q := r.URL.Query()
	var out usecase.SummaryQuery

	if raw := strings.TrimSpace(q.Get("cutoff")); raw != "" {
		cutoff, err := round.ParseDate(raw)
		if err != nil {
			return usecase.SummaryQuery{}, fmt.Errorf("%w: cutoff: %v", usecase.ErrInvalidInput, err)
		}
		out.Cutoff = cutoff
	}
	if raw := strings.TrimSpace(q.Get("min_rounds")); raw != "" {
		minRounds, err := strconv.Atoi(raw)
		if err != nil {
			return usecase.SummaryQuery{}, fmt.Errorf("%w: min_rounds must be an integer", usecase.ErrInvalidInput)
		}
		out.MinRounds = &minRounds
	}
	out.Direction = strings.TrimSpace(q.Get("direction"))
	if raw := strings.TrimSpace(q.Get("count_null_as_played")); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return usecase.SummaryQuery{}, fmt.Errorf("%w: count_null_as_played must be a boolean", usecase.ErrInvalidInput)
		}
		out.CountNullAsPlayed = &v
	}
	return out, nil
}
