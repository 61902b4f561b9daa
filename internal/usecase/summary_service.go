package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/grafana/pyroscope-go"
	"github.com/riskibarqy/golf-twitchers/internal/domain/round"
	"github.com/riskibarqy/golf-twitchers/internal/domain/score"
	"github.com/riskibarqy/golf-twitchers/internal/domain/summary"
	"github.com/riskibarqy/golf-twitchers/internal/platform/metrics"
)

// ScoresView is the all-scores screen: the flat table, a mean per player and
// a chronological series per player.
type ScoresView struct {
	Rows     []summary.FlatRow
	Averages []summary.PlayerAverage
	Series   []summary.PlayerSeries
}

// SummaryQuery overrides the service defaults; nil fields keep them.
type SummaryQuery struct {
	Cutoff            time.Time
	MinRounds         *int
	Direction         string
	CountNullAsPlayed *bool
}

type SummaryReport struct {
	Options   summary.Options
	Players   []summary.PlayerSummary
	HatHolder *summary.HatHolder
	// Message is set when no player qualifies.
	Message string
}

type SummaryService struct {
	scoreRepo score.Repository
	defaults  summary.Options
	now       func() time.Time
}

func NewSummaryService(scoreRepo score.Repository, defaults summary.Options) *SummaryService {
	if defaults.Direction == "" {
		defaults.Direction = summary.StrokePlay
	}
	if defaults.MinRounds < 0 {
		defaults.MinRounds = summary.DefaultOptions().MinRounds
	}
	return &SummaryService{
		scoreRepo: scoreRepo,
		defaults:  defaults,
		now:       time.Now,
	}
}

func (s *SummaryService) Defaults() summary.Options {
	return s.defaults
}

// ViewScores loads every score. When playerID is positive the series is
// narrowed to that player.
func (s *SummaryService) ViewScores(ctx context.Context, playerID int64) (ScoresView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SummaryService.ViewScores")
	defer span.End()

	rows, err := s.loadRows(ctx)
	if err != nil {
		return ScoresView{}, err
	}

	defer s.observe("view_scores", s.now())
	view := ScoresView{
		Rows:     rows,
		Averages: summary.AverageByPlayer(rows),
		Series:   summary.SeriesByPlayer(rows),
	}
	if playerID > 0 {
		filtered := view.Series[:0]
		for _, series := range view.Series {
			if series.PlayerID == playerID {
				filtered = append(filtered, series)
			}
		}
		view.Series = filtered
	}
	return view, nil
}

func (s *SummaryService) Summary(ctx context.Context, query SummaryQuery) (SummaryReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SummaryService.Summary")
	defer span.End()

	opts, err := s.resolveOptions(query)
	if err != nil {
		return SummaryReport{}, err
	}

	rows, err := s.loadRows(ctx)
	if err != nil {
		return SummaryReport{}, err
	}

	defer s.observe("summary", s.now())
	report := SummaryReport{Options: opts}
	pyroscope.TagWrapper(ctx, pyroscope.Labels("summary_view", "summary", "direction", string(opts.Direction)), func(context.Context) {
		report.Players = summary.Rank(summary.Aggregate(rows, opts), opts.Direction)
	})
	if holder, ok := summary.CurrentHatHolder(rows, opts.Cutoff); ok {
		report.HatHolder = &holder
	}
	if len(report.Players) == 0 {
		report.Message = emptySummaryMessage(opts)
	}
	return report, nil
}

func (s *SummaryService) ScoresByDay(ctx context.Context) (summary.DayTable, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SummaryService.ScoresByDay")
	defer span.End()

	rows, err := s.loadRows(ctx)
	if err != nil {
		return summary.DayTable{}, err
	}

	defer s.observe("scores_by_day", s.now())
	return summary.ScoresByDay(rows), nil
}

func (s *SummaryService) resolveOptions(query SummaryQuery) (summary.Options, error) {
	opts := s.defaults
	opts.Cutoff = query.Cutoff
	if query.MinRounds != nil {
		opts.MinRounds = *query.MinRounds
	}
	if query.Direction != "" {
		direction, err := summary.ParseDirection(query.Direction)
		if err != nil {
			return summary.Options{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		opts.Direction = direction
	}
	if query.CountNullAsPlayed != nil {
		opts.CountNullAsPlayed = *query.CountNullAsPlayed
	}
	return opts, nil
}

func (s *SummaryService) loadRows(ctx context.Context) ([]summary.FlatRow, error) {
	records, err := s.scoreRepo.ListJoined(ctx)
	if err != nil {
		return nil, fmt.Errorf("list scores: %w", err)
	}
	rows := summary.BuildFlatRows(records)
	metrics.SummaryRowsGauge.Set(float64(len(rows)))
	return rows, nil
}

func (s *SummaryService) observe(view string, startedAt time.Time) {
	metrics.SummaryComputeDuration.WithLabelValues(view).Observe(s.now().Sub(startedAt).Seconds())
}

func emptySummaryMessage(opts summary.Options) string {
	if opts.MinRounds < 0 {
		return fmt.Sprintf("Minimum rounds must not be negative (got %d); no players qualify.", opts.MinRounds)
	}
	if opts.Cutoff.IsZero() {
		return fmt.Sprintf("No players have played at least %d rounds.", opts.MinRounds)
	}
	return fmt.Sprintf("No players have played at least %d rounds since %s.", opts.MinRounds, opts.Cutoff.Format(round.DateLayout))
}
