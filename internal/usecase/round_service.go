package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/riskibarqy/golf-twitchers/internal/domain/course"
	"github.com/riskibarqy/golf-twitchers/internal/domain/player"
	"github.com/riskibarqy/golf-twitchers/internal/domain/round"
	"github.com/riskibarqy/golf-twitchers/internal/domain/score"
	"github.com/riskibarqy/golf-twitchers/internal/platform/metrics"
)

// ScoreEntry is one player's line on a round card. A nil Score means the
// player did not play and the entry is dropped.
type ScoreEntry struct {
	PlayerID int64
	Score    *int
	Birdies  int
	Eagles   int
	Hat      bool
}

type AddRoundInput struct {
	Date     time.Time
	CourseID int64
	Entries  []ScoreEntry
}

type UpdateScoreInput struct {
	RoundID  int64
	PlayerID int64
	Score    *int
	Birdies  int
	Eagles   int
	Hat      bool
}

type RecordedRound struct {
	Round  round.Round
	Scores []score.Score
}

// RoundSheet is a round with every roster player and their score, if any.
type RoundSheet struct {
	Round  round.Round
	Course *course.Course
	Lines  []RoundSheetLine
	// Unattributed holds scores whose player has since been deleted.
	Unattributed []score.Score
}

type RoundSheetLine struct {
	Player player.Player
	Score  *score.Score
}

type RoundService struct {
	roundRepo  round.Repository
	scoreRepo  score.Repository
	courseRepo course.Repository
	playerRepo player.Repository
}

func NewRoundService(
	roundRepo round.Repository,
	scoreRepo score.Repository,
	courseRepo course.Repository,
	playerRepo player.Repository,
) *RoundService {
	return &RoundService{
		roundRepo:  roundRepo,
		scoreRepo:  scoreRepo,
		courseRepo: courseRepo,
		playerRepo: playerRepo,
	}
}

func (s *RoundService) AddRound(ctx context.Context, in AddRoundInput) (RecordedRound, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RoundService.AddRound")
	defer span.End()

	rd := round.Round{Date: round.NormalizeDate(in.Date), CourseID: in.CourseID}
	if err := rd.Validate(); err != nil {
		return RecordedRound{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	scores := make([]score.Score, 0, len(in.Entries))
	seen := make(map[int64]struct{}, len(in.Entries))
	for _, entry := range in.Entries {
		if entry.Score == nil {
			continue
		}
		if entry.PlayerID <= 0 {
			return RecordedRound{}, fmt.Errorf("%w: player id is required for every score", ErrInvalidInput)
		}
		item := score.Score{
			PlayerID: entry.PlayerID,
			Score:    score.IntPtr(*entry.Score),
			Birdies:  entry.Birdies,
			Eagles:   entry.Eagles,
			Hat:      entry.Hat,
		}
		if err := item.Validate(); err != nil {
			return RecordedRound{}, fmt.Errorf("%w: player=%d: %v", ErrInvalidInput, entry.PlayerID, err)
		}
		if _, dup := seen[entry.PlayerID]; dup {
			return RecordedRound{}, fmt.Errorf("%w: player=%d appears more than once", ErrConflict, entry.PlayerID)
		}
		seen[entry.PlayerID] = struct{}{}
		scores = append(scores, item)
	}

	_, exists, err := s.courseRepo.GetByID(ctx, rd.CourseID)
	if err != nil {
		return RecordedRound{}, fmt.Errorf("get course: %w", err)
	}
	if !exists {
		return RecordedRound{}, fmt.Errorf("%w: course=%d does not exist", ErrInvalidInput, rd.CourseID)
	}

	if len(scores) > 0 {
		players, err := s.playerRepo.List(ctx)
		if err != nil {
			return RecordedRound{}, fmt.Errorf("list players: %w", err)
		}
		known := make(map[int64]struct{}, len(players))
		for _, p := range players {
			known[p.ID] = struct{}{}
		}
		for _, item := range scores {
			if _, ok := known[item.PlayerID]; !ok {
				return RecordedRound{}, fmt.Errorf("%w: player=%d does not exist", ErrInvalidInput, item.PlayerID)
			}
		}
	}

	created, stored, err := s.roundRepo.CreateWithScores(ctx, rd, scores)
	if err != nil {
		if errors.Is(err, score.ErrDuplicate) {
			return RecordedRound{}, fmt.Errorf("%w: %v", ErrConflict, err)
		}
		return RecordedRound{}, fmt.Errorf("create round: %w", err)
	}
	metrics.RoundsCreatedCounter.Inc()

	return RecordedRound{Round: created, Scores: stored}, nil
}

func (s *RoundService) ListRounds(ctx context.Context) ([]round.Round, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RoundService.ListRounds")
	defer span.End()

	rounds, err := s.roundRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list rounds: %w", err)
	}
	return rounds, nil
}

func (s *RoundService) GetRoundSheet(ctx context.Context, roundID int64) (RoundSheet, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RoundService.GetRoundSheet")
	defer span.End()

	if roundID <= 0 {
		return RoundSheet{}, fmt.Errorf("%w: round id is required", ErrInvalidInput)
	}

	var (
		rd      round.Round
		found   bool
		players []player.Player
		scores  []score.Score
	)
	loads := pool.New().WithContext(ctx).WithCancelOnError()
	loads.Go(func(ctx context.Context) error {
		var err error
		rd, found, err = s.roundRepo.GetByID(ctx, roundID)
		if err != nil {
			return fmt.Errorf("get round: %w", err)
		}
		return nil
	})
	loads.Go(func(ctx context.Context) error {
		var err error
		players, err = s.playerRepo.List(ctx)
		if err != nil {
			return fmt.Errorf("list players: %w", err)
		}
		return nil
	})
	loads.Go(func(ctx context.Context) error {
		var err error
		scores, err = s.scoreRepo.ListByRound(ctx, roundID)
		if err != nil {
			return fmt.Errorf("list round scores: %w", err)
		}
		return nil
	})
	if err := loads.Wait(); err != nil {
		return RoundSheet{}, err
	}
	if !found {
		return RoundSheet{}, fmt.Errorf("%w: round=%d", ErrNotFound, roundID)
	}

	sheet := RoundSheet{Round: rd}
	if rd.CourseID > 0 {
		c, exists, err := s.courseRepo.GetByID(ctx, rd.CourseID)
		if err != nil {
			return RoundSheet{}, fmt.Errorf("get course: %w", err)
		}
		if exists {
			sheet.Course = &c
		}
	}

	byPlayer := make(map[int64]score.Score, len(scores))
	for _, item := range scores {
		if item.PlayerID == 0 {
			sheet.Unattributed = append(sheet.Unattributed, item)
			continue
		}
		byPlayer[item.PlayerID] = item
	}
	sheet.Lines = make([]RoundSheetLine, 0, len(players))
	for _, pl := range players {
		line := RoundSheetLine{Player: pl}
		if item, ok := byPlayer[pl.ID]; ok {
			line.Score = &item
		}
		sheet.Lines = append(sheet.Lines, line)
	}
	return sheet, nil
}

// UpdateScore overwrites the score a player holds in a round.
func (s *RoundService) UpdateScore(ctx context.Context, in UpdateScoreInput) (score.Score, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RoundService.UpdateScore")
	defer span.End()

	if in.RoundID <= 0 || in.PlayerID <= 0 {
		return score.Score{}, fmt.Errorf("%w: round id and player id are required", ErrInvalidInput)
	}
	item := score.Score{
		RoundID:  in.RoundID,
		PlayerID: in.PlayerID,
		Score:    in.Score,
		Birdies:  in.Birdies,
		Eagles:   in.Eagles,
		Hat:      in.Hat,
	}
	if err := item.Validate(); err != nil {
		return score.Score{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	stored, updated, err := s.scoreRepo.UpdateByRoundAndPlayer(ctx, item)
	if err != nil {
		return score.Score{}, fmt.Errorf("update score: %w", err)
	}
	if !updated {
		return score.Score{}, fmt.Errorf("%w: round=%d player=%d", ErrNotFound, in.RoundID, in.PlayerID)
	}
	return stored, nil
}
