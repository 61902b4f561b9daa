package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/golf-twitchers/internal/domain/score"
	qb "github.com/riskibarqy/golf-twitchers/internal/platform/querybuilder"
)

type ScoreRepository struct {
	db *sqlx.DB
}

func NewScoreRepository(db *sqlx.DB) *ScoreRepository {
	return &ScoreRepository{db: db}
}

func joinedScoreSelectBuilder() *qb.SelectBuilder {
	return qb.Select(
		"s.score_id",
		"s.round_id",
		"s.player_id",
		"s.score",
		"s.birdies",
		"s.eagles",
		"s.hat",
		"r.round_date",
		"c.course_id",
		"c.name AS course_name",
		"p.name AS player_name",
	).
		From("scores s").
		LeftJoin("rounds r", "r.round_id = s.round_id").
		LeftJoin("courses c", "c.course_id = r.course_id").
		LeftJoin("players p", "p.player_id = s.player_id")
}

func (r *ScoreRepository) ListJoined(ctx context.Context) ([]score.JoinedRecord, error) {
	query, args, err := joinedScoreSelectBuilder().
		OrderBy("r.round_date", "s.round_id", "s.score_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select joined scores query: %w", err)
	}

	var rows []joinedScoreRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select joined scores: %w", err)
	}

	out := make([]score.JoinedRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, joinedRecordFromRow(row))
	}
	return out, nil
}

func (r *ScoreRepository) ListByRound(ctx context.Context, roundID int64) ([]score.Score, error) {
	query, args, err := qb.Select("*").From("scores").
		Where(qb.Eq("round_id", roundID)).
		OrderBy("score_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select scores by round query: %w", err)
	}

	var rows []scoreTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select scores by round: %w", err)
	}

	out := make([]score.Score, 0, len(rows))
	for _, row := range rows {
		out = append(out, scoreFromRow(row))
	}
	return out, nil
}

// UpdateByRoundAndPlayer returns the stored row after the update.
func (r *ScoreRepository) UpdateByRoundAndPlayer(ctx context.Context, item score.Score) (score.Score, bool, error) {
	query, args, err := scoreUpdateQuery(item)
	if err != nil {
		return score.Score{}, false, fmt.Errorf("build update score query: %w", err)
	}

	var row scoreTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return score.Score{}, false, nil
		}
		return score.Score{}, false, fmt.Errorf("update score: %w", err)
	}
	return scoreFromRow(row), true, nil
}

func scoreUpdateQuery(item score.Score) (string, []any, error) {
	return qb.Update("scores").
		Set("score", intPtrToNull(item.Score)).
		Set("birdies", item.Birdies).
		Set("eagles", item.Eagles).
		Set("hat", item.Hat).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("round_id", item.RoundID),
			qb.Eq("player_id", item.PlayerID),
		).
		Suffix("RETURNING *").
		ToSQL()
}
