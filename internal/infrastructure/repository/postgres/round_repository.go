package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/golf-twitchers/internal/domain/round"
	"github.com/riskibarqy/golf-twitchers/internal/domain/score"
	qb "github.com/riskibarqy/golf-twitchers/internal/platform/querybuilder"
)

type RoundRepository struct {
	db *sqlx.DB
}

func NewRoundRepository(db *sqlx.DB) *RoundRepository {
	return &RoundRepository{db: db}
}

func (r *RoundRepository) List(ctx context.Context) ([]round.Round, error) {
	query, args, err := qb.Select("*").From("rounds").
		OrderBy("round_date", "round_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select rounds query: %w", err)
	}

	var rows []roundTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select rounds: %w", err)
	}

	out := make([]round.Round, 0, len(rows))
	for _, row := range rows {
		out = append(out, roundFromRow(row))
	}
	return out, nil
}

func (r *RoundRepository) GetByID(ctx context.Context, roundID int64) (round.Round, bool, error) {
	query, args, err := qb.Select("*").From("rounds").
		Where(qb.Eq("round_id", roundID)).
		ToSQL()
	if err != nil {
		return round.Round{}, false, fmt.Errorf("build get round by id query: %w", err)
	}

	var row roundTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return round.Round{}, false, nil
		}
		return round.Round{}, false, fmt.Errorf("get round by id: %w", err)
	}
	return roundFromRow(row), true, nil
}

func (r *RoundRepository) CreateWithScores(ctx context.Context, rd round.Round, scores []score.Score) (round.Round, []score.Score, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return round.Round{}, nil, fmt.Errorf("begin tx create round: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	rd.Date = round.NormalizeDate(rd.Date)
	roundQuery, roundArgs, err := qb.InsertModel("rounds", roundInsertModel{
		RoundDate: rd.Date.Format(round.DateLayout),
		CourseID:  int64ToNull(rd.CourseID),
	}, "RETURNING round_id")
	if err != nil {
		return round.Round{}, nil, fmt.Errorf("build create round query: %w", err)
	}
	if err := tx.QueryRowxContext(ctx, roundQuery, roundArgs...).Scan(&rd.ID); err != nil {
		return round.Round{}, nil, fmt.Errorf("create round: %w", err)
	}

	stored := make([]score.Score, 0, len(scores))
	if len(scores) > 0 {
		models := make([]scoreInsertModel, 0, len(scores))
		for _, s := range scores {
			s.RoundID = rd.ID
			models = append(models, scoreInsertModelFrom(s))
			stored = append(stored, s)
		}

		scoreQuery, scoreArgs, err := qb.InsertModels("scores", models, "RETURNING score_id, player_id")
		if err != nil {
			return round.Round{}, nil, fmt.Errorf("build create round scores query: %w", err)
		}

		var inserted []struct {
			ScoreID  int64 `db:"score_id"`
			PlayerID int64 `db:"player_id"`
		}
		if err := tx.SelectContext(ctx, &inserted, scoreQuery, scoreArgs...); err != nil {
			if isUniqueViolation(err) {
				return round.Round{}, nil, fmt.Errorf("create round scores: %w", score.ErrDuplicate)
			}
			return round.Round{}, nil, fmt.Errorf("create round scores: %w", err)
		}

		idByPlayer := make(map[int64]int64, len(inserted))
		for _, row := range inserted {
			idByPlayer[row.PlayerID] = row.ScoreID
		}
		for i := range stored {
			stored[i].ID = idByPlayer[stored[i].PlayerID]
		}
	}

	if err := tx.Commit(); err != nil {
		return round.Round{}, nil, fmt.Errorf("commit create round: %w", err)
	}
	return rd, stored, nil
}

func roundFromRow(row roundTableModel) round.Round {
	return round.Round{
		ID:       row.ID,
		Date:     dateOnly(row.RoundDate),
		CourseID: nullInt64ToInt64(row.CourseID),
	}
}
