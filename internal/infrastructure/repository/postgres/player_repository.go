package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/golf-twitchers/internal/domain/player"
	qb "github.com/riskibarqy/golf-twitchers/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	query, args, err := qb.Select("*").From("players").
		OrderBy("player_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerFromRow(row))
	}
	return out, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID int64) (player.Player, bool, error) {
	query, args, err := qb.Select("*").From("players").
		Where(qb.Eq("player_id", playerID)).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build get player by id query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("get player by id: %w", err)
	}

	return playerFromRow(row), true, nil
}

func (r *PlayerRepository) Create(ctx context.Context, p player.Player) (player.Player, error) {
	insertModel := playerInsertModel{
		Name:     p.Name,
		FullName: stringToNull(p.FullName),
		ImageURL: stringToNull(p.ImageURL),
	}
	query, args, err := qb.InsertModel("players", insertModel, "RETURNING player_id")
	if err != nil {
		return player.Player{}, fmt.Errorf("build create player query: %w", err)
	}

	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&p.ID); err != nil {
		return player.Player{}, fmt.Errorf("create player: %w", err)
	}
	return p, nil
}

func (r *PlayerRepository) Update(ctx context.Context, p player.Player) (bool, error) {
	query, args, err := qb.Update("players").
		Set("name", p.Name).
		Set("full_name", stringToNull(p.FullName)).
		Set("image_url", stringToNull(p.ImageURL)).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("player_id", p.ID)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build update player query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("update player: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected update player: %w", err)
	}
	return affected > 0, nil
}

func (r *PlayerRepository) Delete(ctx context.Context, playerID int64) (bool, error) {
	query, args, err := qb.DeleteFrom("players").
		Where(qb.Eq("player_id", playerID)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete player query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete player: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected delete player: %w", err)
	}
	return affected > 0, nil
}

func playerFromRow(row playerTableModel) player.Player {
	return player.Player{
		ID:       row.ID,
		Name:     row.Name,
		FullName: nullStringToString(row.FullName),
		ImageURL: nullStringToString(row.ImageURL),
	}
}
