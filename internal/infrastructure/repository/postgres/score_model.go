package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/golf-twitchers/internal/domain/score"
)

type scoreTableModel struct {
	ID        int64         `db:"score_id"`
	RoundID   int64         `db:"round_id"`
	PlayerID  sql.NullInt64 `db:"player_id"`
	Score     sql.NullInt32 `db:"score"`
	Birdies   int           `db:"birdies"`
	Eagles    int           `db:"eagles"`
	Hat       bool          `db:"hat"`
	CreatedAt time.Time     `db:"created_at"`
	UpdatedAt time.Time     `db:"updated_at"`
}

type scoreInsertModel struct {
	RoundID  int64         `db:"round_id"`
	PlayerID sql.NullInt64 `db:"player_id"`
	Score    sql.NullInt32 `db:"score"`
	Birdies  int           `db:"birdies"`
	Eagles   int           `db:"eagles"`
	Hat      bool          `db:"hat"`
}

// joinedScoreRow is one scores row LEFT JOINed with its round, course and
// player; every joined column is nullable.
type joinedScoreRow struct {
	ScoreID    int64          `db:"score_id"`
	RoundID    int64          `db:"round_id"`
	PlayerID   sql.NullInt64  `db:"player_id"`
	Score      sql.NullInt32  `db:"score"`
	Birdies    int            `db:"birdies"`
	Eagles     int            `db:"eagles"`
	Hat        bool           `db:"hat"`
	RoundDate  sql.NullTime   `db:"round_date"`
	CourseID   sql.NullInt64  `db:"course_id"`
	CourseName sql.NullString `db:"course_name"`
	PlayerName sql.NullString `db:"player_name"`
}

func scoreInsertModelFrom(s score.Score) scoreInsertModel {
	return scoreInsertModel{
		RoundID:  s.RoundID,
		PlayerID: int64ToNull(s.PlayerID),
		Score:    intPtrToNull(s.Score),
		Birdies:  s.Birdies,
		Eagles:   s.Eagles,
		Hat:      s.Hat,
	}
}

func scoreFromRow(row scoreTableModel) score.Score {
	return score.Score{
		ID:       row.ID,
		RoundID:  row.RoundID,
		PlayerID: nullInt64ToInt64(row.PlayerID),
		Score:    nullInt32ToIntPtr(row.Score),
		Birdies:  row.Birdies,
		Eagles:   row.Eagles,
		Hat:      row.Hat,
	}
}

func joinedRecordFromRow(row joinedScoreRow) score.JoinedRecord {
	rec := score.JoinedRecord{
		Score: score.Score{
			ID:       row.ScoreID,
			RoundID:  row.RoundID,
			PlayerID: nullInt64ToInt64(row.PlayerID),
			Score:    nullInt32ToIntPtr(row.Score),
			Birdies:  row.Birdies,
			Eagles:   row.Eagles,
			Hat:      row.Hat,
		},
	}
	if row.RoundDate.Valid {
		rec.Round = &score.RoundRef{ID: row.RoundID, Date: dateOnly(row.RoundDate.Time)}
		if row.CourseID.Valid {
			rec.Round.Course = &score.CourseRef{ID: row.CourseID.Int64, Name: nullStringToString(row.CourseName)}
		}
	}
	if row.PlayerID.Valid && row.PlayerName.Valid {
		rec.Player = &score.PlayerRef{ID: row.PlayerID.Int64, Name: row.PlayerName.String}
	}
	return rec
}
