package postgres

import (
	"database/sql"
	"time"
)

type roundTableModel struct {
	ID        int64         `db:"round_id"`
	RoundDate time.Time     `db:"round_date"`
	CourseID  sql.NullInt64 `db:"course_id"`
	CreatedAt time.Time     `db:"created_at"`
}

type roundInsertModel struct {
	RoundDate string        `db:"round_date"`
	CourseID  sql.NullInt64 `db:"course_id"`
}
