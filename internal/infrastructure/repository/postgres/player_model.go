package postgres

import (
	"database/sql"
	"time"
)

type playerTableModel struct {
	ID        int64          `db:"player_id"`
	Name      string         `db:"name"`
	FullName  sql.NullString `db:"full_name"`
	ImageURL  sql.NullString `db:"image_url"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

type playerInsertModel struct {
	Name     string         `db:"name"`
	FullName sql.NullString `db:"full_name"`
	ImageURL sql.NullString `db:"image_url"`
}
