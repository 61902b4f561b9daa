package postgres

import "time"

type courseTableModel struct {
	ID        int64     `db:"course_id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

type courseInsertModel struct {
	Name string `db:"name"`
}
