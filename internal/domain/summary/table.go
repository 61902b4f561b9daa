package summary

import (
	"time"

	"github.com/riskibarqy/golf-twitchers/internal/domain/score"
)

// FlatRow is one player's result in one round with its references resolved.
// Nil fields mean the referenced row was absent.
type FlatRow struct {
	RoundID   *int64
	RoundDate *time.Time
	Course    *string
	CourseID  *int64
	PlayerID  *int64
	Player    *string
	Score     *int
	Birdies   int
	Eagles    int
	Hat       bool
}

// BuildFlatRows flattens joined records one-to-one, preserving order and
// duplicates.
func BuildFlatRows(records []score.JoinedRecord) []FlatRow {
	out := make([]FlatRow, 0, len(records))
	for _, rec := range records {
		row := FlatRow{
			Birdies: rec.Birdies,
			Eagles:  rec.Eagles,
			Hat:     rec.Hat,
		}
		if rec.Score.Score != nil {
			v := *rec.Score.Score
			row.Score = &v
		}
		if rec.Player != nil {
			id, name := rec.Player.ID, rec.Player.Name
			row.PlayerID = &id
			row.Player = &name
		}
		if rec.Round != nil {
			id, date := rec.Round.ID, rec.Round.Date
			row.RoundID = &id
			row.RoundDate = &date
			if rec.Round.Course != nil {
				courseID, courseName := rec.Round.Course.ID, rec.Round.Course.Name
				row.CourseID = &courseID
				row.Course = &courseName
			}
		}
		out = append(out, row)
	}
	return out
}

func (r FlatRow) playerKey() (int64, bool) {
	if r.PlayerID == nil {
		return 0, false
	}
	return *r.PlayerID, true
}

func (r FlatRow) playerName() string {
	if r.Player == nil {
		return ""
	}
	return *r.Player
}

func (r FlatRow) roundKey() int64 {
	if r.RoundID == nil {
		return 0
	}
	return *r.RoundID
}

func (r FlatRow) inWindow(cutoff time.Time) bool {
	if r.RoundDate == nil {
		return false
	}
	return cutoff.IsZero() || !r.RoundDate.Before(cutoff)
}

// chronoLess orders rows by date then round id, falling back to the row
// values so that the order never depends on input position.
func chronoLess(a, b FlatRow) bool {
	da, db := *a.RoundDate, *b.RoundDate
	if !da.Equal(db) {
		return da.Before(db)
	}
	if ra, rb := a.roundKey(), b.roundKey(); ra != rb {
		return ra < rb
	}
	sa, sb := -1, -1
	if a.Score != nil {
		sa = *a.Score
	}
	if b.Score != nil {
		sb = *b.Score
	}
	if sa != sb {
		return sa < sb
	}
	if a.Birdies != b.Birdies {
		return a.Birdies < b.Birdies
	}
	if a.Eagles != b.Eagles {
		return a.Eagles < b.Eagles
	}
	return !a.Hat && b.Hat
}
