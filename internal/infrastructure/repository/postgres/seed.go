package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/golf-twitchers/internal/domain/round"
	"github.com/riskibarqy/golf-twitchers/internal/domain/score"
	"github.com/riskibarqy/golf-twitchers/internal/infrastructure/repository/memory"
)

// BootstrapSeed loads the demo dataset into an empty database. It is a no-op
// once any player exists.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM players`); err != nil {
		return fmt.Errorf("count players for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	data := memory.SeedDataset()
	players := NewPlayerRepository(db)
	courses := NewCourseRepository(db)
	rounds := NewRoundRepository(db)

	playerIDs := make(map[int64]int64, len(data.Players))
	for _, p := range data.Players {
		created, err := players.Create(ctx, p)
		if err != nil {
			return fmt.Errorf("seed player %s: %w", p.Name, err)
		}
		playerIDs[p.ID] = created.ID
	}

	courseIDs := make(map[int64]int64, len(data.Courses))
	for _, c := range data.Courses {
		created, err := courses.Create(ctx, c)
		if err != nil {
			return fmt.Errorf("seed course %s: %w", c.Name, err)
		}
		courseIDs[c.ID] = created.ID
	}

	for _, rd := range data.Rounds {
		seedRoundID := rd.ID
		rd.CourseID = courseIDs[rd.CourseID]

		scores := make([]score.Score, 0, len(data.Players))
		for _, s := range data.Scores {
			if s.RoundID != seedRoundID {
				continue
			}
			s.PlayerID = playerIDs[s.PlayerID]
			scores = append(scores, s)
		}
		if _, _, err := rounds.CreateWithScores(ctx, rd, scores); err != nil {
			return fmt.Errorf("seed round %s: %w", rd.Date.Format(round.DateLayout), err)
		}
	}

	return nil
}
