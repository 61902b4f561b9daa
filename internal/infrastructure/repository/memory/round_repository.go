package memory

import (
	"context"
	"fmt"

	"github.com/riskibarqy/golf-twitchers/internal/domain/round"
	"github.com/riskibarqy/golf-twitchers/internal/domain/score"
)

type RoundRepository struct {
	store *Store
}

func (r *RoundRepository) List(_ context.Context) ([]round.Round, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]round.Round, 0, len(r.store.rounds))
	for _, id := range sortedKeys(r.store.rounds) {
		out = append(out, r.store.rounds[id])
	}
	return out, nil
}

func (r *RoundRepository) GetByID(_ context.Context, roundID int64) (round.Round, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	rd, ok := r.store.rounds[roundID]
	return rd, ok, nil
}

func (r *RoundRepository) CreateWithScores(_ context.Context, rd round.Round, scores []score.Score) (round.Round, []score.Score, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.courses[rd.CourseID]; !ok {
		return round.Round{}, nil, fmt.Errorf("course %d does not exist", rd.CourseID)
	}
	seen := make(map[int64]struct{}, len(scores))
	for _, s := range scores {
		if _, ok := r.store.players[s.PlayerID]; !ok {
			return round.Round{}, nil, fmt.Errorf("player %d does not exist", s.PlayerID)
		}
		if _, dup := seen[s.PlayerID]; dup {
			return round.Round{}, nil, fmt.Errorf("%w: player %d", score.ErrDuplicate, s.PlayerID)
		}
		seen[s.PlayerID] = struct{}{}
	}

	r.store.nextRoundID++
	rd.ID = r.store.nextRoundID
	rd.Date = round.NormalizeDate(rd.Date)
	r.store.rounds[rd.ID] = rd

	stored := make([]score.Score, 0, len(scores))
	for _, s := range scores {
		r.store.nextScoreID++
		s.ID = r.store.nextScoreID
		s.RoundID = rd.ID
		s = cloneScore(s)
		r.store.scores[s.ID] = s
		stored = append(stored, cloneScore(s))
	}

	return rd, stored, nil
}
