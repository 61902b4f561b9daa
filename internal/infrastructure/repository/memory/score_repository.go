package memory

import (
	"context"

	"github.com/riskibarqy/golf-twitchers/internal/domain/score"
)

type ScoreRepository struct {
	store *Store
}

func (r *ScoreRepository) ListJoined(_ context.Context) ([]score.JoinedRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]score.JoinedRecord, 0, len(r.store.scores))
	for _, id := range sortedKeys(r.store.scores) {
		s := r.store.scores[id]
		rec := score.JoinedRecord{Score: cloneScore(s)}

		if rd, ok := r.store.rounds[s.RoundID]; ok {
			rec.Round = &score.RoundRef{ID: rd.ID, Date: rd.Date}
			if c, ok := r.store.courses[rd.CourseID]; ok {
				rec.Round.Course = &score.CourseRef{ID: c.ID, Name: c.Name}
			}
		}
		if p, ok := r.store.players[s.PlayerID]; ok {
			rec.Player = &score.PlayerRef{ID: p.ID, Name: p.Name}
		}
		out = append(out, rec)
	}
	return out, nil
}

func (r *ScoreRepository) ListByRound(_ context.Context, roundID int64) ([]score.Score, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]score.Score, 0)
	for _, id := range sortedKeys(r.store.scores) {
		if s := r.store.scores[id]; s.RoundID == roundID {
			out = append(out, cloneScore(s))
		}
	}
	return out, nil
}

func (r *ScoreRepository) UpdateByRoundAndPlayer(_ context.Context, item score.Score) (score.Score, bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for id, s := range r.store.scores {
		if s.RoundID != item.RoundID || s.PlayerID != item.PlayerID {
			continue
		}
		s.Score = item.Score
		s.Birdies = item.Birdies
		s.Eagles = item.Eagles
		s.Hat = item.Hat
		r.store.scores[id] = cloneScore(s)
		return cloneScore(s), true, nil
	}
	return score.Score{}, false, nil
}
