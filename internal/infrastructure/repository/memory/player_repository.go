package memory

import (
	"context"

	"github.com/riskibarqy/golf-twitchers/internal/domain/player"
)

type PlayerRepository struct {
	store *Store
}

func (r *PlayerRepository) List(_ context.Context) ([]player.Player, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]player.Player, 0, len(r.store.players))
	for _, id := range sortedKeys(r.store.players) {
		out = append(out, r.store.players[id])
	}
	return out, nil
}

func (r *PlayerRepository) GetByID(_ context.Context, playerID int64) (player.Player, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	p, ok := r.store.players[playerID]
	return p, ok, nil
}

func (r *PlayerRepository) Create(_ context.Context, p player.Player) (player.Player, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.nextPlayerID++
	p.ID = r.store.nextPlayerID
	r.store.players[p.ID] = p
	return p, nil
}

func (r *PlayerRepository) Update(_ context.Context, p player.Player) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.players[p.ID]; !ok {
		return false, nil
	}
	r.store.players[p.ID] = p
	return true, nil
}

// Delete removes the player and detaches their scores, mirroring the
// ON DELETE SET NULL foreign key of the relational schema.
func (r *PlayerRepository) Delete(_ context.Context, playerID int64) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.players[playerID]; !ok {
		return false, nil
	}
	delete(r.store.players, playerID)
	for id, s := range r.store.scores {
		if s.PlayerID == playerID {
			s.PlayerID = 0
			r.store.scores[id] = s
		}
	}
	return true, nil
}
