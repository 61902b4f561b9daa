package round

import (
	"context"

	"github.com/riskibarqy/golf-twitchers/internal/domain/score"
)

// Repository describes round persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Round, error)
	GetByID(ctx context.Context, roundID int64) (Round, bool, error)
	// CreateWithScores stores the round and its scores atomically; the
	// returned scores carry the assigned round id.
	CreateWithScores(ctx context.Context, r Round, scores []score.Score) (Round, []score.Score, error)
}
