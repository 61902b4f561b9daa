package score

import "context"

// Repository describes score persistence needs from use cases.
type Repository interface {
	ListJoined(ctx context.Context) ([]JoinedRecord, error)
	ListByRound(ctx context.Context, roundID int64) ([]Score, error)
	// UpdateByRoundAndPlayer overwrites the score identified by its natural key
	// and returns the stored row.
	UpdateByRoundAndPlayer(ctx context.Context, s Score) (Score, bool, error)
}
