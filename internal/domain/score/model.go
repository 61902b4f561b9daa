package score

import (
	"errors"
	"fmt"
	"time"
)

const MaxPerRound = 18

// ErrDuplicate reports a second score for the same round and player.
var ErrDuplicate = errors.New("duplicate score for round and player")

// Score is one player's result in one round. A nil Score means the player
// did not submit a score. PlayerID is zero once the player has been deleted.
type Score struct {
	ID       int64
	RoundID  int64
	PlayerID int64
	Score    *int
	Birdies  int
	Eagles   int
	Hat      bool
}

func (s Score) Validate() error {
	if s.Score != nil && *s.Score < 0 {
		return fmt.Errorf("score must be >= 0")
	}
	if s.Birdies < 0 || s.Birdies > MaxPerRound {
		return fmt.Errorf("birdies must be between 0 and %d", MaxPerRound)
	}
	if s.Eagles < 0 || s.Eagles > MaxPerRound {
		return fmt.Errorf("eagles must be between 0 and %d", MaxPerRound)
	}
	return nil
}

// JoinedRecord is a score with its round, course and player resolved.
// Any nested reference may be nil when the referenced row is gone.
type JoinedRecord struct {
	Score
	Round  *RoundRef
	Player *PlayerRef
}

type RoundRef struct {
	ID     int64
	Date   time.Time
	Course *CourseRef
}

type CourseRef struct {
	ID   int64
	Name string
}

type PlayerRef struct {
	ID   int64
	Name string
}

func IntPtr(v int) *int {
	return &v
}
