package memory

import (
	"sort"
	"sync"

	"github.com/riskibarqy/golf-twitchers/internal/domain/course"
	"github.com/riskibarqy/golf-twitchers/internal/domain/player"
	"github.com/riskibarqy/golf-twitchers/internal/domain/round"
	"github.com/riskibarqy/golf-twitchers/internal/domain/score"
)

// Store holds all tables behind one lock so cross-table effects such as
// detaching scores from a deleted player stay consistent.
type Store struct {
	mu sync.RWMutex

	players map[int64]player.Player
	courses map[int64]course.Course
	rounds  map[int64]round.Round
	scores  map[int64]score.Score

	nextPlayerID int64
	nextCourseID int64
	nextRoundID  int64
	nextScoreID  int64
}

// Dataset is the initial content of a Store.
type Dataset struct {
	Players []player.Player
	Courses []course.Course
	Rounds  []round.Round
	Scores  []score.Score
}

func NewStore(data Dataset) *Store {
	s := &Store{
		players: make(map[int64]player.Player, len(data.Players)),
		courses: make(map[int64]course.Course, len(data.Courses)),
		rounds:  make(map[int64]round.Round, len(data.Rounds)),
		scores:  make(map[int64]score.Score, len(data.Scores)),
	}

	for _, p := range data.Players {
		s.players[p.ID] = p
		s.nextPlayerID = max(s.nextPlayerID, p.ID)
	}
	for _, c := range data.Courses {
		s.courses[c.ID] = c
		s.nextCourseID = max(s.nextCourseID, c.ID)
	}
	for _, r := range data.Rounds {
		r.Date = round.NormalizeDate(r.Date)
		s.rounds[r.ID] = r
		s.nextRoundID = max(s.nextRoundID, r.ID)
	}
	for _, sc := range data.Scores {
		s.scores[sc.ID] = cloneScore(sc)
		s.nextScoreID = max(s.nextScoreID, sc.ID)
	}

	return s
}

func (s *Store) Players() *PlayerRepository {
	return &PlayerRepository{store: s}
}

func (s *Store) Courses() *CourseRepository {
	return &CourseRepository{store: s}
}

func (s *Store) Rounds() *RoundRepository {
	return &RoundRepository{store: s}
}

func (s *Store) Scores() *ScoreRepository {
	return &ScoreRepository{store: s}
}

func sortedKeys[V any](items map[int64]V) []int64 {
	keys := make([]int64, 0, len(items))
	for k := range items {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func cloneScore(s score.Score) score.Score {
	copied := s
	if s.Score != nil {
		v := *s.Score
		copied.Score = &v
	}
	return copied
}
