package memory

import (
	"time"

	"github.com/riskibarqy/golf-twitchers/internal/domain/course"
	"github.com/riskibarqy/golf-twitchers/internal/domain/player"
	"github.com/riskibarqy/golf-twitchers/internal/domain/round"
	"github.com/riskibarqy/golf-twitchers/internal/domain/score"
)

// SeedDataset is a small demo competition used by the memory driver.
func SeedDataset() Dataset {
	players := []player.Player{
		{ID: 1, Name: "Alex", FullName: "Alex Morgan"},
		{ID: 2, Name: "Jo", FullName: "Joanna Pike"},
		{ID: 3, Name: "Sam", FullName: "Samuel Reed"},
		{ID: 4, Name: "Kim", FullName: "Kim Hale"},
	}
	courses := []course.Course{
		{ID: 1, Name: "Royal Heath"},
		{ID: 2, Name: "Kingfisher Links"},
	}

	start := time.Date(2024, 4, 6, 0, 0, 0, 0, time.UTC)
	cards := [][4]int{
		{82, 79, 80, 0},
		{80, 81, 75, 88},
		{79, 78, 78, 0},
		{84, 80, 82, 90},
		{78, 83, 77, 0},
		{81, 77, 79, 86},
		{77, 79, 81, 0},
	}

	rounds := make([]round.Round, 0, len(cards))
	scores := make([]score.Score, 0, len(cards)*len(players))
	var scoreID int64
	for i, card := range cards {
		roundID := int64(i + 1)
		rounds = append(rounds, round.Round{
			ID:       roundID,
			Date:     start.AddDate(0, 0, 7*i),
			CourseID: courses[i%len(courses)].ID,
		})

		best := -1
		for j, v := range card {
			if v > 0 && (best < 0 || v < card[best]) {
				best = j
			}
		}
		for j, v := range card {
			if v == 0 {
				continue
			}
			scoreID++
			scores = append(scores, score.Score{
				ID:       scoreID,
				RoundID:  roundID,
				PlayerID: players[j].ID,
				Score:    score.IntPtr(v),
				Birdies:  (v + j) % 3,
				Eagles:   boolToInt(v < 78),
				Hat:      j == best,
			})
		}
	}

	return Dataset{Players: players, Courses: courses, Rounds: rounds, Scores: scores}
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
