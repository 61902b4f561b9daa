package summary

import (
	"testing"
)

func TestAverageByPlayer(t *testing.T) {
	rows := rowsOf(t,
		rowFixture{round: 1, day: "2024-05-01", player: 2, name: "Jo", score: ptr(80)},
		rowFixture{round: 2, day: "2024-05-08", player: 2, name: "Jo", score: ptr(85)},
		rowFixture{round: 2, day: "2024-05-08", player: 1, name: "Alex", score: nil},
		rowFixture{round: 3, day: "2024-05-15", player: 1, name: "Alex", score: ptr(90)},
	)

	got := AverageByPlayer(rows)
	if len(got) != 2 {
		t.Fatalf("expected two players, got %+v", got)
	}
	if got[0].Player != "Alex" || got[0].Average != 90 || got[0].Rounds != 1 {
		t.Fatalf("unexpected Alex average: %+v", got[0])
	}
	if got[1].Player != "Jo" || got[1].Average != 82.5 || got[1].Rounds != 2 {
		t.Fatalf("unexpected Jo average: %+v", got[1])
	}
}

func TestSeriesByPlayer(t *testing.T) {
	rows := rowsOf(t,
		rowFixture{round: 2, day: "2024-05-08", player: 1, name: "Alex", score: ptr(84), birdies: 1},
		rowFixture{round: 1, day: "2024-05-01", player: 1, name: "Alex", score: ptr(90)},
	)

	got := SeriesByPlayer(rows)
	if len(got) != 1 || len(got[0].Points) != 2 {
		t.Fatalf("unexpected series: %+v", got)
	}
	if got[0].Points[0].RoundID != 1 || got[0].Points[1].Birdies != 1 {
		t.Fatalf("points not chronological: %+v", got[0].Points)
	}
}

func TestScoresByDay(t *testing.T) {
	rows := rowsOf(t,
		rowFixture{round: 1, day: "2024-05-01", player: 2, name: "Jo", score: ptr(80), hat: true},
		rowFixture{round: 1, day: "2024-05-01", player: 1, name: "Alex", score: ptr(82)},
		rowFixture{round: 2, day: "2024-05-08", player: 1, name: "Alex", score: nil},
	)

	table := ScoresByDay(rows)
	if len(table.Columns) != 2 || table.Columns[0].Player != "Alex" || table.Columns[1].Player != "Jo" {
		t.Fatalf("unexpected columns: %+v", table.Columns)
	}
	if len(table.Rows) != 2 || table.Rows[0].RoundID != 2 {
		t.Fatalf("expected most recent round first: %+v", table.Rows)
	}

	latest := table.Rows[0]
	if v, ok := latest.Scores[1]; !ok || v != nil {
		t.Fatalf("expected explicit nil score for Alex in round 2")
	}
	if _, ok := latest.Scores[2]; ok {
		t.Fatalf("Jo did not play round 2")
	}
	if table.Rows[1].HatPlayerID != 2 || *table.Rows[1].Scores[1] != 82 {
		t.Fatalf("unexpected first round: %+v", table.Rows[1])
	}
}

func TestScoresByDay_SkipsRowsWithoutRound(t *testing.T) {
	rows := rowsOf(t,
		rowFixture{round: 1, day: "2024-05-01", player: 1, name: "Alex", score: ptr(82)},
		rowFixture{round: 0, day: "2024-05-08", player: 1, name: "Alex", score: ptr(90)},
		rowFixture{round: 0, day: "2024-05-15", player: 2, name: "Jo", score: ptr(85)},
	)
	rows[1].RoundID = nil
	rows[2].RoundID = nil

	table := ScoresByDay(rows)
	if len(table.Rows) != 1 || table.Rows[0].RoundID != 1 {
		t.Fatalf("expected only round 1, got %+v", table.Rows)
	}
	if len(table.Columns) != 1 || table.Columns[0].PlayerID != 1 {
		t.Fatalf("expected columns only for players with a round, got %+v", table.Columns)
	}
}
