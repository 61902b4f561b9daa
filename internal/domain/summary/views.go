package summary

import (
	"sort"
	"time"
)

type PlayerAverage struct {
	PlayerID int64
	Player   string
	Average  float64
	Rounds   int
}

// AverageByPlayer is the mean score of every player over all scored rows.
func AverageByPlayer(rows []FlatRow) []PlayerAverage {
	sums := make(map[int64]*PlayerAverage)
	totals := make(map[int64]int)
	for _, row := range rows {
		id, ok := row.playerKey()
		if !ok || row.Score == nil {
			continue
		}
		avg, exists := sums[id]
		if !exists {
			avg = &PlayerAverage{PlayerID: id}
			sums[id] = avg
		}
		if name := row.playerName(); name != "" {
			avg.Player = name
		}
		avg.Rounds++
		totals[id] += *row.Score
	}

	out := make([]PlayerAverage, 0, len(sums))
	for id, avg := range sums {
		avg.Average = float64(totals[id]) / float64(avg.Rounds)
		out = append(out, *avg)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Player != out[j].Player {
			return out[i].Player < out[j].Player
		}
		return out[i].PlayerID < out[j].PlayerID
	})
	return out
}

type SeriesPoint struct {
	RoundID int64
	Date    time.Time
	Course  *string
	Score   *int
	Birdies int
	Eagles  int
}

type PlayerSeries struct {
	PlayerID int64
	Player   string
	Points   []SeriesPoint
}

// SeriesByPlayer groups rows into chronological per-player points for trend
// charts. Rows without a player or a round date are skipped.
func SeriesByPlayer(rows []FlatRow) []PlayerSeries {
	byPlayer := make(map[int64][]FlatRow)
	for _, row := range rows {
		id, ok := row.playerKey()
		if !ok || row.RoundDate == nil {
			continue
		}
		byPlayer[id] = append(byPlayer[id], row)
	}

	out := make([]PlayerSeries, 0, len(byPlayer))
	for id, playerRows := range byPlayer {
		sort.SliceStable(playerRows, func(i, j int) bool { return chronoLess(playerRows[i], playerRows[j]) })
		series := PlayerSeries{
			PlayerID: id,
			Player:   playerRows[len(playerRows)-1].playerName(),
			Points:   make([]SeriesPoint, 0, len(playerRows)),
		}
		for _, row := range playerRows {
			series.Points = append(series.Points, SeriesPoint{
				RoundID: row.roundKey(),
				Date:    *row.RoundDate,
				Course:  row.Course,
				Score:   row.Score,
				Birdies: row.Birdies,
				Eagles:  row.Eagles,
			})
		}
		out = append(out, series)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Player != out[j].Player {
			return out[i].Player < out[j].Player
		}
		return out[i].PlayerID < out[j].PlayerID
	})
	return out
}

type DayColumn struct {
	PlayerID int64
	Player   string
}

type DayRow struct {
	RoundID int64
	Date    time.Time
	Course  *string
	// Scores is keyed by player id; a missing key means no score row, a nil
	// value means the player did not submit a score.
	Scores map[int64]*int
	// HatPlayerID is zero when nobody took the hat that round.
	HatPlayerID int64
}

type DayTable struct {
	Columns []DayColumn
	Rows    []DayRow
}

// ScoresByDay pivots rows into one line per round, most recent first, with
// one column per player ordered by name.
func ScoresByDay(rows []FlatRow) DayTable {
	columns := make(map[int64]string)
	byRound := make(map[int64]*DayRow)
	order := make([]int64, 0)

	for _, row := range rows {
		id, ok := row.playerKey()
		if !ok || row.RoundDate == nil || row.RoundID == nil {
			continue
		}
		if name := row.playerName(); name != "" || columns[id] == "" {
			columns[id] = name
		}

		roundID := row.roundKey()
		day, exists := byRound[roundID]
		if !exists {
			day = &DayRow{
				RoundID: roundID,
				Date:    *row.RoundDate,
				Course:  row.Course,
				Scores:  make(map[int64]*int),
			}
			byRound[roundID] = day
			order = append(order, roundID)
		}
		day.Scores[id] = row.Score
		if row.Hat && (day.HatPlayerID == 0 || id < day.HatPlayerID) {
			day.HatPlayerID = id
		}
	}

	table := DayTable{
		Columns: make([]DayColumn, 0, len(columns)),
		Rows:    make([]DayRow, 0, len(order)),
	}
	for id, name := range columns {
		table.Columns = append(table.Columns, DayColumn{PlayerID: id, Player: name})
	}
	sort.Slice(table.Columns, func(i, j int) bool {
		if table.Columns[i].Player != table.Columns[j].Player {
			return table.Columns[i].Player < table.Columns[j].Player
		}
		return table.Columns[i].PlayerID < table.Columns[j].PlayerID
	})

	for _, roundID := range order {
		table.Rows = append(table.Rows, *byRound[roundID])
	}
	sort.Slice(table.Rows, func(i, j int) bool {
		if !table.Rows[i].Date.Equal(table.Rows[j].Date) {
			return table.Rows[i].Date.After(table.Rows[j].Date)
		}
		return table.Rows[i].RoundID > table.Rows[j].RoundID
	})
	return table
}
