package summary

import (
	"sort"
	"time"
)

type Trend string

const (
	TrendUp   Trend = "▲"
	TrendDown Trend = "▼"
	TrendFlat Trend = "→"
	TrendNone Trend = ""
)

const bestOfCount = 6

// PlayerSummary holds one qualifying player's statistics for a window.
type PlayerSummary struct {
	PlayerID     int64
	Player       string
	RoundsPlayed int
	TimesPlayed  int
	LastScore    int
	Trend        Trend
	Average      float64
	BestRound    int
	WorstRound   int
	AvgBest6     float64
	AvgWorst6    float64
	TotalBirdies int
	TotalEagles  int
	TotalHats    int
	Ranks        Ranks
}

// Aggregate computes per-player statistics. It never fails: invalid options
// or an empty window yield an empty result. Output is ordered by player name
// then id and carries no ranks; see Rank.
func Aggregate(rows []FlatRow, opts Options) []PlayerSummary {
	out := make([]PlayerSummary, 0)
	if opts.MinRounds < 0 {
		return out
	}
	cutoff := dateOnly(opts.Cutoff)

	byPlayer := make(map[int64][]FlatRow)
	for _, row := range rows {
		id, ok := row.playerKey()
		if !ok || !row.inWindow(cutoff) {
			continue
		}
		if row.Score == nil && !opts.CountNullAsPlayed {
			continue
		}
		byPlayer[id] = append(byPlayer[id], row)
	}

	for id, playerRows := range byPlayer {
		if distinctDates(playerRows) < opts.MinRounds {
			continue
		}
		s, ok := summarize(id, playerRows, opts.Direction)
		if !ok {
			continue
		}
		out = append(out, s)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Player != out[j].Player {
			return out[i].Player < out[j].Player
		}
		return out[i].PlayerID < out[j].PlayerID
	})
	return out
}

func distinctDates(rows []FlatRow) int {
	seen := make(map[string]struct{}, len(rows))
	for _, row := range rows {
		seen[row.RoundDate.UTC().Format(time.DateOnly)] = struct{}{}
	}
	return len(seen)
}

func summarize(playerID int64, rows []FlatRow, direction ScoringDirection) (PlayerSummary, bool) {
	ordered := append([]FlatRow(nil), rows...)
	sort.SliceStable(ordered, func(i, j int) bool { return chronoLess(ordered[i], ordered[j]) })

	s := PlayerSummary{
		PlayerID:     playerID,
		Player:       ordered[len(ordered)-1].playerName(),
		RoundsPlayed: distinctDates(ordered),
		TimesPlayed:  len(ordered),
	}

	scores := make([]int, 0, len(ordered))
	for _, row := range ordered {
		s.TotalBirdies += row.Birdies
		s.TotalEagles += row.Eagles
		if row.Hat {
			s.TotalHats++
		}
		if row.Score != nil {
			scores = append(scores, *row.Score)
		}
	}
	if len(scores) == 0 {
		return PlayerSummary{}, false
	}

	s.LastScore = scores[len(scores)-1]
	s.Trend = trendOf(scores)
	s.Average = mean(scores)

	sorted := append([]int(nil), scores...)
	sort.Slice(sorted, func(i, j int) bool {
		return direction.better(float64(sorted[i]), float64(sorted[j]))
	})
	s.BestRound = sorted[0]
	s.WorstRound = sorted[len(sorted)-1]

	s.AvgBest6 = s.Average
	s.AvgWorst6 = s.Average
	if len(sorted) >= bestOfCount {
		s.AvgBest6 = mean(sorted[:bestOfCount])
		s.AvgWorst6 = mean(sorted[len(sorted)-bestOfCount:])
	}

	return s, true
}

func trendOf(scores []int) Trend {
	if len(scores) < 2 {
		return TrendNone
	}
	last, prev := scores[len(scores)-1], scores[len(scores)-2]
	switch {
	case last > prev:
		return TrendUp
	case last < prev:
		return TrendDown
	default:
		return TrendFlat
	}
}

func mean(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	return float64(sum) / float64(len(values))
}
