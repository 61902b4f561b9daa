package summary

import (
	"sort"
	"time"
)

// Ranks are competition ("min") ranks: tied players share the best rank and
// the next distinct value resumes after the tied group.
type Ranks struct {
	Average    int
	BestRound  int
	WorstRound int
	AvgBest6   int
	AvgWorst6  int
}

const (
	TierGold   = "gold"
	TierSilver = "silver"
	TierBronze = "bronze"
)

// Tier maps the top three rank values to a highlight tier.
func Tier(rank int) string {
	switch rank {
	case 1:
		return TierGold
	case 2:
		return TierSilver
	case 3:
		return TierBronze
	default:
		return ""
	}
}

// Rank annotates a copy of summaries with ranks for each statistic and
// returns it ordered by average rank, then player name, then id.
func Rank(summaries []PlayerSummary, direction ScoringDirection) []PlayerSummary {
	out := append([]PlayerSummary(nil), summaries...)
	if len(out) == 0 {
		return []PlayerSummary{}
	}

	assign := func(value func(PlayerSummary) float64, set func(*PlayerSummary, int)) {
		ranks := competitionRanks(out, value, direction)
		for i := range out {
			set(&out[i], ranks[i])
		}
	}
	assign(func(s PlayerSummary) float64 { return s.Average }, func(s *PlayerSummary, r int) { s.Ranks.Average = r })
	assign(func(s PlayerSummary) float64 { return float64(s.BestRound) }, func(s *PlayerSummary, r int) { s.Ranks.BestRound = r })
	assign(func(s PlayerSummary) float64 { return float64(s.WorstRound) }, func(s *PlayerSummary, r int) { s.Ranks.WorstRound = r })
	assign(func(s PlayerSummary) float64 { return s.AvgBest6 }, func(s *PlayerSummary, r int) { s.Ranks.AvgBest6 = r })
	assign(func(s PlayerSummary) float64 { return s.AvgWorst6 }, func(s *PlayerSummary, r int) { s.Ranks.AvgWorst6 = r })

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Ranks.Average != out[j].Ranks.Average {
			return out[i].Ranks.Average < out[j].Ranks.Average
		}
		if out[i].Player != out[j].Player {
			return out[i].Player < out[j].Player
		}
		return out[i].PlayerID < out[j].PlayerID
	})
	return out
}

func competitionRanks(items []PlayerSummary, value func(PlayerSummary) float64, direction ScoringDirection) []int {
	idx := make([]int, len(items))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return direction.better(value(items[idx[a]]), value(items[idx[b]]))
	})

	ranks := make([]int, len(items))
	for pos, i := range idx {
		if pos > 0 && value(items[i]) == value(items[idx[pos-1]]) {
			ranks[i] = ranks[idx[pos-1]]
			continue
		}
		ranks[i] = pos + 1
	}
	return ranks
}

// HatHolder identifies the player holding the hat after the latest round.
type HatHolder struct {
	PlayerID  int64
	Player    string
	RoundID   int64
	RoundDate time.Time
}

// CurrentHatHolder returns the hat row with the latest round date on or after
// cutoff. When several rows share that date the smallest player id wins,
// then the smallest round id.
func CurrentHatHolder(rows []FlatRow, cutoff time.Time) (HatHolder, bool) {
	var (
		holder HatHolder
		found  bool
	)
	cutoff = dateOnly(cutoff)
	for _, row := range rows {
		id, ok := row.playerKey()
		if !ok || !row.Hat || !row.inWindow(cutoff) {
			continue
		}
		date := *row.RoundDate
		if found {
			if date.Before(holder.RoundDate) {
				continue
			}
			if date.Equal(holder.RoundDate) && (id > holder.PlayerID || (id == holder.PlayerID && row.roundKey() >= holder.RoundID)) {
				continue
			}
		}
		holder = HatHolder{
			PlayerID:  id,
			Player:    row.playerName(),
			RoundID:   row.roundKey(),
			RoundDate: date,
		}
		found = true
	}
	return holder, found
}
