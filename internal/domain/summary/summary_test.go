package summary

import (
	"math"
	"math/rand"
	"reflect"
	"testing"
	"time"

	"github.com/riskibarqy/golf-twitchers/internal/domain/score"
)

func date(t *testing.T, v string) time.Time {
	t.Helper()
	d, err := time.Parse(time.DateOnly, v)
	if err != nil {
		t.Fatalf("parse date %q: %v", v, err)
	}
	return d
}

func ptr[T any](v T) *T {
	return &v
}

type rowFixture struct {
	round   int64
	day     string
	player  int64
	name    string
	score   *int
	birdies int
	eagles  int
	hat     bool
}

func rowsOf(t *testing.T, fixtures ...rowFixture) []FlatRow {
	t.Helper()
	out := make([]FlatRow, 0, len(fixtures))
	for _, s := range fixtures {
		out = append(out, FlatRow{
			RoundID:   ptr(s.round),
			RoundDate: ptr(date(t, s.day)),
			Course:    ptr("Links"),
			CourseID:  ptr(int64(1)),
			PlayerID:  ptr(s.player),
			Player:    ptr(s.name),
			Score:     s.score,
			Birdies:   s.birdies,
			Eagles:    s.eagles,
			Hat:       s.hat,
		})
	}
	return out
}

func seriesRows(t *testing.T, player int64, name string, firstRound int64, scores ...int) []FlatRow {
	t.Helper()
	base := date(t, "2024-01-06")
	fixtures := make([]rowFixture, 0, len(scores))
	for i, s := range scores {
		fixtures = append(fixtures, rowFixture{
			round:  firstRound + int64(i),
			day:    base.AddDate(0, 0, 7*i).Format(time.DateOnly),
			player: player,
			name:   name,
			score:  ptr(s),
		})
	}
	return rowsOf(t, fixtures...)
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestBuildFlatRows(t *testing.T) {
	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	records := []score.JoinedRecord{
		{
			Score:  score.Score{ID: 1, RoundID: 10, PlayerID: 3, Score: score.IntPtr(81), Birdies: 2, Hat: true},
			Round:  &score.RoundRef{ID: 10, Date: day, Course: &score.CourseRef{ID: 4, Name: "Old Course"}},
			Player: &score.PlayerRef{ID: 3, Name: "Alex"},
		},
		{
			Score:  score.Score{ID: 2, RoundID: 11, PlayerID: 3},
			Round:  &score.RoundRef{ID: 11, Date: day.AddDate(0, 1, 0)},
			Player: &score.PlayerRef{ID: 3, Name: "Alex"},
		},
		{
			Score: score.Score{ID: 3, Score: score.IntPtr(90)},
		},
		{
			Score:  score.Score{ID: 1, RoundID: 10, PlayerID: 3, Score: score.IntPtr(81), Birdies: 2, Hat: true},
			Round:  &score.RoundRef{ID: 10, Date: day, Course: &score.CourseRef{ID: 4, Name: "Old Course"}},
			Player: &score.PlayerRef{ID: 3, Name: "Alex"},
		},
	}

	rows := BuildFlatRows(records)
	if len(rows) != len(records) {
		t.Fatalf("expected %d rows, got %d", len(records), len(rows))
	}

	first := rows[0]
	if *first.RoundID != 10 || !first.RoundDate.Equal(day) || *first.Course != "Old Course" || *first.CourseID != 4 {
		t.Fatalf("unexpected round columns: %+v", first)
	}
	if *first.PlayerID != 3 || *first.Player != "Alex" || *first.Score != 81 || first.Birdies != 2 || !first.Hat {
		t.Fatalf("unexpected player columns: %+v", first)
	}

	if rows[1].Course != nil || rows[1].CourseID != nil {
		t.Fatalf("expected nil course for round without course, got %+v", rows[1])
	}
	if rows[1].Score != nil {
		t.Fatalf("expected nil score, got %d", *rows[1].Score)
	}
	if rows[2].PlayerID != nil || rows[2].RoundID != nil || rows[2].RoundDate != nil {
		t.Fatalf("expected nil references, got %+v", rows[2])
	}

	if got := BuildFlatRows(nil); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestAggregate_SevenRoundPlayer(t *testing.T) {
	rows := seriesRows(t, 1, "Sam", 100, 80, 75, 78, 82, 77, 79, 81)

	got := Aggregate(rows, Options{Cutoff: date(t, "2024-01-01"), MinRounds: 6, Direction: StrokePlay})
	if len(got) != 1 {
		t.Fatalf("expected one summary, got %d", len(got))
	}
	s := got[0]
	if s.TimesPlayed != 7 || s.RoundsPlayed != 7 {
		t.Fatalf("unexpected counts: times=%d rounds=%d", s.TimesPlayed, s.RoundsPlayed)
	}
	if !almostEqual(s.Average, 552.0/7.0) {
		t.Fatalf("unexpected average: %v", s.Average)
	}
	if s.BestRound != 75 || s.WorstRound != 82 {
		t.Fatalf("unexpected best/worst: %d/%d", s.BestRound, s.WorstRound)
	}
	if !almostEqual(s.AvgBest6, 470.0/6.0) {
		t.Fatalf("unexpected avg best 6: %v", s.AvgBest6)
	}
	if !almostEqual(s.AvgWorst6, 477.0/6.0) {
		t.Fatalf("unexpected avg worst 6: %v", s.AvgWorst6)
	}
	if s.LastScore != 81 || s.Trend != TrendUp {
		t.Fatalf("unexpected last score/trend: %d %q", s.LastScore, s.Trend)
	}
}

func TestAggregate_ExcludesPlayersBelowMinRounds(t *testing.T) {
	rows := append(seriesRows(t, 1, "Sam", 100, 80, 75, 78, 82, 77, 79, 81), seriesRows(t, 2, "Kim", 200, 70, 71, 72)...)

	got := Aggregate(rows, Options{MinRounds: 6})
	if len(got) != 1 || got[0].Player != "Sam" {
		t.Fatalf("expected only Sam, got %+v", got)
	}

	ranked := Rank(got, StrokePlay)
	if ranked[0].Ranks.Average != 1 {
		t.Fatalf("excluded player must not affect ranks, got %+v", ranked[0].Ranks)
	}
}

func TestRank_CompetitionRanking(t *testing.T) {
	rows := append(seriesRows(t, 1, "Ann", 100, 80, 80), seriesRows(t, 2, "Bea", 200, 79, 81)...)
	rows = append(rows, seriesRows(t, 3, "Cat", 300, 82, 82)...)
	rows = append(rows, seriesRows(t, 4, "Dee", 400, 83, 85)...)

	ranked := Rank(Aggregate(rows, Options{MinRounds: 1}), StrokePlay)
	want := map[string]int{"Ann": 1, "Bea": 1, "Cat": 3, "Dee": 4}
	for _, s := range ranked {
		if s.Ranks.Average != want[s.Player] {
			t.Fatalf("player %s: want average rank %d got %d", s.Player, want[s.Player], s.Ranks.Average)
		}
	}
	if ranked[0].Player != "Ann" || ranked[1].Player != "Bea" || ranked[3].Player != "Dee" {
		t.Fatalf("unexpected output order: %s %s %s %s", ranked[0].Player, ranked[1].Player, ranked[2].Player, ranked[3].Player)
	}

	best := map[string]int{}
	for _, s := range ranked {
		best[s.Player] = s.Ranks.BestRound
	}
	if best["Bea"] != 1 || best["Ann"] != 2 || best["Cat"] != 3 || best["Dee"] != 4 {
		t.Fatalf("unexpected best round ranks: %v", best)
	}
}

func TestRank_StablefordPrefersHigherScores(t *testing.T) {
	rows := append(seriesRows(t, 1, "Ann", 100, 30, 36), seriesRows(t, 2, "Bea", 200, 40, 38)...)

	summaries := Aggregate(rows, Options{MinRounds: 1, Direction: Stableford})
	ranked := Rank(summaries, Stableford)
	if ranked[0].Player != "Bea" || ranked[0].Ranks.Average != 1 {
		t.Fatalf("expected Bea to lead, got %+v", ranked[0])
	}
	if ranked[0].BestRound != 40 || ranked[0].WorstRound != 38 {
		t.Fatalf("unexpected stableford best/worst: %d/%d", ranked[0].BestRound, ranked[0].WorstRound)
	}
}

func TestCurrentHatHolder(t *testing.T) {
	rows := rowsOf(t,
		rowFixture{round: 1, day: "2024-05-01", player: 1, name: "Alex", score: ptr(80), hat: true},
		rowFixture{round: 2, day: "2024-06-01", player: 2, name: "Jo", score: ptr(78), hat: true},
		rowFixture{round: 2, day: "2024-06-01", player: 1, name: "Alex", score: ptr(82)},
	)

	holder, ok := CurrentHatHolder(rows, time.Time{})
	if !ok || holder.Player != "Jo" || holder.RoundID != 2 {
		t.Fatalf("expected Jo to hold the hat, got %+v ok=%v", holder, ok)
	}

	if _, ok := CurrentHatHolder(rows, date(t, "2024-07-01")); ok {
		t.Fatalf("expected no holder after cutoff")
	}

	holder, ok = CurrentHatHolder(rows, date(t, "2024-01-01"))
	if !ok || holder.Player != "Jo" {
		t.Fatalf("expected Jo within window, got %+v", holder)
	}
}

func TestCurrentHatHolder_TieOnDateIsDeterministic(t *testing.T) {
	rows := rowsOf(t,
		rowFixture{round: 5, day: "2024-06-01", player: 9, name: "Zed", score: ptr(80), hat: true},
		rowFixture{round: 5, day: "2024-06-01", player: 4, name: "Max", score: ptr(80), hat: true},
	)
	reversed := []FlatRow{rows[1], rows[0]}

	a, _ := CurrentHatHolder(rows, time.Time{})
	b, _ := CurrentHatHolder(reversed, time.Time{})
	if a.PlayerID != 4 || b.PlayerID != 4 {
		t.Fatalf("expected smallest player id to win tie, got %d and %d", a.PlayerID, b.PlayerID)
	}
}

func TestEmptyInput(t *testing.T) {
	got := Aggregate(nil, DefaultOptions())
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty summaries, got %#v", got)
	}
	if ranked := Rank(got, StrokePlay); len(ranked) != 0 {
		t.Fatalf("expected empty ranking, got %#v", ranked)
	}
	if _, ok := CurrentHatHolder(nil, time.Time{}); ok {
		t.Fatalf("expected no hat holder")
	}
	if avgs := AverageByPlayer(nil); len(avgs) != 0 {
		t.Fatalf("expected no averages")
	}
	if table := ScoresByDay(nil); len(table.Rows) != 0 || len(table.Columns) != 0 {
		t.Fatalf("expected empty pivot")
	}
}

func TestAggregate_InvalidOptionsDegradeToEmpty(t *testing.T) {
	rows := seriesRows(t, 1, "Sam", 100, 80, 75, 78)

	if got := Aggregate(rows, Options{MinRounds: -1}); len(got) != 0 {
		t.Fatalf("expected empty result for negative min rounds, got %+v", got)
	}
	if got := Aggregate(rows, Options{Cutoff: date(t, "2030-01-01")}); len(got) != 0 {
		t.Fatalf("expected empty result for cutoff after data, got %+v", got)
	}
}

func TestAggregate_CutoffIsInclusive(t *testing.T) {
	rows := seriesRows(t, 1, "Sam", 100, 80, 75, 78)

	got := Aggregate(rows, Options{Cutoff: date(t, "2024-01-13"), MinRounds: 1})
	if len(got) != 1 || got[0].TimesPlayed != 2 {
		t.Fatalf("expected two rows on or after cutoff, got %+v", got)
	}
	if got[0].LastScore != 78 || got[0].Trend != TrendUp {
		t.Fatalf("unexpected last/trend: %d %q", got[0].LastScore, got[0].Trend)
	}
}

func TestAggregate_SingleRow(t *testing.T) {
	got := Aggregate(seriesRows(t, 1, "Sam", 100, 77), Options{MinRounds: 1})
	if len(got) != 1 {
		t.Fatalf("expected one summary")
	}
	s := got[0]
	if s.Trend != TrendNone {
		t.Fatalf("expected empty trend, got %q", s.Trend)
	}
	if s.AvgBest6 != s.Average || s.AvgWorst6 != s.Average {
		t.Fatalf("expected best/worst 6 equal to average: %+v", s)
	}
}

func TestAggregate_FlatAndDownTrend(t *testing.T) {
	flat := Aggregate(seriesRows(t, 1, "Sam", 100, 80, 80), Options{MinRounds: 1})
	down := Aggregate(seriesRows(t, 1, "Sam", 100, 80, 76), Options{MinRounds: 1})
	if flat[0].Trend != TrendFlat || down[0].Trend != TrendDown {
		t.Fatalf("unexpected trends: %q %q", flat[0].Trend, down[0].Trend)
	}
}

func TestAggregate_DistinctDatesQualify(t *testing.T) {
	rows := rowsOf(t,
		rowFixture{round: 1, day: "2024-05-01", player: 1, name: "Sam", score: ptr(80)},
		rowFixture{round: 2, day: "2024-05-01", player: 1, name: "Sam", score: ptr(82)},
		rowFixture{round: 3, day: "2024-05-08", player: 1, name: "Sam", score: ptr(78)},
	)

	if got := Aggregate(rows, Options{MinRounds: 3}); len(got) != 0 {
		t.Fatalf("two distinct dates must not satisfy min rounds 3")
	}
	got := Aggregate(rows, Options{MinRounds: 2})
	if len(got) != 1 || got[0].TimesPlayed != 3 || got[0].RoundsPlayed != 2 {
		t.Fatalf("unexpected summary: %+v", got)
	}
}

func TestAggregate_NullScores(t *testing.T) {
	rows := rowsOf(t,
		rowFixture{round: 1, day: "2024-05-01", player: 1, name: "Sam", score: ptr(80), birdies: 1},
		rowFixture{round: 2, day: "2024-05-08", player: 1, name: "Sam", score: nil, hat: true},
		rowFixture{round: 3, day: "2024-05-15", player: 1, name: "Sam", score: ptr(84)},
		rowFixture{round: 2, day: "2024-05-08", player: 2, name: "Kim", score: nil},
	)

	excluded := Aggregate(rows, Options{MinRounds: 3})
	if len(excluded) != 0 {
		t.Fatalf("null score rows must not count as played by default, got %+v", excluded)
	}

	counted := Aggregate(rows, Options{MinRounds: 3, CountNullAsPlayed: true})
	if len(counted) != 1 {
		t.Fatalf("expected Sam to qualify when nulls count, got %+v", counted)
	}
	s := counted[0]
	if s.TimesPlayed != 3 || s.Average != 82 || s.LastScore != 84 || s.Trend != TrendUp {
		t.Fatalf("null score must be excluded from numeric stats: %+v", s)
	}
	if s.TotalHats != 1 || s.TotalBirdies != 1 {
		t.Fatalf("unexpected totals: %+v", s)
	}

	onlyNull := Aggregate(rows, Options{MinRounds: 1, CountNullAsPlayed: true})
	for _, s := range onlyNull {
		if s.Player == "Kim" {
			t.Fatalf("player without numeric scores must not be emitted")
		}
	}
}

func TestAggregate_IgnoresRowsWithoutPlayer(t *testing.T) {
	rows := seriesRows(t, 1, "Sam", 100, 80)
	rows = append(rows, FlatRow{RoundID: ptr(int64(100)), RoundDate: rows[0].RoundDate, Score: ptr(60)})

	got := Aggregate(rows, Options{MinRounds: 1})
	if len(got) != 1 || got[0].Average != 80 {
		t.Fatalf("orphan rows must be ignored, got %+v", got)
	}
}

func TestAggregate_BestAndWorstSixProperty(t *testing.T) {
	for n := 1; n < 6; n++ {
		scores := make([]int, n)
		for i := range scores {
			scores[i] = 70 + 3*i
		}
		got := Aggregate(seriesRows(t, 1, "Sam", 1, scores...), Options{MinRounds: 0})
		s := got[0]
		if s.AvgBest6 != s.Average || s.AvgWorst6 != s.Average {
			t.Fatalf("n=%d: expected avg best/worst 6 equal to average, got %+v", n, s)
		}
	}
}

func fixtureRows(t *testing.T) []FlatRow {
	t.Helper()
	rows := seriesRows(t, 1, "Sam", 100, 80, 75, 78, 82, 77, 79, 81)
	rows = append(rows, seriesRows(t, 2, "Kim", 100, 70, 71, 72)...)
	rows = append(rows, seriesRows(t, 3, "Alex", 100, 81, 79, 80, 80, 78, 85, 77, 76)...)
	rows = append(rows, seriesRows(t, 4, "Jo", 100, 77, 83, 80, 79, 79, 81)...)
	rows = append(rows, seriesRows(t, 5, "Lee", 100, 80, 80, 78, 82)...)
	rows[3].Hat = true
	rows[20].Hat = true
	rows[23].Hat = true
	return rows
}

func TestAggregate_PermutationStable(t *testing.T) {
	rows := fixtureRows(t)
	opts := Options{MinRounds: 3, Cutoff: date(t, "2024-01-10")}
	want := Rank(Aggregate(rows, opts), StrokePlay)
	wantHolder, _ := CurrentHatHolder(rows, opts.Cutoff)

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 25; i++ {
		shuffled := append([]FlatRow(nil), rows...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		got := Rank(Aggregate(shuffled, opts), StrokePlay)
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("permutation %d changed result:\nwant %+v\ngot  %+v", i, want, got)
		}
		holder, _ := CurrentHatHolder(shuffled, opts.Cutoff)
		if holder != wantHolder {
			t.Fatalf("permutation %d changed hat holder: want %+v got %+v", i, wantHolder, holder)
		}
	}
}

func TestAggregate_MinRoundsMonotonic(t *testing.T) {
	rows := fixtureRows(t)

	prev := map[int64]struct{}{}
	for _, s := range Aggregate(rows, Options{MinRounds: 0}) {
		prev[s.PlayerID] = struct{}{}
	}
	for k := 1; k <= 9; k++ {
		current := map[int64]struct{}{}
		for _, s := range Aggregate(rows, Options{MinRounds: k}) {
			if _, ok := prev[s.PlayerID]; !ok {
				t.Fatalf("min_rounds=%d admitted player %d excluded at %d", k, s.PlayerID, k-1)
			}
			current[s.PlayerID] = struct{}{}
		}
		prev = current
	}
	if len(prev) != 0 {
		t.Fatalf("expected nobody to reach 9 rounds, got %v", prev)
	}
}

func TestTier(t *testing.T) {
	cases := map[int]string{1: TierGold, 2: TierSilver, 3: TierBronze, 4: "", 0: ""}
	for rank, want := range cases {
		if got := Tier(rank); got != want {
			t.Fatalf("Tier(%d)=%q want %q", rank, got, want)
		}
	}
}

func TestParseDirection(t *testing.T) {
	if d, err := ParseDirection(""); err != nil || d != StrokePlay {
		t.Fatalf("expected stroke play default, got %q %v", d, err)
	}
	if d, err := ParseDirection("Stableford"); err != nil || d != Stableford {
		t.Fatalf("expected stableford, got %q %v", d, err)
	}
	if _, err := ParseDirection("matchplay"); err == nil {
		t.Fatalf("expected error for unknown direction")
	}
}
