package summary

import (
	"fmt"
	"strings"
	"time"
)

type ScoringDirection string

const (
	// StrokePlay ranks lower scores as better.
	StrokePlay ScoringDirection = "stroke"
	// Stableford ranks higher point totals as better.
	Stableford ScoringDirection = "stableford"
)

func ParseDirection(v string) (ScoringDirection, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "stroke", "strokeplay", "stroke_play":
		return StrokePlay, nil
	case "stableford":
		return Stableford, nil
	default:
		return "", fmt.Errorf("unknown scoring direction %q", v)
	}
}

// better reports whether a beats b under the direction.
func (d ScoringDirection) better(a, b float64) bool {
	if d == Stableford {
		return a > b
	}
	return a < b
}

// Options controls which rows count toward a summary.
type Options struct {
	// Cutoff is the inclusive lower bound on round date; zero disables it.
	Cutoff time.Time
	// MinRounds is the minimum number of distinct round dates a player needs.
	MinRounds int
	Direction ScoringDirection
	// CountNullAsPlayed counts rows without a score toward participation.
	// They never contribute to numeric aggregates either way.
	CountNullAsPlayed bool
}

func DefaultOptions() Options {
	return Options{
		MinRounds: 6,
		Direction: StrokePlay,
	}
}

func dateOnly(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
