package round

import (
	"fmt"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// Round is one playing session on a course. CourseID is zero when the
// course has been deleted since.
type Round struct {
	ID       int64
	Date     time.Time
	CourseID int64
}

func (r Round) Validate() error {
	if r.Date.IsZero() {
		return fmt.Errorf("round date is required")
	}
	if r.CourseID <= 0 {
		return fmt.Errorf("round course id is required")
	}
	return nil
}

// NormalizeDate truncates t to its calendar date at UTC midnight.
func NormalizeDate(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ParseDate(v string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(v))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", v)
	}
	return t, nil
}
