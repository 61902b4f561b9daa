package round

import (
	"testing"
	"time"
)

func TestNormalizeDate(t *testing.T) {
	loc := time.FixedZone("AEST", 10*3600)
	got := NormalizeDate(time.Date(2024, 5, 1, 23, 30, 0, 0, loc))
	want := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("want %s got %s", want, got)
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate(" 2024-06-01 ")
	if err != nil {
		t.Fatalf("parse date: %v", err)
	}
	if got.Format(DateLayout) != "2024-06-01" {
		t.Fatalf("unexpected date: %s", got)
	}
	if _, err := ParseDate("01/06/2024"); err == nil {
		t.Fatalf("expected error for non ISO date")
	}
}

func TestRoundValidate(t *testing.T) {
	if err := (Round{CourseID: 1}).Validate(); err == nil {
		t.Fatalf("expected error for missing date")
	}
	if err := (Round{Date: time.Now()}).Validate(); err == nil {
		t.Fatalf("expected error for missing course")
	}
}
