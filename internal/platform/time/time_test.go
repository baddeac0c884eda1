package time

import (
	stdtime "time"

	"testing"
)

func TestPtr(t *testing.T) {
	if Ptr(stdtime.Time{}) != nil {
		t.Fatalf("Ptr(zero) should be nil")
	}
	now := stdtime.Now()
	p := Ptr(now)
	if p == nil || !p.Equal(now) {
		t.Fatalf("Ptr = %v", p)
	}
}

func TestMidnight(t *testing.T) {
	loc := stdtime.FixedZone("UTC+3", 3*3600)
	in := stdtime.Date(2025, stdtime.March, 14, 1, 30, 45, 0, loc)
	got := Midnight(in)

	want := stdtime.Date(2025, stdtime.March, 13, 0, 0, 0, 0, stdtime.UTC)
	if !got.Equal(want) {
		t.Fatalf("Midnight = %v, want %v", got, want)
	}
	if got.Location() != stdtime.UTC {
		t.Fatalf("Midnight location = %v, want UTC", got.Location())
	}
}
