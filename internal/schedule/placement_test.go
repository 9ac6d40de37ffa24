package schedule

import (
	"testing"
	"time"
)

func TestHeightOfEnumeratedDurations(t *testing.T) {
	cases := map[int]int{
		30:  50,
		45:  75,
		60:  100,
		75:  125,
		90:  150,
		105: 175,
		120: 200,
		135: 225,
		150: 250,
		165: 275,
		180: 300,
	}

	for duration, want := range cases {
		if got := HeightOf(duration); got != want {
			t.Errorf("HeightOf(%d) = %d, want %d", duration, got, want)
		}
	}
}

func TestHeightOfFallback(t *testing.T) {
	// Anything off the table renders with the 30-minute size.
	for _, duration := range []int{0, 1, 20, 37, 181, 240, -30} {
		if got := HeightOf(duration); got != 50 {
			t.Errorf("HeightOf(%d) = %d, want fallback 50", duration, got)
		}
	}
}

func TestOffsetOfQuarterHours(t *testing.T) {
	cases := map[int]int{
		0:  0,
		15: 25,
		30: 50,
		45: 75,
	}

	for minute, want := range cases {
		if got := OffsetOf(clinicTime(t, 10, minute)); got != want {
			t.Errorf("OffsetOf(minute %d) = %d, want %d", minute, got, want)
		}
	}
}

func TestOffsetOfFallback(t *testing.T) {
	for _, minute := range []int{1, 7, 20, 44, 59} {
		if got := OffsetOf(clinicTime(t, 10, minute)); got != 0 {
			t.Errorf("OffsetOf(minute %d) = %d, want fallback 0", minute, got)
		}
	}
}

func TestOffsetOfUsesClinicZone(t *testing.T) {
	// 13:15 UTC is 10:15 at the clinic.
	utc := time.Date(2024, 8, 16, 13, 15, 0, 0, time.UTC)
	if got := OffsetOf(utc); got != 25 {
		t.Fatalf("OffsetOf(13:15Z) = %d, want 25", got)
	}
}

func TestPlacementFor(t *testing.T) {
	start := clinicTime(t, 10, 15)
	end := start.Add(90 * time.Minute)

	p := PlacementFor(start, end)
	if p.HeightPct != 150 {
		t.Errorf("HeightPct = %d, want 150", p.HeightPct)
	}
	if p.OffsetPct != 25 {
		t.Errorf("OffsetPct = %d, want 25", p.OffsetPct)
	}
}
