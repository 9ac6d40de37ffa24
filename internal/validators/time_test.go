package validators

import "testing"

func TestIsValidDuration(t *testing.T) {
	for _, d := range AppointmentDurations {
		if !IsValidDuration(d) {
			t.Errorf("IsValidDuration(%d) = false", d)
		}
	}

	for _, d := range []int{0, 15, 40, 181, -30} {
		if IsValidDuration(d) {
			t.Errorf("IsValidDuration(%d) = true", d)
		}
	}
}

func TestIsQuarterHour(t *testing.T) {
	valid := []string{"07:00", "10:15", "18:30", "23:45"}
	for _, hm := range valid {
		if !IsQuarterHour(hm) {
			t.Errorf("IsQuarterHour(%q) = false", hm)
		}
	}

	invalid := []string{"", "10", "10:10", "25:00", "10:60", "1000", "aa:bb"}
	for _, hm := range invalid {
		if IsQuarterHour(hm) {
			t.Errorf("IsQuarterHour(%q) = true", hm)
		}
	}
}
