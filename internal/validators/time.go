package validators

import "strconv"

// Durations a form may submit, in minutes. The placement table covers
// exactly these; anything else renders with the degraded 30-minute size.
var AppointmentDurations = []int{30, 45, 60, 75, 90, 105, 120, 135, 150, 165, 180}

func IsValidDuration(minutes int) bool {
	for _, d := range AppointmentDurations {
		if d == minutes {
			return true
		}
	}
	return false
}

// IsQuarterHour accepts "HH:MM" strings on a quarter-hour boundary.
func IsQuarterHour(hm string) bool {
	if len(hm) != 5 || hm[2] != ':' {
		return false
	}

	hour, err := strconv.Atoi(hm[:2])
	if err != nil || hour < 0 || hour > 23 {
		return false
	}

	minute, err := strconv.Atoi(hm[3:])
	if err != nil {
		return false
	}

	switch minute {
	case 0, 15, 30, 45:
		return true
	}
	return false
}
