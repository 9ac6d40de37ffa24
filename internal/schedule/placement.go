package schedule

import (
	"time"

	"github.com/clinicware/clinic-scheduler/internal/timezone"
)

// Placement positions a card inside its slot row. Both values are
// percentages of one slot's height: a 60-minute visit fills the row
// (100%), a 180-minute one spills over the next two (300%). The offset
// shifts the card down for quarter-hour starts without re-bucketing it.
type Placement struct {
	HeightPct int `json:"height_pct"`
	OffsetPct int `json:"offset_pct"`
}

// Height per enumerated duration: each 15 minutes adds a quarter row.
var heightByDuration = map[int]int{
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

// fallbackHeightPct is the 30-minute size. Malformed durations degrade to
// it silently so a bad record still renders instead of breaking the grid.
const fallbackHeightPct = 50

var offsetByMinute = map[int]int{
	0:  0,
	15: 25,
	30: 50,
	45: 75,
}

// HeightOf maps a duration in minutes onto its card height.
func HeightOf(durationMin int) int {
	if pct, ok := heightByDuration[durationMin]; ok {
		return pct
	}
	return fallbackHeightPct
}

// OffsetOf maps the start's minute-of-hour (clinic zone) onto the card's
// vertical offset. Non-quarter-hour minutes degrade to zero.
func OffsetOf(start time.Time) int {
	if pct, ok := offsetByMinute[timezone.In(start).Minute()]; ok {
		return pct
	}
	return 0
}

// PlacementFor computes the full placement of one appointment card.
func PlacementFor(start, end time.Time) Placement {
	duration := int(end.Sub(start) / time.Minute)
	return Placement{
		HeightPct: HeightOf(duration),
		OffsetPct: OffsetOf(start),
	}
}
