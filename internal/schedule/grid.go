package schedule

import (
	"fmt"
	"time"

	"github.com/clinicware/clinic-scheduler/internal/timezone"
)

// Slot is one fixed hourly row of the day grid, labeled by its start,
// e.g. "07:00".
type Slot string

// Operating window of the grid. 13 hourly rows, 07:00 through 19:00.
const (
	FirstHour = 7
	LastHour  = 19
)

// Slots returns the fixed rows of the day grid, in display order.
func Slots() []Slot {
	slots := make([]Slot, 0, LastHour-FirstHour+1)
	for h := FirstHour; h <= LastHour; h++ {
		slots = append(slots, Slot(fmt.Sprintf("%02d:00", h)))
	}
	return slots
}

// SlotOf matches a timestamp to the grid row of its start hour, in the
// clinic's zone. An hour outside the operating window matches nothing —
// the appointment simply does not render, it is not an error.
func SlotOf(t time.Time) (Slot, bool) {
	hour := timezone.In(t).Hour()
	if hour < FirstHour || hour > LastHour {
		return "", false
	}
	return Slot(fmt.Sprintf("%02d:00", hour)), true
}

// Hour returns the slot's start hour.
func (s Slot) Hour() int {
	var hour int
	fmt.Sscanf(string(s), "%02d:00", &hour)
	return hour
}

// StartOn anchors the slot on a concrete clinic day.
func (s Slot) StartOn(day time.Time) time.Time {
	local := timezone.In(day)
	return time.Date(local.Year(), local.Month(), local.Day(), s.Hour(), 0, 0, 0, timezone.Location())
}
