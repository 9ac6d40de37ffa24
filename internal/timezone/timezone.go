package timezone

import "time"

// ClinicTimezone is the single wall-clock zone the grid is rendered in.
// Every viewer sees the same grid regardless of their runtime zone.
const ClinicTimezone = "America/Sao_Paulo"

var clinicLocation *time.Location

func init() {
	loc, err := time.LoadLocation(ClinicTimezone)
	if err != nil {
		loc = time.FixedZone("BRT", -3*60*60)
	}
	clinicLocation = loc
}

func Location() *time.Location {
	return clinicLocation
}

// In converts any timestamp into the clinic's zone.
func In(t time.Time) time.Time {
	return t.In(clinicLocation)
}

func Now() time.Time {
	return time.Now().In(clinicLocation)
}

// Today returns midnight of the current clinic day.
func Today() time.Time {
	return DayStart(Now())
}

// DayStart truncates a timestamp to midnight of its clinic day.
func DayStart(t time.Time) time.Time {
	local := In(t)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, clinicLocation)
}

func ParseDate(dateStr string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", dateStr, clinicLocation)
}

func ParseDateTime(dateStr, timeStr string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", dateStr+" "+timeStr, clinicLocation)
}

// FormatDate renders a timestamp as the clinic day it falls on.
func FormatDate(t time.Time) string {
	return In(t).Format("2006-01-02")
}
