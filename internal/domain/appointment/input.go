package appointment

import (
	"time"

	"github.com/clinicware/clinic-scheduler/internal/httperr"
	"github.com/clinicware/clinic-scheduler/internal/timezone"
	"github.com/clinicware/clinic-scheduler/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

// CreateInput is a submitted appointment form: a clinic day, a quarter-hour
// start time and a duration picked from the fixed set.
type CreateInput struct {
	Date           string
	Time           string
	DurationMin    int
	Location       string
	Observation    string
	PatientID      string
	ProfessionalID string
}

type EditInput struct {
	ID uint
	CreateInput
}

// Validate is the pre-network gate: nothing that fails here is ever sent.
func (in CreateInput) Validate() error {
	if in.ProfessionalID == "" {
		return httperr.ErrBusiness("missing_professional")
	}
	if in.PatientID == "" {
		return httperr.ErrBusiness("missing_patient")
	}
	if in.Observation == "" {
		return httperr.ErrBusiness("missing_observation")
	}
	if !ValidLocation(in.Location) {
		return httperr.ErrBusiness("invalid_location")
	}
	if !validators.IsValidDuration(in.DurationMin) {
		return httperr.ErrBusiness("invalid_duration")
	}
	if !validators.IsQuarterHour(in.Time) {
		return httperr.ErrBusiness("invalid_time")
	}
	if _, _, err := in.StartEnd(); err != nil {
		return err
	}
	return nil
}

// StartEnd resolves the form into clinic-zone timestamps,
// end = start + duration.
func (in CreateInput) StartEnd() (time.Time, time.Time, error) {
	start, err := timezone.ParseDateTime(in.Date, in.Time)
	if err != nil {
		return time.Time{}, time.Time{}, httperr.ErrBusiness("invalid_date_or_time")
	}

	end := start.Add(time.Duration(in.DurationMin) * time.Minute)
	return start, end, nil
}

func (in EditInput) Validate() error {
	if in.ID == 0 {
		return ErrNotFound()
	}
	return in.CreateInput.Validate()
}
