package appointment

import (
	"github.com/clinicware/clinic-scheduler/internal/httperr"
	"github.com/clinicware/clinic-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func SetStatus(ap *models.Appointment, next Status) error {
	if err := CanSetStatus(Normalize(ap.Status), next); err != nil {
		return err
	}

	ap.Status = string(next)
	return nil
}

// Locations an appointment can happen at.
const (
	LocationClinic = "clinic"
	LocationHome   = "home"
)

func ValidLocation(location string) bool {
	return location == LocationClinic || location == LocationHome
}

// Apply rewrites every mutable field of a persisted appointment from a
// validated edit. The identifier never changes.
func Apply(ap *models.Appointment, in EditInput) error {
	start, end, err := in.StartEnd()
	if err != nil {
		return err
	}

	ap.ProfessionalID = in.ProfessionalID
	ap.PatientID = in.PatientID
	ap.StartTime = start
	ap.EndTime = end
	ap.Location = in.Location
	ap.Observation = in.Observation
	return nil
}

// ErrNotFound is the business error every missing-appointment path maps to,
// including edits against a just-deleted id.
func ErrNotFound() error {
	return httperr.ErrBusiness("appointment_not_found")
}
