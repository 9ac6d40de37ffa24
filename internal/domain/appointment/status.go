package appointment

import "github.com/clinicware/clinic-scheduler/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusOpened Status = "opened"
	StatusClosed Status = "closed"
	StatusMissed Status = "missed"
)

// InitialStatus is the status of every newly created appointment.
func InitialStatus() Status {
	return StatusOpened
}

// Normalize applies the implicit default exactly once, at the boundary
// where server data becomes a domain value. Older records carry an
// empty status and mean "opened".
func Normalize(s string) Status {
	if s == "" {
		return StatusOpened
	}
	return Status(s)
}

func Known(s Status) bool {
	switch s {
	case StatusOpened, StatusClosed, StatusMissed:
		return true
	}
	return false
}

// ===============================
// Validations
// ===============================

// CanSetStatus validates a status change. Re-marking a closed appointment
// as missed (or the reverse) is allowed: the clinic corrects history
// freely, there is no terminal lock.
func CanSetStatus(current, next Status) error {
	if !Known(next) {
		return httperr.ErrBusiness("invalid_status")
	}
	if !Known(current) {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}
