package appointment

import (
	"context"

	"github.com/clinicware/clinic-scheduler/internal/audit"
	domain "github.com/clinicware/clinic-scheduler/internal/domain/appointment"
	"github.com/clinicware/clinic-scheduler/internal/models"
)

type SetAppointmentStatus struct {
	repo  domain.Repository
	cache DayCache
	audit *audit.Dispatcher
}

func NewSetAppointmentStatus(
	repo domain.Repository,
	cache DayCache,
	audit *audit.Dispatcher,
) *SetAppointmentStatus {
	return &SetAppointmentStatus{
		repo:  repo,
		cache: cache,
		audit: audit,
	}
}

func (uc *SetAppointmentStatus) Execute(
	ctx context.Context,
	clinicID uint,
	userID uint,
	appointmentID uint,
	status domain.Status,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, clinicID, appointmentID)
	if err != nil {
		return nil, err
	}

	if err := domain.SetStatus(ap, status); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.cache.InvalidateDay(ctx, clinicID, ap.StartTime)

	uc.audit.Dispatch(audit.Event{
		ClinicID: clinicID,
		UserID:   &userID,
		Action:   "appointment_status_changed",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"status": string(status)},
	})

	return ap, nil
}
