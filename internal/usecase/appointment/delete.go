package appointment

import (
	"context"

	"github.com/clinicware/clinic-scheduler/internal/audit"
	domain "github.com/clinicware/clinic-scheduler/internal/domain/appointment"
)

type DeleteAppointment struct {
	repo  domain.Repository
	cache DayCache
	audit *audit.Dispatcher
}

func NewDeleteAppointment(
	repo domain.Repository,
	cache DayCache,
	audit *audit.Dispatcher,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:  repo,
		cache: cache,
		audit: audit,
	}
}

func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	clinicID uint,
	userID uint,
	appointmentID uint,
) error {

	// Fetch first: the day to invalidate is only known from the record.
	ap, err := uc.repo.GetAppointment(ctx, clinicID, appointmentID)
	if err != nil {
		return err
	}

	if err := uc.repo.DeleteAppointment(ctx, clinicID, appointmentID); err != nil {
		return err
	}

	uc.cache.InvalidateDay(ctx, clinicID, ap.StartTime)

	uc.audit.Dispatch(audit.Event{
		ClinicID: clinicID,
		UserID:   &userID,
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &appointmentID,
	})

	return nil
}
