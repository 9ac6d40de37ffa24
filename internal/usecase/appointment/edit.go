package appointment

import (
	"context"

	"github.com/clinicware/clinic-scheduler/internal/audit"
	domain "github.com/clinicware/clinic-scheduler/internal/domain/appointment"
	"github.com/clinicware/clinic-scheduler/internal/httperr"
	"github.com/clinicware/clinic-scheduler/internal/models"
)

type EditAppointment struct {
	repo  domain.Repository
	cache DayCache
	audit *audit.Dispatcher
}

func NewEditAppointment(
	repo domain.Repository,
	cache DayCache,
	audit *audit.Dispatcher,
) *EditAppointment {
	return &EditAppointment{
		repo:  repo,
		cache: cache,
		audit: audit,
	}
}

func (uc *EditAppointment) Execute(
	ctx context.Context,
	clinicID uint,
	userID uint,
	in domain.EditInput,
) (*models.Appointment, error) {

	if err := in.Validate(); err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAppointment(ctx, clinicID, in.ID)
	if err != nil {
		return nil, err
	}

	if _, err := uc.repo.GetPatient(ctx, clinicID, in.PatientID); err != nil {
		return nil, httperr.ErrBusiness("patient_not_found")
	}

	if _, err := uc.repo.GetProfessional(ctx, clinicID, in.ProfessionalID); err != nil {
		return nil, httperr.ErrBusiness("professional_not_found")
	}

	previousStart := ap.StartTime

	if err := domain.Apply(ap, in); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	// A move across days dirties both the old and the new grid.
	uc.cache.InvalidateDay(ctx, clinicID, previousStart)
	uc.cache.InvalidateDay(ctx, clinicID, ap.StartTime)

	uc.audit.Dispatch(audit.Event{
		ClinicID: clinicID,
		UserID:   &userID,
		Action:   "appointment_edited",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
