package appointment

import (
	"context"

	"github.com/clinicware/clinic-scheduler/internal/audit"
	domain "github.com/clinicware/clinic-scheduler/internal/domain/appointment"
	"github.com/clinicware/clinic-scheduler/internal/httperr"
	"github.com/clinicware/clinic-scheduler/internal/models"
)

type CreateAppointment struct {
	repo  domain.Repository
	cache DayCache
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	cache DayCache,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		cache: cache,
		audit: audit,
	}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	clinicID uint,
	userID uint,
	in domain.CreateInput,
) (*models.Appointment, error) {

	if err := in.Validate(); err != nil {
		return nil, err
	}

	if _, err := uc.repo.GetPatient(ctx, clinicID, in.PatientID); err != nil {
		return nil, httperr.ErrBusiness("patient_not_found")
	}

	if _, err := uc.repo.GetProfessional(ctx, clinicID, in.ProfessionalID); err != nil {
		return nil, httperr.ErrBusiness("professional_not_found")
	}

	start, end, err := in.StartEnd()
	if err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		ClinicID:       clinicID,
		ProfessionalID: in.ProfessionalID,
		PatientID:      in.PatientID,
		StartTime:      start,
		EndTime:        end,
		Location:       in.Location,
		Observation:    in.Observation,
		Status:         string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.cache.InvalidateDay(ctx, clinicID, start)

	uc.audit.Dispatch(audit.Event{
		ClinicID: clinicID,
		UserID:   &userID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
