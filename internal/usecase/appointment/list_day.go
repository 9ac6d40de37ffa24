package appointment

import (
	"context"
	"time"

	domain "github.com/clinicware/clinic-scheduler/internal/domain/appointment"
	"github.com/clinicware/clinic-scheduler/internal/dto"
	"github.com/clinicware/clinic-scheduler/internal/models"
	"github.com/clinicware/clinic-scheduler/internal/timezone"
)

// ListDaySchedule builds the day read model the grid consumes: every
// schedulable professional with that day's appointments, cached per
// clinic and date.
type ListDaySchedule struct {
	repo  domain.Repository
	cache DayCache
}

func NewListDaySchedule(
	repo domain.Repository,
	cache DayCache,
) *ListDaySchedule {
	return &ListDaySchedule{
		repo:  repo,
		cache: cache,
	}
}

func (uc *ListDaySchedule) Execute(
	ctx context.Context,
	clinicID uint,
	date time.Time,
) ([]dto.ProfessionalAppointmentsDTO, error) {

	day := timezone.DayStart(date)

	if cached, ok := uc.cache.GetDay(ctx, clinicID, day); ok {
		return cached, nil
	}

	professionals, err := uc.repo.ListProfessionals(ctx, clinicID)
	if err != nil {
		return nil, err
	}

	start := day
	end := start.Add(24 * time.Hour)

	appointments, err := uc.repo.ListAppointmentsForPeriod(ctx, clinicID, start, end)
	if err != nil {
		return nil, err
	}

	byProfessional := make(map[string][]dto.AppointmentDTO, len(professionals))
	for _, ap := range appointments {
		byProfessional[ap.ProfessionalID] = append(
			byProfessional[ap.ProfessionalID],
			toAppointmentDTO(ap),
		)
	}

	out := make([]dto.ProfessionalAppointmentsDTO, 0, len(professionals))
	for _, p := range professionals {
		out = append(out, dto.ProfessionalAppointmentsDTO{
			ProfessionalID:   p.ID,
			ProfessionalName: p.Name,
			Specialization:   p.Specialization,
			Appointments:     byProfessional[p.ID],
		})
	}

	uc.cache.SetDay(ctx, clinicID, day, out)

	return out, nil
}

func toAppointmentDTO(ap models.Appointment) dto.AppointmentDTO {
	return dto.AppointmentDTO{
		ID:               ap.ID,
		StartTime:        ap.StartTime,
		EndTime:          ap.EndTime,
		Status:           string(domain.Normalize(ap.Status)),
		Location:         ap.Location,
		Observation:      ap.Observation,
		PatientID:        ap.PatientID,
		PatientName:      ap.Patient.Name,
		ProfessionalID:   ap.ProfessionalID,
		ProfessionalName: ap.Professional.Name,
	}
}
