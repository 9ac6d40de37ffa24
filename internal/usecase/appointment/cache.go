package appointment

import (
	"context"
	"time"

	"github.com/clinicware/clinic-scheduler/internal/dto"
)

// DayCache is the read-model cache every mutation must invalidate so the
// next day fetch sees server truth.
type DayCache interface {
	GetDay(ctx context.Context, clinicID uint, date time.Time) ([]dto.ProfessionalAppointmentsDTO, bool)
	SetDay(ctx context.Context, clinicID uint, date time.Time, day []dto.ProfessionalAppointmentsDTO)
	InvalidateDay(ctx context.Context, clinicID uint, date time.Time)
}
