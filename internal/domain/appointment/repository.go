package appointment

import (
	"context"
	"time"

	"github.com/clinicware/clinic-scheduler/internal/models"
)

type Repository interface {
	// -------- Clinic --------
	GetClinicByID(
		ctx context.Context,
		id uint,
	) (*models.Clinic, error)

	// -------- Patient / Professional --------
	GetPatient(
		ctx context.Context,
		clinicID uint,
		id string,
	) (*models.Patient, error)

	GetProfessional(
		ctx context.Context,
		clinicID uint,
		id string,
	) (*models.Professional, error)

	// ListPatients filters by a case-insensitive name fragment when
	// query is non-empty.
	ListPatients(
		ctx context.Context,
		clinicID uint,
		query string,
	) ([]models.Patient, error)

	ListProfessionals(
		ctx context.Context,
		clinicID uint,
	) ([]models.Professional, error)

	// -------- Appointment --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointment(
		ctx context.Context,
		clinicID uint,
		appointmentID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		clinicID uint,
		appointmentID uint,
	) error

	ListAppointmentsForPeriod(
		ctx context.Context,
		clinicID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)
}
