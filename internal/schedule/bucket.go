package schedule

import (
	"time"

	"github.com/clinicware/clinic-scheduler/internal/domain/appointment"
)

// Appointment is the engine's read model of one scheduled visit,
// already normalized at the ingestion boundary.
type Appointment struct {
	ID               uint
	Start            time.Time
	End              time.Time
	ProfessionalID   string
	ProfessionalName string
	PatientID        string
	PatientName      string
	Location         string
	Observation      string
	Status           appointment.Status
}

// Card is an appointment with its computed placement.
type Card struct {
	Appointment
	Placement
}

// Bucket is one grid row of a professional's column: the slot plus every
// appointment starting in that hour, in source-list order. Overlapping
// appointments coexist; each card is placed independently.
type Bucket struct {
	Slot  Slot
	Cards []Card
}

// Column is one professional's day: exactly one bucket per grid slot,
// empty buckets included so every column renders the same row count.
type Column struct {
	ProfessionalID   string
	ProfessionalName string
	Buckets          []Bucket
}

// Bucketize distributes appointments over the fixed grid. Appointments
// whose start hour falls outside the operating window match no slot and
// are left off the grid.
func Bucketize(appts []Appointment) []Bucket {
	buckets := make([]Bucket, 0, len(Slots()))

	for _, slot := range Slots() {
		bucket := Bucket{Slot: slot}

		for _, ap := range appts {
			matched, ok := SlotOf(ap.Start)
			if !ok || matched != slot {
				continue
			}
			bucket.Cards = append(bucket.Cards, Card{
				Appointment: ap,
				Placement:   PlacementFor(ap.Start, ap.End),
			})
		}

		buckets = append(buckets, bucket)
	}

	return buckets
}

// BuildColumn runs the full bucketize-and-place pipeline for one
// professional.
func BuildColumn(professionalID, professionalName string, appts []Appointment) Column {
	return Column{
		ProfessionalID:   professionalID,
		ProfessionalName: professionalName,
		Buckets:          Bucketize(appts),
	}
}
