package models

import "time"

// Specializations the clinic staffs for. "secretary" exists as staff but
// never receives a schedule column of its own.
const (
	SpecializationPhisio    = "phisio"
	SpecializationSpeech    = "speech"
	SpecializationSecretary = "secretary"
)

type Professional struct {
	ID       string `gorm:"primaryKey;size:36" json:"id"`
	ClinicID uint   `json:"clinic_id"`

	Name           string `gorm:"size:100;not null" json:"name"`
	Specialization string `gorm:"size:20;not null" json:"specialization"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
