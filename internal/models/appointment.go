package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClinicID uint   `json:"clinic_id"`
	Clinic   Clinic `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"clinic"`

	ProfessionalID string       `gorm:"size:36;index" json:"professional_id"`
	Professional   Professional `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"professional"`

	PatientID string  `gorm:"size:36;index" json:"patient_id"`
	Patient   Patient `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"patient"`

	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	Location string `gorm:"size:10;default:'clinic'" json:"location"`

	Status string `gorm:"size:10;default:'opened'" json:"status"`

	Observation string `gorm:"size:255" json:"observation"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
