package models

import "time"

type Patient struct {
	ID       string `gorm:"primaryKey;size:36" json:"id"`
	ClinicID uint   `json:"clinic_id"`

	Name       string `gorm:"size:100;not null" json:"name"`
	MotherName string `gorm:"size:100" json:"mother_name"`
	FatherName string `gorm:"size:100" json:"father_name"`
	Diagnosis  string `gorm:"size:255" json:"diagnosis"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
