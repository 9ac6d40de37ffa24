package dto

import "time"

type AppointmentDTO struct {
	ID               uint      `json:"id"`
	StartTime        time.Time `json:"start_time"`
	EndTime          time.Time `json:"end_time"`
	Status           string    `json:"status"`
	Location         string    `json:"location"`
	Observation      string    `json:"observation"`
	PatientID        string    `json:"patient_id"`
	PatientName      string    `json:"patient_name"`
	ProfessionalID   string    `json:"professional_id"`
	ProfessionalName string    `json:"professional_name"`
}

// ProfessionalAppointmentsDTO is one schedule column as the API serves
// it: the professional plus that day's appointments in fetch order.
type ProfessionalAppointmentsDTO struct {
	ProfessionalID   string           `json:"professional_id"`
	ProfessionalName string           `json:"professional_name"`
	Specialization   string           `json:"specialization"`
	Appointments     []AppointmentDTO `json:"appointments"`
}

type PersonDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
