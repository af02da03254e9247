package models

import (
	"time"
)

// Appointment status markers. The field itself is free text.
const (
	StatusHealthy     = "healthy"
	StatusInTreatment = "in treatment"
)

// Patient model
type Patient struct {
	ID             uint   `json:"id"`
	PassportNumber string `json:"passport_number"`
	FullName       string `json:"full_name"`
	BirthYear      int    `json:"birth_year"`
	Address        string `json:"address"`
}

// Doctor model
type Doctor struct {
	ID             uint   `json:"id"`
	PassportNumber string `json:"passport_number"`
	FullName       string `json:"full_name"`
	BirthYear      int    `json:"birth_year"`
	Specialization string `json:"specialization"`
	Experience     int    `json:"experience"`
}

// Appointment model
type Appointment struct {
	ID         uint      `json:"id"`
	PatientID  uint      `json:"patient_id"`
	DoctorID   uint      `json:"doctor_id"`
	DateTime   time.Time `json:"date_time"`
	Conclusion string    `json:"conclusion"`
	Status     string    `json:"status"`
}

// IsHealthy reports whether the appointment closed with the healthy marker.
func (a Appointment) IsHealthy() bool {
	return a.Status == StatusHealthy
}
