package database

import (
	"Polyclinic/models"
	"time"
)

// SeedClinic returns the fixed clinic fixture. Every call builds fresh slices.
func SeedClinic() ([]models.Patient, []models.Doctor, []models.Appointment) {
	patients := []models.Patient{
		{ID: 1, PassportNumber: "1234567890", FullName: "Ivanov Ivan Ivanovich", BirthYear: 1990, Address: "10 Lenina St"},
		{ID: 2, PassportNumber: "0987654321", FullName: "Petrov Petr Petrovich", BirthYear: 1985, Address: "20 Pushkina St"},
		{ID: 3, PassportNumber: "1122334455", FullName: "Sidorova Anna Sergeevna", BirthYear: 1995, Address: "30 Gagarina St"},
		{ID: 4, PassportNumber: "2233445566", FullName: "Kuznetsov Dmitry Aleksandrovich", BirthYear: 1980, Address: "40 Chekhova St"},
	}

	doctors := []models.Doctor{
		{ID: 1, PassportNumber: "3344556677", FullName: "Smirnova Olga Vladimirovna", BirthYear: 1975, Specialization: "Therapist", Experience: 20},
		{ID: 2, PassportNumber: "4455667788", FullName: "Vasiliev Aleksey Ivanovich", BirthYear: 1990, Specialization: "Surgeon", Experience: 8},
		{ID: 3, PassportNumber: "5566778899", FullName: "Kozlov Mikhail Sergeevich", BirthYear: 1985, Specialization: "Cardiologist", Experience: 15},
	}

	appointments := []models.Appointment{
		{ID: 1, PatientID: 1, DoctorID: 1, DateTime: seedTime(15, 10), Conclusion: models.StatusHealthy, Status: models.StatusHealthy},
		{ID: 2, PatientID: 2, DoctorID: 1, DateTime: seedTime(16, 11), Conclusion: models.StatusInTreatment, Status: models.StatusInTreatment},
		{ID: 3, PatientID: 3, DoctorID: 2, DateTime: seedTime(17, 12), Conclusion: models.StatusHealthy, Status: models.StatusHealthy},
		{ID: 4, PatientID: 4, DoctorID: 1, DateTime: seedTime(18, 13), Conclusion: models.StatusInTreatment, Status: models.StatusInTreatment},
	}

	return patients, doctors, appointments
}

// seedTime returns an October 2023 timestamp on the given day and hour.
func seedTime(day, hour int) time.Time {
	return time.Date(2023, time.October, day, hour, 0, 0, 0, time.UTC)
}
