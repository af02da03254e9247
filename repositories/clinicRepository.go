package repositories

import (
	"Polyclinic/models"
)

// ClinicRepository is a read-only snapshot of patients, doctors and
// appointments. Back-references are indexes built once from the appointment
// collection; nothing is mutated after NewClinicRepository returns.
type ClinicRepository struct {
	patients     []models.Patient
	doctors      []models.Doctor
	appointments []models.Appointment

	patientIndex map[uint]int
	doctorIndex  map[uint]int

	byPatient map[uint][]int
	byDoctor  map[uint][]int
}

func NewClinicRepository(patients []models.Patient, doctors []models.Doctor, appointments []models.Appointment) *ClinicRepository {
	r := &ClinicRepository{
		patients:     append([]models.Patient(nil), patients...),
		doctors:      append([]models.Doctor(nil), doctors...),
		appointments: append([]models.Appointment(nil), appointments...),
		patientIndex: make(map[uint]int, len(patients)),
		doctorIndex:  make(map[uint]int, len(doctors)),
		byPatient:    make(map[uint][]int),
		byDoctor:     make(map[uint][]int),
	}

	// First occurrence wins on duplicate ids.
	for i, p := range r.patients {
		if _, exists := r.patientIndex[p.ID]; !exists {
			r.patientIndex[p.ID] = i
		}
	}
	for i, d := range r.doctors {
		if _, exists := r.doctorIndex[d.ID]; !exists {
			r.doctorIndex[d.ID] = i
		}
	}
	for i, a := range r.appointments {
		r.byPatient[a.PatientID] = append(r.byPatient[a.PatientID], i)
		r.byDoctor[a.DoctorID] = append(r.byDoctor[a.DoctorID], i)
	}

	return r
}

// Patients returns a copy of the patient collection in source order.
func (r *ClinicRepository) Patients() []models.Patient {
	return append([]models.Patient(nil), r.patients...)
}

// Doctors returns a copy of the doctor collection in source order.
func (r *ClinicRepository) Doctors() []models.Doctor {
	return append([]models.Doctor(nil), r.doctors...)
}

// Appointments returns a copy of the appointment collection in source order.
func (r *ClinicRepository) Appointments() []models.Appointment {
	return append([]models.Appointment(nil), r.appointments...)
}

func (r *ClinicRepository) PatientByID(id uint) (models.Patient, bool) {
	i, ok := r.patientIndex[id]
	if !ok {
		return models.Patient{}, false
	}
	return r.patients[i], true
}

func (r *ClinicRepository) DoctorByID(id uint) (models.Doctor, bool) {
	i, ok := r.doctorIndex[id]
	if !ok {
		return models.Doctor{}, false
	}
	return r.doctors[i], true
}

// AppointmentsForPatient returns the patient's appointments in source order.
func (r *ClinicRepository) AppointmentsForPatient(patientID uint) []models.Appointment {
	return r.collect(r.byPatient[patientID])
}

// AppointmentsForDoctor returns the doctor's appointments in source order.
func (r *ClinicRepository) AppointmentsForDoctor(doctorID uint) []models.Appointment {
	return r.collect(r.byDoctor[doctorID])
}

func (r *ClinicRepository) collect(positions []int) []models.Appointment {
	appointments := make([]models.Appointment, 0, len(positions))
	for _, i := range positions {
		appointments = append(appointments, r.appointments[i])
	}
	return appointments
}
