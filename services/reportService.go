package services

import (
	"Polyclinic/models"
	"Polyclinic/repositories"
	"fmt"
	"sort"
	"time"
)

const (
	DefaultExperienceYears = 10
	TopDiagnosesLimit      = 5
	AgeThreshold           = 30
	MinDistinctDoctors     = 2
)

// Report names shared by the HTTP API and the CLI.
const (
	ReportExperiencedDoctors    = "experienced-doctors"
	ReportPatientsByDoctor      = "patients-by-doctor"
	ReportHealthyPatients       = "healthy-patients"
	ReportAppointmentsLastMonth = "appointments-last-month"
	ReportTopDiagnoses          = "top-diagnoses"
	ReportMultiDoctorPatients   = "patients-over-30-multiple-doctors"
)

// ReportNames lists every report in a fixed order.
var ReportNames = []string{
	ReportExperiencedDoctors,
	ReportPatientsByDoctor,
	ReportHealthyPatients,
	ReportAppointmentsLastMonth,
	ReportTopDiagnoses,
	ReportMultiDoctorPatients,
}

// ReportService answers the clinic reporting questions. All methods are pure
// reads over the repository snapshot.
type ReportService struct {
	repository *repositories.ClinicRepository
	now        func() time.Time
}

// NewReportService builds a ReportService. A nil clock means time.Now.
func NewReportService(repository *repositories.ClinicRepository, now func() time.Time) *ReportService {
	if now == nil {
		now = time.Now
	}
	return &ReportService{repository: repository, now: now}
}

// DoctorsWithExperienceAtLeast lists doctors with at least the given years of
// experience, in source order.
func (s *ReportService) DoctorsWithExperienceAtLeast(years int) []string {
	lines := []string{}
	for _, d := range s.repository.Doctors() {
		if d.Experience >= years {
			lines = append(lines, fmt.Sprintf("Doctor: %s, Specialization: %s, Experience: %d years",
				d.FullName, d.Specialization, d.Experience))
		}
	}
	return lines
}

// PatientsByDoctor lists distinct patients seen by the doctor, by full name.
func (s *ReportService) PatientsByDoctor(doctorID uint) []string {
	var patients []models.Patient
	seen := make(map[uint]bool)
	for _, a := range s.repository.AppointmentsForDoctor(doctorID) {
		if seen[a.PatientID] {
			continue
		}
		p, ok := s.repository.PatientByID(a.PatientID)
		if !ok {
			continue
		}
		seen[a.PatientID] = true
		patients = append(patients, p)
	}

	sort.SliceStable(patients, func(i, j int) bool {
		return patients[i].FullName < patients[j].FullName
	})

	lines := make([]string, 0, len(patients))
	for _, p := range patients {
		lines = append(lines, patientSummary(p))
	}
	return lines
}

// HealthyPatients lists, in source order, patients with at least one
// appointment closed as healthy.
func (s *ReportService) HealthyPatients() []string {
	lines := []string{}
	for _, p := range s.repository.Patients() {
		for _, a := range s.repository.AppointmentsForPatient(p.ID) {
			if a.IsHealthy() {
				lines = append(lines, patientSummary(p))
				break
			}
		}
	}
	return lines
}

// AppointmentCountsByDoctorLastMonth counts, per doctor, appointments dated
// no earlier than one calendar month before now. Doctors without such
// appointments are omitted.
func (s *ReportService) AppointmentCountsByDoctorLastMonth() []string {
	since := s.now().AddDate(0, -1, 0)

	lines := []string{}
	for _, d := range s.repository.Doctors() {
		count := 0
		for _, a := range s.repository.AppointmentsForDoctor(d.ID) {
			if !a.DateTime.Before(since) {
				count++
			}
		}
		if count > 0 {
			lines = append(lines, fmt.Sprintf("Doctor: %s, AppointmentCount: %d", d.FullName, count))
		}
	}
	return lines
}

// Top5Diagnoses returns the most frequent conclusions, most common first.
// Equal counts keep the order in which the conclusion first appeared.
func (s *ReportService) Top5Diagnoses() []string {
	counts := make(map[string]int)
	var order []string
	for _, a := range s.repository.Appointments() {
		if _, exists := counts[a.Conclusion]; !exists {
			order = append(order, a.Conclusion)
		}
		counts[a.Conclusion]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > TopDiagnosesLimit {
		order = order[:TopDiagnosesLimit]
	}
	return append([]string{}, order...)
}

// PatientsOver30WithMultipleDoctors lists patients older than 30 who have
// appointments with at least two distinct doctors, by birth year ascending.
func (s *ReportService) PatientsOver30WithMultipleDoctors() []string {
	currentYear := s.now().Year()

	var patients []models.Patient
	for _, p := range s.repository.Patients() {
		if currentYear-p.BirthYear <= AgeThreshold {
			continue
		}
		doctors := make(map[uint]bool)
		for _, a := range s.repository.AppointmentsForPatient(p.ID) {
			if _, ok := s.repository.DoctorByID(a.DoctorID); ok {
				doctors[a.DoctorID] = true
			}
		}
		if len(doctors) >= MinDistinctDoctors {
			patients = append(patients, p)
		}
	}

	sort.SliceStable(patients, func(i, j int) bool {
		return patients[i].BirthYear < patients[j].BirthYear
	})

	lines := make([]string, 0, len(patients))
	for _, p := range patients {
		lines = append(lines, fmt.Sprintf("Patient: %s, BirthYear: %d, Address: %s", p.FullName, p.BirthYear, p.Address))
	}
	return lines
}

func patientSummary(p models.Patient) string {
	return fmt.Sprintf("Patient: %s, Passport: %s, BirthYear: %d", p.FullName, p.PassportNumber, p.BirthYear)
}
