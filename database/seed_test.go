package database

import (
	"Polyclinic/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSeedClinic_Shape(t *testing.T) {
	patients, doctors, appointments := SeedClinic()

	assert.Len(t, patients, 4)
	assert.Len(t, doctors, 3)
	assert.Len(t, appointments, 4)
}

func TestSeedClinic_ForeignKeysResolve(t *testing.T) {
	patients, doctors, appointments := SeedClinic()

	patientIDs := make(map[uint]bool)
	for _, p := range patients {
		assert.False(t, patientIDs[p.ID], "duplicate patient id %d", p.ID)
		patientIDs[p.ID] = true
	}
	doctorIDs := make(map[uint]bool)
	for _, d := range doctors {
		assert.False(t, doctorIDs[d.ID], "duplicate doctor id %d", d.ID)
		doctorIDs[d.ID] = true
	}

	for _, a := range appointments {
		assert.True(t, patientIDs[a.PatientID], "appointment %d has unknown patient %d", a.ID, a.PatientID)
		assert.True(t, doctorIDs[a.DoctorID], "appointment %d has unknown doctor %d", a.ID, a.DoctorID)
		assert.Equal(t, 2023, a.DateTime.Year())
		assert.Equal(t, time.October, a.DateTime.Month())
		assert.Contains(t, []string{models.StatusHealthy, models.StatusInTreatment}, a.Status)
	}
}

func TestSeedClinic_FreshSlices(t *testing.T) {
	patients, _, _ := SeedClinic()
	patients[0].FullName = "changed"

	again, _, _ := SeedClinic()
	assert.Equal(t, "Ivanov Ivan Ivanovich", again[0].FullName)
}
