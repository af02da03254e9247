package main

import (
	"Polyclinic/services"
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeReport(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"report"}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestReportCommand_PatientsByDoctor(t *testing.T) {
	out, err := executeReport(t, services.ReportPatientsByDoctor, "--doctor-id", "1")
	require.NoError(t, err)

	assert.Equal(t,
		"Patient: Ivanov Ivan Ivanovich, Passport: 1234567890, BirthYear: 1990\n"+
			"Patient: Kuznetsov Dmitry Aleksandrovich, Passport: 2233445566, BirthYear: 1980\n"+
			"Patient: Petrov Petr Petrovich, Passport: 0987654321, BirthYear: 1985\n",
		out)
}

func TestReportCommand_ExperiencedDoctorsYearsFlag(t *testing.T) {
	out, err := executeReport(t, services.ReportExperiencedDoctors, "--years", "16")
	require.NoError(t, err)

	assert.Equal(t, "Doctor: Smirnova Olga Vladimirovna, Specialization: Therapist, Experience: 20 years\n", out)
}

func TestReportCommand_UnknownReport(t *testing.T) {
	_, err := executeReport(t, "no-such-report")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown report")
}

func TestRunReport_AllNames(t *testing.T) {
	service := newReportService(func() time.Time {
		return time.Date(2023, time.November, 1, 0, 0, 0, 0, time.UTC)
	})

	for _, name := range services.ReportNames {
		_, err := runReport(service, name, 1, services.DefaultExperienceYears)
		assert.NoError(t, err, name)
	}

	lines, err := runReport(service, services.ReportAppointmentsLastMonth, 1, 0)
	require.NoError(t, err)
	assert.Len(t, lines, 2)
}
