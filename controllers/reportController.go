package controllers

import (
	"Polyclinic/handlers"

	"github.com/gin-gonic/gin"
)

// SetupReportRoutes registers the report endpoints and the cache flush
// endpoints on group.
func SetupReportRoutes(group *gin.RouterGroup, reportHandler *handlers.ReportHandler) {
	group.GET("/doctors/experienced", reportHandler.GetExperiencedDoctors)
	group.GET("/doctors/:doctor_id/patients", reportHandler.GetPatientsByDoctor)
	group.GET("/patients/healthy", reportHandler.GetHealthyPatients)
	group.GET("/patients/over-30-multiple-doctors", reportHandler.GetMultiDoctorPatients)
	group.GET("/appointments/last-month", reportHandler.GetAppointmentsLastMonth)
	group.GET("/diagnoses/top", reportHandler.GetTopDiagnoses)

	group.DELETE("/cache", reportHandler.FlushReportCache)
	group.DELETE("/cache/:name", reportHandler.FlushReport)
}
