package handlers

import (
	"Polyclinic/middlewares"
	"Polyclinic/services"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ReportResponse is the JSON body of every report endpoint.
type ReportResponse struct {
	Report string   `json:"report"`
	Lines  []string `json:"lines"`
}

type ReportHandler struct {
	service *services.ReportService
	cache   *services.ReportCache
}

func NewReportHandler(service *services.ReportService, cache *services.ReportCache) *ReportHandler {
	return &ReportHandler{service: service, cache: cache}
}

func (h *ReportHandler) GetExperiencedDoctors(c *gin.Context) {
	years := services.DefaultExperienceYears
	if raw := c.Query("years"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			middlewares.HttpError(c, "Invalid years value", http.StatusBadRequest, err)
			return
		}
		years = parsed
	}

	lines := h.cache.Fetch(c, services.ReportCacheKey(services.ReportExperiencedDoctors, years), func() []string {
		return h.service.DoctorsWithExperienceAtLeast(years)
	})
	h.respond(c, services.ReportExperiencedDoctors, lines)
}

func (h *ReportHandler) GetPatientsByDoctor(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("doctor_id"), 10, 32)
	if err != nil {
		middlewares.HttpError(c, "Invalid doctor ID", http.StatusBadRequest, err)
		return
	}
	doctorID := uint(id)

	lines := h.cache.Fetch(c, services.ReportCacheKey(services.ReportPatientsByDoctor, doctorID), func() []string {
		return h.service.PatientsByDoctor(doctorID)
	})
	h.respond(c, services.ReportPatientsByDoctor, lines)
}

func (h *ReportHandler) GetHealthyPatients(c *gin.Context) {
	lines := h.cache.Fetch(c, services.ReportCacheKey(services.ReportHealthyPatients), h.service.HealthyPatients)
	h.respond(c, services.ReportHealthyPatients, lines)
}

func (h *ReportHandler) GetAppointmentsLastMonth(c *gin.Context) {
	lines := h.cache.Fetch(c, services.ReportCacheKey(services.ReportAppointmentsLastMonth), h.service.AppointmentCountsByDoctorLastMonth)
	h.respond(c, services.ReportAppointmentsLastMonth, lines)
}

func (h *ReportHandler) GetTopDiagnoses(c *gin.Context) {
	lines := h.cache.Fetch(c, services.ReportCacheKey(services.ReportTopDiagnoses), h.service.Top5Diagnoses)
	h.respond(c, services.ReportTopDiagnoses, lines)
}

func (h *ReportHandler) GetMultiDoctorPatients(c *gin.Context) {
	lines := h.cache.Fetch(c, services.ReportCacheKey(services.ReportMultiDoctorPatients), h.service.PatientsOver30WithMultipleDoctors)
	h.respond(c, services.ReportMultiDoctorPatients, lines)
}

// FlushReportCache drops every cached report so the next request rebuilds it.
func (h *ReportHandler) FlushReportCache(c *gin.Context) {
	if err := h.cache.Flush(c); err != nil {
		middlewares.HttpError(c, "Failed to flush report cache", http.StatusInternalServerError, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// FlushReport drops the cached copies of a single report, named as in the
// root listing.
func (h *ReportHandler) FlushReport(c *gin.Context) {
	name := c.Param("name")
	if !isReportName(name) {
		middlewares.HttpError(c, "Unknown report", http.StatusNotFound, nil)
		return
	}
	if err := h.cache.FlushReport(c, name); err != nil {
		middlewares.HttpError(c, "Failed to flush report cache", http.StatusInternalServerError, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func isReportName(name string) bool {
	for _, n := range services.ReportNames {
		if n == name {
			return true
		}
	}
	return false
}

func (h *ReportHandler) respond(c *gin.Context, name string, lines []string) {
	if lines == nil {
		lines = []string{}
	}
	middlewares.RespondJSON(c, ReportResponse{Report: name, Lines: lines}, http.StatusOK)
}
