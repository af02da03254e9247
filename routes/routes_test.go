package routes

import (
	"Polyclinic/cache"
	"Polyclinic/config"
	"Polyclinic/database"
	"Polyclinic/handlers"
	"Polyclinic/repositories"
	"Polyclinic/services"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func newTestHandler() http.Handler {
	gin.SetMode(gin.TestMode)

	cfg := &config.AppConfig{
		Env:            "test",
		BearerToken:    "token",
		RateLimitRPS:   100,
		RateLimitBurst: 100,
		CORSOrigins:    []string{"http://localhost:3000"},
	}
	service := services.NewReportService(repositories.NewClinicRepository(database.SeedClinic()), nil)
	reportHandler := handlers.NewReportHandler(service, services.NewReportCache(cache.NewCache(nil), 0, 0, zerolog.Nop()))
	return SetupRoutes(cfg, reportHandler, zerolog.Nop())
}

func TestSetupRoutes_RootIsPublic(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), services.ReportTopDiagnoses)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestSetupRoutes_ReportsRequireToken(t *testing.T) {
	h := newTestHandler()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/reports/diagnoses/top", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/reports/diagnoses/top", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"report":"top-diagnoses","lines":["healthy","in treatment"]}`, rec.Body.String())
}

func TestSetupRoutes_PreflightSkipsAuth(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/reports/patients/healthy", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	newTestHandler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestSetupRoutes_FlushSingleReport(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodDelete, "/reports/cache/"+services.ReportHealthyPatients, nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/reports/cache/"+services.ReportHealthyPatients, nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
