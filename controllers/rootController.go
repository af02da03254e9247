package controllers

import (
	"Polyclinic/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

// rootHandler lists the available reports.
func rootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "polyclinic",
		"reports": services.ReportNames,
	})
}

// SetupRootRoute registers the public root route.
func SetupRootRoute(router *gin.Engine) {
	router.GET("/", rootHandler)
}
