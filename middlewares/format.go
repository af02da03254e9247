package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// RespondJSON writes a JSON response to the client.
func RespondJSON(c *gin.Context, data interface{}, status int) {
	c.JSON(status, data)
}

// HttpError logs an error and writes an HTTP error response to the client.
func HttpError(c *gin.Context, message string, status int, err error) {
	log.Warn().
		Err(err).
		Int("status", status).
		Str("request_id", c.GetString(RequestIDKey)).
		Msg(message)
	c.JSON(status, gin.H{"error": message})
}
