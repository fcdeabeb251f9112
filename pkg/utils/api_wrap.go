package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"pinpoint/internal/models/response_models"
)

// RespondDocument renders a JSON:API document with HTTP 200. Validation
// failures travel through here too: an errors array with status 200 is the
// admin console contract.
func RespondDocument(c *gin.Context, doc response_models.Document) {
	c.JSON(http.StatusOK, doc)
}

func RespondNoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func errorDocument(status int, title string) response_models.Document {
	return response_models.Document{Errors: []response_models.ErrorObject{{
		Title:  title,
		Status: http.StatusText(status),
	}}}
}

// HandleServiceError funnels service sentinel errors into JSON:API error
// documents with the matching status code.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrFirmNotFound):
		c.JSON(http.StatusNotFound, response_models.NotFound("Firm"))
	case errors.Is(err, ErrUserNotFound):
		c.JSON(http.StatusNotFound, response_models.NotFound("User"))
	case errors.Is(err, ErrTicketNotFound):
		c.JSON(http.StatusNotFound, response_models.NotFound("Support ticket"))
	case errors.Is(err, ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, errorDocument(http.StatusUnauthorized, "Invalid credentials"))
	case errors.Is(err, ErrInvalidPage):
		c.JSON(http.StatusBadRequest, errorDocument(http.StatusBadRequest, "Page must be greater than 0"))
	case errors.Is(err, ErrInvalidPageSize):
		c.JSON(http.StatusBadRequest, errorDocument(http.StatusBadRequest, "Page size must be between 1 and 100"))
	case errors.Is(err, ErrCascadeFailed):
		log.Error().Err(err).Msg("cascade discard rolled back")
		c.JSON(http.StatusInternalServerError, errorDocument(http.StatusInternalServerError, "Internal server error"))
	default:
		log.Error().Err(err).Msg("unhandled service error")
		c.JSON(http.StatusInternalServerError, errorDocument(http.StatusInternalServerError, "Internal server error"))
	}
}
