// File: handlers/respond.go
package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"clinicbook/services/scheduling"
	"clinicbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondServiceError translates a scheduling service error into an HTTP
// status and message. resource names the entity the handler was addressing
// (used for malformed-ID messages).
func respondServiceError(c *gin.Context, err error, resource string) {
	var (
		validationErr *scheduling.ValidationError
		conflictErr   *scheduling.ConflictError
		invalidIDErr  *scheduling.InvalidIDError
	)

	switch {
	case errors.Is(err, scheduling.ErrDoctorNotFound):
		utils.JSONError(c, http.StatusNotFound, "Doctor not found", "")
	case errors.Is(err, scheduling.ErrAppointmentNotFound):
		utils.JSONError(c, http.StatusNotFound, "Appointment not found", "")
	case errors.As(err, &conflictErr):
		utils.JSONError(c, http.StatusBadRequest, conflictErr.Message, "")
	case errors.As(err, &validationErr):
		utils.JSONError(c, http.StatusBadRequest, validationErr.Message, "")
	case errors.As(err, &invalidIDErr):
		utils.JSONError(c, http.StatusBadRequest, fmt.Sprintf("Invalid %s ID", resource), "")
	default:
		utils.GetLogger().Error("Server error", zap.String("resource", resource), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Server error", err.Error())
	}
}
