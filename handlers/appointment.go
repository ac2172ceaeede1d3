// File: handlers/appointment.go
package handlers

import (
	"net/http"

	"clinicbook/models"
	"clinicbook/services/scheduling"

	"github.com/gin-gonic/gin"
)

// AppointmentHandler serves the appointment CRUD endpoints.
type AppointmentHandler struct {
	Service scheduling.SchedulingService
}

// NewAppointmentHandler constructs an AppointmentHandler.
func NewAppointmentHandler(svc scheduling.SchedulingService) *AppointmentHandler {
	return &AppointmentHandler{Service: svc}
}

// ListAppointmentsHandler handles GET /appointments.
func (h *AppointmentHandler) ListAppointmentsHandler(c *gin.Context) {
	appts, err := h.Service.GetAppointments(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "appointment")
		return
	}
	if appts == nil {
		appts = []models.AppointmentWithDoctor{}
	}
	c.JSON(http.StatusOK, appts)
}

// GetAppointmentHandler handles GET /appointments/:id.
func (h *AppointmentHandler) GetAppointmentHandler(c *gin.Context) {
	appt, err := h.Service.GetAppointment(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "appointment")
		return
	}
	c.JSON(http.StatusOK, appt)
}

// CreateAppointmentHandler handles POST /appointments.
func (h *AppointmentHandler) CreateAppointmentHandler(c *gin.Context) {
	var input scheduling.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input", "error": err.Error()})
		return
	}

	appt, err := h.Service.BookAppointment(c.Request.Context(), input)
	if err != nil {
		respondServiceError(c, err, "appointment")
		return
	}
	c.JSON(http.StatusCreated, appt)
}

// UpdateAppointmentHandler handles PUT /appointments/:id.
func (h *AppointmentHandler) UpdateAppointmentHandler(c *gin.Context) {
	var updates scheduling.UpdateInput
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input", "error": err.Error()})
		return
	}

	appt, err := h.Service.UpdateAppointment(c.Request.Context(), c.Param("id"), updates)
	if err != nil {
		respondServiceError(c, err, "appointment")
		return
	}
	c.JSON(http.StatusOK, appt)
}

// DeleteAppointmentHandler handles DELETE /appointments/:id.
func (h *AppointmentHandler) DeleteAppointmentHandler(c *gin.Context) {
	if err := h.Service.CancelAppointment(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err, "appointment")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Appointment deleted"})
}
