// File: handlers/doctor.go
package handlers

import (
	"net/http"
	"time"

	"clinicbook/models"
	"clinicbook/services/scheduling"

	"github.com/gin-gonic/gin"
)

// DoctorHandler serves the doctor directory and slot endpoints.
type DoctorHandler struct {
	Service scheduling.SchedulingService
}

// NewDoctorHandler constructs a DoctorHandler.
func NewDoctorHandler(svc scheduling.SchedulingService) *DoctorHandler {
	return &DoctorHandler{Service: svc}
}

// ListDoctorsHandler handles GET /doctors.
func (h *DoctorHandler) ListDoctorsHandler(c *gin.Context) {
	doctors, err := h.Service.GetDoctors(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "doctor")
		return
	}
	if doctors == nil {
		doctors = []models.Doctor{}
	}
	c.JSON(http.StatusOK, doctors)
}

// CreateDoctorHandler handles POST /doctors.
func (h *DoctorHandler) CreateDoctorHandler(c *gin.Context) {
	var doctor models.Doctor
	if err := c.ShouldBindJSON(&doctor); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input", "error": err.Error()})
		return
	}

	created, err := h.Service.CreateDoctor(c.Request.Context(), &doctor)
	if err != nil {
		respondServiceError(c, err, "doctor")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// DeleteDoctorHandler handles DELETE /doctors/:id.
func (h *DoctorHandler) DeleteDoctorHandler(c *gin.Context) {
	if err := h.Service.DeleteDoctor(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err, "doctor")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Doctor deleted"})
}

// GetDoctorSlotsHandler handles GET /doctors/:id/slots?date=YYYY-MM-DD.
func (h *DoctorHandler) GetDoctorSlotsHandler(c *gin.Context) {
	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid date, expected YYYY-MM-DD"})
		return
	}

	slots, err := h.Service.GetDoctorSlots(c.Request.Context(), c.Param("id"), date)
	if err != nil {
		respondServiceError(c, err, "doctor")
		return
	}
	c.JSON(http.StatusOK, slots)
}

// GetDoctorAppointmentsHandler handles GET /doctors/:id/appointments.
func (h *DoctorHandler) GetDoctorAppointmentsHandler(c *gin.Context) {
	out, err := h.Service.GetDoctorAppointments(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "doctor")
		return
	}
	c.JSON(http.StatusOK, out)
}
