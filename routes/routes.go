package routes

import (
	"net/http"
	"time"

	"clinicbook/handlers"
	"clinicbook/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterDoctorRoutes registers doctor directory and slot endpoints.
func RegisterDoctorRoutes(r *gin.Engine, dh *handlers.DoctorHandler) {
	api := r.Group("/doctors")
	{
		api.GET("", dh.ListDoctorsHandler)
		api.POST("", dh.CreateDoctorHandler)
		api.DELETE("/:id", dh.DeleteDoctorHandler)
		api.GET("/:id/slots", dh.GetDoctorSlotsHandler)
		api.GET("/:id/appointments", dh.GetDoctorAppointmentsHandler)
	}
}

// RegisterAppointmentRoutes registers appointment CRUD endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, ah *handlers.AppointmentHandler) {
	api := r.Group("/appointments")
	{
		api.GET("", ah.ListAppointmentsHandler)
		api.GET("/:id", ah.GetAppointmentHandler)
		api.POST("", ah.CreateAppointmentHandler)
		api.PUT("/:id", ah.UpdateAppointmentHandler)
		api.DELETE("/:id", ah.DeleteAppointmentHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterRoutes wires CORS and all route groups onto the router.
func RegisterRoutes(r *gin.Engine, dh *handlers.DoctorHandler, ah *handlers.AppointmentHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterDoctorRoutes(r, dh)
	RegisterAppointmentRoutes(r, ah)
	RegisterHealthRoute(r)
}
