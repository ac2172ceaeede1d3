// File: clinicbook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinicbook/config"
	"clinicbook/cron"
	"clinicbook/database"
	appointmentRepo "clinicbook/database/repository/appointment"
	doctorRepo "clinicbook/database/repository/doctor"
	"clinicbook/database/seed"
	"clinicbook/handlers"
	"clinicbook/middleware"
	"clinicbook/routes"
	"clinicbook/services/scheduling"
	"clinicbook/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	docRepo := doctorRepo.NewMongoDoctorRepo()
	apptRepo := appointmentRepo.NewMongoAppointmentRepo()

	if config.AppConfig.SeedDoctors {
		if err := seed.Doctors(context.Background(), docRepo); err != nil {
			logger.Sugar().Fatalf("main: failed to seed doctors: %v", err)
		}
	}

	// services.
	reminderScheduler := cron.NewAsynqReminderScheduler()
	schedulingService := &scheduling.DefaultSchedulingService{
		DoctorRepo:      docRepo,
		AppointmentRepo: apptRepo,
		Cache:           utils.GetCacheClient(),
		CacheTTL:        time.Duration(config.AppConfig.SlotCacheTTL) * time.Second,
		Reminders:       reminderScheduler,
	}

	doctorHandler := handlers.NewDoctorHandler(schedulingService)
	appointmentHandler := handlers.NewAppointmentHandler(schedulingService)

	// Register routes.
	routes.RegisterRoutes(router, doctorHandler, appointmentHandler)

	// Background workers and health monitoring.
	cron.InitReminderWorker()
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "5002"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}
	if err := reminderScheduler.Close(); err != nil {
		logger.Sugar().Warnf("main: failed to close reminder scheduler: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
