// File: database/repository/appointment/interface.go
package appointmentRepo

import (
	"context"
	"time"

	"clinicbook/config"
	"clinicbook/database"
	"clinicbook/models"
	"clinicbook/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// AppointmentRepository provides access to the appointments collection.
type AppointmentRepository interface {
	Create(ctx context.Context, appt *models.Appointment) error
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	GetAll(ctx context.Context) ([]models.Appointment, error)
	GetByDoctorID(ctx context.Context, doctorID string) ([]models.Appointment, error)
	// GetByDoctorAndDay returns the doctor's appointments whose start timestamp
	// falls within the calendar day containing dayStart (inclusive bounds).
	GetByDoctorAndDay(ctx context.Context, doctorID string, dayStart time.Time) ([]models.Appointment, error)
	// GetByDoctorAndWindow returns the doctor's appointments whose start
	// timestamp falls in [from, to), optionally excluding one appointment ID.
	GetByDoctorAndWindow(ctx context.Context, doctorID string, from, to time.Time, excludeID string) ([]models.Appointment, error)
	Replace(ctx context.Context, appt *models.Appointment) error
	Delete(ctx context.Context, id string) error
	DeleteByDoctorID(ctx context.Context, doctorID string) error
}

type mongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs a new MongoDB AppointmentRepository.
func NewMongoAppointmentRepo() AppointmentRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	repo := &mongoAppointmentRepo{
		coll: db.Collection("appointments"),
	}
	if err := repo.EnsureIndexes(); err != nil {
		utils.GetLogger().Warn("appointment repo: failed to ensure indexes", zap.Error(err))
	}
	return repo
}
