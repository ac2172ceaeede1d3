// File: database/repository/doctor/interface.go
package doctorRepo

import (
	"context"

	"clinicbook/config"
	"clinicbook/database"
	"clinicbook/models"
	"clinicbook/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// DoctorRepository provides access to the doctors collection.
type DoctorRepository interface {
	Create(ctx context.Context, doctor *models.Doctor) error
	CreateMany(ctx context.Context, doctors []models.Doctor) error
	GetByID(ctx context.Context, id string) (*models.Doctor, error)
	GetAll(ctx context.Context) ([]models.Doctor, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}

type mongoDoctorRepo struct {
	coll *mongo.Collection
}

// NewMongoDoctorRepo constructs a new MongoDB DoctorRepository.
func NewMongoDoctorRepo() DoctorRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	repo := &mongoDoctorRepo{
		coll: db.Collection("doctors"),
	}
	if err := repo.EnsureIndexes(); err != nil {
		utils.GetLogger().Warn("doctor repo: failed to ensure indexes", zap.Error(err))
	}
	return repo
}
