// File: database/seed/seed.go
package seed

import (
	"context"
	"fmt"

	doctorRepo "clinicbook/database/repository/doctor"
	"clinicbook/models"
	"clinicbook/utils"

	"go.uber.org/zap"
)

var seedDoctors = []models.Doctor{
	{
		Name:           "Dr. Priya Sharma",
		WorkingHours:   models.WorkingHours{Start: "09:00", End: "17:00"},
		Specialization: "Prenatal Care",
		Image:          "https://i.pinimg.com/736x/c5/a3/90/c5a3904b38eb241dd03dd30889599dc4.jpg",
	},
	{
		Name:           "Dr. Arjun Patel",
		WorkingHours:   models.WorkingHours{Start: "08:30", End: "16:30"},
		Specialization: "Ultrasound",
		Image:          "https://thumbnails.yayimages.com/1600/1/7f7/17f724e.jpg",
	},
	{
		Name:           "Dr. Neha Gupta",
		WorkingHours:   models.WorkingHours{Start: "10:00", End: "18:00"},
		Specialization: "General Medicine",
		Image:          "https://as2.ftcdn.net/jpg/03/33/03/77/1000_F_333037736_4OEVPbfD4qGGugaOUMZt5LNxQmDao1Hi.jpg",
	},
	{
		Name:         "Dr. Vikram Singh",
		WorkingHours: models.WorkingHours{Start: "09:30", End: "17:30"},
		Image:        "https://as2.ftcdn.net/jpg/01/85/39/55/1000_F_185395570_wUzaCFaFP6Nm7NxWvk5xCMLAdh12nSCZ.jpg",
	},
	{
		Name:           "Dr. Anjali Rao",
		WorkingHours:   models.WorkingHours{Start: "08:00", End: "16:00"},
		Specialization: "Pediatrics",
		Image:          "https://as2.ftcdn.net/jpg/03/20/74/45/1000_F_320744517_TaGkT7aRlqqWdfGUuzRKDABtFEoN5CiO.jpg",
	},
	{
		Name:           "Dr. Rohan Mehra",
		WorkingHours:   models.WorkingHours{Start: "11:00", End: "19:00"},
		Specialization: "Obstetrics",
		Image:          "https://as2.ftcdn.net/jpg/02/45/92/11/1000_F_245921195_8btMKM5TqLVUcxVhcJobvIn9HtAOhSTg.jpg",
	},
	{
		Name:           "Dr. Kavita Desai",
		WorkingHours:   models.WorkingHours{Start: "09:00", End: "15:00"},
		Specialization: "Nutrition",
		Image:          "https://png.pngtree.com/png-clipart/20231003/original/pngtree-indian-doctor-portrait-female-photo-png-image_13243893.png",
	},
	{
		Name:           "Dr. Sanjay Kumar",
		WorkingHours:   models.WorkingHours{Start: "10:30", End: "18:30"},
		Specialization: "Family Medicine",
		Image:          "https://as2.ftcdn.net/jpg/02/69/98/99/1000_F_269989951_9Gf7PWaRtrpm2EochO3D5WVn22sFZbNZ.jpg",
	},
	{
		Name:           "Dr. Pooja Nair",
		WorkingHours:   models.WorkingHours{Start: "07:30", End: "15:30"},
		Specialization: "Prenatal Care",
		Image:          "https://png.pngtree.com/png-clipart/20231108/original/pngtree-indian-female-doctor-medicine-picture-image_13240976.png",
	},
	{
		Name:           "Dr. Rahul Joshi",
		WorkingHours:   models.WorkingHours{Start: "12:00", End: "20:00"},
		Specialization: "Ultrasound",
		Image:          "https://as1.ftcdn.net/jpg/01/67/15/98/1000_F_167159846_MCrwVzB7ysdZKr2vIiJkiCacEoNWagdn.jpg",
	},
}

// Doctors clears the doctors collection and inserts the seed set.
func Doctors(ctx context.Context, repo doctorRepo.DoctorRepository) error {
	logger := utils.GetLogger()

	if err := repo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("failed to clear existing doctors: %w", err)
	}
	logger.Info("Cleared existing doctors")

	if err := repo.CreateMany(ctx, seedDoctors); err != nil {
		return fmt.Errorf("failed to insert seed doctors: %w", err)
	}
	logger.Info("Doctors seeded successfully", zap.Int("count", len(seedDoctors)))
	return nil
}
