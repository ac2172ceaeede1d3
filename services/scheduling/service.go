// File: services/scheduling/service.go
package scheduling

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"clinicbook/models"
	"clinicbook/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// validateID rejects syntactically malformed identifiers before any store
// round trip, mirroring the 400-on-cast-error behavior of the REST surface.
func validateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return &InvalidIDError{ID: id}
	}
	return nil
}

func (s *DefaultSchedulingService) GetDoctors(ctx context.Context) ([]models.Doctor, error) {
	return s.DoctorRepo.GetAll(ctx)
}

func (s *DefaultSchedulingService) CreateDoctor(ctx context.Context, doctor *models.Doctor) (*models.Doctor, error) {
	if doctor.Name == "" {
		return nil, NewValidationError("doctor name is required")
	}
	if !doctor.WorkingHours.Valid() {
		return nil, NewValidationError("working hours must be HH:MM 24-hour times")
	}
	if err := s.DoctorRepo.Create(ctx, doctor); err != nil {
		return nil, fmt.Errorf("failed to create doctor: %w", err)
	}
	return doctor, nil
}

// DeleteDoctor removes the doctor and all appointments referencing it, so no
// orphaned appointments are left behind.
func (s *DefaultSchedulingService) DeleteDoctor(ctx context.Context, id string) error {
	if err := validateID(id); err != nil {
		return err
	}
	if err := s.DoctorRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrDoctorNotFound
		}
		return fmt.Errorf("failed to delete doctor: %w", err)
	}
	if err := s.AppointmentRepo.DeleteByDoctorID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete doctor appointments: %w", err)
	}
	s.invalidateDoctorSlots(ctx, id)
	return nil
}

func (s *DefaultSchedulingService) GetDoctorSlots(ctx context.Context, doctorID string, date time.Time) ([]string, error) {
	if err := validateID(doctorID); err != nil {
		return nil, err
	}

	// The doctor lookup runs before the cache so a deleted doctor never gets
	// a cached 200 while its keys age out.
	doctor, err := s.DoctorRepo.GetByID(ctx, doctorID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrDoctorNotFound
		}
		return nil, fmt.Errorf("failed to fetch doctor: %w", err)
	}

	if cached, ok := s.cachedSlots(ctx, doctorID, date); ok {
		return cached, nil
	}

	appointments, err := s.AppointmentRepo.GetByDoctorAndDay(ctx, doctorID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch day appointments: %w", err)
	}

	slots, err := GenerateSlots(doctor, date, appointments)
	if err != nil {
		return nil, err
	}
	s.storeSlots(ctx, doctorID, date, slots)
	return slots, nil
}

func (s *DefaultSchedulingService) GetDoctorAppointments(ctx context.Context, doctorID string) (*models.DoctorAppointments, error) {
	if err := validateID(doctorID); err != nil {
		return nil, err
	}

	doctor, err := s.DoctorRepo.GetByID(ctx, doctorID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrDoctorNotFound
		}
		return nil, fmt.Errorf("failed to fetch doctor: %w", err)
	}

	appointments, err := s.AppointmentRepo.GetByDoctorID(ctx, doctorID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointments: %w", err)
	}
	if appointments == nil {
		appointments = []models.Appointment{}
	}

	patients := make(map[string]struct{}, len(appointments))
	for _, apt := range appointments {
		patients[apt.PatientName] = struct{}{}
	}

	return &models.DoctorAppointments{
		Doctor:       models.DoctorSummary{Name: doctor.Name, Image: doctor.Image},
		Appointments: appointments,
		PatientCount: len(patients),
	}, nil
}

func (s *DefaultSchedulingService) GetAppointments(ctx context.Context) ([]models.AppointmentWithDoctor, error) {
	appointments, err := s.AppointmentRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointments: %w", err)
	}

	doctors, err := s.DoctorRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch doctors: %w", err)
	}
	byID := make(map[string]*models.Doctor, len(doctors))
	for i := range doctors {
		byID[doctors[i].ID] = &doctors[i]
	}

	out := make([]models.AppointmentWithDoctor, 0, len(appointments))
	for _, apt := range appointments {
		out = append(out, models.AppointmentWithDoctor{
			Appointment: apt,
			Doctor:      byID[apt.DoctorID],
		})
	}
	return out, nil
}

func (s *DefaultSchedulingService) GetAppointment(ctx context.Context, id string) (*models.AppointmentWithDoctor, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	apt, err := s.AppointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("failed to fetch appointment: %w", err)
	}

	out := &models.AppointmentWithDoctor{Appointment: *apt}
	if doctor, err := s.DoctorRepo.GetByID(ctx, apt.DoctorID); err == nil {
		out.Doctor = doctor
	}
	return out, nil
}

// ---- slot cache ----

// slotCacheKey stamps the UTC calendar day so a booking sent with a zone
// offset invalidates the same key the slot query stored.
func slotCacheKey(doctorID string, date time.Time) string {
	return fmt.Sprintf("slots:%s:%s", doctorID, date.UTC().Format("2006-01-02"))
}

func (s *DefaultSchedulingService) cachedSlots(ctx context.Context, doctorID string, date time.Time) ([]string, bool) {
	if s.Cache == nil {
		return nil, false
	}
	data, err := s.Cache.Get(ctx, slotCacheKey(doctorID, date)).Result()
	if err != nil {
		return nil, false
	}
	var slots []string
	if err := json.Unmarshal([]byte(data), &slots); err != nil {
		return nil, false
	}
	return slots, true
}

func (s *DefaultSchedulingService) storeSlots(ctx context.Context, doctorID string, date time.Time, slots []string) {
	if s.Cache == nil || s.CacheTTL <= 0 {
		return
	}
	data, err := json.Marshal(slots)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, slotCacheKey(doctorID, date), data, s.CacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache slots", zap.String("doctorID", doctorID), zap.Error(err))
	}
}

// invalidateSlots drops the cached slot list for the doctor's day touched by
// an appointment write.
func (s *DefaultSchedulingService) invalidateSlots(ctx context.Context, doctorID string, date time.Time) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, slotCacheKey(doctorID, date)).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate slot cache", zap.String("doctorID", doctorID), zap.Error(err))
	}
}

// invalidateDoctorSlots drops every cached day for the doctor, used when the
// doctor is deleted along with all of its appointments.
func (s *DefaultSchedulingService) invalidateDoctorSlots(ctx context.Context, doctorID string) {
	if s.Cache == nil {
		return
	}
	keys, err := s.Cache.Keys(ctx, fmt.Sprintf("slots:%s:*", doctorID)).Result()
	if err != nil {
		utils.GetLogger().Warn("failed to list slot cache keys", zap.String("doctorID", doctorID), zap.Error(err))
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := s.Cache.Del(ctx, keys...).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate slot cache", zap.String("doctorID", doctorID), zap.Error(err))
	}
}
