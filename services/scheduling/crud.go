// File: services/scheduling/crud.go
package scheduling

import (
	"context"
	"errors"
	"fmt"

	"clinicbook/models"
	"clinicbook/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// BookAppointment validates the input, re-checks for conflicts under the
// doctor's lock, and persists the appointment.
func (s *DefaultSchedulingService) BookAppointment(ctx context.Context, input BookingInput) (*models.Appointment, error) {
	if input.DoctorID == "" || input.Date.IsZero() || input.Duration <= 0 ||
		input.AppointmentType == "" || input.PatientName == "" {
		return nil, NewValidationError("All required fields must be provided")
	}
	if err := validateID(input.DoctorID); err != nil {
		return nil, err
	}

	if _, err := s.DoctorRepo.GetByID(ctx, input.DoctorID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrDoctorNotFound
		}
		return nil, fmt.Errorf("failed to fetch doctor: %w", err)
	}

	// Serialize check-then-persist per doctor so concurrent bookings cannot
	// both pass the conflict check.
	lock := s.locks.get(input.DoctorID)
	lock.Lock()
	defer lock.Unlock()

	conflict, err := s.HasConflict(ctx, input.DoctorID, input.Date, input.Duration, "")
	if err != nil {
		return nil, fmt.Errorf("conflict check failed: %w", err)
	}
	if conflict {
		return nil, NewConflictError()
	}

	appt := &models.Appointment{
		DoctorID:        input.DoctorID,
		Date:            input.Date,
		Duration:        input.Duration,
		AppointmentType: input.AppointmentType,
		PatientName:     input.PatientName,
		Notes:           input.Notes,
	}
	if err := s.AppointmentRepo.Create(ctx, appt); err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	s.invalidateSlots(ctx, appt.DoctorID, appt.Date)
	s.scheduleReminder(ctx, appt)
	return appt, nil
}

// UpdateAppointment applies a partial update. The conflict check runs only
// when the doctor, start, or duration actually changes, excluding the
// appointment itself; notes-only updates never re-check.
func (s *DefaultSchedulingService) UpdateAppointment(ctx context.Context, id string, updates UpdateInput) (*models.Appointment, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	existing, err := s.AppointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("failed to fetch appointment: %w", err)
	}

	merged := *existing
	timingChanged := false

	if updates.DoctorID != nil && *updates.DoctorID != existing.DoctorID {
		if err := validateID(*updates.DoctorID); err != nil {
			return nil, err
		}
		if _, err := s.DoctorRepo.GetByID(ctx, *updates.DoctorID); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, ErrDoctorNotFound
			}
			return nil, fmt.Errorf("failed to fetch doctor: %w", err)
		}
		merged.DoctorID = *updates.DoctorID
		timingChanged = true
	}
	if updates.Date != nil && !updates.Date.Equal(existing.Date) {
		merged.Date = *updates.Date
		timingChanged = true
	}
	if updates.Duration != nil && *updates.Duration != existing.Duration {
		if *updates.Duration <= 0 {
			return nil, NewValidationError("duration must be positive")
		}
		merged.Duration = *updates.Duration
		timingChanged = true
	}
	if updates.AppointmentType != nil {
		if *updates.AppointmentType == "" {
			return nil, NewValidationError("appointmentType must not be empty")
		}
		merged.AppointmentType = *updates.AppointmentType
	}
	if updates.PatientName != nil {
		if *updates.PatientName == "" {
			return nil, NewValidationError("patientName must not be empty")
		}
		merged.PatientName = *updates.PatientName
	}
	if updates.Notes != nil {
		merged.Notes = *updates.Notes
	}

	if timingChanged {
		lock := s.locks.get(merged.DoctorID)
		lock.Lock()
		defer lock.Unlock()

		conflict, err := s.HasConflict(ctx, merged.DoctorID, merged.Date, merged.Duration, id)
		if err != nil {
			return nil, fmt.Errorf("conflict check failed: %w", err)
		}
		if conflict {
			return nil, NewConflictError()
		}
	}

	if err := s.AppointmentRepo.Replace(ctx, &merged); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("failed to update appointment: %w", err)
	}

	s.invalidateSlots(ctx, existing.DoctorID, existing.Date)
	s.invalidateSlots(ctx, merged.DoctorID, merged.Date)
	if timingChanged {
		s.cancelReminder(ctx, merged.ID)
		s.scheduleReminder(ctx, &merged)
	}
	return &merged, nil
}

// CancelAppointment deletes the appointment and drops its cached slot day.
func (s *DefaultSchedulingService) CancelAppointment(ctx context.Context, id string) error {
	if err := validateID(id); err != nil {
		return err
	}

	existing, err := s.AppointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrAppointmentNotFound
		}
		return fmt.Errorf("failed to fetch appointment: %w", err)
	}

	if err := s.AppointmentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrAppointmentNotFound
		}
		return fmt.Errorf("failed to delete appointment: %w", err)
	}

	s.invalidateSlots(ctx, existing.DoctorID, existing.Date)
	s.cancelReminder(ctx, id)
	return nil
}

func (s *DefaultSchedulingService) scheduleReminder(ctx context.Context, appt *models.Appointment) {
	if s.Reminders == nil {
		return
	}
	if err := s.Reminders.ScheduleReminder(ctx, appt); err != nil {
		utils.GetLogger().Warn("failed to schedule reminder",
			zap.String("appointmentID", appt.ID), zap.Error(err))
	}
}

func (s *DefaultSchedulingService) cancelReminder(ctx context.Context, appointmentID string) {
	if s.Reminders == nil {
		return
	}
	if err := s.Reminders.CancelReminder(ctx, appointmentID); err != nil {
		utils.GetLogger().Warn("failed to cancel reminder",
			zap.String("appointmentID", appointmentID), zap.Error(err))
	}
}
