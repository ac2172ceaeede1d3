// File: cron/reminder.go
package cron

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"clinicbook/config"
	"clinicbook/models"

	"github.com/hibiken/asynq"
)

const TypeAppointmentReminder = "appointment:reminder"

// reminderLead is how long before the appointment start the reminder fires.
const reminderLead = 30 * time.Minute

// ReminderPayload is the task body for an appointment reminder.
type ReminderPayload struct {
	AppointmentID   string    `json:"appointmentId"`
	DoctorID        string    `json:"doctorId"`
	PatientName     string    `json:"patientName"`
	AppointmentType string    `json:"appointmentType"`
	Date            time.Time `json:"date"`
}

// AsynqReminderScheduler schedules appointment reminders on the asynq queue.
// The task ID is the appointment ID so a cancelled or rescheduled booking can
// delete its pending reminder.
type AsynqReminderScheduler struct {
	client    *asynq.Client
	inspector *asynq.Inspector
}

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
	}
}

// NewAsynqReminderScheduler constructs a scheduler backed by the configured
// Redis reminder queue.
func NewAsynqReminderScheduler() *AsynqReminderScheduler {
	opts := redisOpts()
	return &AsynqReminderScheduler{
		client:    asynq.NewClient(opts),
		inspector: asynq.NewInspector(opts),
	}
}

func (s *AsynqReminderScheduler) ScheduleReminder(ctx context.Context, appt *models.Appointment) error {
	fireAt := appt.Date.Add(-reminderLead)
	if fireAt.Before(time.Now()) {
		// Too late for a reminder; nothing to schedule.
		return nil
	}

	payload, err := json.Marshal(ReminderPayload{
		AppointmentID:   appt.ID,
		DoctorID:        appt.DoctorID,
		PatientName:     appt.PatientName,
		AppointmentType: appt.AppointmentType,
		Date:            appt.Date,
	})
	if err != nil {
		return err
	}

	task := asynq.NewTask(TypeAppointmentReminder, payload)
	_, err = s.client.EnqueueContext(ctx, task,
		asynq.TaskID(appt.ID),
		asynq.ProcessAt(fireAt),
	)
	return err
}

func (s *AsynqReminderScheduler) CancelReminder(ctx context.Context, appointmentID string) error {
	err := s.inspector.DeleteTask("default", appointmentID)
	if errors.Is(err, asynq.ErrTaskNotFound) || errors.Is(err, asynq.ErrQueueNotFound) {
		return nil
	}
	return err
}

// Close releases the underlying queue connections.
func (s *AsynqReminderScheduler) Close() error {
	return s.client.Close()
}
