// File: services/scheduling/interface.go
package scheduling

import (
	"context"
	"sync"
	"time"

	appointmentRepo "clinicbook/database/repository/appointment"
	doctorRepo "clinicbook/database/repository/doctor"
	"clinicbook/models"

	"github.com/go-redis/redis/v8"
)

// BookingInput carries the fields required to create an appointment.
type BookingInput struct {
	DoctorID        string    `json:"doctorId"`
	Date            time.Time `json:"date"`
	Duration        int       `json:"duration"`
	AppointmentType string    `json:"appointmentType"`
	PatientName     string    `json:"patientName"`
	Notes           string    `json:"notes"`
}

// UpdateInput carries a partial appointment update; nil fields are left
// unchanged.
type UpdateInput struct {
	DoctorID        *string    `json:"doctorId"`
	Date            *time.Time `json:"date"`
	Duration        *int       `json:"duration"`
	AppointmentType *string    `json:"appointmentType"`
	PatientName     *string    `json:"patientName"`
	Notes           *string    `json:"notes"`
}

// ReminderScheduler schedules and cancels appointment reminders. Failures are
// logged by the service and never fail the booking.
type ReminderScheduler interface {
	ScheduleReminder(ctx context.Context, appt *models.Appointment) error
	CancelReminder(ctx context.Context, appointmentID string) error
}

// SlotCache is the subset of the Redis client the service uses for cached
// slot lists. *redis.Client satisfies it; tests inject an in-memory fake.
type SlotCache interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Keys(ctx context.Context, pattern string) *redis.StringSliceCmd
}

// SchedulingService is the core booking API consumed by the HTTP handlers.
type SchedulingService interface {
	GetDoctors(ctx context.Context) ([]models.Doctor, error)
	CreateDoctor(ctx context.Context, doctor *models.Doctor) (*models.Doctor, error)
	DeleteDoctor(ctx context.Context, id string) error
	GetDoctorSlots(ctx context.Context, doctorID string, date time.Time) ([]string, error)
	GetDoctorAppointments(ctx context.Context, doctorID string) (*models.DoctorAppointments, error)

	GetAppointments(ctx context.Context) ([]models.AppointmentWithDoctor, error)
	GetAppointment(ctx context.Context, id string) (*models.AppointmentWithDoctor, error)
	BookAppointment(ctx context.Context, input BookingInput) (*models.Appointment, error)
	UpdateAppointment(ctx context.Context, id string, updates UpdateInput) (*models.Appointment, error)
	CancelAppointment(ctx context.Context, id string) error

	HasConflict(ctx context.Context, doctorID string, start time.Time, duration int, excludeID string) (bool, error)
}

// DefaultSchedulingService is the production scheduling service.
type DefaultSchedulingService struct {
	DoctorRepo      doctorRepo.DoctorRepository
	AppointmentRepo appointmentRepo.AppointmentRepository

	// Cache holds computed slot lists per doctor and date; nil disables
	// caching.
	Cache    SlotCache
	CacheTTL time.Duration

	// Reminders is optional; nil disables reminder scheduling.
	Reminders ReminderScheduler

	locks doctorLocks
}

// doctorLocks serializes check-then-persist sequences per doctor so two
// concurrent bookings for the same doctor cannot both pass the conflict
// check before either persists.
type doctorLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (l *doctorLocks) get(doctorID string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.locks == nil {
		l.locks = make(map[string]*sync.Mutex)
	}
	lock, exists := l.locks[doctorID]
	if !exists {
		lock = &sync.Mutex{}
		l.locks[doctorID] = lock
	}
	return lock
}
