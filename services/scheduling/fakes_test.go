package scheduling_test

import (
	"context"
	"sort"
	"strings"
	"time"

	"clinicbook/models"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

// fakeDoctorRepo is an in-memory DoctorRepository.
type fakeDoctorRepo struct {
	doctors map[string]models.Doctor
}

func newFakeDoctorRepo() *fakeDoctorRepo {
	return &fakeDoctorRepo{doctors: make(map[string]models.Doctor)}
}

func (r *fakeDoctorRepo) Create(ctx context.Context, doctor *models.Doctor) error {
	if doctor.ID == "" {
		doctor.ID = uuid.New().String()
	}
	r.doctors[doctor.ID] = *doctor
	return nil
}

func (r *fakeDoctorRepo) CreateMany(ctx context.Context, doctors []models.Doctor) error {
	for i := range doctors {
		d := doctors[i]
		if err := r.Create(ctx, &d); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeDoctorRepo) GetByID(ctx context.Context, id string) (*models.Doctor, error) {
	d, ok := r.doctors[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &d, nil
}

func (r *fakeDoctorRepo) GetAll(ctx context.Context) ([]models.Doctor, error) {
	out := make([]models.Doctor, 0, len(r.doctors))
	for _, d := range r.doctors {
		out = append(out, d)
	}
	return out, nil
}

func (r *fakeDoctorRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.doctors[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(r.doctors, id)
	return nil
}

func (r *fakeDoctorRepo) DeleteAll(ctx context.Context) error {
	r.doctors = make(map[string]models.Doctor)
	return nil
}

// fakeAppointmentRepo is an in-memory AppointmentRepository. It counts window
// queries so tests can assert whether a conflict check ran.
type fakeAppointmentRepo struct {
	appts         map[string]models.Appointment
	windowQueries int
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{appts: make(map[string]models.Appointment)}
}

func (r *fakeAppointmentRepo) Create(ctx context.Context, appt *models.Appointment) error {
	if appt.ID == "" {
		appt.ID = uuid.New().String()
	}
	r.appts[appt.ID] = *appt
	return nil
}

func (r *fakeAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	a, ok := r.appts[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &a, nil
}

func (r *fakeAppointmentRepo) GetAll(ctx context.Context) ([]models.Appointment, error) {
	return r.sorted(func(a models.Appointment) bool { return true }), nil
}

func (r *fakeAppointmentRepo) GetByDoctorID(ctx context.Context, doctorID string) ([]models.Appointment, error) {
	return r.sorted(func(a models.Appointment) bool { return a.DoctorID == doctorID }), nil
}

func (r *fakeAppointmentRepo) GetByDoctorAndDay(ctx context.Context, doctorID string, dayStart time.Time) ([]models.Appointment, error) {
	start := time.Date(dayStart.Year(), dayStart.Month(), dayStart.Day(), 0, 0, 0, 0, dayStart.Location())
	end := start.Add(24*time.Hour - time.Millisecond)
	return r.sorted(func(a models.Appointment) bool {
		return a.DoctorID == doctorID && !a.Date.Before(start) && !a.Date.After(end)
	}), nil
}

func (r *fakeAppointmentRepo) GetByDoctorAndWindow(ctx context.Context, doctorID string, from, to time.Time, excludeID string) ([]models.Appointment, error) {
	r.windowQueries++
	return r.sorted(func(a models.Appointment) bool {
		if a.DoctorID != doctorID || a.ID == excludeID {
			return false
		}
		return !a.Date.Before(from) && a.Date.Before(to)
	}), nil
}

func (r *fakeAppointmentRepo) Replace(ctx context.Context, appt *models.Appointment) error {
	if _, ok := r.appts[appt.ID]; !ok {
		return mongo.ErrNoDocuments
	}
	r.appts[appt.ID] = *appt
	return nil
}

func (r *fakeAppointmentRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.appts[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(r.appts, id)
	return nil
}

func (r *fakeAppointmentRepo) DeleteByDoctorID(ctx context.Context, doctorID string) error {
	for id, a := range r.appts {
		if a.DoctorID == doctorID {
			delete(r.appts, id)
		}
	}
	return nil
}

// fakeSlotCache is an in-memory SlotCache. TTLs are ignored; entries live
// until deleted, which is the worst case for staleness tests.
type fakeSlotCache struct {
	entries map[string]string
}

func newFakeSlotCache() *fakeSlotCache {
	return &fakeSlotCache{entries: make(map[string]string)}
}

func (c *fakeSlotCache) Get(ctx context.Context, key string) *redis.StringCmd {
	v, ok := c.entries[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (c *fakeSlotCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	switch v := value.(type) {
	case []byte:
		c.entries[key] = string(v)
	case string:
		c.entries[key] = v
	}
	return redis.NewStatusResult("OK", nil)
}

func (c *fakeSlotCache) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	var removed int64
	for _, key := range keys {
		if _, ok := c.entries[key]; ok {
			delete(c.entries, key)
			removed++
		}
	}
	return redis.NewIntResult(removed, nil)
}

func (c *fakeSlotCache) Keys(ctx context.Context, pattern string) *redis.StringSliceCmd {
	prefix := strings.TrimSuffix(pattern, "*")
	out := []string{}
	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			out = append(out, key)
		}
	}
	return redis.NewStringSliceResult(out, nil)
}

func (r *fakeAppointmentRepo) sorted(keep func(models.Appointment) bool) []models.Appointment {
	var out []models.Appointment
	for _, a := range r.appts {
		if keep(a) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}
