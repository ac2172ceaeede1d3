package scheduling_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"clinicbook/models"
	"clinicbook/services/scheduling"

	"github.com/google/uuid"
)

func validBooking(doctorID string) scheduling.BookingInput {
	return scheduling.BookingInput{
		DoctorID:        doctorID,
		Date:            at(10, 0),
		Duration:        30,
		AppointmentType: "Routine Check-Up",
		PatientName:     "Asha",
		Notes:           "first visit",
	}
}

func TestBookAppointment(t *testing.T) {
	doctors, appts := newFakeDoctorRepo(), newFakeAppointmentRepo()
	svc := newService(doctors, appts)
	docID := seedDoctor(t, doctors, "09:00", "17:00")

	apt, err := svc.BookAppointment(context.Background(), validBooking(docID))
	if err != nil {
		t.Fatalf("BookAppointment: %v", err)
	}
	if apt.ID == "" {
		t.Fatal("empty appointment id")
	}
	if got := apt.End(); !got.Equal(at(10, 30)) {
		t.Fatalf("End() = %v, want %v", got, at(10, 30))
	}

	stored, err := appts.GetByID(context.Background(), apt.ID)
	if err != nil {
		t.Fatalf("appointment not persisted: %v", err)
	}
	if stored.PatientName != "Asha" {
		t.Fatalf("stored patientName = %q", stored.PatientName)
	}
}

func TestBookAppointmentConflict(t *testing.T) {
	doctors, appts := newFakeDoctorRepo(), newFakeAppointmentRepo()
	svc := newService(doctors, appts)
	docID := seedDoctor(t, doctors, "09:00", "17:00")
	seedAppointment(t, appts, docID, at(10, 0), 30)

	input := validBooking(docID)
	input.Date = at(10, 15)
	_, err := svc.BookAppointment(context.Background(), input)

	var conflictErr *scheduling.ConflictError
	if !errors.As(err, &conflictErr) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
	if conflictErr.Message != "Time slot unavailable" {
		t.Fatalf("conflict message = %q", conflictErr.Message)
	}
}

func TestBookAppointmentValidation(t *testing.T) {
	doctors, appts := newFakeDoctorRepo(), newFakeAppointmentRepo()
	svc := newService(doctors, appts)
	docID := seedDoctor(t, doctors, "09:00", "17:00")

	tests := []struct {
		name   string
		mutate func(*scheduling.BookingInput)
	}{
		{"missing doctor", func(in *scheduling.BookingInput) { in.DoctorID = "" }},
		{"missing date", func(in *scheduling.BookingInput) { in.Date = time.Time{} }},
		{"missing duration", func(in *scheduling.BookingInput) { in.Duration = 0 }},
		{"negative duration", func(in *scheduling.BookingInput) { in.Duration = -30 }},
		{"missing type", func(in *scheduling.BookingInput) { in.AppointmentType = "" }},
		{"missing patient", func(in *scheduling.BookingInput) { in.PatientName = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validBooking(docID)
			tt.mutate(&input)
			_, err := svc.BookAppointment(context.Background(), input)
			var validationErr *scheduling.ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
		})
	}
}

func TestBookAppointmentUnknownDoctor(t *testing.T) {
	svc := newService(newFakeDoctorRepo(), newFakeAppointmentRepo())

	_, err := svc.BookAppointment(context.Background(), validBooking(uuid.New().String()))
	if !errors.Is(err, scheduling.ErrDoctorNotFound) {
		t.Fatalf("expected ErrDoctorNotFound, got %v", err)
	}
}

func TestBookAppointmentMalformedDoctorID(t *testing.T) {
	svc := newService(newFakeDoctorRepo(), newFakeAppointmentRepo())

	_, err := svc.BookAppointment(context.Background(), validBooking("not-a-uuid"))
	var idErr *scheduling.InvalidIDError
	if !errors.As(err, &idErr) {
		t.Fatalf("expected InvalidIDError, got %v", err)
	}
}

func TestUpdateNotesOnlySkipsConflictCheck(t *testing.T) {
	doctors, appts := newFakeDoctorRepo(), newFakeAppointmentRepo()
	svc := newService(doctors, appts)
	docID := seedDoctor(t, doctors, "09:00", "17:00")
	aptID := seedAppointment(t, appts, docID, at(10, 0), 30)

	before := appts.windowQueries
	notes := "bring previous scans"
	updated, err := svc.UpdateAppointment(context.Background(), aptID, scheduling.UpdateInput{Notes: &notes})
	if err != nil {
		t.Fatalf("UpdateAppointment: %v", err)
	}
	if updated.Notes != notes {
		t.Fatalf("notes = %q", updated.Notes)
	}
	if appts.windowQueries != before {
		t.Fatal("notes-only update must not run the conflict check")
	}
}

func TestUpdateTimingChangeRechecksConflict(t *testing.T) {
	doctors, appts := newFakeDoctorRepo(), newFakeAppointmentRepo()
	svc := newService(doctors, appts)
	docID := seedDoctor(t, doctors, "09:00", "17:00")
	aptID := seedAppointment(t, appts, docID, at(10, 0), 30)
	seedAppointment(t, appts, docID, at(11, 0), 30)

	// Moving onto the other appointment conflicts.
	newDate := at(11, 0)
	_, err := svc.UpdateAppointment(context.Background(), aptID, scheduling.UpdateInput{Date: &newDate})
	var conflictErr *scheduling.ConflictError
	if !errors.As(err, &conflictErr) {
		t.Fatalf("expected ConflictError, got %v", err)
	}

	// Moving to a free window succeeds, and the self-exclusion means the
	// appointment's own old interval is not a blocker.
	newDate = at(10, 15)
	before := appts.windowQueries
	updated, err := svc.UpdateAppointment(context.Background(), aptID, scheduling.UpdateInput{Date: &newDate})
	if err != nil {
		t.Fatalf("UpdateAppointment: %v", err)
	}
	if !updated.Date.Equal(newDate) {
		t.Fatalf("date = %v, want %v", updated.Date, newDate)
	}
	if appts.windowQueries == before {
		t.Fatal("timing change must run the conflict check")
	}
}

func TestUpdateUnchangedTimingSkipsConflictCheck(t *testing.T) {
	doctors, appts := newFakeDoctorRepo(), newFakeAppointmentRepo()
	svc := newService(doctors, appts)
	docID := seedDoctor(t, doctors, "09:00", "17:00")
	aptID := seedAppointment(t, appts, docID, at(10, 0), 30)

	// Re-sending the same date and duration is not a timing change.
	sameDate, sameDuration := at(10, 0), 30
	before := appts.windowQueries
	if _, err := svc.UpdateAppointment(context.Background(), aptID, scheduling.UpdateInput{
		Date:     &sameDate,
		Duration: &sameDuration,
	}); err != nil {
		t.Fatalf("UpdateAppointment: %v", err)
	}
	if appts.windowQueries != before {
		t.Fatal("unchanged timing must not run the conflict check")
	}
}

func TestCancelAppointment(t *testing.T) {
	doctors, appts := newFakeDoctorRepo(), newFakeAppointmentRepo()
	svc := newService(doctors, appts)
	docID := seedDoctor(t, doctors, "09:00", "17:00")
	aptID := seedAppointment(t, appts, docID, at(10, 0), 30)

	if err := svc.CancelAppointment(context.Background(), aptID); err != nil {
		t.Fatalf("CancelAppointment: %v", err)
	}
	if err := svc.CancelAppointment(context.Background(), aptID); !errors.Is(err, scheduling.ErrAppointmentNotFound) {
		t.Fatalf("expected ErrAppointmentNotFound, got %v", err)
	}

	var idErr *scheduling.InvalidIDError
	if err := svc.CancelAppointment(context.Background(), "nope"); !errors.As(err, &idErr) {
		t.Fatalf("expected InvalidIDError, got %v", err)
	}
}

func TestDeleteDoctorRemovesAppointments(t *testing.T) {
	doctors, appts := newFakeDoctorRepo(), newFakeAppointmentRepo()
	svc := newService(doctors, appts)
	docID := seedDoctor(t, doctors, "09:00", "17:00")
	aptID := seedAppointment(t, appts, docID, at(10, 0), 30)

	if err := svc.DeleteDoctor(context.Background(), docID); err != nil {
		t.Fatalf("DeleteDoctor: %v", err)
	}
	if _, err := appts.GetByID(context.Background(), aptID); err == nil {
		t.Fatal("doctor's appointments must be deleted with the doctor")
	}
}

func TestGetDoctorAppointmentsPatientCount(t *testing.T) {
	doctors, appts := newFakeDoctorRepo(), newFakeAppointmentRepo()
	svc := newService(doctors, appts)
	docID := seedDoctor(t, doctors, "09:00", "17:00")

	for i, name := range []string{"Asha", "Asha", "Binod"} {
		apt := models.Appointment{
			DoctorID:        docID,
			Date:            at(9+i, 0),
			Duration:        30,
			AppointmentType: "Routine Check-Up",
			PatientName:     name,
		}
		if err := appts.Create(context.Background(), &apt); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	out, err := svc.GetDoctorAppointments(context.Background(), docID)
	if err != nil {
		t.Fatalf("GetDoctorAppointments: %v", err)
	}
	if len(out.Appointments) != 3 {
		t.Fatalf("appointments = %d, want 3", len(out.Appointments))
	}
	if out.PatientCount != 2 {
		t.Fatalf("patientCount = %d, want 2", out.PatientCount)
	}
}

func TestGetDoctorSlotsExcludesBookedDay(t *testing.T) {
	doctors, appts := newFakeDoctorRepo(), newFakeAppointmentRepo()
	svc := newService(doctors, appts)
	docID := seedDoctor(t, doctors, "09:00", "10:00")
	seedAppointment(t, appts, docID, at(9, 30), 30)

	slots, err := svc.GetDoctorSlots(context.Background(), docID, testDay)
	if err != nil {
		t.Fatalf("GetDoctorSlots: %v", err)
	}
	if len(slots) != 1 || slots[0] != "09:00" {
		t.Fatalf("slots = %v, want [09:00]", slots)
	}

	_, err = svc.GetDoctorSlots(context.Background(), uuid.New().String(), testDay)
	if !errors.Is(err, scheduling.ErrDoctorNotFound) {
		t.Fatalf("expected ErrDoctorNotFound, got %v", err)
	}
}

// Two concurrent bookings for the same slot: the per-doctor lock guarantees
// exactly one wins.
func TestConcurrentBookingsSameSlot(t *testing.T) {
	doctors, appts := newFakeDoctorRepo(), newFakeAppointmentRepo()
	svc := newService(doctors, appts)
	docID := seedDoctor(t, doctors, "09:00", "17:00")

	const attempts = 8
	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.BookAppointment(context.Background(), validBooking(docID))
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		var conflictErr *scheduling.ConflictError
		if !errors.As(err, &conflictErr) {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if succeeded != 1 {
		t.Fatalf("succeeded = %d, want exactly 1", succeeded)
	}
}
