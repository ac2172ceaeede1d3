package models

import "time"

// Appointment is a booked visit against a doctor's calendar.
// Date is the absolute start timestamp; Duration is in minutes.
type Appointment struct {
	ID              string    `bson:"id" json:"id"`
	DoctorID        string    `bson:"doctorId" json:"doctorId"`
	Date            time.Time `bson:"date" json:"date"`
	Duration        int       `bson:"duration" json:"duration"`
	AppointmentType string    `bson:"appointmentType" json:"appointmentType"`
	PatientName     string    `bson:"patientName" json:"patientName"`
	Notes           string    `bson:"notes,omitempty" json:"notes,omitempty"`
}

// End returns the derived end timestamp (Date + Duration minutes).
func (a Appointment) End() time.Time {
	return a.Date.Add(time.Duration(a.Duration) * time.Minute)
}

// AppointmentWithDoctor embeds the owning doctor for list/detail responses.
type AppointmentWithDoctor struct {
	Appointment
	Doctor *Doctor `json:"doctor,omitempty"`
}

// DoctorAppointments is the per-doctor listing payload. PatientCount is the
// number of distinct patientName values across the doctor's appointments.
type DoctorAppointments struct {
	Doctor       DoctorSummary `json:"doctor"`
	Appointments []Appointment `json:"appointments"`
	PatientCount int           `json:"patientCount"`
}
