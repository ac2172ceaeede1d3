package models

import "regexp"

// timeOfDayPattern accepts 24-hour "HH:MM" values (e.g. "09:00", "17:30").
var timeOfDayPattern = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):[0-5][0-9]$`)

// WorkingHours is a doctor's daily availability window. End is not required
// to be later than Start; a window with start >= end simply yields no slots.
type WorkingHours struct {
	Start string `bson:"start" json:"start" binding:"required"`
	End   string `bson:"end" json:"end" binding:"required"`
}

// Valid reports whether both bounds match the "HH:MM" pattern.
func (w WorkingHours) Valid() bool {
	return timeOfDayPattern.MatchString(w.Start) && timeOfDayPattern.MatchString(w.End)
}

// Doctor represents a bookable practitioner.
type Doctor struct {
	ID             string       `bson:"id" json:"id"`
	Name           string       `bson:"name" json:"name" binding:"required"`
	WorkingHours   WorkingHours `bson:"workingHours" json:"workingHours" binding:"required"`
	Specialization string       `bson:"specialization,omitempty" json:"specialization,omitempty"`
	Image          string       `bson:"image,omitempty" json:"image,omitempty"`
}

// DoctorSummary is the reduced view embedded in per-doctor appointment listings.
type DoctorSummary struct {
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}
