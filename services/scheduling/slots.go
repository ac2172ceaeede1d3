package scheduling

import (
	"fmt"
	"time"

	"clinicbook/models"
)

// SlotLength is the fixed length of a candidate appointment slot.
const SlotLength = 30 * time.Minute

// GenerateSlots walks a doctor's working-hours window on the given date in
// fixed 30-minute steps and returns the available slot start times as "HH:MM"
// strings in chronological order. A step is taken while its start is strictly
// before the window end; the last slot is not required to fully fit.
//
// A slot is excluded when its start or end lands inside an existing
// appointment's interval. Endpoint containment is deliberately looser than
// Overlaps: an appointment shorter than a slot and strictly inside it does
// not block the slot.
func GenerateSlots(doctor *models.Doctor, date time.Time, appointments []models.Appointment) ([]string, error) {
	start, err := atTimeOfDay(date, doctor.WorkingHours.Start)
	if err != nil {
		return nil, err
	}
	end, err := atTimeOfDay(date, doctor.WorkingHours.End)
	if err != nil {
		return nil, err
	}

	slots := []string{}
	for cur := start; cur.Before(end); cur = cur.Add(SlotLength) {
		if slotAvailable(cur, cur.Add(SlotLength), appointments) {
			slots = append(slots, cur.Format("15:04"))
		}
	}
	return slots, nil
}

// slotAvailable applies the endpoint-containment rule: the slot is taken when
// its start lies in [apptStart, apptEnd) or its end lies in (apptStart,
// apptEnd]. Boundary touches keep the slot available.
func slotAvailable(slotStart, slotEnd time.Time, appointments []models.Appointment) bool {
	for _, apt := range appointments {
		aptStart := apt.Date
		aptEnd := apt.End()
		startInside := !slotStart.Before(aptStart) && slotStart.Before(aptEnd)
		endInside := slotEnd.After(aptStart) && !slotEnd.After(aptEnd)
		if startInside || endInside {
			return false
		}
	}
	return true
}

// atTimeOfDay anchors an "HH:MM" time-of-day on the given calendar date.
func atTimeOfDay(date time.Time, hhmm string) (time.Time, error) {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time of day %q: %w", hhmm, err)
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, date.Location()), nil
}
