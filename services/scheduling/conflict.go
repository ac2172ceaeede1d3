package scheduling

import (
	"context"
	"time"
)

// conflictWindowLead bounds how far back the candidate pre-filter reaches.
// An existing appointment that starts before the proposed window can still
// extend into it, so candidates are fetched from [start - lead, end) and then
// filtered with the precise overlap primitive. No appointment spans more than
// a working day, so 24h covers every reachable candidate.
const conflictWindowLead = 24 * time.Hour

// HasConflict reports whether the proposed interval [start, start+duration)
// overlaps any of the doctor's existing appointments, optionally excluding
// one appointment (used during updates to avoid self-conflict).
func (s *DefaultSchedulingService) HasConflict(ctx context.Context, doctorID string, start time.Time, duration int, excludeID string) (bool, error) {
	end := start.Add(time.Duration(duration) * time.Minute)

	candidates, err := s.AppointmentRepo.GetByDoctorAndWindow(ctx, doctorID, start.Add(-conflictWindowLead), end, excludeID)
	if err != nil {
		return false, err
	}

	for _, apt := range candidates {
		if Overlaps(start, end, apt.Date, apt.End()) {
			return true, nil
		}
	}
	return false, nil
}
