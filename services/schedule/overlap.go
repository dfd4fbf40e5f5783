package schedule

import (
	"time"

	"beautybook/models"
)

// HasConflict reports whether the candidate window [start, end) intersects
// any existing appointment. Intervals are open: back-to-back appointments
// where one ends exactly as another begins do not conflict. The appointment
// list may span any dates; no pre-filtering by date is assumed.
//
// Linear scan is fine for a single professional's calendar. A sorted interval
// structure would only matter at a much larger scale.
func HasConflict(start, end time.Time, appointments []models.Appointment) bool {
	for _, a := range appointments {
		if start.Before(a.End) && end.After(a.Start) {
			return true
		}
	}
	return false
}
