package schedule

import (
	"time"

	"beautybook/models"
)

// expandRange anchors a cursor at the range's opening boundary on the given
// date and steps it by the booking interval until it reaches the closing
// boundary. Candidates are ascending within the range; whether a full
// appointment fits is decided later by the feasibility check.
func expandRange(date time.Time, r models.TimeRange, interval time.Duration) []time.Time {
	var candidates []time.Time
	end := r.EndOn(date)
	for cursor := r.StartOn(date); cursor.Before(end); cursor = cursor.Add(interval) {
		candidates = append(candidates, cursor)
	}
	return candidates
}
