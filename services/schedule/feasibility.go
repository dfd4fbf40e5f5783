package schedule

import "time"

// fits decides whether a full-length appointment starting at candidate can be
// offered: the start must be strictly in the future (a slot starting exactly
// "now" is excluded) and the appointment must end at or before the range's
// closing boundary (finishing exactly at closing is allowed).
func fits(candidate time.Time, duration time.Duration, blockEnd, now time.Time) bool {
	if !candidate.After(now) {
		return false
	}
	return !candidate.Add(duration).After(blockEnd)
}
