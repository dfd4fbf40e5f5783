package schedule

import (
	"sort"
	"time"

	"beautybook/models"
)

// DefaultSlotIntervalMinutes is used when a professional has not configured a
// booking granularity.
const DefaultSlotIntervalMinutes = 15

// Engine resolves a professional's weekly availability, a service duration and
// an appointment snapshot into bookable slots. It is pure and synchronous:
// callers supply the appointment list and the evaluation instant explicitly,
// so every candidate within one pass is judged against the same snapshot and
// the same "now".
type Engine struct {
	DefaultIntervalMinutes int
}

// NewEngine returns an engine with the given fallback granularity.
func NewEngine(defaultIntervalMinutes int) *Engine {
	if defaultIntervalMinutes <= 0 {
		defaultIntervalMinutes = DefaultSlotIntervalMinutes
	}
	return &Engine{DefaultIntervalMinutes: defaultIntervalMinutes}
}

func (e *Engine) intervalFor(prof models.Professional) time.Duration {
	minutes := prof.SlotIntervalMinutes
	if minutes <= 0 {
		minutes = e.DefaultIntervalMinutes
	}
	return time.Duration(minutes) * time.Minute
}

// DaySlots computes the candidate slots for one calendar date, ordered
// ascending with exactly one entry per distinct start time. Closed weekdays,
// fully booked days and days with no fitting window all yield an empty
// result, never an error.
func (e *Engine) DaySlots(
	date time.Time,
	prof models.Professional,
	svc models.Service,
	appointments []models.Appointment,
	now time.Time,
) []models.CandidateSlot {
	ranges := prof.Availability.RangesFor(date.Weekday())
	if len(ranges) == 0 {
		return nil
	}

	interval := e.intervalFor(prof)
	duration := svc.Duration()

	// Ranges are expanded independently; overlapping ranges may produce the
	// same instant twice, with availability OR-ed across duplicates.
	seen := make(map[int64]models.CandidateSlot)
	for _, r := range ranges {
		if !r.Valid() {
			continue
		}
		blockEnd := r.EndOn(date)
		for _, candidate := range expandRange(date, r, interval) {
			if !fits(candidate, duration, blockEnd, now) {
				continue
			}
			available := !HasConflict(candidate, candidate.Add(duration), appointments)
			key := candidate.UnixNano()
			if prev, ok := seen[key]; ok {
				available = available || prev.IsAvailable
			}
			seen[key] = models.CandidateSlot{Time: candidate, IsAvailable: available}
		}
	}
	if len(seen) == 0 {
		return nil
	}

	slots := make([]models.CandidateSlot, 0, len(seen))
	for _, s := range seen {
		slots = append(slots, s)
	}
	sort.Slice(slots, func(i, j int) bool { return slots[i].Time.Before(slots[j].Time) })
	return slots
}

// MonthAvailability runs the day pipeline once per date in the month and
// reports whether each day still has at least one free slot. All days share
// the same appointment snapshot and the same "now".
func (e *Engine) MonthAvailability(
	year int,
	month time.Month,
	loc *time.Location,
	prof models.Professional,
	svc models.Service,
	appointments []models.Appointment,
	now time.Time,
) []models.DayAvailability {
	if loc == nil {
		loc = time.Local
	}
	var days []models.DayAvailability
	for d := time.Date(year, month, 1, 0, 0, 0, 0, loc); d.Month() == month; d = d.AddDate(0, 0, 1) {
		slots := e.DaySlots(d, prof, svc, appointments, now)
		has := false
		for _, s := range slots {
			if s.IsAvailable {
				has = true
				break
			}
		}
		days = append(days, models.DayAvailability{Date: d.Format("2006-01-02"), HasAvailable: has})
	}
	return days
}
