package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beautybook/models"
)

// A Tuesday well in the future of the fixed "now" used by most tests.
var tuesday = time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC)

func at(hour, minute int) time.Time {
	return time.Date(tuesday.Year(), tuesday.Month(), tuesday.Day(), hour, minute, 0, 0, time.UTC)
}

func testProfessional(interval int, availability models.WeeklyAvailability) models.Professional {
	return models.Professional{
		ID:                  "prof-1",
		Name:                "Ana Silva",
		Availability:        availability,
		SlotIntervalMinutes: interval,
	}
}

func haircut() models.Service {
	return models.Service{ID: "svc-1", Name: "Corte de Cabelo", DurationMinutes: 60, Price: 80}
}

func TestDaySlotsBookingScenario(t *testing.T) {
	// Open Tuesday 09:00-12:00 and 13:00-18:00, 30 min interval, 60 min
	// service, one existing appointment 10:00-11:00.
	prof := testProfessional(30, models.WeeklyAvailability{
		"2": {{Start: 9, End: 12}, {Start: 13, End: 18}},
	})
	appointments := []models.Appointment{
		{ID: "a1", ProfessionalID: prof.ID, Start: at(10, 0), End: at(11, 0)},
	}
	now := tuesday.AddDate(0, 0, -1)

	slots := NewEngine(0).DaySlots(tuesday, prof, haircut(), appointments, now)

	byTime := make(map[string]bool, len(slots))
	for _, s := range slots {
		byTime[s.Time.Format("15:04")] = s.IsAvailable
	}

	var available []string
	for _, s := range slots {
		if s.IsAvailable {
			available = append(available, s.Time.Format("15:04"))
		}
	}
	assert.Equal(t, []string{
		"09:00", "11:00",
		"13:00", "13:30", "14:00", "14:30", "15:00", "15:30",
		"16:00", "16:30", "17:00",
	}, available)

	// Candidates overlapping the booked window are present but unavailable.
	for _, blocked := range []string{"09:30", "10:00", "10:30"} {
		avail, ok := byTime[blocked]
		require.True(t, ok, "expected candidate at %s", blocked)
		assert.False(t, avail, "candidate at %s should conflict", blocked)
	}

	// Starts whose appointment would run past closing are not offered at all.
	assert.NotContains(t, byTime, "11:30")
	assert.NotContains(t, byTime, "17:30")

	// Ordered ascending.
	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i-1].Time.Before(slots[i].Time))
	}
}

func TestDaySlotsClosedWeekday(t *testing.T) {
	prof := testProfessional(30, models.WeeklyAvailability{
		"3": {{Start: 9, End: 18}}, // Wednesday only
	})
	slots := NewEngine(0).DaySlots(tuesday, prof, haircut(), nil, tuesday.AddDate(0, 0, -1))
	assert.Empty(t, slots)
}

func TestDaySlotsPastExclusion(t *testing.T) {
	prof := testProfessional(30, models.WeeklyAvailability{
		"2": {{Start: 9, End: 12}},
	})
	svc := models.Service{ID: "svc-2", DurationMinutes: 30}

	// "now" falls exactly on a candidate boundary: that candidate is excluded
	// too, only strictly later starts survive.
	now := at(10, 0)
	slots := NewEngine(0).DaySlots(tuesday, prof, svc, nil, now)

	require.NotEmpty(t, slots)
	for _, s := range slots {
		assert.True(t, s.Time.After(now), "slot %s not after now", s.Time)
	}
	assert.Equal(t, at(10, 30), slots[0].Time)
}

func TestDaySlotsFinishExactlyAtClosing(t *testing.T) {
	prof := testProfessional(60, models.WeeklyAvailability{
		"2": {{Start: 9, End: 10}},
	})
	slots := NewEngine(0).DaySlots(tuesday, prof, haircut(), nil, tuesday.AddDate(0, 0, -1))
	require.Len(t, slots, 1)
	assert.Equal(t, at(9, 0), slots[0].Time)
	assert.True(t, slots[0].IsAvailable)
}

func TestDaySlotsHalfHourBoundaries(t *testing.T) {
	// 9.5 means 09:30; a 30 min service in a [9.5, 10.5) window offers 09:30
	// and 10:00.
	prof := testProfessional(30, models.WeeklyAvailability{
		"2": {{Start: 9.5, End: 10.5}},
	})
	svc := models.Service{ID: "svc-2", DurationMinutes: 30}
	slots := NewEngine(0).DaySlots(tuesday, prof, svc, nil, tuesday.AddDate(0, 0, -1))
	require.Len(t, slots, 2)
	assert.Equal(t, at(9, 30), slots[0].Time)
	assert.Equal(t, at(10, 0), slots[1].Time)
}

func TestDaySlotsDedupesOverlappingRanges(t *testing.T) {
	prof := testProfessional(30, models.WeeklyAvailability{
		"2": {{Start: 9, End: 11}, {Start: 9, End: 12}},
	})
	slots := NewEngine(0).DaySlots(tuesday, prof, haircut(), nil, tuesday.AddDate(0, 0, -1))

	counts := make(map[int64]int)
	for _, s := range slots {
		counts[s.Time.UnixNano()]++
	}
	for instant, n := range counts {
		assert.Equal(t, 1, n, "instant %d emitted %d times", instant, n)
	}
	// 09:00 appears in both ranges but exactly once in the result.
	require.NotEmpty(t, slots)
	assert.Equal(t, at(9, 0), slots[0].Time)
}

func TestDaySlotsSkipsMalformedRanges(t *testing.T) {
	prof := testProfessional(30, models.WeeklyAvailability{
		"2": {{Start: 12, End: 9}, {Start: 20, End: 25}, {Start: 9, End: 10}},
	})
	svc := models.Service{ID: "svc-2", DurationMinutes: 30}
	slots := NewEngine(0).DaySlots(tuesday, prof, svc, nil, tuesday.AddDate(0, 0, -1))
	require.Len(t, slots, 2)
	assert.Equal(t, at(9, 0), slots[0].Time)
}

func TestDaySlotsIdempotent(t *testing.T) {
	prof := testProfessional(30, models.WeeklyAvailability{
		"2": {{Start: 9, End: 12}, {Start: 13, End: 18}},
	})
	appointments := []models.Appointment{
		{ID: "a1", ProfessionalID: prof.ID, Start: at(10, 0), End: at(11, 0)},
	}
	now := tuesday.AddDate(0, 0, -1)
	engine := NewEngine(0)

	first := engine.DaySlots(tuesday, prof, haircut(), appointments, now)
	second := engine.DaySlots(tuesday, prof, haircut(), appointments, now)
	assert.Equal(t, first, second)
}

func TestDaySlotsDefaultInterval(t *testing.T) {
	prof := testProfessional(0, models.WeeklyAvailability{
		"2": {{Start: 9, End: 10}},
	})
	svc := models.Service{ID: "svc-2", DurationMinutes: 15}
	slots := NewEngine(0).DaySlots(tuesday, prof, svc, nil, tuesday.AddDate(0, 0, -1))
	// 15 min fallback granularity: 09:00, 09:15, 09:30, 09:45.
	require.Len(t, slots, 4)
	assert.Equal(t, at(9, 15), slots[1].Time)
}

func TestHasConflict(t *testing.T) {
	existing := []models.Appointment{
		{ID: "a1", Start: at(10, 0), End: at(11, 0)},
	}

	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		conflict bool
	}{
		{"back-to-back after", at(11, 0), at(12, 0), false},
		{"back-to-back before", at(9, 0), at(10, 0), false},
		{"straddles booked start", at(9, 30), at(10, 30), true},
		{"straddles booked end", at(10, 30), at(11, 30), true},
		{"fully inside", at(10, 15), at(10, 45), true},
		{"fully covers", at(9, 30), at(11, 30), true},
		{"identical window", at(10, 0), at(11, 0), true},
		{"disjoint", at(8, 0), at(9, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.conflict, HasConflict(tt.start, tt.end, existing))
		})
	}
}

func TestMonthAvailability(t *testing.T) {
	// Only Tuesdays 09:00-10:00 with a 60 min service: one bookable start per
	// open day. Booking it makes the whole day unavailable.
	prof := testProfessional(60, models.WeeklyAvailability{
		"2": {{Start: 9, End: 10}},
	})
	appointments := []models.Appointment{
		{ID: "a1", ProfessionalID: prof.ID, Start: at(9, 0), End: at(10, 0)},
	}
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	days := NewEngine(0).MonthAvailability(2026, time.September, time.UTC, prof, haircut(), appointments, now)
	require.Len(t, days, 30)

	byDate := make(map[string]bool, len(days))
	for _, d := range days {
		byDate[d.Date] = d.HasAvailable
	}

	assert.True(t, byDate["2026-09-01"], "open Tuesday should be available")
	assert.False(t, byDate["2026-09-08"], "fully booked Tuesday should be unavailable")
	assert.True(t, byDate["2026-09-15"])
	assert.False(t, byDate["2026-09-09"], "closed weekday should be unavailable")
	assert.False(t, byDate["2026-09-06"], "closed Sunday should be unavailable")
}
