package professional

import (
	"fmt"
	"time"

	"beautybook/models"
)

// Defaults used when a day is first opened.
const (
	defaultDayStart = 9.0
	defaultDayEnd   = 18.0
)

// EnableDay opens a weekday with the default working block. Enabling an
// already-open day is a no-op.
func EnableDay(av models.WeeklyAvailability, day time.Weekday) {
	if len(av.RangesFor(day)) > 0 {
		return
	}
	av.Set(day, []models.TimeRange{{Start: defaultDayStart, End: defaultDayEnd}})
}

// DisableDay closes a weekday entirely.
func DisableDay(av models.WeeklyAvailability, day time.Weekday) {
	av.Set(day, nil)
}

// AddRange appends a one-hour block starting where the day's last range
// ends. Fails when the day is closed or there is no room before midnight.
func AddRange(av models.WeeklyAvailability, day time.Weekday) error {
	ranges := av.RangesFor(day)
	if len(ranges) == 0 {
		return fmt.Errorf("day is not enabled")
	}
	last := ranges[len(ranges)-1]
	if last.End+1 > 24 {
		return fmt.Errorf("no room for another range before midnight")
	}
	av.Set(day, append(ranges, models.TimeRange{Start: last.End, End: last.End + 1}))
	return nil
}

// RemoveRange deletes one range; removing the last range closes the day.
func RemoveRange(av models.WeeklyAvailability, day time.Weekday, index int) error {
	ranges := av.RangesFor(day)
	if index < 0 || index >= len(ranges) {
		return fmt.Errorf("range index %d out of bounds", index)
	}
	av.Set(day, append(ranges[:index:index], ranges[index+1:]...))
	return nil
}

// SetRangeStart moves a range's opening boundary, clamped to [0, 23.5]. If
// the new start collides with the end, the end is nudged half an hour later.
func SetRangeStart(av models.WeeklyAvailability, day time.Weekday, index int, value float64) error {
	ranges := av.RangesFor(day)
	if index < 0 || index >= len(ranges) {
		return fmt.Errorf("range index %d out of bounds", index)
	}
	if value < 0 {
		value = 0
	}
	if value > 23.5 {
		value = 23.5
	}
	r := ranges[index]
	r.Start = value
	if r.End <= r.Start {
		r.End = r.Start + 0.5
	}
	ranges[index] = r
	av.Set(day, ranges)
	return nil
}

// SetRangeEnd moves a range's closing boundary, clamped to [0.5, 24]. If the
// new end collides with the start, the start is nudged half an hour earlier.
func SetRangeEnd(av models.WeeklyAvailability, day time.Weekday, index int, value float64) error {
	ranges := av.RangesFor(day)
	if index < 0 || index >= len(ranges) {
		return fmt.Errorf("range index %d out of bounds", index)
	}
	if value < 0.5 {
		value = 0.5
	}
	if value > 24 {
		value = 24
	}
	r := ranges[index]
	r.End = value
	if r.Start >= r.End {
		r.Start = r.End - 0.5
	}
	ranges[index] = r
	av.Set(day, ranges)
	return nil
}

// SaveAvailability validates every range and persists the weekly template.
func (s *DefaultProfessionalService) SaveAvailability(professionalID string, av models.WeeklyAvailability) error {
	for key, ranges := range av {
		for _, r := range ranges {
			if !r.Valid() {
				return fmt.Errorf("invalid range %.1f-%.1f on day %s", r.Start, r.End, key)
			}
		}
	}
	return s.Repo.UpdateFields(professionalID, map[string]interface{}{"availability": av})
}
