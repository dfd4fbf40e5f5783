package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeRangeValid(t *testing.T) {
	tests := []struct {
		name string
		r    TimeRange
		want bool
	}{
		{"normal working block", TimeRange{Start: 9, End: 18}, true},
		{"half hour block", TimeRange{Start: 9.5, End: 10}, true},
		{"full day", TimeRange{Start: 0, End: 24}, true},
		{"inverted", TimeRange{Start: 12, End: 9}, false},
		{"zero width", TimeRange{Start: 9, End: 9}, false},
		{"negative start", TimeRange{Start: -1, End: 9}, false},
		{"past midnight", TimeRange{Start: 20, End: 25}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.r.Valid())
		})
	}
}

func TestTimeRangeAnchoring(t *testing.T) {
	date := time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC)
	r := TimeRange{Start: 9.5, End: 18}

	assert.Equal(t, time.Date(2026, 9, 8, 9, 30, 0, 0, time.UTC), r.StartOn(date))
	assert.Equal(t, time.Date(2026, 9, 8, 18, 0, 0, 0, time.UTC), r.EndOn(date))
}

func TestTimeRangeAnchoringIgnoresClockOnDate(t *testing.T) {
	// The anchor date may carry a time of day; only the calendar date counts.
	date := time.Date(2026, 9, 8, 14, 45, 12, 0, time.UTC)
	r := TimeRange{Start: 9, End: 10}

	assert.Equal(t, time.Date(2026, 9, 8, 9, 0, 0, 0, time.UTC), r.StartOn(date))
}

func TestWeeklyAvailabilityRangesFor(t *testing.T) {
	av := WeeklyAvailability{
		"2": {{Start: 9, End: 18}},
	}

	assert.Equal(t, []TimeRange{{Start: 9, End: 18}}, av.RangesFor(time.Tuesday))
	assert.Nil(t, av.RangesFor(time.Monday))
}

func TestWeeklyAvailabilitySetRemovesEmptyDay(t *testing.T) {
	av := WeeklyAvailability{
		"3": {{Start: 9, End: 18}},
	}

	av.Set(time.Wednesday, nil)

	assert.NotContains(t, av, "3")
}

func TestServiceDuration(t *testing.T) {
	svc := Service{DurationMinutes: 90}
	assert.Equal(t, 90*time.Minute, svc.Duration())
}

func TestProfessionalPublicView(t *testing.T) {
	prof := Professional{
		ID:    "prof-1",
		Email: "ana@example.com",
		Name:  "Ana",
		Security: Security{
			PasswordHash: "hash",
			TokenHash:    "tokenhash",
			FCMToken:     "fcm",
		},
	}

	public := prof.PublicView()

	assert.Empty(t, public.Email)
	assert.Equal(t, Security{}, public.Security)
	assert.Equal(t, "Ana", public.Name)
}
