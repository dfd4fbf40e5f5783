package models

import (
	"math"
	"strconv"
	"time"
)

// TimeRange is a single open block within a weekday, expressed in fractional
// hours from midnight at 0.5 granularity (9.5 == 09:30). End is exclusive and
// a range may not cross midnight.
type TimeRange struct {
	Start float64 `bson:"start" json:"start"`
	End   float64 `bson:"end" json:"end"`
}

// Valid reports whether the range can produce bookable time. The editing UI
// keeps ranges sane; reads skip anything malformed instead of failing.
func (r TimeRange) Valid() bool {
	return r.Start >= 0 && r.End <= 24 && r.End > r.Start
}

// StartOn anchors the range's opening boundary on a calendar date.
func (r TimeRange) StartOn(date time.Time) time.Time {
	return atFractionalHour(date, r.Start)
}

// EndOn anchors the range's closing boundary on a calendar date.
func (r TimeRange) EndOn(date time.Time) time.Time {
	return atFractionalHour(date, r.End)
}

func atFractionalHour(date time.Time, hours float64) time.Time {
	midnight := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return midnight.Add(time.Duration(math.Round(hours*60)) * time.Minute)
}

// WeeklyAvailability maps a weekday ("0" = Sunday .. "6" = Saturday, string
// keys for BSON/JSON compatibility) to that day's open ranges. A missing key
// means the professional does not work that day. Ranges within a day may
// overlap; overlapping coverage is simply treated as open time.
type WeeklyAvailability map[string][]TimeRange

// RangesFor returns the open ranges for a weekday, nil when closed.
func (w WeeklyAvailability) RangesFor(day time.Weekday) []TimeRange {
	return w[strconv.Itoa(int(day))]
}

// Set replaces the ranges for a weekday, removing the key when empty.
func (w WeeklyAvailability) Set(day time.Weekday, ranges []TimeRange) {
	key := strconv.Itoa(int(day))
	if len(ranges) == 0 {
		delete(w, key)
		return
	}
	w[key] = ranges
}

// Security holds a professional's credential material. Plain values travel
// only over the wire; only hashes are persisted.
type Security struct {
	Password     string `bson:"-" json:"password,omitempty"`
	PasswordHash string `bson:"passwordHash" json:"-"`
	Token        string `bson:"-" json:"token,omitempty"`
	TokenHash    string `bson:"tokenHash" json:"-"`
	FCMToken     string `bson:"fcmToken,omitempty" json:"fcmToken,omitempty"`
}

// Professional owns a weekly availability template, a booking granularity and
// the ids of the services it offers. Service records themselves are shared
// references, not owned.
type Professional struct {
	ID                  string             `bson:"id" json:"id"`
	Email               string             `bson:"email" json:"email,omitempty"`
	Name                string             `bson:"name" json:"name"`
	Specialty           string             `bson:"specialty" json:"specialty,omitempty"`
	Bio                 string             `bson:"bio" json:"bio,omitempty"`
	PhotoURL            string             `bson:"photoUrl" json:"photoUrl,omitempty"`
	ServiceIDs          []string           `bson:"serviceIds" json:"serviceIds"`
	Availability        WeeklyAvailability `bson:"availability" json:"availability"`
	SlotIntervalMinutes int                `bson:"slotIntervalMinutes" json:"slotIntervalMinutes,omitempty"`
	Security            Security           `bson:"security" json:"security,omitzero"`
	CreatedAt           time.Time          `bson:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt           time.Time          `bson:"updatedAt" json:"updatedAt,omitzero"`
}

// PublicView strips credential material for unauthenticated consumers.
func (p Professional) PublicView() Professional {
	p.Email = ""
	p.Security = Security{}
	return p
}
