package models

import "time"

// CandidateSlot is an ephemeral start-time/availability pair produced during
// slot computation. It is recomputed on every pass and never persisted.
type CandidateSlot struct {
	Time        time.Time `json:"time"`
	IsAvailable bool      `json:"isAvailable"`
}

// DayAvailability marks whether a calendar day offers at least one free slot.
// Used to decorate the month calendar grid.
type DayAvailability struct {
	Date         string `json:"date"` // "2006-01-02"
	HasAvailable bool   `json:"hasAvailable"`
}
