package models

import "time"

// Service is a bookable offering. DurationMinutes is the sole driver of how
// much contiguous open time a booking consumes.
type Service struct {
	ID              string    `bson:"id" json:"id"`
	Name            string    `bson:"name" json:"name"`
	Description     string    `bson:"description" json:"description,omitempty"`
	DurationMinutes int       `bson:"durationMinutes" json:"durationMinutes"`
	Price           float64   `bson:"price" json:"price"`
	Icon            string    `bson:"icon" json:"icon,omitempty"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt,omitzero"`
}

// Duration returns the service length as a time.Duration.
func (s Service) Duration() time.Duration {
	return time.Duration(s.DurationMinutes) * time.Minute
}
