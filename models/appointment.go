package models

import "time"

// Appointment is a confirmed booking. End is computed once at creation from
// the service duration and never recomputed; appointments are immutable after
// the store assigns their identity.
type Appointment struct {
	ID             string    `bson:"id" json:"id"`
	ProfessionalID string    `bson:"professionalId" json:"professionalId"`
	ServiceID      string    `bson:"serviceId" json:"serviceId"`
	ClientName     string    `bson:"clientName" json:"clientName"`
	ClientContact  string    `bson:"clientContact" json:"clientContact"`
	Start          time.Time `bson:"startTime" json:"startTime"`
	End            time.Time `bson:"endTime" json:"endTime"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
}

// AppointmentDraft is an appointment before the store assigns id and
// creation timestamp.
type AppointmentDraft struct {
	ProfessionalID string    `json:"professionalId"`
	ServiceID      string    `json:"serviceId"`
	ClientName     string    `json:"clientName"`
	ClientContact  string    `json:"clientContact"`
	Start          time.Time `json:"startTime"`
	End            time.Time `json:"endTime"`
}
