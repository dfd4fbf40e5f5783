package models

import "time"

// ClientSummary is a dashboard roster entry derived from a professional's
// appointment history. Clients are keyed by contact; the most recent booking
// wins the display name.
type ClientSummary struct {
	Name      string    `json:"name"`
	Contact   string    `json:"contact"`
	Visits    int       `json:"visits"`
	LastVisit time.Time `json:"lastVisit"`
}

// Statistics summarizes a professional's booking activity for the dashboard.
type Statistics struct {
	TotalAppointments int     `json:"totalAppointments"`
	UpcomingCount     int     `json:"upcomingCount"`
	UniqueClients     int     `json:"uniqueClients"`
	TotalRevenue      float64 `json:"totalRevenue"`
}
