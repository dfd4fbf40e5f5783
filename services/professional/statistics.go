package professional

import (
	"time"

	"beautybook/models"
)

// Statistics summarizes the professional's book of business as of now.
// Revenue counts every booked appointment at its service's current price.
func (s *DefaultProfessionalService) Statistics(professionalID string, now time.Time) (*models.Statistics, error) {
	appointments, err := s.AppointmentRepo.GetByProfessional(professionalID)
	if err != nil {
		return nil, err
	}

	serviceIDs := make([]string, 0, len(appointments))
	seen := make(map[string]struct{})
	for _, a := range appointments {
		if _, ok := seen[a.ServiceID]; !ok {
			seen[a.ServiceID] = struct{}{}
			serviceIDs = append(serviceIDs, a.ServiceID)
		}
	}

	prices := make(map[string]float64)
	if len(serviceIDs) > 0 {
		services, err := s.ServiceRepo.GetByIDs(serviceIDs)
		if err != nil {
			return nil, err
		}
		for _, svc := range services {
			prices[svc.ID] = svc.Price
		}
	}

	stats := &models.Statistics{TotalAppointments: len(appointments)}
	clients := make(map[string]struct{})
	for _, a := range appointments {
		if a.Start.After(now) {
			stats.UpcomingCount++
		}
		clients[a.ClientContact] = struct{}{}
		stats.TotalRevenue += prices[a.ServiceID]
	}
	stats.UniqueClients = len(clients)
	return stats, nil
}
