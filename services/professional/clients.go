package professional

import (
	"sort"

	"beautybook/models"
)

// Appointments returns the professional's appointments, oldest first.
func (s *DefaultProfessionalService) Appointments(professionalID string) ([]models.Appointment, error) {
	return s.AppointmentRepo.GetByProfessional(professionalID)
}

// Clients builds a roster from appointment history: one entry per distinct
// contact, with visit count and most recent visit. Most recent client first.
func (s *DefaultProfessionalService) Clients(professionalID string) ([]models.ClientSummary, error) {
	appointments, err := s.AppointmentRepo.GetByProfessional(professionalID)
	if err != nil {
		return nil, err
	}

	byContact := make(map[string]*models.ClientSummary)
	for _, a := range appointments {
		c, ok := byContact[a.ClientContact]
		if !ok {
			byContact[a.ClientContact] = &models.ClientSummary{
				Name:      a.ClientName,
				Contact:   a.ClientContact,
				Visits:    1,
				LastVisit: a.Start,
			}
			continue
		}
		c.Visits++
		if a.Start.After(c.LastVisit) {
			c.LastVisit = a.Start
			c.Name = a.ClientName
		}
	}

	clients := make([]models.ClientSummary, 0, len(byContact))
	for _, c := range byContact {
		clients = append(clients, *c)
	}
	sort.Slice(clients, func(i, j int) bool {
		return clients[i].LastVisit.After(clients[j].LastVisit)
	})
	return clients, nil
}
