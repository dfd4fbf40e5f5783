package professional

import (
	"testing"
	"time"

	"beautybook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAppointmentRepo struct {
	appointments []models.Appointment
}

func (s *stubAppointmentRepo) Create(models.AppointmentDraft) (*models.Appointment, error) {
	return nil, nil
}

func (s *stubAppointmentRepo) GetByProfessional(string) ([]models.Appointment, error) {
	return s.appointments, nil
}

func (s *stubAppointmentRepo) GetStartingBetween(time.Time, time.Time) ([]models.Appointment, error) {
	return nil, nil
}

func (s *stubAppointmentRepo) GetByID(string) (*models.Appointment, error) {
	return nil, nil
}

type stubServiceRepo struct {
	services []models.Service
}

func (s *stubServiceRepo) Create(*models.Service) error          { return nil }
func (s *stubServiceRepo) Update(*models.Service) error          { return nil }
func (s *stubServiceRepo) Delete(string) error                   { return nil }
func (s *stubServiceRepo) GetByID(string) (*models.Service, error) { return nil, nil }
func (s *stubServiceRepo) GetByIDs([]string) ([]models.Service, error) {
	return s.services, nil
}
func (s *stubServiceRepo) GetAll() ([]models.Service, error) { return nil, nil }

func at(day, hour int) time.Time {
	return time.Date(2026, 9, day, hour, 0, 0, 0, time.UTC)
}

func TestClientsGroupsByContact(t *testing.T) {
	repo := &stubAppointmentRepo{appointments: []models.Appointment{
		{ClientName: "Maria", ClientContact: "+5511988888888", Start: at(1, 10)},
		{ClientName: "Maria S.", ClientContact: "+5511988888888", Start: at(8, 10)},
		{ClientName: "Joana", ClientContact: "+5511977777777", Start: at(3, 14)},
	}}
	svc := &DefaultProfessionalService{AppointmentRepo: repo}

	clients, err := svc.Clients("prof-1")
	require.NoError(t, err)
	require.Len(t, clients, 2)

	// Most recent visit first, latest name wins.
	assert.Equal(t, "Maria S.", clients[0].Name)
	assert.Equal(t, 2, clients[0].Visits)
	assert.Equal(t, at(8, 10), clients[0].LastVisit)
	assert.Equal(t, "Joana", clients[1].Name)
	assert.Equal(t, 1, clients[1].Visits)
}

func TestClientsEmptyHistory(t *testing.T) {
	svc := &DefaultProfessionalService{AppointmentRepo: &stubAppointmentRepo{}}

	clients, err := svc.Clients("prof-1")
	require.NoError(t, err)
	assert.Empty(t, clients)
}

func TestStatistics(t *testing.T) {
	repo := &stubAppointmentRepo{appointments: []models.Appointment{
		{ServiceID: "cut", ClientContact: "+5511988888888", Start: at(1, 10)},
		{ServiceID: "cut", ClientContact: "+5511977777777", Start: at(10, 10)},
		{ServiceID: "color", ClientContact: "+5511988888888", Start: at(15, 14)},
	}}
	services := &stubServiceRepo{services: []models.Service{
		{ID: "cut", Price: 80},
		{ID: "color", Price: 200},
	}}
	svc := &DefaultProfessionalService{AppointmentRepo: repo, ServiceRepo: services}

	stats, err := svc.Statistics("prof-1", at(5, 0))
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalAppointments)
	assert.Equal(t, 2, stats.UpcomingCount)
	assert.Equal(t, 2, stats.UniqueClients)
	assert.Equal(t, 360.0, stats.TotalRevenue)
}
