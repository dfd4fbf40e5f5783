package booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	appointmentRepo "beautybook/database/repository/appointment"
	"beautybook/models"
	"beautybook/services/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAppointmentRepo struct {
	mu       sync.Mutex
	created  []models.Appointment
	createFn func(models.AppointmentDraft) (*models.Appointment, error)
}

func (f *fakeAppointmentRepo) Create(draft models.AppointmentDraft) (*models.Appointment, error) {
	if f.createFn != nil {
		return f.createFn(draft)
	}
	appt := models.Appointment{
		ID:             "appt-1",
		ProfessionalID: draft.ProfessionalID,
		ServiceID:      draft.ServiceID,
		ClientName:     draft.ClientName,
		ClientContact:  draft.ClientContact,
		Start:          draft.Start,
		End:            draft.End,
		CreatedAt:      time.Now(),
	}
	f.mu.Lock()
	f.created = append(f.created, appt)
	f.mu.Unlock()
	return &appt, nil
}

func (f *fakeAppointmentRepo) GetByProfessional(string) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Appointment{}, f.created...), nil
}

func (f *fakeAppointmentRepo) GetStartingBetween(time.Time, time.Time) ([]models.Appointment, error) {
	return nil, nil
}

func (f *fakeAppointmentRepo) GetByID(string) (*models.Appointment, error) {
	return nil, errors.New("not found")
}

type fakeProfessionalRepo struct {
	prof models.Professional
}

func (f *fakeProfessionalRepo) Create(*models.Professional) error        { return nil }
func (f *fakeProfessionalRepo) Update(*models.Professional) error        { return nil }
func (f *fakeProfessionalRepo) UpdateFields(string, map[string]interface{}) error {
	return nil
}
func (f *fakeProfessionalRepo) GetByID(string) (*models.Professional, error) {
	p := f.prof
	return &p, nil
}
func (f *fakeProfessionalRepo) GetByEmail(string) (*models.Professional, error) { return nil, nil }
func (f *fakeProfessionalRepo) GetAll() ([]models.Professional, error)          { return nil, nil }
func (f *fakeProfessionalRepo) Delete(string) error                             { return nil }

type fakeServiceRepo struct {
	svc models.Service
}

func (f *fakeServiceRepo) Create(*models.Service) error { return nil }
func (f *fakeServiceRepo) Update(*models.Service) error { return nil }
func (f *fakeServiceRepo) Delete(string) error          { return nil }
func (f *fakeServiceRepo) GetByID(string) (*models.Service, error) {
	s := f.svc
	return &s, nil
}
func (f *fakeServiceRepo) GetByIDs([]string) ([]models.Service, error) { return nil, nil }
func (f *fakeServiceRepo) GetAll() ([]models.Service, error)           { return nil, nil }

type fakeNotifier struct {
	mu            sync.Mutex
	confirmations int
	err           error
}

func (f *fakeNotifier) SendBookingConfirmation(context.Context, models.Professional, models.Appointment, models.Service) error {
	f.mu.Lock()
	f.confirmations++
	f.mu.Unlock()
	return f.err
}

func (f *fakeNotifier) SendAppointmentReminder(context.Context, models.Professional, models.Appointment) error {
	return nil
}

type fakeReminders struct {
	scheduled []models.Appointment
}

func (f *fakeReminders) ScheduleReminder(appt models.Appointment) error {
	f.scheduled = append(f.scheduled, appt)
	return nil
}

func newTestService(repo appointmentRepo.AppointmentRepository, notifier *fakeNotifier) *DefaultBookingService {
	if repo == nil {
		repo = &fakeAppointmentRepo{}
	}
	if notifier == nil {
		notifier = &fakeNotifier{}
	}
	return NewDefaultBookingService(
		repo,
		&fakeProfessionalRepo{prof: models.Professional{ID: "prof-1", Name: "Ana"}},
		&fakeServiceRepo{svc: models.Service{ID: "svc-1", Name: "Corte", DurationMinutes: 60}},
		schedule.NewEngine(15),
		notifier,
		&fakeReminders{},
		"+55",
	)
}

func validRequest() BookingRequest {
	return BookingRequest{
		ProfessionalID: "prof-1",
		ServiceID:      "svc-1",
		ClientName:     "Maria Silva",
		ClientContact:  "+5511988888888",
		Start:          time.Date(2026, 9, 8, 10, 0, 0, 0, time.UTC),
	}
}

func TestSubmitRejectsBlankName(t *testing.T) {
	svc := newTestService(nil, nil)

	req := validRequest()
	req.ClientName = "   "
	_, err := svc.Submit(context.Background(), req)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, CodeEmptyName, verr.Code)
}

func TestSubmitRejectsContactWithoutPrefix(t *testing.T) {
	svc := newTestService(nil, nil)

	req := validRequest()
	req.ClientContact = "11988888888"
	_, err := svc.Submit(context.Background(), req)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, CodeInvalidContact, verr.Code)
}

func TestSubmitAcceptsFormattedContact(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	svc := newTestService(repo, nil)

	req := validRequest()
	req.ClientContact = "+55 (11) 98888-8888"
	appt, err := svc.Submit(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "+5511988888888", appt.ClientContact)
}

func TestSubmitAcceptsTenDigitNumber(t *testing.T) {
	svc := newTestService(nil, nil)

	req := validRequest()
	req.ClientContact = "+551133334444"
	_, err := svc.Submit(context.Background(), req)

	require.NoError(t, err)
}

func TestSubmitComputesEndFromServiceDuration(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	svc := newTestService(repo, nil)

	appt, err := svc.Submit(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, appt.Start.Add(60*time.Minute), appt.End)
}

func TestSubmitTrimsClientName(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	svc := newTestService(repo, nil)

	req := validRequest()
	req.ClientName = "  Maria Silva  "
	appt, err := svc.Submit(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "Maria Silva", appt.ClientName)
}

func TestSubmitWrapsRepositoryFailure(t *testing.T) {
	repoErr := errors.New("write failed")
	repo := &fakeAppointmentRepo{
		createFn: func(models.AppointmentDraft) (*models.Appointment, error) {
			return nil, repoErr
		},
	}
	svc := newTestService(repo, nil)

	_, err := svc.Submit(context.Background(), validRequest())

	var serr *SubmissionError
	require.ErrorAs(t, err, &serr)
	assert.ErrorIs(t, err, repoErr)
}

func TestSubmitSurfacesSlotConflict(t *testing.T) {
	repo := &fakeAppointmentRepo{
		createFn: func(models.AppointmentDraft) (*models.Appointment, error) {
			return nil, appointmentRepo.ErrSlotConflict
		},
	}
	svc := newTestService(repo, nil)

	_, err := svc.Submit(context.Background(), validRequest())

	assert.ErrorIs(t, err, appointmentRepo.ErrSlotConflict)
}

func TestSubmitSwallowsNotifierFailure(t *testing.T) {
	notifier := &fakeNotifier{err: errors.New("fcm down")}
	svc := newTestService(nil, notifier)

	appt, err := svc.Submit(context.Background(), validRequest())

	require.NoError(t, err)
	assert.NotNil(t, appt)
	assert.Equal(t, 1, notifier.confirmations)
}

func TestSubmitRefusesConcurrentDuplicate(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	repo := &fakeAppointmentRepo{
		createFn: func(draft models.AppointmentDraft) (*models.Appointment, error) {
			close(started)
			<-release
			return &models.Appointment{ID: "appt-1", Start: draft.Start, End: draft.End}, nil
		},
	}
	svc := newTestService(repo, nil)

	errCh := make(chan error, 1)
	go func() {
		_, err := svc.Submit(context.Background(), validRequest())
		errCh <- err
	}()

	<-started
	_, err := svc.Submit(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSubmissionInFlight)

	close(release)
	require.NoError(t, <-errCh)

	// The slot frees up once the first submission settles.
	repo.createFn = nil
	_, err = svc.Submit(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestSubmitAllowsDifferentSlotsConcurrently(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	repo := &fakeAppointmentRepo{
		createFn: func(draft models.AppointmentDraft) (*models.Appointment, error) {
			select {
			case <-started:
			default:
				close(started)
				<-release
			}
			return &models.Appointment{ID: "appt", Start: draft.Start, End: draft.End}, nil
		},
	}
	svc := newTestService(repo, nil)

	errCh := make(chan error, 1)
	go func() {
		_, err := svc.Submit(context.Background(), validRequest())
		errCh <- err
	}()

	<-started
	req := validRequest()
	req.Start = req.Start.Add(2 * time.Hour)
	_, err := svc.Submit(context.Background(), req)
	assert.NoError(t, err)

	close(release)
	require.NoError(t, <-errCh)
}
