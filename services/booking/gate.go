package booking

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	appointmentRepo "beautybook/database/repository/appointment"
	professionalRepo "beautybook/database/repository/professional"
	serviceRepo "beautybook/database/repository/service"
	"beautybook/models"
	"beautybook/services/notification"
	"beautybook/services/schedule"
	"beautybook/utils"

	"go.uber.org/zap"
)

// contactStripper removes whitespace, parentheses and dashes before the
// phone number is matched.
var contactStripper = regexp.MustCompile(`[\s()-]`)

// DefaultBookingService is the production implementation of BookingService.
type DefaultBookingService struct {
	AppointmentRepo  appointmentRepo.AppointmentRepository
	ProfessionalRepo professionalRepo.ProfessionalRepository
	ServiceRepo      serviceRepo.ServiceRepository
	Engine           *schedule.Engine
	Notifier         notification.NotificationService
	Reminders        ReminderScheduler

	// Now returns the current time. Injected so slot resolution and the
	// past-slot check are deterministic under test.
	Now func() time.Time

	contactPattern *regexp.Regexp

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewDefaultBookingService wires a booking service for the given country
// phone prefix, e.g. "+55".
func NewDefaultBookingService(
	appointments appointmentRepo.AppointmentRepository,
	professionals professionalRepo.ProfessionalRepository,
	services serviceRepo.ServiceRepository,
	engine *schedule.Engine,
	notifier notification.NotificationService,
	reminders ReminderScheduler,
	phonePrefix string,
) *DefaultBookingService {
	return &DefaultBookingService{
		AppointmentRepo:  appointments,
		ProfessionalRepo: professionals,
		ServiceRepo:      services,
		Engine:           engine,
		Notifier:         notifier,
		Reminders:        reminders,
		Now:              time.Now,
		contactPattern:   regexp.MustCompile(`^` + regexp.QuoteMeta(phonePrefix) + `\d{10,11}$`),
		inFlight:         make(map[string]struct{}),
	}
}

// ValidateRequest checks the client-supplied fields. The name must be
// non-blank; the contact must be a full national phone number with country
// prefix, after formatting characters are stripped.
func (s *DefaultBookingService) ValidateRequest(req BookingRequest) error {
	if strings.TrimSpace(req.ClientName) == "" {
		return &ValidationError{Code: CodeEmptyName, Message: "client name must not be empty"}
	}
	contact := contactStripper.ReplaceAllString(req.ClientContact, "")
	if !s.contactPattern.MatchString(contact) {
		return &ValidationError{Code: CodeInvalidContact, Message: "client contact is not a valid phone number"}
	}
	return nil
}

// Submit validates the request, guards against concurrent duplicates for the
// same professional and start time, persists the appointment and fires a
// confirmation push plus a scheduled reminder. Notification failures do not
// fail the booking.
func (s *DefaultBookingService) Submit(ctx context.Context, req BookingRequest) (*models.Appointment, error) {
	logger := utils.GetLogger()

	if err := s.ValidateRequest(req); err != nil {
		return nil, err
	}

	key := req.ProfessionalID + "|" + req.Start.UTC().Format(time.RFC3339)
	s.mu.Lock()
	if _, busy := s.inFlight[key]; busy {
		s.mu.Unlock()
		return nil, ErrSubmissionInFlight
	}
	s.inFlight[key] = struct{}{}
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		delete(s.inFlight, key)
		s.mu.Unlock()
	}()

	prof, err := s.ProfessionalRepo.GetByID(req.ProfessionalID)
	if err != nil {
		return nil, &SubmissionError{Cause: err}
	}
	svc, err := s.ServiceRepo.GetByID(req.ServiceID)
	if err != nil {
		return nil, &SubmissionError{Cause: err}
	}

	draft := models.AppointmentDraft{
		ProfessionalID: req.ProfessionalID,
		ServiceID:      req.ServiceID,
		ClientName:     strings.TrimSpace(req.ClientName),
		ClientContact:  contactStripper.ReplaceAllString(req.ClientContact, ""),
		Start:          req.Start,
		End:            req.Start.Add(svc.Duration()),
	}

	appt, err := s.AppointmentRepo.Create(draft)
	if err != nil {
		return nil, &SubmissionError{Cause: err}
	}

	if s.Notifier != nil {
		if err := s.Notifier.SendBookingConfirmation(ctx, *prof, *appt, *svc); err != nil {
			logger.Warn("failed to send booking confirmation",
				zap.String("appointmentId", appt.ID), zap.Error(err))
		}
	}
	if s.Reminders != nil {
		if err := s.Reminders.ScheduleReminder(*appt); err != nil {
			logger.Warn("failed to schedule reminder",
				zap.String("appointmentId", appt.ID), zap.Error(err))
		}
	}

	return appt, nil
}

// DaySlots resolves the professional's availability for a single date into
// candidate slots for the given service.
func (s *DefaultBookingService) DaySlots(professionalID, serviceID string, date time.Time) ([]models.CandidateSlot, error) {
	prof, svc, appointments, err := s.loadScheduleInputs(professionalID, serviceID)
	if err != nil {
		return nil, err
	}
	return s.Engine.DaySlots(date, *prof, *svc, appointments, s.Now()), nil
}

// MonthAvailability reports, per day of the month, whether at least one
// bookable slot remains.
func (s *DefaultBookingService) MonthAvailability(professionalID, serviceID string, year int, month time.Month, loc *time.Location) ([]models.DayAvailability, error) {
	prof, svc, appointments, err := s.loadScheduleInputs(professionalID, serviceID)
	if err != nil {
		return nil, err
	}
	return s.Engine.MonthAvailability(year, month, loc, *prof, *svc, appointments, s.Now()), nil
}

func (s *DefaultBookingService) loadScheduleInputs(professionalID, serviceID string) (*models.Professional, *models.Service, []models.Appointment, error) {
	prof, err := s.ProfessionalRepo.GetByID(professionalID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load professional: %w", err)
	}
	svc, err := s.ServiceRepo.GetByID(serviceID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load service: %w", err)
	}
	appointments, err := s.AppointmentRepo.GetByProfessional(professionalID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load appointments: %w", err)
	}
	return prof, svc, appointments, nil
}
