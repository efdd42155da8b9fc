// Package wizard drives the five-step booking flow for one customer session.
package wizard

import (
	"context"
	"errors"
	"time"

	sessionRepo "barberia/database/repository/session"
	"barberia/models"
	"barberia/services/booking"
	"barberia/services/catalog"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BookingEngine is the part of booking.Engine the wizard needs.
type BookingEngine interface {
	ListTakenSlots(ctx context.Context, barberID string, date time.Time) []string
	CreateBooking(ctx context.Context, appt models.Appointment) (*models.Appointment, error)
}

const (
	// DefaultSubmitTimeout bounds how long a Loading flag blocks the session.
	// It outlasts the engine's three remote calls at their default timeout.
	DefaultSubmitTimeout = 5 * time.Minute
	// sessionSaveTimeout bounds the detached save that ends a submission.
	sessionSaveTimeout = 5 * time.Second
)

type Service struct {
	Sessions sessionRepo.SessionRepository
	Engine   BookingEngine
	Location *time.Location
	Logger   *zap.Logger
	Now      func() time.Time
	// SubmitTimeout is the age after which a Loading flag left behind by a
	// failed save is ignored.
	SubmitTimeout time.Duration
}

func NewService(sessions sessionRepo.SessionRepository, engine BookingEngine, loc *time.Location, logger *zap.Logger) *Service {
	if loc == nil {
		loc = time.UTC
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		Sessions: sessions,
		Engine:   engine,
		Location: loc,
		Logger:   logger,
		Now:      time.Now,

		SubmitTimeout: DefaultSubmitTimeout,
	}
}

// Open starts a fresh session at step 1 with today's date preselected.
func (s *Service) Open(ctx context.Context) (*models.WizardSession, error) {
	now := s.Now()
	ws := newSession(uuid.New().String(), s.today(), now)
	if err := s.Sessions.Create(ctx, ws); err != nil {
		s.Logger.Error("Open: failed to store session", zap.Error(err))
		return nil, err
	}
	s.Logger.Info("Open: wizard session started", zap.String("sessionId", ws.ID))
	return ws, nil
}

func (s *Service) Get(ctx context.Context, id string) (*models.WizardSession, error) {
	return s.Sessions.Get(ctx, id)
}

func (s *Service) SelectService(ctx context.Context, id, serviceID string) (*models.WizardSession, error) {
	return s.mutate(ctx, id, func(ws *models.WizardSession) error {
		return selectService(ws, serviceID)
	})
}

func (s *Service) SelectBarber(ctx context.Context, id, barberID string) (*models.WizardSession, error) {
	return s.mutate(ctx, id, func(ws *models.WizardSession) error {
		if err := selectBarber(ws, barberID); err != nil {
			return err
		}
		s.refreshTakenSlots(ctx, ws)
		return nil
	})
}

func (s *Service) SelectDate(ctx context.Context, id, date string) (*models.WizardSession, error) {
	return s.mutate(ctx, id, func(ws *models.WizardSession) error {
		if err := selectDate(ws, date, s.today()); err != nil {
			return err
		}
		s.refreshTakenSlots(ctx, ws)
		return nil
	})
}

func (s *Service) SelectTime(ctx context.Context, id, slot string) (*models.WizardSession, error) {
	return s.mutate(ctx, id, func(ws *models.WizardSession) error {
		return selectTime(ws, slot)
	})
}

func (s *Service) Next(ctx context.Context, id string) (*models.WizardSession, error) {
	return s.mutate(ctx, id, func(ws *models.WizardSession) error {
		if err := next(ws); err != nil {
			return err
		}
		if ws.Step == models.StepDateTime {
			s.refreshTakenSlots(ctx, ws)
		}
		return nil
	})
}

func (s *Service) Back(ctx context.Context, id string) (*models.WizardSession, error) {
	return s.mutate(ctx, id, back)
}

// Submit validates the contact form and books the appointment. Validation
// failures never reach the engine. On any failure the session stays on
// step 4 with LastError set.
func (s *Service) Submit(ctx context.Context, id string, contact models.ContactDetails) (*models.WizardSession, error) {
	ws, err := s.Sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.inFlight(ws) {
		return ws, ErrSubmitInFlight
	}
	ws.Loading = false
	if ws.Step != models.StepContact {
		return ws, ErrWrongStep
	}
	logger := s.Logger.With(zap.String("sessionId", id))

	if !hasBookingData(ws) {
		return s.fail(ctx, ws, &booking.ValidationError{Message: MsgMissingData})
	}
	cleaned, err := ValidateContact(contact)
	ws.Contact = cleaned
	if err != nil {
		logger.Debug("Submit: contact rejected", zap.Error(err))
		return s.fail(ctx, ws, err)
	}

	date, err := models.ParseDate(ws.Date, s.Location)
	if err != nil {
		return s.fail(ctx, ws, &booking.ValidationError{Message: MsgInvalidDate})
	}
	service, _ := catalog.Service(ws.ServiceID)
	appt := models.Appointment{
		BarberID:      ws.BarberID,
		ServiceID:     ws.ServiceID,
		ServiceName:   service.Name,
		Date:          date,
		TimeSlot:      ws.TimeSlot,
		CustomerName:  cleaned.Name,
		CustomerPhone: cleaned.Phone,
		CustomerEmail: cleaned.Email,
	}

	ws.Loading = true
	ws.LastError = ""
	if err := s.save(ctx, ws); err != nil {
		return nil, err
	}

	logger.Info("Submit: creating booking")
	created, bookErr := s.Engine.CreateBooking(ctx, appt)
	ws.Loading = false

	// The Loading flag must be cleared even when the caller has gone away.
	saveCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sessionSaveTimeout)
	defer cancel()

	if bookErr != nil {
		logger.Warn("Submit: booking failed", zap.Error(bookErr))
		ws.LastError = booking.UserMessage(bookErr)
		if err := s.save(saveCtx, ws); err != nil && !errors.Is(err, sessionRepo.ErrSessionNotFound) {
			logger.Error("Submit: failed to store session", zap.Error(err))
		}
		return ws, bookErr
	}

	ws.Confirmed = created
	setStep(ws, models.StepConfirmed)
	if err := s.save(saveCtx, ws); err != nil {
		// A session closed mid-submission stays closed; the booking stands.
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			logger.Info("Submit: session closed before the booking finished",
				zap.String("appointmentId", created.ID))
		} else {
			logger.Error("Submit: failed to store session", zap.Error(err))
		}
	}
	logger.Info("Submit: booking confirmed", zap.String("appointmentId", created.ID))
	return ws, nil
}

// Close discards the session from any step.
func (s *Service) Close(ctx context.Context, id string) error {
	if err := s.Sessions.Delete(ctx, id); err != nil {
		s.Logger.Error("Close: failed to delete session", zap.String("sessionId", id), zap.Error(err))
		return err
	}
	return nil
}

func (s *Service) mutate(ctx context.Context, id string, fn func(ws *models.WizardSession) error) (*models.WizardSession, error) {
	ws, err := s.Sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.inFlight(ws) {
		return ws, ErrSubmitInFlight
	}
	ws.Loading = false
	if err := fn(ws); err != nil {
		return ws, err
	}
	ws.LastError = ""
	if err := s.save(ctx, ws); err != nil {
		return nil, err
	}
	return ws, nil
}

// inFlight reports a submission still running. A Loading flag older than
// SubmitTimeout belongs to a submission whose final save was lost.
func (s *Service) inFlight(ws *models.WizardSession) bool {
	if !ws.Loading {
		return false
	}
	timeout := s.SubmitTimeout
	if timeout <= 0 {
		timeout = DefaultSubmitTimeout
	}
	return s.Now().Sub(ws.UpdatedAt) < timeout
}

func (s *Service) fail(ctx context.Context, ws *models.WizardSession, cause error) (*models.WizardSession, error) {
	ws.LastError = booking.UserMessage(cause)
	if err := s.save(ctx, ws); err != nil {
		return nil, err
	}
	return ws, cause
}

func (s *Service) save(ctx context.Context, ws *models.WizardSession) error {
	ws.Summary = Summary(ws)
	ws.UpdatedAt = s.Now()
	return s.Sessions.Update(ctx, ws)
}

func (s *Service) refreshTakenSlots(ctx context.Context, ws *models.WizardSession) {
	if ws.BarberID == "" {
		return
	}
	date, err := models.ParseDate(ws.Date, s.Location)
	if err != nil {
		return
	}
	applyTakenSlots(ws, s.Engine.ListTakenSlots(ctx, ws.BarberID, date))
}

func (s *Service) today() string {
	return models.DateString(s.Now(), s.Location)
}
