package booking

import (
	"context"
	"time"

	appointmentRepo "barberia/database/repository/appointment"
	"barberia/models"
	"barberia/services/mail"

	"go.uber.org/zap"
)

const DefaultTimeout = 60 * time.Second

// Settings are the credentials and limits the engine needs at booking time.
type Settings struct {
	MailServiceID  string
	MailTemplateID string
	MailPublicKey  string
	StoreAccessKey string
	Timeout        time.Duration
	Location       *time.Location
}

// Engine mediates every read and write of appointments plus the confirmation
// email. It keeps no state between calls.
type Engine struct {
	Repo     appointmentRepo.AppointmentRepository
	Mailer   mail.Dispatcher
	Settings Settings
	Logger   *zap.Logger
	Now      func() time.Time
}

func NewEngine(repo appointmentRepo.AppointmentRepository, mailer mail.Dispatcher, settings Settings, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		Repo:     repo,
		Mailer:   mailer,
		Settings: settings,
		Logger:   logger,
		Now:      time.Now,
	}
}

// ListTakenSlots returns the booked time slots of a barber on date. Any
// failure yields an empty list: the grid then shows every slot as free and
// the re-check in CreateBooking is the only guard.
func (e *Engine) ListTakenSlots(ctx context.Context, barberID string, date time.Time) []string {
	dateString := models.DateString(date, e.location())
	e.Logger.Debug("ListTakenSlots", zap.String("barberId", barberID), zap.String("date", dateString))

	var found []models.Appointment
	err := e.withTimeout(ctx, OpListTakenSlots, func(ctx context.Context) error {
		var err error
		found, err = e.Repo.FindByBarberAndDate(ctx, barberID, dateString)
		return err
	})
	if err != nil {
		e.Logger.Error("ListTakenSlots: error fetching slots",
			zap.String("barberId", barberID), zap.String("date", dateString), zap.Error(err))
		return []string{}
	}

	slots := make([]string, 0, len(found))
	for _, a := range found {
		slots = append(slots, a.TimeSlot)
	}
	return slots
}

// CheckAvailability reports whether no appointment exists for the exact slot.
// Store failures are returned, never treated as available.
func (e *Engine) CheckAvailability(ctx context.Context, barberID string, date time.Time, timeSlot string) (bool, error) {
	dateString := models.DateString(date, e.location())
	e.Logger.Debug("CheckAvailability",
		zap.String("barberId", barberID), zap.String("date", dateString), zap.String("slot", timeSlot))

	var found []models.Appointment
	err := e.withTimeout(ctx, OpCheckAvailability, func(ctx context.Context) error {
		var err error
		found, err = e.Repo.FindBySlot(ctx, barberID, dateString, timeSlot)
		return err
	})
	if err != nil {
		e.Logger.Error("CheckAvailability: query failed", zap.Error(err))
		return false, err
	}
	return len(found) == 0, nil
}

// CreateBooking re-checks the slot, stores the appointment and sends the
// confirmation email. If the email fails after the write, the appointment
// stays stored and a *DispatchError carrying it is returned.
func (e *Engine) CreateBooking(ctx context.Context, appt models.Appointment) (*models.Appointment, error) {
	logger := e.Logger.With(
		zap.String("barberId", appt.BarberID),
		zap.String("serviceId", appt.ServiceID),
		zap.String("slot", appt.TimeSlot))
	logger.Info("CreateBooking: starting")

	// Step 1: Configuration
	if err := e.checkSettings(); err != nil {
		logger.Error("CreateBooking: configuration incomplete", zap.Error(err))
		return nil, err
	}

	// Step 2: Availability re-check
	logger.Debug("CreateBooking: step 2 checking availability")
	available, err := e.CheckAvailability(ctx, appt.BarberID, appt.Date, appt.TimeSlot)
	if err != nil {
		return nil, err
	}
	if !available {
		logger.Warn("CreateBooking: slot already booked")
		return nil, ErrSlotTaken
	}

	// Step 3: Persist
	record := appt
	record.DateString = models.DateString(appt.Date, e.location())
	record.CreatedAt = e.Now()
	logger.Debug("CreateBooking: step 3 saving appointment", zap.String("date", record.DateString))
	if err := e.withTimeout(ctx, OpSaveBooking, func(ctx context.Context) error {
		return e.Repo.Insert(ctx, &record)
	}); err != nil {
		logger.Error("CreateBooking: save failed", zap.Error(err))
		return nil, err
	}

	// Step 4: Confirmation email
	msg := mail.Message{
		ServiceID:  e.Settings.MailServiceID,
		TemplateID: e.Settings.MailTemplateID,
		PublicKey:  e.Settings.MailPublicKey,
		Params:     mail.ConfirmationParams(record),
	}
	logger.Debug("CreateBooking: step 4 sending confirmation", zap.String("appointmentId", record.ID))
	if err := e.withTimeout(ctx, OpSendConfirmation, func(ctx context.Context) error {
		return e.Mailer.Send(ctx, msg)
	}); err != nil {
		logger.Error("CreateBooking: appointment stored but confirmation failed",
			zap.String("appointmentId", record.ID), zap.Error(err))
		return nil, &DispatchError{Appointment: &record, Err: err}
	}

	logger.Info("CreateBooking: booking complete", zap.String("appointmentId", record.ID))
	return &record, nil
}

func (e *Engine) checkSettings() error {
	var missing []string
	if e.Settings.MailServiceID == "" {
		missing = append(missing, "EMAILJS_SERVICE_ID")
	}
	if e.Settings.MailTemplateID == "" {
		missing = append(missing, "EMAILJS_TEMPLATE_ID")
	}
	if e.Settings.MailPublicKey == "" {
		missing = append(missing, "EMAILJS_PUBLIC_KEY")
	}
	if e.Settings.StoreAccessKey == "" {
		missing = append(missing, "STORE_ACCESS_KEY")
	}
	if len(missing) > 0 {
		return &ConfigError{Missing: missing}
	}
	return nil
}

func (e *Engine) timeout() time.Duration {
	if e.Settings.Timeout <= 0 {
		return DefaultTimeout
	}
	return e.Settings.Timeout
}

func (e *Engine) location() *time.Location {
	if e.Settings.Location == nil {
		return time.UTC
	}
	return e.Settings.Location
}
