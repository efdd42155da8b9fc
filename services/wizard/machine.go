package wizard

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"barberia/models"
	"barberia/services/booking"
	"barberia/services/catalog"
)

var (
	ErrWrongStep      = errors.New("action not available at the current wizard step")
	ErrStepIncomplete = errors.New("the current step has no selection yet")
	ErrSubmitInFlight = errors.New("a submission is already in progress")
)

// Messages for selections the wizard refuses.
const (
	MsgMissingData     = "Error: Faltan datos de la reserva. Por favor reinicia el proceso."
	MsgUnknownService  = "El servicio seleccionado no existe."
	MsgUnknownBarber   = "El profesional seleccionado no existe."
	MsgInvalidDate     = "La fecha no es válida (formato AAAA-MM-DD)."
	MsgPastDate        = "No se pueden reservar citas en fechas pasadas."
	MsgUnknownTimeSlot = "El horario seleccionado no existe."
	MsgTimeSlotTaken   = "Este horario ya está ocupado. Elige otro."
)

func newSession(id, today string, now time.Time) *models.WizardSession {
	ws := &models.WizardSession{
		ID:         id,
		Date:       today,
		TakenSlots: []string{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	setStep(ws, models.StepService)
	return ws
}

func setStep(ws *models.WizardSession, step models.WizardStep) {
	ws.Step = step
	ws.StepName = step.String()
}

// next moves one step forward when the current step has its selection.
// Step 4 only advances through a successful submission.
func next(ws *models.WizardSession) error {
	switch ws.Step {
	case models.StepService:
		if ws.ServiceID == "" {
			return ErrStepIncomplete
		}
	case models.StepBarber:
		if ws.BarberID == "" {
			return ErrStepIncomplete
		}
	case models.StepDateTime:
		if ws.TimeSlot == "" {
			return ErrStepIncomplete
		}
	default:
		return ErrWrongStep
	}
	setStep(ws, ws.Step+1)
	return nil
}

// back never clears a selection.
func back(ws *models.WizardSession) error {
	switch ws.Step {
	case models.StepBarber, models.StepDateTime, models.StepContact:
		setStep(ws, ws.Step-1)
		return nil
	default:
		return ErrWrongStep
	}
}

func selectService(ws *models.WizardSession, serviceID string) error {
	if ws.Step != models.StepService {
		return ErrWrongStep
	}
	if _, ok := catalog.Service(serviceID); !ok {
		return &booking.ValidationError{Message: MsgUnknownService}
	}
	ws.ServiceID = serviceID
	return nil
}

func selectBarber(ws *models.WizardSession, barberID string) error {
	if ws.Step != models.StepBarber {
		return ErrWrongStep
	}
	if _, ok := catalog.Barber(barberID); !ok {
		return &booking.ValidationError{Message: MsgUnknownBarber}
	}
	ws.BarberID = barberID
	return nil
}

// selectDate accepts today or any later day; both are YYYY-MM-DD so they
// compare as strings.
func selectDate(ws *models.WizardSession, date, today string) error {
	if ws.Step != models.StepDateTime {
		return ErrWrongStep
	}
	if _, err := time.Parse(models.DateLayout, date); err != nil {
		return &booking.ValidationError{Message: MsgInvalidDate}
	}
	if date < today {
		return &booking.ValidationError{Message: MsgPastDate}
	}
	ws.Date = date
	return nil
}

func selectTime(ws *models.WizardSession, slot string) error {
	if ws.Step != models.StepDateTime {
		return ErrWrongStep
	}
	if !catalog.IsTimeSlot(slot) {
		return &booking.ValidationError{Message: MsgUnknownTimeSlot}
	}
	if slices.Contains(ws.TakenSlots, slot) {
		return &booking.ValidationError{Message: MsgTimeSlotTaken}
	}
	ws.TimeSlot = slot
	return nil
}

// applyTakenSlots records the latest taken list and drops a selected slot
// that is no longer free.
func applyTakenSlots(ws *models.WizardSession, slots []string) {
	ws.TakenSlots = slices.Clone(slots)
	if ws.TakenSlots == nil {
		ws.TakenSlots = []string{}
	}
	if ws.TimeSlot != "" && slices.Contains(ws.TakenSlots, ws.TimeSlot) {
		ws.TimeSlot = ""
	}
}

func hasBookingData(ws *models.WizardSession) bool {
	return ws.ServiceID != "" && ws.BarberID != "" && ws.TimeSlot != ""
}

// Summary renders the one-line booking recap shown on confirmation, or ""
// while a selection is missing.
func Summary(ws *models.WizardSession) string {
	if !hasBookingData(ws) {
		return ""
	}
	service, _ := catalog.Service(ws.ServiceID)
	barber, _ := catalog.Barber(ws.BarberID)
	return fmt.Sprintf("%s / %s / %s — %s", service.Name, barber.Name, ws.Date, ws.TimeSlot)
}
