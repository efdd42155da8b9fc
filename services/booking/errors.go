package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"barberia/models"
)

// Operation names, as shown to the customer in timeout messages.
const (
	OpCheckAvailability = "Verificar Disponibilidad"
	OpListTakenSlots    = "Obtener Horarios"
	OpSaveBooking       = "Guardar Reserva"
	OpSendConfirmation  = "Enviar Confirmación"
)

// User-facing messages.
const (
	MsgMailConfigMissing  = "Error de configuración: Faltan credenciales de EmailJS."
	MsgStoreConfigMissing = "Error de configuración: Faltan credenciales de la base de datos."
	MsgSlotTaken          = "Lo sentimos, este horario ya ha sido reservado."
	MsgUnknown            = "Hubo un error desconocido al procesar la reserva."
	MsgTimeoutFormat      = "Tiempo de espera agotado para: %s. Revisa tu conexión."
)

// ErrSlotTaken means the authoritative re-check found an appointment in the slot.
var ErrSlotTaken = errors.New("time slot already booked")

// ConfigError lists required credentials that are not configured.
type ConfigError struct {
	Missing []string
}

func (e *ConfigError) Error() string {
	return "missing configuration: " + strings.Join(e.Missing, ", ")
}

func (e *ConfigError) missingMail() bool {
	for _, m := range e.Missing {
		if strings.HasPrefix(m, "EMAILJS_") {
			return true
		}
	}
	return false
}

// TimeoutError reports a remote call that did not finish before its deadline.
type TimeoutError struct {
	Op string
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s: timed out", e.Op)
}

func (e *TimeoutError) Unwrap() error {
	return context.DeadlineExceeded
}

// ValidationError is a client-side input problem; it never reaches the network.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// DispatchError means the appointment was stored but the confirmation email
// was not sent. The stored appointment is not rolled back.
type DispatchError struct {
	Appointment *models.Appointment
	Err         error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("appointment %s stored but confirmation failed: %v", e.Appointment.ID, e.Err)
}

func (e *DispatchError) Unwrap() error {
	return e.Err
}

// UserMessage maps an engine or wizard error to the Spanish text shown to the customer.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var (
		cfgErr     *ConfigError
		timeoutErr *TimeoutError
		validErr   *ValidationError
	)
	switch {
	case errors.As(err, &validErr):
		return validErr.Message
	case errors.As(err, &cfgErr):
		if cfgErr.missingMail() {
			return MsgMailConfigMissing
		}
		return MsgStoreConfigMissing
	case errors.Is(err, ErrSlotTaken):
		return MsgSlotTaken
	case errors.As(err, &timeoutErr):
		return fmt.Sprintf(MsgTimeoutFormat, timeoutErr.Op)
	default:
		return MsgUnknown
	}
}
