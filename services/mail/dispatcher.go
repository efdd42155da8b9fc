package mail

import (
	"context"

	"barberia/models"
)

// Message is one templated email: which EmailJS service and template to use,
// the public key that authorises the send, and the flat template parameters.
type Message struct {
	ServiceID  string            `json:"serviceId"`
	TemplateID string            `json:"templateId"`
	PublicKey  string            `json:"publicKey"`
	Params     map[string]string `json:"params"`
}

// Dispatcher sends a templated email. A nil error means the provider accepted it.
type Dispatcher interface {
	Send(ctx context.Context, msg Message) error
}

// ConfirmationParams is the fixed template mapping for a new booking.
func ConfirmationParams(appt models.Appointment) map[string]string {
	return map[string]string{
		"to_name": "Administrador",

		"name":         appt.CustomerName,
		"user_name":    appt.CustomerName,
		"service_name": appt.ServiceName,
		"stylist_name": appt.BarberID,
		"date":         appt.DateString,
		"time":         appt.TimeSlot,

		"phone":   appt.CustomerPhone,
		"email":   appt.CustomerEmail,
		"message": "Nueva reserva confirmada.",
	}
}
