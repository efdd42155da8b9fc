package wizard

import (
	"errors"
	"regexp"
	"strings"

	"barberia/models"
	"barberia/services/booking"
	"barberia/services/catalog"

	"github.com/go-playground/validator/v10"
)

const (
	MsgContactIncomplete = "Por favor completa todos los campos (Nombre, Teléfono, Email)."
	MsgInvalidEmail      = "Por favor, ingresa un correo electrónico válido (ejemplo: usuario@dominio.com)."
)

var (
	emailPattern     = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	contactValidator = newContactValidator()
)

func newContactValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("bookingemail", isBookingEmail); err != nil {
		panic(err)
	}
	return v
}

func isBookingEmail(fl validator.FieldLevel) bool {
	return emailPattern.MatchString(strings.ToLower(fl.Field().String()))
}

// ValidateContact trims the form and checks it. An empty field is reported
// before a malformed email.
func ValidateContact(in models.ContactDetails) (models.ContactDetails, error) {
	contact := models.ContactDetails{
		Name:  strings.TrimSpace(in.Name),
		Phone: strings.TrimSpace(in.Phone),
		Email: strings.TrimSpace(in.Email),
	}

	err := contactValidator.Struct(contact)
	if err == nil {
		return contact, nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return contact, err
	}
	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			return contact, &booking.ValidationError{Message: MsgContactIncomplete}
		}
	}
	return contact, &booking.ValidationError{Message: MsgInvalidEmail}
}

// ValidateSelection checks a booking made outside the wizard against the
// catalogue and the calendar: the same rules each wizard step enforces.
// date and today are YYYY-MM-DD days in the shop zone.
func ValidateSelection(serviceID, barberID, date, today, slot string) (models.Service, error) {
	service, ok := catalog.Service(serviceID)
	if !ok {
		return models.Service{}, &booking.ValidationError{Message: MsgUnknownService}
	}
	if _, ok := catalog.Barber(barberID); !ok {
		return models.Service{}, &booking.ValidationError{Message: MsgUnknownBarber}
	}
	if date < today {
		return models.Service{}, &booking.ValidationError{Message: MsgPastDate}
	}
	if !catalog.IsTimeSlot(slot) {
		return models.Service{}, &booking.ValidationError{Message: MsgUnknownTimeSlot}
	}
	return service, nil
}
