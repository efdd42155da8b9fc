package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	sessionRepo "barberia/database/repository/session"
	"barberia/models"
	"barberia/services/booking"
	"barberia/services/wizard"
)

func TestDescribeError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"session", sessionRepo.ErrSessionNotFound, http.StatusNotFound, MsgSessionNotFound},
		{"wrong step", wizard.ErrWrongStep, http.StatusConflict, MsgWrongStep},
		{"incomplete", wizard.ErrStepIncomplete, http.StatusBadRequest, MsgStepIncomplete},
		{"in flight", wizard.ErrSubmitInFlight, http.StatusConflict, MsgSubmitInFlight},
		{"validation", &booking.ValidationError{Message: wizard.MsgInvalidEmail}, http.StatusBadRequest, wizard.MsgInvalidEmail},
		{"config", &booking.ConfigError{Missing: []string{"EMAILJS_PUBLIC_KEY"}}, http.StatusInternalServerError, booking.MsgMailConfigMissing},
		{"slot taken", booking.ErrSlotTaken, http.StatusConflict, booking.MsgSlotTaken},
		{"timeout", &booking.TimeoutError{Op: booking.OpSaveBooking}, http.StatusGatewayTimeout, "Tiempo de espera agotado para: Guardar Reserva. Revisa tu conexión."},
		{"dispatch", &booking.DispatchError{Appointment: &models.Appointment{ID: "x"}, Err: errors.New("down")}, http.StatusBadGateway, booking.MsgUnknown},
		{"remote", fmt.Errorf("find: %w", context.Canceled), http.StatusBadGateway, booking.MsgUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message, _ := describeError(tt.err)
			if status != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, status)
			}
			if message != tt.message {
				t.Fatalf("expected message %q, got %q", tt.message, message)
			}
		})
	}
}

func TestDescribeDispatchErrorCarriesAppointmentID(t *testing.T) {
	_, _, details := describeError(&booking.DispatchError{Appointment: &models.Appointment{ID: "abc"}, Err: errors.New("down")})
	if details != "appointment abc stored; confirmation email not sent: down" {
		t.Fatalf("unexpected details %q", details)
	}
}
