package handlers

import (
	"errors"
	"net/http"

	sessionRepo "barberia/database/repository/session"
	"barberia/services/booking"
	"barberia/services/wizard"
	"barberia/utils"

	"github.com/gin-gonic/gin"
)

const (
	MsgSessionNotFound = "La sesión de reserva no existe o ha caducado. Vuelve a empezar."
	MsgWrongStep       = "Esta acción no está disponible en el paso actual."
	MsgStepIncomplete  = "Completa este paso antes de continuar."
	MsgSubmitInFlight  = "Ya estamos confirmando tu reserva. Espera un momento."
	MsgNotConfirmed    = "La reserva aún no está confirmada."
	MsgInvalidRequest  = "Solicitud no válida."
)

// respondError maps a service error to its HTTP status and the customer-facing message.
func respondError(c *gin.Context, err error) {
	status, message, details := describeError(err)
	utils.JSONError(c, status, message, details)
}

func describeError(err error) (int, string, string) {
	var (
		validErr    *booking.ValidationError
		cfgErr      *booking.ConfigError
		timeoutErr  *booking.TimeoutError
		dispatchErr *booking.DispatchError
	)
	switch {
	case errors.Is(err, sessionRepo.ErrSessionNotFound):
		return http.StatusNotFound, MsgSessionNotFound, err.Error()
	case errors.Is(err, wizard.ErrWrongStep):
		return http.StatusConflict, MsgWrongStep, err.Error()
	case errors.Is(err, wizard.ErrStepIncomplete):
		return http.StatusBadRequest, MsgStepIncomplete, err.Error()
	case errors.Is(err, wizard.ErrSubmitInFlight):
		return http.StatusConflict, MsgSubmitInFlight, err.Error()
	case errors.As(err, &validErr):
		return http.StatusBadRequest, validErr.Message, ""
	case errors.As(err, &cfgErr):
		return http.StatusInternalServerError, booking.UserMessage(err), err.Error()
	case errors.Is(err, booking.ErrSlotTaken):
		return http.StatusConflict, booking.MsgSlotTaken, ""
	case errors.As(err, &dispatchErr):
		return http.StatusBadGateway, booking.MsgUnknown, "appointment " + dispatchErr.Appointment.ID + " stored; confirmation email not sent: " + dispatchErr.Err.Error()
	case errors.As(err, &timeoutErr):
		return http.StatusGatewayTimeout, booking.UserMessage(err), err.Error()
	default:
		return http.StatusBadGateway, booking.MsgUnknown, err.Error()
	}
}

func badRequest(c *gin.Context, details string) {
	utils.JSONError(c, http.StatusBadRequest, MsgInvalidRequest, details)
}
