package handlers

import (
	"context"
	"net/http"
	"time"

	"barberia/models"
	"barberia/services/wizard"
	"barberia/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingEngine is the engine surface exposed over HTTP.
type BookingEngine interface {
	ListTakenSlots(ctx context.Context, barberID string, date time.Time) []string
	CheckAvailability(ctx context.Context, barberID string, date time.Time, timeSlot string) (bool, error)
	CreateBooking(ctx context.Context, appt models.Appointment) (*models.Appointment, error)
}

// BookingHandler exposes the booking engine directly, without a wizard session.
type BookingHandler struct {
	Engine   BookingEngine
	Location *time.Location
	Now      func() time.Time
}

func NewBookingHandler(engine BookingEngine, loc *time.Location) *BookingHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &BookingHandler{Engine: engine, Location: loc, Now: time.Now}
}

type createAppointmentRequest struct {
	BarberID      string `json:"barberId" binding:"required"`
	ServiceID     string `json:"serviceId" binding:"required"`
	Date          string `json:"date" binding:"required"`
	TimeSlot      string `json:"timeSlot" binding:"required"`
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	CustomerEmail string `json:"customerEmail"`
}

// TakenSlotsHandler lists the booked slots of a barber on a day. Store
// failures yield an empty list.
func (h *BookingHandler) TakenSlotsHandler(c *gin.Context) {
	barberID := c.Query("barberId")
	date, ok := h.parseDateParam(c)
	if !ok {
		return
	}
	if barberID == "" {
		badRequest(c, "barberId is required")
		return
	}

	slots := h.Engine.ListTakenSlots(c.Request.Context(), barberID, date)
	c.JSON(http.StatusOK, gin.H{
		"barberId":   barberID,
		"date":       models.DateString(date, h.Location),
		"takenSlots": slots,
	})
}

// AvailabilityHandler reports whether one exact slot is free.
func (h *BookingHandler) AvailabilityHandler(c *gin.Context) {
	barberID := c.Query("barberId")
	timeSlot := c.Query("timeSlot")
	date, ok := h.parseDateParam(c)
	if !ok {
		return
	}
	if barberID == "" || timeSlot == "" {
		badRequest(c, "barberId and timeSlot are required")
		return
	}

	available, err := h.Engine.CheckAvailability(c.Request.Context(), barberID, date, timeSlot)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"available": available})
}

// CreateAppointmentHandler books an appointment in one call. Service, barber
// and time slot must come from the catalogue and the day must not be past;
// the service name is always taken from the catalogue.
func (h *BookingHandler) CreateAppointmentHandler(c *gin.Context) {
	var req createAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	date, err := parseDate(req.Date, h.Location)
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	service, err := wizard.ValidateSelection(req.ServiceID, req.BarberID,
		models.DateString(date, h.Location), models.DateString(h.Now(), h.Location), req.TimeSlot)
	if err != nil {
		respondError(c, err)
		return
	}
	contact, err := wizard.ValidateContact(models.ContactDetails{
		Name:  req.CustomerName,
		Phone: req.CustomerPhone,
		Email: req.CustomerEmail,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	appt, err := h.Engine.CreateBooking(c.Request.Context(), models.Appointment{
		BarberID:      req.BarberID,
		ServiceID:     req.ServiceID,
		ServiceName:   service.Name,
		Date:          date,
		TimeSlot:      req.TimeSlot,
		CustomerName:  contact.Name,
		CustomerPhone: contact.Phone,
		CustomerEmail: contact.Email,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	utils.ContextLogger(c).Info("Appointment created", zap.String("appointmentId", appt.ID))
	c.JSON(http.StatusCreated, appt)
}

func (h *BookingHandler) parseDateParam(c *gin.Context) (time.Time, bool) {
	raw := c.Query("date")
	if raw == "" {
		badRequest(c, "date is required")
		return time.Time{}, false
	}
	date, err := parseDate(raw, h.Location)
	if err != nil {
		badRequest(c, err.Error())
		return time.Time{}, false
	}
	return date, true
}

// parseDate accepts a YYYY-MM-DD day in loc or a full RFC 3339 instant.
func parseDate(raw string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	date, err := models.ParseDate(raw, loc)
	if err == nil {
		return date, nil
	}
	if instant, rfcErr := time.Parse(time.RFC3339, raw); rfcErr == nil {
		return instant, nil
	}
	return time.Time{}, err
}
