package handlers

import (
	"net/http"
	"time"

	"barberia/models"
	"barberia/services/calendar"
	"barberia/services/wizard"
	"barberia/utils"

	"github.com/gin-gonic/gin"
)

// CalendarHandler exports a confirmed wizard booking.
type CalendarHandler struct {
	Wizard       *wizard.Service
	Location     *time.Location
	ShopLocation string
	Now          func() time.Time
}

func NewCalendarHandler(w *wizard.Service, loc *time.Location, shopLocation string) *CalendarHandler {
	return &CalendarHandler{Wizard: w, Location: loc, ShopLocation: shopLocation, Now: time.Now}
}

func (h *CalendarHandler) LinkHandler(c *gin.Context) {
	ws, ev, ok := h.confirmedEvent(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": calendar.GoogleURL(ev), "summary": ws.Summary})
}

func (h *CalendarHandler) ICSHandler(c *gin.Context) {
	_, ev, ok := h.confirmedEvent(c)
	if !ok {
		return
	}
	c.Header("Content-Disposition", "attachment; filename="+calendar.ICSFilename)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(calendar.ICS(ev, h.Now())))
}

func (h *CalendarHandler) QRHandler(c *gin.Context) {
	_, ev, ok := h.confirmedEvent(c)
	if !ok {
		return
	}
	png, err := calendar.QRCode(calendar.GoogleURL(ev))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "No se pudo generar el código QR.", err.Error())
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

func (h *CalendarHandler) ReceiptHandler(c *gin.Context) {
	ws, ev, ok := h.confirmedEvent(c)
	if !ok {
		return
	}
	pdf, err := calendar.Receipt(*ws.Confirmed, ev, ws.Summary)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "No se pudo generar el comprobante.", err.Error())
		return
	}
	c.Header("Content-Disposition", "attachment; filename=reserva-"+ws.Confirmed.ID+".pdf")
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func (h *CalendarHandler) confirmedEvent(c *gin.Context) (*models.WizardSession, calendar.Event, bool) {
	ws, err := h.Wizard.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return nil, calendar.Event{}, false
	}
	if ws.Step != models.StepConfirmed || ws.Confirmed == nil {
		utils.JSONError(c, http.StatusConflict, MsgNotConfirmed, "session step is "+ws.StepName)
		return nil, calendar.Event{}, false
	}
	ev, err := calendar.FromAppointment(*ws.Confirmed, h.Location, h.ShopLocation)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, MsgInvalidRequest, err.Error())
		return nil, calendar.Event{}, false
	}
	return ws, ev, true
}
