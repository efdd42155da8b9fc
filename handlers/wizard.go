package handlers

import (
	"net/http"

	"barberia/models"
	"barberia/services/wizard"

	"github.com/gin-gonic/gin"
)

// WizardHandler exposes the booking wizard, one session per customer.
type WizardHandler struct {
	Wizard *wizard.Service
}

func NewWizardHandler(w *wizard.Service) *WizardHandler {
	return &WizardHandler{Wizard: w}
}

type selectServiceRequest struct {
	ServiceID string `json:"serviceId" binding:"required"`
}

type selectBarberRequest struct {
	BarberID string `json:"barberId" binding:"required"`
}

type selectDateRequest struct {
	Date string `json:"date" binding:"required"`
}

type selectTimeRequest struct {
	TimeSlot string `json:"timeSlot" binding:"required"`
}

func (h *WizardHandler) OpenHandler(c *gin.Context) {
	ws, err := h.Wizard.Open(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ws)
}

func (h *WizardHandler) GetHandler(c *gin.Context) {
	ws, err := h.Wizard.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ws)
}

func (h *WizardHandler) SelectServiceHandler(c *gin.Context) {
	var req selectServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	h.reply(c)(h.Wizard.SelectService(c.Request.Context(), c.Param("id"), req.ServiceID))
}

func (h *WizardHandler) SelectBarberHandler(c *gin.Context) {
	var req selectBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	h.reply(c)(h.Wizard.SelectBarber(c.Request.Context(), c.Param("id"), req.BarberID))
}

func (h *WizardHandler) SelectDateHandler(c *gin.Context) {
	var req selectDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	h.reply(c)(h.Wizard.SelectDate(c.Request.Context(), c.Param("id"), req.Date))
}

func (h *WizardHandler) SelectTimeHandler(c *gin.Context) {
	var req selectTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	h.reply(c)(h.Wizard.SelectTime(c.Request.Context(), c.Param("id"), req.TimeSlot))
}

func (h *WizardHandler) NextHandler(c *gin.Context) {
	h.reply(c)(h.Wizard.Next(c.Request.Context(), c.Param("id")))
}

func (h *WizardHandler) BackHandler(c *gin.Context) {
	h.reply(c)(h.Wizard.Back(c.Request.Context(), c.Param("id")))
}

// SubmitHandler takes the contact form; field checks happen in the wizard so
// the customer sees its messages.
func (h *WizardHandler) SubmitHandler(c *gin.Context) {
	var contact models.ContactDetails
	if err := c.ShouldBindJSON(&contact); err != nil {
		badRequest(c, err.Error())
		return
	}
	h.reply(c)(h.Wizard.Submit(c.Request.Context(), c.Param("id"), contact))
}

func (h *WizardHandler) CloseHandler(c *gin.Context) {
	if err := h.Wizard.Close(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *WizardHandler) reply(c *gin.Context) func(*models.WizardSession, error) {
	return func(ws *models.WizardSession, err error) {
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, ws)
	}
}
