// File: barberia/handlers/admin.go
package handlers

import (
	"net/http"
	"time"

	"barberia/models"
	"barberia/services/admin"
	"barberia/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler serves the owner's appointment book.
type AdminHandler struct {
	AdminService admin.AdminService
	Gate         *admin.Gate
	Location     *time.Location
	Now          func() time.Time
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(as admin.AdminService, gate *admin.Gate, loc *time.Location) *AdminHandler {
	return &AdminHandler{
		AdminService: as,
		Gate:         gate,
		Location:     loc,
		Now:          time.Now,
	}
}

type adminLoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// LoginHandler checks the admin password. With signed tokens enabled it
// also returns a token to use as bearer instead of the password.
func (ah *AdminHandler) LoginHandler(c *gin.Context) {
	var req adminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	if !ah.Gate.CheckPassword(req.Password) {
		utils.JSONError(c, http.StatusUnauthorized, "Contraseña incorrecta", "")
		return
	}

	if !ah.Gate.TokensEnabled() {
		c.JSON(http.StatusOK, gin.H{"authenticated": true})
		return
	}
	token, expiresAt, err := ah.Gate.IssueToken()
	if err != nil {
		utils.ContextLogger(c).Error("Failed to issue admin token", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "No se pudo iniciar sesión", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"authenticated": true, "token": token, "expiresAt": expiresAt})
}

// DailyAppointmentsHandler lists one day's appointments; the day defaults to today.
func (ah *AdminHandler) DailyAppointmentsHandler(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = models.DateString(ah.Now(), ah.Location)
	}

	appointments, err := ah.AdminService.DailyAppointments(c.Request.Context(), date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "appointments": appointments})
}

// BookedDatesHandler lists the days that have appointments.
func (ah *AdminHandler) BookedDatesHandler(c *gin.Context) {
	dates, err := ah.AdminService.BookedDates(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"dates": dates})
}
