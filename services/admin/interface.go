// Package admin serves the owner's read-only view of the appointment book.
package admin

import (
	"context"

	appointmentRepo "barberia/database/repository/appointment"
	"barberia/models"

	"go.uber.org/zap"
)

type AdminService interface {
	DailyAppointments(ctx context.Context, date string) ([]models.Appointment, error)
	BookedDates(ctx context.Context) ([]string, error)
}

// DefaultAdminService is the production implementation.
type DefaultAdminService struct {
	Repo   appointmentRepo.AppointmentRepository
	Logger *zap.Logger
}

func NewAdminService(repo appointmentRepo.AppointmentRepository, logger *zap.Logger) *DefaultAdminService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultAdminService{Repo: repo, Logger: logger}
}
