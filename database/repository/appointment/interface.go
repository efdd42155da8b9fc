// File: database/repository/appointment/interface.go
package appointmentRepo

import (
	"context"
	"errors"

	"barberia/models"
)

// ErrNilAppointment is returned by Insert when given nothing to store.
var ErrNilAppointment = errors.New("appointment is nil")

// AppointmentRepository is the document-store surface the booking flow consumes.
// Implementations honour ctx cancellation; callers own the deadline.
type AppointmentRepository interface {
	FindByBarberAndDate(ctx context.Context, barberID, dateString string) ([]models.Appointment, error)
	FindBySlot(ctx context.Context, barberID, dateString, timeSlot string) ([]models.Appointment, error)
	Insert(ctx context.Context, appt *models.Appointment) error
	ListAllByDateDesc(ctx context.Context) ([]models.Appointment, error)
	Ping(ctx context.Context) error
}
