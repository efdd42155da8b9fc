package appointmentRepo

import (
	"context"
	"slices"
	"sync"

	"barberia/models"

	"github.com/google/uuid"
)

// MemoryAppointmentRepo keeps appointments in process. It backs
// STORE_BACKEND=memory and the test suites.
type MemoryAppointmentRepo struct {
	mu           sync.RWMutex
	appointments []models.Appointment
}

func NewMemoryAppointmentRepo(seed ...models.Appointment) *MemoryAppointmentRepo {
	return &MemoryAppointmentRepo{appointments: slices.Clone(seed)}
}

func (r *MemoryAppointmentRepo) FindByBarberAndDate(ctx context.Context, barberID, dateString string) ([]models.Appointment, error) {
	return r.filter(ctx, func(a models.Appointment) bool {
		return a.BarberID == barberID && a.DateString == dateString
	})
}

func (r *MemoryAppointmentRepo) FindBySlot(ctx context.Context, barberID, dateString, timeSlot string) ([]models.Appointment, error) {
	return r.filter(ctx, func(a models.Appointment) bool {
		return a.BarberID == barberID && a.DateString == dateString && a.TimeSlot == timeSlot
	})
}

func (r *MemoryAppointmentRepo) Insert(ctx context.Context, appt *models.Appointment) error {
	if appt == nil {
		return ErrNilAppointment
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if appt.ID == "" {
		appt.ID = uuid.New().String()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.appointments = append(r.appointments, *appt)
	return nil
}

func (r *MemoryAppointmentRepo) ListAllByDateDesc(ctx context.Context) ([]models.Appointment, error) {
	all, err := r.filter(ctx, func(models.Appointment) bool { return true })
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(all, func(a, b models.Appointment) int {
		return b.Date.Compare(a.Date)
	})
	return all, nil
}

func (r *MemoryAppointmentRepo) Ping(ctx context.Context) error {
	return ctx.Err()
}

// Len reports how many appointments are stored.
func (r *MemoryAppointmentRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.appointments)
}

func (r *MemoryAppointmentRepo) filter(ctx context.Context, keep func(models.Appointment) bool) ([]models.Appointment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []models.Appointment{}
	for _, a := range r.appointments {
		if keep(a) {
			out = append(out, a)
		}
	}
	return out, nil
}
