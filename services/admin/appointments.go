package admin

import (
	"context"
	"slices"
	"strings"
	"time"

	"barberia/models"
	"barberia/services/booking"

	"go.uber.org/zap"
)

const MsgInvalidDate = "Fecha no válida. Usa el formato AAAA-MM-DD."

// DailyAppointments lists the appointments booked for date (YYYY-MM-DD),
// earliest slot first.
func (s *DefaultAdminService) DailyAppointments(ctx context.Context, date string) ([]models.Appointment, error) {
	if _, err := time.Parse(models.DateLayout, date); err != nil {
		return nil, &booking.ValidationError{Message: MsgInvalidDate}
	}

	all, err := s.Repo.ListAllByDateDesc(ctx)
	if err != nil {
		s.Logger.Error("DailyAppointments: failed to list appointments", zap.Error(err))
		return nil, err
	}

	day := make([]models.Appointment, 0)
	for _, a := range all {
		if a.DateString == date {
			day = append(day, a)
		}
	}
	slices.SortStableFunc(day, func(a, b models.Appointment) int {
		return strings.Compare(a.TimeSlot, b.TimeSlot)
	})

	s.Logger.Debug("DailyAppointments", zap.String("date", date), zap.Int("count", len(day)))
	return day, nil
}

// BookedDates returns every day with at least one appointment, most recent first.
func (s *DefaultAdminService) BookedDates(ctx context.Context) ([]string, error) {
	all, err := s.Repo.ListAllByDateDesc(ctx)
	if err != nil {
		s.Logger.Error("BookedDates: failed to list appointments", zap.Error(err))
		return nil, err
	}

	dates := make([]string, 0)
	seen := make(map[string]bool)
	for _, a := range all {
		if a.DateString == "" || seen[a.DateString] {
			continue
		}
		seen[a.DateString] = true
		dates = append(dates, a.DateString)
	}
	return dates, nil
}
