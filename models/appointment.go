package models

import (
	"fmt"
	"time"
)

// DateLayout is the canonical day key stored as dateString.
const DateLayout = "2006-01-02"

// TimeSlotLayout is the HH:MM form of a time slot.
const TimeSlotLayout = "15:04"

// Appointment is a confirmed booking as stored in the appointments collection.
type Appointment struct {
	ID            string    `bson:"id" json:"id" firestore:"-"`
	BarberID      string    `bson:"barberId" json:"barberId" firestore:"barberId"`
	ServiceID     string    `bson:"serviceId" json:"serviceId" firestore:"serviceId"`
	ServiceName   string    `bson:"serviceName" json:"serviceName" firestore:"serviceName"`
	Date          time.Time `bson:"date" json:"date" firestore:"date"`
	DateString    string    `bson:"dateString" json:"dateString" firestore:"dateString"`
	TimeSlot      string    `bson:"timeSlot" json:"timeSlot" firestore:"timeSlot"`
	CustomerName  string    `bson:"customerName" json:"customerName" firestore:"customerName"`
	CustomerPhone string    `bson:"customerPhone" json:"customerPhone" firestore:"customerPhone"`
	CustomerEmail string    `bson:"customerEmail" json:"customerEmail" firestore:"customerEmail"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt" firestore:"createdAt"`
}

// DateString renders the calendar day of t in loc as YYYY-MM-DD.
func DateString(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD day as midnight in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", s, err)
	}
	return d, nil
}

// StartsAt combines the appointment day and its HH:MM slot in loc.
func (a Appointment) StartsAt(loc *time.Location) (time.Time, error) {
	slot, err := time.Parse(TimeSlotLayout, a.TimeSlot)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time slot %q: %w", a.TimeSlot, err)
	}
	day := a.Date.In(loc)
	return time.Date(day.Year(), day.Month(), day.Day(), slot.Hour(), slot.Minute(), 0, 0, loc), nil
}
