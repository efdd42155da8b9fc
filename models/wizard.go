package models

import "time"

// WizardStep is the position of a booking wizard session.
type WizardStep int

const (
	StepClosed WizardStep = iota
	StepService
	StepBarber
	StepDateTime
	StepContact
	StepConfirmed
)

var stepNames = map[WizardStep]string{
	StepClosed:    "closed",
	StepService:   "service",
	StepBarber:    "barber",
	StepDateTime:  "datetime",
	StepContact:   "contact",
	StepConfirmed: "confirmed",
}

func (s WizardStep) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return "unknown"
}

// ContactDetails is what the customer types in step 4.
type ContactDetails struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone" validate:"required"`
	Email string `json:"email" validate:"required,bookingemail"`
}

// WizardSession is the ephemeral state of one booking wizard.
type WizardSession struct {
	ID         string         `json:"id"`
	Step       WizardStep     `json:"step"`
	StepName   string         `json:"stepName"`
	ServiceID  string         `json:"serviceId,omitempty"`
	BarberID   string         `json:"barberId,omitempty"`
	Date       string         `json:"date"`
	TimeSlot   string         `json:"timeSlot,omitempty"`
	Contact    ContactDetails `json:"contact"`
	TakenSlots []string       `json:"takenSlots"`
	Loading    bool           `json:"loading"`
	LastError  string         `json:"lastError,omitempty"`
	Confirmed  *Appointment   `json:"confirmed,omitempty"`
	Summary    string         `json:"summary,omitempty"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
}
