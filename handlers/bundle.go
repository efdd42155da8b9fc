// File: barberia/handlers/bundle.go
package handlers

import (
	"barberia/middleware"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	Booking  *BookingHandler
	Wizard   *WizardHandler
	Calendar *CalendarHandler
	Admin    *AdminHandler

	// AdminGate guards /api/admin.
	AdminGate middleware.AdminAuthorizer
}
