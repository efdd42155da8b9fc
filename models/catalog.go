package models

// Service is a bookable barbershop service.
type Service struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Price       string `json:"price"`
	PriceCents  int    `json:"priceCents"`
	Description string `json:"description"`
}

// Barber is one of the shop's stations ("sillas").
type Barber struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Stylist string `json:"stylist"`
}

// DisplayName is the label shown in the wizard, e.g. "Silla 1 (Juan)".
func (b Barber) DisplayName() string {
	if b.Stylist == "" {
		return b.Name
	}
	return b.Name + " (" + b.Stylist + ")"
}

// Catalog is everything the booking wizard offers.
type Catalog struct {
	Services  []Service `json:"services"`
	Barbers   []Barber  `json:"barbers"`
	TimeSlots []string  `json:"timeSlots"`
}
