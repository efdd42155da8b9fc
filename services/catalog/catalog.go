// Package catalog holds the fixed services, stations and time slots the shop offers.
package catalog

import (
	"slices"

	"barberia/models"
)

var services = []models.Service{
	{ID: "corte-clasico", Name: "CORTE CLÁSICO", Price: "20€", PriceCents: 2000, Description: "Corte tradicional a tijera o máquina, lavado y peinado."},
	{ID: "corte-barba", Name: "CORTE + BARBA", Price: "35€", PriceCents: 3500, Description: "Servicio completo de corte de cabello y arreglo de barba."},
	{ID: "afeitado", Name: "AFEITADO NAVAJA", Price: "15€", PriceCents: 1500, Description: "Ritual de afeitado clásico con toalla caliente."},
	{ID: "corte-nino", Name: "CORTE NIÑO", Price: "15€", PriceCents: 1500, Description: "Estilo y cuidado para los más pequeños."},
}

var barbers = []models.Barber{
	{ID: "silla-1", Name: "Silla 1", Stylist: "Juan"},
	{ID: "silla-2", Name: "Silla 2", Stylist: "Pedro"},
	{ID: "silla-3", Name: "Silla 3", Stylist: "Luis"},
	{ID: "silla-4", Name: "Silla 4", Stylist: "Carlos"},
}

var timeSlots = []string{
	"10:00", "11:00", "12:00", "13:00", "14:00",
	"16:00", "17:00", "18:00", "19:00", "20:00",
}

// Get returns a copy of the full catalog.
func Get() models.Catalog {
	return models.Catalog{
		Services:  slices.Clone(services),
		Barbers:   slices.Clone(barbers),
		TimeSlots: slices.Clone(timeSlots),
	}
}

func Service(id string) (models.Service, bool) {
	for _, s := range services {
		if s.ID == id {
			return s, true
		}
	}
	return models.Service{}, false
}

func Barber(id string) (models.Barber, bool) {
	for _, b := range barbers {
		if b.ID == id {
			return b, true
		}
	}
	return models.Barber{}, false
}

func IsTimeSlot(slot string) bool {
	return slices.Contains(timeSlots, slot)
}

// TimeSlots returns the bookable HH:MM slots in display order.
func TimeSlots() []string {
	return slices.Clone(timeSlots)
}
