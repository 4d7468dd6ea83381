package travel_models

import (
	"math"
	"time"
)

// DailyItinerary owns one calendar day of the trip. DayNumber is 1-indexed
// and contiguous across the itinerary.
type DailyItinerary struct {
	Date           time.Time        `json:"date"`
	DayNumber      int              `json:"day_number"`
	Activities     []Activity       `json:"activities"`
	Restaurants    []Restaurant     `json:"restaurants"`
	Transportation []Transportation `json:"transportation"`
	Notes          string           `json:"notes,omitempty"`
}

// TravelItinerary is the root aggregate of a planning run. It is constructed
// once and never updated.
type TravelItinerary struct {
	ItineraryID      string           `json:"itinerary_id"`
	UserPreferences  Preferences      `json:"user_preferences"`
	Destination      Location         `json:"destination"`
	StartDate        time.Time        `json:"start_date"`
	EndDate          time.Time        `json:"end_date"`
	Flights          []Flight         `json:"flights"`
	Accommodation    *Accommodation   `json:"accommodation,omitempty"`
	DailyItineraries []DailyItinerary `json:"daily_itineraries"`
	Bookings         []Booking        `json:"bookings"`
	TotalCost        float64          `json:"total_cost"`
	Notes            string           `json:"notes,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
}

// ComputeTotalCost recomputes the itinerary cost from its parts: flights,
// accommodation, per-day activities and transportation. Restaurants are
// recommendations, not bookings, and carry no committed cost.
func (t TravelItinerary) ComputeTotalCost() float64 {
	var total float64
	for _, f := range t.Flights {
		total += f.Price
	}
	if t.Accommodation != nil {
		total += t.Accommodation.TotalPrice
	}
	for _, day := range t.DailyItineraries {
		for _, a := range day.Activities {
			total += a.TotalPrice
		}
		for _, tr := range day.Transportation {
			total += tr.Price
		}
	}
	return math.Round(total*100) / 100
}
