package travel_models

import "time"

type Activity struct {
	ActivityID      string    `json:"activity_id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Location        Location  `json:"location"`
	Date            time.Time `json:"date"`
	StartTime       string    `json:"start_time,omitempty"`
	DurationMinutes int       `json:"duration_minutes,omitempty"`
	PricePerPerson  float64   `json:"price_per_person"`
	TotalPrice      float64   `json:"total_price"`
	BookingURL      string    `json:"booking_url,omitempty"`
	Category        []string  `json:"category"`
	Images          []string  `json:"images,omitempty"`
}

type Restaurant struct {
	RestaurantID   string            `json:"restaurant_id"`
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	Location       Location          `json:"location"`
	Cuisine        []string          `json:"cuisine"`
	PriceRange     string            `json:"price_range"`
	Rating         float64           `json:"rating"`
	ReservationURL string            `json:"reservation_url,omitempty"`
	OpeningHours   map[string]string `json:"opening_hours,omitempty"`
	Images         []string          `json:"images,omitempty"`
}

type Transportation struct {
	Type         string            `json:"type"`
	FromLocation string            `json:"from_location"`
	ToLocation   string            `json:"to_location"`
	Date         time.Time         `json:"date"`
	Time         string            `json:"time,omitempty"`
	Price        float64           `json:"price"`
	BookingURL   string            `json:"booking_url,omitempty"`
	Details      map[string]string `json:"details,omitempty"`
}
