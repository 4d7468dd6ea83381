package travel_models

import "time"

type Accommodation struct {
	AccommodationID string    `json:"accommodation_id"`
	Name            string    `json:"name"`
	Type            string    `json:"type"`
	Location        Location  `json:"location"`
	CheckInDate     time.Time `json:"check_in_date"`
	CheckOutDate    time.Time `json:"check_out_date"`
	Rating          float64   `json:"rating"`
	PricePerNight   float64   `json:"price_per_night"`
	TotalPrice      float64   `json:"total_price"`
	Amenities       []string  `json:"amenities"`
	RoomType        string    `json:"room_type"`
	Refundable      bool      `json:"refundable"`
	BookingURL      string    `json:"booking_url,omitempty"`
	Images          []string  `json:"images,omitempty"`
}
