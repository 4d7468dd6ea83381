package travel_models

import "time"

type Flight struct {
	FlightID         string            `json:"flight_id"`
	Airline          string            `json:"airline"`
	FlightNumber     string            `json:"flight_number"`
	DepartureAirport string            `json:"departure_airport"`
	ArrivalAirport   string            `json:"arrival_airport"`
	DepartureTime    time.Time         `json:"departure_time"`
	ArrivalTime      time.Time         `json:"arrival_time"`
	DurationMinutes  int               `json:"duration_minutes"`
	StopCount        int               `json:"stop_count"`
	Price            float64           `json:"price"`
	CabinClass       string            `json:"cabin_class"`
	AvailableSeats   int               `json:"available_seats"`
	Refundable       bool              `json:"refundable"`
	BookingURL       string            `json:"booking_url,omitempty"`
	BaggageAllowance map[string]string `json:"baggage_allowance,omitempty"`
	Amenities        []string          `json:"amenities,omitempty"`
}
