package travel_models

// Location is a value type; two locations with equal fields are the same place.
type Location struct {
	City      string   `json:"city"`
	Country   string   `json:"country"`
	Region    string   `json:"region,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}
