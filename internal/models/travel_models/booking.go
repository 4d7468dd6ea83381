package travel_models

import "time"

const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusPending   = "pending"
	BookingStatusCancelled = "cancelled"
)

const (
	BookingTypeFlight        = "flight"
	BookingTypeAccommodation = "accommodation"
	BookingTypeActivity      = "activity"
)

type PaymentSummary struct {
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	PaymentMethod string  `json:"payment_method"`
	IsPaid        bool    `json:"is_paid"`
}

// Booking records a committed reservation. It is never mutated after creation.
type Booking struct {
	BookingID          string          `json:"booking_id"`
	BookingType        string          `json:"booking_type"`
	Provider           string          `json:"provider"`
	Status             string          `json:"status"`
	BookingDate        time.Time       `json:"booking_date"`
	ReferenceNumber    string          `json:"reference_number"`
	ConfirmationEmail  string          `json:"confirmation_email,omitempty"`
	PaymentDetails     *PaymentSummary `json:"payment_details,omitempty"`
	CancellationPolicy string          `json:"cancellation_policy,omitempty"`
}

// TravelerDetails is the contact record bookings are made under.
type TravelerDetails struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone,omitempty"`
	DepartureCity string `json:"departure_city,omitempty"`
	PaymentMethod string `json:"payment_method,omitempty"`
}
