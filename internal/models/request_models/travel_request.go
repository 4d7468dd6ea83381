package request_models

import (
	"fmt"

	"roamai/internal/models/travel_models"
	"roamai/pkg/utils"
)

// PreferencesRequest is the wire form of planning preferences. Dates arrive
// as YYYY-MM-DD strings and styles/interests as lowercase names.
type PreferencesRequest struct {
	Destination          string   `json:"destination"`
	Budget               float64  `json:"budget" binding:"required,gt=0"`
	StartDate            string   `json:"start_date" binding:"required"`
	EndDate              string   `json:"end_date" binding:"required"`
	Travelers            int      `json:"travelers" binding:"required,min=1"`
	TravelStyle          []string `json:"travel_style" binding:"required,min=1"`
	Interests            []string `json:"interests" binding:"required,min=1"`
	IsFlexibleDates      bool     `json:"is_flexible_dates"`
	IsFlexibleDest       bool     `json:"is_flexible_destination"`
	PreviousDestinations []string `json:"previous_destinations"`
	SpecialRequirements  string   `json:"special_requirements"`
}

func (r PreferencesRequest) ToPreferences() (travel_models.Preferences, error) {
	startDate, err := utils.ParseDate(r.StartDate)
	if err != nil {
		return travel_models.Preferences{}, err
	}
	endDate, err := utils.ParseDate(r.EndDate)
	if err != nil {
		return travel_models.Preferences{}, err
	}

	styles := make([]travel_models.TravelStyle, 0, len(r.TravelStyle))
	for _, raw := range r.TravelStyle {
		style, ok := travel_models.ParseTravelStyle(raw)
		if !ok {
			return travel_models.Preferences{}, fmt.Errorf("unknown travel style %q: %w", raw, utils.ErrInvalidInput)
		}
		styles = append(styles, style)
	}

	interests := make([]travel_models.TravelInterest, 0, len(r.Interests))
	for _, raw := range r.Interests {
		interest, ok := travel_models.ParseTravelInterest(raw)
		if !ok {
			return travel_models.Preferences{}, fmt.Errorf("unknown interest %q: %w", raw, utils.ErrInvalidInput)
		}
		interests = append(interests, interest)
	}

	preferences := travel_models.Preferences{
		Destination:          r.Destination,
		Budget:               r.Budget,
		StartDate:            startDate,
		EndDate:              endDate,
		Travelers:            r.Travelers,
		TravelStyle:          styles,
		Interests:            interests,
		IsFlexibleDates:      r.IsFlexibleDates,
		IsFlexibleDest:       r.IsFlexibleDest,
		PreviousDestinations: r.PreviousDestinations,
		SpecialRequirements:  r.SpecialRequirements,
	}
	if err := preferences.Validate(); err != nil {
		return travel_models.Preferences{}, err
	}

	return preferences, nil
}

type TravelerDetailsRequest struct {
	Name          string `json:"name" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Phone         string `json:"phone"`
	DepartureCity string `json:"departure_city"`
	PaymentMethod string `json:"payment_method"`
}

func (r TravelerDetailsRequest) ToTravelerDetails() travel_models.TravelerDetails {
	return travel_models.TravelerDetails{
		Name:          r.Name,
		Email:         r.Email,
		Phone:         r.Phone,
		DepartureCity: r.DepartureCity,
		PaymentMethod: r.PaymentMethod,
	}
}

type DestinationRequest struct {
	City      string   `json:"city" binding:"required"`
	Country   string   `json:"country" binding:"required"`
	Region    string   `json:"region"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

func (r DestinationRequest) ToLocation() travel_models.Location {
	return travel_models.Location{
		City:      r.City,
		Country:   r.Country,
		Region:    r.Region,
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
	}
}

type ItineraryRequest struct {
	Preferences PreferencesRequest     `json:"preferences" binding:"required"`
	Destination DestinationRequest     `json:"destination" binding:"required"`
	Traveler    TravelerDetailsRequest `json:"traveler" binding:"required"`
}

type ConfirmationRequest struct {
	Itinerary travel_models.TravelItinerary `json:"itinerary" binding:"required"`
	Recipient string                        `json:"recipient" binding:"required,email"`
}

type AlertRequest struct {
	Recipient string `json:"recipient" binding:"required,email"`
	Message   string `json:"message" binding:"required"`
}
