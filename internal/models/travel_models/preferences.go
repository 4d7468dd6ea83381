package travel_models

import (
	"strings"
	"time"

	"roamai/pkg/utils"
)

type TravelStyle string

const (
	StyleLuxury   TravelStyle = "luxury"
	StyleBudget   TravelStyle = "budget"
	StyleFamily   TravelStyle = "family"
	StyleSolo     TravelStyle = "solo"
	StyleCouple   TravelStyle = "couple"
	StyleGroup    TravelStyle = "group"
	StyleBusiness TravelStyle = "business"
)

type TravelInterest string

const (
	InterestAdventure   TravelInterest = "adventure"
	InterestRelaxation  TravelInterest = "relaxation"
	InterestCulture     TravelInterest = "culture"
	InterestFood        TravelInterest = "food"
	InterestShopping    TravelInterest = "shopping"
	InterestNature      TravelInterest = "nature"
	InterestBeach       TravelInterest = "beach"
	InterestPilgrimage  TravelInterest = "pilgrimage"
	InterestSightseeing TravelInterest = "sightseeing"
	InterestHistory     TravelInterest = "history"
)

var validStyles = map[TravelStyle]bool{
	StyleLuxury: true, StyleBudget: true, StyleFamily: true, StyleSolo: true,
	StyleCouple: true, StyleGroup: true, StyleBusiness: true,
}

var validInterests = map[TravelInterest]bool{
	InterestAdventure: true, InterestRelaxation: true, InterestCulture: true,
	InterestFood: true, InterestShopping: true, InterestNature: true,
	InterestBeach: true, InterestPilgrimage: true, InterestSightseeing: true,
	InterestHistory: true,
}

// ParseTravelStyle accepts any casing, so "LUXURY" and "luxury" both parse.
func ParseTravelStyle(s string) (TravelStyle, bool) {
	style := TravelStyle(strings.ToLower(s))
	return style, validStyles[style]
}

func ParseTravelInterest(s string) (TravelInterest, bool) {
	interest := TravelInterest(strings.ToLower(s))
	return interest, validInterests[interest]
}

// Preferences is the immutable input to a planning run. Dates carry only the
// calendar day (midnight UTC).
type Preferences struct {
	Destination          string           `json:"destination,omitempty"`
	Budget               float64          `json:"budget"`
	StartDate            time.Time        `json:"start_date"`
	EndDate              time.Time        `json:"end_date"`
	Travelers            int              `json:"travelers"`
	TravelStyle          []TravelStyle    `json:"travel_style"`
	Interests            []TravelInterest `json:"interests"`
	IsFlexibleDates      bool             `json:"is_flexible_dates"`
	IsFlexibleDest       bool             `json:"is_flexible_destination"`
	PreviousDestinations []string         `json:"previous_destinations,omitempty"`
	SpecialRequirements  string           `json:"special_requirements,omitempty"`
}

func (p Preferences) Validate() error {
	if p.Budget <= 0 {
		return utils.ErrInvalidBudget
	}
	if p.Travelers < 1 {
		return utils.ErrInvalidInput
	}
	if p.EndDate.Before(p.StartDate) {
		return utils.ErrInvalidInput
	}
	return nil
}

// TripDuration is the number of calendar days in the trip, inclusive of both
// endpoints. Always >= 1 for valid preferences.
func (p Preferences) TripDuration() int {
	return utils.DaysBetween(p.StartDate, p.EndDate) + 1
}

func (p Preferences) HasStyle(style TravelStyle) bool {
	for _, s := range p.TravelStyle {
		if s == style {
			return true
		}
	}
	return false
}

func (p Preferences) HasInterest(interest TravelInterest) bool {
	for _, i := range p.Interests {
		if i == interest {
			return true
		}
	}
	return false
}
