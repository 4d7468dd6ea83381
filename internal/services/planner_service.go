package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"roamai/internal/models/travel_models"
	"roamai/pkg/utils"
)

// PlannerConfig carries deployment-level planning behavior, loaded from the
// environment at startup.
type PlannerConfig struct {
	PrioritizeLuxury     bool
	PrioritizeMiddleEast bool
	PartnerWithNusuk     bool
	AirlinesCount        int
	DefaultOrigin        string
}

func PlannerConfigFromEnv() PlannerConfig {
	return PlannerConfig{
		PrioritizeLuxury:     utils.GetEnvBool("PRIORITIZE_LUXURY", true),
		PrioritizeMiddleEast: utils.GetEnvBool("PRIORITIZE_MIDDLE_EAST", true),
		PartnerWithNusuk:     utils.GetEnvBool("PARTNER_WITH_NUSUK", true),
		AirlinesCount:        utils.GetEnvInt("AIRLINES_COUNT", 450),
		DefaultOrigin:        utils.GetEnvWithDefault("DEFAULT_ORIGIN", "New York"),
	}
}

type PlannerServiceInterface interface {
	CreateAndBookItinerary(ctx context.Context, preferences travel_models.Preferences, destination travel_models.Location, traveler travel_models.TravelerDetails) (*travel_models.TravelItinerary, error)
}

type PlannerService struct {
	config               PlannerConfig
	budgetService        BudgetServiceInterface
	flightService        FlightServiceInterface
	accommodationService AccommodationServiceInterface
	schedulerService     SchedulerServiceInterface
}

func NewPlannerService(
	config PlannerConfig,
	budgetService BudgetServiceInterface,
	flightService FlightServiceInterface,
	accommodationService AccommodationServiceInterface,
	schedulerService SchedulerServiceInterface,
) PlannerServiceInterface {
	return &PlannerService{
		config:               config,
		budgetService:        budgetService,
		flightService:        flightService,
		accommodationService: accommodationService,
		schedulerService:     schedulerService,
	}
}

// CreateAndBookItinerary runs the full planning pipeline: budget allocation,
// outbound and return flights, accommodation, then day-by-day scheduling.
// Any step error aborts the run and returns a nil itinerary, never a partial
// one. A missing accommodation is not an error; the itinerary proceeds
// without one.
func (p *PlannerService) CreateAndBookItinerary(
	ctx context.Context,
	preferences travel_models.Preferences,
	destination travel_models.Location,
	traveler travel_models.TravelerDetails,
) (*travel_models.TravelItinerary, error) {
	log.Printf("Creating and booking itinerary for %s, %s", destination.City, destination.Country)

	if err := preferences.Validate(); err != nil {
		return nil, err
	}

	allocation, err := p.budgetService.Allocate(preferences.Budget, preferences.Travelers)
	if err != nil {
		return nil, err
	}

	prioritizeLuxury := p.config.PrioritizeLuxury && preferences.HasStyle(travel_models.StyleLuxury)

	flights, flightBookings, err := p.bookFlights(ctx, preferences, destination, traveler, prioritizeLuxury)
	if err != nil {
		return nil, err
	}

	accommodation, accommodationBooking, err := p.bookAccommodation(ctx, preferences, destination, traveler, allocation, prioritizeLuxury)
	if err != nil {
		return nil, err
	}

	days, activityBookings, err := p.schedulerService.BuildDailyItineraries(ctx, ScheduleRequest{
		Preferences:          preferences,
		Destination:          destination,
		Traveler:             traveler,
		ActivityPriceCeiling: allocation.ActivityPerPersonCeiling,
		PrioritizeLuxury:     prioritizeLuxury,
	})
	if err != nil {
		return nil, err
	}

	bookings := make([]travel_models.Booking, 0, len(flightBookings)+1+len(activityBookings))
	bookings = append(bookings, flightBookings...)
	if accommodationBooking != nil {
		bookings = append(bookings, *accommodationBooking)
	}
	bookings = append(bookings, activityBookings...)

	itinerary := &travel_models.TravelItinerary{
		ItineraryID:      utils.GenerateID("ITN"),
		UserPreferences:  preferences,
		Destination:      destination,
		StartDate:        preferences.StartDate,
		EndDate:          preferences.EndDate,
		Flights:          flights,
		Accommodation:    accommodation,
		DailyItineraries: days,
		Bookings:         bookings,
		Notes:            p.itineraryNotes(preferences, destination, prioritizeLuxury),
		CreatedAt:        time.Now(),
	}
	itinerary.TotalCost = itinerary.ComputeTotalCost()

	return itinerary, nil
}

// bookFlights searches and books one outbound and one return flight, taking
// the top-ranked offer from each search. Luxury trips fly Business.
func (p *PlannerService) bookFlights(
	ctx context.Context,
	preferences travel_models.Preferences,
	destination travel_models.Location,
	traveler travel_models.TravelerDetails,
	prioritizeLuxury bool,
) ([]travel_models.Flight, []travel_models.Booking, error) {
	origin := traveler.DepartureCity
	if origin == "" {
		origin = p.config.DefaultOrigin
	}

	cabinClass := CabinEconomy
	if prioritizeLuxury {
		cabinClass = CabinBusiness
	}

	var flights []travel_models.Flight
	var bookings []travel_models.Booking

	legs := []struct {
		origin      string
		destination string
		date        time.Time
	}{
		{origin, destination.City, preferences.StartDate},
		{destination.City, origin, preferences.EndDate},
	}

	for _, leg := range legs {
		offers, err := p.flightService.SearchFlights(ctx, FlightSearchCriteria{
			Origin:           leg.origin,
			Destination:      leg.destination,
			DepartureDate:    leg.date,
			Passengers:       preferences.Travelers,
			CabinClass:       cabinClass,
			PrioritizeLuxury: prioritizeLuxury,
		})
		if err != nil {
			return nil, nil, err
		}
		selected, ok := takeTopRanked(offers)
		if !ok {
			continue
		}
		booking, err := p.flightService.BookFlight(ctx, selected, traveler)
		if err != nil {
			return nil, nil, err
		}
		flights = append(flights, selected)
		if booking != nil {
			bookings = append(bookings, *booking)
		}
	}

	return flights, bookings, nil
}

// bookAccommodation caps the nightly rate so the stay's total never exceeds
// the accommodation share of the budget. An empty search is a soft failure:
// the trip goes ahead without a room.
func (p *PlannerService) bookAccommodation(
	ctx context.Context,
	preferences travel_models.Preferences,
	destination travel_models.Location,
	traveler travel_models.TravelerDetails,
	allocation BudgetAllocation,
	prioritizeLuxury bool,
) (*travel_models.Accommodation, *travel_models.Booking, error) {
	nights := utils.DaysBetween(preferences.StartDate, preferences.EndDate)
	if nights < 1 {
		nights = 1
	}
	roomCount := (preferences.Travelers + 1) / 2
	if roomCount < 1 {
		roomCount = 1
	}

	minRating := 0.0
	if prioritizeLuxury {
		minRating = 4
	}

	offers, err := p.accommodationService.SearchAccommodations(ctx, AccommodationSearchCriteria{
		Destination:      destination,
		CheckInDate:      preferences.StartDate,
		CheckOutDate:     preferences.EndDate,
		Guests:           preferences.Travelers,
		RoomCount:        roomCount,
		MinRating:        minRating,
		MaxPricePerNight: allocation.AccommodationCeiling / float64(nights*roomCount),
		PrioritizeLuxury: prioritizeLuxury,
	})
	if err != nil {
		return nil, nil, err
	}
	selected, ok := takeTopRanked(offers)
	if !ok {
		log.Printf("No accommodations found within the budget for %s", destination.City)
		return nil, nil, nil
	}
	booking, err := p.accommodationService.BookAccommodation(ctx, selected, traveler)
	if err != nil {
		return nil, nil, err
	}

	return &selected, booking, nil
}

// takeTopRanked is the offer selection policy: always the first-ranked
// candidate from an already-sorted search. Swapping the policy means
// changing this one function, not the pipeline.
func takeTopRanked[T any](offers []T) (T, bool) {
	if len(offers) == 0 {
		var zero T
		return zero, false
	}
	return offers[0], true
}

var styleAdjectives = map[travel_models.TravelStyle]string{
	travel_models.StyleLuxury:   "luxurious",
	travel_models.StyleBudget:   "budget-friendly",
	travel_models.StyleFamily:   "family-oriented",
	travel_models.StyleSolo:     "solo traveler",
	travel_models.StyleCouple:   "couple's getaway",
	travel_models.StyleGroup:    "group travel",
	travel_models.StyleBusiness: "business traveler",
}

func (p *PlannerService) itineraryNotes(preferences travel_models.Preferences, destination travel_models.Location, prioritizeLuxury bool) string {
	var adjectives []string
	for _, style := range preferences.TravelStyle {
		if adjective, ok := styleAdjectives[style]; ok {
			adjectives = append(adjectives, adjective)
		}
	}

	interests := make([]string, 0, len(preferences.Interests))
	for _, interest := range preferences.Interests {
		interests = append(interests, string(interest))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "This %s %d-day %s itinerary focuses on %s as requested.",
		strings.Join(adjectives, "-"), preferences.TripDuration(), destination.City, joinNatural(interests))

	if prioritizeLuxury {
		b.WriteString(" We've prioritized premium experiences and luxury accommodations to ensure an exceptional journey.")
	}
	if preferences.HasInterest(travel_models.InterestPilgrimage) && p.config.PartnerWithNusuk {
		fmt.Fprintf(&b, " As part of our partnership with Nusuk, we've included access to religious sites and activities to enhance your pilgrimage experience with flights from our network of %d+ airline partners.", p.config.AirlinesCount)
	}

	return b.String()
}

// joinNatural renders a list as prose: "a", "a and b", "a, b, and c".
func joinNatural(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + ", and " + items[len(items)-1]
	}
}
