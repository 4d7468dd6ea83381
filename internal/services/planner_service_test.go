package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"roamai/internal/models/travel_models"
	"roamai/pkg/utils"
)

func newPlanner(seed int64, config PlannerConfig) PlannerServiceInterface {
	rand := utils.NewRandSource(seed)
	activityService := NewActivityService(DefaultActivityCatalog(), rand)

	return NewPlannerService(
		config,
		NewBudgetService(DefaultBudgetPolicy),
		NewFlightService(DefaultFlightCatalog(), rand),
		NewAccommodationService(DefaultAccommodationCatalog(), rand),
		NewSchedulerService(activityService, rand),
	)
}

func defaultPlannerConfig() PlannerConfig {
	return PlannerConfig{
		PrioritizeLuxury:     true,
		PrioritizeMiddleEast: true,
		PartnerWithNusuk:     true,
		AirlinesCount:        450,
		DefaultOrigin:        "New York",
	}
}

func dubaiPreferences() travel_models.Preferences {
	return travel_models.Preferences{
		Budget:      5000,
		StartDate:   time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2025, 11, 15, 0, 0, 0, 0, time.UTC),
		Travelers:   2,
		TravelStyle: []travel_models.TravelStyle{travel_models.StyleCouple},
		Interests:   []travel_models.TravelInterest{travel_models.InterestCulture, travel_models.InterestFood},
	}
}

func testTraveler() travel_models.TravelerDetails {
	return travel_models.TravelerDetails{
		Name:          "Sara Malik",
		Email:         "sara@example.com",
		DepartureCity: "New York",
	}
}

func TestCreateAndBookItineraryDubai(t *testing.T) {
	planner := newPlanner(42, defaultPlannerConfig())

	itinerary, err := planner.CreateAndBookItinerary(context.Background(), dubaiPreferences(), dubai, testTraveler())
	require.NoError(t, err)
	require.NotNil(t, itinerary)

	// Outbound and return, both booked.
	require.Len(t, itinerary.Flights, 2)
	assert.Equal(t, "JFK", itinerary.Flights[0].DepartureAirport)
	assert.Equal(t, "DXB", itinerary.Flights[0].ArrivalAirport)
	assert.Equal(t, "DXB", itinerary.Flights[1].DepartureAirport)
	assert.Equal(t, "JFK", itinerary.Flights[1].ArrivalAirport)

	// Accommodation, when found, never exceeds 40% of the budget.
	if itinerary.Accommodation != nil {
		assert.LessOrEqual(t, itinerary.Accommodation.TotalPrice, 2000.01)
	}

	// Six days with the first and last reserved for travel.
	require.Len(t, itinerary.DailyItineraries, 6)
	assert.Empty(t, itinerary.DailyItineraries[0].Activities)
	assert.Empty(t, itinerary.DailyItineraries[5].Activities)

	for _, day := range itinerary.DailyItineraries {
		assert.LessOrEqual(t, len(day.Activities), 3)
		for _, activity := range day.Activities {
			assert.LessOrEqual(t, activity.PricePerPerson, 500.01)
		}
	}

	assert.InDelta(t, itinerary.ComputeTotalCost(), itinerary.TotalCost, 1e-9)
	assert.NotEmpty(t, itinerary.ItineraryID)
	assert.Contains(t, itinerary.Notes, "6-day")
	assert.Contains(t, itinerary.Notes, "Dubai")

	// Every booking carries a unique reference.
	seen := make(map[string]bool)
	for _, booking := range itinerary.Bookings {
		assert.False(t, seen[booking.ReferenceNumber], "duplicate reference %s", booking.ReferenceNumber)
		seen[booking.ReferenceNumber] = true
		assert.Equal(t, travel_models.BookingStatusConfirmed, booking.Status)
	}

	flightBookings := 0
	for _, booking := range itinerary.Bookings {
		if booking.BookingType == travel_models.BookingTypeFlight {
			flightBookings++
		}
	}
	assert.Equal(t, 2, flightBookings)
}

func TestCreateAndBookItineraryLuxury(t *testing.T) {
	planner := newPlanner(7, defaultPlannerConfig())

	preferences := dubaiPreferences()
	preferences.Budget = 50000
	preferences.TravelStyle = []travel_models.TravelStyle{travel_models.StyleLuxury}

	itinerary, err := planner.CreateAndBookItinerary(context.Background(), preferences, dubai, testTraveler())
	require.NoError(t, err)
	require.NotNil(t, itinerary)

	for _, flight := range itinerary.Flights {
		assert.Equal(t, CabinBusiness, flight.CabinClass)
	}
	assert.Contains(t, itinerary.Notes, "luxurious")
	assert.Contains(t, itinerary.Notes, "premium experiences")
}

func TestCreateAndBookItineraryPilgrimageNotes(t *testing.T) {
	planner := newPlanner(11, defaultPlannerConfig())

	preferences := dubaiPreferences()
	preferences.Interests = []travel_models.TravelInterest{travel_models.InterestPilgrimage}
	destination := travel_models.Location{City: "Medina", Country: "Saudi Arabia", Region: "Middle East"}

	itinerary, err := planner.CreateAndBookItinerary(context.Background(), preferences, destination, testTraveler())
	require.NoError(t, err)
	require.NotNil(t, itinerary)

	assert.Contains(t, itinerary.Notes, "Nusuk")
	assert.Contains(t, itinerary.Notes, "450+")
}

func TestCreateAndBookItineraryInvalidInput(t *testing.T) {
	planner := newPlanner(5, defaultPlannerConfig())

	preferences := dubaiPreferences()
	preferences.Budget = 0

	itinerary, err := planner.CreateAndBookItinerary(context.Background(), preferences, dubai, testTraveler())
	assert.ErrorIs(t, err, utils.ErrInvalidBudget)
	assert.Nil(t, itinerary)

	preferences = dubaiPreferences()
	preferences.Travelers = 0

	itinerary, err = planner.CreateAndBookItinerary(context.Background(), preferences, dubai, testTraveler())
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
	assert.Nil(t, itinerary)
}

func TestTakeTopRanked(t *testing.T) {
	flights := []travel_models.Flight{
		{FlightNumber: "QA101"},
		{FlightNumber: "EK202"},
	}

	selected, ok := takeTopRanked(flights)
	require.True(t, ok)
	assert.Equal(t, "QA101", selected.FlightNumber)

	_, ok = takeTopRanked([]travel_models.Accommodation{})
	assert.False(t, ok)
}

// emptyAccommodationService simulates a market with nothing under the ceiling.
type emptyAccommodationService struct{}

func (emptyAccommodationService) SearchAccommodations(ctx context.Context, criteria AccommodationSearchCriteria) ([]travel_models.Accommodation, error) {
	return nil, nil
}

func (emptyAccommodationService) BookAccommodation(ctx context.Context, accommodation travel_models.Accommodation, guest travel_models.TravelerDetails) (*travel_models.Booking, error) {
	return nil, nil
}

func TestCreateAndBookItineraryWithoutAccommodation(t *testing.T) {
	rand := utils.NewRandSource(13)
	planner := NewPlannerService(
		defaultPlannerConfig(),
		NewBudgetService(DefaultBudgetPolicy),
		NewFlightService(DefaultFlightCatalog(), rand),
		emptyAccommodationService{},
		NewSchedulerService(NewActivityService(DefaultActivityCatalog(), rand), rand),
	)

	itinerary, err := planner.CreateAndBookItinerary(context.Background(), dubaiPreferences(), dubai, testTraveler())
	require.NoError(t, err)
	require.NotNil(t, itinerary)

	assert.Nil(t, itinerary.Accommodation)
	for _, booking := range itinerary.Bookings {
		assert.NotEqual(t, travel_models.BookingTypeAccommodation, booking.BookingType)
	}
	assert.Len(t, itinerary.Flights, 2)
}
