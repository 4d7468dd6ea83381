package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"roamai/internal/models/travel_models"
	"roamai/pkg/utils"
)

// stubActivityService returns a fixed candidate list and records bookings.
type stubActivityService struct {
	activities  []travel_models.Activity
	failBooking bool
	booked      []string
}

func (s *stubActivityService) SearchActivities(ctx context.Context, criteria ActivitySearchCriteria) ([]travel_models.Activity, error) {
	out := make([]travel_models.Activity, len(s.activities))
	copy(out, s.activities)
	return out, nil
}

func (s *stubActivityService) BookActivity(ctx context.Context, activity travel_models.Activity, traveler travel_models.TravelerDetails) (*travel_models.Booking, error) {
	if s.failBooking {
		return nil, fmt.Errorf("provider rejected the booking")
	}
	s.booked = append(s.booked, activity.Name)
	return &travel_models.Booking{
		BookingID:       utils.GenerateID("B"),
		BookingType:     travel_models.BookingTypeActivity,
		Status:          travel_models.BookingStatusConfirmed,
		ReferenceNumber: utils.GenerateID("AC"),
	}, nil
}

func fixedActivities(n int) []travel_models.Activity {
	activities := make([]travel_models.Activity, 0, n)
	for i := 0; i < n; i++ {
		activities = append(activities, travel_models.Activity{
			ActivityID:     utils.GenerateID("A"),
			Name:           fmt.Sprintf("Activity %d", i+1),
			PricePerPerson: float64(50 + i*10),
			TotalPrice:     float64(100 + i*20),
			StartTime:      "10:00",
		})
	}
	return activities
}

func scheduleRequest(start, end time.Time) ScheduleRequest {
	return ScheduleRequest{
		Preferences: travel_models.Preferences{
			Budget:      5000,
			StartDate:   start,
			EndDate:     end,
			Travelers:   2,
			TravelStyle: []travel_models.TravelStyle{travel_models.StyleCouple},
			Interests:   []travel_models.TravelInterest{travel_models.InterestFood},
		},
		Destination:          dubai,
		Traveler:             travel_models.TravelerDetails{Name: "Sara Malik", Email: "sara@example.com"},
		ActivityPriceCeiling: 500,
	}
}

func TestBuildDailyItinerariesTravelDays(t *testing.T) {
	stub := &stubActivityService{activities: fixedActivities(5)}
	svc := NewSchedulerService(stub, utils.NewRandSource(42))

	start := time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 11, 15, 0, 0, 0, 0, time.UTC)

	days, bookings, err := svc.BuildDailyItineraries(context.Background(), scheduleRequest(start, end))
	require.NoError(t, err)
	require.Len(t, days, 6)

	// First and last day are travel days on trips longer than three days.
	for _, i := range []int{0, 5} {
		assert.Empty(t, days[i].Activities)
		assert.Empty(t, days[i].Restaurants)
		assert.Empty(t, days[i].Transportation)
		assert.Equal(t, "Travel day. No activities planned.", days[i].Notes)
	}

	for i := 1; i < 5; i++ {
		day := days[i]
		assert.Equal(t, i+1, day.DayNumber)
		assert.Equal(t, start.AddDate(0, 0, i), day.Date)
		assert.LessOrEqual(t, len(day.Activities), 3)
		assert.NotEmpty(t, day.Activities)
		assert.GreaterOrEqual(t, len(day.Restaurants), 1)
		assert.LessOrEqual(t, len(day.Restaurants), 2)
		assert.Contains(t, day.Notes, "Dubai")
	}

	// One booking per scheduled activity, four activity days of three each.
	assert.Len(t, bookings, 12)
}

func TestBuildDailyItinerariesShortTripHasNoTravelDays(t *testing.T) {
	stub := &stubActivityService{activities: fixedActivities(2)}
	svc := NewSchedulerService(stub, utils.NewRandSource(7))

	start := time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 11, 11, 0, 0, 0, 0, time.UTC)

	days, _, err := svc.BuildDailyItineraries(context.Background(), scheduleRequest(start, end))
	require.NoError(t, err)
	require.Len(t, days, 2)

	for _, day := range days {
		assert.NotEmpty(t, day.Activities)
		assert.NotEqual(t, "Travel day. No activities planned.", day.Notes)
	}
}

func TestBuildDailyItinerariesTransportChain(t *testing.T) {
	stub := &stubActivityService{activities: fixedActivities(3)}
	svc := NewSchedulerService(stub, utils.NewRandSource(11))

	start := time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 11, 11, 0, 0, 0, 0, time.UTC)

	days, _, err := svc.BuildDailyItineraries(context.Background(), scheduleRequest(start, end))
	require.NoError(t, err)

	for _, day := range days {
		legs := day.Transportation
		require.Len(t, legs, len(day.Activities)+1)

		assert.Equal(t, "Hotel", legs[0].FromLocation)
		assert.Equal(t, "Hotel", legs[len(legs)-1].ToLocation)
		for i := 1; i < len(legs); i++ {
			assert.Equal(t, legs[i-1].ToLocation, legs[i].FromLocation)
		}
		for _, leg := range legs {
			if leg.Type == "Walking" {
				assert.Zero(t, leg.Price)
			} else {
				assert.Greater(t, leg.Price, 0.0)
			}
			assert.NotEmpty(t, leg.Details)
		}
	}
}

func TestBuildDailyItinerariesBookingFailuresAreDropped(t *testing.T) {
	stub := &stubActivityService{activities: fixedActivities(3), failBooking: true}
	svc := NewSchedulerService(stub, utils.NewRandSource(13))

	start := time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 11, 11, 0, 0, 0, 0, time.UTC)

	days, bookings, err := svc.BuildDailyItineraries(context.Background(), scheduleRequest(start, end))
	require.NoError(t, err)

	assert.Empty(t, bookings)
	for _, day := range days {
		assert.Empty(t, day.Activities)
		assert.Len(t, day.Transportation, 0)
	}
}

func TestBuildDailyItinerariesLuxuryRestaurants(t *testing.T) {
	stub := &stubActivityService{activities: fixedActivities(1)}
	svc := NewSchedulerService(stub, utils.NewRandSource(17))

	req := scheduleRequest(
		time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 11, 11, 0, 0, 0, 0, time.UTC),
	)
	req.PrioritizeLuxury = true

	days, _, err := svc.BuildDailyItineraries(context.Background(), req)
	require.NoError(t, err)

	for _, day := range days {
		for _, restaurant := range day.Restaurants {
			assert.Contains(t, restaurant.Cuisine, "Fine Dining")
			assert.Equal(t, "$$$$", restaurant.PriceRange)
		}
	}
}
