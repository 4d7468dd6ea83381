package request_models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"roamai/internal/models/travel_models"
	"roamai/pkg/utils"
)

func validPreferencesRequest() PreferencesRequest {
	return PreferencesRequest{
		Budget:      5000,
		StartDate:   "2025-11-10",
		EndDate:     "2025-11-15",
		Travelers:   2,
		TravelStyle: []string{"couple"},
		Interests:   []string{"culture", "food"},
	}
}

func TestToPreferences(t *testing.T) {
	preferences, err := validPreferencesRequest().ToPreferences()
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC), preferences.StartDate)
	assert.Equal(t, time.Date(2025, 11, 15, 0, 0, 0, 0, time.UTC), preferences.EndDate)
	assert.Equal(t, []travel_models.TravelStyle{travel_models.StyleCouple}, preferences.TravelStyle)
	assert.Equal(t, []travel_models.TravelInterest{travel_models.InterestCulture, travel_models.InterestFood}, preferences.Interests)
	assert.Equal(t, 6, preferences.TripDuration())
}

func TestToPreferencesRejectsBadDates(t *testing.T) {
	req := validPreferencesRequest()
	req.StartDate = "10/11/2025"
	_, err := req.ToPreferences()
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	req = validPreferencesRequest()
	req.StartDate = "2025-11-20"
	req.EndDate = "2025-11-10"
	_, err = req.ToPreferences()
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestToPreferencesRejectsUnknownEnums(t *testing.T) {
	req := validPreferencesRequest()
	req.TravelStyle = []string{"opulent"}
	_, err := req.ToPreferences()
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	req = validPreferencesRequest()
	req.Interests = []string{"spelunking"}
	_, err = req.ToPreferences()
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestToPreferencesRejectsBadBudget(t *testing.T) {
	req := validPreferencesRequest()
	req.Budget = -1
	_, err := req.ToPreferences()
	assert.ErrorIs(t, err, utils.ErrInvalidBudget)
}

func TestToLocation(t *testing.T) {
	lat, lon := 25.2048, 55.2708
	req := DestinationRequest{City: "Dubai", Country: "United Arab Emirates", Region: "Middle East", Latitude: &lat, Longitude: &lon}

	loc := req.ToLocation()
	assert.Equal(t, "Dubai", loc.City)
	assert.Equal(t, "Middle East", loc.Region)
	require.NotNil(t, loc.Latitude)
	assert.Equal(t, 25.2048, *loc.Latitude)
}
