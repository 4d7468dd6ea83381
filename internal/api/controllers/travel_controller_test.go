package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"roamai/internal/models/response_models"
	"roamai/internal/models/travel_models"
	"roamai/internal/services"
	"roamai/pkg/utils"
)

type stubPlannerService struct {
	itinerary *travel_models.TravelItinerary
	err       error
}

func (s *stubPlannerService) CreateAndBookItinerary(ctx context.Context, preferences travel_models.Preferences, destination travel_models.Location, traveler travel_models.TravelerDetails) (*travel_models.TravelItinerary, error) {
	return s.itinerary, s.err
}

type stubRecommendationService struct {
	recommendations []response_models.DestinationRecommendation
	payload         map[string]interface{}
	err             error
}

func (s *stubRecommendationService) RecommendDestinations(ctx context.Context, preferences travel_models.Preferences) ([]response_models.DestinationRecommendation, error) {
	return s.recommendations, s.err
}

func (s *stubRecommendationService) TrendingDestinations(ctx context.Context, region string) (map[string]interface{}, error) {
	return s.payload, s.err
}

func (s *stubRecommendationService) SocialMediaContent(ctx context.Context, destination string) (map[string]interface{}, error) {
	return s.payload, s.err
}

func (s *stubRecommendationService) PilgrimageGuide(ctx context.Context, preferences travel_models.Preferences) (map[string]interface{}, error) {
	return s.payload, s.err
}

func newTestRouter(planner services.PlannerServiceInterface, recommender services.RecommendationServiceInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewTravelController(planner, recommender)

	r := gin.New()
	r.POST("/travel/recommendations", controller.RecommendDestinations)
	r.POST("/travel/itinerary", controller.CreateItinerary)
	r.GET("/travel/trending", controller.GetTrendingDestinations)
	r.GET("/travel/social-content/:destination", controller.GetSocialContent)
	r.POST("/travel/pilgrimage", controller.GetPilgrimageInfo)
	return r
}

func preferencesBody() map[string]interface{} {
	return map[string]interface{}{
		"budget":       5000,
		"start_date":   "2025-11-10",
		"end_date":     "2025-11-15",
		"travelers":    2,
		"travel_style": []string{"couple"},
		"interests":    []string{"culture", "food"},
	}
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRecommendDestinationsEndpoint(t *testing.T) {
	recommender := &stubRecommendationService{
		recommendations: []response_models.DestinationRecommendation{
			{City: "Dubai", Country: "United Arab Emirates"},
		},
	}
	r := newTestRouter(&stubPlannerService{}, recommender)

	w := doRequest(t, r, http.MethodPost, "/travel/recommendations", preferencesBody())
	require.Equal(t, http.StatusOK, w.Code)

	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.NotNil(t, resp.Data)
}

func TestRecommendDestinationsRejectsBadBody(t *testing.T) {
	r := newTestRouter(&stubPlannerService{}, &stubRecommendationService{})

	w := doRequest(t, r, http.MethodPost, "/travel/recommendations", map[string]interface{}{"budget": -5})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRecommendDestinationsRejectsUnknownStyle(t *testing.T) {
	r := newTestRouter(&stubPlannerService{}, &stubRecommendationService{})

	body := preferencesBody()
	body["travel_style"] = []string{"opulent"}

	w := doRequest(t, r, http.MethodPost, "/travel/recommendations", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateItineraryEndpoint(t *testing.T) {
	planner := &stubPlannerService{itinerary: &travel_models.TravelItinerary{ItineraryID: "ITN12345678"}}
	r := newTestRouter(planner, &stubRecommendationService{})

	body := map[string]interface{}{
		"preferences": preferencesBody(),
		"destination": map[string]interface{}{"city": "Dubai", "country": "United Arab Emirates"},
		"traveler":    map[string]interface{}{"name": "Sara Malik", "email": "sara@example.com"},
	}

	w := doRequest(t, r, http.MethodPost, "/travel/itinerary", body)
	require.Equal(t, http.StatusOK, w.Code)

	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
}

func TestCreateItineraryPlannerFailure(t *testing.T) {
	planner := &stubPlannerService{err: utils.ErrAssemblyFailure}
	r := newTestRouter(planner, &stubRecommendationService{})

	body := map[string]interface{}{
		"preferences": preferencesBody(),
		"destination": map[string]interface{}{"city": "Dubai", "country": "United Arab Emirates"},
		"traveler":    map[string]interface{}{"name": "Sara Malik", "email": "sara@example.com"},
	}

	w := doRequest(t, r, http.MethodPost, "/travel/itinerary", body)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestTrendingEndpoint(t *testing.T) {
	recommender := &stubRecommendationService{payload: map[string]interface{}{"destinations": []string{"AlUla"}}}
	r := newTestRouter(&stubPlannerService{}, recommender)

	w := doRequest(t, r, http.MethodGet, "/travel/trending?region=Middle+East", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSocialContentEndpoint(t *testing.T) {
	recommender := &stubRecommendationService{payload: map[string]interface{}{"reels": []string{}}}
	r := newTestRouter(&stubPlannerService{}, recommender)

	w := doRequest(t, r, http.MethodGet, "/travel/social-content/Dubai", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPilgrimageEndpointInvalidInterest(t *testing.T) {
	recommender := &stubRecommendationService{err: utils.ErrInvalidInput}
	r := newTestRouter(&stubPlannerService{}, recommender)

	w := doRequest(t, r, http.MethodPost, "/travel/pilgrimage", preferencesBody())
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
