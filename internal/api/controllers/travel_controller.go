package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"roamai/internal/models/request_models"
	"roamai/internal/services"
	"roamai/pkg/utils"
)

type TravelController struct {
	plannerService        services.PlannerServiceInterface
	recommendationService services.RecommendationServiceInterface
}

func NewTravelController(
	plannerService services.PlannerServiceInterface,
	recommendationService services.RecommendationServiceInterface,
) *TravelController {
	return &TravelController{
		plannerService:        plannerService,
		recommendationService: recommendationService,
	}
}

// RecommendDestinations godoc
// @Summary Recommend travel destinations
// @Description Generate destination recommendations matching the traveler's preferences
// @Tags Travel
// @Accept json
// @Produce json
// @Param request body request_models.PreferencesRequest true "Travel preferences"
// @Success 200 {array} response_models.DestinationRecommendation
// @Failure 400 {object} utils.APIResponse
// @Router /travel/recommendations [post]
func (t *TravelController) RecommendDestinations(c *gin.Context) {
	var req request_models.PreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	preferences, err := req.ToPreferences()
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	recommendations, err := t.recommendationService.RecommendDestinations(c.Request.Context(), preferences)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, recommendations, "Destination recommendations generated successfully")
}

// CreateItinerary godoc
// @Summary Create and book a travel itinerary
// @Description Build a complete itinerary with flights, accommodation, and daily plans, booking everything along the way
// @Tags Travel
// @Accept json
// @Produce json
// @Param request body request_models.ItineraryRequest true "Itinerary request"
// @Success 200 {object} travel_models.TravelItinerary
// @Failure 400 {object} utils.APIResponse
// @Router /travel/itinerary [post]
func (t *TravelController) CreateItinerary(c *gin.Context) {
	var req request_models.ItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	preferences, err := req.Preferences.ToPreferences()
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	itinerary, err := t.plannerService.CreateAndBookItinerary(
		c.Request.Context(),
		preferences,
		req.Destination.ToLocation(),
		req.Traveler.ToTravelerDetails(),
	)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary created and booked successfully")
}

// GetTrendingDestinations godoc
// @Summary Get trending destinations
// @Description Fetch trend analysis for travel destinations, optionally scoped to a region
// @Tags Travel
// @Produce json
// @Param region query string false "Region to focus on"
// @Success 200 {object} map[string]interface{}
// @Router /travel/trending [get]
func (t *TravelController) GetTrendingDestinations(c *gin.Context) {
	region := c.Query("region")

	trends, err := t.recommendationService.TrendingDestinations(c.Request.Context(), region)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trends, "Trending destinations fetched successfully")
}

// GetSocialContent godoc
// @Summary Get social media content for a destination
// @Description Fetch simulated trending social content about a destination
// @Tags Travel
// @Produce json
// @Param destination path string true "Destination name"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.APIResponse
// @Router /travel/social-content/{destination} [get]
func (t *TravelController) GetSocialContent(c *gin.Context) {
	destination := c.Param("destination")
	if destination == "" {
		utils.RespondError(c, http.StatusBadRequest, "Destination is required")
		return
	}

	content, err := t.recommendationService.SocialMediaContent(c.Request.Context(), destination)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, content, "Social media content fetched successfully")
}

// GetPilgrimageInfo godoc
// @Summary Get pilgrimage travel guidance
// @Description Build a pilgrimage travel guide for travelers with a pilgrimage interest
// @Tags Travel
// @Accept json
// @Produce json
// @Param request body request_models.PreferencesRequest true "Travel preferences"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.APIResponse
// @Router /travel/pilgrimage [post]
func (t *TravelController) GetPilgrimageInfo(c *gin.Context) {
	var req request_models.PreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	preferences, err := req.ToPreferences()
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	info, err := t.recommendationService.PilgrimageGuide(c.Request.Context(), preferences)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, info, "Pilgrimage information fetched successfully")
}
