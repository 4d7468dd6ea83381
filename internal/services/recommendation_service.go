package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"roamai/internal/models/response_models"
	"roamai/internal/models/travel_models"
	"roamai/pkg/memcache"
	"roamai/pkg/utils"
)

const trendCacheTTL = 30 * time.Minute

type RecommendationServiceInterface interface {
	RecommendDestinations(ctx context.Context, preferences travel_models.Preferences) ([]response_models.DestinationRecommendation, error)
	TrendingDestinations(ctx context.Context, region string) (map[string]interface{}, error)
	SocialMediaContent(ctx context.Context, destination string) (map[string]interface{}, error)
	PilgrimageGuide(ctx context.Context, preferences travel_models.Preferences) (map[string]interface{}, error)
}

type RecommendationService struct {
	aiClient   utils.AIClientInterface
	trendCache memcache.TrendCacheStore
	config     PlannerConfig
}

func NewRecommendationService(aiClient utils.AIClientInterface, trendCache memcache.TrendCacheStore, config PlannerConfig) RecommendationServiceInterface {
	return &RecommendationService{
		aiClient:   aiClient,
		trendCache: trendCache,
		config:     config,
	}
}

// RecommendDestinations asks the generation service for up to five
// destinations matching the preferences. Malformed or empty responses
// degrade to an empty slice rather than an error; advisory content never
// blocks a caller.
func (r *RecommendationService) RecommendDestinations(ctx context.Context, preferences travel_models.Preferences) ([]response_models.DestinationRecommendation, error) {
	log.Println("Generating destination recommendations")

	systemPrompt := "You are a travel destination recommendation expert with knowledge of trending destinations, especially in the Middle East and Saudi Arabia. Your task is to recommend destinations based on user preferences."

	raw, err := r.aiClient.GenerateJSON(ctx, systemPrompt, r.destinationPrompt(preferences))
	if err != nil {
		log.Printf("Error generating travel recommendations: %v", err)
		return []response_models.DestinationRecommendation{}, nil
	}

	var payload struct {
		Destinations []response_models.DestinationRecommendation `json:"destinations"`
	}
	if err := json.Unmarshal([]byte(utils.CleanJSONResponse(raw)), &payload); err != nil {
		log.Printf("Error parsing recommendation response: %v", err)
		return []response_models.DestinationRecommendation{}, nil
	}

	recommendations := make([]response_models.DestinationRecommendation, 0, len(payload.Destinations))
	for _, rec := range payload.Destinations {
		if rec.City == "" || rec.Country == "" {
			continue
		}
		recommendations = append(recommendations, rec)
	}

	return recommendations, nil
}

// TrendingDestinations serves trend analysis for a region, caching each
// region's payload for 30 minutes.
func (r *RecommendationService) TrendingDestinations(ctx context.Context, region string) (map[string]interface{}, error) {
	cacheKey := region
	if cacheKey == "" {
		cacheKey = "global"
	}
	if cached, ok := r.trendCache.Get(cacheKey); ok {
		return cached, nil
	}

	prompt := "Provide an analysis of current trending travel destinations"
	if region != "" {
		prompt += " in " + region
	}
	prompt += ". Include information about why these destinations are trending, unique experiences they offer, and any recent developments that make them attractive to travelers. Format the response as a structured JSON with an array of destinations."
	if r.config.PrioritizeMiddleEast {
		prompt += " Prioritize destinations in the Middle East and Saudi Arabia."
	}

	systemPrompt := "You are a travel trend analyst with deep knowledge of global travel trends, especially in the Middle East and Saudi Arabia."

	payload := r.generateObject(ctx, systemPrompt, prompt, "destination trends")
	if len(payload) > 0 {
		r.trendCache.Set(cacheKey, payload, trendCacheTTL)
	}

	return payload, nil
}

func (r *RecommendationService) SocialMediaContent(ctx context.Context, destination string) (map[string]interface{}, error) {
	prompt := fmt.Sprintf("Generate a list of simulated trending social media content about %s that would help a traveler get excited about visiting. Include types of content like 'reels', 'photos', 'vlogs', and 'posts'. For each piece of content, provide a title, brief description, popularity metrics, and a fictional creator name. Format the response as a structured JSON with arrays for each content type.", destination)

	systemPrompt := "You are a social media analyst specializing in travel content."

	return r.generateObject(ctx, systemPrompt, prompt, "social media content"), nil
}

// PilgrimageGuide builds a pilgrimage travel guide through the Nusuk
// partnership. It requires the partnership flag and a pilgrimage interest.
func (r *RecommendationService) PilgrimageGuide(ctx context.Context, preferences travel_models.Preferences) (map[string]interface{}, error) {
	if !r.config.PartnerWithNusuk {
		return nil, fmt.Errorf("nusuk partnership is not enabled: %w", utils.ErrInvalidInput)
	}
	if !preferences.HasInterest(travel_models.InterestPilgrimage) {
		return nil, fmt.Errorf("pilgrimage is not among the traveler's interests: %w", utils.ErrInvalidInput)
	}

	prompt := `Create a comprehensive guide for pilgrimage travel to Saudi Arabia, including:
1. Visa requirements and process
2. Recommended accommodations near religious sites
3. Suggested itinerary for religious activities
4. Essential items to pack
5. Cultural norms and etiquette to observe
6. Health and safety recommendations
7. Available flights through Nusuk's 450+ airline partners

Format the response as a structured JSON with sections for each category.`

	systemPrompt := "You are a pilgrimage travel specialist with deep knowledge of religious travel to Saudi Arabia."

	payload := r.generateObject(ctx, systemPrompt, prompt, "pilgrimage guide")
	if len(payload) > 0 {
		payload["nusuk_partnership"] = true
		payload["airline_count"] = r.config.AirlinesCount
	}

	return payload, nil
}

// generateObject runs one generation call and parses the result as a JSON
// object. Failures log and return an empty map.
func (r *RecommendationService) generateObject(ctx context.Context, systemPrompt, userPrompt, what string) map[string]interface{} {
	raw, err := r.aiClient.GenerateJSON(ctx, systemPrompt, userPrompt)
	if err != nil {
		log.Printf("Error generating %s: %v", what, err)
		return map[string]interface{}{}
	}

	var payload map[string]interface{}
	if err := json.Unmarshal([]byte(utils.CleanJSONResponse(raw)), &payload); err != nil {
		log.Printf("Error parsing %s response: %v", what, err)
		return map[string]interface{}{}
	}

	return payload
}

func (r *RecommendationService) destinationPrompt(preferences travel_models.Preferences) string {
	var b strings.Builder
	b.WriteString("Based on the following user preferences, recommend 5 suitable travel destinations:\n\n")

	if preferences.Destination != "" {
		fmt.Fprintf(&b, "Preferred destination: %s\n", preferences.Destination)
	} else {
		b.WriteString("No specific destination preference (open to recommendations)\n")
	}

	fmt.Fprintf(&b, "Budget: $%.2f\n", preferences.Budget)
	fmt.Fprintf(&b, "Travel dates: %s to %s\n", preferences.StartDate.Format("2006-01-02"), preferences.EndDate.Format("2006-01-02"))
	fmt.Fprintf(&b, "Number of travelers: %d\n", preferences.Travelers)
	fmt.Fprintf(&b, "Travel style: %s\n", joinStyles(preferences.TravelStyle))
	fmt.Fprintf(&b, "Interests: %s\n", joinInterests(preferences.Interests))

	if preferences.IsFlexibleDates {
		b.WriteString("Dates are flexible\n")
	}
	if preferences.IsFlexibleDest {
		b.WriteString("Destination is flexible\n")
	}
	if len(preferences.PreviousDestinations) > 0 {
		fmt.Fprintf(&b, "Previous destinations: %s\n", strings.Join(preferences.PreviousDestinations, ", "))
	}
	if preferences.SpecialRequirements != "" {
		fmt.Fprintf(&b, "Special requirements: %s\n", preferences.SpecialRequirements)
	}

	if r.config.PrioritizeMiddleEast {
		b.WriteString("\nPrioritize destinations in the Middle East and Saudi Arabia, but include other options if they are a better match for the preferences.\n")
	}
	if preferences.HasInterest(travel_models.InterestPilgrimage) {
		b.WriteString("\nInclude options for religious pilgrimage in Saudi Arabia, highlighting Nusuk partnership benefits.\n")
	}

	b.WriteString(`
Format your response as a JSON object with the following structure:
{
    "destinations": [
        {
            "city": "City name",
            "country": "Country name",
            "region": "Region name",
            "description": "Brief description of the destination and why it matches the preferences",
            "key_attractions": ["Attraction 1", "Attraction 2", ...],
            "estimated_daily_cost": Numeric value in USD,
            "best_time_to_visit": "Information about the best time to visit",
            "latitude": Numeric latitude value (optional),
            "longitude": Numeric longitude value (optional)
        },
        ...
    ]
}
`)

	return b.String()
}

func joinStyles(styles []travel_models.TravelStyle) string {
	parts := make([]string, 0, len(styles))
	for _, s := range styles {
		parts = append(parts, string(s))
	}
	return strings.Join(parts, ", ")
}

func joinInterests(interests []travel_models.TravelInterest) string {
	parts := make([]string, 0, len(interests))
	for _, i := range interests {
		parts = append(parts, string(i))
	}
	return strings.Join(parts, ", ")
}
