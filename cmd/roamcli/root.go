package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"roamai/internal/models/travel_models"
	"roamai/internal/services"
	"roamai/pkg/memcache"
	"roamai/pkg/utils"
)

var rootCmd = &cobra.Command{
	Use:   "roamcli",
	Short: "RoamAI travel planning from the command line",
	Long: `roamcli plans trips without the HTTP server: destination
recommendations, trending analysis, and full itinerary assembly with
flights, accommodation, and day-by-day activity plans.`,
	SilenceUsage: true,
}

var seed int64

func init() {
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "Seed for provider randomness (0 means time-based)")

	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(trendingCmd)
	rootCmd.AddCommand(socialCmd)
	rootCmd.AddCommand(pilgrimageCmd)
}

// buildPlanner wires the provider stack the same way the server does, minus
// the DI container.
func buildPlanner() services.PlannerServiceInterface {
	rand := utils.NewRandSource(seed)
	config := services.PlannerConfigFromEnv()

	activityService := services.NewActivityService(services.DefaultActivityCatalog(), rand)

	return services.NewPlannerService(
		config,
		services.NewBudgetService(services.DefaultBudgetPolicy),
		services.NewFlightService(services.DefaultFlightCatalog(), rand),
		services.NewAccommodationService(services.DefaultAccommodationCatalog(), rand),
		services.NewSchedulerService(activityService, rand),
	)
}

func buildRecommender() (services.RecommendationServiceInterface, error) {
	provider := utils.GetEnvWithDefault("AI_PROVIDER", "openai")

	var apiKey string
	switch provider {
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
	default:
		apiKey = os.Getenv("OPENAI_API_KEY")
	}

	client, err := utils.NewAIClient(provider, apiKey, utils.GetEnvWithDefault("AI_MODEL", ""))
	if err != nil {
		return nil, err
	}

	return services.NewRecommendationService(client, memcache.NewTrendCache(), services.PlannerConfigFromEnv()), nil
}

func printJSON(v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

// preferenceFlags holds the flag values shared by plan, recommend, and
// pilgrimage.
type preferenceFlags struct {
	destination string
	budget      float64
	startDate   string
	endDate     string
	travelers   int
	styles      []string
	interests   []string
}

func (f *preferenceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.destination, "destination", "", "Preferred destination, if any")
	cmd.Flags().Float64Var(&f.budget, "budget", 0, "Total trip budget in USD")
	cmd.Flags().StringVar(&f.startDate, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.endDate, "end", "", "End date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&f.travelers, "travelers", 1, "Number of travelers")
	cmd.Flags().StringSliceVar(&f.styles, "style", []string{"budget"}, "Travel styles (luxury, budget, family, solo, couple, group, business)")
	cmd.Flags().StringSliceVar(&f.interests, "interest", []string{"sightseeing"}, "Interests (adventure, relaxation, culture, food, shopping, nature, beach, pilgrimage, sightseeing, history)")

	_ = cmd.MarkFlagRequired("budget")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
}

func (f *preferenceFlags) toPreferences() (travel_models.Preferences, error) {
	startDate, err := utils.ParseDate(f.startDate)
	if err != nil {
		return travel_models.Preferences{}, err
	}
	endDate, err := utils.ParseDate(f.endDate)
	if err != nil {
		return travel_models.Preferences{}, err
	}

	styles := make([]travel_models.TravelStyle, 0, len(f.styles))
	for _, raw := range f.styles {
		style, ok := travel_models.ParseTravelStyle(raw)
		if !ok {
			return travel_models.Preferences{}, fmt.Errorf("unknown travel style %q", raw)
		}
		styles = append(styles, style)
	}

	interests := make([]travel_models.TravelInterest, 0, len(f.interests))
	for _, raw := range f.interests {
		interest, ok := travel_models.ParseTravelInterest(raw)
		if !ok {
			return travel_models.Preferences{}, fmt.Errorf("unknown interest %q", raw)
		}
		interests = append(interests, interest)
	}

	preferences := travel_models.Preferences{
		Destination: f.destination,
		Budget:      f.budget,
		StartDate:   startDate,
		EndDate:     endDate,
		Travelers:   f.travelers,
		TravelStyle: styles,
		Interests:   interests,
	}
	if err := preferences.Validate(); err != nil {
		return travel_models.Preferences{}, err
	}

	return preferences, nil
}
