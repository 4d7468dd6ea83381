package planner_fx

import (
	"go.uber.org/fx"
	"roamai/internal/services"
	"roamai/pkg/memcache"
	"roamai/pkg/utils"
)

var Module = fx.Provide(providePlannerConfig, providePlannerService, provideRecommendationService)

func providePlannerConfig() services.PlannerConfig {
	return services.PlannerConfigFromEnv()
}

func providePlannerService(
	config services.PlannerConfig,
	budgetService services.BudgetServiceInterface,
	flightService services.FlightServiceInterface,
	accommodationService services.AccommodationServiceInterface,
	schedulerService services.SchedulerServiceInterface,
) services.PlannerServiceInterface {
	return services.NewPlannerService(config, budgetService, flightService, accommodationService, schedulerService)
}

func provideRecommendationService(
	aiClient utils.AIClientInterface,
	trendCache memcache.TrendCacheStore,
	config services.PlannerConfig,
) services.RecommendationServiceInterface {
	return services.NewRecommendationService(aiClient, trendCache, config)
}
