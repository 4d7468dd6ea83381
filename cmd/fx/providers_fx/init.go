package providers_fx

import (
	"go.uber.org/fx"
	"roamai/internal/services"
	"roamai/pkg/utils"
)

var Module = fx.Provide(
	provideRandSource,
	provideBudgetService,
	provideFlightService,
	provideAccommodationService,
	provideActivityService,
	provideSchedulerService,
)

func provideRandSource() *utils.RandSource {
	return utils.NewRandSource(int64(utils.GetEnvInt("PROVIDER_SEED", 0)))
}

func provideBudgetService() services.BudgetServiceInterface {
	return services.NewBudgetService(services.DefaultBudgetPolicy)
}

func provideFlightService(rand *utils.RandSource) services.FlightServiceInterface {
	return services.NewFlightService(services.DefaultFlightCatalog(), rand)
}

func provideAccommodationService(rand *utils.RandSource) services.AccommodationServiceInterface {
	return services.NewAccommodationService(services.DefaultAccommodationCatalog(), rand)
}

func provideActivityService(rand *utils.RandSource) services.ActivityServiceInterface {
	return services.NewActivityService(services.DefaultActivityCatalog(), rand)
}

func provideSchedulerService(activityService services.ActivityServiceInterface, rand *utils.RandSource) services.SchedulerServiceInterface {
	return services.NewSchedulerService(activityService, rand)
}
