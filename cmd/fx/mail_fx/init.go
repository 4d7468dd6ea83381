package mail_fx

import (
	"go.uber.org/fx"
	"roamai/internal/services"
)

var Module = fx.Provide(provideNotificationService)

func provideNotificationService() services.NotificationServiceInterface {
	return services.NewNotificationService(services.SMTPConfigFromEnv())
}
