package controllers_fx

import (
	"go.uber.org/fx"
	"roamai/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewTravelController),
	fx.Provide(controllers.NewNotificationController))
