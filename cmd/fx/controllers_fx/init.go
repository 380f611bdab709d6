package controllersfx

import (
	"go.uber.org/fx"

	"quickmap/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewActivitiesController),
	fx.Provide(controllers.NewEventsController),
	fx.Provide(controllers.NewAuthController))
