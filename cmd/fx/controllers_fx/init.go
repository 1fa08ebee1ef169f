package controllers_fx

import (
	"go.uber.org/fx"
	"rockroutes/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewGymController),
	fx.Provide(controllers.NewRouteController))
