package route_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"rockroutes/internal/repositories"
	"rockroutes/internal/services"
)

var Module = fx.Provide(
	provideRouteRepo, provideRouteService)

func provideRouteRepo(db *gorm.DB) repositories.RouteRepositoryInterface {
	return repositories.NewRouteRepository(db)
}

func provideRouteService(routeRepo repositories.RouteRepositoryInterface, gymRepo repositories.GymRepositoryInterface) services.RouteServiceInterface {
	return services.NewRouteService(routeRepo, gymRepo)
}
