package gym_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"rockroutes/internal/repositories"
	"rockroutes/internal/services"
)

var Module = fx.Provide(
	provideGymRepo, provideGymService)

func provideGymRepo(db *gorm.DB) repositories.GymRepositoryInterface {
	return repositories.NewGymRepository(db)
}

func provideGymService(gymRepo repositories.GymRepositoryInterface) services.GymServiceInterface {
	return services.NewGymService(gymRepo)
}
