package activityfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"quickmap/internal/repositories"
	"quickmap/internal/services"
)

var Module = fx.Provide(
	provideActivityRepo, provideActivityService)

func provideActivityRepo(db *gorm.DB) repositories.ActivityRepository {
	return repositories.NewActivityRepository(db)
}

func provideActivityService(activityRepo repositories.ActivityRepository, geocoder services.GeocodingService, log *zap.Logger) services.ActivityServiceInterface {
	return services.NewActivityService(activityRepo, geocoder, log)
}
