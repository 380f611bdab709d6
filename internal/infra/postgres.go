package infra

import (
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"quickmap/internal/models/db_models"
)

// Proximity queries run over a geography expression instead of a dedicated
// geometry column, so the index has to cover the same expression.
const locationIndexSQL = `CREATE INDEX IF NOT EXISTS idx_activities_location
ON activities USING gist ((ST_SetSRID(ST_MakePoint(longitude, latitude), 4326)::geography))`

func InitPostgresql(cfg *Config, log *zap.Logger) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.PostgresURL), &gorm.Config{})
	if err != nil {
		log.Fatal("error connecting to database", zap.Error(err))
	}

	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS postgis").Error; err != nil {
		log.Fatal("error enabling postgis extension", zap.Error(err))
	}

	if err := db.AutoMigrate(&db_models.Activity{}); err != nil {
		log.Fatal("error migrating schema", zap.Error(err))
	}

	if err := db.Exec(locationIndexSQL).Error; err != nil {
		log.Fatal("error creating location index", zap.Error(err))
	}

	return db
}

func ClosePostgresql(db *gorm.DB, log *zap.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Error("error getting database instance", zap.Error(err))
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Error("error closing database connection", zap.Error(err))
	}
}
