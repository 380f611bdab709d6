package dbfx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"quickmap/internal/infra"
)

var Module = fx.Options(
	fx.Provide(infra.InitPostgresql),
	fx.Invoke(registerClose),
)

func registerClose(lc fx.Lifecycle, db *gorm.DB, log *zap.Logger) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.ClosePostgresql(db, log)
			return nil
		},
	})
}
