package configfx

import (
	"go.uber.org/fx"

	"quickmap/internal/infra"
)

var Module = fx.Provide(infra.LoadConfig)
