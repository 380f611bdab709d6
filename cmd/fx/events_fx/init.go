package eventsfx

import (
	"go.uber.org/fx"

	"quickmap/internal/services"
)

var Module = fx.Provide(services.NewSeatGeekClient)
