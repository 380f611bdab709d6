package geocodefx

import (
	"go.uber.org/fx"

	"quickmap/internal/services"
)

var Module = fx.Provide(services.NewGoogleGeocodingClient)
