package response_models

import (
	"time"

	"quickmap/internal/models/db_models"
)

// GeoPoint follows GeoJSON: coordinates are [longitude, latitude], matching
// the order the map client and the geospatial index expect.
type GeoPoint struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

type Activity struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Category    string            `json:"category"`
	Location    GeoPoint          `json:"location"`
	Address     string            `json:"address"`
	Rating      float64           `json:"rating"`
	PriceRange  string            `json:"priceRange,omitempty"`
	Images      []string          `json:"images,omitempty"`
	Website     string            `json:"website,omitempty"`
	Phone       string            `json:"phone,omitempty"`
	Hours       map[string]string `json:"hours,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
}

func ActivityFromModel(a *db_models.Activity) Activity {
	return Activity{
		ID:          a.ID.String(),
		Name:        a.Name,
		Description: a.Description,
		Category:    string(a.Category),
		Location: GeoPoint{
			Type:        "Point",
			Coordinates: [2]float64{a.Longitude, a.Latitude},
		},
		Address:    a.Address,
		Rating:     a.Rating,
		PriceRange: a.PriceRange,
		Images:     a.Images,
		Website:    a.Website,
		Phone:      a.Phone,
		Hours:      a.Hours,
		CreatedAt:  a.CreatedAt,
	}
}
