package db_models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type Category string

const (
	CategoryFun           Category = "fun"
	CategoryHikes         Category = "hikes"
	CategoryFood          Category = "food"
	CategoryEntertainment Category = "entertainment"
	CategorySports        Category = "sports"
	CategoryCultural      Category = "cultural"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryFun, CategoryHikes, CategoryFood, CategoryEntertainment, CategorySports, CategoryCultural:
		return true
	}
	return false
}

// Activity is a place a user can visit. Coordinates are stored as plain
// columns; the GeoJSON [lng, lat] shape only exists in the response model.
type Activity struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"not null"`
	Description string    `gorm:"not null"`
	Category    Category  `gorm:"type:text;not null;index"`
	Longitude   float64   `gorm:"not null"`
	Latitude    float64   `gorm:"not null"`
	Address     string    `gorm:"not null"`
	Rating      float64   `gorm:"default:0"`
	PriceRange  string
	Images      pq.StringArray    `gorm:"type:text[]"`
	Website     string
	Phone       string
	Hours       map[string]string `gorm:"serializer:json"`
	CreatedAt   time.Time         `gorm:"autoCreateTime"`
}

func (a *Activity) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// HasLocation guards against rows written before coordinates were required.
func (a *Activity) HasLocation() bool {
	return a.Longitude != 0 || a.Latitude != 0
}
