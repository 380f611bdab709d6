package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"quickmap/internal/models/db_models"
)

// NearbyFilter describes a list query. When HasCenter is false the geo filter
// is skipped entirely and only the category filter applies.
type NearbyFilter struct {
	Category     string
	HasCenter    bool
	Lat          float64
	Lng          float64
	RadiusMeters int
}

type ActivityRepository interface {
	Create(ctx context.Context, activity *db_models.Activity) error
	GetByID(ctx context.Context, id string) (*db_models.Activity, error)
	List(ctx context.Context, filter NearbyFilter) ([]db_models.Activity, error)
	ListRelated(ctx context.Context, target *db_models.Activity, radiusMeters, limit int) ([]db_models.Activity, error)
}

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

// geography expressions reused by every proximity query; both must stay in
// sync with the expression index created at startup.
const (
	rowPoint    = "ST_SetSRID(ST_MakePoint(longitude, latitude), 4326)::geography"
	centerPoint = "ST_SetSRID(ST_MakePoint(?, ?), 4326)::geography"
)

func (r *activityRepository) Create(ctx context.Context, activity *db_models.Activity) error {
	return r.db.WithContext(ctx).Create(activity).Error
}

func (r *activityRepository) GetByID(ctx context.Context, id string) (*db_models.Activity, error) {
	var activity db_models.Activity
	err := r.db.WithContext(ctx).First(&activity, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &activity, nil
}

func (r *activityRepository) List(ctx context.Context, filter NearbyFilter) ([]db_models.Activity, error) {
	var activities []db_models.Activity

	if !filter.HasCenter {
		q := r.db.WithContext(ctx)
		if filter.Category != "" {
			q = q.Where("category = ?", filter.Category)
		}
		if err := q.Find(&activities).Error; err != nil {
			return nil, err
		}
		return activities, nil
	}

	sql := "SELECT * FROM activities WHERE ST_DWithin(" + rowPoint + ", " + centerPoint + ", ?)"
	args := []interface{}{filter.Lng, filter.Lat, filter.RadiusMeters}

	if filter.Category != "" {
		sql += " AND category = ?"
		args = append(args, filter.Category)
	}

	sql += " ORDER BY ST_Distance(" + rowPoint + ", " + centerPoint + ") ASC"
	args = append(args, filter.Lng, filter.Lat)

	if err := r.db.WithContext(ctx).Raw(sql, args...).Scan(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

func (r *activityRepository) ListRelated(ctx context.Context, target *db_models.Activity, radiusMeters, limit int) ([]db_models.Activity, error) {
	var activities []db_models.Activity

	sql := "SELECT * FROM activities WHERE id <> ? AND category = ?" +
		" AND ST_DWithin(" + rowPoint + ", " + centerPoint + ", ?)" +
		" ORDER BY ST_Distance(" + rowPoint + ", " + centerPoint + ") ASC LIMIT ?"

	err := r.db.WithContext(ctx).
		Raw(sql,
			target.ID, target.Category,
			target.Longitude, target.Latitude, radiusMeters,
			target.Longitude, target.Latitude,
			limit).
		Scan(&activities).Error
	if err != nil {
		return nil, err
	}
	return activities, nil
}
