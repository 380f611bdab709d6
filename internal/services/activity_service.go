package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"quickmap/internal/models/db_models"
	"quickmap/internal/models/request_models"
	"quickmap/internal/models/response_models"
	"quickmap/internal/repositories"
	"quickmap/pkg/utils"
)

const (
	DefaultRadiusMeters = 5000
	DefaultRelatedLimit = 8
)

type ActivityServiceInterface interface {
	ListActivities(ctx context.Context, filter repositories.NearbyFilter) ([]response_models.Activity, error)
	GetActivityByID(ctx context.Context, id string) (response_models.Activity, error)
	GetRelatedActivities(ctx context.Context, id string, radiusMeters, limit int) ([]response_models.Activity, error)
	CreateActivity(ctx context.Context, req request_models.CreateActivityRequest) (response_models.Activity, error)
}

type ActivityService struct {
	activityRepo repositories.ActivityRepository
	geocoder     GeocodingService
	logger       *zap.Logger
}

func NewActivityService(activityRepo repositories.ActivityRepository, geocoder GeocodingService, log *zap.Logger) ActivityServiceInterface {
	return &ActivityService{
		activityRepo: activityRepo,
		geocoder:     geocoder,
		logger:       log,
	}
}

func (s *ActivityService) ListActivities(ctx context.Context, filter repositories.NearbyFilter) ([]response_models.Activity, error) {
	if filter.Category != "" && !db_models.Category(filter.Category).Valid() {
		return nil, utils.ErrInvalidCategory
	}
	if filter.HasCenter && filter.RadiusMeters <= 0 {
		filter.RadiusMeters = DefaultRadiusMeters
	}

	activities, err := s.activityRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("error listing activities", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	return toActivityResponses(activities), nil
}

func (s *ActivityService) GetActivityByID(ctx context.Context, id string) (response_models.Activity, error) {
	activity, err := s.loadActivity(ctx, id)
	if err != nil {
		return response_models.Activity{}, err
	}
	return response_models.ActivityFromModel(activity), nil
}

func (s *ActivityService) GetRelatedActivities(ctx context.Context, id string, radiusMeters, limit int) ([]response_models.Activity, error) {
	activity, err := s.loadActivity(ctx, id)
	if err != nil {
		return nil, err
	}

	if radiusMeters <= 0 {
		radiusMeters = DefaultRadiusMeters
	}
	if limit <= 0 {
		limit = DefaultRelatedLimit
	}

	related, err := s.activityRepo.ListRelated(ctx, activity, radiusMeters, limit)
	if err != nil {
		s.logger.Error("error listing related activities", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	return toActivityResponses(related), nil
}

func (s *ActivityService) CreateActivity(ctx context.Context, req request_models.CreateActivityRequest) (response_models.Activity, error) {
	lat, lng, err := s.geocoder.Geocode(ctx, req.Address)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidAddress) {
			return response_models.Activity{}, utils.ErrInvalidAddress
		}
		s.logger.Error("error geocoding address", zap.Error(err))
		return response_models.Activity{}, err
	}

	activity := &db_models.Activity{
		Name:        req.Name,
		Description: req.Description,
		Category:    db_models.Category(req.Category),
		Longitude:   lng,
		Latitude:    lat,
		Address:     req.Address,
		Rating:      req.Rating,
		PriceRange:  req.PriceRange,
		Images:      req.Images,
		Website:     req.Website,
		Phone:       req.Phone,
		Hours:       req.Hours,
	}

	if err := s.activityRepo.Create(ctx, activity); err != nil {
		s.logger.Error("error creating activity", zap.Error(err))
		return response_models.Activity{}, utils.ErrDatabaseError
	}

	return response_models.ActivityFromModel(activity), nil
}

// loadActivity centralizes the not-found and missing-location guards shared by
// the detail and related lookups.
func (s *ActivityService) loadActivity(ctx context.Context, id string) (*db_models.Activity, error) {
	activity, err := s.activityRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("error fetching activity", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if activity == nil {
		return nil, utils.ErrActivityNotFound
	}
	if !activity.HasLocation() {
		return nil, utils.ErrInvalidLocation
	}
	return activity, nil
}

func toActivityResponses(activities []db_models.Activity) []response_models.Activity {
	responses := make([]response_models.Activity, 0, len(activities))
	for i := range activities {
		responses = append(responses, response_models.ActivityFromModel(&activities[i]))
	}
	return responses
}
