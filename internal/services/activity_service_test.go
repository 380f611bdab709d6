package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"quickmap/internal/models/db_models"
	"quickmap/internal/models/request_models"
	"quickmap/internal/models/response_models"
	"quickmap/internal/repositories"
	"quickmap/pkg/utils"
)

type fakeActivityRepo struct {
	byID          map[string]*db_models.Activity
	listResult    []db_models.Activity
	relatedResult []db_models.Activity
	err           error

	createCalls int
	created     *db_models.Activity
	lastFilter  repositories.NearbyFilter
	lastTarget  *db_models.Activity
	lastRadius  int
	lastLimit   int
}

func (f *fakeActivityRepo) Create(ctx context.Context, activity *db_models.Activity) error {
	f.createCalls++
	if f.err != nil {
		return f.err
	}
	if activity.ID == uuid.Nil {
		activity.ID = uuid.New()
	}
	f.created = activity
	return nil
}

func (f *fakeActivityRepo) GetByID(ctx context.Context, id string) (*db_models.Activity, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byID[id], nil
}

func (f *fakeActivityRepo) List(ctx context.Context, filter repositories.NearbyFilter) ([]db_models.Activity, error) {
	f.lastFilter = filter
	if f.err != nil {
		return nil, f.err
	}
	return f.listResult, nil
}

func (f *fakeActivityRepo) ListRelated(ctx context.Context, target *db_models.Activity, radiusMeters, limit int) ([]db_models.Activity, error) {
	f.lastTarget = target
	f.lastRadius = radiusMeters
	f.lastLimit = limit
	if f.err != nil {
		return nil, f.err
	}
	return f.relatedResult, nil
}

type fakeGeocoder struct {
	lat, lng float64
	err      error
	calls    int
}

func (f *fakeGeocoder) Geocode(ctx context.Context, address string) (float64, float64, error) {
	f.calls++
	if f.err != nil {
		return 0, 0, f.err
	}
	return f.lat, f.lng, nil
}

func newTestActivityService(repo *fakeActivityRepo, geocoder *fakeGeocoder) ActivityServiceInterface {
	return NewActivityService(repo, geocoder, zap.NewNop())
}

func storedActivity(category db_models.Category, lng, lat float64) *db_models.Activity {
	return &db_models.Activity{
		ID:          uuid.New(),
		Name:        "Test Spot",
		Description: "A spot for tests",
		Category:    category,
		Longitude:   lng,
		Latitude:    lat,
		Address:     "1 Test Way",
	}
}

func TestCreateActivity_UngeocodableAddressPersistsNothing(t *testing.T) {
	repo := &fakeActivityRepo{}
	geocoder := &fakeGeocoder{err: utils.ErrInvalidAddress}
	svc := newTestActivityService(repo, geocoder)

	_, err := svc.CreateActivity(context.Background(), request_models.CreateActivityRequest{
		Name:        "New Spot",
		Description: "desc",
		Category:    "food",
		Address:     "not a real place",
	})

	assert.ErrorIs(t, err, utils.ErrInvalidAddress)
	assert.Equal(t, 0, repo.createCalls, "nothing may be persisted for a bad address")
}

func TestCreateActivity_StoresGeocodedCoordinatesLngLat(t *testing.T) {
	repo := &fakeActivityRepo{}
	geocoder := &fakeGeocoder{lat: 34.0, lng: -84.5}
	svc := newTestActivityService(repo, geocoder)

	created, err := svc.CreateActivity(context.Background(), request_models.CreateActivityRequest{
		Name:        "New Spot",
		Description: "desc",
		Category:    "food",
		Address:     "123 Main St",
		Rating:      4.5,
	})

	require.NoError(t, err)
	require.NotNil(t, repo.created)
	assert.Equal(t, -84.5, repo.created.Longitude)
	assert.Equal(t, 34.0, repo.created.Latitude)
	assert.Equal(t, 1, geocoder.calls)

	// GeoJSON order is [lng, lat].
	assert.Equal(t, [2]float64{-84.5, 34.0}, created.Location.Coordinates)
	assert.NotEmpty(t, created.ID)
}

func TestGetActivityByID_NotFound(t *testing.T) {
	repo := &fakeActivityRepo{byID: map[string]*db_models.Activity{}}
	svc := newTestActivityService(repo, &fakeGeocoder{})

	_, err := svc.GetActivityByID(context.Background(), uuid.New().String())

	assert.ErrorIs(t, err, utils.ErrActivityNotFound)
}

func TestGetActivityByID_MissingLocation(t *testing.T) {
	broken := storedActivity(db_models.CategoryFood, 0, 0)
	repo := &fakeActivityRepo{byID: map[string]*db_models.Activity{broken.ID.String(): broken}}
	svc := newTestActivityService(repo, &fakeGeocoder{})

	_, err := svc.GetActivityByID(context.Background(), broken.ID.String())

	assert.ErrorIs(t, err, utils.ErrInvalidLocation)
}

func TestGetRelatedActivities_QueriesAroundTargetWithDefaults(t *testing.T) {
	target := storedActivity(db_models.CategoryHikes, -84.5, 34.0)
	neighbor := storedActivity(db_models.CategoryHikes, -84.51, 34.01)
	repo := &fakeActivityRepo{
		byID:          map[string]*db_models.Activity{target.ID.String(): target},
		relatedResult: []db_models.Activity{*neighbor},
	}
	svc := newTestActivityService(repo, &fakeGeocoder{})

	related, err := svc.GetRelatedActivities(context.Background(), target.ID.String(), 0, 0)

	require.NoError(t, err)
	assert.Equal(t, target.ID, repo.lastTarget.ID)
	assert.Equal(t, DefaultRadiusMeters, repo.lastRadius)
	assert.Equal(t, DefaultRelatedLimit, repo.lastLimit)
	require.Len(t, related, 1)
	assert.Equal(t, neighbor.ID.String(), related[0].ID)
}

func TestGetRelatedActivities_TargetNotFound(t *testing.T) {
	repo := &fakeActivityRepo{byID: map[string]*db_models.Activity{}}
	svc := newTestActivityService(repo, &fakeGeocoder{})

	_, err := svc.GetRelatedActivities(context.Background(), uuid.New().String(), 5000, 8)

	assert.ErrorIs(t, err, utils.ErrActivityNotFound)
}

func TestListActivities_RejectsUnknownCategory(t *testing.T) {
	repo := &fakeActivityRepo{}
	svc := newTestActivityService(repo, &fakeGeocoder{})

	_, err := svc.ListActivities(context.Background(), repositories.NearbyFilter{Category: "nightlife"})

	assert.ErrorIs(t, err, utils.ErrInvalidCategory)
}

func TestListActivities_AppliesDefaultRadius(t *testing.T) {
	repo := &fakeActivityRepo{}
	svc := newTestActivityService(repo, &fakeGeocoder{})

	_, err := svc.ListActivities(context.Background(), repositories.NearbyFilter{
		Category:  "food",
		HasCenter: true,
		Lat:       34.0,
		Lng:       -84.5,
	})

	require.NoError(t, err)
	assert.Equal(t, DefaultRadiusMeters, repo.lastFilter.RadiusMeters)
	assert.Equal(t, "food", repo.lastFilter.Category)
}

func TestListActivities_EmptyResultIsNotAnError(t *testing.T) {
	repo := &fakeActivityRepo{}
	svc := newTestActivityService(repo, &fakeGeocoder{})

	activities, err := svc.ListActivities(context.Background(), repositories.NearbyFilter{})

	require.NoError(t, err)
	require.NotNil(t, activities)
	assert.Len(t, activities, 0)
}

func TestActivityResponse_GeoJSONShape(t *testing.T) {
	activity := storedActivity(db_models.CategoryFood, -84.5, 34.0)

	raw, err := json.Marshal(response_models.ActivityFromModel(activity))
	require.NoError(t, err)

	var decoded struct {
		Location struct {
			Type        string    `json:"type"`
			Coordinates []float64 `json:"coordinates"`
		} `json:"location"`
	}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "Point", decoded.Location.Type)
	assert.Equal(t, []float64{-84.5, 34.0}, decoded.Location.Coordinates)
}
