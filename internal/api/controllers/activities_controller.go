package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"quickmap/internal/models/request_models"
	"quickmap/internal/repositories"
	"quickmap/internal/services"
	"quickmap/pkg/utils"
)

type ActivitiesController struct {
	activityService services.ActivityServiceInterface
}

func NewActivitiesController(activityService services.ActivityServiceInterface) *ActivitiesController {
	return &ActivitiesController{
		activityService: activityService,
	}
}

// ListActivities handles GET /api/activities. lat and lng must be given
// together; radius is meters and defaults to 5000.
func (a *ActivitiesController) ListActivities(c *gin.Context) {
	latStr := c.Query("lat")
	lngStr := c.Query("lng")
	if (latStr == "") != (lngStr == "") {
		utils.RespondError(c, http.StatusBadRequest, "lat and lng must be provided together")
		return
	}

	filter := repositories.NearbyFilter{
		Category: c.Query("category"),
	}

	if latStr != "" {
		lat, err := strconv.ParseFloat(latStr, 64)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid lat")
			return
		}
		lng, err := strconv.ParseFloat(lngStr, 64)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid lng")
			return
		}
		radius, err := strconv.Atoi(c.DefaultQuery("radius", strconv.Itoa(services.DefaultRadiusMeters)))
		if err != nil || radius < 0 {
			utils.RespondError(c, http.StatusBadRequest, "Invalid radius")
			return
		}

		filter.HasCenter = true
		filter.Lat = lat
		filter.Lng = lng
		filter.RadiusMeters = radius
	}

	activities, err := a.activityService.ListActivities(c.Request.Context(), filter)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, activities)
}

func (a *ActivitiesController) GetActivityByID(c *gin.Context) {
	activity, err := a.activityService.GetActivityByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, activity)
}

// GetRelatedActivities handles GET /api/activities/:id/related. Results share
// the target's category and never include the target itself.
func (a *ActivitiesController) GetRelatedActivities(c *gin.Context) {
	radius, err := strconv.Atoi(c.DefaultQuery("radius", strconv.Itoa(services.DefaultRadiusMeters)))
	if err != nil || radius < 0 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid radius")
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(services.DefaultRelatedLimit)))
	if err != nil || limit < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid limit")
		return
	}

	related, err := a.activityService.GetRelatedActivities(c.Request.Context(), c.Param("id"), radius, limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, related)
}

func (a *ActivitiesController) CreateActivity(c *gin.Context) {
	var req request_models.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	activity, err := a.activityService.CreateActivity(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, activity)
}
