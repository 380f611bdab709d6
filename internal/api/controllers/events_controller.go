package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quickmap/internal/services"
	"quickmap/pkg/utils"
)

type EventsController struct {
	eventsService services.EventsService
}

func NewEventsController(eventsService services.EventsService) *EventsController {
	return &EventsController{
		eventsService: eventsService,
	}
}

// ListNearbyEvents handles GET /api/seatgeek/events. Zero upstream results is
// a 200 with an empty array.
func (e *EventsController) ListNearbyEvents(c *gin.Context) {
	query := services.EventsQuery{
		Lat:   c.Query("lat"),
		Lon:   c.Query("lon"),
		Range: c.Query("range"),
		Type:  c.Query("type"),
	}

	events, err := e.eventsService.ListNearbyEvents(c.Request.Context(), query)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, events)
}
