package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIError struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
	TraceID string `json:"trace_id,omitempty"`
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIError{
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

// HandleServiceError translates service-layer errors into HTTP responses.
// Upstream failures keep the upstream's diagnostic payload; everything
// unclassified collapses to a plain 500.
func HandleServiceError(c *gin.Context, err error) {
	var authErr *UpstreamAuthError
	var upstreamErr *UpstreamError

	switch {
	case errors.Is(err, ErrActivityNotFound):
		RespondError(c, http.StatusNotFound, "Activity not found")
	case errors.Is(err, ErrInvalidLocation):
		RespondError(c, http.StatusBadRequest, "Activity location is missing or invalid")
	case errors.Is(err, ErrInvalidAddress):
		RespondError(c, http.StatusBadRequest, "Invalid address")
	case errors.Is(err, ErrInvalidCategory):
		RespondError(c, http.StatusBadRequest, "Invalid category")
	case errors.Is(err, ErrMissingCredential):
		RespondError(c, http.StatusInternalServerError, "SeatGeek client ID not configured")
	case errors.As(err, &authErr):
		c.JSON(http.StatusForbidden, APIError{
			Message: "SeatGeek API authentication failed",
			Details: authErr.Details,
			TraceID: c.GetString("trace_id"),
		})
	case errors.As(err, &upstreamErr):
		code := upstreamErr.StatusCode
		if code < http.StatusBadRequest {
			code = http.StatusInternalServerError
		}
		c.JSON(code, APIError{
			Message: "SeatGeek API error",
			Details: upstreamErr.Body,
			TraceID: c.GetString("trace_id"),
		})
	default:
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
