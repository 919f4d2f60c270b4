package http

import (
	"net/http"

	"content-repository/internal/page"
	"content-repository/pkg/response"
)

// mapError translates domain errors into HTTP errors with status codes.
func (h *handler) mapError(err error) error {
	switch err {
	case page.ErrPageNotFound:
		return response.NewHTTPError(http.StatusNotFound, "page not found")
	case page.ErrParentNotFound:
		return response.NewHTTPError(http.StatusNotFound, "parent page not found")
	case page.ErrEmptyTag:
		return response.NewHTTPError(http.StatusBadRequest, "tag must not be empty")
	case page.ErrInvalidDays:
		return response.NewHTTPError(http.StatusBadRequest, "days must be non-negative")
	default:
		return response.NewHTTPError(http.StatusInternalServerError, response.DefaultErrorMessage)
	}
}
