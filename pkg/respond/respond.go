// Package respond writes JSON error bodies for the HTTP controllers.
package respond

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"agro/entities"
)

// Status maps a service error to its HTTP status code.
func Status(err error) int {
	switch {
	case errors.Is(err, entities.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, entities.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, entities.ErrUnknownStatus), errors.Is(err, entities.ErrInvalidDate):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func Error(c echo.Context, err error) error {
	return c.JSON(Status(err), map[string]string{"error": err.Error()})
}

func BadJSON(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
}
