package controller

import "github.com/labstack/echo/v4"

type FieldController interface {
	List(c echo.Context) error
	Create(c echo.Context) error
	Get(c echo.Context) error
	Stats(c echo.Context) error
	Soil(c echo.Context) error
	Productivity(c echo.Context) error
	Patch(c echo.Context) error
}
