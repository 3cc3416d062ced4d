package controller

import "github.com/labstack/echo/v4"

type MachineController interface {
	List(c echo.Context) error
	Create(c echo.Context) error
	Get(c echo.Context) error
	Stats(c echo.Context) error
	Alerts(c echo.Context) error
	Act(c echo.Context) error
	Badge(c echo.Context) error
}
