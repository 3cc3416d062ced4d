package controller

import "github.com/labstack/echo/v4"

type TaskController interface {
	List(c echo.Context) error
	Create(c echo.Context) error
	Stats(c echo.Context) error
	Patch(c echo.Context) error
	Reconcile(c echo.Context) error
}
