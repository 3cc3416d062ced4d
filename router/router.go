package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	fertCtrl "agro/pkg/fertilization/controller"
	fieldCtrl "agro/pkg/field/controller"
	machineCtrl "agro/pkg/machine/controller"
	"agro/pkg/middleware"
	taskCtrl "agro/pkg/task/controller"
)

type Controllers struct {
	Machines       machineCtrl.MachineController
	Tasks          taskCtrl.TaskController
	Fertilizations fertCtrl.FertilizationController
	Fields         fieldCtrl.FieldController
	Dashboard      interface {
		Summary(echo.Context) error
		Practices(echo.Context) error
		Notice(echo.Context) error
		Export(echo.Context) error
	}
	Health  interface{ Health(echo.Context) error }
	Metrics http.Handler
}

func New(e *echo.Echo, logger *zap.Logger, c Controllers) *echo.Echo {
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.RequestID())
	e.Use(middleware.RequestLog(logger))

	e.GET("/health", c.Health.Health)
	e.GET("/metrics", echo.WrapHandler(c.Metrics))

	e.GET("/dashboard", c.Dashboard.Summary)
	e.GET("/practices", c.Dashboard.Practices)
	e.GET("/notice", c.Dashboard.Notice)
	e.GET("/export.xlsx", c.Dashboard.Export)

	m := e.Group("/machines")
	m.GET("", c.Machines.List)
	m.POST("", c.Machines.Create)
	m.GET("/stats", c.Machines.Stats)
	m.GET("/alerts", c.Machines.Alerts)
	m.GET("/:id", c.Machines.Get)
	m.GET("/:id/badge", c.Machines.Badge)
	m.POST("/:id/actions/:action", c.Machines.Act)

	t := e.Group("/tasks")
	t.GET("", c.Tasks.List)
	t.POST("", c.Tasks.Create)
	t.GET("/stats", c.Tasks.Stats)
	t.POST("/reconcile", c.Tasks.Reconcile)
	t.PATCH("/:id", c.Tasks.Patch)

	e.GET("/fertilizers", c.Fertilizations.Fertilizers)
	f := e.Group("/fertilizations")
	f.GET("", c.Fertilizations.List)
	f.POST("", c.Fertilizations.Create)
	f.GET("/stats", c.Fertilizations.Stats)
	f.GET("/upcoming", c.Fertilizations.Upcoming)
	f.POST("/reconcile", c.Fertilizations.Reconcile)
	f.PATCH("/:id", c.Fertilizations.Patch)

	g := e.Group("/fields")
	g.GET("", c.Fields.List)
	g.POST("", c.Fields.Create)
	g.GET("/stats", c.Fields.Stats)
	g.GET("/productivity", c.Fields.Productivity)
	g.GET("/:id", c.Fields.Get)
	g.GET("/:id/soil", c.Fields.Soil)
	g.PATCH("/:id", c.Fields.Patch)
	return e
}
