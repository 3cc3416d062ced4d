// Package app wires the record store, services and HTTP layer together.
package app

import (
	"fmt"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"agro/config"
	"agro/database"
	"agro/entities"
	"agro/pkg/dashboard"
	dashCtrlImp "agro/pkg/dashboard/controllerImp"
	fertCtrlImp "agro/pkg/fertilization/controllerImp"
	fertRepoImp "agro/pkg/fertilization/repositoryImp"
	fertSvc "agro/pkg/fertilization/service"
	fertSvcImp "agro/pkg/fertilization/serviceImp"
	"agro/pkg/fertilizer"
	fieldCtrlImp "agro/pkg/field/controllerImp"
	fieldRepoImp "agro/pkg/field/repositoryImp"
	fieldSvc "agro/pkg/field/service"
	fieldSvcImp "agro/pkg/field/serviceImp"
	healthCtrlImp "agro/pkg/health/controllerImp"
	machineCtrlImp "agro/pkg/machine/controllerImp"
	machineRepoImp "agro/pkg/machine/repositoryImp"
	machineSvc "agro/pkg/machine/service"
	machineSvcImp "agro/pkg/machine/serviceImp"
	"agro/pkg/notice"
	"agro/pkg/practices"
	"agro/pkg/proximity"
	taskCtrlImp "agro/pkg/task/controllerImp"
	taskRepoImp "agro/pkg/task/repositoryImp"
	taskSvc "agro/pkg/task/service"
	taskSvcImp "agro/pkg/task/serviceImp"
	"agro/pkg/telemetry"
	"agro/router"
)

// Container holds every long-lived component of the process.
type Container struct {
	Config  config.AppConfig
	Log     *zap.Logger
	DB      *gorm.DB
	Clock   proximity.Clock
	Board   *notice.Board
	Metrics *telemetry.Metrics
	Guide   []practices.Category

	Machines       machineSvc.MachineService
	Tasks          taskSvc.TaskService
	Fertilizations fertSvc.FertilizationService
	Fields         fieldSvc.FieldService
	Dashboard      *dashboard.Service
}

// New opens the store, builds the services and, when enabled, loads the
// seed records into empty collections.
func New(cfg config.AppConfig, log *zap.Logger) (*Container, error) {
	return NewWithClock(cfg, log, proximity.SystemClock(cfg.Location()))
}

func NewWithClock(cfg config.AppConfig, log *zap.Logger, clock proximity.Clock) (*Container, error) {
	db, err := database.OpenSQLite(cfg.DBPath)
	if err != nil {
		return nil, err
	}
	catalog, err := fertilizer.Load(cfg.FertilizerCatalog)
	if err != nil {
		return nil, err
	}
	guide, err := practices.Guide()
	if err != nil {
		return nil, err
	}

	c := &Container{
		Config:  cfg,
		Log:     log,
		DB:      db,
		Clock:   clock,
		Board:   notice.NewBoard(cfg.NoticeTTL),
		Metrics: telemetry.New(log),
		Guide:   guide,
	}
	c.Machines = machineSvcImp.NewMachineService(machineRepoImp.New(db), clock, cfg.MaintenanceHorizon, c.Board, c.Metrics, log)
	c.Tasks = taskSvcImp.NewTaskService(taskRepoImp.New(db), clock, c.Metrics, log)
	c.Fertilizations = fertSvcImp.NewFertilizationService(fertRepoImp.New(db), catalog, clock, cfg.UpcomingWindowDays, c.Metrics, log)
	c.Fields = fieldSvcImp.NewFieldService(fieldRepoImp.New(db), clock, c.Metrics, log)
	c.Dashboard = dashboard.NewService(c.Machines, c.Tasks, c.Fertilizations, c.Fields, clock, dashboard.Options{
		UpcomingWindow:     cfg.UpcomingWindowDays,
		MaintenanceHorizon: cfg.MaintenanceHorizon,
	})

	c.Metrics.Source("machine", c.Machines.StatusCounts)
	c.Metrics.Source("task", c.Tasks.StatusCounts)
	c.Metrics.Source("fertilization", c.Fertilizations.StatusCounts)
	c.Metrics.Source("field", c.Fields.StatusCounts)

	if cfg.Seed {
		if err := c.seed(); err != nil {
			c.Close()
			return nil, fmt.Errorf("seed: %w", err)
		}
	}
	return c, nil
}

func (c *Container) seed() error {
	if err := c.Machines.Seed(entities.SeedMachines()); err != nil {
		return err
	}
	if err := c.Tasks.Seed(entities.SeedTasks()); err != nil {
		return err
	}
	if err := c.Fertilizations.Seed(entities.SeedFertilizations()); err != nil {
		return err
	}
	return c.Fields.Seed(entities.SeedFields())
}

// Echo builds the HTTP server with every route registered.
func (c *Container) Echo() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	return router.New(e, c.Log, router.Controllers{
		Machines:       machineCtrlImp.New(c.Machines),
		Tasks:          taskCtrlImp.New(c.Tasks),
		Fertilizations: fertCtrlImp.New(c.Fertilizations),
		Fields:         fieldCtrlImp.New(c.Fields),
		Dashboard:      dashCtrlImp.New(c.Dashboard, c.Board, c.Guide),
		Health:         healthCtrlImp.NewHealthCtrl(c.DB, c.Clock),
		Metrics:        c.Metrics.Handler(),
	})
}

// Close stops the notice timers and releases the store.
func (c *Container) Close() error {
	c.Board.Close()
	sqlDB, err := c.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
