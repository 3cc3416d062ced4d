package service

import (
	"agro/entities"
	"agro/pkg/proximity"
	"agro/pkg/stats"
	"agro/pkg/status"
)

type MachineService interface {
	List() ([]entities.Machine, error)
	Get(id string) (entities.Machine, error)
	Create(d entities.MachineDraft) (entities.Machine, error)
	Act(id string, a entities.MachineAction) (entities.Machine, error)
	Badge(id string) (status.Badge, error)
	Stats() (stats.MachineStats, error)
	Alerts() ([]proximity.MaintenanceAlert, error)
	StatusCounts() (map[string]int, error)
	Seed(ms []entities.Machine) error
}
