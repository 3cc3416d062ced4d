package service

import (
	"agro/entities"
	"agro/pkg/stats"
)

type TaskService interface {
	// List returns every task, or only those in one status. filter is a
	// task status, "all" or empty.
	List(filter string) ([]entities.Task, error)
	Create(d entities.TaskDraft) (entities.Task, error)
	Patch(id string, st entities.TaskStatus, completedHours *float64) (entities.Task, error)
	Stats() (stats.TaskStats, error)
	Reconcile() ([]string, error)
	StatusCounts() (map[string]int, error)
	Seed(ts []entities.Task) error
}
