package service

import (
	"agro/entities"
	"agro/pkg/fertilizer"
	"agro/pkg/stats"
)

type FertilizationService interface {
	List() ([]entities.FertilizationRecord, error)
	Create(d entities.FertilizationDraft) (entities.FertilizationRecord, error)
	SetStatus(id string, st entities.FertilizationStatus) (entities.FertilizationRecord, error)
	Stats() (stats.FertilizationStats, error)
	Upcoming() ([]entities.FertilizationRecord, error)
	Reconcile() ([]string, error)
	Catalog() *fertilizer.Catalog
	StatusCounts() (map[string]int, error)
	Seed(rs []entities.FertilizationRecord) error
}
