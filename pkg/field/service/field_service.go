package service

import (
	"agro/entities"
	"agro/pkg/proximity"
	"agro/pkg/soil"
	"agro/pkg/stats"
)

type FieldService interface {
	List() ([]entities.Field, error)
	Get(id string) (entities.Field, error)
	Create(d entities.FieldDraft) (entities.Field, error)
	SetStatus(id string, st entities.FieldStatus) (entities.Field, error)
	Soil(id string) (soil.Report, error)
	Stats() (stats.FieldStats, error)
	Productivity() ([]proximity.HarvestForecast, error)
	StatusCounts() (map[string]int, error)
	Seed(fs []entities.Field) error
}
