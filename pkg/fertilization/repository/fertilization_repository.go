package repository

import "agro/entities"

type FertilizationRepository interface {
	List() ([]entities.FertilizationRecord, error)
	Replace(rs []entities.FertilizationRecord) error
	NextID(prefix string) (string, error)
}
