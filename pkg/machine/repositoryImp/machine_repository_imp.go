package repositoryImp

import (
	"agro/database"
	"agro/entities"
	"agro/pkg/machine/repository"

	"gorm.io/gorm"
)

type machineRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.MachineRepository { return &machineRepo{db} }

func (r *machineRepo) List() ([]entities.Machine, error) {
	return database.List[entities.Machine](r.db)
}

func (r *machineRepo) Replace(ms []entities.Machine) error {
	rows := make([]entities.Machine, len(ms))
	for i, m := range ms {
		m.Position = i
		rows[i] = m
	}
	return database.Replace(r.db, rows)
}

func (r *machineRepo) NextID(prefix string) (string, error) {
	return database.NextID[entities.Machine](r.db, prefix)
}
