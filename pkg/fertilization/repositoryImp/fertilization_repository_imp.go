package repositoryImp

import (
	"agro/database"
	"agro/entities"
	"agro/pkg/fertilization/repository"

	"gorm.io/gorm"
)

type fertRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.FertilizationRepository { return &fertRepo{db} }

func (r *fertRepo) List() ([]entities.FertilizationRecord, error) {
	return database.List[entities.FertilizationRecord](r.db)
}

func (r *fertRepo) Replace(rs []entities.FertilizationRecord) error {
	rows := make([]entities.FertilizationRecord, len(rs))
	for i, f := range rs {
		f.Position = i
		rows[i] = f
	}
	return database.Replace(r.db, rows)
}

func (r *fertRepo) NextID(prefix string) (string, error) {
	return database.NextID[entities.FertilizationRecord](r.db, prefix)
}
