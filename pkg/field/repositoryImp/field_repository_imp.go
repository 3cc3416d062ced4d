package repositoryImp

import (
	"agro/database"
	"agro/entities"
	"agro/pkg/field/repository"

	"gorm.io/gorm"
)

type fieldRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.FieldRepository { return &fieldRepo{db} }

func (r *fieldRepo) List() ([]entities.Field, error) { return database.List[entities.Field](r.db) }

func (r *fieldRepo) Replace(fs []entities.Field) error {
	rows := make([]entities.Field, len(fs))
	for i, f := range fs {
		f.Position = i
		rows[i] = f
	}
	return database.Replace(r.db, rows)
}

func (r *fieldRepo) NextID(prefix string) (string, error) {
	return database.NextID[entities.Field](r.db, prefix)
}
