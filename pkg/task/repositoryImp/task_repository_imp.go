package repositoryImp

import (
	"agro/database"
	"agro/entities"
	"agro/pkg/task/repository"

	"gorm.io/gorm"
)

type taskRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.TaskRepository { return &taskRepo{db} }

func (r *taskRepo) List() ([]entities.Task, error) { return database.List[entities.Task](r.db) }

func (r *taskRepo) Replace(ts []entities.Task) error {
	rows := make([]entities.Task, len(ts))
	for i, t := range ts {
		t.Position = i
		rows[i] = t
	}
	return database.Replace(r.db, rows)
}

func (r *taskRepo) NextID(prefix string) (string, error) {
	return database.NextID[entities.Task](r.db, prefix)
}
