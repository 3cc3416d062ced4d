package repository

import "agro/entities"

type TaskRepository interface {
	List() ([]entities.Task, error)
	Replace(ts []entities.Task) error
	NextID(prefix string) (string, error)
}
