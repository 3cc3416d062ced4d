package repository

import "agro/entities"

type FieldRepository interface {
	List() ([]entities.Field, error)
	Replace(fs []entities.Field) error
	NextID(prefix string) (string, error)
}
