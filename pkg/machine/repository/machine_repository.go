package repository

import "agro/entities"

type MachineRepository interface {
	List() ([]entities.Machine, error)
	Replace(ms []entities.Machine) error
	NextID(prefix string) (string, error)
}
