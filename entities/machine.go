package entities

import "fmt"

type Machine struct {
	ID              string        `gorm:"primaryKey" json:"id"`
	Position        int           `gorm:"index" json:"-"`
	Name            string        `json:"name"`
	Type            string        `json:"type"`
	Status          MachineStatus `gorm:"index" json:"status"`
	Location        string        `json:"location"`
	LastMaintenance string        `json:"last_maintenance"` // YYYY-MM-DD
	NextMaintenance string        `json:"next_maintenance"` // YYYY-MM-DD
	FuelLevel       float64       `json:"fuel_level"`       // 0..100
	HoursWorked     float64       `json:"hours_worked"`
}

func (m Machine) RecordID() string             { return m.ID }
func (m Machine) CurrentStatus() MachineStatus { return m.Status }
func (m Machine) WithStatus(s MachineStatus) Machine {
	m.Status = s
	return m
}

// MachineDraft carries the user-supplied values of a new machine.
type MachineDraft struct {
	Name            string  `json:"name"`
	Type            string  `json:"type"`
	Location        string  `json:"location"`
	LastMaintenance string  `json:"last_maintenance"`
	NextMaintenance string  `json:"next_maintenance"`
	FuelLevel       float64 `json:"fuel_level"`
	HoursWorked     float64 `json:"hours_worked"`
}

// MachinePrefix returns the id prefix used for a machine type.
func MachinePrefix(machineType string) string {
	switch machineType {
	case "Tractor":
		return "T"
	case "Cosechadora":
		return "C"
	case "Pulverizadora":
		return "P"
	case "Sembradora":
		return "S"
	}
	return "M"
}

func NewMachine(id string, d MachineDraft) Machine {
	return Machine{
		ID:              id,
		Name:            d.Name,
		Type:            d.Type,
		Status:          MachineIdle,
		Location:        d.Location,
		LastMaintenance: d.LastMaintenance,
		NextMaintenance: d.NextMaintenance,
		FuelLevel:       d.FuelLevel,
		HoursWorked:     d.HoursWorked,
	}
}

// MachineAction is an operator command on a machine.
type MachineAction string

const (
	ActionStart       MachineAction = "start"
	ActionStop        MachineAction = "stop"
	ActionMaintenance MachineAction = "maintenance"
	ActionRelease     MachineAction = "release"
)

// Target returns the status an action moves a machine into.
func (a MachineAction) Target() (MachineStatus, error) {
	switch a {
	case ActionStart:
		return MachineInUse, nil
	case ActionStop:
		return MachineIdle, nil
	case ActionMaintenance:
		return MachineMaintenance, nil
	case ActionRelease:
		return MachineOperational, nil
	}
	return "", fmt.Errorf("machine action %q: %w", string(a), ErrInvalidTransition)
}
