package entities

import "fmt"

type MachineStatus string

const (
	MachineOperational MachineStatus = "operational"
	MachineMaintenance MachineStatus = "maintenance"
	MachineIdle        MachineStatus = "idle"
	MachineInUse       MachineStatus = "in-use"
)

type TaskStatus string

const (
	TaskPending    TaskStatus = "pendiente"
	TaskInProgress TaskStatus = "en-progreso"
	TaskCompleted  TaskStatus = "completada"
	TaskOverdue    TaskStatus = "vencida"
)

type FertilizationStatus string

const (
	FertilizationScheduled FertilizationStatus = "programada"
	FertilizationApplied   FertilizationStatus = "aplicada"
	FertilizationOverdue   FertilizationStatus = "vencida"
)

type FieldStatus string

const (
	FieldActive      FieldStatus = "activo"
	FieldResting     FieldStatus = "descanso"
	FieldPreparation FieldStatus = "preparacion"
	FieldHarvest     FieldStatus = "cosecha"
)

func MachineStatuses() []MachineStatus {
	return []MachineStatus{MachineOperational, MachineMaintenance, MachineIdle, MachineInUse}
}

func TaskStatuses() []TaskStatus {
	return []TaskStatus{TaskPending, TaskInProgress, TaskCompleted, TaskOverdue}
}

func FertilizationStatuses() []FertilizationStatus {
	return []FertilizationStatus{FertilizationScheduled, FertilizationApplied, FertilizationOverdue}
}

func FieldStatuses() []FieldStatus {
	return []FieldStatus{FieldActive, FieldResting, FieldPreparation, FieldHarvest}
}

// transitions lists the statuses reachable from each status by an explicit
// user action or by overdue reconciliation.
var (
	machineTransitions = map[MachineStatus][]MachineStatus{
		MachineOperational: {MachineMaintenance},
		MachineIdle:        {MachineInUse, MachineMaintenance},
		MachineInUse:       {MachineIdle},
		MachineMaintenance: {MachineOperational},
	}
	taskTransitions = map[TaskStatus][]TaskStatus{
		TaskPending:    {TaskInProgress, TaskOverdue},
		TaskInProgress: {TaskCompleted, TaskOverdue},
		TaskOverdue:    {TaskInProgress},
		TaskCompleted:  {},
	}
	fertilizationTransitions = map[FertilizationStatus][]FertilizationStatus{
		FertilizationScheduled: {FertilizationApplied, FertilizationOverdue},
		FertilizationOverdue:   {FertilizationScheduled},
		FertilizationApplied:   {},
	}
	fieldTransitions = map[FieldStatus][]FieldStatus{
		FieldResting:     {FieldActive},
		FieldPreparation: {FieldActive},
		FieldHarvest:     {FieldActive},
		FieldActive:      {},
	}
)

func contains[S comparable](list []S, v S) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func (s MachineStatus) Valid() bool { return contains(MachineStatuses(), s) }

func (s MachineStatus) CanTransitionTo(to MachineStatus) bool {
	return contains(machineTransitions[s], to)
}

func (s TaskStatus) Valid() bool { return contains(TaskStatuses(), s) }

func (s TaskStatus) CanTransitionTo(to TaskStatus) bool { return contains(taskTransitions[s], to) }

func (s FertilizationStatus) Valid() bool { return contains(FertilizationStatuses(), s) }

func (s FertilizationStatus) CanTransitionTo(to FertilizationStatus) bool {
	return contains(fertilizationTransitions[s], to)
}

func (s FieldStatus) Valid() bool { return contains(FieldStatuses(), s) }

func (s FieldStatus) CanTransitionTo(to FieldStatus) bool { return contains(fieldTransitions[s], to) }

func ParseMachineStatus(v string) (MachineStatus, error) {
	s := MachineStatus(v)
	if !s.Valid() {
		return "", fmt.Errorf("machine status %q: %w", v, ErrUnknownStatus)
	}
	return s, nil
}

func ParseTaskStatus(v string) (TaskStatus, error) {
	s := TaskStatus(v)
	if !s.Valid() {
		return "", fmt.Errorf("task status %q: %w", v, ErrUnknownStatus)
	}
	return s, nil
}

func ParseFertilizationStatus(v string) (FertilizationStatus, error) {
	s := FertilizationStatus(v)
	if !s.Valid() {
		return "", fmt.Errorf("fertilization status %q: %w", v, ErrUnknownStatus)
	}
	return s, nil
}

func ParseFieldStatus(v string) (FieldStatus, error) {
	s := FieldStatus(v)
	if !s.Valid() {
		return "", fmt.Errorf("field status %q: %w", v, ErrUnknownStatus)
	}
	return s, nil
}
