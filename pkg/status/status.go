// Package status classifies record statuses and measurements into display
// badges.
package status

import (
	"fmt"

	"agro/entities"
)

// Category is the visual family of a badge.
type Category string

const (
	Success Category = "success"
	Danger  Category = "danger"
	Neutral Category = "neutral"
	Info    Category = "info"
	Warning Category = "warning"
)

type Badge struct {
	Label    string   `json:"label"`
	Category Category `json:"category"`
}

var (
	machineBadges = map[entities.MachineStatus]Badge{
		entities.MachineOperational: {"Operativo", Success},
		entities.MachineMaintenance: {"Mantenimiento", Danger},
		entities.MachineIdle:        {"Inactivo", Neutral},
		entities.MachineInUse:       {"En Uso", Info},
	}
	taskBadges = map[entities.TaskStatus]Badge{
		entities.TaskPending:    {"Pendiente", Warning},
		entities.TaskInProgress: {"En Progreso", Info},
		entities.TaskCompleted:  {"Completada", Success},
		entities.TaskOverdue:    {"Vencida", Danger},
	}
	fertilizationBadges = map[entities.FertilizationStatus]Badge{
		entities.FertilizationScheduled: {"Programada", Info},
		entities.FertilizationApplied:   {"Aplicada", Success},
		entities.FertilizationOverdue:   {"Vencida", Danger},
	}
	fieldBadges = map[entities.FieldStatus]Badge{
		entities.FieldActive:      {"Activo", Success},
		entities.FieldResting:     {"En Descanso", Neutral},
		entities.FieldPreparation: {"Preparación", Warning},
		entities.FieldHarvest:     {"Cosecha", Info},
	}
	priorityBadges = map[entities.Priority]Badge{
		entities.PriorityHigh:   {"Alta", Danger},
		entities.PriorityMedium: {"Media", Warning},
		entities.PriorityLow:    {"Baja", Success},
	}
)

func lookup[K ~string](table map[K]Badge, kind string, k K) (Badge, error) {
	b, ok := table[k]
	if !ok {
		return Badge{}, fmt.Errorf("%s %q: %w", kind, string(k), entities.ErrUnknownStatus)
	}
	return b, nil
}

func Machine(s entities.MachineStatus) (Badge, error) {
	return lookup(machineBadges, "machine status", s)
}

func Task(s entities.TaskStatus) (Badge, error) { return lookup(taskBadges, "task status", s) }

func Fertilization(s entities.FertilizationStatus) (Badge, error) {
	return lookup(fertilizationBadges, "fertilization status", s)
}

func Field(s entities.FieldStatus) (Badge, error) { return lookup(fieldBadges, "field status", s) }

func Priority(p entities.Priority) (Badge, error) { return lookup(priorityBadges, "priority", p) }

var taskTypeLabels = map[string]string{
	"siembra":        "Siembra",
	"riego":          "Riego",
	"fertilizacion":  "Fertilización",
	"cosecha":        "Cosecha",
	"mantenimiento":  "Mantenimiento",
	"control-plagas": "Control de Plagas",
}

// TaskType returns the display label of a task type, or the raw value for
// types outside the catalog.
func TaskType(t string) string {
	if l, ok := taskTypeLabels[t]; ok {
		return l
	}
	return t
}

// Importance maps a practice importance to its badge. Unknown values are
// shown as Media.
func Importance(level string) Badge {
	switch level {
	case "Alta":
		return Badge{"Alta", Danger}
	case "Baja":
		return Badge{"Baja", Success}
	}
	return Badge{"Media", Warning}
}
