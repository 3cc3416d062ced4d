package proximity

import (
	"time"

	"agro/entities"
)

// ReconcileTasks marks open tasks whose due date has passed as vencida. It
// is only run on request; reads never change a status.
func ReconcileTasks(now time.Time, ts []entities.Task) ([]entities.Task, []string) {
	out := make([]entities.Task, len(ts))
	copy(out, ts)
	var changed []string
	for i, t := range ts {
		if !t.Status.CanTransitionTo(entities.TaskOverdue) {
			continue
		}
		if d, err := DaysUntilDate(now, t.DueDate); err == nil && d < 0 {
			out[i] = t.WithStatus(entities.TaskOverdue)
			changed = append(changed, t.ID)
		}
	}
	return out, changed
}

// ReconcileFertilizations marks scheduled applications whose next date has
// passed as vencida.
func ReconcileFertilizations(now time.Time, rs []entities.FertilizationRecord) ([]entities.FertilizationRecord, []string) {
	out := make([]entities.FertilizationRecord, len(rs))
	copy(out, rs)
	var changed []string
	for i, r := range rs {
		if !r.Status.CanTransitionTo(entities.FertilizationOverdue) {
			continue
		}
		if d, err := DaysUntilDate(now, r.NextApplicationDate); err == nil && d < 0 {
			out[i] = r.WithStatus(entities.FertilizationOverdue)
			changed = append(changed, r.ID)
		}
	}
	return out, changed
}
