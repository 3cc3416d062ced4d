package stats

import "agro/entities"

type MachineStats struct {
	Total       int                            `json:"total"`
	Operational int                            `json:"operational"` // operational or in use
	Maintenance int                            `json:"maintenance"`
	Idle        int                            `json:"idle"`
	ByStatus    map[entities.MachineStatus]int `json:"by_status"`
}

func Machines(ms []entities.Machine) MachineStats {
	by := CountBy(ms, entities.Machine.CurrentStatus)
	return MachineStats{
		Total:       len(ms),
		Operational: by[entities.MachineOperational] + by[entities.MachineInUse],
		Maintenance: by[entities.MachineMaintenance],
		Idle:        by[entities.MachineIdle],
		ByStatus:    by,
	}
}

type TaskStats struct {
	Total      int                         `json:"total"`
	Pending    int                         `json:"pending"`
	InProgress int                         `json:"in_progress"`
	Completed  int                         `json:"completed"`
	Overdue    int                         `json:"overdue"`
	ByStatus   map[entities.TaskStatus]int `json:"by_status"`
}

func Tasks(ts []entities.Task) TaskStats {
	by := CountBy(ts, entities.Task.CurrentStatus)
	return TaskStats{
		Total:      len(ts),
		Pending:    by[entities.TaskPending],
		InProgress: by[entities.TaskInProgress],
		Completed:  by[entities.TaskCompleted],
		Overdue:    by[entities.TaskOverdue],
		ByStatus:   by,
	}
}

type FertilizationStats struct {
	Total      int                                  `json:"total"`
	Programmed int                                  `json:"programmed"`
	Applied    int                                  `json:"applied"`
	Overdue    int                                  `json:"overdue"`
	TotalCost  float64                              `json:"total_cost"`
	ByStatus   map[entities.FertilizationStatus]int `json:"by_status"`
}

func Fertilizations(rs []entities.FertilizationRecord) FertilizationStats {
	by := CountBy(rs, entities.FertilizationRecord.CurrentStatus)
	return FertilizationStats{
		Total:      len(rs),
		Programmed: by[entities.FertilizationScheduled],
		Applied:    by[entities.FertilizationApplied],
		Overdue:    by[entities.FertilizationOverdue],
		TotalCost:  Sum(rs, func(r entities.FertilizationRecord) float64 { return r.Cost }),
		ByStatus:   by,
	}
}

type FieldStats struct {
	Total               int                          `json:"total"`
	Active              int                          `json:"active"`
	TotalArea           float64                      `json:"total_area"`
	AverageProductivity float64                      `json:"average_productivity"`
	ByStatus            map[entities.FieldStatus]int `json:"by_status"`
}

// Fields averages productivity over fields that produced something; fallow
// fields report 0 and are left out.
func Fields(fs []entities.Field) FieldStats {
	by := CountBy(fs, entities.Field.CurrentStatus)
	productivity := func(f entities.Field) float64 { return f.Productivity }
	return FieldStats{
		Total:     len(fs),
		Active:    by[entities.FieldActive],
		TotalArea: Sum(fs, func(f entities.Field) float64 { return f.Area }),
		AverageProductivity: MeanWhere(fs, productivity, func(f entities.Field) bool {
			return f.Productivity > 0
		}),
		ByStatus: by,
	}
}
