// Package dashboard summarises the four record collections for the farm
// overview page.
package dashboard

import (
	"time"

	"agro/entities"
	"agro/pkg/proximity"
	"agro/pkg/soil"
	"agro/pkg/stats"
)

// AttentionScore is the soil score under which a cuartel is flagged.
const AttentionScore = 80

// Snapshot is a consistent read of every collection.
type Snapshot struct {
	Machines       []entities.Machine             `json:"machines"`
	Tasks          []entities.Task                `json:"tasks"`
	Fertilizations []entities.FertilizationRecord `json:"fertilizations"`
	Fields         []entities.Field               `json:"fields"`
}

type Summary struct {
	Date                   string  `json:"date"`
	MachinesActive         int     `json:"machines_active"`
	MachinesInMaintenance  int     `json:"machines_in_maintenance"`
	MaintenanceAlerts      int     `json:"maintenance_alerts"`
	TasksPending           int     `json:"tasks_pending"`
	TasksDueToday          int     `json:"tasks_due_today"`
	TasksOverdue           int     `json:"tasks_overdue"`
	ApplicationsThisWeek   int     `json:"applications_this_week"`
	FertilizationCost      float64 `json:"fertilization_cost"`
	FieldsMonitored        int     `json:"fields_monitored"`
	FieldsNeedingAttention int     `json:"fields_needing_attention"`
	TotalArea              float64 `json:"total_area"`
}

// Options holds the proximity windows used by Compute.
type Options struct {
	UpcomingWindow     int
	MaintenanceHorizon int
}

func DefaultOptions() Options {
	return Options{
		UpcomingWindow:     proximity.DefaultUpcomingWindow,
		MaintenanceHorizon: proximity.DefaultMaintenanceHorizon,
	}
}

func Compute(now time.Time, s Snapshot, o Options) Summary {
	ms := stats.Machines(s.Machines)
	ts := stats.Tasks(s.Tasks)
	fs := stats.Fields(s.Fields)
	attention := stats.Count(s.Fields, func(f entities.Field) bool {
		return soil.FieldScore(f) < AttentionScore
	})
	return Summary{
		Date:                   now.Format(entities.DateLayout),
		MachinesActive:         ms.Operational,
		MachinesInMaintenance:  ms.Maintenance,
		MaintenanceAlerts:      len(proximity.MaintenanceDue(now, s.Machines, o.MaintenanceHorizon)),
		TasksPending:           ts.Pending,
		TasksDueToday:          proximity.DueToday(now, s.Tasks),
		TasksOverdue:           ts.Overdue,
		ApplicationsThisWeek:   len(proximity.UpcomingApplications(now, s.Fertilizations, o.UpcomingWindow)),
		FertilizationCost:      stats.Fertilizations(s.Fertilizations).TotalCost,
		FieldsMonitored:        fs.Total,
		FieldsNeedingAttention: attention,
		TotalArea:              fs.TotalArea,
	}
}
