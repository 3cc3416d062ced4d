package proximity

import (
	"time"

	"agro/entities"
)

// UpcomingApplications returns the fertilizer applications whose next date
// is within window days. Overdue records are left out.
func UpcomingApplications(now time.Time, rs []entities.FertilizationRecord, window int) []entities.FertilizationRecord {
	out := []entities.FertilizationRecord{}
	for _, r := range rs {
		if r.Status == entities.FertilizationOverdue {
			continue
		}
		if Within(now, r.NextApplicationDate, window) {
			out = append(out, r)
		}
	}
	return out
}

type MaintenanceAlert struct {
	Machine   entities.Machine `json:"machine"`
	DaysUntil int              `json:"days_until"`
}

// MaintenanceDue lists machines whose next maintenance is at most horizon
// days away. Machines already past their date stay in the list, whatever
// their status.
func MaintenanceDue(now time.Time, ms []entities.Machine, horizon int) []MaintenanceAlert {
	out := []MaintenanceAlert{}
	for _, m := range ms {
		n, err := DaysUntilDate(now, m.NextMaintenance)
		if err != nil {
			continue
		}
		if n <= horizon {
			out = append(out, MaintenanceAlert{Machine: m, DaysUntil: n})
		}
	}
	return out
}

// DueToday counts open tasks whose due date is today.
func DueToday(now time.Time, ts []entities.Task) int {
	n := 0
	for _, t := range ts {
		if t.Status != entities.TaskPending && t.Status != entities.TaskInProgress {
			continue
		}
		if d, err := DaysUntilDate(now, t.DueDate); err == nil && d == 0 {
			n++
		}
	}
	return n
}
