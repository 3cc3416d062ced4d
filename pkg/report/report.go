// Package report exports the record collections as an XLSX workbook, one
// sheet per collection plus a summary sheet.
package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"agro/pkg/dashboard"
	"agro/pkg/soil"
	"agro/pkg/status"
)

const (
	SheetMachines       = "Maquinarias"
	SheetTasks          = "Tareas"
	SheetFertilizations = "Fertilizacion"
	SheetFields         = "Cuarteles"
	SheetSummary        = "Resumen"
)

// Build lays out the workbook. The caller owns the returned file and must
// close it.
func Build(snap dashboard.Snapshot, sum dashboard.Summary) (*excelize.File, error) {
	x := excelize.NewFile()
	if err := x.SetSheetName("Sheet1", SheetMachines); err != nil {
		x.Close()
		return nil, err
	}

	rows := map[string][][]any{
		SheetMachines:       machineRows(snap),
		SheetTasks:          taskRows(snap),
		SheetFertilizations: fertilizationRows(snap),
		SheetFields:         fieldRows(snap),
		SheetSummary:        summaryRows(sum),
	}
	for _, name := range []string{SheetMachines, SheetTasks, SheetFertilizations, SheetFields, SheetSummary} {
		if name != SheetMachines {
			if _, err := x.NewSheet(name); err != nil {
				x.Close()
				return nil, fmt.Errorf("sheet %s: %w", name, err)
			}
		}
		if err := writeRows(x, name, rows[name]); err != nil {
			x.Close()
			return nil, fmt.Errorf("sheet %s: %w", name, err)
		}
	}
	return x, nil
}

// Write builds the workbook and streams it to w.
func Write(w io.Writer, snap dashboard.Snapshot, sum dashboard.Summary) error {
	x, err := Build(snap, sum)
	if err != nil {
		return err
	}
	defer x.Close()
	if _, err := x.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeRows(x *excelize.File, sheet string, rows [][]any) error {
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := x.SetSheetRow(sheet, cell, &r); err != nil {
			return err
		}
	}
	return nil
}

func label(b status.Badge, err error) string {
	if err != nil {
		return ""
	}
	return b.Label
}

func machineRows(s dashboard.Snapshot) [][]any {
	out := [][]any{{"ID", "Nombre", "Tipo", "Estado", "Ubicación", "Combustible %", "Horas", "Último mantenimiento", "Próximo mantenimiento"}}
	for _, m := range s.Machines {
		out = append(out, []any{m.ID, m.Name, m.Type, label(status.Machine(m.Status)), m.Location, m.FuelLevel, m.HoursWorked, m.LastMaintenance, m.NextMaintenance})
	}
	return out
}

func taskRows(s dashboard.Snapshot) [][]any {
	out := [][]any{{"ID", "Título", "Tipo", "Prioridad", "Estado", "Asignado a", "Cuartel", "Vence", "Horas estimadas", "Horas completadas"}}
	for _, t := range s.Tasks {
		var done any = ""
		if t.CompletedHours != nil {
			done = *t.CompletedHours
		}
		out = append(out, []any{t.ID, t.Title, status.TaskType(t.Type), label(status.Priority(t.Priority)), label(status.Task(t.Status)),
			t.AssignedTo, t.Field, t.DueDate, t.EstimatedHours, done})
	}
	return out
}

func fertilizationRows(s dashboard.Snapshot) [][]any {
	out := [][]any{{"ID", "Cuartel", "Cultivo", "Fertilizante", "Composición", "Dosis kg/ha", "Total kg", "Método", "Aplicación", "Próxima aplicación", "Costo", "Estado"}}
	for _, r := range s.Fertilizations {
		out = append(out, []any{r.ID, r.Field, r.Crop, r.FertilizerType, r.Composition, r.ApplicationRate, r.TotalAmount,
			r.ApplicationMethod, r.ApplicationDate, r.NextApplicationDate, r.Cost, label(status.Fertilization(r.Status))})
	}
	return out
}

func fieldRows(s dashboard.Snapshot) [][]any {
	out := [][]any{{"ID", "Nombre", "Área ha", "Cultivo", "Estado", "pH", "MO %", "N ppm", "P ppm", "K ppm", "Salud del suelo", "Productividad %"}}
	for _, f := range s.Fields {
		out = append(out, []any{f.ID, f.Name, f.Area, f.CropType, label(status.Field(f.Status)), f.PH, f.OrganicMatter,
			f.Nitrogen, f.Phosphorus, f.Potassium, soil.FieldScore(f), f.Productivity})
	}
	return out
}

func summaryRows(s dashboard.Summary) [][]any {
	return [][]any{
		{"Indicador", "Valor"},
		{"Fecha", s.Date},
		{"Maquinarias activas", s.MachinesActive},
		{"Maquinarias en mantenimiento", s.MachinesInMaintenance},
		{"Alertas de mantenimiento", s.MaintenanceAlerts},
		{"Tareas pendientes", s.TasksPending},
		{"Tareas que vencen hoy", s.TasksDueToday},
		{"Tareas vencidas", s.TasksOverdue},
		{"Aplicaciones esta semana", s.ApplicationsThisWeek},
		{"Costo de fertilización", s.FertilizationCost},
		{"Cuarteles monitoreados", s.FieldsMonitored},
		{"Cuarteles que requieren atención", s.FieldsNeedingAttention},
		{"Área total ha", s.TotalArea},
	}
}
