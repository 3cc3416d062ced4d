package entities

import (
	"errors"
	"testing"
)

func TestMachineStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name   string
		from   MachineStatus
		to     MachineStatus
		expect bool
	}{
		{"idle -> in-use", MachineIdle, MachineInUse, true},
		{"in-use -> idle", MachineInUse, MachineIdle, true},
		{"operational -> maintenance", MachineOperational, MachineMaintenance, true},
		{"idle -> maintenance", MachineIdle, MachineMaintenance, true},
		{"maintenance -> operational", MachineMaintenance, MachineOperational, true},
		{"in-use -> maintenance", MachineInUse, MachineMaintenance, false},
		{"operational -> in-use", MachineOperational, MachineInUse, false},
		{"maintenance -> in-use", MachineMaintenance, MachineInUse, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.CanTransitionTo(tt.to); got != tt.expect {
				t.Errorf("CanTransitionTo(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.expect)
			}
		})
	}
}

func TestTaskStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name   string
		from   TaskStatus
		to     TaskStatus
		expect bool
	}{
		{"pendiente -> en-progreso", TaskPending, TaskInProgress, true},
		{"en-progreso -> completada", TaskInProgress, TaskCompleted, true},
		{"vencida -> en-progreso", TaskOverdue, TaskInProgress, true},
		{"pendiente -> completada", TaskPending, TaskCompleted, false},
		{"completada -> pendiente", TaskCompleted, TaskPending, false},
		{"completada -> vencida", TaskCompleted, TaskOverdue, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.CanTransitionTo(tt.to); got != tt.expect {
				t.Errorf("CanTransitionTo(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.expect)
			}
		})
	}
}

func TestFertilizationAndFieldTransitions(t *testing.T) {
	if !FertilizationScheduled.CanTransitionTo(FertilizationApplied) {
		t.Error("programada -> aplicada should be allowed")
	}
	if !FertilizationOverdue.CanTransitionTo(FertilizationScheduled) {
		t.Error("vencida -> programada should be allowed")
	}
	if FertilizationApplied.CanTransitionTo(FertilizationScheduled) {
		t.Error("aplicada is terminal")
	}
	for _, from := range []FieldStatus{FieldResting, FieldPreparation, FieldHarvest} {
		if !from.CanTransitionTo(FieldActive) {
			t.Errorf("%s -> activo should be allowed", from)
		}
	}
	if FieldActive.CanTransitionTo(FieldHarvest) {
		t.Error("activo -> cosecha is not exposed")
	}
}

func TestParseStatus(t *testing.T) {
	if s, err := ParseTaskStatus("vencida"); err != nil || s != TaskOverdue {
		t.Fatalf("ParseTaskStatus(vencida) = %q, %v", s, err)
	}
	if _, err := ParseMachineStatus("broken"); !errors.Is(err, ErrUnknownStatus) {
		t.Fatalf("expected ErrUnknownStatus, got %v", err)
	}
	if _, err := ParseFieldStatus(""); !errors.Is(err, ErrUnknownStatus) {
		t.Fatalf("expected ErrUnknownStatus, got %v", err)
	}
	if _, err := ParseFertilizationStatus("APLICADA"); !errors.Is(err, ErrUnknownStatus) {
		t.Fatalf("expected ErrUnknownStatus for wrong case, got %v", err)
	}
}

func TestMachineAction_Target(t *testing.T) {
	s, err := ActionStart.Target()
	if err != nil || s != MachineInUse {
		t.Fatalf("start target = %q, %v", s, err)
	}
	if _, err := MachineAction("fly").Target(); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestMachinePrefix(t *testing.T) {
	cases := map[string]string{"Tractor": "T", "Cosechadora": "C", "Pulverizadora": "P", "Sembradora": "S", "Dron": "M"}
	for typ, want := range cases {
		if got := MachinePrefix(typ); got != want {
			t.Errorf("MachinePrefix(%q) = %q, want %q", typ, got, want)
		}
	}
}
